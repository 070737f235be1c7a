package cli

import (
	"fmt"

	"github.com/julianstephens/petlit/internal/projection"
)

type SyncCmd struct{}

func (c *SyncCmd) Run(ctx *Context) error {
	w, err := ctx.loadWorld()
	if err != nil {
		return err
	}
	if err := ctx.publish(w); err != nil {
		return err
	}
	fmt.Println("Snapshot published")
	return nil
}

// WidgetCmd renders what the read-only widget consumer would show. It reads
// the persisted snapshot only, taking the projection path; the live store
// is never opened.
type WidgetCmd struct {
	Limit int `short:"l" help:"Maximum habits in the preview." default:"3"`
}

func (c *WidgetCmd) Run(ctx *Context) error {
	snap, err := ctx.Sync.Store.Load()
	if err != nil {
		return err
	}
	if snap == nil {
		fmt.Println("No snapshot yet")
		return nil
	}

	now := ctx.Engine.Clock.Now()
	agg := projection.Summarize(snap, now)
	fmt.Printf("%d/%d done, %d remaining\n", agg.Done, agg.Total, agg.Remaining)

	for _, p := range projection.ListPreview(snap, now, c.Limit) {
		mark := " "
		if p.Done {
			mark = "x"
		}
		fmt.Printf("[%s] %s (%d/%d)\n", mark, p.Title, p.Count, p.Target)
	}
	return nil
}
