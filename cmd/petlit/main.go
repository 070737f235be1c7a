package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/petlit/internal/cli"
	"github.com/julianstephens/petlit/internal/clock"
	"github.com/julianstephens/petlit/internal/game"
	"github.com/julianstephens/petlit/internal/logger"
	"github.com/julianstephens/petlit/internal/snapshot"
	"github.com/julianstephens/petlit/internal/storage"
	"github.com/julianstephens/petlit/internal/widgetsync"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/petlit/petlit.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init   cli.InitCmd   `cmd:"" help:"Initialize petlit storage."`
	Status cli.StatusCmd `cmd:"" help:"Show pet and today's progress." default:"1"`
	Habit  struct {
		Add     cli.HabitAddCmd     `cmd:"" help:"Add a new habit."`
		Done    cli.HabitDoneCmd    `cmd:"" help:"Record a habit completion."`
		List    cli.HabitListCmd    `cmd:"" help:"List habits with projected progress."`
		Archive cli.HabitArchiveCmd `cmd:"" help:"Archive a habit."`
	} `cmd:"" help:"Manage habits."`
	Item struct {
		List  cli.ItemListCmd `cmd:"" help:"List inventory items."`
		Equip cli.EquipCmd    `cmd:"" help:"Equip an owned item."`
	} `cmd:"" help:"Manage the pet's inventory."`
	Sync   cli.SyncCmd   `cmd:"" help:"Publish a fresh widget snapshot."`
	Widget cli.WidgetCmd `cmd:"" help:"Render the read-only widget view."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("petlit"),
		kong.Description("Virtual-pet habit tracker"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logging: %v\n", err)
	}

	// Store type follows the config extension, snapshot store alongside it.
	var store storage.Provider
	var snapStore snapshot.Store
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
		snapStore = snapshot.NewJSONStore(widgetPath(CLI.Config, ".json"))
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
		snapStore = snapshot.NewSQLiteStore(widgetPath(CLI.Config, ".db"))
	}
	defer store.Close()
	defer snapStore.Close()

	clk := clock.RealClock{}
	appCtx := &cli.Context{
		Store:  store,
		Engine: game.New(clk),
		Sync:   widgetsync.New(snapStore, nil, clk),
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func widgetPath(configPath, ext string) string {
	dir := filepath.Dir(configPath)
	return filepath.Join(dir, "widget"+ext)
}
