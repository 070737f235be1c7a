package snapshot

import "github.com/julianstephens/petlit/internal/logger"

// Store persists the latest snapshot under a single logical key. Save
// replaces the previous snapshot wholesale; Load returns (nil, nil) when no
// snapshot exists or the stored payload is malformed. Deserialization
// failures fail closed into "no snapshot" so read-only consumers degrade to
// an empty projection instead of crashing.
type Store interface {
	Save(s *Snapshot) error
	Load() (*Snapshot, error)
	Close() error
}

func decodeOrNothing(data []byte) (*Snapshot, error) {
	s, err := Decode(data)
	if err != nil {
		logger.Warn("discarding malformed snapshot payload", "err", err)
		return nil, nil
	}
	return s, nil
}
