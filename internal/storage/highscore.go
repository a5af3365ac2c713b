package storage

import (
	"io"

	"github.com/charmbracelet/log"
)

// HighScoreKeeper adapts a Store to the engine's high score collaborator.
// Failures are logged at warn level and returned; a nil store behaves as
// an empty one.
type HighScoreKeeper struct {
	store  *Store
	logger *log.Logger
}

// NewHighScoreKeeper creates a keeper. logger may be nil.
func NewHighScoreKeeper(store *Store, logger *log.Logger) *HighScoreKeeper {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &HighScoreKeeper{store: store, logger: logger}
}

// LoadHighScore returns the persisted best score.
func (k *HighScoreKeeper) LoadHighScore() (int, error) {
	if k.store == nil {
		return 0, nil
	}
	score, err := k.store.HighScore()
	if err != nil {
		k.logger.Warn("cannot load high score", "error", err)
		return 0, err
	}
	return score, nil
}

// SaveHighScore persists a new best score.
func (k *HighScoreKeeper) SaveHighScore(score int) error {
	if k.store == nil {
		return nil
	}
	if err := k.store.SetHighScore(score); err != nil {
		k.logger.Warn("cannot save high score", "score", score, "error", err)
		return err
	}
	k.logger.Debug("new high score", "score", score)
	return nil
}
