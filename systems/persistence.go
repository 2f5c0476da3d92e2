package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// HighScore is the record stored on disk.
type HighScore struct {
	Score int    `json:"score"`
	Stage string `json:"stage"`
}

// ScoreStore keeps the high score in a gdata item.
type ScoreStore struct {
	manager *gdata.Manager
}

const highScoreItem = "highscore"

// OpenScoreStore opens the store for app. Without a store every call is a
// no-op, so a failed open only loses persistence.
func OpenScoreStore(app string) (*ScoreStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: app,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return nil, err
	}
	return &ScoreStore{manager: m}, nil
}

// Load returns the stored high score, or nil when there is none.
func (s *ScoreStore) Load() (*HighScore, error) {
	if s == nil || s.manager == nil {
		return nil, nil
	}
	data, err := s.manager.LoadItem(highScoreItem)
	if err != nil {
		log.Printf("Warning: Could not load high score: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var hs HighScore
	if err := json.Unmarshal(data, &hs); err != nil {
		log.Printf("Warning: Could not parse saved high score: %v", err)
		return nil, err
	}
	return &hs, nil
}

// Submit saves score if it beats the stored one and reports whether it did.
func (s *ScoreStore) Submit(score int, stage string) (bool, error) {
	if s == nil || s.manager == nil {
		return false, nil
	}
	best, err := s.Load()
	if err != nil {
		return false, err
	}
	if best != nil && best.Score >= score {
		return false, nil
	}

	data, err := json.Marshal(HighScore{Score: score, Stage: stage})
	if err != nil {
		log.Printf("Warning: Could not serialize high score: %v", err)
		return false, err
	}
	if err := s.manager.SaveItem(highScoreItem, data); err != nil {
		log.Printf("Warning: Could not save high score: %v", err)
		return false, err
	}
	return true, nil
}
