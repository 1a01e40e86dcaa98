package daily

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/QuestCraft_Go/internal/domain"
)

//go:embed pool.json
var defaultPool []byte

// LoadPool reads the daily quest pool from path, or the built-in pool when path is empty
func LoadPool(path string) ([]domain.DailyQuest, error) {
	data := defaultPool
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgReadPoolFmt, path, err)
		}
	}
	return ParsePool(data)
}

// ParsePool decodes and validates a pool document
func ParsePool(data []byte) ([]domain.DailyQuest, error) {
	var cfg domain.DailyQuestPoolConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgParsePoolFmt, err)
	}
	if err := validatePool(cfg.QuestPool); err != nil {
		return nil, err
	}
	return cfg.QuestPool, nil
}

func validatePool(pool []domain.DailyQuest) error {
	if len(pool) < domain.DailyQuestsPerDay {
		return fmt.Errorf(ErrMsgPoolSizeFmt, domain.ErrMsgDailyPoolTooSmall, len(pool), domain.DailyQuestsPerDay)
	}

	seen := make(map[string]struct{}, len(pool))
	for i, q := range pool {
		if q.Name == "" || q.Reward <= 0 {
			return fmt.Errorf(ErrMsgPoolEntryFmt, domain.ErrInvalidInput, i)
		}
		if _, dup := seen[q.Name]; dup {
			return fmt.Errorf(ErrMsgPoolDuplicateFmt, domain.ErrMsgDailyPoolDuplicateName, q.Name)
		}
		seen[q.Name] = struct{}{}
	}
	return nil
}
