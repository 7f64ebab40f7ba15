package redis

import (
	"fmt"

	"github.com/uygun9544/slipperduel/internal/model"
)

// Key prefix for all duel-related data
const keyPrefix = "slipperduel"

// profileKey returns the Redis key for a ProfileRecord
func profileKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:profile:%s", keyPrefix, id)
}

// profileIndexKey returns the Redis key for the SET of known player ids
func profileIndexKey() string {
	return fmt.Sprintf("%s:idx:profiles", keyPrefix)
}

// trainingConfigKey returns the Redis key for the training-bot tuning object
func trainingConfigKey() string {
	return fmt.Sprintf("%s:training_config", keyPrefix)
}
