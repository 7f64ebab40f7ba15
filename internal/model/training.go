package model

// TrainingBotConfig tunes the client-side training bot. It lives on the
// server only so every client picks up the same tuning; the server never
// runs the bot itself.
type TrainingBotConfig struct {
	ReactionMinMs int     `json:"reactionMinMs"`
	ReactionMaxMs int     `json:"reactionMaxMs"`
	MissChance    float64 `json:"missChance"`
}

// DefaultTrainingBotConfig returns the tuning clients fall back to.
func DefaultTrainingBotConfig() TrainingBotConfig {
	return TrainingBotConfig{
		ReactionMinMs: 500,
		ReactionMaxMs: 2300,
		MissChance:    0.25,
	}
}

// Normalized returns a copy with every field forced into its legal range:
// a non-negative floor for the minimum, a maximum no lower than the
// minimum, and a miss chance clamped to [0,1].
func (c TrainingBotConfig) Normalized() TrainingBotConfig {
	if c.ReactionMinMs < 0 {
		c.ReactionMinMs = 0
	}
	if c.ReactionMaxMs < c.ReactionMinMs {
		c.ReactionMaxMs = c.ReactionMinMs
	}
	if c.MissChance < 0 {
		c.MissChance = 0
	} else if c.MissChance > 1 {
		c.MissChance = 1
	}
	return c
}
