package model

// LeaderboardRow is one ranked entry of the public leaderboard.
type LeaderboardRow struct {
	PlayerID  PlayerID `json:"playerId"`
	Name      string   `json:"name"`
	AvatarURL string   `json:"avatarUrl,omitempty"`
	Balance   int64    `json:"balance"`
	Wins      int      `json:"wins"`
	Losses    int      `json:"losses"`
	Matches   int      `json:"matches"`
	WinRate   float64  `json:"winRate"`
}
