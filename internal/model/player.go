package model

// PlayerID is the stable external identity used for balances and stats.
// It is distinct from SessionID: many sessions over time may map to the
// same PlayerID.
type PlayerID string

// PlayerProfile is the self-reported public profile attached to a session.
type PlayerProfile struct {
	PlayerID  PlayerID `json:"playerId"`
	Name      string   `json:"name"`
	AvatarURL string   `json:"avatarUrl,omitempty"`
	Slipper   string   `json:"slipper,omitempty"`
}

// ProfileRecord is the persisted per-identity record: display metadata plus
// the wagered balance and win/loss counters.
type ProfileRecord struct {
	PlayerID  PlayerID `json:"playerId"`
	Name      string   `json:"name"`
	AvatarURL string   `json:"avatarUrl,omitempty"`
	Balance   int64    `json:"balance"`
	Wins      int      `json:"wins"`
	Losses    int      `json:"losses"`
}

// Matches returns the number of settled matches this identity played.
func (r *ProfileRecord) Matches() int {
	return r.Wins + r.Losses
}

// WinRate returns the fraction of settled matches won, 0 when none played.
func (r *ProfileRecord) WinRate() float64 {
	matches := r.Matches()
	if matches == 0 {
		return 0
	}
	return float64(r.Wins) / float64(matches)
}
