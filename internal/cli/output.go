package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"error": err.Error()})
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case HealthResult:
		o.printHealthResult(v)
	case LeadersResult:
		o.printLeadersResult(v)
	case TrainingConfigResult:
		o.printTrainingConfigResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// TrainingConfig response type (matches API)
type TrainingConfig struct {
	ReactionMinMs int     `json:"reactionMinMs"`
	ReactionMaxMs int     `json:"reactionMaxMs"`
	MissChance    float64 `json:"missChance"`
}

// HealthResult response type
type HealthResult struct {
	OK               bool           `json:"ok"`
	Service          string         `json:"service"`
	QueueSize        int            `json:"queueSize"`
	ActiveRooms      int            `json:"activeRooms"`
	ConnectedClients int            `json:"connectedClients"`
	TrackedPlayers   int            `json:"trackedPlayers"`
	Storage          string         `json:"storage"`
	TrainingBot      TrainingConfig `json:"trainingBot"`
	Timestamp        time.Time      `json:"timestamp"`
}

// LeaderboardRow response type
type LeaderboardRow struct {
	PlayerID  string  `json:"playerId"`
	Name      string  `json:"name"`
	AvatarURL string  `json:"avatarUrl,omitempty"`
	Balance   int64   `json:"balance"`
	Wins      int     `json:"wins"`
	Losses    int     `json:"losses"`
	Matches   int     `json:"matches"`
	WinRate   float64 `json:"winRate"`
}

// LeadersResult response type
type LeadersResult struct {
	OK   bool             `json:"ok"`
	Rows []LeaderboardRow `json:"rows"`
}

// TrainingConfigResult response type
type TrainingConfigResult struct {
	OK     bool           `json:"ok"`
	Config TrainingConfig `json:"config"`
}

func (o *Output) printHealthResult(h HealthResult) {
	status := "down"
	if h.OK {
		status = "ok"
	}
	fmt.Printf("Service: %s\n", h.Service)
	fmt.Printf("Status: %s\n", status)
	fmt.Printf("Storage: %s\n", h.Storage)
	fmt.Printf("Queue Size: %d\n", h.QueueSize)
	fmt.Printf("Active Rooms: %d\n", h.ActiveRooms)
	fmt.Printf("Connected Clients: %d\n", h.ConnectedClients)
	fmt.Printf("Tracked Players: %d\n", h.TrackedPlayers)
	fmt.Printf("Training Bot: %d-%dms reaction, %.0f%% miss\n",
		h.TrainingBot.ReactionMinMs, h.TrainingBot.ReactionMaxMs, h.TrainingBot.MissChance*100)
	fmt.Printf("Timestamp: %s\n", h.Timestamp.Format(time.RFC3339))
}

func (o *Output) printLeadersResult(l LeadersResult) {
	if len(l.Rows) == 0 {
		fmt.Println("No players yet")
		return
	}

	fmt.Printf("Leaderboard (%d):\n", len(l.Rows))
	for i, row := range l.Rows {
		fmt.Printf("%3d. %s - %d coins (%dW/%dL, %.0f%% win rate)\n",
			i+1, row.Name, row.Balance, row.Wins, row.Losses, row.WinRate*100)
	}
}

func (o *Output) printTrainingConfigResult(t TrainingConfigResult) {
	fmt.Printf("Reaction Min: %dms\n", t.Config.ReactionMinMs)
	fmt.Printf("Reaction Max: %dms\n", t.Config.ReactionMaxMs)
	fmt.Printf("Miss Chance: %.2f\n", t.Config.MissChance)
}
