package model

// Color is one of the four target colors a round can ask for.
type Color string

const (
	ColorBlue   Color = "blue"
	ColorRed    Color = "red"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
)

// Palette lists every color a round plan can draw from.
var Palette = []Color{ColorBlue, ColorRed, ColorYellow, ColorGreen}

// Position is a target's on-screen placement in percent offsets.
type Position struct {
	Top  int `json:"top"`
	Left int `json:"left"`
}

// RoundPlan is the server-generated parameters for one round, sent
// identically to both sides so they render the same targets at the same
// moment.
type RoundPlan struct {
	Round     int         `json:"round"`
	Colors    [2]Color    `json:"colors"`
	Positions [2]Position `json:"positions"`
	// RevealAt is the unix-millisecond timestamp at which both clients
	// reveal the targets.
	RevealAt       int64 `json:"revealAt"`
	ActionWindowMs int   `json:"actionWindowMs"`
}

// Outcome is a side's reported result for a round.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeMiss    Outcome = "miss"
	// OutcomeNone reports that the action window elapsed without input.
	OutcomeNone Outcome = "none"
)

// Valid reports whether the outcome is one of the known tags.
func (o Outcome) Valid() bool {
	switch o {
	case OutcomeSuccess, OutcomeMiss, OutcomeNone:
		return true
	}
	return false
}

// RoundSubmission is one side's reported result for one round. Time is
// only meaningful when State is success.
type RoundSubmission struct {
	State Outcome `json:"state"`
	Time  *int    `json:"time"`
}

// RoundRecord holds the two per-side submission slots for a round. The
// round resolves exactly once, when the second slot fills.
type RoundRecord struct {
	Sides    [2]*RoundSubmission
	Resolved bool
}

// Complete reports whether both slots are filled.
func (r *RoundRecord) Complete() bool {
	return r.Sides[SideA] != nil && r.Sides[SideB] != nil
}

// RoundVerdict is the outcome of comparing the two submissions of a round.
type RoundVerdict int

const (
	VerdictDraw RoundVerdict = iota
	VerdictSideA
	VerdictSideB
)

// Resolve compares the two submissions and returns the round verdict.
// A lone success wins outright; two successes go to the strictly faster
// side; equal times and double failures are draws.
func (r *RoundRecord) Resolve() RoundVerdict {
	a, b := r.Sides[SideA], r.Sides[SideB]
	aHit := a.State == OutcomeSuccess
	bHit := b.State == OutcomeSuccess

	switch {
	case aHit && !bHit:
		return VerdictSideA
	case bHit && !aHit:
		return VerdictSideB
	case !aHit && !bHit:
		return VerdictDraw
	}

	aTime, bTime := submissionTime(a), submissionTime(b)
	switch {
	case aTime < bTime:
		return VerdictSideA
	case bTime < aTime:
		return VerdictSideB
	}
	return VerdictDraw
}

func submissionTime(s *RoundSubmission) int {
	if s.Time == nil {
		// A success without a time should not happen; treat it as
		// slower than any reported time so it never beats a real one.
		return int(^uint(0) >> 1)
	}
	return *s.Time
}
