package matchdata

import "time"

// MatchRecord is one played fixture as the hub stores it. Lineups stay in
// their raw heterogeneous form here; decoding them is matchview's job.
type MatchRecord struct {
	ID           string
	HomeTeamName string
	AwayTeamName string
	HomeTeamIcon string
	AwayTeamIcon string
	HomeScore    int
	AwayScore    int
	ExtraTime    bool
	Penalties    bool
	Comeback     bool
	KickoffAt    time.Time
	Competition  string
	GameType     string
	HomeLineup   []any
	AwayLineup   []any
}

// PlayerStatRow is one player's aggregated statistics for a match on one
// side. Counters default to zero when the provider omits them. Optional
// provider fields that arrive under varying key spellings (explicit rating,
// event minute maps) live in Extra and are resolved by synonym lookup.
type PlayerStatRow struct {
	SteamID         string
	Name            string
	Position        string
	Goals           int
	Assists         int
	SecondAssists   int
	Saves           int
	Tackles         int
	Interceptions   int
	ChancesCreated  int
	KeyPasses       int
	ShotsOnGoal     int
	PassesCompleted int
	PassesAttempted int
	YellowCards     int
	RedCards        int
	OwnGoals        int
	GoalsConceded   int
	LineupStatus    string
	EventMinutes    any
	SubImpacts      []any
	ClutchActions   []any
	Extra           map[string]any
}

// PrecomputedEvent is one provider-supplied timeline entry. When the
// provider sends these, they are trusted over re-derivation.
type PrecomputedEvent struct {
	Kind    string
	Player  string
	Minutes []int
	Count   int
}

// MatchPayload is the full already-decoded provider payload for one match.
// MVP and the event lists are optional precomputed fields.
type MatchPayload struct {
	Match      MatchRecord
	Home       []PlayerStatRow
	Away       []PlayerStatRow
	Neutral    []PlayerStatRow
	MVP        *PlayerStatRow
	HomeEvents []PrecomputedEvent
	AwayEvents []PrecomputedEvent
}

// AllRows returns home, away and neutral rows in payload order.
func (p MatchPayload) AllRows() []PlayerStatRow {
	out := make([]PlayerStatRow, 0, len(p.Home)+len(p.Away)+len(p.Neutral))
	out = append(out, p.Home...)
	out = append(out, p.Away...)
	out = append(out, p.Neutral...)
	return out
}
