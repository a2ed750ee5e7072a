package matchview

import (
	"strings"

	"github.com/ioscahub/matchhub/internal/domain/matchdata"
)

const (
	EventGoal   = "goal"
	EventYellow = "yellow"
	EventRed    = "red"
)

const (
	StatusStarted    = "started"
	StatusSubstitute = "substitute"
	StatusOnBench    = "on_bench"
)

// LineupEntry is one declared participant in canonical form.
type LineupEntry struct {
	Position string
	Name     string
	SteamID  string
	Started  bool
}

// FormationSlot is one fixed template coordinate. X and Y are percentages
// of pitch width and height.
type FormationSlot struct {
	Position string
	X        float64
	Y        float64
}

// FormationTemplate is a fixed ordered slot list sized to a squad count.
type FormationTemplate struct {
	Name  string
	Slots []FormationSlot
}

// SlotAssignment binds one template slot to a lineup entry. Entry is nil
// for an empty slot, which renders as a placeholder.
type SlotAssignment struct {
	Slot  FormationSlot
	Entry *LineupEntry
}

// FormationLayout is one side's resolved formation. Overflow holds started
// entries that did not fit any slot; they are reported, never dropped.
type FormationLayout struct {
	Template string
	Slots    []SlotAssignment
	Overflow []LineupEntry
}

// EventLine is one timeline entry. Minutes and Count are mutually
// exclusive: a line either carries sorted de-duplicated minute values or a
// raw occurrence count.
type EventLine struct {
	Kind    string
	Player  string
	Minutes []int
	Count   int
	SortKey int
	Rating  *float64
}

// MvpIdentity cross-references the MVP against lineup and stat output
// without re-deriving MVP status per slot.
type MvpIdentity struct {
	SteamID  string
	Name     string
	Position string
}

// MvpRecord is the selected or reconciled standout player.
type MvpRecord struct {
	Row      matchdata.PlayerStatRow
	Rating   float64
	TieBreak int
	Identity MvpIdentity
}

// TeamMetrics aggregates per-side derived counts.
type TeamMetrics struct {
	Started       int
	Substitutes   int
	Bench         int
	ClutchActions int
	SubImpacts    int
	SubGoals      int
	SubOwnGoals   int
}

// TeamSide is everything derived for one side of the match.
type TeamSide struct {
	Name      string
	Icon      string
	Score     int
	Formation FormationLayout
	Timeline  []EventLine
	Metrics   TeamMetrics
	Ratings   map[string]float64
}

// MatchView is the presentation-ready model for one match.
type MatchView struct {
	Match  matchdata.MatchRecord
	Home   TeamSide
	Away   TeamSide
	MVP    *MvpRecord
	HasMVP bool
}

// NormalizeName lowercases and trims a display name for identity lookups.
func NormalizeName(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// NormalizePosition upper-cases and trims a free-form position code.
func NormalizePosition(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}
