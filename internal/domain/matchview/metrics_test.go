package matchview

import (
	"testing"

	"github.com/ioscahub/matchhub/internal/domain/matchdata"
)

func TestDeriveTeamMetrics(t *testing.T) {
	rows := []matchdata.PlayerStatRow{
		{Name: "a", LineupStatus: StatusStarted, ClutchActions: []any{"block"}},
		{Name: "b", LineupStatus: StatusStarted},
		{Name: "c", LineupStatus: StatusSubstitute, Goals: 2, OwnGoals: 1, SubImpacts: []any{map[string]any{}, map[string]any{}}},
		{Name: "d", LineupStatus: StatusOnBench},
		{Name: "e"},
	}

	got := DeriveTeamMetrics(rows)
	if got.Started != 2 || got.Substitutes != 1 || got.Bench != 1 {
		t.Fatalf("unexpected status counts: %+v", got)
	}
	if got.ClutchActions != 1 {
		t.Fatalf("unexpected clutch count: got=%d want=1", got.ClutchActions)
	}
	if got.SubImpacts != 2 {
		t.Fatalf("unexpected sub impact count: got=%d want=2", got.SubImpacts)
	}
	if got.SubGoals != 2 || got.SubOwnGoals != 1 {
		t.Fatalf("unexpected substitute goal counts: %+v", got)
	}
}

func TestDeriveTeamMetricsEmpty(t *testing.T) {
	got := DeriveTeamMetrics(nil)
	if got != (TeamMetrics{}) {
		t.Fatalf("unexpected metrics for empty input: %+v", got)
	}
}
