package matchview

import (
	"testing"

	"github.com/ioscahub/matchhub/internal/domain/matchdata"
)

func TestResolveMVP(t *testing.T) {
	t.Run("empty combined set yields no mvp", func(t *testing.T) {
		_, ok := ResolveMVP(nil, nil)
		if ok {
			t.Fatalf("expected no MVP for empty input")
		}
	})

	t.Run("highest rating wins", func(t *testing.T) {
		rows := []matchdata.PlayerStatRow{
			{Name: "quiet"},
			{Name: "scorer", Goals: 2},
			{Name: "helper", Assists: 1},
		}

		got, ok := ResolveMVP(rows, nil)
		if !ok {
			t.Fatalf("expected an MVP")
		}
		if got.Row.Name != "scorer" {
			t.Fatalf("unexpected MVP: got=%s want=scorer", got.Row.Name)
		}
		if got.Identity.Name != "scorer" {
			t.Fatalf("unexpected identity name: got=%s", got.Identity.Name)
		}
	})

	t.Run("rating tie broken by secondary score", func(t *testing.T) {
		// Both rate identically through the explicit rating; more goals
		// must win the tie.
		rows := []matchdata.PlayerStatRow{
			{Name: "one goal", Goals: 1, Extra: map[string]any{"rating": 8.0}},
			{Name: "two goals", Goals: 2, Extra: map[string]any{"rating": 8.0}},
		}

		got, ok := ResolveMVP(rows, nil)
		if !ok || got.Row.Name != "two goals" {
			t.Fatalf("unexpected MVP: %+v", got.Row.Name)
		}
	})

	t.Run("full tie keeps first row", func(t *testing.T) {
		rows := []matchdata.PlayerStatRow{
			{Name: "first", Goals: 1},
			{Name: "second", Goals: 1},
		}

		got, ok := ResolveMVP(rows, nil)
		if !ok || got.Row.Name != "first" {
			t.Fatalf("unexpected MVP: %+v", got.Row.Name)
		}
	})

	t.Run("supplied record merges matching local row", func(t *testing.T) {
		rows := []matchdata.PlayerStatRow{
			{Name: "Scorer", Position: "cf", SteamID: "765010", Goals: 3, Assists: 1},
		}
		supplied := &matchdata.PlayerStatRow{Name: "scorer", Position: "CF"}

		got, ok := ResolveMVP(rows, supplied)
		if !ok {
			t.Fatalf("expected an MVP")
		}
		if got.Row.Goals != 3 || got.Row.SteamID != "765010" {
			t.Fatalf("local fields must fill gaps: %+v", got.Row)
		}
		if got.Rating != Rate(rows[0]) {
			t.Fatalf("rating must be recomputed from the merge: got=%v want=%v", got.Rating, Rate(rows[0]))
		}
		if got.Identity.Position != "CF" {
			t.Fatalf("unexpected identity position: got=%s", got.Identity.Position)
		}
	})

	t.Run("supplied fields are not overwritten by merge", func(t *testing.T) {
		rows := []matchdata.PlayerStatRow{
			{Name: "scorer", Goals: 3, SteamID: "765011"},
		}
		supplied := &matchdata.PlayerStatRow{Name: "scorer", Goals: 5}

		got, _ := ResolveMVP(rows, supplied)
		if got.Row.Goals != 5 {
			t.Fatalf("supplied counter must win: got=%d want=5", got.Row.Goals)
		}
		if got.Row.SteamID != "765011" {
			t.Fatalf("missing supplied field must be filled locally: got=%q", got.Row.SteamID)
		}
	})

	t.Run("unmatched supplied record is used as is", func(t *testing.T) {
		rows := []matchdata.PlayerStatRow{
			{Name: "somebody", Goals: 4},
		}
		supplied := &matchdata.PlayerStatRow{Name: "stranger", Assists: 2}

		got, ok := ResolveMVP(rows, supplied)
		if !ok {
			t.Fatalf("expected an MVP")
		}
		if got.Row.Goals != 0 {
			t.Fatalf("unmatched record must stay unmerged: %+v", got.Row)
		}
		if got.Rating != Rate(*supplied) {
			t.Fatalf("rating must come from the supplied fields: got=%v want=%v", got.Rating, Rate(*supplied))
		}
	})

	t.Run("position mismatch blocks the merge", func(t *testing.T) {
		rows := []matchdata.PlayerStatRow{
			{Name: "scorer", Position: "GK", Saves: 9},
		}
		supplied := &matchdata.PlayerStatRow{Name: "scorer", Position: "CF"}

		got, _ := ResolveMVP(rows, supplied)
		if got.Row.Saves != 0 {
			t.Fatalf("rows with different positions must not merge: %+v", got.Row)
		}
	})
}
