package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/ioscahub/matchhub/internal/domain/matchdata"
)

func TestMatchFromRow(t *testing.T) {
	kickoff := time.Date(2026, time.March, 14, 20, 0, 0, 0, time.UTC)
	row := matchTableModel{
		MatchID:     "m-1",
		GuildID:     "g-1",
		HomeTeam:    "Red Star",
		AwayTeam:    "Blue Moon",
		HomeIcon:    sql.NullString{String: "https://cdn/red.png", Valid: true},
		HomeScore:   3,
		AwayScore:   2,
		ExtraTime:   true,
		GameType:    sql.NullString{String: "8v8", Valid: true},
		Competition: sql.NullString{String: "League A", Valid: true},
		KickoffAt:   kickoff,
		HomeLineup:  []byte(`[["GK","anna","76561198000000001"]]`),
	}

	got := matchFromRow(row)
	if got.ID != "m-1" || got.HomeTeamName != "Red Star" || got.AwayTeamName != "Blue Moon" {
		t.Fatalf("unexpected identity fields: %+v", got)
	}
	if got.HomeTeamIcon != "https://cdn/red.png" || got.AwayTeamIcon != "" {
		t.Fatalf("unexpected icons: %+v", got)
	}
	if !got.ExtraTime || got.Penalties {
		t.Fatalf("unexpected flags: %+v", got)
	}
	if got.GameType != "8v8" || got.Competition != "League A" {
		t.Fatalf("unexpected metadata: %+v", got)
	}
	if !got.KickoffAt.Equal(kickoff) {
		t.Fatalf("unexpected kickoff: %v", got.KickoffAt)
	}
	if len(got.HomeLineup) != 1 {
		t.Fatalf("unexpected home lineup: %+v", got.HomeLineup)
	}
	if got.AwayLineup != nil {
		t.Fatalf("expected nil away lineup, got %+v", got.AwayLineup)
	}
}

func TestStatFromRow(t *testing.T) {
	row := playerRowTableModel{
		MatchID:       "m-1",
		Side:          sideHome,
		SteamID:       sql.NullString{String: "76561198000000001", Valid: true},
		Name:          "anna",
		Position:      sql.NullString{String: "CF", Valid: true},
		LineupStatus:  sql.NullString{String: "started", Valid: true},
		Goals:         2,
		Assists:       1,
		Saves:         0,
		EventMinutes:  []byte(`{"goal":[12,44]}`),
		SubImpacts:    []byte(`[]`),
		ClutchActions: []byte(`["block"]`),
		Extra:         []byte(`{"rating":8.1}`),
	}

	got := statFromRow(row)
	if got.Name != "anna" || got.SteamID != "76561198000000001" || got.Position != "CF" {
		t.Fatalf("unexpected identity fields: %+v", got)
	}
	if got.Goals != 2 || got.Assists != 1 {
		t.Fatalf("unexpected counters: %+v", got)
	}
	if got.LineupStatus != "started" {
		t.Fatalf("unexpected lineup status: %s", got.LineupStatus)
	}
	minutes, ok := got.EventMinutes.(map[string]any)
	if !ok {
		t.Fatalf("expected decoded minute map, got %T", got.EventMinutes)
	}
	if _, found := minutes["goal"]; !found {
		t.Fatalf("expected goal minutes: %+v", minutes)
	}
	if len(got.ClutchActions) != 1 {
		t.Fatalf("unexpected clutch actions: %+v", got.ClutchActions)
	}
	if got.Extra["rating"] != 8.1 {
		t.Fatalf("unexpected extra map: %+v", got.Extra)
	}
}

func TestEncodeMVPRoundTrip(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		if got := encodeMVP(nil); got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
		if got := decodeMVP(nil); got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})

	t.Run("round trips the row", func(t *testing.T) {
		mvp := &matchdata.PlayerStatRow{Name: "anna", Position: "CF", Goals: 2}
		encoded, ok := encodeMVP(mvp).(string)
		if !ok {
			t.Fatalf("expected string encoding, got %T", encodeMVP(mvp))
		}
		decoded := decodeMVP([]byte(encoded))
		if decoded == nil || decoded.Name != "anna" || decoded.Goals != 2 {
			t.Fatalf("unexpected decoded mvp: %+v", decoded)
		}
	})
}

func TestEncodeEventsRoundTrip(t *testing.T) {
	events := []matchdata.PrecomputedEvent{
		{Kind: "goal", Player: "anna", Minutes: []int{12, 44}},
		{Kind: "yellow", Player: "bo", Count: 1},
	}
	decoded := decodeEvents([]byte(encodeEvents(events)))
	if len(decoded) != 2 {
		t.Fatalf("unexpected decoded length: got=%d want=2", len(decoded))
	}
	if decoded[0].Kind != "goal" || len(decoded[0].Minutes) != 2 {
		t.Fatalf("unexpected first event: %+v", decoded[0])
	}
	if decoded[1].Count != 1 {
		t.Fatalf("unexpected second event: %+v", decoded[1])
	}
}
