package memory

import (
	"context"
	"testing"
	"time"

	"github.com/ioscahub/matchhub/internal/domain/matchdata"
)

func TestMatchRepository_GetMatchPayload(t *testing.T) {
	repo := NewMatchRepository(SeedMatches())

	t.Run("returns seeded payload", func(t *testing.T) {
		payload, found, err := repo.GetMatchPayload(context.Background(), MatchIDDerby)
		if err != nil {
			t.Fatalf("GetMatchPayload error: %v", err)
		}
		if !found {
			t.Fatal("expected seeded match to exist")
		}
		if payload.Match.HomeTeamName != "Crimson Harbour" {
			t.Fatalf("unexpected home team: %s", payload.Match.HomeTeamName)
		}
		if len(payload.Home) == 0 || len(payload.Away) == 0 {
			t.Fatal("expected player rows on both sides")
		}
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		_, found, err := repo.GetMatchPayload(context.Background(), "missing")
		if err != nil {
			t.Fatalf("GetMatchPayload error: %v", err)
		}
		if found {
			t.Fatal("expected not found")
		}
	})
}

func TestMatchRepository_ListRecentMatches(t *testing.T) {
	repo := NewMatchRepository(SeedMatches())

	t.Run("orders newest first", func(t *testing.T) {
		matches, err := repo.ListRecentMatches(context.Background(), 10)
		if err != nil {
			t.Fatalf("ListRecentMatches error: %v", err)
		}
		if len(matches) != 2 {
			t.Fatalf("unexpected match count: got=%d want=2", len(matches))
		}
		if matches[0].ID != MatchIDCupFinal {
			t.Fatalf("expected newest match first, got=%s", matches[0].ID)
		}
	})

	t.Run("honors the limit", func(t *testing.T) {
		matches, err := repo.ListRecentMatches(context.Background(), 1)
		if err != nil {
			t.Fatalf("ListRecentMatches error: %v", err)
		}
		if len(matches) != 1 {
			t.Fatalf("unexpected match count: got=%d want=1", len(matches))
		}
	})
}

func TestMatchRepository_SaveMatchPayload(t *testing.T) {
	repo := NewMatchRepository(nil)

	payload := matchdata.MatchPayload{
		Match: matchdata.MatchRecord{
			ID:           "m-new",
			HomeTeamName: "A",
			AwayTeamName: "B",
			KickoffAt:    time.Date(2026, time.April, 1, 18, 0, 0, 0, time.UTC),
		},
	}
	if err := repo.SaveMatchPayload(context.Background(), payload); err != nil {
		t.Fatalf("SaveMatchPayload error: %v", err)
	}

	stored, found, err := repo.GetMatchPayload(context.Background(), "m-new")
	if err != nil {
		t.Fatalf("GetMatchPayload error: %v", err)
	}
	if !found {
		t.Fatal("expected saved match to be readable")
	}
	if stored.Match.AwayTeamName != "B" {
		t.Fatalf("unexpected away team: %s", stored.Match.AwayTeamName)
	}

	t.Run("save overwrites existing payload", func(t *testing.T) {
		payload.Match.AwayTeamName = "C"
		if err := repo.SaveMatchPayload(context.Background(), payload); err != nil {
			t.Fatalf("SaveMatchPayload error: %v", err)
		}
		stored, _, err := repo.GetMatchPayload(context.Background(), "m-new")
		if err != nil {
			t.Fatalf("GetMatchPayload error: %v", err)
		}
		if stored.Match.AwayTeamName != "C" {
			t.Fatalf("unexpected away team after overwrite: %s", stored.Match.AwayTeamName)
		}
	})
}
