package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/ioscahub/matchhub/internal/domain/matchdata"
)

func TestWarmService_WarmRecent(t *testing.T) {
	t.Parallel()

	payload := matchdata.MatchPayload{
		Match: matchdata.MatchRecord{ID: "m-1", HomeTeamName: "A", AwayTeamName: "B"},
		Home: []matchdata.PlayerStatRow{
			{Name: "anna", Position: "CF", Goals: 1, LineupStatus: "started"},
		},
	}

	t.Run("derives every listed match", func(t *testing.T) {
		repo := stubWarmRepo{
			recent: []matchdata.MatchRecord{{ID: "m-1"}, {ID: "m-2"}},
			payloads: map[string]matchdata.MatchPayload{
				"m-1": payload,
				"m-2": {Match: matchdata.MatchRecord{ID: "m-2"}},
			},
		}
		svc := NewWarmService(repo, 2, nil)

		result, err := svc.WarmRecent(context.Background(), 10)
		if err != nil {
			t.Fatalf("WarmRecent error: %v", err)
		}
		if len(result.Tasks) != 2 {
			t.Fatalf("unexpected task count: got=%d want=2", len(result.Tasks))
		}
		if result.DerivedCount != 2 || result.FailedCount != 0 {
			t.Fatalf("unexpected counts: derived=%d failed=%d", result.DerivedCount, result.FailedCount)
		}
		if result.Tasks[0].MatchID != "m-1" || result.Tasks[1].MatchID != "m-2" {
			t.Fatalf("unexpected task ordering: %+v", result.Tasks)
		}
	})

	t.Run("missing payload counts as failed", func(t *testing.T) {
		repo := stubWarmRepo{
			recent:   []matchdata.MatchRecord{{ID: "m-1"}, {ID: "gone"}},
			payloads: map[string]matchdata.MatchPayload{"m-1": payload},
		}
		svc := NewWarmService(repo, 2, nil)

		result, err := svc.WarmRecent(context.Background(), 10)
		if err != nil {
			t.Fatalf("WarmRecent error: %v", err)
		}
		if result.DerivedCount != 1 || result.FailedCount != 1 {
			t.Fatalf("unexpected counts: derived=%d failed=%d", result.DerivedCount, result.FailedCount)
		}
		for _, task := range result.Tasks {
			if task.MatchID == "gone" && task.Status != warmStatusFailed {
				t.Fatalf("expected failed status for missing payload, got=%s", task.Status)
			}
		}
	})

	t.Run("empty repository is a no-op", func(t *testing.T) {
		svc := NewWarmService(stubWarmRepo{}, 1, nil)
		result, err := svc.WarmRecent(context.Background(), 5)
		if err != nil {
			t.Fatalf("WarmRecent error: %v", err)
		}
		if len(result.Tasks) != 0 {
			t.Fatalf("expected no tasks, got=%d", len(result.Tasks))
		}
	})

	t.Run("list failure aborts the run", func(t *testing.T) {
		svc := NewWarmService(stubWarmRepo{listErr: errors.New("db down")}, 1, nil)
		if _, err := svc.WarmRecent(context.Background(), 5); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("submit failure waits for in-flight tasks", func(t *testing.T) {
		repo := &trackingWarmRepo{stubWarmRepo: stubWarmRepo{
			recent: []matchdata.MatchRecord{{ID: "m-1"}, {ID: "m-2"}},
			payloads: map[string]matchdata.MatchPayload{
				"m-1": payload,
				"m-2": {Match: matchdata.MatchRecord{ID: "m-2"}},
			},
		}}
		svc := NewWarmService(repo, 2, nil)

		submitted := 0
		svc.submitTask = func(_ *ants.Pool, task func()) error {
			submitted++
			if submitted > 1 {
				return errors.New("pool closed")
			}
			go func() {
				time.Sleep(20 * time.Millisecond)
				task()
			}()
			return nil
		}

		_, err := svc.WarmRecent(context.Background(), 10)
		if err == nil {
			t.Fatal("expected submit error")
		}
		if got := repo.gets.Load(); got != 1 {
			t.Fatalf("expected the in-flight task to run to completion before return, gets=%d", got)
		}
	})
}

type trackingWarmRepo struct {
	stubWarmRepo
	gets atomic.Int32
}

func (s *trackingWarmRepo) GetMatchPayload(ctx context.Context, matchID string) (matchdata.MatchPayload, bool, error) {
	s.gets.Add(1)
	return s.stubWarmRepo.GetMatchPayload(ctx, matchID)
}

type stubWarmRepo struct {
	recent   []matchdata.MatchRecord
	payloads map[string]matchdata.MatchPayload
	listErr  error
}

func (s stubWarmRepo) GetMatchPayload(_ context.Context, matchID string) (matchdata.MatchPayload, bool, error) {
	payload, ok := s.payloads[matchID]
	return payload, ok, nil
}

func (s stubWarmRepo) SaveMatchPayload(_ context.Context, _ matchdata.MatchPayload) error {
	return nil
}

func (s stubWarmRepo) ListRecentMatches(_ context.Context, limit int) ([]matchdata.MatchRecord, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	if limit < len(s.recent) {
		return s.recent[:limit], nil
	}
	return s.recent, nil
}
