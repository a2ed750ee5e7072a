// Package memory backs the match repository with process-local state so
// the API can run without a database.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ioscahub/matchhub/internal/domain/matchdata"
)

type MatchRepository struct {
	mu       sync.RWMutex
	payloads map[string]matchdata.MatchPayload
}

func NewMatchRepository(payloads []matchdata.MatchPayload) *MatchRepository {
	store := make(map[string]matchdata.MatchPayload, len(payloads))
	for _, payload := range payloads {
		store[payload.Match.ID] = payload
	}
	return &MatchRepository{payloads: store}
}

func (r *MatchRepository) GetMatchPayload(_ context.Context, matchID string) (matchdata.MatchPayload, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payload, ok := r.payloads[matchID]
	return payload, ok, nil
}

func (r *MatchRepository) ListRecentMatches(_ context.Context, limit int) ([]matchdata.MatchRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]matchdata.MatchRecord, 0, len(r.payloads))
	for _, payload := range r.payloads {
		out = append(out, payload.Match)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].KickoffAt.Equal(out[j].KickoffAt) {
			return out[i].KickoffAt.After(out[j].KickoffAt)
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *MatchRepository) SaveMatchPayload(_ context.Context, payload matchdata.MatchPayload) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.payloads[payload.Match.ID] = payload
	return nil
}
