package cache

import (
	"context"
	"strconv"

	"github.com/ioscahub/matchhub/internal/domain/matchdata"
	basecache "github.com/ioscahub/matchhub/internal/platform/cache"
)

const (
	payloadKeyPrefix = "match:payload:"
	recentKeyPrefix  = "match:recent:"
)

// MatchRepository caches reads of an underlying match repository. Saves go
// straight through and invalidate the affected keys, so a freshly uploaded
// match is visible on the next read.
type MatchRepository struct {
	next  matchdata.Repository
	cache *basecache.Store
}

func NewMatchRepository(next matchdata.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) GetMatchPayload(ctx context.Context, matchID string) (matchdata.MatchPayload, bool, error) {
	key := payloadKeyPrefix + matchID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		payload, exists, err := r.next.GetMatchPayload(ctx, matchID)
		if err != nil {
			return nil, err
		}
		return cachedPayload{value: payload, exists: exists}, nil
	})
	if err != nil {
		return matchdata.MatchPayload{}, false, err
	}

	cached, _ := v.(cachedPayload)
	return cached.value, cached.exists, nil
}

type cachedPayload struct {
	value  matchdata.MatchPayload
	exists bool
}

func (r *MatchRepository) ListRecentMatches(ctx context.Context, limit int) ([]matchdata.MatchRecord, error) {
	key := recentKeyPrefix + strconv.Itoa(limit)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListRecentMatches(ctx, limit)
		if err != nil {
			return nil, err
		}
		return append([]matchdata.MatchRecord(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]matchdata.MatchRecord)
	return append([]matchdata.MatchRecord(nil), items...), nil
}

func (r *MatchRepository) SaveMatchPayload(ctx context.Context, payload matchdata.MatchPayload) error {
	if err := r.next.SaveMatchPayload(ctx, payload); err != nil {
		return err
	}

	r.cache.Delete(ctx, payloadKeyPrefix+payload.Match.ID)
	r.cache.DeletePrefix(ctx, recentKeyPrefix)
	return nil
}
