package matchdata

import "context"

// Repository stores match payloads uploaded by game servers and serves
// them back for view derivation.
type Repository interface {
	GetMatchPayload(ctx context.Context, matchID string) (MatchPayload, bool, error)
	ListRecentMatches(ctx context.Context, limit int) ([]MatchRecord, error)
	SaveMatchPayload(ctx context.Context, payload MatchPayload) error
}
