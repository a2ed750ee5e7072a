package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ioscahub/matchhub/internal/domain/matchdata"
	"github.com/ioscahub/matchhub/internal/domain/matchview"
	"github.com/ioscahub/matchhub/internal/platform/logging"
)

const defaultRecentMatchLimit = 50

// MatchViewService derives presentation-ready match views from provider
// payloads.
type MatchViewService struct {
	matchRepo matchdata.Repository
	logger    *logging.Logger
}

func NewMatchViewService(matchRepo matchdata.Repository, logger *logging.Logger) *MatchViewService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchViewService{
		matchRepo: matchRepo,
		logger:    logger,
	}
}

func (s *MatchViewService) GetMatchView(ctx context.Context, matchID string) (matchview.MatchView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchViewService.GetMatchView")
	defer span.End()

	payload, err := s.getPayload(ctx, matchID)
	if err != nil {
		return matchview.MatchView{}, err
	}

	view := matchview.Derive(payload)
	s.logger.DebugContext(ctx, "match view derived",
		"match_id", matchID,
		"has_mvp", view.HasMVP,
		"home_timeline", len(view.Home.Timeline),
		"away_timeline", len(view.Away.Timeline),
	)
	return view, nil
}

func (s *MatchViewService) GetMatchPayload(ctx context.Context, matchID string) (matchdata.MatchPayload, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchViewService.GetMatchPayload")
	defer span.End()

	return s.getPayload(ctx, matchID)
}

// DeriveFromPayload derives a view from an already-decoded payload without
// touching the repository. Used by callers that carry their own data.
func (s *MatchViewService) DeriveFromPayload(ctx context.Context, payload matchdata.MatchPayload) matchview.MatchView {
	_, span := startUsecaseSpan(ctx, "usecase.MatchViewService.DeriveFromPayload")
	defer span.End()

	return matchview.Derive(payload)
}

func (s *MatchViewService) ListRecentMatches(ctx context.Context, limit int) ([]matchdata.MatchRecord, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchViewService.ListRecentMatches")
	defer span.End()

	if limit <= 0 {
		limit = defaultRecentMatchLimit
	}

	matches, err := s.matchRepo.ListRecentMatches(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent matches: %w", err)
	}
	return matches, nil
}

func (s *MatchViewService) getPayload(ctx context.Context, matchID string) (matchdata.MatchPayload, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return matchdata.MatchPayload{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	payload, found, err := s.matchRepo.GetMatchPayload(ctx, matchID)
	if err != nil {
		return matchdata.MatchPayload{}, fmt.Errorf("get match payload id=%s: %w", matchID, err)
	}
	if !found {
		return matchdata.MatchPayload{}, fmt.Errorf("%w: match %s", ErrNotFound, matchID)
	}
	return payload, nil
}
