package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ioscahub/matchhub/internal/domain/matchdata"
	"github.com/ioscahub/matchhub/internal/platform/logging"
)

// IngestService accepts match payloads uploaded by game servers and
// stores them for later derivation.
type IngestService struct {
	matchRepo matchdata.Repository
	logger    *logging.Logger
}

func NewIngestService(matchRepo matchdata.Repository, logger *logging.Logger) *IngestService {
	if logger == nil {
		logger = logging.Default()
	}
	return &IngestService{matchRepo: matchRepo, logger: logger}
}

func (s *IngestService) SaveMatch(ctx context.Context, payload matchdata.MatchPayload) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestService.SaveMatch")
	defer span.End()

	payload.Match.ID = strings.TrimSpace(payload.Match.ID)
	payload.Match.HomeTeamName = strings.TrimSpace(payload.Match.HomeTeamName)
	payload.Match.AwayTeamName = strings.TrimSpace(payload.Match.AwayTeamName)

	if payload.Match.ID == "" {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if payload.Match.HomeTeamName == "" || payload.Match.AwayTeamName == "" {
		return fmt.Errorf("%w: both team names are required", ErrInvalidInput)
	}
	if payload.Match.HomeScore < 0 || payload.Match.AwayScore < 0 {
		return fmt.Errorf("%w: scores cannot be negative", ErrInvalidInput)
	}

	if err := s.matchRepo.SaveMatchPayload(ctx, payload); err != nil {
		return fmt.Errorf("save match payload: %w", err)
	}

	s.logger.InfoContext(ctx, "match payload stored",
		"match_id", payload.Match.ID,
		"home", payload.Match.HomeTeamName,
		"away", payload.Match.AwayTeamName,
		"rows", len(payload.AllRows()),
	)
	return nil
}
