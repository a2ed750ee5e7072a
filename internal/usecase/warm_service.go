package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/ioscahub/matchhub/internal/domain/matchdata"
	"github.com/ioscahub/matchhub/internal/domain/matchview"
	"github.com/ioscahub/matchhub/internal/platform/logging"
)

const defaultWarmWorkerCount = 4

// WarmService pre-derives match views for recent matches so the first page
// load after a match upload does not pay the derivation cost.
type WarmService struct {
	matchRepo   matchdata.Repository
	logger      *logging.Logger
	workerCount int
	submitTask  func(pool *ants.Pool, task func()) error
}

type WarmTaskResult struct {
	MatchID    string
	Status     string
	Message    string
	DurationMs int64
}

type WarmResult struct {
	Tasks        []WarmTaskResult
	DerivedCount int
	FailedCount  int
}

const (
	warmStatusDerived = "derived"
	warmStatusFailed  = "failed"
)

func NewWarmService(matchRepo matchdata.Repository, workerCount int, logger *logging.Logger) *WarmService {
	if workerCount <= 0 {
		workerCount = defaultWarmWorkerCount
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &WarmService{
		matchRepo:   matchRepo,
		logger:      logger,
		workerCount: workerCount,
		submitTask: func(pool *ants.Pool, task func()) error {
			return pool.Submit(task)
		},
	}
}

func (s *WarmService) WarmRecent(ctx context.Context, limit int) (WarmResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WarmService.WarmRecent")
	defer span.End()

	if limit <= 0 {
		limit = defaultRecentMatchLimit
	}

	matches, err := s.matchRepo.ListRecentMatches(ctx, limit)
	if err != nil {
		return WarmResult{}, fmt.Errorf("list recent matches for warm: %w", err)
	}
	if len(matches) == 0 {
		return WarmResult{Tasks: []WarmTaskResult{}}, nil
	}

	results := make(chan WarmTaskResult, len(matches))

	var derivedCount atomic.Int32
	var failedCount atomic.Int32

	pool, err := ants.NewPool(s.workerCount)
	if err != nil {
		return WarmResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	var submitErr error
	for _, match := range matches {
		match := match
		workers.Add(1)
		if err := s.submitTask(pool, func() {
			defer workers.Done()

			start := time.Now()
			row := WarmTaskResult{MatchID: match.ID}

			status, message := s.warmOne(ctx, match.ID)
			row.Status = status
			row.Message = message
			row.DurationMs = time.Since(start).Milliseconds()

			if status == warmStatusDerived {
				derivedCount.Add(1)
			} else {
				failedCount.Add(1)
			}

			results <- row
		}); err != nil {
			workers.Done()
			submitErr = fmt.Errorf("submit warm task: %w", err)
			break
		}
	}

	// Already-submitted tasks keep running after a submit failure; wait
	// for them so no work is left in flight when the error is returned.
	workers.Wait()
	close(results)

	if submitErr != nil {
		return WarmResult{}, submitErr
	}

	result := WarmResult{Tasks: make([]WarmTaskResult, 0, len(matches))}
	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}
	sort.SliceStable(result.Tasks, func(i, j int) bool {
		return result.Tasks[i].MatchID < result.Tasks[j].MatchID
	})

	result.DerivedCount = int(derivedCount.Load())
	result.FailedCount = int(failedCount.Load())

	s.logger.InfoContext(ctx, "warm run finished",
		"matches", len(matches),
		"derived", result.DerivedCount,
		"failed", result.FailedCount,
	)
	return result, nil
}

func (s *WarmService) warmOne(ctx context.Context, matchID string) (string, string) {
	payload, found, err := s.matchRepo.GetMatchPayload(ctx, matchID)
	if err != nil {
		return warmStatusFailed, err.Error()
	}
	if !found {
		return warmStatusFailed, "match payload missing"
	}

	view := matchview.Derive(payload)
	if !view.HasMVP && len(payload.AllRows()) > 0 {
		// Derive never fails; an unexpected empty MVP with rows present
		// is still worth surfacing in the task log.
		return warmStatusDerived, "derived without mvp"
	}
	return warmStatusDerived, ""
}
