package httpapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/ioscahub/matchhub/internal/platform/logging"
	"github.com/ioscahub/matchhub/internal/usecase"
)

type Handler struct {
	matchViewService *usecase.MatchViewService
	ingestService    *usecase.IngestService
	warmService      *usecase.WarmService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	matchViewService *usecase.MatchViewService,
	ingestService *usecase.IngestService,
	warmService *usecase.WarmService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		matchViewService: matchViewService,
		ingestService:    ingestService,
		warmService:      warmService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}
