package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/ioscahub/matchhub/internal/domain/matchdata"
	"github.com/ioscahub/matchhub/internal/usecase"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	limit := parseLimitParam(r.URL.Query().Get("limit"))
	matches, err := h.matchViewService.ListRecentMatches(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchSummaryDTO, 0, len(matches))
	for _, match := range matches {
		items = append(items, matchToSummaryDTO(match))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	payload, err := h.matchViewService.GetMatchPayload(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, payloadToDTO(payload))
}

func (h *Handler) GetMatchView(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchView")
	defer span.End()

	matchID := r.PathValue("matchID")
	view, err := h.matchViewService.GetMatchView(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match view failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, viewToDTO(view))
}

func (h *Handler) DeriveMatchView(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeriveMatchView")
	defer span.End()

	req, err := h.decodeMatchPayload(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view := h.matchViewService.DeriveFromPayload(ctx, req.toDomain())
	writeSuccess(ctx, w, http.StatusOK, viewToDTO(view))
}

func (h *Handler) IngestMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestMatch")
	defer span.End()

	req, err := h.decodeMatchPayload(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.ingestService.SaveMatch(ctx, req.toDomain()); err != nil {
		h.logger.WarnContext(ctx, "ingest match failed", "match_id", req.Match.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, map[string]string{"match_id": strings.TrimSpace(req.Match.ID)})
}

func (h *Handler) WarmMatchViews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.WarmMatchViews")
	defer span.End()

	limit := parseLimitParam(r.URL.Query().Get("limit"))
	result, err := h.warmService.WarmRecent(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "warm run failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	tasks := make([]warmTaskDTO, 0, len(result.Tasks))
	for _, task := range result.Tasks {
		tasks = append(tasks, warmTaskDTO{
			MatchID:    task.MatchID,
			Status:     task.Status,
			Message:    task.Message,
			DurationMs: task.DurationMs,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, warmResultDTO{
		Derived: result.DerivedCount,
		Failed:  result.FailedCount,
		Tasks:   tasks,
	})
}

func (h *Handler) decodeMatchPayload(ctx context.Context, r *http.Request) (matchPayloadRequest, error) {
	var req matchPayloadRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		return matchPayloadRequest{}, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	if err := h.validateRequest(ctx, req); err != nil {
		return matchPayloadRequest{}, err
	}
	return req, nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func parseLimitParam(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

type matchPayloadRequest struct {
	Match      matchRecordRequest     `json:"match" validate:"required"`
	Home       []playerStatRowRequest `json:"home_stats" validate:"dive"`
	Away       []playerStatRowRequest `json:"away_stats" validate:"dive"`
	Neutral    []playerStatRowRequest `json:"neutral_stats" validate:"dive"`
	MVP        *playerStatRowRequest  `json:"mvp"`
	HomeEvents []precomputedEventDTO  `json:"home_events"`
	AwayEvents []precomputedEventDTO  `json:"away_events"`
}

type matchRecordRequest struct {
	ID          string `json:"match_id"`
	HomeTeam    string `json:"home_team" validate:"required"`
	AwayTeam    string `json:"away_team" validate:"required"`
	HomeIcon    string `json:"home_icon"`
	AwayIcon    string `json:"away_icon"`
	HomeScore   int    `json:"home_score" validate:"min=0"`
	AwayScore   int    `json:"away_score" validate:"min=0"`
	ExtraTime   bool   `json:"extratime"`
	Penalties   bool   `json:"penalties"`
	Comeback    bool   `json:"comeback"`
	KickoffAt   string `json:"kickoff_at"`
	Competition string `json:"competition"`
	GameType    string `json:"game_type"`
	HomeLineup  []any  `json:"home_lineup"`
	AwayLineup  []any  `json:"away_lineup"`
}

type playerStatRowRequest struct {
	SteamID         string         `json:"steam_id"`
	Name            string         `json:"discord_name" validate:"required"`
	Position        string         `json:"position"`
	Goals           int            `json:"goals"`
	Assists         int            `json:"assists"`
	SecondAssists   int            `json:"second_assists"`
	Saves           int            `json:"keeper_saves"`
	Tackles         int            `json:"tackles"`
	Interceptions   int            `json:"interceptions"`
	ChancesCreated  int            `json:"chances_created"`
	KeyPasses       int            `json:"key_passes"`
	ShotsOnGoal     int            `json:"shots_on_goal"`
	PassesCompleted int            `json:"passes_completed"`
	PassesAttempted int            `json:"passes_attempted"`
	YellowCards     int            `json:"yellow_cards"`
	RedCards        int            `json:"red_cards"`
	OwnGoals        int            `json:"own_goals"`
	GoalsConceded   int            `json:"goals_conceded"`
	LineupStatus    string         `json:"lineup_status"`
	EventMinutes    any            `json:"event_minutes"`
	SubImpacts      []any          `json:"sub_impacts"`
	ClutchActions   []any          `json:"clutch_actions"`
	Extra           map[string]any `json:"extra"`
}

func (r matchPayloadRequest) toDomain() matchdata.MatchPayload {
	payload := matchdata.MatchPayload{
		Match:      r.Match.toDomain(),
		Home:       statRowsToDomain(r.Home),
		Away:       statRowsToDomain(r.Away),
		Neutral:    statRowsToDomain(r.Neutral),
		HomeEvents: eventsToDomain(r.HomeEvents),
		AwayEvents: eventsToDomain(r.AwayEvents),
	}
	if r.MVP != nil {
		mvp := r.MVP.toDomain()
		payload.MVP = &mvp
	}
	return payload
}

func (r matchRecordRequest) toDomain() matchdata.MatchRecord {
	return matchdata.MatchRecord{
		ID:           r.ID,
		HomeTeamName: r.HomeTeam,
		AwayTeamName: r.AwayTeam,
		HomeTeamIcon: r.HomeIcon,
		AwayTeamIcon: r.AwayIcon,
		HomeScore:    r.HomeScore,
		AwayScore:    r.AwayScore,
		ExtraTime:    r.ExtraTime,
		Penalties:    r.Penalties,
		Comeback:     r.Comeback,
		KickoffAt:    parseKickoff(r.KickoffAt),
		Competition:  r.Competition,
		GameType:     r.GameType,
		HomeLineup:   r.HomeLineup,
		AwayLineup:   r.AwayLineup,
	}
}

func (r playerStatRowRequest) toDomain() matchdata.PlayerStatRow {
	return matchdata.PlayerStatRow{
		SteamID:         r.SteamID,
		Name:            r.Name,
		Position:        r.Position,
		Goals:           r.Goals,
		Assists:         r.Assists,
		SecondAssists:   r.SecondAssists,
		Saves:           r.Saves,
		Tackles:         r.Tackles,
		Interceptions:   r.Interceptions,
		ChancesCreated:  r.ChancesCreated,
		KeyPasses:       r.KeyPasses,
		ShotsOnGoal:     r.ShotsOnGoal,
		PassesCompleted: r.PassesCompleted,
		PassesAttempted: r.PassesAttempted,
		YellowCards:     r.YellowCards,
		RedCards:        r.RedCards,
		OwnGoals:        r.OwnGoals,
		GoalsConceded:   r.GoalsConceded,
		LineupStatus:    r.LineupStatus,
		EventMinutes:    r.EventMinutes,
		SubImpacts:      r.SubImpacts,
		ClutchActions:   r.ClutchActions,
		Extra:           r.Extra,
	}
}

func statRowsToDomain(rows []playerStatRowRequest) []matchdata.PlayerStatRow {
	if len(rows) == 0 {
		return nil
	}
	out := make([]matchdata.PlayerStatRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}

func eventsToDomain(events []precomputedEventDTO) []matchdata.PrecomputedEvent {
	if len(events) == 0 {
		return nil
	}
	out := make([]matchdata.PrecomputedEvent, 0, len(events))
	for _, event := range events {
		out = append(out, matchdata.PrecomputedEvent{
			Kind:    event.Kind,
			Player:  event.Player,
			Minutes: event.Minutes,
			Count:   event.Count,
		})
	}
	return out
}
