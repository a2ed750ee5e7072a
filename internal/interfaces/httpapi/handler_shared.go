package httpapi

import (
	"strings"
	"time"

	"github.com/ioscahub/matchhub/internal/domain/matchdata"
	"github.com/ioscahub/matchhub/internal/domain/matchview"
)

type matchSummaryDTO struct {
	MatchID     string `json:"match_id"`
	HomeTeam    string `json:"home_team"`
	AwayTeam    string `json:"away_team"`
	HomeIcon    string `json:"home_icon,omitempty"`
	AwayIcon    string `json:"away_icon,omitempty"`
	HomeScore   int    `json:"home_score"`
	AwayScore   int    `json:"away_score"`
	ExtraTime   bool   `json:"extratime"`
	Penalties   bool   `json:"penalties"`
	Comeback    bool   `json:"comeback"`
	KickoffAt   string `json:"kickoff_at,omitempty"`
	Competition string `json:"competition,omitempty"`
	GameType    string `json:"game_type,omitempty"`
}

type matchPayloadDTO struct {
	Match      matchSummaryDTO       `json:"match"`
	HomeLineup []any                 `json:"home_lineup,omitempty"`
	AwayLineup []any                 `json:"away_lineup,omitempty"`
	Home       []playerStatRowDTO    `json:"home_stats"`
	Away       []playerStatRowDTO    `json:"away_stats"`
	Neutral    []playerStatRowDTO    `json:"neutral_stats,omitempty"`
	MVP        *playerStatRowDTO     `json:"mvp,omitempty"`
	HomeEvents []precomputedEventDTO `json:"home_events,omitempty"`
	AwayEvents []precomputedEventDTO `json:"away_events,omitempty"`
}

type playerStatRowDTO struct {
	SteamID         string         `json:"steam_id,omitempty"`
	Name            string         `json:"discord_name"`
	Position        string         `json:"position,omitempty"`
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
	LineupStatus    string         `json:"lineup_status,omitempty"`
	EventMinutes    any            `json:"event_minutes,omitempty"`
	SubImpacts      []any          `json:"sub_impacts,omitempty"`
	ClutchActions   []any          `json:"clutch_actions,omitempty"`
	Extra           map[string]any `json:"extra,omitempty"`
}

type matchViewDTO struct {
	Match matchSummaryDTO `json:"match"`
	Home  teamSideDTO     `json:"home"`
	Away  teamSideDTO     `json:"away"`
	MVP   *mvpDTO         `json:"mvp,omitempty"`
}

type teamSideDTO struct {
	Name      string             `json:"name"`
	Icon      string             `json:"icon,omitempty"`
	Score     int                `json:"score"`
	Formation formationDTO       `json:"formation"`
	Timeline  []eventLineDTO     `json:"timeline"`
	Metrics   teamMetricsDTO     `json:"metrics"`
	Ratings   map[string]float64 `json:"ratings,omitempty"`
}

type formationDTO struct {
	Template string          `json:"template"`
	Slots    []slotDTO       `json:"slots"`
	Overflow []lineupItemDTO `json:"overflow"`
}

type slotDTO struct {
	Position string         `json:"position"`
	X        float64        `json:"x"`
	Y        float64        `json:"y"`
	Player   *lineupItemDTO `json:"player,omitempty"`
}

type lineupItemDTO struct {
	Position string `json:"position"`
	Name     string `json:"name"`
	SteamID  string `json:"steam_id,omitempty"`
}

type eventLineDTO struct {
	Kind    string   `json:"kind"`
	Player  string   `json:"player"`
	Minutes []int    `json:"minutes,omitempty"`
	Count   int      `json:"count,omitempty"`
	Rating  *float64 `json:"rating,omitempty"`
}

type teamMetricsDTO struct {
	Started       int `json:"started"`
	Substitutes   int `json:"substitutes"`
	Bench         int `json:"bench"`
	ClutchActions int `json:"clutch_actions"`
	SubImpacts    int `json:"sub_impacts"`
	SubGoals      int `json:"sub_goals"`
	SubOwnGoals   int `json:"sub_own_goals"`
}

type mvpDTO struct {
	SteamID  string  `json:"steam_id,omitempty"`
	Name     string  `json:"name"`
	Position string  `json:"position,omitempty"`
	Rating   float64 `json:"rating"`
	Goals    int     `json:"goals"`
	Assists  int     `json:"assists"`
	Saves    int     `json:"keeper_saves"`
}

type precomputedEventDTO struct {
	Kind    string `json:"kind"`
	Player  string `json:"player"`
	Minutes []int  `json:"minutes,omitempty"`
	Count   int    `json:"count,omitempty"`
}

type warmResultDTO struct {
	Derived int           `json:"derived"`
	Failed  int           `json:"failed"`
	Tasks   []warmTaskDTO `json:"tasks"`
}

type warmTaskDTO struct {
	MatchID    string `json:"match_id"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

func matchToSummaryDTO(match matchdata.MatchRecord) matchSummaryDTO {
	kickoff := ""
	if !match.KickoffAt.IsZero() {
		kickoff = match.KickoffAt.UTC().Format(time.RFC3339)
	}
	return matchSummaryDTO{
		MatchID:     match.ID,
		HomeTeam:    match.HomeTeamName,
		AwayTeam:    match.AwayTeamName,
		HomeIcon:    match.HomeTeamIcon,
		AwayIcon:    match.AwayTeamIcon,
		HomeScore:   match.HomeScore,
		AwayScore:   match.AwayScore,
		ExtraTime:   match.ExtraTime,
		Penalties:   match.Penalties,
		Comeback:    match.Comeback,
		KickoffAt:   kickoff,
		Competition: match.Competition,
		GameType:    match.GameType,
	}
}

func payloadToDTO(payload matchdata.MatchPayload) matchPayloadDTO {
	out := matchPayloadDTO{
		Match:      matchToSummaryDTO(payload.Match),
		HomeLineup: payload.Match.HomeLineup,
		AwayLineup: payload.Match.AwayLineup,
		Home:       statRowsToDTO(payload.Home),
		Away:       statRowsToDTO(payload.Away),
		Neutral:    statRowsToDTO(payload.Neutral),
		HomeEvents: eventsToDTO(payload.HomeEvents),
		AwayEvents: eventsToDTO(payload.AwayEvents),
	}
	if payload.MVP != nil {
		mvp := statRowToDTO(*payload.MVP)
		out.MVP = &mvp
	}
	return out
}

func statRowsToDTO(rows []matchdata.PlayerStatRow) []playerStatRowDTO {
	out := make([]playerStatRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, statRowToDTO(row))
	}
	return out
}

func statRowToDTO(row matchdata.PlayerStatRow) playerStatRowDTO {
	return playerStatRowDTO{
		SteamID:         row.SteamID,
		Name:            row.Name,
		Position:        row.Position,
		Goals:           row.Goals,
		Assists:         row.Assists,
		SecondAssists:   row.SecondAssists,
		Saves:           row.Saves,
		Tackles:         row.Tackles,
		Interceptions:   row.Interceptions,
		ChancesCreated:  row.ChancesCreated,
		KeyPasses:       row.KeyPasses,
		ShotsOnGoal:     row.ShotsOnGoal,
		PassesCompleted: row.PassesCompleted,
		PassesAttempted: row.PassesAttempted,
		YellowCards:     row.YellowCards,
		RedCards:        row.RedCards,
		OwnGoals:        row.OwnGoals,
		GoalsConceded:   row.GoalsConceded,
		LineupStatus:    row.LineupStatus,
		EventMinutes:    row.EventMinutes,
		SubImpacts:      row.SubImpacts,
		ClutchActions:   row.ClutchActions,
		Extra:           row.Extra,
	}
}

func eventsToDTO(events []matchdata.PrecomputedEvent) []precomputedEventDTO {
	if len(events) == 0 {
		return nil
	}
	out := make([]precomputedEventDTO, 0, len(events))
	for _, event := range events {
		out = append(out, precomputedEventDTO{
			Kind:    event.Kind,
			Player:  event.Player,
			Minutes: event.Minutes,
			Count:   event.Count,
		})
	}
	return out
}

func viewToDTO(view matchview.MatchView) matchViewDTO {
	out := matchViewDTO{
		Match: matchToSummaryDTO(view.Match),
		Home:  sideToDTO(view.Home),
		Away:  sideToDTO(view.Away),
	}
	if view.HasMVP && view.MVP != nil {
		out.MVP = &mvpDTO{
			SteamID:  view.MVP.Identity.SteamID,
			Name:     view.MVP.Identity.Name,
			Position: view.MVP.Identity.Position,
			Rating:   view.MVP.Rating,
			Goals:    view.MVP.Row.Goals,
			Assists:  view.MVP.Row.Assists,
			Saves:    view.MVP.Row.Saves,
		}
	}
	return out
}

func sideToDTO(side matchview.TeamSide) teamSideDTO {
	slots := make([]slotDTO, 0, len(side.Formation.Slots))
	for _, assignment := range side.Formation.Slots {
		slot := slotDTO{
			Position: assignment.Slot.Position,
			X:        assignment.Slot.X,
			Y:        assignment.Slot.Y,
		}
		if assignment.Entry != nil {
			slot.Player = lineupEntryToDTO(*assignment.Entry)
		}
		slots = append(slots, slot)
	}

	overflow := make([]lineupItemDTO, 0, len(side.Formation.Overflow))
	for _, entry := range side.Formation.Overflow {
		overflow = append(overflow, *lineupEntryToDTO(entry))
	}

	timeline := make([]eventLineDTO, 0, len(side.Timeline))
	for _, line := range side.Timeline {
		timeline = append(timeline, eventLineDTO{
			Kind:    line.Kind,
			Player:  line.Player,
			Minutes: line.Minutes,
			Count:   line.Count,
			Rating:  line.Rating,
		})
	}

	return teamSideDTO{
		Name:  side.Name,
		Icon:  side.Icon,
		Score: side.Score,
		Formation: formationDTO{
			Template: side.Formation.Template,
			Slots:    slots,
			Overflow: overflow,
		},
		Timeline: timeline,
		Metrics: teamMetricsDTO{
			Started:       side.Metrics.Started,
			Substitutes:   side.Metrics.Substitutes,
			Bench:         side.Metrics.Bench,
			ClutchActions: side.Metrics.ClutchActions,
			SubImpacts:    side.Metrics.SubImpacts,
			SubGoals:      side.Metrics.SubGoals,
			SubOwnGoals:   side.Metrics.SubOwnGoals,
		},
		Ratings: side.Ratings,
	}
}

func lineupEntryToDTO(entry matchview.LineupEntry) *lineupItemDTO {
	return &lineupItemDTO{
		Position: entry.Position,
		Name:     entry.Name,
		SteamID:  entry.SteamID,
	}
}

// parseKickoff accepts RFC3339 with or without sub-second precision and
// falls back to a zero time for anything else.
func parseKickoff(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}
