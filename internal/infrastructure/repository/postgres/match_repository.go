package postgres

import (
	"context"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/sourcegraph/conc/pool"

	"github.com/ioscahub/matchhub/internal/domain/matchdata"
	qb "github.com/ioscahub/matchhub/internal/platform/querybuilder"
)

const (
	sideHome    = "home"
	sideAway    = "away"
	sideNeutral = "neutral"
)

// MatchRepository stores match payloads in Postgres. Lineups, precomputed
// events and the optional MVP row are kept as jsonb blobs; per-player
// counters are regular columns so they stay queryable.
type MatchRepository struct {
	db      *sqlx.DB
	guildID string
}

func NewMatchRepository(db *sqlx.DB, guildID string) *MatchRepository {
	return &MatchRepository{db: db, guildID: guildID}
}

func (r *MatchRepository) GetMatchPayload(ctx context.Context, matchID string) (matchdata.MatchPayload, bool, error) {
	var matchRow *matchTableModel
	var playerRows []playerRowTableModel

	grp := pool.New().WithContext(ctx).WithCancelOnError()
	grp.Go(func(ctx context.Context) error {
		row, err := r.selectMatchRow(ctx, matchID)
		if err != nil {
			return err
		}
		matchRow = row
		return nil
	})
	grp.Go(func(ctx context.Context) error {
		rows, err := r.selectPlayerRows(ctx, matchID)
		if err != nil {
			return err
		}
		playerRows = rows
		return nil
	})
	if err := grp.Wait(); err != nil {
		return matchdata.MatchPayload{}, false, err
	}
	if matchRow == nil {
		return matchdata.MatchPayload{}, false, nil
	}

	payload := matchdata.MatchPayload{
		Match:      matchFromRow(*matchRow),
		MVP:        decodeMVP(matchRow.MVP),
		HomeEvents: decodeEvents(matchRow.HomeEvents),
		AwayEvents: decodeEvents(matchRow.AwayEvents),
	}
	for _, row := range playerRows {
		stat := statFromRow(row)
		switch row.Side {
		case sideHome:
			payload.Home = append(payload.Home, stat)
		case sideAway:
			payload.Away = append(payload.Away, stat)
		default:
			payload.Neutral = append(payload.Neutral, stat)
		}
	}

	return payload, true, nil
}

func (r *MatchRepository) ListRecentMatches(ctx context.Context, limit int) ([]matchdata.MatchRecord, error) {
	builder := qb.Select("*").From("match_stats")
	if r.guildID != "" {
		builder = builder.Where(qb.Eq("guild_id", r.guildID))
	}
	query, args, err := builder.
		OrderBy("kickoff_at DESC", "match_id").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select recent matches query")
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select recent matches")
	}

	out := make([]matchdata.MatchRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func (r *MatchRepository) SaveMatchPayload(ctx context.Context, payload matchdata.MatchPayload) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin tx save match payload")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := upsertMatchRow(ctx, tx, r.guildID, payload); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM player_match_data WHERE match_id = $1", payload.Match.ID); err != nil {
		return crerr.Wrap(err, "clear player rows")
	}

	for side, rows := range map[string][]matchdata.PlayerStatRow{
		sideHome:    payload.Home,
		sideAway:    payload.Away,
		sideNeutral: payload.Neutral,
	} {
		for _, row := range rows {
			if err := insertPlayerRow(ctx, tx, payload.Match.ID, side, row); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit save match payload")
	}
	return nil
}

func (r *MatchRepository) selectMatchRow(ctx context.Context, matchID string) (*matchTableModel, error) {
	query, args, err := qb.Select("*").From("match_stats").
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select match query")
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, crerr.Wrap(err, "select match")
	}
	return &row, nil
}

func (r *MatchRepository) selectPlayerRows(ctx context.Context, matchID string) ([]playerRowTableModel, error) {
	query, args, err := qb.Select("*").From("player_match_data").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select player rows query")
	}

	var rows []playerRowTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select player rows")
	}
	return rows, nil
}

func upsertMatchRow(ctx context.Context, tx *sqlx.Tx, guildID string, payload matchdata.MatchPayload) error {
	match := payload.Match
	insert := matchInsertModel{
		MatchID:     match.ID,
		GuildID:     guildID,
		HomeTeam:    match.HomeTeamName,
		AwayTeam:    match.AwayTeamName,
		HomeIcon:    match.HomeTeamIcon,
		AwayIcon:    match.AwayTeamIcon,
		HomeScore:   match.HomeScore,
		AwayScore:   match.AwayScore,
		ExtraTime:   match.ExtraTime,
		Penalties:   match.Penalties,
		Comeback:    match.Comeback,
		GameType:    match.GameType,
		Competition: match.Competition,
		KickoffAt:   match.KickoffAt,
		HomeLineup:  encodeJSONList(match.HomeLineup),
		AwayLineup:  encodeJSONList(match.AwayLineup),
		MVP:         encodeMVP(payload.MVP),
		HomeEvents:  encodeEvents(payload.HomeEvents),
		AwayEvents:  encodeEvents(payload.AwayEvents),
	}

	query, args, err := qb.InsertModel("match_stats", insert, `ON CONFLICT (match_id)
DO UPDATE SET
    guild_id = EXCLUDED.guild_id,
    home_team = EXCLUDED.home_team,
    away_team = EXCLUDED.away_team,
    home_icon = EXCLUDED.home_icon,
    away_icon = EXCLUDED.away_icon,
    home_score = EXCLUDED.home_score,
    away_score = EXCLUDED.away_score,
    extratime = EXCLUDED.extratime,
    penalties = EXCLUDED.penalties,
    comeback = EXCLUDED.comeback,
    game_type = EXCLUDED.game_type,
    competition = EXCLUDED.competition,
    kickoff_at = EXCLUDED.kickoff_at,
    home_lineup = EXCLUDED.home_lineup,
    away_lineup = EXCLUDED.away_lineup,
    mvp = EXCLUDED.mvp,
    home_events = EXCLUDED.home_events,
    away_events = EXCLUDED.away_events,
    updated_at = NOW()`)
	if err != nil {
		return crerr.Wrap(err, "build upsert match query")
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrap(err, "upsert match")
	}
	return nil
}

func insertPlayerRow(ctx context.Context, tx *sqlx.Tx, matchID, side string, row matchdata.PlayerStatRow) error {
	insert := playerRowInsertModel{
		MatchID:       matchID,
		Side:          side,
		SteamID:       row.SteamID,
		Name:          row.Name,
		Position:      row.Position,
		LineupStatus:  row.LineupStatus,
		Goals:         row.Goals,
		Assists:       row.Assists,
		SecondAssists: row.SecondAssists,
		Saves:         row.Saves,
		Tackles:       row.Tackles,
		Interceptions: row.Interceptions,
		Chances:       row.ChancesCreated,
		KeyPasses:     row.KeyPasses,
		ShotsOnGoal:   row.ShotsOnGoal,
		PassesDone:    row.PassesCompleted,
		PassesTried:   row.PassesAttempted,
		YellowCards:   row.YellowCards,
		RedCards:      row.RedCards,
		OwnGoals:      row.OwnGoals,
		GoalsConceded: row.GoalsConceded,
		EventMinutes:  encodeJSONValue(row.EventMinutes),
		SubImpacts:    encodeJSONList(row.SubImpacts),
		ClutchActions: encodeJSONList(row.ClutchActions),
		Extra:         encodeJSONMap(row.Extra),
	}

	query, args, err := qb.InsertModel("player_match_data", insert, "")
	if err != nil {
		return crerr.Wrap(err, "build insert player row query")
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrapf(err, "insert player row name=%q", row.Name)
	}
	return nil
}

func matchFromRow(row matchTableModel) matchdata.MatchRecord {
	return matchdata.MatchRecord{
		ID:           row.MatchID,
		HomeTeamName: row.HomeTeam,
		AwayTeamName: row.AwayTeam,
		HomeTeamIcon: row.HomeIcon.String,
		AwayTeamIcon: row.AwayIcon.String,
		HomeScore:    row.HomeScore,
		AwayScore:    row.AwayScore,
		ExtraTime:    row.ExtraTime,
		Penalties:    row.Penalties,
		Comeback:     row.Comeback,
		KickoffAt:    row.KickoffAt,
		Competition:  row.Competition.String,
		GameType:     row.GameType.String,
		HomeLineup:   decodeJSONList(row.HomeLineup),
		AwayLineup:   decodeJSONList(row.AwayLineup),
	}
}

func statFromRow(row playerRowTableModel) matchdata.PlayerStatRow {
	return matchdata.PlayerStatRow{
		SteamID:         row.SteamID.String,
		Name:            row.Name,
		Position:        row.Position.String,
		Goals:           row.Goals,
		Assists:         row.Assists,
		SecondAssists:   row.SecondAssists,
		Saves:           row.Saves,
		Tackles:         row.Tackles,
		Interceptions:   row.Interceptions,
		ChancesCreated:  row.Chances,
		KeyPasses:       row.KeyPasses,
		ShotsOnGoal:     row.ShotsOnGoal,
		PassesCompleted: row.PassesDone,
		PassesAttempted: row.PassesTried,
		YellowCards:     row.YellowCards,
		RedCards:        row.RedCards,
		OwnGoals:        row.OwnGoals,
		GoalsConceded:   row.GoalsConceded,
		LineupStatus:    row.LineupStatus.String,
		EventMinutes:    decodeJSONValue(row.EventMinutes),
		SubImpacts:      decodeJSONList(row.SubImpacts),
		ClutchActions:   decodeJSONList(row.ClutchActions),
		Extra:           decodeJSONMap(row.Extra),
	}
}

func encodeMVP(mvp *matchdata.PlayerStatRow) any {
	if mvp == nil {
		return nil
	}
	encoded, err := sonic.Marshal(mvp)
	if err != nil {
		return nil
	}
	return string(encoded)
}

func decodeMVP(raw []byte) *matchdata.PlayerStatRow {
	if len(raw) == 0 {
		return nil
	}
	var mvp matchdata.PlayerStatRow
	if err := sonic.Unmarshal(raw, &mvp); err != nil {
		return nil
	}
	return &mvp
}

func encodeEvents(events []matchdata.PrecomputedEvent) string {
	if len(events) == 0 {
		return "[]"
	}
	encoded, err := sonic.Marshal(events)
	if err != nil {
		return "[]"
	}
	return string(encoded)
}

func decodeEvents(raw []byte) []matchdata.PrecomputedEvent {
	if len(raw) == 0 {
		return nil
	}
	var events []matchdata.PrecomputedEvent
	if err := sonic.Unmarshal(raw, &events); err != nil {
		return nil
	}
	return events
}
