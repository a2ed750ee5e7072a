package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	MatchID     string         `db:"match_id"`
	GuildID     string         `db:"guild_id"`
	HomeTeam    string         `db:"home_team"`
	AwayTeam    string         `db:"away_team"`
	HomeIcon    sql.NullString `db:"home_icon"`
	AwayIcon    sql.NullString `db:"away_icon"`
	HomeScore   int            `db:"home_score"`
	AwayScore   int            `db:"away_score"`
	ExtraTime   bool           `db:"extratime"`
	Penalties   bool           `db:"penalties"`
	Comeback    bool           `db:"comeback"`
	GameType    sql.NullString `db:"game_type"`
	Competition sql.NullString `db:"competition"`
	KickoffAt   time.Time      `db:"kickoff_at"`
	HomeLineup  []byte         `db:"home_lineup"`
	AwayLineup  []byte         `db:"away_lineup"`
	MVP         []byte         `db:"mvp"`
	HomeEvents  []byte         `db:"home_events"`
	AwayEvents  []byte         `db:"away_events"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type playerRowTableModel struct {
	ID            int64          `db:"id"`
	MatchID       string         `db:"match_id"`
	Side          string         `db:"side"`
	SteamID       sql.NullString `db:"steam_id"`
	Name          string         `db:"name"`
	Position      sql.NullString `db:"position"`
	LineupStatus  sql.NullString `db:"lineup_status"`
	Goals         int            `db:"goals"`
	Assists       int            `db:"assists"`
	SecondAssists int            `db:"second_assists"`
	Saves         int            `db:"keeper_saves"`
	Tackles       int            `db:"tackles"`
	Interceptions int            `db:"interceptions"`
	Chances       int            `db:"chances_created"`
	KeyPasses     int            `db:"key_passes"`
	ShotsOnGoal   int            `db:"shots_on_goal"`
	PassesDone    int            `db:"passes_completed"`
	PassesTried   int            `db:"passes_attempted"`
	YellowCards   int            `db:"yellow_cards"`
	RedCards      int            `db:"red_cards"`
	OwnGoals      int            `db:"own_goals"`
	GoalsConceded int            `db:"goals_conceded"`
	EventMinutes  []byte         `db:"event_minutes"`
	SubImpacts    []byte         `db:"sub_impacts"`
	ClutchActions []byte         `db:"clutch_actions"`
	Extra         []byte         `db:"extra"`
}

type matchInsertModel struct {
	MatchID     string    `db:"match_id"`
	GuildID     string    `db:"guild_id"`
	HomeTeam    string    `db:"home_team"`
	AwayTeam    string    `db:"away_team"`
	HomeIcon    string    `db:"home_icon"`
	AwayIcon    string    `db:"away_icon"`
	HomeScore   int       `db:"home_score"`
	AwayScore   int       `db:"away_score"`
	ExtraTime   bool      `db:"extratime"`
	Penalties   bool      `db:"penalties"`
	Comeback    bool      `db:"comeback"`
	GameType    string    `db:"game_type"`
	Competition string    `db:"competition"`
	KickoffAt   time.Time `db:"kickoff_at"`
	HomeLineup  string    `db:"home_lineup"`
	AwayLineup  string    `db:"away_lineup"`
	MVP         any       `db:"mvp"`
	HomeEvents  string    `db:"home_events"`
	AwayEvents  string    `db:"away_events"`
}

type playerRowInsertModel struct {
	MatchID       string `db:"match_id"`
	Side          string `db:"side"`
	SteamID       string `db:"steam_id"`
	Name          string `db:"name"`
	Position      string `db:"position"`
	LineupStatus  string `db:"lineup_status"`
	Goals         int    `db:"goals"`
	Assists       int    `db:"assists"`
	SecondAssists int    `db:"second_assists"`
	Saves         int    `db:"keeper_saves"`
	Tackles       int    `db:"tackles"`
	Interceptions int    `db:"interceptions"`
	Chances       int    `db:"chances_created"`
	KeyPasses     int    `db:"key_passes"`
	ShotsOnGoal   int    `db:"shots_on_goal"`
	PassesDone    int    `db:"passes_completed"`
	PassesTried   int    `db:"passes_attempted"`
	YellowCards   int    `db:"yellow_cards"`
	RedCards      int    `db:"red_cards"`
	OwnGoals      int    `db:"own_goals"`
	GoalsConceded int    `db:"goals_conceded"`
	EventMinutes  string `db:"event_minutes"`
	SubImpacts    string `db:"sub_impacts"`
	ClutchActions string `db:"clutch_actions"`
	Extra         string `db:"extra"`
}
