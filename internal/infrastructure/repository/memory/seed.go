package memory

import (
	"time"

	"github.com/ioscahub/matchhub/internal/domain/matchdata"
)

const (
	MatchIDDerby    = "ios-2026-0314-derby"
	MatchIDCupFinal = "ios-2026-0321-cup-final"
)

// SeedMatches returns two complete match payloads for local development.
// One is a plain 8v8 league game, the other a 6v6 cup final that went to
// extra time with a precomputed away timeline.
func SeedMatches() []matchdata.MatchPayload {
	return []matchdata.MatchPayload{
		{
			Match: matchdata.MatchRecord{
				ID:           MatchIDDerby,
				HomeTeamName: "Crimson Harbour",
				AwayTeamName: "Northgate Rovers",
				HomeScore:    3,
				AwayScore:    1,
				KickoffAt:    time.Date(2026, time.March, 14, 20, 0, 0, 0, time.UTC),
				Competition:  "IOS League One",
				GameType:     "8v8",
				HomeLineup: []any{
					[]any{"GK", "voss", "76561198000000101"},
					[]any{"LB", "tilde", "76561198000000102"},
					[]any{"CB", "marek", "76561198000000103"},
					[]any{"RB", "juno", "76561198000000104"},
					[]any{"LM", "pax", "76561198000000105"},
					[]any{"CM", "orla", "76561198000000106"},
					[]any{"RM", "dex", "76561198000000107"},
					[]any{"CF", "rio", "76561198000000108"},
				},
				AwayLineup: []any{
					[]any{"GK", "nimbus", "76561198000000201"},
					[]any{"CB", "ferro", "76561198000000202"},
					[]any{"CB", "sable", "76561198000000203"},
					[]any{"LM", "wren", "76561198000000204"},
					[]any{"CM", "idris", "76561198000000205"},
					[]any{"RM", "kite", "76561198000000206"},
					[]any{"CF", "bruma", "76561198000000207"},
					[]any{"CF", "lark", "76561198000000208"},
				},
			},
			Home: []matchdata.PlayerStatRow{
				{SteamID: "76561198000000108", Name: "rio", Position: "CF", Goals: 2, ShotsOnGoal: 5, PassesCompleted: 24, PassesAttempted: 31, LineupStatus: "started", EventMinutes: map[string]any{"goal": []any{12.0, 67.0}}},
				{SteamID: "76561198000000106", Name: "orla", Position: "CM", Goals: 1, Assists: 2, KeyPasses: 4, ChancesCreated: 3, PassesCompleted: 48, PassesAttempted: 55, LineupStatus: "started", EventMinutes: map[string]any{"goal": []any{41.0}}},
				{SteamID: "76561198000000101", Name: "voss", Position: "GK", Saves: 6, GoalsConceded: 1, PassesCompleted: 15, PassesAttempted: 22, LineupStatus: "started"},
				{SteamID: "76561198000000103", Name: "marek", Position: "CB", Tackles: 5, Interceptions: 4, YellowCards: 1, PassesCompleted: 30, PassesAttempted: 34, LineupStatus: "started", EventMinutes: map[string]any{"yellow": []any{55.0}}},
			},
			Away: []matchdata.PlayerStatRow{
				{SteamID: "76561198000000207", Name: "bruma", Position: "CF", Goals: 1, ShotsOnGoal: 3, LineupStatus: "started", EventMinutes: map[string]any{"goal": []any{78.0}}},
				{SteamID: "76561198000000201", Name: "nimbus", Position: "GK", Saves: 8, GoalsConceded: 3, LineupStatus: "started"},
				{SteamID: "76561198000000202", Name: "ferro", Position: "CB", Tackles: 6, Interceptions: 3, RedCards: 1, LineupStatus: "started", EventMinutes: map[string]any{"red": []any{82.0}}},
			},
		},
		{
			Match: matchdata.MatchRecord{
				ID:           MatchIDCupFinal,
				HomeTeamName: "Solstice United",
				AwayTeamName: "Harrow End",
				HomeScore:    2,
				AwayScore:    2,
				ExtraTime:    true,
				Penalties:    true,
				Comeback:     true,
				KickoffAt:    time.Date(2026, time.March, 21, 19, 30, 0, 0, time.UTC),
				Competition:  "IOS Cup",
				GameType:     "6v6",
				HomeLineup: []any{
					[]any{"GK", "ash", "76561198000000301"},
					[]any{"CB", "bruno", "76561198000000302"},
					[]any{"LM", "cleo", "76561198000000303"},
					[]any{"CM", "dara", "76561198000000304"},
					[]any{"RM", "emre", "76561198000000305"},
					[]any{"CF", "finn", "76561198000000306"},
				},
				AwayLineup: []any{
					map[string]any{"position": "GK", "name": "gale", "steam_id": "76561198000000401"},
					map[string]any{"position": "CB", "name": "hart", "steam_id": "76561198000000402"},
					map[string]any{"position": "LM", "name": "iggy", "steam_id": "76561198000000403"},
					map[string]any{"position": "CM", "name": "jude", "steam_id": "76561198000000404"},
					map[string]any{"position": "RM", "name": "kip", "steam_id": "76561198000000405"},
					map[string]any{"position": "CF", "name": "lior", "steam_id": "76561198000000406", "started": false},
				},
			},
			Home: []matchdata.PlayerStatRow{
				{SteamID: "76561198000000306", Name: "finn", Position: "CF", Goals: 2, ShotsOnGoal: 6, LineupStatus: "started", EventMinutes: map[string]any{"goal": []any{88.0, 104.0}}, ClutchActions: []any{"equalizer", "winner"}},
				{SteamID: "76561198000000304", Name: "dara", Position: "CM", Assists: 2, SecondAssists: 1, KeyPasses: 5, LineupStatus: "started"},
				{SteamID: "76561198000000301", Name: "ash", Position: "GK", Saves: 9, GoalsConceded: 2, LineupStatus: "started"},
				{SteamID: "76561198000000399", Name: "milo", Position: "CF", Goals: 1, LineupStatus: "substitute", SubImpacts: []any{"assist_chain"}},
			},
			Away: []matchdata.PlayerStatRow{
				{SteamID: "76561198000000406", Name: "lior", Position: "CF", Goals: 2, LineupStatus: "substitute", SubImpacts: []any{"double"}},
				{SteamID: "76561198000000401", Name: "gale", Position: "GK", Saves: 7, GoalsConceded: 2, LineupStatus: "started"},
			},
			AwayEvents: []matchdata.PrecomputedEvent{
				{Kind: "goal", Player: "lior", Minutes: []int{52, 61}},
			},
		},
	}
}
