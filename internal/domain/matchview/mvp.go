package matchview

import "github.com/ioscahub/matchhub/internal/domain/matchdata"

// Secondary ranking weights used only to break rating ties.
const (
	tieBreakGoal         = 4
	tieBreakAssist       = 3
	tieBreakInterception = 2
	tieBreakSave         = 2
)

// ResolveMVP picks, or reconciles an externally supplied, standout player
// from the combined stat rows of all sides. An empty combined set yields
// no MVP.
func ResolveMVP(rows []matchdata.PlayerStatRow, supplied *matchdata.PlayerStatRow) (MvpRecord, bool) {
	if supplied != nil {
		return reconcileSupplied(rows, *supplied), true
	}
	if len(rows) == 0 {
		return MvpRecord{}, false
	}

	best := 0
	bestRating := Rate(rows[0])
	bestTieBreak := tieBreakScore(rows[0])
	for i := 1; i < len(rows); i++ {
		rating := Rate(rows[i])
		tieBreak := tieBreakScore(rows[i])
		if rating > bestRating || (rating == bestRating && tieBreak > bestTieBreak) {
			best = i
			bestRating = rating
			bestTieBreak = tieBreak
		}
	}

	return newMvpRecord(rows[best], bestRating, bestTieBreak), true
}

// reconcileSupplied merges the richer local stat row onto a provider MVP
// record when one matches by normalized name (and position when both carry
// one). Supplied fields win; local fields fill gaps.
func reconcileSupplied(rows []matchdata.PlayerStatRow, supplied matchdata.PlayerStatRow) MvpRecord {
	if local, ok := findMatchingRow(rows, supplied); ok {
		supplied = mergeRows(supplied, local)
	}
	rating := Rate(supplied)
	return newMvpRecord(supplied, rating, tieBreakScore(supplied))
}

func findMatchingRow(rows []matchdata.PlayerStatRow, supplied matchdata.PlayerStatRow) (matchdata.PlayerStatRow, bool) {
	name := NormalizeName(supplied.Name)
	position := NormalizePosition(supplied.Position)
	for _, row := range rows {
		if NormalizeName(row.Name) != name {
			continue
		}
		rowPosition := NormalizePosition(row.Position)
		if position != "" && rowPosition != "" && rowPosition != position {
			continue
		}
		return row, true
	}
	return matchdata.PlayerStatRow{}, false
}

func mergeRows(supplied, local matchdata.PlayerStatRow) matchdata.PlayerStatRow {
	merged := supplied
	merged.SteamID = firstNonEmpty(merged.SteamID, local.SteamID)
	merged.Name = firstNonEmpty(merged.Name, local.Name)
	merged.Position = firstNonEmpty(merged.Position, local.Position)
	merged.LineupStatus = firstNonEmpty(merged.LineupStatus, local.LineupStatus)

	mergeCounter(&merged.Goals, local.Goals)
	mergeCounter(&merged.Assists, local.Assists)
	mergeCounter(&merged.SecondAssists, local.SecondAssists)
	mergeCounter(&merged.Saves, local.Saves)
	mergeCounter(&merged.Tackles, local.Tackles)
	mergeCounter(&merged.Interceptions, local.Interceptions)
	mergeCounter(&merged.ChancesCreated, local.ChancesCreated)
	mergeCounter(&merged.KeyPasses, local.KeyPasses)
	mergeCounter(&merged.ShotsOnGoal, local.ShotsOnGoal)
	mergeCounter(&merged.PassesCompleted, local.PassesCompleted)
	mergeCounter(&merged.PassesAttempted, local.PassesAttempted)
	mergeCounter(&merged.YellowCards, local.YellowCards)
	mergeCounter(&merged.RedCards, local.RedCards)
	mergeCounter(&merged.OwnGoals, local.OwnGoals)
	mergeCounter(&merged.GoalsConceded, local.GoalsConceded)

	if merged.EventMinutes == nil {
		merged.EventMinutes = local.EventMinutes
	}
	if len(merged.SubImpacts) == 0 {
		merged.SubImpacts = local.SubImpacts
	}
	if len(merged.ClutchActions) == 0 {
		merged.ClutchActions = local.ClutchActions
	}
	if len(local.Extra) > 0 {
		// Copy-on-merge so neither input map is mutated.
		combined := make(map[string]any, len(merged.Extra)+len(local.Extra))
		for key, value := range local.Extra {
			combined[key] = value
		}
		for key, value := range merged.Extra {
			combined[key] = value
		}
		merged.Extra = combined
	}
	return merged
}

func mergeCounter(dst *int, local int) {
	if *dst == 0 {
		*dst = local
	}
}

func tieBreakScore(row matchdata.PlayerStatRow) int {
	return row.Goals*tieBreakGoal +
		row.Assists*tieBreakAssist +
		row.Interceptions*tieBreakInterception +
		row.Saves*tieBreakSave
}

func newMvpRecord(row matchdata.PlayerStatRow, rating float64, tieBreak int) MvpRecord {
	return MvpRecord{
		Row:      row,
		Rating:   rating,
		TieBreak: tieBreak,
		Identity: MvpIdentity{
			SteamID:  row.SteamID,
			Name:     NormalizeName(row.Name),
			Position: NormalizePosition(row.Position),
		},
	}
}
