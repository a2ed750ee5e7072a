package matchview

import "github.com/ioscahub/matchhub/internal/domain/matchdata"

// DeriveTeamMetrics aggregates one side's derived counts. Sub-impact and
// clutch payloads are opaque provider arrays: counted, not interpreted.
func DeriveTeamMetrics(rows []matchdata.PlayerStatRow) TeamMetrics {
	var metrics TeamMetrics
	for _, row := range rows {
		switch row.LineupStatus {
		case StatusStarted:
			metrics.Started++
		case StatusSubstitute:
			metrics.Substitutes++
		case StatusOnBench:
			metrics.Bench++
		}

		metrics.ClutchActions += len(row.ClutchActions)
		metrics.SubImpacts += len(row.SubImpacts)

		if row.LineupStatus == StatusSubstitute {
			metrics.SubGoals += row.Goals
			metrics.SubOwnGoals += row.OwnGoals
		}
	}
	return metrics
}
