package matchview

import "github.com/ioscahub/matchhub/internal/domain/matchdata"

// Derive runs the full single-pass derivation over one already-decoded
// match payload. Pure function of its input: safe to invoke repeatedly and
// concurrently across independent payloads.
func Derive(payload matchdata.MatchPayload) MatchView {
	match := payload.Match

	homeRatings := ratingsByName(payload.Home)
	awayRatings := ratingsByName(payload.Away)

	view := MatchView{
		Match: match,
		Home: TeamSide{
			Name:      match.HomeTeamName,
			Icon:      match.HomeTeamIcon,
			Score:     match.HomeScore,
			Formation: ResolveFormation(ParseLineup(match.HomeLineup), match.GameType),
			Timeline:  BuildTimeline(payload.Home, payload.HomeEvents, homeRatings),
			Metrics:   DeriveTeamMetrics(payload.Home),
			Ratings:   homeRatings,
		},
		Away: TeamSide{
			Name:      match.AwayTeamName,
			Icon:      match.AwayTeamIcon,
			Score:     match.AwayScore,
			Formation: ResolveFormation(ParseLineup(match.AwayLineup), match.GameType),
			Timeline:  BuildTimeline(payload.Away, payload.AwayEvents, awayRatings),
			Metrics:   DeriveTeamMetrics(payload.Away),
			Ratings:   awayRatings,
		},
	}

	if mvp, ok := ResolveMVP(payload.AllRows(), payload.MVP); ok {
		view.MVP = &mvp
		view.HasMVP = true
	}
	return view
}

func ratingsByName(rows []matchdata.PlayerStatRow) map[string]float64 {
	out := make(map[string]float64, len(rows))
	for _, row := range rows {
		name := NormalizeName(row.Name)
		if name == "" {
			continue
		}
		if _, exists := out[name]; exists {
			continue
		}
		out[name] = Rate(row)
	}
	return out
}
