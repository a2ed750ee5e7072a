package matchview

import (
	"sort"

	sonic "github.com/bytedance/sonic"

	"github.com/ioscahub/matchhub/internal/domain/matchdata"
)

const (
	timelineMaxLines = 12

	// Count-only and unknown-minute lines sort after every minute-bearing
	// line.
	sortKeyNoMinute = 1 << 20
)

// Synonyms for each event kind as provider minute maps spell them.
var eventKindKeys = map[string][]string{
	EventGoal:   {"goal", "goals"},
	EventYellow: {"yellow", "yellow_card", "yellow_cards"},
	EventRed:    {"red", "red_card", "red_cards"},
}

// BuildTimeline produces one side's ordered event list, capped at
// timelineMaxLines and annotated with each player's rating. A precomputed
// provider list takes precedence and bypasses re-derivation.
func BuildTimeline(rows []matchdata.PlayerStatRow, precomputed []matchdata.PrecomputedEvent, ratings map[string]float64) []EventLine {
	var lines []EventLine
	if len(precomputed) > 0 {
		lines = linesFromPrecomputed(precomputed)
	} else {
		lines = deriveLines(rows)
	}

	for i := range lines {
		if rating, ok := ratings[NormalizeName(lines[i].Player)]; ok {
			value := rating
			lines[i].Rating = &value
		}
	}

	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].SortKey != lines[j].SortKey {
			return lines[i].SortKey < lines[j].SortKey
		}
		return lines[i].Player < lines[j].Player
	})

	if len(lines) > timelineMaxLines {
		lines = lines[:timelineMaxLines]
	}
	return lines
}

func linesFromPrecomputed(events []matchdata.PrecomputedEvent) []EventLine {
	out := make([]EventLine, 0, len(events))
	for _, event := range events {
		line := EventLine{
			Kind:   event.Kind,
			Player: event.Player,
		}
		minutes := normalizeMinutes(event.Minutes)
		switch {
		case len(minutes) > 0:
			line.Minutes = minutes
			line.SortKey = minutes[0]
		case event.Count > 0:
			line.Count = event.Count
			line.SortKey = sortKeyNoMinute
		default:
			continue
		}
		out = append(out, line)
	}
	return out
}

func deriveLines(rows []matchdata.PlayerStatRow) []EventLine {
	out := make([]EventLine, 0, len(rows))
	for _, row := range rows {
		minuteMap := decodeMinuteMap(row)
		for _, kind := range []string{EventGoal, EventYellow, EventRed} {
			minutes := minutesForKind(minuteMap, kind)
			if len(minutes) > 0 {
				out = append(out, EventLine{
					Kind:    kind,
					Player:  row.Name,
					Minutes: minutes,
					SortKey: minutes[0],
				})
				continue
			}
			if count := rawCountForKind(row, kind); count > 0 {
				out = append(out, EventLine{
					Kind:    kind,
					Player:  row.Name,
					Count:   count,
					SortKey: sortKeyNoMinute,
				})
			}
		}
	}
	return out
}

// decodeMinuteMap reads the per-event-kind minute structure, tolerating a
// JSON string encoding. Decode failure degrades to no minute data.
func decodeMinuteMap(row matchdata.PlayerStatRow) map[string]any {
	raw := row.EventMinutes
	if raw == nil {
		if extra, ok := lookupField(row.Extra, minutesKeys); ok {
			raw = extra
		}
	}

	switch typed := raw.(type) {
	case map[string]any:
		return typed
	case string:
		decoded := make(map[string]any)
		if err := sonic.Unmarshal([]byte(typed), &decoded); err != nil {
			return nil
		}
		return decoded
	default:
		return nil
	}
}

func minutesForKind(minuteMap map[string]any, kind string) []int {
	raw, ok := lookupField(minuteMap, eventKindKeys[kind])
	if !ok {
		return nil
	}

	var values []int
	switch typed := raw.(type) {
	case []any:
		for _, item := range typed {
			if minute, ok := asFloat64(item); ok {
				values = append(values, int(minute))
			}
		}
	default:
		if minute, ok := asFloat64(raw); ok {
			values = append(values, int(minute))
		}
	}
	return normalizeMinutes(values)
}

// normalizeMinutes keeps positive integers, de-duplicates and sorts.
func normalizeMinutes(values []int) []int {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[int]struct{}, len(values))
	out := make([]int, 0, len(values))
	for _, value := range values {
		if value <= 0 {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	if len(out) == 0 {
		return nil
	}
	sort.Ints(out)
	return out
}

func rawCountForKind(row matchdata.PlayerStatRow, kind string) int {
	switch kind {
	case EventGoal:
		return row.Goals
	case EventYellow:
		return row.YellowCards
	case EventRed:
		return row.RedCards
	default:
		return 0
	}
}
