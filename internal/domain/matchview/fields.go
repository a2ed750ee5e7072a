package matchview

import (
	"math"
	"strconv"
	"strings"
)

// Provider payloads reach us with the same logical attribute under varying
// key spellings. Each logical attribute gets one ordered synonym list and a
// single first-present-wins lookup, instead of ad-hoc branching per caller.

var (
	positionKeys = []string{"position", "pos", "slot"}
	nameKeys     = []string{"name", "discord_name", "player", "player_name"}
	idKeys       = []string{"steam_id", "steamId", "id", "player_id"}
	startedKeys  = []string{"started", "is_starter", "starter"}
	ratingKeys   = []string{"rating", "match_rating", "performance", "score"}
	minutesKeys  = []string{"event_minutes", "event_timestamps", "timeline", "minutes"}
)

func lookupField(src map[string]any, keys []string) (any, bool) {
	if src == nil {
		return nil, false
	}
	for _, key := range keys {
		if value, ok := src[key]; ok && value != nil {
			return value, true
		}
	}
	return nil, false
}

func asString(value any) string {
	switch typed := value.(type) {
	case string:
		return strings.TrimSpace(typed)
	case float64:
		if typed == math.Trunc(typed) {
			return strconv.FormatInt(int64(typed), 10)
		}
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	default:
		return ""
	}
}

func asFloat64(value any) (float64, bool) {
	switch typed := value.(type) {
	case float64:
		return typed, true
	case float32:
		return float64(typed), true
	case int:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func asBool(value any, fallback bool) bool {
	switch typed := value.(type) {
	case bool:
		return typed
	case float64:
		return typed != 0
	case int:
		return typed != 0
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(typed))
		if err != nil {
			return fallback
		}
		return parsed
	default:
		return fallback
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
