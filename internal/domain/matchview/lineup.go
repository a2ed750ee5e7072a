package matchview

const unknownPlayerName = "Unknown"

// ParseLineup normalizes one side's raw lineup declaration into canonical
// entries. Elements are either a positional tuple [position, name, id,
// started?] or a keyed record with synonymous field names. Unparseable
// elements are skipped; input order is preserved.
func ParseLineup(raw []any) []LineupEntry {
	out := make([]LineupEntry, 0, len(raw))
	for _, element := range raw {
		switch typed := element.(type) {
		case []any:
			if entry, ok := parseTupleEntry(typed); ok {
				out = append(out, entry)
			}
		case map[string]any:
			if entry, ok := parseRecordEntry(typed); ok {
				out = append(out, entry)
			}
		}
	}
	return out
}

func parseTupleEntry(tuple []any) (LineupEntry, bool) {
	if len(tuple) < 3 {
		return LineupEntry{}, false
	}

	entry := LineupEntry{
		Position: asString(tuple[0]),
		Name:     asString(tuple[1]),
		SteamID:  asString(tuple[2]),
		Started:  true,
	}
	if len(tuple) >= 4 {
		entry.Started = asBool(tuple[3], true)
	}
	if entry.Name == "" {
		entry.Name = firstNonEmpty(entry.SteamID, unknownPlayerName)
	}
	return entry, true
}

func parseRecordEntry(record map[string]any) (LineupEntry, bool) {
	positionRaw, ok := lookupField(record, positionKeys)
	if !ok {
		// Malformed data, not an error: a record without any position
		// synonym cannot be placed and is dropped.
		return LineupEntry{}, false
	}

	entry := LineupEntry{
		Position: asString(positionRaw),
		Started:  true,
	}

	if idRaw, ok := lookupField(record, idKeys); ok {
		entry.SteamID = asString(idRaw)
	}
	if nameRaw, ok := lookupField(record, nameKeys); ok {
		entry.Name = asString(nameRaw)
	}
	entry.Name = firstNonEmpty(entry.Name, entry.SteamID, unknownPlayerName)

	if startedRaw, ok := lookupField(record, startedKeys); ok {
		entry.Started = asBool(startedRaw, true)
	}
	return entry, true
}
