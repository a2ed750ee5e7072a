package matchview

import (
	"strconv"
	"strings"
	"unicode"
)

// Formation templates for the squad sizes the hub records. Coordinates are
// percentages: x across the pitch, y from the defending goal line.
var (
	templateSmall = FormationTemplate{
		Name: "1-1-2-1",
		Slots: []FormationSlot{
			{Position: "GK", X: 50, Y: 6},
			{Position: "CB", X: 50, Y: 30},
			{Position: "LM", X: 22, Y: 58},
			{Position: "RM", X: 78, Y: 58},
			{Position: "CF", X: 50, Y: 84},
		},
	}
	templateMedium = FormationTemplate{
		Name: "1-1-3-1",
		Slots: []FormationSlot{
			{Position: "GK", X: 50, Y: 6},
			{Position: "CB", X: 50, Y: 28},
			{Position: "LM", X: 18, Y: 56},
			{Position: "CM", X: 50, Y: 52},
			{Position: "RM", X: 82, Y: 56},
			{Position: "CF", X: 50, Y: 84},
		},
	}
	templateLarge = FormationTemplate{
		Name: "1-3-3-1",
		Slots: []FormationSlot{
			{Position: "GK", X: 50, Y: 6},
			{Position: "LB", X: 20, Y: 26},
			{Position: "CB", X: 50, Y: 22},
			{Position: "RB", X: 80, Y: 26},
			{Position: "LM", X: 18, Y: 56},
			{Position: "CM", X: 50, Y: 52},
			{Position: "RM", X: 82, Y: 56},
			{Position: "CF", X: 50, Y: 84},
		},
	}
)

// ResolveFormation selects a template for one side's canonical entries and
// assigns started entries to slots. Started entries that fit no slot are
// returned in the overflow list rather than dropped.
func ResolveFormation(entries []LineupEntry, gameType string) FormationLayout {
	started := make([]LineupEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Started {
			started = append(started, entry)
		}
	}

	template := selectTemplate(started, gameType)
	return assignSlots(template, started)
}

func selectTemplate(started []LineupEntry, gameType string) FormationTemplate {
	if template, ok := templateFromGameType(gameType); ok {
		return template
	}

	codes := positionCodeSet(started)
	if matchesSignature(codes, templateSmall) {
		return templateSmall
	}
	if matchesSignature(codes, templateMedium) {
		return templateMedium
	}

	switch {
	case len(started) <= len(templateSmall.Slots):
		return templateSmall
	case len(started) <= len(templateMedium.Slots):
		return templateMedium
	default:
		return templateLarge
	}
}

// templateFromGameType maps a game-type hint such as "6v6" or "8v8" onto a
// template when the hint unambiguously encodes a known squad size. Only
// whole NvN tokens count; stray digits ("8v8 season 5") and conflicting
// tokens fall through to signature/count selection.
func templateFromGameType(gameType string) (FormationTemplate, bool) {
	hint := strings.ToLower(strings.TrimSpace(gameType))
	if hint == "" {
		return FormationTemplate{}, false
	}

	size := 0
	for _, token := range strings.FieldsFunc(hint, isHintSeparator) {
		n, ok := squadSizeFromToken(token)
		if !ok {
			continue
		}
		if size != 0 && size != n {
			return FormationTemplate{}, false
		}
		size = n
	}

	switch size {
	case len(templateSmall.Slots):
		return templateSmall, true
	case len(templateMedium.Slots):
		return templateMedium, true
	case len(templateLarge.Slots):
		return templateLarge, true
	default:
		return FormationTemplate{}, false
	}
}

func isHintSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// squadSizeFromToken reads a token of the form "8v8" and returns the side
// size. Mismatched sides ("5v8") and tokens with extra characters do not
// qualify.
func squadSizeFromToken(token string) (int, bool) {
	left, right, ok := strings.Cut(token, "v")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(left)
	if err != nil || n <= 0 {
		return 0, false
	}
	m, err := strconv.Atoi(right)
	if err != nil || m != n {
		return 0, false
	}
	return n, true
}

func positionCodeSet(entries []LineupEntry) map[string]struct{} {
	out := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		code := NormalizePosition(entry.Position)
		if code != "" {
			out[code] = struct{}{}
		}
	}
	return out
}

func matchesSignature(codes map[string]struct{}, template FormationTemplate) bool {
	if len(codes) != len(template.Slots) {
		return false
	}
	for _, slot := range template.Slots {
		if _, ok := codes[slot.Position]; !ok {
			return false
		}
	}
	return true
}

// assignSlots runs the two-pass greedy assignment: exact position match in
// template order first, then any unused started entry into still-empty
// slots so malformed or duplicate position data leaves no visual gaps.
func assignSlots(template FormationTemplate, started []LineupEntry) FormationLayout {
	layout := FormationLayout{
		Template: template.Name,
		Slots:    make([]SlotAssignment, len(template.Slots)),
		Overflow: []LineupEntry{},
	}
	used := make([]bool, len(started))

	for i, slot := range template.Slots {
		layout.Slots[i] = SlotAssignment{Slot: slot}
		for j := range started {
			if used[j] {
				continue
			}
			if NormalizePosition(started[j].Position) == slot.Position {
				entry := started[j]
				layout.Slots[i].Entry = &entry
				used[j] = true
				break
			}
		}
	}

	for i := range layout.Slots {
		if layout.Slots[i].Entry != nil {
			continue
		}
		for j := range started {
			if used[j] {
				continue
			}
			entry := started[j]
			layout.Slots[i].Entry = &entry
			used[j] = true
			break
		}
	}

	for j := range started {
		if !used[j] {
			layout.Overflow = append(layout.Overflow, started[j])
		}
	}
	return layout
}
