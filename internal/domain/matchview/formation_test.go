package matchview

import "testing"

func startedEntries(positions ...string) []LineupEntry {
	out := make([]LineupEntry, 0, len(positions))
	for i, pos := range positions {
		out = append(out, LineupEntry{
			Position: pos,
			Name:     string(rune('a' + i)),
			Started:  true,
		})
	}
	return out
}

func assignedNames(layout FormationLayout) map[string]struct{} {
	out := make(map[string]struct{})
	for _, slot := range layout.Slots {
		if slot.Entry != nil {
			out[slot.Entry.Name] = struct{}{}
		}
	}
	return out
}

func TestResolveFormation(t *testing.T) {
	t.Run("small signature resolves one to one", func(t *testing.T) {
		entries := startedEntries("GK", "CB", "LM", "RM", "CF")

		layout := ResolveFormation(entries, "")
		if layout.Template != templateSmall.Name {
			t.Fatalf("unexpected template: got=%s want=%s", layout.Template, templateSmall.Name)
		}
		if len(layout.Overflow) != 0 {
			t.Fatalf("unexpected overflow: %+v", layout.Overflow)
		}
		for _, slot := range layout.Slots {
			if slot.Entry == nil {
				t.Fatalf("slot %s left empty", slot.Slot.Position)
			}
			if NormalizePosition(slot.Entry.Position) != slot.Slot.Position {
				t.Fatalf("slot %s got entry with position %s", slot.Slot.Position, slot.Entry.Position)
			}
		}
	})

	t.Run("game type hint wins over count", func(t *testing.T) {
		entries := startedEntries("GK", "CB", "CF")

		layout := ResolveFormation(entries, "8v8")
		if layout.Template != templateLarge.Name {
			t.Fatalf("unexpected template: got=%s want=%s", layout.Template, templateLarge.Name)
		}

		empty := 0
		for _, slot := range layout.Slots {
			if slot.Entry == nil {
				empty++
			}
		}
		if empty != len(templateLarge.Slots)-3 {
			t.Fatalf("unexpected empty slot count: got=%d want=%d", empty, len(templateLarge.Slots)-3)
		}
	})

	t.Run("hint with stray digit keeps the encoded size", func(t *testing.T) {
		entries := startedEntries("GK", "LB", "CB", "RB", "LM", "CM", "RM", "CF")

		layout := ResolveFormation(entries, "8v8 season 5")
		if layout.Template != templateLarge.Name {
			t.Fatalf("unexpected template: got=%s want=%s", layout.Template, templateLarge.Name)
		}
		if len(layout.Overflow) != 0 {
			t.Fatalf("unexpected overflow: %+v", layout.Overflow)
		}
	})

	t.Run("hint with leading year keeps the encoded size", func(t *testing.T) {
		entries := startedEntries("GK", "CB", "CF")

		layout := ResolveFormation(entries, "2025-8v8")
		if layout.Template != templateLarge.Name {
			t.Fatalf("unexpected template: got=%s want=%s", layout.Template, templateLarge.Name)
		}
	})

	t.Run("conflicting hint tokens fall back to count", func(t *testing.T) {
		entries := startedEntries("GK", "LB", "CB", "RB", "LM", "CM", "RM", "CF")

		layout := ResolveFormation(entries, "5v5 or 8v8")
		if layout.Template != templateLarge.Name {
			t.Fatalf("unexpected template: got=%s want=%s", layout.Template, templateLarge.Name)
		}
	})

	t.Run("hint without a squad token falls back to signature", func(t *testing.T) {
		entries := startedEntries("GK", "CB", "LM", "RM", "CF")

		layout := ResolveFormation(entries, "division 5")
		if layout.Template != templateSmall.Name {
			t.Fatalf("unexpected template: got=%s want=%s", layout.Template, templateSmall.Name)
		}
	})

	t.Run("unknown squad size hint falls back to count", func(t *testing.T) {
		entries := startedEntries("GK", "CB", "LM", "CM", "RM", "CF")

		layout := ResolveFormation(entries, "4v4")
		if layout.Template != templateMedium.Name {
			t.Fatalf("unexpected template: got=%s want=%s", layout.Template, templateMedium.Name)
		}
	})

	t.Run("medium signature preferred over count fallback", func(t *testing.T) {
		entries := startedEntries("GK", "CB", "LM", "CM", "RM", "CF")

		layout := ResolveFormation(entries, "")
		if layout.Template != templateMedium.Name {
			t.Fatalf("unexpected template: got=%s want=%s", layout.Template, templateMedium.Name)
		}
	})

	t.Run("count fallback selects by started size", func(t *testing.T) {
		cases := []struct {
			count int
			want  string
		}{
			{count: 4, want: templateSmall.Name},
			{count: 6, want: templateMedium.Name},
			{count: 7, want: templateLarge.Name},
		}
		for _, tc := range cases {
			positions := make([]string, tc.count)
			for i := range positions {
				positions[i] = "XX"
			}
			layout := ResolveFormation(startedEntries(positions...), "")
			if layout.Template != tc.want {
				t.Fatalf("count=%d unexpected template: got=%s want=%s", tc.count, layout.Template, tc.want)
			}
		}
	})

	t.Run("duplicate positions fill remaining slots in pass two", func(t *testing.T) {
		entries := startedEntries("GK", "CF", "CF", "CF", "CF")

		layout := ResolveFormation(entries, "5v5")
		for _, slot := range layout.Slots {
			if slot.Entry == nil {
				t.Fatalf("slot %s left empty despite enough entries", slot.Slot.Position)
			}
		}
		if len(layout.Overflow) != 0 {
			t.Fatalf("unexpected overflow: %+v", layout.Overflow)
		}
	})

	t.Run("assigned plus overflow equals started set", func(t *testing.T) {
		entries := startedEntries("GK", "LB", "CB", "RB", "LM", "CM", "RM", "CF", "CF", "CF")

		layout := ResolveFormation(entries, "")
		assigned := assignedNames(layout)
		if len(assigned)+len(layout.Overflow) != len(entries) {
			t.Fatalf("assignment dropped entries: assigned=%d overflow=%d started=%d",
				len(assigned), len(layout.Overflow), len(entries))
		}
		for _, entry := range layout.Overflow {
			if _, ok := assigned[entry.Name]; ok {
				t.Fatalf("entry %s both assigned and overflowed", entry.Name)
			}
		}
	})

	t.Run("non starters are ignored", func(t *testing.T) {
		entries := append(startedEntries("GK", "CB", "LM", "RM", "CF"),
			LineupEntry{Position: "CF", Name: "bench", Started: false})

		layout := ResolveFormation(entries, "")
		if layout.Template != templateSmall.Name {
			t.Fatalf("unexpected template: got=%s want=%s", layout.Template, templateSmall.Name)
		}
		if _, ok := assignedNames(layout)["bench"]; ok {
			t.Fatalf("bench entry must not be assigned")
		}
	})

	t.Run("no entries renders all placeholders", func(t *testing.T) {
		layout := ResolveFormation(nil, "")
		if layout.Template != templateSmall.Name {
			t.Fatalf("unexpected template: got=%s", layout.Template)
		}
		for _, slot := range layout.Slots {
			if slot.Entry != nil {
				t.Fatalf("expected placeholder slot, got %+v", slot.Entry)
			}
		}
	})
}
