package matchview

import "testing"

func TestParseLineup(t *testing.T) {
	t.Run("tuple form with optional started flag", func(t *testing.T) {
		raw := []any{
			[]any{"GK", "keeper", "765001"},
			[]any{"CF", "striker", "765002", false},
		}

		got := ParseLineup(raw)
		if len(got) != 2 {
			t.Fatalf("unexpected entry count: got=%d want=2", len(got))
		}
		if !got[0].Started {
			t.Fatalf("tuple without 4th element must default to started")
		}
		if got[1].Started {
			t.Fatalf("tuple with false 4th element must not be started")
		}
		if got[0].Position != "GK" || got[0].Name != "keeper" || got[0].SteamID != "765001" {
			t.Fatalf("unexpected first entry: %+v", got[0])
		}
	})

	t.Run("short tuple is skipped", func(t *testing.T) {
		got := ParseLineup([]any{[]any{"GK", "keeper"}})
		if len(got) != 0 {
			t.Fatalf("unexpected entry count: got=%d want=0", len(got))
		}
	})

	t.Run("record form resolves field synonyms", func(t *testing.T) {
		raw := []any{
			map[string]any{"pos": "CB", "discord_name": "wall", "steam_id": "765003"},
			map[string]any{"slot": "LM", "player": "runner", "id": float64(765004), "is_starter": false},
		}

		got := ParseLineup(raw)
		if len(got) != 2 {
			t.Fatalf("unexpected entry count: got=%d want=2", len(got))
		}
		if got[0].Position != "CB" || got[0].Name != "wall" || got[0].SteamID != "765003" {
			t.Fatalf("unexpected first entry: %+v", got[0])
		}
		if got[1].SteamID != "765004" {
			t.Fatalf("numeric id must coerce to string: got=%q", got[1].SteamID)
		}
		if got[1].Started {
			t.Fatalf("is_starter=false must not be started")
		}
	})

	t.Run("record without position synonym is dropped", func(t *testing.T) {
		got := ParseLineup([]any{map[string]any{"name": "ghost"}})
		if len(got) != 0 {
			t.Fatalf("unexpected entry count: got=%d want=0", len(got))
		}
	})

	t.Run("name falls back to id then placeholder", func(t *testing.T) {
		got := ParseLineup([]any{
			map[string]any{"position": "CF", "steam_id": "765005"},
			map[string]any{"position": "RM"},
		})
		if len(got) != 2 {
			t.Fatalf("unexpected entry count: got=%d want=2", len(got))
		}
		if got[0].Name != "765005" {
			t.Fatalf("name must fall back to stable id: got=%q", got[0].Name)
		}
		if got[1].Name != unknownPlayerName {
			t.Fatalf("name must fall back to placeholder: got=%q", got[1].Name)
		}
	})

	t.Run("unparseable elements are skipped without error", func(t *testing.T) {
		got := ParseLineup([]any{"junk", 42, nil, []any{"GK", "keeper", "765006"}})
		if len(got) != 1 {
			t.Fatalf("unexpected entry count: got=%d want=1", len(got))
		}
	})

	t.Run("input order is preserved", func(t *testing.T) {
		raw := []any{
			[]any{"CF", "a", "1"},
			map[string]any{"position": "GK", "name": "b"},
			[]any{"CB", "c", "3"},
		}
		got := ParseLineup(raw)
		if len(got) != 3 || got[0].Name != "a" || got[1].Name != "b" || got[2].Name != "c" {
			t.Fatalf("unexpected order: %+v", got)
		}
	})
}
