package querybuilder

import "testing"

func TestSelectToSQL(t *testing.T) {
	t.Run("builds select with where and order", func(t *testing.T) {
		query, args, err := Select("pid", "tid").From("player").
			Where(Eq("name", "Tage Thompson")).
			OrderBy("pid").
			ToSQL()
		if err != nil {
			t.Fatalf("ToSQL error: %v", err)
		}
		want := "SELECT pid, tid FROM player WHERE name = $1 ORDER BY pid"
		if query != want {
			t.Fatalf("unexpected query:\n got: %s\nwant: %s", query, want)
		}
		if len(args) != 1 || args[0] != "Tage Thompson" {
			t.Fatalf("unexpected args: %v", args)
		}
	})

	t.Run("builds select with join and limit", func(t *testing.T) {
		query, _, err := Select("g.gid", "t.abbr").From("game g").
			Join("team t ON t.tid = g.htid").
			OrderBy("g.gid DESC").
			Limit(1).
			ToSQL()
		if err != nil {
			t.Fatalf("ToSQL error: %v", err)
		}
		want := "SELECT g.gid, t.abbr FROM game g JOIN team t ON t.tid = g.htid ORDER BY g.gid DESC LIMIT 1"
		if query != want {
			t.Fatalf("unexpected query: %s", query)
		}
	})

	t.Run("rewrites expr placeholders", func(t *testing.T) {
		query, args, err := Select("gid").From("game").
			Where(Expr("date > ?", "2024-01-01"), Eq("htid", 7)).
			ToSQL()
		if err != nil {
			t.Fatalf("ToSQL error: %v", err)
		}
		want := "SELECT gid FROM game WHERE date > $1 AND htid = $2"
		if query != want {
			t.Fatalf("unexpected query: %s", query)
		}
		if len(args) != 2 {
			t.Fatalf("expected 2 args, got %v", args)
		}
	})

	t.Run("rejects missing table", func(t *testing.T) {
		if _, _, err := Select("gid").ToSQL(); err == nil {
			t.Fatalf("expected error for missing table")
		}
	})
}

func TestInsertToSQL(t *testing.T) {
	t.Run("builds insert with returning suffix", func(t *testing.T) {
		query, args, err := InsertInto("team").
			Columns("name", "abbr").
			Values("Buffalo Sabres", "BUF").
			Suffix("RETURNING tid").
			ToSQL()
		if err != nil {
			t.Fatalf("ToSQL error: %v", err)
		}
		want := "INSERT INTO team (name, abbr) VALUES ($1, $2) RETURNING tid"
		if query != want {
			t.Fatalf("unexpected query: %s", query)
		}
		if len(args) != 2 {
			t.Fatalf("expected 2 args, got %v", args)
		}
	})

	t.Run("rejects column value mismatch", func(t *testing.T) {
		_, _, err := InsertInto("team").Columns("name", "abbr").Values("x").ToSQL()
		if err == nil {
			t.Fatalf("expected error for mismatched columns and values")
		}
	})
}

func TestInsertModel(t *testing.T) {
	type row struct {
		Name   string `db:"name"`
		Abbr   string `db:"abbr"`
		Ignore string `db:"-"`
		hidden string
	}
	_ = row{hidden: ""}.hidden

	query, args, err := InsertModel("team", row{Name: "Buffalo Sabres", Abbr: "BUF", Ignore: "x"}, "")
	if err != nil {
		t.Fatalf("InsertModel error: %v", err)
	}
	want := "INSERT INTO team (name, abbr) VALUES ($1, $2)"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 || args[0] != "Buffalo Sabres" || args[1] != "BUF" {
		t.Fatalf("unexpected args: %v", args)
	}
}
