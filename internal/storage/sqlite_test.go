package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/serpientes/internal/game"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandPath("~/.serpientes/progress.db")
	if err != nil {
		t.Fatalf("ExpandPath() failed: %v", err)
	}
	if want := filepath.Join(home, ".serpientes", "progress.db"); got != want {
		t.Errorf("ExpandPath() = %q, want %q", got, want)
	}

	if got, _ := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed to %q", got)
	}
}

func TestProgressFreshPlayer(t *testing.T) {
	store := openTestStore(t)

	st, err := store.Progress("nadie").Load(context.Background())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if st.Position != 0 || st.Verses == nil || len(st.Verses) != 0 {
		t.Errorf("fresh state = %#v, want position 0 and an empty list", st)
	}
}

func TestProgressSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	p := store.Progress("ana")

	want := game.State{Position: 23, Verses: []string{"Los dados ruedan y escapan a tu mano", "uno | dos", `barra \ invertida`}, Rolls: 7}
	if err := p.Save(ctx, want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	got, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load() = %#v, want %#v", got, want)
	}

	// Overwrite
	if err := p.Save(ctx, game.NewState()); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	got, _ = p.Load(ctx)
	if got.Position != 0 || len(got.Verses) != 0 {
		t.Errorf("after reset Load() = %#v", got)
	}
}

func TestProgressIsolatedPerPlayer(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	store.Progress("ana").Save(ctx, game.State{Position: 10, Verses: []string{"a"}})
	store.Progress("luis").Save(ctx, game.State{Position: 3, Verses: []string{}})

	ana, _ := store.Progress("ana").Load(ctx)
	luis, _ := store.Progress("luis").Load(ctx)
	if ana.Position != 10 || luis.Position != 3 {
		t.Errorf("positions = %d/%d, want 10/3", ana.Position, luis.Position)
	}

	players, err := store.Players(ctx)
	if err != nil {
		t.Fatalf("Players() failed: %v", err)
	}
	if !reflect.DeepEqual(players, []string{"ana", "luis"}) {
		t.Errorf("Players() = %v", players)
	}

	if err := store.ClearProgress(ctx, "ana"); err != nil {
		t.Fatalf("ClearProgress() failed: %v", err)
	}
	ana, _ = store.Progress("ana").Load(ctx)
	if ana.Position != 0 {
		t.Errorf("cleared position = %d, want 0", ana.Position)
	}
	luis, _ = store.Progress("luis").Load(ctx)
	if luis.Position != 3 {
		t.Error("clearing one player must not touch another")
	}
}

func TestProgressCorruptValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"position not a number", keyPosition, "doce"},
		{"dangling escape", keyVerses, `uno\`},
		{"unknown escape", keyVerses, `u\no`},
		{"empty verse", keyVerses, "uno||dos"},
		{"roll count not a number", keyRolls, "tres"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := openTestStore(t)

			_, err := store.db.Exec(
				"INSERT INTO progress (player, name, value) VALUES (?, ?, ?)",
				"ana", tt.key, tt.value,
			)
			if err != nil {
				t.Fatalf("seed failed: %v", err)
			}

			if _, err := store.Progress("ana").Load(ctx); !errors.Is(err, game.ErrCorruptState) {
				t.Errorf("Load() error = %v, want ErrCorruptState", err)
			}
		})
	}
}

func TestEngineRecoversFromCorruptProgress(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	store.db.Exec("INSERT INTO progress (player, name, value) VALUES ('ana', ?, 'xx')", keyPosition)

	p := store.Progress("ana")
	e := game.New(game.Config{Store: p, Player: "ana"})
	if err := e.Load(ctx); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	st, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("progress still corrupt after recovery: %v", err)
	}
	if st.Position != 0 {
		t.Errorf("position = %d, want 0", st.Position)
	}
}

func TestVictoryCountsRollsAcrossResumes(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	p := store.Progress("ana")

	// A new engine per roll, as one-shot commands and reconnecting sessions do
	tests := []struct {
		die  int
		want int
	}{
		{1, 1},
		{6, 23},
		{5, 28},
		{6, 44},
		{6, 47},
	}
	for i, tt := range tests {
		e := game.New(game.Config{Store: p, Die: game.NewFixedDie(tt.die), Player: "ana"})
		if err := e.Load(ctx); err != nil {
			t.Fatalf("Load() before roll %d failed: %v", i+1, err)
		}
		if got := e.Snapshot().Rolls; got != i {
			t.Errorf("rolls after load = %d, want %d", got, i)
		}
		out, err := e.Roll(ctx)
		if err != nil {
			t.Fatalf("Roll() %d failed: %v", i+1, err)
		}
		e.Settle(ctx)
		if out.State.Position != tt.want {
			t.Fatalf("roll %d settled on %d, want %d", i+1, out.State.Position, tt.want)
		}
	}

	wins, err := store.RecentVictories(ctx, "ana", 1)
	if err != nil {
		t.Fatalf("RecentVictories() failed: %v", err)
	}
	if len(wins) != 1 || wins[0].Rolls != len(tests) {
		t.Fatalf("victories = %+v, want one with %d rolls", wins, len(tests))
	}
}

func TestVictoryHistory(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	first := game.Victory{ID: uuid.New(), Player: "ana", Rolls: 14, Verses: []string{"a", "b|c"}, FinishedAt: base}
	second := game.Victory{ID: uuid.New(), Player: "luis", Rolls: 9, Verses: []string{}, FinishedAt: base.Add(time.Hour)}
	for _, v := range []game.Victory{first, second} {
		if _, err := store.RecordVictory(ctx, v); err != nil {
			t.Fatalf("RecordVictory() failed: %v", err)
		}
	}

	all, err := store.RecentVictories(ctx, "", 10)
	if err != nil {
		t.Fatalf("RecentVictories() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d victories, want 2", len(all))
	}
	if all[0].GameID != second.ID || all[1].GameID != first.ID {
		t.Error("victories should be newest first")
	}
	if !reflect.DeepEqual(all[1].Verses, first.Verses) || all[1].Rolls != 14 {
		t.Errorf("stored victory = %+v", all[1])
	}
	if !all[1].CreatedAt.Equal(base) {
		t.Errorf("CreatedAt = %v, want %v", all[1].CreatedAt, base)
	}

	ana, _ := store.RecentVictories(ctx, "ana", 10)
	if len(ana) != 1 || ana[0].Player != "ana" {
		t.Errorf("ana's victories = %+v", ana)
	}

	n, err := store.VictoryCount(ctx, "luis")
	if err != nil || n != 1 {
		t.Errorf("VictoryCount(luis) = %d, %v", n, err)
	}
	n, _ = store.VictoryCount(ctx, "")
	if n != 2 {
		t.Errorf("VictoryCount() = %d, want 2", n)
	}
}

func TestProgressRecordsVictoryForItsPlayer(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	if err := store.Progress("ana").RecordVictory(ctx, game.Victory{Rolls: 3}); err != nil {
		t.Fatalf("RecordVictory() failed: %v", err)
	}
	got, _ := store.RecentVictories(ctx, "ana", 1)
	if len(got) != 1 || got[0].GameID == uuid.Nil {
		t.Errorf("victories = %+v", got)
	}
}

func TestVerseCodec(t *testing.T) {
	tests := []struct {
		name    string
		verses  []string
		encoded string
	}{
		{"empty", []string{}, ""},
		{"single", []string{"hola"}, "hola"},
		{"several", []string{"uno", "dos", "tres"}, "uno|dos|tres"},
		{"separator inside", []string{"a|b"}, `a\|b`},
		{"backslash inside", []string{`a\b`}, `a\\b`},
		{"accents", []string{"canción", "día"}, "canción|día"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeVerses(tt.verses); got != tt.encoded {
				t.Errorf("EncodeVerses() = %q, want %q", got, tt.encoded)
			}
			got, err := DecodeVerses(tt.encoded)
			if err != nil {
				t.Fatalf("DecodeVerses() failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.verses) {
				t.Errorf("DecodeVerses() = %q, want %q", got, tt.verses)
			}
		})
	}
}

func TestDecodeVersesRejectsMalformed(t *testing.T) {
	for _, in := range []string{`\`, `abc\`, `a\x`, "|", "a|", strings.Repeat("|", 3)} {
		if _, err := DecodeVerses(in); !errors.Is(err, game.ErrCorruptState) {
			t.Errorf("DecodeVerses(%q) error = %v, want ErrCorruptState", in, err)
		}
	}
}
