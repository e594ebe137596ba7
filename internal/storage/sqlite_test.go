package storage

import (
	"slices"
	"testing"

	"github.com/vovakirdan/number-catcher/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenIsEmpty(t *testing.T) {
	store := openTestStore(t)

	games, err := store.TopGames(10)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(games) != 0 {
		t.Errorf("Expected no games in a fresh session, got %d", len(games))
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if *stats != (SessionStats{}) {
		t.Errorf("Expected zero stats, got %+v", *stats)
	}
}

func TestStoreSessionsAreIsolated(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	if _, err := a.SaveGame(GameEntry{Score: 10, RoundsPlayed: 2, Finished: true}); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	games, err := b.TopGames(10)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(games) != 0 {
		t.Errorf("Expected second session to be empty, got %d games", len(games))
	}
}

func TestStoreTopGames(t *testing.T) {
	store := openTestStore(t)

	for _, g := range []GameEntry{
		{Score: 7, RoundsPlayed: 4, Finished: true},
		{Score: 30, RoundsPlayed: 9, Finished: true},
		{Score: 7, RoundsPlayed: 3, Finished: false},
		{Score: 12, RoundsPlayed: 5, Finished: true},
	} {
		if _, err := store.SaveGame(g); err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}

	games, err := store.TopGames(3)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(games) != 3 {
		t.Fatalf("Expected 3 games with limit, got %d", len(games))
	}

	if games[0].Score != 30 || games[1].Score != 12 || games[2].Score != 7 {
		t.Errorf("Games not in expected order: %+v", games)
	}
	// Ties keep play order.
	if games[2].RoundsPlayed != 4 || !games[2].Finished {
		t.Errorf("Expected the earlier finished game on a tie, got %+v", games[2])
	}
	if games[0].CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}
}

func TestStoreRecordEvents(t *testing.T) {
	store := openTestStore(t)

	events := []core.Event{
		{Kind: core.EventRoundStarted, Round: 1, Target: 10},
		{Kind: core.EventRoundWon, Round: 1, Target: 10, Sum: 10, Bonus: 20, Score: 21, Lives: 3, Numbers: []int{4, 6}},
		{Kind: core.EventOvershot, Round: 2, Target: 8, Sum: 12, Score: 21, Lives: 2, Numbers: []int{5, 7}},
		{Kind: core.EventOutOfTime, Round: 3, Target: 50, Sum: 3, Score: 21, Lives: 1, Numbers: []int{3}},
		{Kind: core.EventOutOfTime, Round: 4, Target: 60, Score: 21, Lives: 0},
		{Kind: core.EventGameOver, Round: 4, Score: 21, Lives: 0, RoundsPlayed: 4},
	}
	for _, ev := range events {
		if err := store.Record(ev); err != nil {
			t.Fatalf("Record(%s) failed: %v", ev.Kind, err)
		}
	}

	rounds, err := store.RecentRounds(10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 4 {
		t.Fatalf("Expected 4 rounds, got %d", len(rounds))
	}
	if rounds[0].Round != 4 || rounds[3].Round != 1 {
		t.Errorf("Expected newest round first, got rounds %d..%d", rounds[0].Round, rounds[3].Round)
	}
	if rounds[0].Numbers != nil {
		t.Errorf("Expected no numbers for an empty round, got %v", rounds[0].Numbers)
	}
	won := rounds[3]
	if won.Outcome != core.EventRoundWon || won.Bonus != 20 || !slices.Equal(won.Numbers, []int{4, 6}) {
		t.Errorf("Won round not stored as recorded: %+v", won)
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	expected := SessionStats{
		Games:      1,
		BestScore:  21,
		AvgScore:   21,
		RoundsWon:  1,
		Overshoots: 1,
		Timeouts:   2,
		BestBonus:  20,
	}
	if *stats != expected {
		t.Errorf("Expected stats %+v, got %+v", expected, *stats)
	}
	if stats.RoundsLost() != 3 {
		t.Errorf("Expected 3 rounds lost, got %d", stats.RoundsLost())
	}
}

func TestStoreAverageScore(t *testing.T) {
	store := openTestStore(t)
	for _, score := range []int{10, 20, 45} {
		if _, err := store.SaveGame(GameEntry{Score: score, Finished: true}); err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Games != 3 || stats.BestScore != 45 || stats.AvgScore != 25 {
		t.Errorf("Expected 3 games best 45 avg 25, got %+v", *stats)
	}
}

func TestNumbersRoundTrip(t *testing.T) {
	tests := []struct {
		nums []int
		text string
	}{
		{nil, ""},
		{[]int{7}, "7"},
		{[]int{1, 22, 3}, "1,22,3"},
	}
	for _, tt := range tests {
		if got := joinNumbers(tt.nums); got != tt.text {
			t.Errorf("joinNumbers(%v) = %q, expected %q", tt.nums, got, tt.text)
		}
		got, err := splitNumbers(tt.text)
		if err != nil {
			t.Fatalf("splitNumbers(%q) failed: %v", tt.text, err)
		}
		if !slices.Equal(got, tt.nums) {
			t.Errorf("splitNumbers(%q) = %v, expected %v", tt.text, got, tt.nums)
		}
	}

	if _, err := splitNumbers("1,x"); err == nil {
		t.Error("Expected an error for a malformed list")
	}
}
