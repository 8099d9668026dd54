package study

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"codeberg.org/snonux/tangocho/internal/genre"
	"codeberg.org/snonux/tangocho/internal/render"
	"codeberg.org/snonux/tangocho/internal/store"
)

func strPtr(s string) *string { return &s }

func newTestController(t *testing.T, entries []store.Entry) *Controller {
	t.Helper()
	st := store.New(filepath.Join(t.TempDir(), "words.json"))
	return New(st, entries, nil)
}

func studyEntries() []store.Entry {
	return []store.Entry{
		{Word: "apple", Meaning: "りんご", Genre: "food/fruit"},
		{Word: "banana", Meaning: "バナナ", Genre: "food/fruit"},
		{Word: "book", Meaning: "本", Genre: "school"},
		{Word: "desk", Meaning: "机"},
	}
}

func TestSelectShowsHiddenCard(t *testing.T) {
	c := newTestController(t, studyEntries())

	if err := c.Select("school"); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if c.Idle() {
		t.Fatal("Controller should be showing a card")
	}
	if c.CurrentIndex() != 2 {
		t.Errorf("CurrentIndex = %d, expected 2", c.CurrentIndex())
	}
	if c.Revealed() {
		t.Error("Meaning should start hidden")
	}

	frags := c.MeaningFragments()
	if len(frags) != 1 || frags[0].Text != HiddenMeaning {
		t.Errorf("Hidden meaning fragments = %#v", frags)
	}
}

func TestSelectEmptyGroupGoesIdle(t *testing.T) {
	c := newTestController(t, studyEntries())

	err := c.Select("no/such/genre")
	if !errors.Is(err, genre.ErrEmptyGroup) {
		t.Errorf("Expected ErrEmptyGroup, got %v", err)
	}
	if !c.Idle() {
		t.Error("Controller should be Idle after selecting an empty group")
	}
}

func TestRevealThenNavigateHidesAgain(t *testing.T) {
	c := newTestController(t, studyEntries())
	if err := c.Select("food/fruit"); err != nil {
		t.Fatal(err)
	}

	c.Reveal()
	if !c.Revealed() {
		t.Fatal("Reveal should show the meaning")
	}

	// Reveal is idempotent.
	c.Reveal()
	if !c.Revealed() {
		t.Fatal("Second reveal should keep the meaning shown")
	}

	if err := c.Next(); err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if c.Revealed() {
		t.Error("Navigation should hide the meaning again")
	}
}

func TestRevealWhileIdleIsNoOp(t *testing.T) {
	c := newTestController(t, nil)
	c.Reveal()
	if c.Revealed() {
		t.Error("Reveal while Idle should do nothing")
	}
}

func TestNavigationWrapsThroughGroup(t *testing.T) {
	c := newTestController(t, studyEntries())
	if err := c.Select("food/fruit"); err != nil {
		t.Fatal(err)
	}

	start := c.CurrentIndex()
	for i := 0; i < 2; i++ {
		if err := c.Next(); err != nil {
			t.Fatalf("Next failed: %v", err)
		}
	}
	if c.CurrentIndex() != start {
		t.Errorf("After k steps CurrentIndex = %d, expected %d", c.CurrentIndex(), start)
	}

	if err := c.Prev(); err != nil {
		t.Fatalf("Prev failed: %v", err)
	}
	if c.CurrentIndex() == start {
		t.Error("Prev should move off the starting card in a two-member group")
	}
}

func TestWordFragmentsPreferRuns(t *testing.T) {
	entries := []store.Entry{{
		Word:     "ab",
		Meaning:  "x",
		WordRuns: []store.Run{{Text: "ab", FG: strPtr("red")}},
	}}
	c := newTestController(t, entries)
	if err := c.Select(genre.Uncategorized); err != nil {
		t.Fatal(err)
	}

	frags := c.WordFragments()
	expected := []render.Fragment{{Text: "ab", Style: render.Style{FG: "red"}}}
	if !reflect.DeepEqual(frags, expected) {
		t.Errorf("WordFragments = %#v, expected %#v", frags, expected)
	}
}

func TestAddPersistsAndKeepsCurrentCard(t *testing.T) {
	st := store.New(filepath.Join(t.TempDir(), "words.json"))
	c := New(st, studyEntries(), nil)
	if err := c.Select("school"); err != nil {
		t.Fatal(err)
	}
	before := c.CurrentIndex()

	if err := c.Add(store.Entry{Word: "pen", Meaning: "ペン", Genre: "school"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if c.CurrentIndex() != before {
		t.Errorf("Add should keep the shown card, got index %d", c.CurrentIndex())
	}
	if got := len(c.Entries()); got != 5 {
		t.Errorf("Expected 5 entries, got %d", got)
	}

	// The collection was written through.
	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 5 {
		t.Errorf("Persisted collection has %d entries, expected 5", len(loaded))
	}
}

func TestEditRetainsRunsWhenOmitted(t *testing.T) {
	entries := []store.Entry{{
		Word:     "x",
		Meaning:  "old",
		WordRuns: []store.Run{{Text: "x", FG: strPtr("blue")}},
	}}
	c := newTestController(t, entries)

	if err := c.Edit(0, Patch{Meaning: strPtr("y")}); err != nil {
		t.Fatalf("Edit failed: %v", err)
	}

	e := c.Entries()[0]
	if e.Meaning != "y" {
		t.Errorf("Meaning = %q, expected y", e.Meaning)
	}
	if e.Word != "x" {
		t.Errorf("Word = %q, expected unchanged x", e.Word)
	}
	if len(e.WordRuns) != 1 || e.WordRuns[0].FG == nil || *e.WordRuns[0].FG != "blue" {
		t.Errorf("WordRuns should be retained, got %#v", e.WordRuns)
	}
}

func TestEditFollowsEntryIntoNewGroup(t *testing.T) {
	c := newTestController(t, studyEntries())
	if err := c.Select("school"); err != nil {
		t.Fatal(err)
	}

	if err := c.Edit(2, Patch{Genre: strPtr("office")}); err != nil {
		t.Fatalf("Edit failed: %v", err)
	}

	active, ok := c.ActiveGroup()
	if !ok || active != "office" {
		t.Errorf("Active group = %q, expected office", active)
	}
	if c.CurrentIndex() != 2 {
		t.Errorf("CurrentIndex = %d, expected 2", c.CurrentIndex())
	}
}

func TestEditOutOfRangeIgnored(t *testing.T) {
	c := newTestController(t, studyEntries())
	if err := c.Edit(42, Patch{Word: strPtr("zz")}); err != nil {
		t.Errorf("Out-of-range edit should be ignored, got %v", err)
	}
	if c.Entries()[0].Word != "apple" {
		t.Error("Collection should be untouched")
	}
}

func TestDeleteCurrentFallsBackToFirstMember(t *testing.T) {
	c := newTestController(t, studyEntries())
	if err := c.Select("food/fruit"); err != nil {
		t.Fatal(err)
	}
	current := c.CurrentIndex()

	if err := c.Delete([]int{current}); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if c.Idle() {
		t.Fatal("Group still has a member, controller should not be Idle")
	}
	members := c.Index().Siblings("food/fruit")
	if len(members) != 1 || c.CurrentIndex() != members[0] {
		t.Errorf("Expected first remaining member %v, got index %d", members, c.CurrentIndex())
	}
}

func TestDeleteWholeGroupGoesIdle(t *testing.T) {
	c := newTestController(t, studyEntries())
	if err := c.Select("school"); err != nil {
		t.Fatal(err)
	}

	if err := c.Delete([]int{2}); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !c.Idle() {
		t.Error("Controller should be Idle after its group emptied")
	}
}

func TestDeleteBatchIgnoresOutOfRangeAndDuplicates(t *testing.T) {
	c := newTestController(t, studyEntries())

	if err := c.Delete([]int{3, 3, 99, -1, 0}); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	words := make([]string, 0, len(c.Entries()))
	for _, e := range c.Entries() {
		words = append(words, e.Word)
	}
	if !reflect.DeepEqual(words, []string{"banana", "book"}) {
		t.Errorf("Remaining words = %v, expected [banana book]", words)
	}
}

func TestSaveFailureIsReportedNotSwallowed(t *testing.T) {
	// A store pointing into a non-writable location must surface the
	// failure through the callback while the session keeps running.
	var reported error
	st := store.New(filepath.Join("/proc", "no-such-dir", "words.json"))
	c := New(st, studyEntries(), func(err error) { reported = err })

	err := c.Add(store.Entry{Word: "pen", Meaning: "ペン"})
	if err == nil {
		t.Fatal("Expected save failure")
	}
	if reported == nil {
		t.Error("Save failure should reach the error callback")
	}
	if !errors.Is(err, store.ErrPersist) {
		t.Errorf("Expected ErrPersist, got %v", err)
	}
	if got := len(c.Entries()); got != 5 {
		t.Errorf("In-memory collection should keep the new entry, got %d", got)
	}
}
