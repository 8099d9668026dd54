package study

import (
	"sort"

	"codeberg.org/snonux/tangocho/internal/genre"
	"codeberg.org/snonux/tangocho/internal/render"
	"codeberg.org/snonux/tangocho/internal/store"
)

// HiddenMeaning is what the study display shows before reveal.
const HiddenMeaning = "???"

// Patch carries the fields of an edit. Nil fields keep the stored
// value; in particular an edit without runs retains the previous runs.
type Patch struct {
	Word        *string
	Meaning     *string
	Genre       *string
	WordRuns    []store.Run
	MeaningRuns []store.Run
}

// Controller composes the store, the genre index, and the run renderer
// into the observable study session. All mutations run to completion on
// the caller's goroutine; every persisting command reports save
// failures through the error callback instead of dropping them.
type Controller struct {
	store   *store.Store
	entries []store.Entry
	index   *genre.Index

	active   string // active group path
	hasGroup bool
	cursor   int // position inside the active group, -1 unset
	current  int // entry index, -1 when Idle
	revealed bool

	onSaveError func(error)
}

// New builds a controller over an already-loaded collection. The
// onSaveError callback may be nil, in which case save failures are
// still returned by the mutating call that hit them.
func New(st *store.Store, entries []store.Entry, onSaveError func(error)) *Controller {
	if entries == nil {
		entries = []store.Entry{}
	}
	return &Controller{
		store:       st,
		entries:     entries,
		index:       genre.Rebuild(entries),
		cursor:      -1,
		current:     -1,
		onSaveError: onSaveError,
	}
}

// Index exposes the current genre index for display projection.
func (c *Controller) Index() *genre.Index {
	return c.index
}

// Entries returns the collection. Callers must not hold the slice
// across a mutating call.
func (c *Controller) Entries() []store.Entry {
	return c.entries
}

// ActiveGroup returns the active group path and whether one is set.
func (c *Controller) ActiveGroup() (string, bool) {
	return c.active, c.hasGroup
}

// CurrentIndex returns the shown entry's collection index, -1 when Idle.
func (c *Controller) CurrentIndex() int {
	return c.current
}

// Revealed reports whether the meaning is currently shown.
func (c *Controller) Revealed() bool {
	return c.revealed
}

// Idle reports whether no card is shown.
func (c *Controller) Idle() bool {
	return c.current < 0
}

// WordFragments returns the display fragments for the current word,
// runs taking precedence over the plain string. Nil when Idle.
func (c *Controller) WordFragments() []render.Fragment {
	if c.current < 0 {
		return nil
	}
	e := c.entries[c.current]
	return render.Expand(e.Word, e.WordRuns)
}

// MeaningFragments returns the display fragments for the meaning, or
// the hidden placeholder while the card is not revealed.
func (c *Controller) MeaningFragments() []render.Fragment {
	if c.current < 0 {
		return nil
	}
	if !c.revealed {
		return render.Expand(HiddenMeaning, nil)
	}
	e := c.entries[c.current]
	return render.Expand(e.Meaning, e.MeaningRuns)
}

// Select activates a group and shows a random member with the meaning
// hidden. An empty group leaves the controller Idle; the returned error
// is genre.ErrEmptyGroup then, for the display's placeholder.
func (c *Controller) Select(groupPath string) error {
	c.active = genre.Normalize(groupPath)
	c.hasGroup = true
	cursor, err := c.index.PickRandom(c.active)
	if err != nil {
		c.toIdle()
		return err
	}
	c.setCursor(cursor)
	return nil
}

// Next advances to the following card in the active group, wrapping.
func (c *Controller) Next() error {
	return c.step(+1)
}

// Prev moves to the preceding card in the active group, wrapping.
func (c *Controller) Prev() error {
	return c.step(-1)
}

func (c *Controller) step(delta int) error {
	cursor, err := c.index.Advance(c.active, c.cursor, delta)
	if err != nil {
		c.toIdle()
		return err
	}
	c.setCursor(cursor)
	return nil
}

// Reveal shows the meaning of the current card. No-op when Idle or
// already revealed.
func (c *Controller) Reveal() {
	if c.current >= 0 {
		c.revealed = true
	}
}

// Add appends an entry, persists, and rebuilds the index. The shown
// card is kept if it still exists in the active group; otherwise the
// cursor is clamped into range.
func (c *Controller) Add(e store.Entry) error {
	c.entries = append(c.entries, e)
	err := c.persist()
	c.index = genre.Rebuild(c.entries)
	c.reanchor(c.current)
	return err
}

// Edit merges a patch into the entry at i, persists, rebuilds, and
// re-selects the same entry in the rebuilt group. An out-of-range index
// is ignored.
func (c *Controller) Edit(i int, patch Patch) error {
	if i < 0 || i >= len(c.entries) {
		return nil
	}

	e := c.entries[i]
	if patch.Word != nil {
		e.Word = *patch.Word
	}
	if patch.Meaning != nil {
		e.Meaning = *patch.Meaning
	}
	if patch.Genre != nil {
		e.Genre = *patch.Genre
	}
	if patch.WordRuns != nil {
		e.WordRuns = patch.WordRuns
	}
	if patch.MeaningRuns != nil {
		e.MeaningRuns = patch.MeaningRuns
	}
	c.entries[i] = e

	err := c.persist()
	c.index = genre.Rebuild(c.entries)

	if i == c.current {
		// Follow the entry into its possibly different group.
		if path, gerr := c.index.GroupFor(i); gerr == nil {
			c.active = path
			c.hasGroup = true
		}
	}
	c.reanchor(c.current)
	return err
}

// Delete removes the entries at the given indices (descending order,
// out-of-range ignored), persists, and rebuilds. If the shown card was
// removed the first member of the active group is selected, or the
// controller falls back to Idle when the group vanished.
func (c *Controller) Delete(indices []int) error {
	sorted := append([]int(nil), indices...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	prev := -1
	removed := 0
	for _, i := range sorted {
		if i < 0 || i >= len(c.entries) || i == prev {
			continue
		}
		prev = i
		c.entries = append(c.entries[:i], c.entries[i+1:]...)
		removed++
		switch {
		case i == c.current:
			c.current = -1
		case c.current > i:
			c.current--
		}
	}
	if removed == 0 {
		return nil
	}

	err := c.persist()
	c.index = genre.Rebuild(c.entries)

	if c.current >= 0 {
		c.reanchor(c.current)
	} else if c.hasGroup {
		// Shown card deleted: restart at the group's first member.
		if members := c.index.Siblings(c.active); len(members) > 0 {
			c.setCursor(0)
		} else {
			c.toIdle()
		}
	}
	return err
}

// Reload replaces the whole collection (bulk import), persists, and
// rebuilds from scratch.
func (c *Controller) Reload(entries []store.Entry) error {
	if entries == nil {
		entries = []store.Entry{}
	}
	c.entries = entries
	err := c.persist()
	c.index = genre.Rebuild(c.entries)
	c.toIdle()
	c.hasGroup = false
	c.active = genre.Uncategorized
	return err
}

// reanchor re-locates entry i inside the active group after a rebuild,
// clamping the cursor into range when the entry moved elsewhere.
func (c *Controller) reanchor(i int) {
	if !c.hasGroup {
		return
	}
	members := c.index.Siblings(c.active)
	if len(members) == 0 {
		c.toIdle()
		return
	}
	for pos, m := range members {
		if m == i {
			c.cursor = pos
			c.current = i
			return
		}
	}
	if c.cursor < 0 {
		c.cursor = 0
	}
	if c.cursor >= len(members) {
		c.cursor = len(members) - 1
	}
	c.current = members[c.cursor]
}

// setCursor points the session at the active group's member at cursor
// and hides the meaning.
func (c *Controller) setCursor(cursor int) {
	members := c.index.Siblings(c.active)
	c.cursor = cursor
	c.current = members[cursor]
	c.revealed = false
}

func (c *Controller) toIdle() {
	c.cursor = -1
	c.current = -1
	c.revealed = false
}

// persist saves the collection and routes a failure to the callback.
// The in-memory state stays authoritative either way.
func (c *Controller) persist() error {
	if c.store == nil {
		return nil
	}
	err := c.store.Save(c.entries)
	if err != nil && c.onSaveError != nil {
		c.onSaveError(err)
	}
	return err
}
