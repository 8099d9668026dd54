package genre

import (
	"crypto/rand"
	"errors"
	"math/big"
	"sort"
	"strings"

	"codeberg.org/snonux/tangocho/internal/store"
)

// Uncategorized is the canonical path of the group holding entries
// without a genre. It always sorts before any named genre path.
const Uncategorized = ""

// UncategorizedLabel is the display name of the uncategorized group.
const UncategorizedLabel = "(未分類)"

var (
	// ErrNotFound reports an entry index outside the collection.
	ErrNotFound = errors.New("no such entry")
	// ErrEmptyGroup reports navigation on a group without members.
	// Callers show a placeholder; this is never fatal.
	ErrEmptyGroup = errors.New("group has no words")
)

// Group is one genre's direct members, in collection order.
type Group struct {
	Path    string
	Members []int
}

// Node is one row of the genre tree display: the group path, its last
// segment as label, nesting depth, and the direct member count.
// Intermediate path segments without direct members appear with a zero
// count so nested genres have a visible parent.
type Node struct {
	Path  string
	Label string
	Depth int
	Count int
}

// Index is the derived grouping of a word collection. It is immutable
// after Rebuild; navigation reads it, mutations build a fresh one.
type Index struct {
	groups     map[string]*Group
	order      []string // group paths with members, display order
	nodes      []Node   // full display tree, uncategorized first
	entryGroup []string // group path per entry index
}

// Normalize canonicalizes a genre path: surrounding whitespace removed,
// empty segments dropped. The empty result is the uncategorized path.
func Normalize(path string) string {
	parts := strings.Split(strings.TrimSpace(path), "/")
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "/")
}

// Rebuild recomputes the full index from the entry collection. Entries
// keep their relative collection order inside each group.
func Rebuild(entries []store.Entry) *Index {
	idx := &Index{
		groups:     make(map[string]*Group),
		entryGroup: make([]string, len(entries)),
	}

	for i, e := range entries {
		path := Normalize(e.Genre)
		idx.entryGroup[i] = path
		g, ok := idx.groups[path]
		if !ok {
			g = &Group{Path: path}
			idx.groups[path] = g
		}
		g.Members = append(g.Members, i)
	}

	idx.buildTree()
	return idx
}

// buildTree computes the display order and node rows. The uncategorized
// group is always first; named paths follow depth-first with siblings
// in lexicographic order.
func (idx *Index) buildTree() {
	idx.nodes = append(idx.nodes, Node{
		Path:  Uncategorized,
		Label: UncategorizedLabel,
		Count: len(idx.Siblings(Uncategorized)),
	})
	if _, ok := idx.groups[Uncategorized]; ok {
		idx.order = append(idx.order, Uncategorized)
	}

	children := make(map[string][]string) // parent path -> child segments
	seen := make(map[string]bool)
	for path := range idx.groups {
		if path == Uncategorized {
			continue
		}
		// Register the path and all its ancestors.
		segs := strings.Split(path, "/")
		parent := ""
		for i, seg := range segs {
			cur := strings.Join(segs[:i+1], "/")
			if !seen[cur] {
				seen[cur] = true
				children[parent] = append(children[parent], seg)
			}
			parent = cur
		}
	}

	var walk func(parent string, depth int)
	walk = func(parent string, depth int) {
		segs := children[parent]
		sort.Strings(segs)
		for _, seg := range segs {
			path := seg
			if parent != "" {
				path = parent + "/" + seg
			}
			count := 0
			if g, ok := idx.groups[path]; ok {
				count = len(g.Members)
				idx.order = append(idx.order, path)
			}
			idx.nodes = append(idx.nodes, Node{
				Path:  path,
				Label: seg,
				Depth: depth,
				Count: count,
			})
			walk(path, depth+1)
		}
	}
	walk("", 0)
}

// Len returns the number of indexed entries.
func (idx *Index) Len() int {
	return len(idx.entryGroup)
}

// GroupFor returns the group path of the entry at i.
func (idx *Index) GroupFor(i int) (string, error) {
	if i < 0 || i >= len(idx.entryGroup) {
		return "", ErrNotFound
	}
	return idx.entryGroup[i], nil
}

// Siblings returns the direct member indices of a group in display
// order. Unknown or memberless groups yield an empty sequence.
func (idx *Index) Siblings(path string) []int {
	g, ok := idx.groups[Normalize(path)]
	if !ok {
		return nil
	}
	return g.Members
}

// Paths returns the display order of all groups with direct members.
func (idx *Index) Paths() []string {
	return idx.order
}

// Nodes returns the genre tree display rows.
func (idx *Index) Nodes() []Node {
	return idx.nodes
}

// CollectUnder returns the member indices of a group and all of its
// descendant sub-paths, depth-first in display order. The uncategorized
// sentinel is a leaf: it collects only its own members.
func (idx *Index) CollectUnder(path string) []int {
	path = Normalize(path)
	if path == Uncategorized {
		return append([]int(nil), idx.Siblings(Uncategorized)...)
	}

	var out []int
	prefix := path + "/"
	for _, p := range idx.order {
		if p == path || strings.HasPrefix(p, prefix) {
			out = append(out, idx.groups[p].Members...)
		}
	}
	return out
}

// Advance moves the cursor by delta within a group, wrapping modulo the
// group size. An out-of-range cursor restarts at the first member when
// moving forward and at the last when moving backward.
func (idx *Index) Advance(path string, cursor, delta int) (int, error) {
	size := len(idx.Siblings(path))
	if size == 0 {
		return -1, ErrEmptyGroup
	}
	if cursor < 0 || cursor >= size {
		if delta < 0 {
			return size - 1, nil
		}
		return 0, nil
	}
	return ((cursor+delta)%size + size) % size, nil
}

// PickRandom chooses a cursor uniformly over the group using the OS
// random source, so repeated sessions do not start on the same card.
func (idx *Index) PickRandom(path string) (int, error) {
	size := len(idx.Siblings(path))
	if size == 0 {
		return -1, ErrEmptyGroup
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(size)))
	if err != nil {
		// The OS source failing is effectively unreachable; fall back
		// to the first member rather than aborting navigation.
		return 0, nil
	}
	return int(n.Int64()), nil
}
