// Package genre derives the navigation structure from the flat word
// collection: entries partitioned into groups by genre path, a stable
// display order (uncategorized first, then genre paths depth-first in
// lexicographic segment order), and cursor movement within a group.
// The index is rebuilt from scratch whenever the collection changes and
// is never mutated by navigation.
package genre
