// Package store owns the flashcard word collection and its JSON
// persistence. It loads tolerantly (malformed records are dropped or
// coerced, a broken file is quarantined), and saves crash-safely via a
// temporary file that atomically replaces the target.
package store
