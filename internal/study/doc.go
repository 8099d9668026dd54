// Package study holds the session state machine: the current group and
// card, whether the meaning is revealed, and the add/edit/delete
// commands that persist the collection and rebuild the genre index.
// The controller is the sole owner of the mutable collection; displays
// read through its accessors only.
package study
