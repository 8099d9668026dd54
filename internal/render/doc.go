// Package render turns a word or meaning plus its optional styled runs
// into a flat sequence of (text, style) fragments. It is presentation
// neutral: the terminal UI maps the fragments onto its own styles.
package render
