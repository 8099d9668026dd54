package render

import (
	"reflect"
	"testing"

	"codeberg.org/snonux/tangocho/internal/store"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestIsJapaneseScript(t *testing.T) {
	tests := []struct {
		name     string
		r        rune
		expected bool
	}{
		{"hiragana", 'あ', true},
		{"katakana", 'カ', true},
		{"katakana prolonged sound mark", 'ー', true},
		{"kanji", '語', true},
		{"half-width katakana", 'ｱ', true},
		{"half-width katakana range end", 'ﾝ', true},
		{"past half-width katakana range", 'ﾞ', false},
		{"latin letter", 'A', false},
		{"digit", '7', false},
		{"space", ' ', false},
		{"below hiragana range", '〿', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsJapaneseScript(tt.r); got != tt.expected {
				t.Errorf("IsJapaneseScript(%q) = %v, expected %v", tt.r, got, tt.expected)
			}
		})
	}
}

func TestExpandWithoutRunsSplitsByScript(t *testing.T) {
	frags := Expand("abcあいうdef", nil)

	expected := []Fragment{
		{Text: "abc", Style: Style{Script: ScriptOther}},
		{Text: "あいう", Style: Style{Script: ScriptJapanese}},
		{Text: "def", Style: Style{Script: ScriptOther}},
	}
	if !reflect.DeepEqual(frags, expected) {
		t.Errorf("Expand mismatch\nexpected: %#v\nactual:   %#v", expected, frags)
	}
}

func TestExpandEmptyText(t *testing.T) {
	if frags := Expand("", nil); len(frags) != 0 {
		t.Errorf("Expected no fragments for empty text, got %#v", frags)
	}
}

func TestExpandRunPrecedence(t *testing.T) {
	// An explicit run suppresses script splitting entirely.
	runs := []store.Run{{Text: "ab", FG: strPtr("red")}}
	frags := Expand("ab", runs)

	expected := []Fragment{{Text: "ab", Style: Style{FG: "red"}}}
	if !reflect.DeepEqual(frags, expected) {
		t.Errorf("Expand mismatch\nexpected: %#v\nactual:   %#v", expected, frags)
	}
}

func TestExpandRunsVerbatimOrder(t *testing.T) {
	runs := []store.Run{
		{Text: "日本", FG: strPtr("red"), Bold: boolPtr(true)},
		{Text: ""},
		{Text: "go", Underline: boolPtr(true), BG: strPtr("#ffff00")},
		{Text: "plain"},
	}
	frags := Expand("日本goplain", runs)

	expected := []Fragment{
		{Text: "日本", Style: Style{FG: "red", Bold: true}},
		{Text: "go", Style: Style{BG: "#ffff00", Underline: true}},
		{Text: "plain", Style: Style{}},
	}
	if !reflect.DeepEqual(frags, expected) {
		t.Errorf("Expand mismatch\nexpected: %#v\nactual:   %#v", expected, frags)
	}
}
