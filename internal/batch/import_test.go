package batch

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"codeberg.org/snonux/tangocho/internal/store"
)

func writeImportFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "import.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadImportFile(t *testing.T) {
	content := `# vocabulary list
desk = 机

[food/fruit]
apple = りんご
banana = バナナ

[school]
book = 本
no separator line
 = missing word

[]
chair = 椅子
`
	path := writeImportFile(t, content)

	entries, err := ReadImportFile(path)
	if err != nil {
		t.Fatalf("ReadImportFile failed: %v", err)
	}

	expected := []store.Entry{
		{Word: "desk", Meaning: "机"},
		{Word: "apple", Meaning: "りんご", Genre: "food/fruit"},
		{Word: "banana", Meaning: "バナナ", Genre: "food/fruit"},
		{Word: "book", Meaning: "本", Genre: "school"},
		{Word: "chair", Meaning: "椅子"},
	}
	if !reflect.DeepEqual(entries, expected) {
		t.Errorf("Import mismatch\nexpected: %#v\nactual:   %#v", expected, entries)
	}
}

func TestReadImportFileMissing(t *testing.T) {
	if _, err := ReadImportFile(filepath.Join(t.TempDir(), "none.txt")); err == nil {
		t.Error("Expected error for missing import file")
	}
}

func TestReadImportFileNormalizesSectionPaths(t *testing.T) {
	path := writeImportFile(t, "[ /food//fruit/ ]\napple = りんご\n")

	entries, err := ReadImportFile(path)
	if err != nil {
		t.Fatalf("ReadImportFile failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Genre != "food/fruit" {
		t.Errorf("Expected normalized genre food/fruit, got %#v", entries)
	}
}
