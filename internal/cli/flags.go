package cli

import "github.com/spf13/pflag"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	WordFile   string
	StartGroup string

	// Import/export flags
	ImportFile string
	AnkiOut    string
	AnkiCSV    bool
	DeckName   string

	// Maintenance flags
	Archive   bool
	ListWords bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		DeckName: "Tangocho Vocabulary",
	}
}

// RegisterGlobal adds the flags shared by all commands to a flag set.
func (f *Flags) RegisterGlobal(fs *pflag.FlagSet) {
	fs.StringVar(&f.CfgFile, "config", "", "config file (default is $HOME/.tangocho.yaml)")
	fs.StringVarP(&f.WordFile, "words", "w", "", "Word file path (default is ~/.local/state/tangocho/words.json)")
}

// Register adds the study-related flags to a flag set.
func (f *Flags) Register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.StartGroup, "genre", "g", "", "Genre path to start the study session in")
	fs.StringVar(&f.ImportFile, "import", "", "Append words from file (one 'word = meaning' per line, [genre] section headers)")
	fs.StringVar(&f.AnkiOut, "anki", "", "Export the collection as an Anki package to the given path")
	fs.BoolVar(&f.AnkiCSV, "anki-csv", false, "Export legacy CSV format instead of APKG when using --anki")
	fs.StringVar(&f.DeckName, "deck-name", f.DeckName, "Deck name for APKG export")
	fs.BoolVar(&f.Archive, "archive", false, "Archive the current word file and start fresh")
	fs.BoolVar(&f.ListWords, "list", false, "Print the word list with indices and exit")
}
