package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/tangocho/internal/anki"
	"codeberg.org/snonux/tangocho/internal/archive"
	"codeberg.org/snonux/tangocho/internal/batch"
	"codeberg.org/snonux/tangocho/internal/cli"
	"codeberg.org/snonux/tangocho/internal/genre"
	"codeberg.org/snonux/tangocho/internal/store"
	"codeberg.org/snonux/tangocho/internal/study"
	"codeberg.org/snonux/tangocho/internal/tui"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, flags)
	}

	// Mutating subcommands
	rootCmd.AddCommand(
		newAddCommand(flags),
		newEditCommand(flags),
		newDeleteCommand(flags),
	)

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, flags *cli.Flags) error {
	path := cli.WordFilePath(flags)
	st := store.New(path)

	// Handle --archive flag
	if flags.Archive {
		archived, err := archive.ArchiveWordFile(path)
		if err != nil {
			return fmt.Errorf("failed to archive word file: %w", err)
		}
		fmt.Printf("Word file archived to: %s\n", archived)
		return nil
	}

	entries := loadEntries(st)

	// Handle --import flag
	if flags.ImportFile != "" {
		imported, err := batch.ReadImportFile(flags.ImportFile)
		if err != nil {
			return err
		}
		entries = append(entries, imported...)
		if err := st.Save(entries); err != nil {
			return err
		}
		fmt.Printf("Imported %d words into %s\n", len(imported), path)
		return nil
	}

	// Handle --anki flag
	if flags.AnkiOut != "" {
		return exportAnki(cmd, flags, entries)
	}

	// Handle --list flag
	if flags.ListWords {
		printWordList(entries)
		return nil
	}

	// No maintenance flag - launch the interactive study screen
	ctrl := study.New(st, entries, func(err error) {
		fmt.Fprintf(os.Stderr, "Warning: %v (session continues unsaved)\n", err)
	})

	startGroup := flags.StartGroup
	if startGroup == "" {
		startGroup = viper.GetString("study.start_group")
	}
	return tui.Run(ctrl, startGroup)
}

func exportAnki(cmd *cobra.Command, flags *cli.Flags, entries []store.Entry) error {
	cards := anki.CardsFromEntries(entries)
	if len(cards) == 0 {
		return fmt.Errorf("nothing to export: word collection is empty")
	}

	if flags.AnkiCSV {
		if err := anki.GenerateCSV(cards, flags.AnkiOut); err != nil {
			return err
		}
		fmt.Printf("Anki CSV created: %s (%d cards)\n", flags.AnkiOut, len(cards))
		return nil
	}

	deckName := flags.DeckName
	if !cmd.Flags().Changed("deck-name") {
		if name := viper.GetString("deck.name"); name != "" {
			deckName = name
		}
	}

	gen := anki.NewAPKGGenerator(deckName)
	for _, card := range cards {
		gen.AddCard(card)
	}
	if err := gen.GenerateAPKG(flags.AnkiOut); err != nil {
		return err
	}
	fmt.Printf("Anki package created: %s (%d cards)\n", flags.AnkiOut, len(cards))
	return nil
}

func printWordList(entries []store.Entry) {
	if len(entries) == 0 {
		fmt.Println("(no words)")
		return
	}
	for i, e := range entries {
		g := e.Genre
		if g == "" {
			g = genre.UncategorizedLabel
		}
		fmt.Printf("%4d  %-24s %-32s %s\n", i, e.Word, e.Meaning, g)
	}
}

func newAddCommand(flags *cli.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "add <word> <meaning> [genre]",
		Short: "Add a word to the collection",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := store.New(cli.WordFilePath(flags))
			ctrl := study.New(st, loadEntries(st), nil)

			entry := store.Entry{Word: args[0], Meaning: args[1]}
			if len(args) == 3 {
				entry.Genre = genre.Normalize(args[2])
			}
			if err := ctrl.Add(entry); err != nil {
				return err
			}
			fmt.Printf("Added %q (%d words total)\n", entry.Word, len(ctrl.Entries()))
			return nil
		},
	}
}

func newEditCommand(flags *cli.Flags) *cobra.Command {
	var word, meaning, genrePath string

	cmd := &cobra.Command{
		Use:   "edit <index>",
		Short: "Edit a word; omitted fields keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q", args[0])
			}

			st := store.New(cli.WordFilePath(flags))
			ctrl := study.New(st, loadEntries(st), nil)
			if idx < 0 || idx >= len(ctrl.Entries()) {
				return fmt.Errorf("index %d out of range (%d words)", idx, len(ctrl.Entries()))
			}

			var patch study.Patch
			if cmd.Flags().Changed("word") {
				patch.Word = &word
			}
			if cmd.Flags().Changed("meaning") {
				patch.Meaning = &meaning
			}
			if cmd.Flags().Changed("genre") {
				normalized := genre.Normalize(genrePath)
				patch.Genre = &normalized
			}

			if err := ctrl.Edit(idx, patch); err != nil {
				return err
			}
			fmt.Printf("Updated word %d: %q\n", idx, ctrl.Entries()[idx].Word)
			return nil
		},
	}

	cmd.Flags().StringVar(&word, "word", "", "New word text")
	cmd.Flags().StringVar(&meaning, "meaning", "", "New meaning text")
	cmd.Flags().StringVar(&genrePath, "genre", "", "New genre path (empty clears the genre)")
	return cmd
}

func newDeleteCommand(flags *cli.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <index>...",
		Short: "Delete words by index",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			indices := make([]int, 0, len(args))
			for _, arg := range args {
				idx, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid index %q", arg)
				}
				indices = append(indices, idx)
			}

			st := store.New(cli.WordFilePath(flags))
			ctrl := study.New(st, loadEntries(st), nil)
			before := len(ctrl.Entries())
			if err := ctrl.Delete(indices); err != nil {
				return err
			}
			fmt.Printf("Deleted %d words (%d remaining)\n",
				before-len(ctrl.Entries()), len(ctrl.Entries()))
			return nil
		},
	}
}

// loadEntries reads the collection, reporting (but not failing on) a
// quarantined word file.
func loadEntries(st *store.Store) []store.Entry {
	entries, err := st.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return entries
}
