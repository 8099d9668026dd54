package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/tangocho/internal"
	"codeberg.org/snonux/tangocho/internal/store"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tangocho",
		Short: "Genre-grouped flashcard study tool",
		Long: `tangocho is a flashcard study tool for word/meaning pairs grouped
by hierarchical genre paths (e.g. "food/fruit"), stored in one JSON file.

Examples:
  tangocho                        # Launch the interactive study screen
  tangocho --genre food/fruit     # Start the session in a genre
  tangocho add apple りんご food   # Add a word from the command line
  tangocho --import words.txt     # Bulk-import words
  tangocho --anki deck.apkg       # Export the collection for Anki`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	// Global flags
	flags.RegisterGlobal(rootCmd.PersistentFlags())

	// Local flags
	flags.Register(rootCmd.Flags())
	bindFlagsToViper(rootCmd)

	return rootCmd
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("store.path", cmd.PersistentFlags().Lookup("words"))
	viper.BindPFlag("deck.name", cmd.Flags().Lookup("deck-name"))
	viper.BindPFlag("study.start_group", cmd.Flags().Lookup("genre"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".tangocho" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tangocho")
	}

	// Environment variables
	viper.SetEnvPrefix("TANGOCHO")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// WordFilePath resolves the word file location: explicit flag first,
// then the config file, then the default under the user state dir.
func WordFilePath(flags *Flags) string {
	if flags.WordFile != "" {
		return flags.WordFile
	}
	if path := viper.GetString("store.path"); path != "" {
		return path
	}
	return store.DefaultPath()
}
