package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/elzup/hash-omikuji/internal/config"
	"github.com/elzup/hash-omikuji/internal/history"
	"github.com/elzup/hash-omikuji/internal/logging"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded draws",
}

var historyVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the hash chain of the history file",
	Long: `Every recorded draw carries a hash chained over its predecessor.
verify walks the whole file and reports the first broken link, if any.`,
	RunE: runHistoryVerify,
}

func init() {
	historyCmd.AddCommand(historyVerifyCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryVerify(cmd *cobra.Command, args []string) error {
	logging.Setup(flagLogLevel)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	path := cfg.HistoryPath
	if path == "" {
		path = defaultHistoryPath()
	}

	n, err := history.Verify(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Println("no history recorded yet")
			return nil
		}
		return err
	}
	fmt.Printf("history ok: %d draw(s), chain intact\n", n)
	return nil
}

// defaultHistoryPath returns where draws are recorded unless configured
// otherwise.
func defaultHistoryPath() string {
	return filepath.Join(config.DefaultDir(), "history.jsonl")
}
