package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/elzup/hash-omikuji/internal/art"
	"github.com/elzup/hash-omikuji/internal/config"
	"github.com/elzup/hash-omikuji/internal/gate"
	"github.com/elzup/hash-omikuji/internal/history"
	"github.com/elzup/hash-omikuji/internal/logging"
	"github.com/elzup/hash-omikuji/internal/omikuji"
	"github.com/elzup/hash-omikuji/internal/output"
)

var (
	flagYear  uint32
	flagUser  string
	flagJSON  bool
	flagShort bool
	flagSeed  bool
	flagForce bool
	flagDate  string
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw this year's fortune",
	Long: `Draw the fortune for a (year, user) pair.

The draw is deterministic: the pair is hashed with SHA-256 and every part
of the fortune is decoded from fixed bit ranges of that digest. Outside
January 1st the draw is refused unless --force is given.`,
	RunE: runDraw,
}

func init() {
	drawCmd.Flags().Uint32Var(&flagYear, "year", uint32(time.Now().Year()), "Target year")
	drawCmd.Flags().StringVarP(&flagUser, "user", "u", "", "User identifier (default: config, $USER, hostname)")
	drawCmd.Flags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	drawCmd.Flags().BoolVar(&flagShort, "short", false, "Show only the top 5 luck scores")
	drawCmd.Flags().BoolVar(&flagSeed, "seed", false, "Show the raw seed string")
	drawCmd.Flags().BoolVar(&flagForce, "force", false, "Draw even outside January 1st")
	drawCmd.Flags().StringVar(&flagDate, "date", "", "Override the current date (YYYY-MM-DD, for testing)")
	rootCmd.AddCommand(drawCmd)
}

func runDraw(cmd *cobra.Command, args []string) error {
	logging.Setup(flagLogLevel)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	warn, err := gate.Check(time.Now(), flagDate, flagForce)
	if err != nil {
		return err
	}
	if warn {
		fmt.Fprintln(os.Stderr, "WARNING: drawing outside January 1st with --force.")
	}

	user := cfg.ResolveUser(flagUser)
	digest := omikuji.Derive(flagYear, user)

	draw := output.Draw{
		Year:        flagYear,
		User:        user,
		Seed:        omikuji.SeedString(flagYear, user),
		Digest:      digest,
		Fields:      omikuji.DecodeAll(digest),
		Fingerprint: art.Render(digest),
	}
	opts := output.Options{ShowSeed: flagSeed, Short: flagShort}

	useJSON := flagJSON || (!cmd.Flags().Changed("json") && cfg.Format == "json")
	if useJSON {
		err = output.JSON(os.Stdout, draw, opts)
	} else {
		err = output.Text(os.Stdout, draw, opts)
	}
	if err != nil {
		return err
	}

	recordDraw(cfg, draw)
	return nil
}

// recordDraw appends the draw to the history file. History is
// best-effort: failures are logged, never returned.
func recordDraw(cfg *config.Config, draw output.Draw) {
	if flagNoHistory || cfg.NoHistory {
		return
	}
	path := cfg.HistoryPath
	if path == "" {
		path = defaultHistoryPath()
	}

	book, err := history.Open(path)
	if err != nil {
		slog.Warn("history disabled", "error", err)
		return
	}
	defer book.Close()

	err = book.Append(history.Record{
		Year:        draw.Year,
		User:        draw.User,
		Digest:      draw.Digest.Hex(),
		Fingerprint: draw.Fingerprint,
		Forced:      flagForce,
	})
	if err != nil {
		slog.Warn("record draw", "error", err)
	}
}
