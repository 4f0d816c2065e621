// Package cmd implements the CLI application to manage a credit ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/credittrail/credittrail"
	"github.com/credittrail/credittrail/storage"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Commands lists every subcommand. A main package registers them on a
// commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&addPersonCmd{},
	&updatePersonCmd{},
	&deletePersonCmd{},
	&addLocationCmd{},
	&deleteLocationCmd{},
	&attachCmd{},
	&detachCmd{},
	&addTxCmd{},
	&updateTxCmd{},
	&deleteTxCmd{},
	&dashboardCmd{},
	&peopleCmd{},
	&locationsCmd{},
	&txCmd{},
	&exportCmd{},
	&importCmd{},
	&verifyCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables for the shared flags.

var dataDir = flag.String("data-dir", "", "Path to the ledger data directory (defaults to ~/.credittrail)")
var configFile = flag.String("config", "", "Path to the YAML config file (defaults to ~/.credittrail.yaml)")

// openStore loads config, prepares logging, opens the persistence slot and
// the store. The returned close function must be deferred.
func openStore() (*credittrail.Store, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("could not load config: %w", err)
	}
	credittrail.SetDisplayCurrency(cfg.Currency)

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("could not create data directory %q: %w", cfg.DataDir, err)
	}
	slot, err := storage.NewBoltStore(cfg.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open ledger database: %w", err)
	}

	store := credittrail.NewStore(slot, newLogger(cfg))
	return store, func() { slot.Close() }, nil
}

func newLogger(cfg config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	if cfg.LogJSON {
		return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).Level(level).With().Timestamp().Logger()
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the terminal renderer is unavailable.
func printMarkdown(markdown string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(markdown)
		return
	}
	out, err := r.Render(markdown)
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}

// fail prints an error and returns the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
