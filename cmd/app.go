// Package cmd implements the pbk command line application over a price
// ledger.
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/pricebook"
	"github.com/etnz/pricebook/config"
	"github.com/etnz/pricebook/sqlite"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.
var settings = config.Load()

// Register the subcommands, using cfg as the application settings.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander, cfg *config.Config) {
	settings = cfg

	c.Register(&importCmd{}, "prices")
	c.Register(&latestCmd{}, "prices")
	c.Register(&datesCmd{}, "prices")
	c.Register(&historyCmd{}, "prices")
	c.Register(&compareCmd{}, "prices")
	c.Register(&trendCmd{}, "prices")
	c.Register(&alertsCmd{}, "prices")
	c.Register(&clearCmd{}, "prices")

	c.Register(&orderCmd{}, "orders")
	c.Register(&lastOrderCmd{}, "orders")

	c.Register(&topicCmd{}, "help")
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	c.Register(c.CommandsCommand(), "help")
}

// Setup validates the settings and configures the logger. It must be called
// once the global flags are parsed.
func Setup() error {
	if err := settings.Validate(); err != nil {
		return err
	}
	log.SetFlags(0)
	log.SetPrefix("pbk: ")
	if !settings.Verbose {
		log.SetOutput(io.Discard)
	}
	return nil
}

// openLedger opens the ledger over the configured store. The returned
// function releases the store.
func openLedger() (*pricebook.Ledger, func(), error) {
	var l *pricebook.Ledger
	release := func() {}

	switch settings.Store {
	case config.StoreSQLite:
		s, err := sqlite.Open(settings.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("using sqlite store %s", settings.SQLitePath)
		l = pricebook.NewLedger(s, s)
		release = func() {
			if err := s.Close(); err != nil {
				log.Printf("cannot close %s: %v", settings.SQLitePath, err)
			}
		}
	default:
		log.Printf("using price store %s and order store %s", settings.PricesFile, settings.OrdersFile)
		s := pricebook.NewFileStore(settings.PricesFile, settings.OrdersFile)
		l = pricebook.NewLedger(s, s)
	}
	l.Threshold = settings.Threshold
	return l, release, nil
}

// fail prints err and returns the failure status.
func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitFailure
}
