// Package config holds the settings of the pbk command, read from the
// environment and overridden by command line flags.
package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Stores
const (
	StoreCSV    = "csv"
	StoreSQLite = "sqlite"
)

// Output formats
const (
	OutputTerm     = "term"
	OutputMarkdown = "md"
	OutputHTML     = "html"
)

// Config is the pbk configuration.
type Config struct {
	PricesFile string  // CSV price store
	OrdersFile string  // CSV order store
	Store      string  // StoreCSV or StoreSQLite
	SQLitePath string  // database file of the sqlite store
	Threshold  float64 // alert threshold, as a ratio
	Output     string  // OutputTerm, OutputMarkdown or OutputHTML
	Verbose    bool
}

// LoadEnv loads the variables of a .env file of the current folder into the
// environment, without overriding variables already set. A missing file is
// not an error.
func LoadEnv(filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil && !os.IsNotExist(err) {
		log.Printf("warning, cannot load .env file: %v", err)
	}
}

// Load returns the configuration from the environment, with defaults.
func Load() *Config {
	return &Config{
		PricesFile: getEnv("PRICEBOOK_PRICES_FILE", "food_prices.csv"),
		OrdersFile: getEnv("PRICEBOOK_ORDERS_FILE", "order_history.csv"),
		Store:      getEnv("PRICEBOOK_STORE", StoreCSV),
		SQLitePath: getEnv("PRICEBOOK_SQLITE_PATH", "pricebook.db"),
		Threshold:  getEnvAsFloat("PRICEBOOK_THRESHOLD", 0.10),
		Output:     getEnv("PRICEBOOK_OUTPUT", OutputTerm),
	}
}

// RegisterFlags declares a global flag for each setting, whose default is
// the current value.
func (c *Config) RegisterFlags(f *flag.FlagSet) {
	f.StringVar(&c.PricesFile, "prices-file", c.PricesFile, "Path to the price store (CSV)")
	f.StringVar(&c.OrdersFile, "orders-file", c.OrdersFile, "Path to the order store (CSV)")
	f.StringVar(&c.Store, "store", c.Store, "Store backend: csv or sqlite")
	f.StringVar(&c.SQLitePath, "sqlite-path", c.SQLitePath, "Path to the sqlite database, when -store=sqlite")
	f.Float64Var(&c.Threshold, "threshold", c.Threshold, "Relative price change that raises an alert (0.10 for 10%)")
	f.StringVar(&c.Output, "o", c.Output, "Output format: term, md or html")
	f.BoolVar(&c.Verbose, "v", c.Verbose, "Verbose logging")
}

// Validate checks the settings.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreCSV, StoreSQLite:
	default:
		return fmt.Errorf("unknown store %q, want %s or %s", c.Store, StoreCSV, StoreSQLite)
	}
	switch c.Output {
	case OutputTerm, OutputMarkdown, OutputHTML:
	default:
		return fmt.Errorf("unknown output %q, want %s, %s or %s", c.Output, OutputTerm, OutputMarkdown, OutputHTML)
	}
	if c.Threshold < 0 {
		return fmt.Errorf("invalid threshold %v, it must not be negative", c.Threshold)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("warning, invalid %s %q, using %v: %v", key, valueStr, defaultValue, err)
		return defaultValue
	}
	return value
}
