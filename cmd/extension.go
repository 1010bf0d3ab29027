package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strconv"
	"syscall"
)

// Environment of the extensions, carrying the global flags.
const (
	EnvPricesFile = "PRICEBOOK_PRICES_FILE"
	EnvOrdersFile = "PRICEBOOK_ORDERS_FILE"
	EnvStore      = "PRICEBOOK_STORE"
	EnvSQLitePath = "PRICEBOOK_SQLITE_PATH"
	EnvThreshold  = "PRICEBOOK_THRESHOLD"
	EnvOutput     = "PRICEBOOK_OUTPUT"
	EnvVerbose    = "PRICEBOOK_VERBOSE"
)

// RunExtension attempts to find and execute an external pbk-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	return runExtension(subcommand, args, os.Stdout, os.Stderr)
}

func runExtension(subcommand string, args []string, stdout, stderr io.Writer) (bool, int) {
	name := "pbk-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		log.Printf("external command %q not found in PATH: %v", name, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	// Pass global flags as environment variables
	cmd.Env = append(os.Environ(),
		EnvPricesFile+"="+settings.PricesFile,
		EnvOrdersFile+"="+settings.OrdersFile,
		EnvStore+"="+settings.Store,
		EnvSQLitePath+"="+settings.SQLitePath,
		EnvThreshold+"="+strconv.FormatFloat(settings.Threshold, 'f', -1, 64),
		EnvOutput+"="+settings.Output,
		EnvVerbose+"="+strconv.FormatBool(settings.Verbose),
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
