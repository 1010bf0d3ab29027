package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/etnz/pricebook/config"
)

func TestExtension(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extensions are shell scripts in this test")
	}
	dir := t.TempDir()
	script := "#!/bin/sh\n" +
		"echo \"$PRICEBOOK_PRICES_FILE $PRICEBOOK_STORE $PRICEBOOK_THRESHOLD $PRICEBOOK_VERBOSE $*\"\n" +
		"exit 3\n"
	if err := os.WriteFile(filepath.Join(dir, "pbk-hello"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	old := settings
	t.Cleanup(func() { settings = old })
	settings = &config.Config{
		PricesFile: "prices.csv",
		Store:      config.StoreCSV,
		Threshold:  0.05,
		Verbose:    true,
	}

	var stdout, stderr bytes.Buffer
	found, code := runExtension("hello", []string{"a", "b"}, &stdout, &stderr)
	if !found {
		t.Fatalf("runExtension() did not find pbk-hello")
	}
	if code != 3 {
		t.Errorf("runExtension() exit code = %d, want 3", code)
	}
	if got, want := strings.TrimSpace(stdout.String()), "prices.csv csv 0.05 true a b"; got != want {
		t.Errorf("extension output = %q, want %q", got, want)
	}

	if found, _ := runExtension("absent", nil, &stdout, &stderr); found {
		t.Errorf("runExtension() found an absent extension")
	}
}
