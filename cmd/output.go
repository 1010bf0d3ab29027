package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/etnz/pricebook/config"
)

var stdout io.Writer = os.Stdout

// printMarkdown prints a markdown document in the configured
// output format.
func printMarkdown(doc string) {
	if err := renderMarkdown(stdout, settings.Output, doc); err != nil {
		log.Printf("cannot render output as %s: %v", settings.Output, err)
		fmt.Fprint(stdout, doc)
	}
}

func renderMarkdown(w io.Writer, format, doc string) error {
	switch format {
	case config.OutputMarkdown:
		_, err := io.WriteString(w, doc)
		return err
	case config.OutputHTML:
		md := goldmark.New(goldmark.WithExtensions(extension.GFM))
		return md.Convert([]byte(doc), w)
	default:
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(120),
		)
		if err != nil {
			return err
		}
		out, err := r.Render(doc)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	}
}
