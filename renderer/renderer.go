// Package renderer formats the ledger reports as markdown documents.
package renderer

import (
	"strconv"

	md "github.com/nao1215/markdown"
)

// price formats a price the way it is typed in the sheets.
func price(p float64) string { return strconv.FormatFloat(p, 'f', -1, 64) }

// stat formats a statistic with its two decimals.
func stat(p float64) string { return strconv.FormatFloat(p, 'f', 2, 64) }

// columns returns n alignments: the first column left, the others right.
func columns(n int) []md.TableAlignment {
	a := make([]md.TableAlignment, n)
	for i := range a {
		a[i] = md.AlignRight
	}
	if n > 0 {
		a[0] = md.AlignLeft
	}
	return a
}
