package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/gram-cli/gram/internal/styles"
)

const cardWidth = 40

// cardRow is one label/value line in a detail card.
type cardRow struct {
	label string
	value string
}

// writeCard prints a titled detail card with labels aligned on display
// width. Values may carry ANSI styling; widths are measured on the
// stripped text.
func writeCard(out io.Writer, theme styles.Theme, title string, rows []cardRow) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, theme.Header(title))
	fmt.Fprintln(out, theme.Muted(strings.Repeat("━", cardWidth)))

	labelWidth := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(stripANSI(row.label)); w > labelWidth {
			labelWidth = w
		}
	}

	for _, row := range rows {
		padding := labelWidth - runewidth.StringWidth(stripANSI(row.label))
		fmt.Fprintf(out, "  %s%s %s\n", theme.Muted(row.label), strings.Repeat(" ", padding), row.value)
	}
}

func stripANSI(value string) string {
	if value == "" {
		return value
	}
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		if value[i] != 0x1b || i+1 >= len(value) || value[i+1] != '[' {
			b.WriteByte(value[i])
			continue
		}
		i += 2
		for i < len(value) {
			ch := value[i]
			if ch >= 0x40 && ch <= 0x7e {
				break
			}
			i++
		}
	}
	return b.String()
}
