package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/quill/internal/card"
	"github.com/arcanaland/quill/internal/deck"
)

// maxDividerWidth caps divider lines on wide terminals
const maxDividerWidth = 50

func okMark() string   { return colorize.GreenString("✅") }
func failMark() string { return colorize.RedString("❌") }

// printDeckInfo writes the deck summary shown after validation and by
// 'deck show'
func printDeckInfo(w io.Writer, d *deck.Deck) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, colorize.CyanString("📊 Deck Information:"))
	fmt.Fprintf(w, "%s %d\n", colorize.CyanString("Total cards:"), d.CardCount())
	fmt.Fprintf(w, "%s %s\n", colorize.CyanString("Inks:"), formatInks(d.Inks()))

	fmt.Fprintln(w)
	fmt.Fprintln(w, colorize.CyanString("📋 Card breakdown:"))
	for _, e := range d.Breakdown() {
		fmt.Fprintf(w, "  %dx %s\n", e.Count, e.Card)
	}
}

// formatInks renders inks as "Amber, Steel", each prefixed by a swatch
// when color output is enabled
func formatInks(inks []card.InkType) string {
	if len(inks) == 0 {
		return "none"
	}
	parts := make([]string, len(inks))
	for i, ink := range inks {
		if s := inkSwatch(ink); s != "" {
			parts[i] = s + " " + ink.String()
		} else {
			parts[i] = ink.String()
		}
	}
	return strings.Join(parts, ", ")
}

// inkSwatch returns a two-cell block in the ink's color using 24-bit ANSI
// escapes, or "" when color is disabled
func inkSwatch(ink card.InkType) string {
	if colorize.NoColor {
		return ""
	}
	r, g, b := ink.Color().RGB255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", r, g, b)
}

// divider returns a rule as wide as the terminal behind w, capped at
// maxDividerWidth. Writers that are not terminals get the full width.
func divider(w io.Writer, ch string) string {
	width := maxDividerWidth
	if f, ok := w.(*os.File); ok {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 && cols < width {
			width = cols
		}
	}
	return strings.Repeat(ch, width)
}
