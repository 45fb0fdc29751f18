package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
	ansiGray   = "\033[90m"
	ansiBold   = "\033[1m"
)

// DefaultWidth is the column at which details are wrapped.
const DefaultWidth = 72

// Style controls how errors are rendered for a terminal.
type Style struct {
	Color bool // ANSI escapes
	Width int  // detail wrap column, DefaultWidth when zero
}

// StyleFromEnv returns a colored style unless NO_COLOR is set to a
// non-empty value.
func StyleFromEnv() Style {
	return Style{Color: os.Getenv("NO_COLOR") == ""}
}

func (s Style) paint(code, text string) string {
	if !s.Color {
		return text
	}
	return code + text + ansiReset
}

// Format renders e over several lines: the coded headline, the wrapped
// detail, the cause and the hint.
func (e *Error) Format(s Style) string {
	var b strings.Builder

	b.WriteString(s.paint(ansiRed+ansiBold, "ERROR"))
	if e.Code != "" {
		b.WriteString(" " + s.paint(ansiBold, e.Code))
	}
	fmt.Fprintf(&b, ": %s\n", e.Message)

	width := s.Width
	if width <= 0 {
		width = DefaultWidth
	}
	for _, line := range wrapText(e.Detail, width) {
		b.WriteString("  " + s.paint(ansiGray, line) + "\n")
	}
	if e.Wrapped != nil {
		fmt.Fprintf(&b, "  cause: %v\n", e.Wrapped)
	}
	if e.Suggestion != "" {
		b.WriteString("  " + s.paint(ansiYellow, "Hint: ") + e.Suggestion + "\n")
	}
	return b.String()
}

// FormatCompact renders e on one line, for logs.
func (e *Error) FormatCompact() string {
	out := e.Message
	if e.Code != "" {
		out = e.Code + ": " + out
	}
	if e.Detail != "" {
		out += " (" + e.Detail + ")"
	}
	return out
}

// wrapText breaks text into lines of at most width bytes, splitting on
// whitespace. A single word longer than width gets its own line.
func wrapText(text string, width int) []string {
	var (
		lines []string
		line  string
	)
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) > width:
			lines = append(lines, line)
			line = word
		default:
			line += " " + word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// Fprint writes err to w: coded errors in the multi-line form, anything
// else on one line.
func Fprint(w io.Writer, err error, s Style) {
	var e *Error
	if stderrors.As(err, &e) {
		fmt.Fprint(w, e.Format(s))
		return
	}
	fmt.Fprintf(w, "%s %v\n", s.paint(ansiRed+ansiBold, "ERROR:"), err)
}
