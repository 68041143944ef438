package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Output prints localised progress lines. Messages are English format
// strings; they double as catalog keys for other languages.
type Output struct {
	stdout  io.Writer
	stderr  io.Writer
	printer *message.Printer

	green  *color.Color
	yellow *color.Color
	red    *color.Color
	gray   *color.Color
	bold   *color.Color
}

func NewOutput(lang language.Tag) *Output {
	o := NewOutputTo(os.Stdout, os.Stderr, lang)
	if color.NoColor {
		o.DisableColors()
	}
	return o
}

// NewOutputTo writes to the given streams with colours forced on. Call
// DisableColors for plain text.
func NewOutputTo(stdout, stderr io.Writer, lang language.Tag) *Output {
	o := &Output{
		stdout:  stdout,
		stderr:  stderr,
		printer: message.NewPrinter(SupportedLanguage(lang)),
		green:   color.New(color.FgGreen),
		yellow:  color.New(color.FgYellow),
		red:     color.New(color.FgRed),
		gray:    color.New(color.FgHiBlack),
		bold:    color.New(color.Bold),
	}
	for _, c := range []*color.Color{o.green, o.yellow, o.red, o.gray, o.bold} {
		c.EnableColor()
	}
	return o
}

func (o *Output) DisableColors() {
	for _, c := range []*color.Color{o.green, o.yellow, o.red, o.gray, o.bold} {
		c.DisableColor()
	}
}

func (o *Output) Green(text string) string {
	return o.green.Sprint(text)
}

func (o *Output) Yellow(text string) string {
	return o.yellow.Sprint(text)
}

func (o *Output) Red(text string) string {
	return o.red.Sprint(text)
}

func (o *Output) Gray(text string) string {
	return o.gray.Sprint(text)
}

func (o *Output) Bold(text string) string {
	return o.bold.Sprint(text)
}

// Sprintf translates msg and formats it.
func (o *Output) Sprintf(msg string, args ...any) string {
	return o.printer.Sprintf(msg, args...)
}

func (o *Output) PrintHeader(msg string, args ...any) {
	fmt.Fprintln(o.stdout, o.Bold(o.Sprintf(msg, args...)))
	fmt.Fprintln(o.stdout)
}

func (o *Output) PrintStep(msg string, args ...any) {
	fmt.Fprintf(o.stdout, "  %s\n", o.Sprintf(msg, args...))
}

func (o *Output) PrintSuccess(msg string, args ...any) {
	fmt.Fprintf(o.stdout, "  %s%s\n", o.Green("✓ "), o.Sprintf(msg, args...))
}

func (o *Output) PrintWarning(msg string, args ...any) {
	fmt.Fprintf(o.stdout, "  %s%s\n", o.Yellow("⚠ "), o.Sprintf(msg, args...))
}

func (o *Output) PrintError(msg string, args ...any) {
	fmt.Fprintf(o.stderr, "  %s%s\n", o.Red("✗ "), o.Sprintf(msg, args...))
}

func (o *Output) PrintFile(path string) {
	fmt.Fprintf(o.stdout, "    %s\n", path)
}

func (o *Output) PrintDone(msg string, args ...any) {
	fmt.Fprintln(o.stdout)
	fmt.Fprintln(o.stdout, o.Green(o.Sprintf(msg, args...)))
}

// PrintStack writes a captured stack trace to stderr.
func (o *Output) PrintStack(stack []byte) {
	if len(stack) == 0 {
		return
	}
	fmt.Fprintln(o.stderr)
	fmt.Fprintln(o.stderr, o.Gray(string(stack)))
}
