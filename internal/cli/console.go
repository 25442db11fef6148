package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/gophroster/internal/models"
)

const ruleWidth = 40

// Console is the operator-facing terminal: it renders headers, messages and
// records to out and reads answers from in.
type Console struct {
	in  *bufio.Reader
	out io.Writer

	header  lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	key     lipgloss.Style
}

// NewConsole styles output for out; colors are dropped when out is not a
// terminal.
func NewConsole(in io.Reader, out io.Writer) *Console {
	r := lipgloss.NewRenderer(out)
	return &Console{
		in:      bufio.NewReader(in),
		out:     out,
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		success: r.NewStyle().Foreground(lipgloss.Color("10")),
		warning: r.NewStyle().Foreground(lipgloss.Color("11")),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		key:     r.NewStyle().Faint(true),
	}
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

func (c *Console) Header(title string) {
	rule := strings.Repeat("=", ruleWidth)
	c.Println()
	c.Println(rule)
	c.Println(c.header.Render(title))
	c.Println(rule)
}

func (c *Console) Success(msg string) {
	c.Println("\n" + c.success.Render("✔ SUCCESS: "+msg))
}

func (c *Console) Warning(msg string) {
	c.Println("\n" + c.warning.Render("⚠ WARNING: "+msg))
}

func (c *Console) Error(msg string) {
	c.Println("\n" + c.failure.Render("✖ ERROR: "+msg))
}

func (c *Console) Goodbye() {
	c.Println("\nExiting program. Goodbye!")
}

// Record prints rec as "key: value" lines.
func (c *Console) Record(rec models.Record) {
	for _, k := range rec.Keys() {
		c.Printf("%s: %v\n", c.key.Render(k), rec[k])
	}
}

// Records prints a titled listing with a separator line around each record.
func (c *Console) Records(list []models.Record) {
	c.Header("User Records")
	if len(list) == 0 {
		c.Println("No records found.")
		return
	}

	rule := strings.Repeat("-", ruleWidth)
	for _, rec := range list {
		c.Println(rule)
		c.Record(rec)
	}
	c.Println(rule)
}

func (c *Console) Ask(prompt string) (string, error) {
	return GetSimpleText(c.in, prompt, c.out)
}

func (c *Console) AskNumber(prompt string) (float64, error) {
	return GetNumber(c.in, prompt, c.out)
}

func (c *Console) AskSecret(prompt string) (string, error) {
	return GetSecret(c.in, prompt, c.out)
}

// AskYesNo reports whether the answer to prompt is "y" in any case.
func (c *Console) AskYesNo(prompt string) (bool, error) {
	ans, err := c.Ask(prompt)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(ans, "y"), nil
}
