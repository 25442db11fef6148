package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Test seams for terminal access.
var (
	readPassword = term.ReadPassword
	isTerminal   = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

// GetSimpleText writes prompt to w and reads one line from reader with
// surrounding whitespace trimmed. A final line without a newline is returned
// as is; EOF with nothing read is returned as io.EOF.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

const invalidNumberMessage = "Please enter a valid number."

// parseNumber accepts finite decimal numbers only. NaN and infinities parse
// but cannot be stored as JSON.
func parseNumber(s string) (float64, bool) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// GetNumber prompts until the answer parses as a finite float.
func GetNumber(reader *bufio.Reader, prompt string, w io.Writer) (float64, error) {
	for {
		s, err := GetSimpleText(reader, prompt, w)
		if err != nil {
			return 0, err
		}
		if n, ok := parseNumber(s); ok {
			return n, nil
		}
		fmt.Fprintln(w, invalidNumberMessage)
	}
}

// GetSecret reads a value without echo when stdin is a terminal and falls
// back to a plain line read otherwise.
func GetSecret(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if !isTerminal() {
		return GetSimpleText(reader, prompt, w)
	}

	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	b, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
