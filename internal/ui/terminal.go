// Package ui provides the terminal implementation of the alert, confirmation,
// and navigation surfaces consumed by the booking flow.
package ui

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Terminal renders alerts and views on stdio.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal creates a terminal UI over the given streams.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Alert shows a blocking message.
func (t *Terminal) Alert(title, message string) {
	fmt.Fprintf(t.out, "\n[%s]\n%s\n", title, message)
}

// ConfirmOpenSettings asks a yes/no question and reports the answer.
func (t *Terminal) ConfirmOpenSettings(title, message string) bool {
	fmt.Fprintf(t.out, "\n[%s]\n%s\nOpen settings? [y/N]: ", title, message)
	answer, err := t.in.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// Prompt reads one line of input for the given label.
func (t *Terminal) Prompt(label string) string {
	fmt.Fprintf(t.out, "%s: ", label)
	line, err := t.in.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

// ShowConfirmation renders the booking confirmation with the echoed order.
func (t *Terminal) ShowConfirmation(order json.RawMessage) {
	fmt.Fprintln(t.out, "\n=== Booking Confirmed ===")

	pretty := &bytes.Buffer{}
	if err := json.Indent(pretty, order, "", "  "); err != nil {
		fmt.Fprintln(t.out, string(order))
		return
	}
	fmt.Fprintln(t.out, pretty.String())
}

// ShowNoOrder renders the fallback state when no order payload is present.
func (t *Terminal) ShowNoOrder() {
	fmt.Fprintln(t.out, "\nNo order information available.")
	fmt.Fprintln(t.out, "Press enter to return home.")
	_, _ = t.in.ReadString('\n')
}
