package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// lineReader wraps a bufio.Scanner and surfaces end-of-input as io.EOF.
type lineReader struct {
	scanner *bufio.Scanner
}

func newLineReader(in io.Reader) *lineReader {
	return &lineReader{scanner: bufio.NewScanner(in)}
}

func (r *lineReader) next() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(r.scanner.Text()), nil
}

// prompt prints a label and reads one trimmed line.
func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprintf(m.out, "%s: ", label)
	return m.in.next()
}

// promptString re-prompts until a non-blank value is entered, unless blanks
// are allowed.
func (m *Menu) promptString(label string, allowBlank bool) (string, error) {
	for {
		value, err := m.prompt(label)
		if err != nil {
			return "", err
		}
		if value != "" || allowBlank {
			return value, nil
		}
		fmt.Fprintln(m.out, "Please enter a value.")
	}
}

// promptInt re-prompts until a whole number is entered. With allowBlank, a
// blank line returns nil meaning "absent".
func (m *Menu) promptInt(label string, allowBlank bool) (*int64, error) {
	for {
		raw, err := m.prompt(label)
		if err != nil {
			return nil, err
		}
		if raw == "" && allowBlank {
			return nil, nil
		}
		value, convErr := strconv.ParseInt(raw, 10, 64)
		if convErr != nil {
			fmt.Fprintln(m.out, "Please enter a whole number.")
			continue
		}
		return &value, nil
	}
}

// promptFloat re-prompts until a number is entered. With allowBlank, a
// blank line returns nil meaning "absent".
func (m *Menu) promptFloat(label string, allowBlank bool) (*float64, error) {
	for {
		raw, err := m.prompt(label)
		if err != nil {
			return nil, err
		}
		if raw == "" && allowBlank {
			return nil, nil
		}
		value, convErr := strconv.ParseFloat(raw, 64)
		if convErr != nil {
			fmt.Fprintln(m.out, "Please enter a number like 9.99.")
			continue
		}
		return &value, nil
	}
}
