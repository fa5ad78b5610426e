package interpreter

import (
	"bufio"
	"fmt"
	"io"
)

// Parse reads one command per line from r.
// Every line must hold a command; a blank line is an error.
func Parse(r io.Reader) (*Program, error) {
	prog := &Program{}
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		text := sc.Text()
		cmd, err := ParseCommand(text)
		if err != nil {
			return nil, &ParseError{Line: n, Text: text, Err: err}
		}
		cmd.line = n
		prog.Commands = append(prog.Commands, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read commands: %w", err)
	}
	return prog, nil
}
