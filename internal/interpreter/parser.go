package interpreter

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"go.uber.org/zap"
)

// Direction is the side a command turns the track towards.
type Direction int

const (
	Right Direction = iota
	Left
)

// Capture maps the direction character. Anything other than L is Right.
func (d *Direction) Capture(values []string) error {
	if values[0] == "L" {
		*d = Left
	} else {
		*d = Right
	}
	return nil
}

func (d Direction) String() string {
	if d == Left {
		return "L"
	}
	return "R"
}

// Steps is the repeat count of a command, parsed as base 10.
// Single underscores may separate digits, as in 1_000.
type Steps int

func (s *Steps) Capture(values []string) error {
	n, err := strconv.Atoi(strings.ReplaceAll(values[0], "_", ""))
	if err != nil {
		return err
	}
	*s = Steps(n)
	return nil
}

// Command is a single input line: one direction character followed by a count.
type Command struct {
	Dir   Direction `parser:"@Dir"`
	Steps Steps     `parser:"@Int"`

	line int
}

// Line reports the 1-based input line the command came from, or 0.
func (c *Command) Line() int {
	return c.line
}

// Program is the ordered list of commands read from the input.
type Program struct {
	Commands []*Command
}

// The first character of a line is always the direction, digits included.
var commandLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Dir", Pattern: `\S`, Action: lexer.Push("Count")},
	},
	"Count": {
		{Name: "Whitespace", Pattern: `\s+`},
		{Name: "Int", Pattern: `[-+]?\d+(_\d+)*`},
	},
})

var parser = participle.MustBuild[Command](
	participle.Lexer(commandLexer),
	participle.Elide("Whitespace"),
)

// ParseCommand parses one line. Surrounding whitespace is ignored.
func ParseCommand(line string) (*Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, ErrEmptyCommand
	}
	return parser.ParseString("", line)
}

func (p *Program) Exec(ctx *Context) error {
	for _, cmd := range p.Commands {
		if err := cmd.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Exec walks the track one position at a time so that every pass over
// the origin is counted, then checks where the command ended.
func (c *Command) Exec(ctx *Context) error {
	if ctx.Track == nil || ctx.Tally == nil {
		return errNoTrack
	}
	for i := 0; i < int(c.Steps); i++ {
		if ctx.Track.Step(c.Dir) {
			ctx.Tally.Total++
		}
	}
	if ctx.Track.AtOrigin() {
		ctx.Tally.EndOfCommand++
	}
	ctx.logger().Debug("command executed",
		zap.Int("line", c.line),
		zap.Stringer("dir", c.Dir),
		zap.Int("steps", int(c.Steps)),
		zap.Stringer("track", ctx.Track))
	return nil
}
