package interpreter

import "go.uber.org/zap"

// Context stores the track, its counters and the logger.
type Context struct {
	Track *Track
	Tally *Tally
	Log   *zap.Logger
}

func NewContext(track *Track, log *zap.Logger) *Context {
	return &Context{Track: track, Tally: &Tally{}, Log: log}
}

func (c *Context) logger() *zap.Logger {
	if c.Log == nil {
		return zap.NewNop()
	}
	return c.Log
}
