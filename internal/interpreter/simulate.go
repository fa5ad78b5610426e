package interpreter

import (
	"io"

	"go.uber.org/zap"
)

// Simulate parses every command from r and runs it on a fresh track.
func Simulate(r io.Reader, log *zap.Logger, opts ...TrackOption) (Tally, error) {
	prog, err := Parse(r)
	if err != nil {
		return Tally{}, err
	}
	track, err := NewTrack(opts...)
	if err != nil {
		return Tally{}, err
	}
	ctx := NewContext(track, log)
	if err := prog.Exec(ctx); err != nil {
		return Tally{}, err
	}
	ctx.logger().Info("simulation finished",
		zap.Int("commands", len(prog.Commands)),
		zap.Stringer("track", track),
		zap.Stringer("tally", ctx.Tally))
	return *ctx.Tally, nil
}
