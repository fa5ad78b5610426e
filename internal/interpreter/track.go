package interpreter

import "fmt"

const (
	DefaultSize  = 100
	DefaultStart = 50
)

// Track is a circular range of positions [0, size) with the origin at 0.
type Track struct {
	size, pos int
}

// TrackOption configures a Track before it is validated.
type TrackOption func(*Track)

// WithSize sets the number of positions on the track.
func WithSize(n int) TrackOption {
	return func(t *Track) {
		t.size = n
	}
}

// WithStart sets the starting position.
func WithStart(p int) TrackOption {
	return func(t *Track) {
		t.pos = p
	}
}

func NewTrack(opts ...TrackOption) (*Track, error) {
	t := &Track{size: DefaultSize, pos: DefaultStart}
	for _, opt := range opts {
		opt(t)
	}
	if t.size <= 0 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidTrack, t.size)
	}
	if t.pos < 0 || t.pos >= t.size {
		return nil, fmt.Errorf("%w: start %d outside [0, %d)", ErrInvalidTrack, t.pos, t.size)
	}
	return t, nil
}

// Step moves one position and reports whether it landed on the origin.
func (t *Track) Step(d Direction) bool {
	if d == Left {
		t.pos = (t.pos - 1 + t.size) % t.size
	} else {
		t.pos = (t.pos + 1) % t.size
	}
	return t.pos == 0
}

func (t *Track) Position() int {
	return t.pos
}

func (t *Track) Size() int {
	return t.size
}

func (t *Track) AtOrigin() bool {
	return t.pos == 0
}

func (t *Track) String() string {
	return fmt.Sprintf("%d/%d", t.pos, t.size)
}
