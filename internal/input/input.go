// Package input turns raw terminal bytes into per-frame key state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only send repeats, never releases, so a key stays down until its
// repeats stop arriving.
const keyHoldDuration = 60 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Fire  bool
	Bomb  bool
	Enter bool
	Quit  bool
}

// State tracks the last time each key was pressed.
type State struct {
	left   time.Time
	right  time.Time
	up     time.Time
	down   time.Time
	fire   time.Time
	bomb   time.Time
	enter  time.Time
	quit   time.Time
	closed bool

	pending []byte // Start of an escape sequence cut off by the last read
}

// Feed parses buf and stamps every recognised key with now.
// Arrow keys arrive as CSI sequences (ESC [ A..D), which may be split across
// reads. Unknown bytes are ignored.
func (s *State) Feed(buf []byte, now time.Time) {
	if len(s.pending) > 0 {
		buf = append(s.pending, buf...)
		s.pending = nil
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && (i+1 == len(buf) || (i+2 == len(buf) && buf[i+1] == '[')) {
			s.pending = append([]byte(nil), buf[i:]...)
			return
		}
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.up = now
			case 'B':
				s.down = now
			case 'C':
				s.right = now
			case 'D':
				s.left = now
			}
			i += 2
			continue
		}

		s.apply(b, now)
	}
}

// Snapshot builds the Input seen at now. Keys are pressed if seen within
// the hold duration. A closed source reads as Quit.
func (s *State) Snapshot(now time.Time) Input {
	held := func(t time.Time) bool {
		return !t.IsZero() && now.Sub(t) < keyHoldDuration
	}
	return Input{
		Left:  held(s.left),
		Right: held(s.right),
		Up:    held(s.up),
		Down:  held(s.down),
		Fire:  held(s.fire),
		Bomb:  held(s.bomb),
		Enter: held(s.enter),
		Quit:  s.closed || held(s.quit),
	}
}

// apply updates the key state timestamps based on the pressed byte.
func (s *State) apply(b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		s.quit = now
	case 'a', 'A', 'h', 'H':
		s.left = now
	case 'd', 'D', 'l', 'L':
		s.right = now
	case 'w', 'W', 'k', 'K':
		s.up = now
	case 's', 'S', 'j', 'J':
		s.down = now
	case ' ', 'f', 'F':
		s.fire = now
	case 'b', 'B', 'x', 'X':
		s.bomb = now
	case '\n', '\r':
		s.enter = now
	}
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch    chan byte
	state State
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
func ReadInput(s *Stream, now time.Time) Input {
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.state.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	s.state.Feed(buf, now)
	return s.state.Snapshot(now)
}
