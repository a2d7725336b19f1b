package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func TestFeedArrowKeys(t *testing.T) {
	now := time.Unix(100, 0)
	var s State
	s.Feed([]byte("\x1b[A\x1b[D"), now)

	got := s.Snapshot(now)
	want := Input{Up: true, Left: true}
	if got != want {
		t.Fatalf("Snapshot = %+v, want %+v", got, want)
	}
}

func TestFeedArrowSplitAcrossReads(t *testing.T) {
	now := time.Unix(100, 0)
	tests := []struct {
		name  string
		reads []string
		want  Input
	}{
		{"after ESC", []string{"\x1b", "[B"}, Input{Down: true}},
		{"after bracket", []string{"\x1b[", "D"}, Input{Left: true}},
		{"three reads", []string{"\x1b", "[", "C"}, Input{Right: true}},
		{"key after ESC", []string{"\x1b", "f"}, Input{Fire: true}},
	}
	for _, tt := range tests {
		var s State
		for _, r := range tt.reads {
			s.Feed([]byte(r), now)
		}
		if got := s.Snapshot(now); got != tt.want {
			t.Errorf("%s: Snapshot = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestFeedLetters(t *testing.T) {
	now := time.Unix(100, 0)
	var s State
	s.Feed([]byte("d sbq\r"), now)

	got := s.Snapshot(now)
	want := Input{Right: true, Down: true, Fire: true, Bomb: true, Quit: true, Enter: true}
	if got != want {
		t.Fatalf("Snapshot = %+v, want %+v", got, want)
	}
}

func TestUnknownBytesIgnored(t *testing.T) {
	now := time.Unix(100, 0)
	var s State
	s.Feed([]byte("z9%\x1b[Z"), now)

	if got := s.Snapshot(now); got != (Input{}) {
		t.Fatalf("Snapshot = %+v, want no keys", got)
	}
}

func TestHoldExpires(t *testing.T) {
	now := time.Unix(100, 0)
	var s State
	s.Feed([]byte(" "), now)

	if !s.Snapshot(now.Add(keyHoldDuration - time.Millisecond)).Fire {
		t.Fatal("fire should still be held")
	}
	if s.Snapshot(now.Add(keyHoldDuration)).Fire {
		t.Fatal("fire should have been released")
	}
}

func TestReadInputClosedStreamQuits(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("a")))

	deadline := time.Now().Add(time.Second)
	var in Input
	for time.Now().Before(deadline) {
		in = ReadInput(s, time.Now())
		if in.Quit {
			break
		}
		time.Sleep(time.Millisecond)
	}
	if !in.Quit {
		t.Fatal("closed stream should read as Quit")
	}
}
