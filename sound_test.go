package main

import (
	"math"
	"testing"
	"time"
)

func TestChimeStream(t *testing.T) {
	c := newChime(chimeRate, 880, 10*time.Millisecond)
	want := chimeRate.N(10 * time.Millisecond)

	buf := make([][2]float64, 256)
	total, peak := 0, 0.0
	for {
		n, ok := c.Stream(buf)
		if !ok {
			break
		}
		for _, s := range buf[:n] {
			if s[0] != s[1] {
				t.Fatalf("channels differ: %v", s)
			}
			peak = math.Max(peak, math.Abs(s[0]))
		}
		total += n
	}
	if total != want {
		t.Fatalf("streamed %d samples, want %d", total, want)
	}
	if peak <= 0 || peak > 0.25 {
		t.Fatalf("peak = %v", peak)
	}
	if n, ok := c.Stream(buf); n != 0 || ok {
		t.Fatalf("drained chime streamed %d, %v", n, ok)
	}
	if c.Err() != nil {
		t.Fatalf("Err = %v", c.Err())
	}
}
