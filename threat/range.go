package threat

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrPlaceholder is returned for status text the host shows when the
	// viewer is outside any ranged area.
	ErrPlaceholder = errors.New("placeholder status")
	// ErrMalformed is returned when the status text does not have the
	// "current\nmin-max" shape.
	ErrMalformed = errors.New("malformed status")
)

// placeholders lists the status strings that mean "no range".
var placeholders = []string{"", "--", "Level: --"}

// LevelRange is an inclusive combat level range.
type LevelRange struct {
	Min int
	Max int
}

// Contains reports whether level lies within r, bounds included.
func (r LevelRange) Contains(level int) bool {
	return level >= r.Min && level <= r.Max
}

func (r LevelRange) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// Status is the parsed level-range widget text.
type Status struct {
	// Current is the level shown on the first line, when it carries one.
	Current    int
	HasCurrent bool
	Range      LevelRange
}

// Parse splits the widget text into its two lines and reads the range from
// the second one. Line breaks may be "\n" or "<br>".
func Parse(status string) (Status, error) {
	for _, p := range placeholders {
		if status == p {
			return Status{}, ErrPlaceholder
		}
	}

	var lines []string
	switch {
	case strings.Contains(status, "\n"):
		lines = strings.Split(status, "\n")
	case strings.Contains(status, "<br>"):
		lines = strings.Split(status, "<br>")
	}
	if len(lines) < 2 {
		return Status{}, fmt.Errorf("%w: %q has no range line", ErrMalformed, status)
	}

	bounds := strings.Split(lines[1], "-")
	if len(bounds) != 2 {
		return Status{}, fmt.Errorf("%w: range %q", ErrMalformed, lines[1])
	}
	lo, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
	if err != nil {
		return Status{}, fmt.Errorf("%w: range min: %v", ErrMalformed, err)
	}
	hi, err := strconv.Atoi(strings.TrimSpace(bounds[1]))
	if err != nil {
		return Status{}, fmt.Errorf("%w: range max: %v", ErrMalformed, err)
	}

	st := Status{Range: LevelRange{Min: lo, Max: hi}}
	st.Current, st.HasCurrent = currentLevel(lines[0])
	return st, nil
}

// ParseRange returns the range carried by the status text, or nil when the
// text is a placeholder or cannot be parsed.
func ParseRange(status string) *LevelRange {
	st, err := Parse(status)
	if err != nil {
		return nil
	}
	return &st.Range
}

// currentLevel reads "Level: 12" style first lines.
func currentLevel(line string) (int, bool) {
	_, v, ok := strings.Cut(line, ":")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}
