package nameplate

import (
	"fmt"
	"strings"
)

// NameLocation selects where a player's name is drawn relative to the model.
type NameLocation int

const (
	Above NameLocation = iota
	ModelCenter
	ModelRight
	Disabled
)

var locationNames = map[NameLocation]string{
	Above:       "above",
	ModelCenter: "center",
	ModelRight:  "right",
	Disabled:    "disabled",
}

func (l NameLocation) String() string {
	if s, ok := locationNames[l]; ok {
		return s
	}
	return fmt.Sprintf("NameLocation(%d)", int(l))
}

// Next cycles through the locations in declaration order.
func (l NameLocation) Next() NameLocation {
	return (l + 1) % (Disabled + 1)
}

// ParseNameLocation accepts the names produced by String, case-insensitive.
func ParseNameLocation(s string) (NameLocation, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for l, name := range locationNames {
		if name == s {
			return l, nil
		}
	}
	return Above, fmt.Errorf("unknown name location %q", s)
}

func (l NameLocation) MarshalText() ([]byte, error) {
	if _, ok := locationNames[l]; !ok {
		return nil, fmt.Errorf("invalid name location %d", int(l))
	}
	return []byte(l.String()), nil
}

func (l *NameLocation) UnmarshalText(b []byte) error {
	v, err := ParseNameLocation(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}
