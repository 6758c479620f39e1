package threat

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Status
		wantErr error
	}{
		{"newline", "Level: 12\n40-64", Status{Current: 12, HasCurrent: true, Range: LevelRange{40, 64}}, nil},
		{"br", "Level: 3<br>1 - 22", Status{Current: 3, HasCurrent: true, Range: LevelRange{1, 22}}, nil},
		{"no current", "Wilderness\n7-30", Status{Range: LevelRange{7, 30}}, nil},
		{"empty", "", Status{}, ErrPlaceholder},
		{"dashes", "--", Status{}, ErrPlaceholder},
		{"level dashes", "Level: --", Status{}, ErrPlaceholder},
		{"single line", "Level: 12", Status{}, ErrMalformed},
		{"no separator", "Level: 12\n4064", Status{}, ErrMalformed},
		{"non numeric", "Level: 12\nforty-64", Status{}, ErrMalformed},
		{"too many parts", "Level: 12\n1-2-3", Status{}, ErrMalformed},
		{"empty range", "Level: 12\n", Status{}, ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse(%q) err = %v, want %v", tt.in, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseRangeFallsBack(t *testing.T) {
	for _, in := range []string{"", "--", "Level: 5\n5", "Level: 5\na-b", "garbage"} {
		if r := ParseRange(in); r != nil {
			t.Fatalf("ParseRange(%q) = %v, want nil", in, *r)
		}
	}
	r := ParseRange("Level: 5\n2-9")
	if r == nil || *r != (LevelRange{2, 9}) {
		t.Fatalf("ParseRange = %v, want 2-9", r)
	}
}

func TestLevelRangeContains(t *testing.T) {
	r := LevelRange{Min: 10, Max: 20}
	for lvl, want := range map[int]bool{9: false, 10: true, 15: true, 20: true, 21: false} {
		if got := r.Contains(lvl); got != want {
			t.Fatalf("Contains(%d) = %v, want %v", lvl, got, want)
		}
	}
}
