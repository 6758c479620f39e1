package threat

import "testing"

func TestTierFor(t *testing.T) {
	tests := []struct {
		diff int
		want Tier
	}{
		{11, TierHigh},
		{40, TierHigh},
		{-11, TierLow},
		{-40, TierLow},
		{0, TierNear},
		{2, TierNear},
		{-2, TierNear},
		{5, TierMid},
		{-5, TierMid},
		{4, TierMid},
		{9, TierMid},
		{-9, TierMid},
		{10, TierNone},
		{-10, TierNone},
		{3, TierNone},
		{-3, TierNone},
	}
	for _, tt := range tests {
		if got := TierFor(tt.diff); got != tt.want {
			t.Fatalf("TierFor(%d) = %v, want %v", tt.diff, got, tt.want)
		}
	}
}

func TestTierColors(t *testing.T) {
	if c := TierHigh.Color(); c.R != 221 || c.G != 44 || c.B != 0 {
		t.Fatalf("high colour = %v", c)
	}
	if c := TierLow.Color(); c.R != 0 || c.G != 200 || c.B != 83 {
		t.Fatalf("low colour = %v", c)
	}
	if c := TierNone.Color(); c.R != 0 || c.G != 0 || c.B != 0 || c.A != 0xff {
		t.Fatalf("none colour = %v, want opaque black", c)
	}
	if c := Tier(99).Color(); c != TierNone.Color() {
		t.Fatalf("out of range tier colour = %v", c)
	}
}

func TestClassifyEmphasis(t *testing.T) {
	rng := &LevelRange{Min: 50, Max: 70}
	viewer := Combatant{Name: "Me", Level: 60}
	tests := []struct {
		level    int
		emphasis bool
	}{
		{50, true},
		{70, true},
		{60, true},
		{49, false},
		{71, false},
	}
	for _, tt := range tests {
		v := Classify(viewer, Combatant{Name: "Other", Level: tt.level}, rng)
		if v.Emphasized != tt.emphasis {
			t.Fatalf("Classify(level %d).Emphasized = %v, want %v", tt.level, v.Emphasized, tt.emphasis)
		}
		if !v.Visible {
			t.Fatalf("Classify(level %d) hidden", tt.level)
		}
	}
}

func TestClassifySuppression(t *testing.T) {
	rng := &LevelRange{Min: 1, Max: 5}
	viewer := Combatant{Name: "Me", Level: 50}
	tests := []struct {
		name    string
		level   int
		visible bool
	}{
		{"34 above", 84, true},
		{"35 above", 85, false},
		{"34 below", 16, true},
		{"35 below", 15, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Classify(viewer, Combatant{Name: "Other", Level: tt.level}, rng)
			if v.Visible != tt.visible {
				t.Fatalf("Visible = %v, want %v", v.Visible, tt.visible)
			}
			if v.Emphasized {
				t.Fatalf("target outside range emphasized")
			}
		})
	}

	// Inside the range the difference does not matter.
	wide := &LevelRange{Min: 1, Max: 126}
	if v := Classify(viewer, Combatant{Name: "Other", Level: 120}, wide); !v.Visible || !v.Emphasized {
		t.Fatalf("in-range far target = %+v, want visible and emphasized", v)
	}
}

func TestClassifySelf(t *testing.T) {
	rng := &LevelRange{Min: 1, Max: 126}
	viewer := Combatant{Name: "Me", Level: 50}
	if v := Classify(viewer, viewer, rng); v.Visible {
		t.Fatalf("self by name visible")
	}
	if v := Classify(viewer, Combatant{Name: "Alias", Level: 80, Local: true}, rng); v.Visible {
		t.Fatalf("local target visible")
	}
}

func TestClassifyNoRange(t *testing.T) {
	v := Classify(Combatant{Name: "Me", Level: 50}, Combatant{Name: "Other", Level: 62}, nil)
	if v.Visible {
		t.Fatalf("label produced without range")
	}
	if v.Tier != TierHigh {
		t.Fatalf("tier = %v, want %v", v.Tier, TierHigh)
	}
}

func TestLabelText(t *testing.T) {
	if got, want := LabelText("Zezima", 126), "Zezima (level: 126)"; got != want {
		t.Fatalf("LabelText = %q, want %q", got, want)
	}
}
