package nameplate

import "testing"

func TestSelectRank(t *testing.T) {
	captain := Captain
	unranked := Unranked
	title := &ClanTitle{ID: 3, Name: "Admin"}

	tests := []struct {
		name        string
		friends     *FriendsChatRank
		clan        *ClanTitle
		showFriends bool
		showClan    bool
		want        RankGlyph
		ok          bool
	}{
		{"friends wins", &captain, title, true, true, RankGlyph{Friends: Captain}, true},
		{"friends toggle off", &captain, title, false, true, RankGlyph{Clan: true, Title: *title}, true},
		{"unranked falls back", &unranked, title, true, true, RankGlyph{Clan: true, Title: *title}, true},
		{"unranked no clan", &unranked, nil, true, true, RankGlyph{}, false},
		{"clan only", nil, title, true, true, RankGlyph{Clan: true, Title: *title}, true},
		{"clan toggle off", nil, title, true, false, RankGlyph{}, false},
		{"nothing", nil, nil, true, true, RankGlyph{}, false},
		{"all toggles off", &captain, title, false, false, RankGlyph{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectRank(tt.friends, tt.clan, tt.showFriends, tt.showClan)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("SelectRank = %v, %v, want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestNameLocationText(t *testing.T) {
	for _, l := range []NameLocation{Above, ModelCenter, ModelRight, Disabled} {
		b, err := l.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", l, err)
		}
		var back NameLocation
		if err := back.UnmarshalText(b); err != nil || back != l {
			t.Fatalf("UnmarshalText(%q) = %v, %v, want %v", b, back, err, l)
		}
	}
	if _, err := ParseNameLocation("sideways"); err == nil {
		t.Fatalf("ParseNameLocation accepted unknown value")
	}
	if got := Disabled.Next(); got != Above {
		t.Fatalf("Disabled.Next() = %v, want %v", got, Above)
	}
}

func TestSanitizeName(t *testing.T) {
	tests := map[string]string{
		"Zezima":                    "Zezima",
		"Iron\u00a0Man":            "Iron Man",
		"<col=ff0000>Red</col> Guy": "Red Guy",
		"<img=2>Mod\u00a0Ash":       "Mod Ash",
	}
	for in, want := range tests {
		if got := SanitizeName(in); got != want {
			t.Fatalf("SanitizeName(%q) = %q, want %q", in, got, want)
		}
	}
}
