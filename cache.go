package main

import (
	"runtime"

	"github.com/remeh/sizedwaitgroup"

	"threatlabels/nameplate"
)

// allRankGlyphs lists every glyph the simulated host can hand out.
func allRankGlyphs() []nameplate.RankGlyph {
	var out []nameplate.RankGlyph
	for _, r := range nameplate.FriendsRanks() {
		out = append(out, nameplate.RankGlyph{Friends: r})
	}
	for _, t := range clanTitles {
		out = append(out, nameplate.RankGlyph{Clan: true, Title: t})
	}
	return out
}

// precacheRankIcons rasterises the glyphs up front so the first frames do
// not pay for it.
func precacheRankIcons(icons *rankIcons) {
	glyphs := allRankGlyphs()
	wg := sizedwaitgroup.New(runtime.NumCPU())
	for _, g := range glyphs {
		wg.Add()
		go func(g nameplate.RankGlyph) {
			defer wg.Done()
			icons.RankImage(g)
		}(g)
	}
	wg.Wait()
	logDebug("precached %d rank icons", icons.count())
}
