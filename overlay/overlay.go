// Package overlay runs the per-frame name label pass: decorated names with
// rank icons, then threat labels coloured by combat level difference.
package overlay

import (
	"errors"
	"image"
	"log"

	"threatlabels/nameplate"
	"threatlabels/threat"
)

// Config holds the user toggles read on every frame.
type Config struct {
	NameLocation     nameplate.NameLocation
	ShowFriendsRanks bool
	ShowClanRanks    bool
	// ThreatLabels enables the combat level pass.
	ThreatLabels bool
}

// FrameStats summarises one Render call.
type FrameStats struct {
	Decorated  int
	Classified int
	Drawn      int
	Suppressed int
	Offscreen  int
	Recovered  int

	Range    *threat.LevelRange
	Status   threat.Status
	RangeErr error
	// HighThreats names the visible targets in the high tier.
	HighThreats []string
	// Tiers maps each visible target to its tier.
	Tiers map[string]threat.Tier
}

// Overlay draws labels for the players supplied by its sources.
type Overlay struct {
	src     GameStateSource
	deco    DecorationSource
	icons   IconProvider
	metrics TextMetricsProvider
	cfg     Config
}

// New returns an overlay reading from the given host collaborators. deco
// and icons may be nil.
func New(src GameStateSource, deco DecorationSource, icons IconProvider, metrics TextMetricsProvider, cfg Config) *Overlay {
	return &Overlay{src: src, deco: deco, icons: icons, metrics: metrics, cfg: cfg}
}

func (o *Overlay) Config() Config { return o.cfg }

func (o *Overlay) SetConfig(cfg Config) { o.cfg = cfg }

// Render emits the draw calls for one frame to c.
func (o *Overlay) Render(c Canvas) FrameStats {
	st := FrameStats{Tiers: map[string]threat.Tier{}}
	if o.deco != nil {
		o.deco.ForEachDecorated(func(p Player, d Decoration) {
			o.guard(&st, p.Name, func() { o.renderDecorated(c, &st, p, d) })
		})
	}
	if o.cfg.ThreatLabels {
		o.renderThreats(c, &st)
	}
	return st
}

// guard keeps one bad target from aborting the rest of the frame.
func (o *Overlay) guard(st *FrameStats, name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			st.Recovered++
			log.Printf("overlay: label for %q: %v", name, r)
		}
	}()
	fn()
}

func (o *Overlay) renderDecorated(c Canvas, st *FrameStats, p Player, d Decoration) {
	loc := o.cfg.NameLocation
	if loc == nameplate.Disabled {
		return
	}
	pt, ok := o.src.Project(p, nameplate.ZOffset(loc, p.LogicalHeight))
	if !ok {
		st.Offscreen++
		return
	}

	name := nameplate.SanitizeName(p.Name)
	anchor := nameplate.Anchor(loc, pt, o.metrics.TextWidth(name, WeightRegular))

	icon := o.rankImage(d)
	pl, ok := nameplate.Place(anchor, o.metrics.Metrics(WeightRegular), icon, loc)
	if !ok {
		return
	}
	if pl.HasIcon {
		c.DrawImage(icon, pl.Icon)
	}
	col := d.Color
	if col == nil {
		col = threat.TierNone.Color()
	}
	c.DrawText(name, pl.Text, col, WeightRegular)
	st.Decorated++
}

func (o *Overlay) rankImage(d Decoration) image.Image {
	if o.icons == nil {
		return nil
	}
	g, ok := nameplate.SelectRank(d.FriendsRank, d.ClanTitle, o.cfg.ShowFriendsRanks, o.cfg.ShowClanRanks)
	if !ok {
		return nil
	}
	return o.icons.RankImage(g)
}

func (o *Overlay) renderThreats(c Canvas, st *FrameStats) {
	status, err := threat.Parse(o.src.LevelRangeText())
	if err != nil {
		if !errors.Is(err, threat.ErrPlaceholder) {
			st.RangeErr = err
		}
		return
	}
	st.Status = status
	st.Range = &status.Range

	me, ok := o.src.LocalPlayer()
	if !ok {
		return
	}
	viewer := threat.Combatant{Name: me.Name, Level: me.CombatLevel, Local: true}

	for _, p := range o.src.Players() {
		o.guard(st, p.Name, func() {
			target := threat.Combatant{Name: p.Name, Level: p.CombatLevel, Local: p.Local}
			v := threat.Classify(viewer, target, st.Range)
			st.Classified++
			if !v.Visible {
				if !target.Local && target.Name != viewer.Name {
					st.Suppressed++
				}
				return
			}

			w := WeightSmall
			if v.Emphasized {
				w = WeightBold
			}
			text := threat.LabelText(p.Name, p.CombatLevel)
			pt, ok := o.src.Project(p, nameplate.ZOffset(nameplate.Above, p.LogicalHeight))
			if !ok {
				st.Offscreen++
				return
			}
			c.DrawText(text, nameplate.Anchor(nameplate.Above, pt, o.metrics.TextWidth(text, w)), v.Color, w)
			st.Drawn++
			st.Tiers[p.Name] = v.Tier
			if v.Tier == threat.TierHigh {
				st.HighThreats = append(st.HighThreats, p.Name)
			}
		})
	}
}
