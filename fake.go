package main

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"
	"sync"

	"threatlabels/nameplate"
	"threatlabels/overlay"
)

const (
	// wildernessEdge is the world Y beyond which the level range applies.
	wildernessEdge = 0.0
	// wildernessDepth is world units per wilderness level.
	wildernessDepth = 24.0
	worldHalfW      = 400.0
	worldMinY       = -250.0
	worldMaxY       = 700.0
	maxCombatLevel  = 126
	// statusGlitchEvery/statusGlitchFrames make the range widget briefly
	// show a single line, the way it does while the host redraws it.
	statusGlitchEvery  = 600
	statusGlitchFrames = 20
)

var nameSyllables = []string{
	"zez", "ima", "dur", "ial", "lyn", "mod", "ash", "kar", "oth", "vel",
	"rin", "tor", "bax", "qui", "ell", "mor", "dan", "sy", "fel", "gar",
}

var clanTitles = []nameplate.ClanTitle{
	{ID: 0, Name: "Recruit"},
	{ID: 1, Name: "Corporal"},
	{ID: 5, Name: "Captain"},
	{ID: 100, Name: "Admin"},
	{ID: 126, Name: "Deputy Owner"},
}

// camera maps world positions to screen pixels: top-down with model height
// foreshortened onto the Y axis.
type camera struct {
	X, Y   float64
	Scale  float64 // pixels per world unit on the ground plane
	ZScale float64 // pixels per unit of model height
	W, H   int
}

func (c camera) project(x, y float64, z int) (image.Point, bool) {
	sx := float64(c.W)/2 + (x-c.X)*c.Scale
	sy := float64(c.H)/2 + (y-c.Y)*c.Scale - float64(z)*c.ZScale
	if sx < 0 || sy < 0 || sx >= float64(c.W) || sy >= float64(c.H) {
		return image.Point{}, false
	}
	return image.Pt(int(math.Round(sx)), int(math.Round(sy))), true
}

// world is a simulated host: a seeded player population wandering around
// the local player, with a level-range widget driven by how deep the local
// player stands in the wilderness.
type world struct {
	mu      sync.RWMutex
	rng     *rand.Rand
	players []*Player
	local   *Player
	tick    int
	cam     camera
}

func newWorld(seed int64, count int, scale float64) *world {
	w := &world{rng: rand.New(rand.NewSource(seed))}
	w.cam = camera{Scale: scale, ZScale: scale / 4, W: initialWindowW, H: initialWindowH}

	used := map[string]bool{}
	w.local = &Player{
		Name:        w.uniqueName(used),
		CombatLevel: 30 + w.rng.Intn(80),
		Local:       true,
		Height:      200,
		Y:           wildernessEdge + 40,
	}
	w.players = append(w.players, w.local)

	for i := 1; i < count; i++ {
		lvl := w.local.CombatLevel + w.rng.Intn(91) - 45
		if lvl < 3 {
			lvl = 3
		}
		if lvl > maxCombatLevel {
			lvl = maxCombatLevel
		}
		p := &Player{
			Name:        w.uniqueName(used),
			CombatLevel: lvl,
			Height:      170 + w.rng.Intn(60),
			X:           w.local.X + w.rng.Float64()*300 - 150,
			Y:           w.local.Y + w.rng.Float64()*200 - 100,
		}
		switch r := w.rng.Intn(10); {
		case r == 0:
			p.FriendLabel = 1 + w.rng.Intn(len(labelColors))
		case r == 1:
			rank := nameplate.FriendsRanks()[w.rng.Intn(len(nameplate.FriendsRanks()))]
			p.FriendsRank = &rank
		case r == 2:
			rank := nameplate.Unranked
			p.FriendsRank = &rank
			t := clanTitles[w.rng.Intn(len(clanTitles))]
			p.ClanTitle = &t
		case r == 3:
			t := clanTitles[w.rng.Intn(len(clanTitles))]
			p.ClanTitle = &t
		}
		w.players = append(w.players, p)
	}
	for _, p := range w.players {
		w.retarget(p)
	}
	return w
}

func (w *world) uniqueName(used map[string]bool) string {
	for {
		n := 2 + w.rng.Intn(2)
		name := ""
		for i := 0; i < n; i++ {
			name += nameSyllables[w.rng.Intn(len(nameSyllables))]
		}
		name = string(name[0]-'a'+'A') + name[1:]
		if w.rng.Intn(4) == 0 {
			name = fmt.Sprintf("%s %d", name, w.rng.Intn(99))
		}
		if !used[name] {
			used[name] = true
			return name
		}
	}
}

func (w *world) retarget(p *Player) {
	speed := 0.4 + w.rng.Float64()*0.8
	if p.Local {
		speed = 0.6
	}
	a := w.rng.Float64() * 2 * math.Pi
	p.VX = math.Cos(a) * speed
	p.VY = math.Sin(a) * speed
}

// SetViewport updates the screen size used for projection.
func (w *world) SetViewport(width, height int) {
	w.mu.Lock()
	w.cam.W, w.cam.H = width, height
	w.mu.Unlock()
}

// Update advances the simulation by one tick.
func (w *world) Update() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.tick++
	for _, p := range w.players {
		if w.rng.Intn(120) == 0 {
			w.retarget(p)
		}
		p.X += p.VX
		p.Y += p.VY
		if p.X < -worldHalfW || p.X > worldHalfW {
			p.VX = -p.VX
		}
		if p.Y < worldMinY || p.Y > worldMaxY {
			p.VY = -p.VY
		}
	}
	w.cam.X, w.cam.Y = w.local.X, w.local.Y
}

// wildernessLevel is 0 outside the wilderness.
func wildernessLevel(y float64) int {
	if y <= wildernessEdge {
		return 0
	}
	return 1 + int((y-wildernessEdge)/wildernessDepth)
}

func (w *world) statusTextLocked() string {
	lvl := wildernessLevel(w.local.Y)
	if lvl == 0 {
		return "Level: --"
	}
	if w.tick%statusGlitchEvery < statusGlitchFrames {
		return fmt.Sprintf("Level: %d", lvl)
	}
	lo := w.local.CombatLevel - lvl
	if lo < 3 {
		lo = 3
	}
	hi := w.local.CombatLevel + lvl
	if hi > maxCombatLevel {
		hi = maxCombatLevel
	}
	return fmt.Sprintf("Level: %d\n%d-%d", lvl, lo, hi)
}

// Snapshot copies the state needed for one frame.
func (w *world) Snapshot() *worldFrame {
	w.mu.RLock()
	defer w.mu.RUnlock()
	f := &worldFrame{
		cam:    w.cam,
		status: w.statusTextLocked(),
		local:  w.local.snapshot(),
		pos:    make(map[string][2]float64, len(w.players)),
		labels: make(map[string]int),
	}
	ps := append([]*Player(nil), w.players...)
	sortPlayersByName(ps)
	for _, p := range ps {
		snap := p.snapshot()
		f.players = append(f.players, snap)
		f.pos[p.Name] = [2]float64{p.X, p.Y}
		if p.decorated() {
			f.decorated = append(f.decorated, decoratedPlayer{snap, p.decoration()})
		}
		if p.FriendLabel > 0 {
			f.labels[p.Name] = p.FriendLabel
		}
	}
	return f
}

type decoratedPlayer struct {
	p overlay.Player
	d overlay.Decoration
}

// worldFrame is an immutable frame snapshot. It is the overlay's
// GameStateSource and DecorationSource.
type worldFrame struct {
	cam       camera
	status    string
	local     overlay.Player
	players   []overlay.Player
	labels    map[string]int
	pos       map[string][2]float64
	decorated []decoratedPlayer
}

func (f *worldFrame) Players() []overlay.Player { return f.players }

func (f *worldFrame) LocalPlayer() (overlay.Player, bool) { return f.local, f.local.Name != "" }

func (f *worldFrame) LevelRangeText() string { return f.status }

func (f *worldFrame) Project(p overlay.Player, zOffset int) (image.Point, bool) {
	pos, ok := f.pos[p.Name]
	if !ok {
		return image.Point{}, false
	}
	return f.cam.project(pos[0], pos[1], zOffset)
}

func (f *worldFrame) ForEachDecorated(fn func(overlay.Player, overlay.Decoration)) {
	for _, d := range f.decorated {
		fn(d.p, d.d)
	}
}

// avatarColor is the body colour an avatar is drawn with.
func (f *worldFrame) avatarColor(p overlay.Player) color.NRGBA {
	if c, ok := labelColor(f.labels[p.Name]); ok {
		return c
	}
	if p.Local {
		return ownColor
	}
	return otherColor
}

// wildernessEdgeY is the screen row of the wilderness boundary, if visible.
func (f *worldFrame) wildernessEdgeY() (int, bool) {
	y := float64(f.cam.H)/2 + (wildernessEdge-f.cam.Y)*f.cam.Scale
	if y < 0 || y >= float64(f.cam.H) {
		return 0, false
	}
	return int(math.Round(y)), true
}

// headY is the screen row of the top of an avatar whose base is at base.
func (f *worldFrame) headY(p overlay.Player, base image.Point) int {
	return base.Y - int(math.Round(float64(p.LogicalHeight)*f.cam.ZScale))
}
