package core

// fakeKeys is a held-key set.
type fakeKeys map[string]bool

func (k fakeKeys) IsKeyDown(key string) bool { return k[key] }

type shownText struct {
	text string
	x, y int
}

// fakeWorld records every notification it receives.
type fakeWorld struct {
	width, height, visibleWidth int

	removed  []*Character
	gameOver int
	texts    []shownText
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{width: 640, height: 400, visibleWidth: 600}
}

func (w *fakeWorld) Width() int { return w.width }

func (w *fakeWorld) Height() int { return w.height }

func (w *fakeWorld) VisibleWidth() int { return w.visibleWidth }

func (w *fakeWorld) Remove(c *Character) {
	w.removed = append(w.removed, c)
}

func (w *fakeWorld) SetGameOver() { w.gameOver++ }

func (w *fakeWorld) ShowText(text string, x, y int) {
	w.texts = append(w.texts, shownText{text: text, x: x, y: y})
}

// fakeSolids is a list of center-based rectangles; a point is inside when
// left <= x < left+width and top <= y < top+height.
type fakeSolids []Solid

func (s fakeSolids) SolidAt(x, y int) (Solid, bool) {
	for _, solid := range s {
		left := solid.X - solid.Width/2
		top := solid.Top()
		if x >= left && x < left+solid.Width && y >= top && y < top+solid.Height {
			return solid, true
		}
	}
	return Solid{}, false
}

// fakeSprites has a fixed image size and keeps the history of shown keys.
type fakeSprites struct {
	w, h  int
	shown []SpriteKey
}

func (s *fakeSprites) Show(key SpriteKey) { s.shown = append(s.shown, key) }

func (s *fakeSprites) Size() (int, int) { return s.w, s.h }

func (s *fakeSprites) last() SpriteKey {
	if len(s.shown) == 0 {
		return SpriteKey{}
	}
	return s.shown[len(s.shown)-1]
}

// floor is a platform spanning the whole stage with its top edge at y=300.
var floor = Solid{X: 320, Y: 310, Width: 640, Height: 20}

// restY is the center y of a 40px tall sprite standing on floor.
const restY = 280

type harness struct {
	c       *Character
	keys    fakeKeys
	world   *fakeWorld
	solids  fakeSolids
	sprites *fakeSprites
}

func newHarness(x, y int, solids ...Solid) *harness {
	h := &harness{
		keys:    fakeKeys{},
		world:   newFakeWorld(),
		solids:  fakeSolids(solids),
		sprites: &fakeSprites{w: 30, h: 40},
	}
	h.c = New(Config{
		Name:       "guile",
		WalkFrames: 4,
		Keys:       Bindings{MoveLeft: "left", MoveRight: "right", Jump: "up"},
		StartX:     x,
		StartY:     y,
	})
	return h
}

func (h *harness) env() Env {
	return Env{Keys: h.keys, World: h.world, Solids: h.solids, Sprites: h.sprites}
}

func (h *harness) tick() Events {
	return h.c.Tick(h.env())
}

func (h *harness) ticks(n int) {
	for i := 0; i < n; i++ {
		h.tick()
	}
}
