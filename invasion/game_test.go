package invasion

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	g, listener, _ := newTestGame()

	assert.True(t, g.Stats().GameActive)
	assert.Equal(t, 3, g.Stats().ShipsLeft)
	assert.Equal(t, 45, g.Fleet().Aliens.Len())
	assert.Equal(t, 0, g.Bullets().Len())
	assert.Equal(t, 1, g.Fleet().Direction)
	assert.Equal(t, []int{45}, listener.fleets)
	assert.Equal(t, image.Rect(570, 752, 630, 800), g.Ship().Rect())
	assert.NotEqual(t, g.Session(), New(DefaultSettings()).Session())
}

func TestBulletLimit(t *testing.T) {
	g, listener, _ := newTestGame()

	for range 10 {
		require.True(t, g.FireBullet())
	}
	assert.False(t, g.FireBullet())
	assert.Equal(t, 10, g.Bullets().Len())
	assert.Equal(t, 10, listener.fired)
}

func TestBulletCountNeverExceedsLimit(t *testing.T) {
	g, _, _ := newTestGame()
	limit := g.Settings().BulletsAllowed

	for range 200 {
		for range 3 {
			require.NoError(t, g.HandleEvent(Down(KeySpace)))
		}
		g.Update()
		require.LessOrEqual(t, g.Bullets().Len(), limit)
	}
}

func TestBulletSpawnsAtShipMidTop(t *testing.T) {
	g, _, _ := newTestGame()
	require.True(t, g.FireBullet())

	for bullet := range g.Bullets().Values() {
		assert.Equal(t, 599.0, bullet.X)
		assert.Equal(t, 752.0, bullet.Y)
		assert.Equal(t, image.Rect(599, 752, 602, 767), bullet.Rect())
	}
}

func TestBulletsLeavingTheScreenAreRemoved(t *testing.T) {
	g, _, _ := newTestGame()
	s := g.Settings()

	gone := g.Bullets().Spawn(Bullet{X: 10, Y: -13.5, settings: s})
	edge := g.Bullets().Spawn(Bullet{X: 20, Y: -13, settings: s})

	g.Update()

	assert.False(t, g.Bullets().Has(gone), "bottom reached 0 this frame")
	require.True(t, g.Bullets().Has(edge))
	assert.Equal(t, 1, g.Bullets().Get(edge).Rect().Max.Y)

	g.Update()
	assert.False(t, g.Bullets().Has(edge))
}

func TestCollisionRemovesOnlyOverlappingPairs(t *testing.T) {
	g, listener, _ := newTestGame()
	s := g.Settings()
	aliens := g.Fleet().Aliens
	aliens.Clear()

	hit := aliens.Spawn(NewAlien(s, 100, 100))
	missA := aliens.Spawn(NewAlien(s, 300, 100))
	missB := aliens.Spawn(NewAlien(s, 500, 100))

	b1 := g.Bullets().Spawn(Bullet{X: 110, Y: 110, settings: s})
	b2 := g.Bullets().Spawn(Bullet{X: 120, Y: 120, settings: s})
	stray := g.Bullets().Spawn(Bullet{X: 900, Y: 500, settings: s})

	runSystem(g.world, &CollisionSystem{Bullets: g.bullets, Fleet: g.fleet, Game: g})

	assert.False(t, aliens.Has(hit))
	assert.True(t, aliens.Has(missA))
	assert.True(t, aliens.Has(missB))
	assert.False(t, g.Bullets().Has(b1))
	assert.False(t, g.Bullets().Has(b2))
	assert.True(t, g.Bullets().Has(stray))
	assert.Equal(t, 1, listener.destroyed)
}

func TestCollisionOneBulletManyAliens(t *testing.T) {
	g, listener, _ := newTestGame()
	s := g.Settings()
	aliens := g.Fleet().Aliens
	aliens.Clear()

	left := aliens.Spawn(NewAlien(s, 100, 100))
	right := aliens.Spawn(NewAlien(s, 160, 100))
	survivor := aliens.Spawn(NewAlien(s, 400, 100))
	g.Bullets().Spawn(Bullet{X: 158, Y: 120, settings: s})

	runSystem(g.world, &CollisionSystem{Bullets: g.bullets, Fleet: g.fleet, Game: g})

	assert.False(t, aliens.Has(left))
	assert.False(t, aliens.Has(right))
	assert.True(t, aliens.Has(survivor))
	assert.Equal(t, 0, g.Bullets().Len())
	assert.Equal(t, 2, listener.destroyed)
}

func TestDestroyingLastAlienRespawnsFleet(t *testing.T) {
	g, listener, _ := newTestGame()
	s := g.Settings()
	aliens := g.Fleet().Aliens
	aliens.Clear()

	aliens.Spawn(NewAlien(s, 100, 100))
	g.Bullets().Spawn(Bullet{X: 110, Y: 110, settings: s})
	g.Bullets().Spawn(Bullet{X: 900, Y: 500, settings: s})

	runSystem(g.world, &CollisionSystem{Bullets: g.bullets, Fleet: g.fleet, Game: g})

	assert.Equal(t, 45, aliens.Len())
	assert.Equal(t, 0, g.Bullets().Len())
	assert.Equal(t, []int{45, 45}, listener.fleets)
	assert.Equal(t, 3, g.Stats().ShipsLeft, "clearing a fleet awards nothing")
}

func TestShipHitSequence(t *testing.T) {
	g, listener, pauses := newTestGame()
	s := g.Settings()

	for hit := 1; hit <= 3; hit++ {
		g.Bullets().Spawn(Bullet{X: 10, Y: 400, settings: s})
		ship := g.Ship()
		ship.X = 100
		g.Fleet().Aliens.Spawn(NewAlien(s, 100, ship.Y))

		g.Update()

		assert.Equal(t, 3-hit, g.Stats().ShipsLeft, "hit %d", hit)
		if hit < 3 {
			assert.True(t, g.Stats().GameActive, "hit %d", hit)
			assert.Equal(t, 45, g.Fleet().Aliens.Len(), "fleet replaced after hit %d", hit)
			assert.Equal(t, 0, g.Bullets().Len(), "bullets cleared after hit %d", hit)
			assert.Equal(t, 570.0, g.Ship().X, "ship re-centered after hit %d", hit)
		}
	}

	assert.False(t, g.Stats().GameActive)
	assert.Equal(t, []int{2, 1, 0}, listener.hits)
	assert.Equal(t, 1, listener.gameOvers)
	require.Len(t, pauses.calls, 2)
	assert.Equal(t, s.ShipHitPause, pauses.calls[0])
	assert.Equal(t, 46, g.Fleet().Aliens.Len(), "the final hit freezes the board as it was")
	assert.Equal(t, 1, g.Bullets().Len())
}

func TestInactiveGameFreezesUpdates(t *testing.T) {
	g, _, _ := newTestGame()
	for g.Stats().GameActive {
		g.shipHit()
	}

	before := alienRects(g)
	g.Ship().MovingRight = true
	shipX := g.Ship().X

	g.Update()

	assert.Equal(t, before, alienRects(g))
	assert.Equal(t, shipX, g.Ship().X)

	g.shipHit()
	assert.Equal(t, 0, g.Stats().ShipsLeft, "ships left never goes negative")
}

func TestAlienReachingBottomCostsAShip(t *testing.T) {
	g, listener, _ := newTestGame()
	s := g.Settings()

	g.Fleet().Aliens.Spawn(NewAlien(s, 200, float64(s.ScreenHeight-s.AlienHeight)))
	g.Update()

	assert.Equal(t, 2, g.Stats().ShipsLeft)
	assert.Equal(t, []int{2}, listener.hits)
	assert.False(t, g.Fleet().ReachedBottom())
}

func TestShipTouchAndLandingInOneFrameCostOneShip(t *testing.T) {
	g, listener, pauses := newTestGame()
	s := g.Settings()
	ship := g.Ship().Rect()

	g.Fleet().Aliens.Spawn(NewAlien(s, float64(ship.Min.X), float64(ship.Min.Y-s.AlienHeight+1)))
	g.Fleet().Aliens.Spawn(NewAlien(s, 200, float64(s.ScreenHeight-s.AlienHeight)))
	g.Update()

	assert.Equal(t, []int{2}, listener.hits)
	assert.Equal(t, 2, g.Stats().ShipsLeft)
	assert.Len(t, pauses.calls, 1)
}

func TestBulletSystemRemovesManyBulletsInOnePass(t *testing.T) {
	g, _, _ := newTestGame()
	s := g.Settings()

	for i := range 5 {
		g.Bullets().Spawn(Bullet{X: float64(10 * i), Y: -14, settings: s})
	}
	kept := g.Bullets().Spawn(Bullet{X: 100, Y: 400, settings: s})

	runSystem(g.world, &BulletSystem{Bullets: g.Bullets()})

	assert.Equal(t, 1, g.Bullets().Len())
	assert.True(t, g.Bullets().Has(kept))
}

func TestHandleEvent(t *testing.T) {
	g, _, _ := newTestGame()
	ship := g.Ship()

	require.NoError(t, g.HandleEvent(Down(KeyRight)))
	assert.True(t, ship.MovingRight)
	require.NoError(t, g.HandleEvent(Down(KeyLeft)))
	assert.True(t, ship.MovingLeft)
	require.NoError(t, g.HandleEvent(Up(KeyRight)))
	assert.False(t, ship.MovingRight)
	require.NoError(t, g.HandleEvent(Up(KeyLeft)))
	assert.False(t, ship.MovingLeft)

	require.NoError(t, g.HandleEvent(Down(KeySpace)))
	assert.Equal(t, 1, g.Bullets().Len())
	require.NoError(t, g.HandleEvent(Up(KeySpace)))
	assert.Equal(t, 1, g.Bullets().Len())

	require.NoError(t, g.HandleEvent(Down(KeyUnknown)))
	require.NoError(t, g.HandleEvent(Up(KeyQuit)))

	assert.ErrorIs(t, g.HandleEvent(Down(KeyQuit)), ErrQuit)
	assert.ErrorIs(t, g.HandleEvent(Event{Kind: Quit}), ErrQuit)
}

func TestShipMovement(t *testing.T) {
	g, _, _ := newTestGame()
	ship := g.Ship()

	ship.MovingRight = true
	g.Update()
	assert.Equal(t, 571.5, ship.X)

	ship.X = float64(g.Settings().ScreenWidth - g.Settings().ShipWidth)
	g.Update()
	assert.Equal(t, float64(1140), ship.X, "stops at the right edge")

	ship.MovingRight = false
	ship.MovingLeft = true
	ship.X = 0
	g.Update()
	assert.Equal(t, 0.0, ship.X, "stops at the left edge")
}

func TestDraw(t *testing.T) {
	g, _, _ := newTestGame()
	require.True(t, g.FireBullet())
	canvas := &recordingCanvas{}

	g.Draw(canvas)

	require.Len(t, canvas.fills, 1)
	assert.Equal(t, g.Settings().BgColor, canvas.fills[0])
	assert.Contains(t, canvas.rects, image.Rect(599, 752, 602, 767))

	shipBounds := g.Ship().Rect()
	shipCells := 0
	for _, r := range canvas.rects {
		if r.In(shipBounds) {
			shipCells++
		}
	}
	assert.Positive(t, shipCells)
}

func TestSpritesShareCapabilities(t *testing.T) {
	g, _, _ := newTestGame()
	require.True(t, g.FireBullet())

	sprites := []Sprite{g.Ship()}
	for b := range g.Bullets().Values() {
		sprites = append(sprites, b)
	}
	for a := range g.Fleet().Aliens.Values() {
		sprites = append(sprites, a)
		break
	}

	require.Len(t, sprites, 3)
	for _, sp := range sprites {
		x, y := sp.Position()
		assert.Equal(t, image.Pt(int(x), int(y)), sp.Rect().Min)
	}
}

func alienRects(g *Game) []image.Rectangle {
	var rects []image.Rectangle
	for alien := range g.Fleet().Aliens.Values() {
		rects = append(rects, alien.Rect())
	}
	return rects
}
