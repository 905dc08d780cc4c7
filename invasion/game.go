package invasion

import (
	"errors"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/invasion/ecs"
)

// ErrQuit is returned by HandleEvent when the player asks to leave.
var ErrQuit = errors.New("quit requested")

// Game owns every entity and runs the per-frame update.
type Game struct {
	settings  *Settings
	session   uuid.UUID
	world     *ecs.World
	scheduler *ecs.Scheduler

	ship    *Ship
	bullets *ecs.Pool[Bullet]
	fleet   *Fleet
	stats   *GameStats

	listeners listeners
	logger    *log.Logger
	pause     func(time.Duration)
}

// Option configures optional Game collaborators.
type Option func(*Game)

// WithListener registers a listener for gameplay events.
func WithListener(l Listener) Option {
	return func(g *Game) {
		g.listeners = append(g.listeners, l)
	}
}

// WithLogger sets the logger used for lifecycle events. Lines are prefixed with the session id.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithPause replaces the blocking delay used after the ship is hit.
func WithPause(pause func(time.Duration)) Option {
	return func(g *Game) {
		g.pause = pause
	}
}

// New creates a game with a full fleet, a centered ship and a full set of ships.
// The settings must already be valid.
func New(settings *Settings, opts ...Option) *Game {
	world := ecs.NewWorld()
	g := &Game{
		settings: settings,
		session:  uuid.New(),
		world:    world,
		ship:     NewShip(settings),
		bullets:  ecs.NewPool[Bullet](world),
		fleet:    NewFleet(settings, ecs.NewPool[Alien](world)),
		stats:    NewGameStats(settings),
		logger:   log.New(io.Discard, "", 0),
		pause:    time.Sleep,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = log.New(g.logger.Writer(), "["+g.session.String()+"] ", g.logger.Flags())

	g.scheduler = ecs.NewScheduler(world)
	g.scheduler.Register(&ShipSystem{Ship: g.ship})
	g.scheduler.Register(&BulletSystem{Bullets: g.bullets})
	g.scheduler.Register(&CollisionSystem{Bullets: g.bullets, Fleet: g.fleet, Game: g})
	g.scheduler.Register(&FleetSystem{Fleet: g.fleet})
	g.scheduler.Register(&ShipHitSystem{Ship: g.ship, Fleet: g.fleet, Game: g})

	g.logger.Printf("game started: screen %dx%d, %d ships", settings.ScreenWidth, settings.ScreenHeight, g.stats.ShipsLeft)
	g.newFleet()
	return g
}

// HandleEvent applies a single input event. It returns ErrQuit when the player
// closes the window or presses the quit key.
func (g *Game) HandleEvent(ev Event) error {
	switch ev.Kind {
	case Quit:
		return ErrQuit
	case KeyDown:
		switch ev.Key {
		case KeyRight:
			g.ship.MovingRight = true
		case KeyLeft:
			g.ship.MovingLeft = true
		case KeySpace:
			g.FireBullet()
		case KeyQuit:
			return ErrQuit
		}
	case KeyUp:
		switch ev.Key {
		case KeyRight:
			g.ship.MovingRight = false
		case KeyLeft:
			g.ship.MovingLeft = false
		}
	}
	return nil
}

// FireBullet launches a bullet from the ship unless the bullet limit is reached.
func (g *Game) FireBullet() bool {
	if g.bullets.Len() >= g.settings.BulletsAllowed {
		return false
	}
	g.bullets.Spawn(NewBullet(g.settings, g.ship))
	g.listeners.BulletFired()
	return true
}

// Update advances the game by one frame. Once the game is over it does nothing.
func (g *Game) Update() {
	if !g.stats.GameActive {
		return
	}
	g.scheduler.Once(1.0 / 60.0)
}

// Draw renders the current frame onto c.
func (g *Game) Draw(c Canvas) {
	c.Fill(g.settings.BgColor)
	g.ship.Draw(c)
	for bullet := range g.bullets.Values() {
		bullet.Draw(c)
	}
	for alien := range g.fleet.Aliens.Values() {
		alien.Draw(c)
	}
}

func (g *Game) newFleet() {
	g.bullets.Clear()
	g.fleet.Aliens.Clear()
	n := g.fleet.Populate()
	if n == 0 {
		return
	}
	g.logger.Printf("fleet spawned: %d aliens", n)
	g.listeners.FleetSpawned(n)
}

func (g *Game) shipHit() {
	if !g.stats.LoseShip() {
		g.logger.Printf("game over")
		g.listeners.ShipHit(0)
		g.listeners.GameOver()
		return
	}

	g.logger.Printf("ship hit: %d ships left", g.stats.ShipsLeft)
	g.listeners.ShipHit(g.stats.ShipsLeft)

	g.newFleet()
	g.ship.Center()
	g.pause(g.settings.ShipHitPause)
}

// Settings returns the configuration the game was built with.
func (g *Game) Settings() *Settings {
	return g.settings
}

// Session identifies this game in logs.
func (g *Game) Session() uuid.UUID {
	return g.session
}

// Stats returns the live game statistics.
func (g *Game) Stats() *GameStats {
	return g.stats
}

// Ship returns the player's ship.
func (g *Game) Ship() *Ship {
	return g.ship
}

// Bullets returns the live bullet pool.
func (g *Game) Bullets() *ecs.Pool[Bullet] {
	return g.bullets
}

// Fleet returns the alien fleet.
func (g *Game) Fleet() *Fleet {
	return g.fleet
}

// SchedulerStats returns per-system timing for the update loop.
func (g *Game) SchedulerStats() *ecs.SchedulerStats {
	return g.scheduler.GetStats()
}

// WorldStats returns entity pool occupancy.
func (g *Game) WorldStats() ecs.WorldStats {
	return g.world.CollectStats()
}
