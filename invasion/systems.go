package invasion

import (
	"github.com/plus3/invasion/ecs"
)

// ShipSystem applies the ship's movement flags.
type ShipSystem struct {
	Ship *Ship
}

func (s *ShipSystem) Execute(frame *ecs.UpdateFrame) {
	s.Ship.Update()
}

// BulletSystem advances bullets and removes those that left the screen.
// It walks a snapshot of the ids so removals never touch the set being ranged over.
type BulletSystem struct {
	Bullets *ecs.Pool[Bullet]
}

func (s *BulletSystem) Execute(frame *ecs.UpdateFrame) {
	for _, id := range s.Bullets.Snapshot() {
		bullet := s.Bullets.Get(id)
		bullet.Update()
		if bullet.Gone() {
			frame.Commands.Delete(id)
		}
	}
}

// CollisionSystem removes every bullet and alien that overlap, and replaces the
// fleet once it has been wiped out.
type CollisionSystem struct {
	Bullets *ecs.Pool[Bullet]
	Fleet   *Fleet
	Game    *Game
}

func (s *CollisionSystem) Execute(frame *ecs.UpdateFrame) {
	aliens := s.Fleet.Aliens
	hitAliens := make(map[ecs.EntityId]struct{})

	for bulletId, bullet := range s.Bullets.Iter() {
		br := bullet.Rect()
		hit := false
		for alienId, alien := range aliens.Iter() {
			if br.Overlaps(alien.Rect()) {
				hit = true
				hitAliens[alienId] = struct{}{}
			}
		}
		if hit {
			frame.Commands.Delete(bulletId)
		}
	}

	if len(hitAliens) == 0 {
		if aliens.Len() == 0 {
			frame.Commands.Defer(s.Game.newFleet)
		}
		return
	}

	for id := range hitAliens {
		frame.Commands.Delete(id)
	}
	s.Game.listeners.AliensDestroyed(len(hitAliens))

	if len(hitAliens) == aliens.Len() {
		frame.Commands.Defer(s.Game.newFleet)
	}
}

// FleetSystem bounces the fleet off the screen edges and marches it sideways.
type FleetSystem struct {
	Fleet *Fleet
}

func (s *FleetSystem) Execute(frame *ecs.UpdateFrame) {
	if s.Fleet.AtEdge() {
		s.Fleet.DropAndReverse()
	}
	s.Fleet.March()
}

// ShipHitSystem costs the player a ship when an alien touches it or lands.
type ShipHitSystem struct {
	Ship  *Ship
	Fleet *Fleet
	Game  *Game
}

func (s *ShipHitSystem) Execute(frame *ecs.UpdateFrame) {
	if s.collided() || s.Fleet.ReachedBottom() {
		s.Game.shipHit()
	}
}

func (s *ShipHitSystem) collided() bool {
	sr := s.Ship.Rect()
	for alien := range s.Fleet.Aliens.Values() {
		if sr.Overlaps(alien.Rect()) {
			return true
		}
	}
	return false
}
