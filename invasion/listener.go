package invasion

// Listener is notified of gameplay events. Sound effects and instrumentation
// hook in here so the game loop stays free of them.
type Listener interface {
	BulletFired()
	AliensDestroyed(n int)
	FleetSpawned(aliens int)
	ShipHit(shipsLeft int)
	GameOver()
}

type listeners []Listener

func (ls listeners) BulletFired() {
	for _, l := range ls {
		l.BulletFired()
	}
}

func (ls listeners) AliensDestroyed(n int) {
	for _, l := range ls {
		l.AliensDestroyed(n)
	}
}

func (ls listeners) FleetSpawned(aliens int) {
	for _, l := range ls {
		l.FleetSpawned(aliens)
	}
}

func (ls listeners) ShipHit(shipsLeft int) {
	for _, l := range ls {
		l.ShipHit(shipsLeft)
	}
}

func (ls listeners) GameOver() {
	for _, l := range ls {
		l.GameOver()
	}
}
