package invasion

// GameStats tracks the player's remaining ships and whether gameplay is running.
type GameStats struct {
	ShipsLeft  int
	GameActive bool

	shipLimit int
}

// NewGameStats creates stats for a fresh game.
func NewGameStats(settings *Settings) *GameStats {
	s := &GameStats{shipLimit: settings.ShipLimit}
	s.Reset()
	return s
}

// Reset restores a full set of ships and marks the game active.
func (s *GameStats) Reset() {
	s.ShipsLeft = s.shipLimit
	s.GameActive = true
}

// LoseShip consumes one ship and reports whether any remain.
// The game becomes inactive when the last ship is consumed.
func (s *GameStats) LoseShip() bool {
	if s.ShipsLeft > 0 {
		s.ShipsLeft--
	}
	if s.ShipsLeft == 0 {
		s.GameActive = false
		return false
	}
	return true
}
