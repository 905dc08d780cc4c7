package invasion

import "image"

// Bullet travels straight up from where the ship fired it.
type Bullet struct {
	X, Y float64

	settings *Settings
}

// NewBullet creates a bullet whose mid-top sits at the ship's mid-top.
func NewBullet(settings *Settings, ship *Ship) Bullet {
	r := ship.Rect()
	centerX := r.Min.X + r.Dx()/2
	return Bullet{
		X:        float64(centerX - settings.BulletWidth/2),
		Y:        float64(r.Min.Y),
		settings: settings,
	}
}

// Update moves the bullet up by one step.
func (b *Bullet) Update() {
	b.Y -= b.settings.BulletSpeed
}

// Gone reports whether the bullet has left the top of the screen.
func (b *Bullet) Gone() bool {
	return b.Rect().Max.Y <= 0
}

func (b *Bullet) Position() (float64, float64) {
	return b.X, b.Y
}

func (b *Bullet) Rect() image.Rectangle {
	return rectAt(b.X, b.Y, b.settings.BulletWidth, b.settings.BulletHeight)
}

func (b *Bullet) Draw(c Canvas) {
	c.FillRect(b.Rect(), b.settings.BulletColor)
}
