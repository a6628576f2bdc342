package game

import (
	"math"

	"orbtag-server/config"
)

// Point is a position in arena coordinates.
type Point struct {
	X, Y float64
}

func (p *Player) position() Point {
	return Point{X: p.X, Y: p.Y}
}

// Collides reports whether two width x height boxes centered on p1 and p2
// overlap. Touching edges do not count.
func Collides(p1, p2 Point, width, height float64) bool {
	return math.Abs(p1.X-p2.X) < width && math.Abs(p1.Y-p2.Y) < height
}

// regenBoost adds one tick of stamina, capped.
func regenBoost(p *Player, cfg *config.Config) {
	p.Boost = math.Min(p.Boost+cfg.BoostRegen, cfg.BoostCap)
}

// move advances p one step along its direction, draining boost when it is
// both requested and affordable, then clamps to the arena.
func move(p *Player, cfg *config.Config) {
	speed := cfg.PlayerSpeed
	if p.Boosting && p.Boost >= cfg.BoostDrain {
		p.Boost -= cfg.BoostDrain
		speed = cfg.PlayerSpeedBoosted
	}

	switch p.Direction {
	case DirXPlus:
		p.X += speed
	case DirXMinus:
		p.X -= speed
	case DirYPlus:
		p.Y += speed
	case DirYMinus:
		p.Y -= speed
	}
	clamp(p, cfg)
}

func clamp(p *Player, cfg *config.Config) {
	p.X = math.Max(float64(cfg.NegativeXThreshold), math.Min(p.X, float64(cfg.PositiveXThreshold)))
	p.Y = math.Max(float64(cfg.NegativeYThreshold), math.Min(p.Y, float64(cfg.PositiveYThreshold)))
}
