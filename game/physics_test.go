package game

import "testing"

func TestCollides(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
		want   bool
	}{
		{"same position", Point{0, 0}, Point{0, 0}, true},
		{"overlapping", Point{0, 0}, Point{9, -9}, true},
		{"touching edges", Point{0, 0}, Point{10, 0}, false},
		{"apart on x", Point{0, 0}, Point{30, 0}, false},
		{"apart on y only", Point{0, 0}, Point{0, -11}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collides(tt.p1, tt.p2, 10, 10); got != tt.want {
				t.Errorf("Collides(%v, %v) = %v, want %v", tt.p1, tt.p2, got, tt.want)
			}
			if got := Collides(tt.p2, tt.p1, 10, 10); got != tt.want {
				t.Errorf("Collides should be symmetric for %v, %v", tt.p1, tt.p2)
			}
		})
	}
}

func TestMove_EachDirection(t *testing.T) {
	cfg := testConfig()
	tests := []struct {
		dir        Direction
		wantX, wantY float64
	}{
		{DirXPlus, 2, 0},
		{DirXMinus, -2, 0},
		{DirYPlus, 0, 2},
		{DirYMinus, 0, -2},
	}
	for _, tt := range tests {
		p := &Player{Direction: tt.dir, Boost: cfg.BoostCap}
		move(p, cfg)
		if p.X != tt.wantX || p.Y != tt.wantY {
			t.Errorf("%s: expected (%v,%v), got (%v,%v)", tt.dir, tt.wantX, tt.wantY, p.X, p.Y)
		}
	}
}

func TestRegenBoost_Capped(t *testing.T) {
	cfg := testConfig()
	p := &Player{Boost: cfg.BoostCap - 0.5}
	regenBoost(p, cfg)
	if p.Boost != cfg.BoostCap {
		t.Errorf("expected boost capped at %v, got %v", cfg.BoostCap, p.Boost)
	}
}

func TestDirectionValid(t *testing.T) {
	for _, d := range Directions {
		if !d.Valid() {
			t.Errorf("%q should be valid", d)
		}
	}
	if Direction("z+").Valid() {
		t.Error("z+ should not be valid")
	}
}

func TestRandomSource_InclusiveRange(t *testing.T) {
	r := NewRandomSource(1)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := r.Int(-2, 2)
		if v < -2 || v > 2 {
			t.Fatalf("value %d out of [-2, 2]", v)
		}
		seen[v] = true
	}
	if len(seen) != 5 {
		t.Errorf("expected all 5 values to appear, saw %v", seen)
	}
	if got := r.Int(3, 3); got != 3 {
		t.Errorf("degenerate range should return 3, got %d", got)
	}
}
