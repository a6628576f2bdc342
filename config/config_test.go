package config

import (
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.MinPlayers != 2 {
		t.Errorf("expected MinPlayers=2, got %d", cfg.MinPlayers)
	}
	if cfg.NegativeXThreshold >= cfg.PositiveXThreshold {
		t.Errorf("expected x thresholds to form a range, got [%d, %d]", cfg.NegativeXThreshold, cfg.PositiveXThreshold)
	}
	if cfg.NegativeYThreshold >= cfg.PositiveYThreshold {
		t.Errorf("expected y thresholds to form a range, got [%d, %d]", cfg.NegativeYThreshold, cfg.PositiveYThreshold)
	}
	if cfg.BoostCap != 100 {
		t.Errorf("expected BoostCap=100, got %v", cfg.BoostCap)
	}
	if cfg.PlayerSpeedBoosted <= cfg.PlayerSpeed {
		t.Errorf("boosted speed %v should exceed base speed %v", cfg.PlayerSpeedBoosted, cfg.PlayerSpeed)
	}
	if cfg.WSPort != 8080 {
		t.Errorf("expected WSPort=8080, got %d", cfg.WSPort)
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("MIN_PLAYERS", "4")
	t.Setenv("BOOST_REGEN", "2.5")
	t.Setenv("PLAYING_DURATION_MS", "30000")
	t.Setenv("WS_PORT", "9090")

	cfg := Load()

	if cfg.MinPlayers != 4 {
		t.Errorf("expected MinPlayers=4 after env override, got %d", cfg.MinPlayers)
	}
	if cfg.BoostRegen != 2.5 {
		t.Errorf("expected BoostRegen=2.5 after env override, got %v", cfg.BoostRegen)
	}
	if cfg.PlayingDurationMS != 30000 {
		t.Errorf("expected PlayingDurationMS=30000 after env override, got %d", cfg.PlayingDurationMS)
	}
	if cfg.WSPort != 9090 {
		t.Errorf("expected WSPort=9090 after env override, got %d", cfg.WSPort)
	}
	// Non-overridden fields should remain default
	if cfg.CooldownDurationMS != 5000 {
		t.Errorf("expected CooldownDurationMS=5000 (default), got %d", cfg.CooldownDurationMS)
	}
}

func TestLoadWithInvalidEnv(t *testing.T) {
	t.Setenv("MIN_PLAYERS", "invalid")
	t.Setenv("PLAYER_SPEED", "fast")

	cfg := Load()

	if cfg.MinPlayers != 2 {
		t.Errorf("expected MinPlayers=2 (default) with invalid env, got %d", cfg.MinPlayers)
	}
	if cfg.PlayerSpeed != 6 {
		t.Errorf("expected PlayerSpeed=6 (default) with invalid env, got %v", cfg.PlayerSpeed)
	}
}
