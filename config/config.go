package config

import (
	"encoding/json"
	"log"
	"os"
	"strconv"
)

// Config holds all configurable game parameters.
type Config struct {
	MinPlayers int `json:"min_players"`

	// Arena bounds; positions are clamped into [Negative, Positive] on each axis.
	NegativeXThreshold int `json:"negative_x_threshold"`
	PositiveXThreshold int `json:"positive_x_threshold"`
	NegativeYThreshold int `json:"negative_y_threshold"`
	PositiveYThreshold int `json:"positive_y_threshold"`

	BoostCap   float64 `json:"boost_cap"`
	BoostRegen float64 `json:"boost_regen"` // per tick, applied even while frozen
	BoostDrain float64 `json:"boost_drain"` // per boosted tick

	PlayerSize         float64 `json:"player_size"`
	PlayerSpeed        float64 `json:"player_speed"`
	PlayerSpeedBoosted float64 `json:"player_speed_boosted"`

	CooldownDurationMS int `json:"cooldown_duration_ms"`
	PlayingDurationMS  int `json:"playing_duration_ms"`

	TickRateMS    int `json:"tick_rate_ms"`
	MaxNameLength int `json:"max_name_length"`
	WSPort        int `json:"ws_port"`
}

// Defaults returns a Config with all default values.
func Defaults() *Config {
	return &Config{
		MinPlayers:         2,
		NegativeXThreshold: -1000,
		PositiveXThreshold: 1000,
		NegativeYThreshold: -1000,
		PositiveYThreshold: 1000,
		BoostCap:           100,
		BoostRegen:         1,
		BoostDrain:         3,
		PlayerSize:         40,
		PlayerSpeed:        6,
		PlayerSpeedBoosted: 12,
		CooldownDurationMS: 5000,
		PlayingDurationMS:  60000,
		TickRateMS:         33,
		MaxNameLength:      16,
		WSPort:             8080,
	}
}

// Load reads configuration from an optional config.json file,
// then applies environment variable overrides. Fields not set
// in either source retain their default values.
func Load() *Config {
	cfg := Defaults()

	if f, err := os.Open("config.json"); err == nil {
		defer f.Close()
		if err := json.NewDecoder(f).Decode(cfg); err != nil {
			log.Printf("Warning: failed to parse config.json: %v", err)
		}
	}

	overrideInt(&cfg.MinPlayers, "MIN_PLAYERS")
	overrideInt(&cfg.NegativeXThreshold, "NEGATIVE_X_THRESHOLD")
	overrideInt(&cfg.PositiveXThreshold, "POSITIVE_X_THRESHOLD")
	overrideInt(&cfg.NegativeYThreshold, "NEGATIVE_Y_THRESHOLD")
	overrideInt(&cfg.PositiveYThreshold, "POSITIVE_Y_THRESHOLD")
	overrideFloat(&cfg.BoostCap, "BOOST_CAP")
	overrideFloat(&cfg.BoostRegen, "BOOST_REGEN")
	overrideFloat(&cfg.BoostDrain, "BOOST_DRAIN")
	overrideFloat(&cfg.PlayerSize, "PLAYER_SIZE")
	overrideFloat(&cfg.PlayerSpeed, "PLAYER_SPEED")
	overrideFloat(&cfg.PlayerSpeedBoosted, "PLAYER_SPEED_BOOSTED")
	overrideInt(&cfg.CooldownDurationMS, "COOLDOWN_DURATION_MS")
	overrideInt(&cfg.PlayingDurationMS, "PLAYING_DURATION_MS")
	overrideInt(&cfg.TickRateMS, "TICK_RATE_MS")
	overrideInt(&cfg.MaxNameLength, "MAX_NAME_LENGTH")
	overrideInt(&cfg.WSPort, "WS_PORT")

	return cfg
}

func overrideInt(field *int, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			*field = n
		} else {
			log.Printf("Warning: invalid value for %s: %q", envKey, val)
		}
	}
}

func overrideFloat(field *float64, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			*field = f
		} else {
			log.Printf("Warning: invalid value for %s: %q", envKey, val)
		}
	}
}
