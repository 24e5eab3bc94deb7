package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-yaml/yaml"
	"github.com/joho/godotenv"
)

// Duration wraps time.Duration so YAML values can be written either as
// strings like "500ms" or as plain nanosecond integers.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("parse duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}
	var n int64
	if err := unmarshal(&n); err != nil {
		return err
	}
	*d = Duration(n)
	return nil
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// Config holds the simulation parameters: the building's shape and the
// pacing of the lift control loops.
type Config struct {
	BottomFloor     int      `yaml:"BottomFloor"`
	TopFloor        int      `yaml:"TopFloor"`
	Lifts           int      `yaml:"Lifts"`
	FloorTravel     Duration `yaml:"FloorTravel"`
	DoorHold        Duration `yaml:"DoorHold"`
	PollInterval    Duration `yaml:"PollInterval"`
	TrafficInterval Duration `yaml:"TrafficInterval"`
}

// Default is an eleven-storey building with five lifts.
func Default() Config {
	return Config{
		BottomFloor:     0,
		TopFloor:        10,
		Lifts:           5,
		FloorTravel:     Duration(500 * time.Millisecond),
		DoorHold:        Duration(750 * time.Millisecond),
		PollInterval:    Duration(100 * time.Millisecond),
		TrafficInterval: Duration(2 * time.Second),
	}
}

// Load starts from the defaults, decodes the YAML file at path when
// one is given, applies any overrides found in the .env file at
// envPath (missing files are skipped), and validates the result.
func Load(path, envPath string) (Config, error) {
	c := Default()

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return c, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&c); err != nil {
			return c, fmt.Errorf("decode config: %w", err)
		}
	}

	if envPath != "" {
		if env, err := godotenv.Read(envPath); err == nil {
			applyEnv(&c, env)
		}
	}

	return c, c.Validate()
}

func applyEnv(c *Config, env map[string]string) {
	setInt := func(key string, dst *int) {
		if v, ok := env[key]; ok {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}
	setDuration := func(key string, dst *Duration) {
		if v, ok := env[key]; ok {
			if d, err := time.ParseDuration(v); err == nil {
				*dst = Duration(d)
			}
		}
	}

	setInt("BOTTOM_FLOOR", &c.BottomFloor)
	setInt("TOP_FLOOR", &c.TopFloor)
	setInt("LIFTS", &c.Lifts)
	setDuration("FLOOR_TRAVEL", &c.FloorTravel)
	setDuration("DOOR_HOLD", &c.DoorHold)
	setDuration("POLL_INTERVAL", &c.PollInterval)
	setDuration("TRAFFIC_INTERVAL", &c.TrafficInterval)
}

// Validate rejects configurations the core cannot run with.
func (c Config) Validate() error {
	if c.BottomFloor > c.TopFloor {
		return fmt.Errorf("bottom floor %d above top floor %d", c.BottomFloor, c.TopFloor)
	}
	if c.Lifts < 1 {
		return fmt.Errorf("need at least one lift, got %d", c.Lifts)
	}
	if c.FloorTravel <= 0 || c.DoorHold <= 0 || c.PollInterval <= 0 || c.TrafficInterval <= 0 {
		return fmt.Errorf("all durations must be positive")
	}
	return nil
}
