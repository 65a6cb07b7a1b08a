package powder

import "strconv"

// Config controls world dimensions, seeding and rule toggles.
type Config struct {
	Width  int
	Height int

	Seed int64

	// Scene names the starting field Reset builds. Unknown names leave
	// the grid empty, which is also what "sandbox" means.
	Scene string

	Rules Rules
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  320,
		Height: 240,
		Seed:   1337,
		Scene:  "sandbox",
		Rules:  DefaultRules(),
	}
}

// FromMap populates a config from flag-style key/value pairs.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["scene"]; ok && v != "" {
		c.Scene = v
	}
	if v, ok := cfg["alternate_scan"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Rules.AlternateColumns = parsed
		}
	}
	if v, ok := cfg["sink_through_water"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Rules.Behaviors[Sand].Sinks = parsed
			c.Rules.Behaviors[Gravel].Sinks = parsed
		}
	}
	if v, ok := cfg["sand_tumbles"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Rules.Behaviors[Sand].Tumbles = parsed
		}
	}
	if v, ok := cfg["surface_skim"]; ok {
		// The older water variant: the far hop slides along the source
		// row instead of dropping into the row below.
		if parsed, err := strconv.ParseBool(v); err == nil && len(c.Rules.Hops) > 0 {
			c.Rules.Hops[len(c.Rules.Hops)-1].Drop = !parsed
		}
	}
	return c
}
