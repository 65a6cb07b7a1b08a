package app

import (
	"flag"
	"strconv"
	"strings"

	"powder/internal/sims/powder"
)

// KVList collects repeatable key=value flag arguments.
type KVList []string

// String joins the collected pairs for flag reporting.
func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one key=value pair.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map splits the collected pairs into a map, skipping malformed entries.
func (l KVList) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		m[parts[0]] = parts[1]
	}
	return m
}

// Config represents the command-line parameters for the windowed host.
type Config struct {
	Width     int
	Height    int
	Scale     int
	TPS       int
	Seed      int64
	Scene     string
	Brush     int
	Overrides KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := powder.DefaultConfig()
	return &Config{
		Width:  def.Width,
		Height: def.Height,
		Scale:  3,
		TPS:    60,
		Seed:   def.Seed,
		Scene:  def.Scene,
		Brush:  1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.Scene, "scene", c.Scene, "starting field ("+strings.Join(powder.SceneNames(), ", ")+")")
	fs.IntVar(&c.Brush, "brush", c.Brush, "brush radius in cells")
	fs.Var(&c.Overrides, "set", "rule override in key=value form (repeatable)")
}

// SimConfig assembles the simulation configuration from the bound flags and
// any -set overrides.
func (c *Config) SimConfig() powder.Config {
	m := map[string]string{
		"w":     strconv.Itoa(c.Width),
		"h":     strconv.Itoa(c.Height),
		"seed":  strconv.FormatInt(c.Seed, 10),
		"scene": c.Scene,
	}
	for k, v := range c.Overrides.Map() {
		m[k] = v
	}
	return powder.FromMap(m)
}
