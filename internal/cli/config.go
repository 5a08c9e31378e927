package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/geograph/pkg/cache"
	"github.com/matzehuels/geograph/pkg/errors"
	"github.com/matzehuels/geograph/pkg/layout"
)

// Config is the optional TOML configuration file.
//
//	[layout]
//	nodes_in_circle = 25
//	max_rounds = 0
//
//	[cache]
//	enabled = true
//	ttl = "10m"
//	dir = "/tmp/geograph-cache"
type Config struct {
	Layout layout.Options `toml:"layout"`
	Cache  CacheConfig    `toml:"cache"`
}

// CacheConfig configures the result cache.
type CacheConfig struct {
	Enabled bool     `toml:"enabled"`
	TTL     duration `toml:"ttl"`
	Dir     string   `toml:"dir"`
}

// duration decodes TOML strings such as "90s" or "10m".
type duration struct{ time.Duration }

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() Config {
	return Config{
		Layout: layout.DefaultOptions(),
		Cache: CacheConfig{
			Enabled: true,
			TTL:     duration{cache.DefaultTTL},
		},
	}
}

// LoadConfig reads path on top of DefaultConfig. Missing or zero values
// keep their defaults; unknown keys are logged and ignored.
func LoadConfig(path string, logger *log.Logger) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		logger.Warn("unknown config keys", "path", path, "keys", strings.Join(keys, ", "))
	}

	cfg.Layout = cfg.Layout.WithDefaults()
	if cfg.Cache.TTL.Duration < 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidInput, "config %s: cache.ttl must not be negative", path)
	}
	if cfg.Cache.TTL.Duration == 0 {
		cfg.Cache.TTL.Duration = cache.DefaultTTL
	}
	return cfg, nil
}

func (c Config) String() string {
	o := c.Layout
	return fmt.Sprintf("layout(circle=%d mx=%g my=%g xaxis=%d div=%g growth=%g rounds=%d) cache(enabled=%t ttl=%s dir=%q)",
		o.NodesInCircle, o.MultiplierX, o.MultiplierY, o.NodesInXAxis, o.RadiusDivider, o.RadiusGrowth, o.MaxRounds,
		c.Cache.Enabled, c.Cache.TTL.Duration, c.Cache.Dir)
}
