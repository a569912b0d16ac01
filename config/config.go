// Package config holds the dashboard's settings. They come from an optional YAML file, then
// the environment, then command line flags (applied by the caller), in increasing priority.
package config

import(
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	ldb "github.com/skypies/launchdb"
)

const(
	DefaultPort  = 8050
	DefaultTitle = "SpaceX Launch Records Dashboard"
	DefaultData  = "spacex_launch_dash.csv"
)

type Mark struct {
	Value float64 `yaml:"value"`
	Label string  `yaml:"label"`
}

type Slider struct {
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Step  float64 `yaml:"step"`
	Marks []Mark  `yaml:"marks"`
}

type GCP struct {
	Project         string `yaml:"project"`
	CredentialsFile string `yaml:"credentials_file"`
}

type Config struct {
	Data      []string `yaml:"data"`    // local paths (maybe .gz), gs://bucket/obj, or bq://[proj.]dataset.table
	Port      int      `yaml:"port"`
	Title     string   `yaml:"title"`
	LogFormat string   `yaml:"log_format"` // console or json
	LogLevel  string   `yaml:"log_level"`
	Slider    Slider   `yaml:"slider"`
	GCP       GCP      `yaml:"gcp"`
}

func DefaultSlider() Slider {
	return Slider{
		Min: 0,
		Max: 10000,
		Step: 1000,
		Marks: []Mark{
			{2500, "2500 (Kg)"},
			{5000, "5000 (Kg)"},
			{7500, "7500 (Kg)"},
		},
	}
}

func Default() Config {
	return Config{
		Data: []string{DefaultData},
		Port: DefaultPort,
		Title: DefaultTitle,
		LogFormat: "console",
		LogLevel: "info",
		Slider: DefaultSlider(),
	}
}

// {{{ Load

// Load reads the YAML file at path over the defaults, then applies the environment. A blank
// path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data,err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
		cfg.resolvePaths(filepath.Dir(path))
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// Relative local data paths in a config file are relative to that file.
func (c *Config)resolvePaths(dir string) {
	for i,d := range c.Data {
		if strings.Contains(d, "://") || filepath.IsAbs(d) { continue }
		c.Data[i] = filepath.Join(dir, d)
	}
}

// }}}
// {{{ c.ApplyEnv

// PORT is what Cloud Run and App Engine set; the GOOGLE_CLOUD_PROJECT likewise.
func (c *Config)ApplyEnv(getenv func(string) string) error {
	if p := getenv("PORT"); p != "" {
		port,err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("PORT %q: %w", p, err)
		}
		c.Port = port
	}
	if c.GCP.Project == "" {
		c.GCP.Project = getenv("GOOGLE_CLOUD_PROJECT")
	}
	if d := getenv("LAUNCHDB_DATA"); d != "" {
		c.Data = strings.Split(d, ",")
	}
	return nil
}

// }}}
// {{{ c.Validate

func (c Config)Validate() error {
	if len(c.Data) == 0 {
		return fmt.Errorf("config: no data sources")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: bad port %d", c.Port)
	}
	s := c.Slider
	if s.Max <= s.Min {
		return fmt.Errorf("config: slider max %.0f must be above min %.0f", s.Max, s.Min)
	}
	if s.Step <= 0 {
		return fmt.Errorf("config: slider step must be positive")
	}
	return nil
}

// }}}

func (c Config)Addr() string { return fmt.Sprintf(":%d", c.Port) }

func (s Slider)Bounds() ldb.PayloadRange { return ldb.PayloadRange{Lo:s.Min, Hi:s.Max} }

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
