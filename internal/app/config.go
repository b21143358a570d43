package app

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config represents the command-line parameters shared by the binaries.
type Config struct {
	Sim    string
	Layout string
	Scale  int
	TPS    int
	Seed   int64

	Color   bool
	Animate bool
	PNG     string
	EnvFile string
	Verbose bool

	Set optionList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "vacuum", Scale: 32, TPS: 8, Seed: 1337, Color: true, Animate: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.Layout, "layout", c.Layout, "room layout (demo, smart, basic, random)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.BoolVar(&c.Color, "color", c.Color, "colorize console output")
	fs.BoolVar(&c.Animate, "animate", c.Animate, "redraw the room after every step")
	fs.StringVar(&c.PNG, "png", c.PNG, "write a PNG snapshot of the final room to this path")
	fs.StringVar(&c.EnvFile, "env", c.EnvFile, "read sim options from a KEY=value file")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log every visit")
	fs.Var(&c.Set, "set", "sim option as key=value (repeatable)")
}

// SimOptions merges the sources of sim options into the flag-style map the
// sim factories take. Later sources win: env file, then -set, then the
// dedicated -layout and -seed flags.
func (c *Config) SimOptions() (map[string]string, error) {
	opts := map[string]string{}
	if c.EnvFile != "" {
		env, err := godotenv.Read(c.EnvFile)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", c.EnvFile, err)
		}
		for k, v := range env {
			opts[strings.ToLower(k)] = v
		}
	}
	for _, kv := range c.Set {
		opts[kv.key] = kv.value
	}
	if c.Layout != "" {
		opts["layout"] = c.Layout
	}
	opts["seed"] = fmt.Sprint(c.Seed)
	return opts, nil
}

type option struct {
	key   string
	value string
}

// optionList collects repeated -set key=value flags.
type optionList []option

func (l *optionList) String() string {
	if l == nil {
		return ""
	}
	parts := make([]string, len(*l))
	for i, o := range *l {
		parts[i] = o.key + "=" + o.value
	}
	return strings.Join(parts, ",")
}

func (l *optionList) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	key = strings.ToLower(strings.TrimSpace(key))
	if !ok || key == "" {
		return fmt.Errorf("option %q is not key=value", s)
	}
	*l = append(*l, option{key: key, value: strings.TrimSpace(value)})
	return nil
}

// SetupLogging returns a debug-level text logger on stderr when -v is set and
// nil otherwise, which core.SetLogger treats as silent.
func (c *Config) SetupLogging() *slog.Logger {
	if !c.Verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
