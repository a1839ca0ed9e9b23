package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug         = "debug"
	ConfigTraceSearch   = "trace-search"
	ConfigInitialLayout = "initial-layout"
	ConfigHistoryFile   = "history-file"
	ConfigCacheMoves    = "cache-moves"
	ConfigCacheSize     = "cache-size"
	ConfigCPUProfile    = "cpu-profile"
	ConfigMemProfile    = "mem-profile"
)

// Config holds the settings of the draughts tools. Settings come from
// command-line flags first, then DRAUGHTS_* environment variables, then
// the defaults below.
type Config struct {
	*viper.Viper
	args []string
}

func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigTraceSearch, false)
	c.SetDefault(ConfigInitialLayout, "start")
	c.SetDefault(ConfigHistoryFile, "/tmp/draughts_readline.tmp")
	c.SetDefault(ConfigCacheMoves, true)
	c.SetDefault(ConfigCacheSize, 1<<14)
	c.SetDefault(ConfigCPUProfile, "")
	c.SetDefault(ConfigMemProfile, "")
}

// Load reads the settings from args and the environment.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	c.setDefaults()
	c.SetEnvPrefix("draughts")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	fs := pflag.NewFlagSet("draughts", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.Bool(ConfigTraceSearch, false, "log every step of the capture search (very verbose)")
	fs.String(ConfigInitialLayout, "start", "layout the shell starts with: start, empty, or a compact position")
	fs.String(ConfigHistoryFile, "/tmp/draughts_readline.tmp", "file holding the shell history")
	fs.Bool(ConfigCacheMoves, true, "cache generated moves per position")
	fs.Int(ConfigCacheSize, 1<<14, "maximum number of cached results")
	fs.String(ConfigCPUProfile, "", "file to write a CPU profile to")
	fs.String(ConfigMemProfile, "", "file to write a memory profile to")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()
	// Only flags that were actually given override env and defaults.
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		err = c.BindPFlag(f.Name, f)
	})
	return err
}

// Args returns the arguments left over after the flags, if any.
func (c *Config) Args() []string {
	return c.args
}

// SanitizedSettings returns the settings, for display purposes.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
