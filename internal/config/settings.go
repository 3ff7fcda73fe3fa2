package config

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix namespaces the environment variables read by viper,
	// e.g. SCAFFOLD_DIR.
	EnvPrefix = "SCAFFOLD"

	KeyDir     = "dir"
	KeyVerbose = "verbose"

	// DefaultDir roots the footprint in the current working directory.
	DefaultDir = "."
)

// Settings holds the runtime options resolved from flags and environment.
// The list of target paths is not among them: it is fixed at build time.
type Settings struct {
	Dir     string
	Verbose bool
}

// Load resolves Settings from the given flag set, falling back to
// SCAFFOLD_* environment variables and then to defaults. A flag explicitly
// set on the command line wins over the environment.
func Load(flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault(KeyDir, DefaultDir)
	v.SetDefault(KeyVerbose, false)

	if flags != nil {
		for _, key := range []string{KeyDir, KeyVerbose} {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Settings{}, err
				}
			}
		}
	}

	s := Settings{
		Dir:     v.GetString(KeyDir),
		Verbose: v.GetBool(KeyVerbose),
	}
	if s.Dir == "" {
		s.Dir = DefaultDir
	}
	return s, nil
}
