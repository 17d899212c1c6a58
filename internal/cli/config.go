package cli

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/shapes/internal/paths"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "SHAPES"

	cfgKeyOutput  = "output"
	cfgKeyLogMode = "log_mode"
	cfgKeyVerbose = "verbose"

	defaultOutput  = outputText
	defaultLogMode = "dev"
)

// Output formats.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

var errUnknownOutput = errors.New("unknown output format")

// settings is the resolved configuration for one invocation.
type settings struct {
	ConfigDir  string
	ConfigFile string
	Output     string
	LogMode    string
	Verbose    bool
}

// loadSettings reads config.yaml from the resolved config directory using
// Viper, layering SHAPES_* environment variables and command-line flags on
// top. A missing config.yaml is not an error.
func loadSettings(cmd *cobra.Command, configDirFlag string) (settings, error) {
	configDir, err := paths.ResolveConfigDir(configDirFlag)
	if err != nil {
		return settings{}, fmt.Errorf("resolve config dir: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyOutput, defaultOutput)
	v.SetDefault(cfgKeyLogMode, defaultLogMode)
	v.SetDefault(cfgKeyVerbose, false)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	for _, key := range []string{cfgKeyOutput, cfgKeyVerbose} {
		if err := v.BindPFlag(key, lookupFlag(cmd, key)); err != nil {
			return settings{}, fmt.Errorf("bind %s flag: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	return settings{
		ConfigDir:  configDir,
		ConfigFile: v.ConfigFileUsed(),
		Output:     v.GetString(cfgKeyOutput),
		LogMode:    v.GetString(cfgKeyLogMode),
		Verbose:    v.GetBool(cfgKeyVerbose),
	}, nil
}

// lookupFlag finds a flag on cmd, falling back to the root's persistent set.
func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f
	}
	return cmd.Root().PersistentFlags().Lookup(name)
}

func (s settings) validate() error {
	switch s.Output {
	case outputText, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("%w %q (valid: %s, %s, %s)", errUnknownOutput, s.Output, outputText, outputJSON, outputYAML)
	}
}
