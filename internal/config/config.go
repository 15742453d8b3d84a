package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "EXAMSEAT"

// Keys understood by Load. The environment variable of a key is
// EXAMSEAT_<KEY> in upper case.
const (
	KeyDB          = "db"
	KeyBuffer      = "buffer"
	KeyMode        = "mode"
	KeyOutputDir   = "output_dir"
	KeyMetricsFile = "metrics_file"
	KeyLogLevel    = "log_level"
	KeyLogFormat   = "log_format"
)

// flagKeys maps command-line flag names onto config keys.
var flagKeys = map[string]string{
	"db":           KeyDB,
	"buffer":       KeyBuffer,
	"mode":         KeyMode,
	"out":          KeyOutputDir,
	"metrics-file": KeyMetricsFile,
	"log-level":    KeyLogLevel,
	"log-format":   KeyLogFormat,
}

// Config is the resolved configuration of one examseat invocation. Buffer,
// Mode and OutputDir seed allocate and rooms; DB locates the run history.
type Config struct {
	DB          string `validate:"required"`
	Buffer      int    `validate:"gte=0"`
	Mode        string `validate:"oneof=dense sparse"`
	OutputDir   string `validate:"required"`
	MetricsFile string
	Log         LogConfig
}

// LogConfig selects the zap level and encoder built by logging.New.
type LogConfig struct {
	Level string `validate:"oneof=debug info warn error"`
	// Format is console or json. Empty picks console on a terminal.
	Format string `validate:"omitempty,oneof=console json"`
}

type options struct {
	envFile string
	flags   []*pflag.FlagSet
}

// Option customizes where Load reads from.
type Option func(*options)

// WithEnvFile loads variables from path instead of ./.env.
func WithEnvFile(path string) Option {
	return func(o *options) { o.envFile = path }
}

// WithFlags binds the known flags of fs over their config keys. A flag
// only wins when it was set on the command line.
func WithFlags(fs *pflag.FlagSet) Option {
	return func(o *options) { o.flags = append(o.flags, fs) }
}

// Load resolves the configuration from, in increasing priority: defaults,
// the .env file, the environment and command-line flags.
func Load(opts ...Option) (*Config, error) {
	o := options{envFile: ".env"}
	for _, opt := range opts {
		opt(&o)
	}

	if err := godotenv.Load(o.envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading %s: %w", o.envFile, err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	for _, fs := range o.flags {
		var bindErr error
		fs.VisitAll(func(f *pflag.Flag) {
			key, ok := flagKeys[f.Name]
			if !ok || bindErr != nil {
				return
			}
			bindErr = v.BindPFlag(key, f)
		})
		if bindErr != nil {
			return nil, fmt.Errorf("binding flags: %w", bindErr)
		}
	}

	cfg := &Config{
		DB:          v.GetString(KeyDB),
		Buffer:      v.GetInt(KeyBuffer),
		Mode:        strings.ToLower(strings.TrimSpace(v.GetString(KeyMode))),
		OutputDir:   v.GetString(KeyOutputDir),
		MetricsFile: v.GetString(KeyMetricsFile),
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString(KeyLogLevel)),
			Format: strings.ToLower(v.GetString(KeyLogFormat)),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyDB, defaultDBPath())
	v.SetDefault(KeyBuffer, 0)
	v.SetDefault(KeyMode, "dense")
	v.SetDefault(KeyOutputDir, "output")
	v.SetDefault(KeyMetricsFile, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "")
}

// defaultDBPath is ~/.examseat/examseat.db, or relative to the working
// directory when there is no home directory.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".examseat", "examseat.db")
	}
	return filepath.Join(home, ".examseat", "examseat.db")
}
