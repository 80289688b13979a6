package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/orderform/internal/orderform"
)

// Config holds application configuration.
type Config struct {
	Log     LogConfig           `mapstructure:"log"`
	UI      UIConfig            `mapstructure:"ui"`
	Output  OutputConfig        `mapstructure:"output"`
	Options OptionsConfig       `mapstructure:"options"`
	Keys    map[string][]string `mapstructure:"keys"`
}

// LogConfig holds zap settings. Logs go to a file since the terminal belongs to the UI.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Path   string `mapstructure:"path"`
	Format string `mapstructure:"format"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	ThemePath string `mapstructure:"theme_path"`
}

// OutputConfig controls how the submitted snapshot is dumped.
type OutputConfig struct {
	SnapshotFormat string `mapstructure:"snapshot_format"`
}

// Option is a selectable value with its display label.
type Option struct {
	Value string `mapstructure:"value"`
	Label string `mapstructure:"label"`
}

// OptionsConfig is the catalog offered by the form's pickers.
type OptionsConfig struct {
	MajorFabrics []string `mapstructure:"major_fabrics"`
	Units        []string `mapstructure:"units"`
	Processes    []string `mapstructure:"processes"`
	Colors       []string `mapstructure:"colors"`
	Stages       []string `mapstructure:"stages"`
	ChinaFabrics []Option `mapstructure:"china_fabrics"`
}

// DefaultOptions returns the built-in catalog.
func DefaultOptions() OptionsConfig {
	return OptionsConfig{
		MajorFabrics: []string{orderform.DefaultMajorFabric, "Cotton", "Polyester", "Viscose", "Denim", "Linen"},
		Units:        []string{"meters", "kg", "yards", "pieces"},
		Processes:    []string{"Dyeing", "Printing", "Washing", "Embroidery", "Finishing"},
		Colors:       []string{"Black", "White", "Navy", "Red", "Olive", "Beige"},
		Stages:       []string{"Cutting", "Stitching", "Washing", "Finishing", "Packing"},
		ChinaFabrics: []Option{
			{Value: "Fabric1", Label: "Fabric 1"},
			{Value: "Fabric2", Label: "Fabric 2"},
			{Value: "Fabric3", Label: "Fabric 3"},
		},
	}
}

// Dir returns the configuration directory.
func Dir() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "orderform")
}

// Load reads configuration from file and env. Env var overrides use prefix ORDERFORM_.
func Load() (Config, error) {
	v := viper.New()

	defOpts := DefaultOptions()
	chinaDefaults := make([]map[string]any, 0, len(defOpts.ChinaFabrics))
	for _, o := range defOpts.ChinaFabrics {
		chinaDefaults = append(chinaDefaults, map[string]any{"value": o.Value, "label": o.Label})
	}

	// default values
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", defaultLogPath())
	v.SetDefault("log.format", "json")
	v.SetDefault("ui.theme_path", filepath.Join(Dir(), "theme.toml"))
	v.SetDefault("output.snapshot_format", orderform.FormatJSON)
	v.SetDefault("options.major_fabrics", defOpts.MajorFabrics)
	v.SetDefault("options.units", defOpts.Units)
	v.SetDefault("options.processes", defOpts.Processes)
	v.SetDefault("options.colors", defOpts.Colors)
	v.SetDefault("options.stages", defOpts.Stages)
	v.SetDefault("options.china_fabrics", chinaDefaults)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("ORDERFORM_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(Dir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ORDERFORM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing file is fine; a broken one is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return normalize(c)
}

func normalize(c Config) (Config, error) {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	if c.Log.Format != "console" {
		c.Log.Format = "json"
	}

	c.Output.SnapshotFormat = strings.ToLower(strings.TrimSpace(c.Output.SnapshotFormat))
	if c.Output.SnapshotFormat == "" {
		c.Output.SnapshotFormat = orderform.FormatJSON
	}
	if !slices.Contains(orderform.Formats(), c.Output.SnapshotFormat) {
		return Config{}, fmt.Errorf("output.snapshot_format %q: %w", c.Output.SnapshotFormat, orderform.ErrUnsupportedFormat)
	}

	def := DefaultOptions()
	c.Options.MajorFabrics = orDefault(c.Options.MajorFabrics, def.MajorFabrics)
	c.Options.Units = orDefault(c.Options.Units, def.Units)
	c.Options.Processes = orDefault(c.Options.Processes, def.Processes)
	c.Options.Colors = orDefault(c.Options.Colors, def.Colors)
	c.Options.Stages = orDefault(c.Options.Stages, def.Stages)

	china := make([]Option, 0, len(c.Options.ChinaFabrics))
	for _, o := range c.Options.ChinaFabrics {
		o.Value = strings.TrimSpace(o.Value)
		if o.Value == "" {
			continue
		}
		if strings.TrimSpace(o.Label) == "" {
			o.Label = o.Value
		}
		china = append(china, o)
	}
	if len(china) == 0 {
		china = def.ChinaFabrics
	}
	c.Options.ChinaFabrics = china

	if c.Keys == nil {
		c.Keys = map[string][]string{}
	}
	return c, nil
}

func orDefault(values, def []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return slices.Clone(def)
	}
	return out
}

func defaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "orderform", "orderform.log")
}
