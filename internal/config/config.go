package config

import (
	"bytes"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

const (
	defTickInterval = time.Second
	defLocale       = "en"
	defTitle        = "ELITE CONSOLE v1.0"
	defPrompt       = ">"

	defTerminalWidth  = 80
	defTerminalHeight = 24

	defLogLevel = "INFO"

	EnvVarPrefix = "EC"
)

var CLIConfig = DefaultConfig()
var replacer = strings.NewReplacer(".", "_")

type Config struct {
	Console  *Console  `mapstructure:"console" yaml:"console"`
	Terminal *Terminal `mapstructure:"terminal" yaml:"terminal"`
	Log      *Log      `mapstructure:"log" yaml:"log"`
}

type Console struct {
	TickInterval time.Duration `mapstructure:"tick_interval" yaml:"tick_interval"`
	Locale       string        `mapstructure:"locale" yaml:"locale"`
	Title        string        `mapstructure:"title" yaml:"title"`
	Prompt       string        `mapstructure:"prompt" yaml:"prompt"`
}

type Terminal struct {
	Width  int `mapstructure:"width" yaml:"width"`
	Height int `mapstructure:"height" yaml:"height"`
}

type Log struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

func DefaultConfig() *Config {
	return &Config{
		Console: &Console{
			TickInterval: defTickInterval,
			Locale:       defLocale,
			Title:        defTitle,
			Prompt:       defPrompt,
		},
		Terminal: &Terminal{
			Width:  defTerminalWidth,
			Height: defTerminalHeight,
		},
		Log: &Log{
			Level: defLogLevel,
		},
	}
}

// NewConfig loads defaults, then cfgFile if it names a readable file, then
// EC_* environment overrides, into CLIConfig.
func NewConfig(cfgFile string) error {
	c, err := Load(cfgFile)
	if err != nil {
		return err
	}
	CLIConfig = c
	return nil
}

func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	cfg := DefaultConfig()

	// set default values in viper.
	// Viper needs to know if a key exists in order to override it.
	// https://github.com/spf13/viper/issues/188
	b, err := yaml.Marshal(defaultsForViper())
	if err != nil {
		return nil, fmt.Errorf("marshal defaults: %w", err)
	}
	v.SetConfigType("yaml")
	if err := v.MergeConfig(bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("merge defaults: %w", err)
	}

	if cfgFile != "" {
		if fi, err := os.Stat(cfgFile); err == nil {
			if fi.IsDir() {
				fmt.Fprintf(os.Stderr, "Config file points to a directory, not a file [%s]\n", cfgFile)
			} else {
				v.SetConfigFile(cfgFile)
				if err := v.MergeInConfig(); err != nil {
					return nil, fmt.Errorf("parse config file %s: %w", cfgFile, err)
				}
			}
		} else {
			fmt.Fprintf(os.Stderr, "No config file found [%s]: %v\n", cfgFile, err)
		}
	}

	// Use environment variables as final override
	v.SetEnvPrefix(EnvVarPrefix)
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()
	if err := bindVars(v, reflect.TypeOf(*cfg), ""); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// defaultsForViper renders durations as strings so that yaml and env
// values decode the same way.
func defaultsForViper() map[string]interface{} {
	d := DefaultConfig()
	return map[string]interface{}{
		"console": map[string]interface{}{
			"tick_interval": d.Console.TickInterval.String(),
			"locale":        d.Console.Locale,
			"title":         d.Console.Title,
			"prompt":        d.Console.Prompt,
		},
		"terminal": d.Terminal,
		"log":      d.Log,
	}
}

func bindVars(v *viper.Viper, t reflect.Type, prefix string) error {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}
		key := prefix + tag
		switch {
		case field.Type.Kind() == reflect.Struct:
			if err := bindVars(v, field.Type, key+"."); err != nil {
				return err
			}
		case field.Type.Kind() == reflect.Ptr && field.Type.Elem().Kind() == reflect.Struct:
			if err := bindVars(v, field.Type.Elem(), key+"."); err != nil {
				return err
			}
		default:
			if err := v.BindEnv(key); err != nil {
				return fmt.Errorf("bind env %s: %w", key, err)
			}
		}
	}
	return nil
}

// EnvName returns the environment variable that overrides a config key.
func EnvName(key string) string {
	return EnvVarPrefix + "_" + strings.ToUpper(replacer.Replace(key))
}
