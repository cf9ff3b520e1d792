package main

import (
	"fmt"
	"strings"

	"github.com/bjaus/colfmt"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "COLFMT_"

// settings is the merged CLI configuration: defaults, then the config file,
// then COLFMT_* environment variables, then explicit flags.
type settings struct {
	Spacer   string   `koanf:"spacer"`
	Width    int      `koanf:"width"`
	Widths   []int    `koanf:"widths"`
	Align    []string `koanf:"align"`
	Overflow string   `koanf:"overflow"`
	YAML     bool     `koanf:"yaml"`
}

func defaultSettings() map[string]any {
	return map[string]any{
		"spacer":   colfmt.DefaultSpacer,
		"width":    0,
		"overflow": colfmt.OverflowTruncate.String(),
		"yaml":     false,
	}
}

func loadSettings(path string) (settings, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultSettings(), "."), nil); err != nil {
		return settings{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return settings{}, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return settings{}, fmt.Errorf("failed to load env vars: %w", err)
	}

	var s settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return settings{}, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return s, nil
}

// options converts the settings into render options. The width is resolved
// here so it can be logged.
func (s settings) options(width int) ([]colfmt.Option, error) {
	aligns := make([]colfmt.Alignment, len(s.Align))
	for i, name := range s.Align {
		a, err := colfmt.ParseAlignment(name)
		if err != nil {
			return nil, err
		}
		aligns[i] = a
	}
	overflow, err := colfmt.ParseOverflow(s.Overflow)
	if err != nil {
		return nil, err
	}
	return []colfmt.Option{
		colfmt.WithSpacer(s.Spacer),
		colfmt.WithWidth(width),
		colfmt.WithColumnWidths(s.Widths...),
		colfmt.WithAlignments(aligns...),
		colfmt.WithOverflow(overflow),
	}, nil
}
