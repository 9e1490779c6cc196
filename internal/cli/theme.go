package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/go-theft-auto/overlay"
)

// ErrUnknownKeys is returned when a TOML file sets keys nothing reads.
var ErrUnknownKeys = errors.New("unknown keys")

// LoadTheme decodes a TOML theme over overlay.DefaultConfig, so a theme
// only needs the fields it changes:
//
//	bg = "#1a1a1acc"
//	panel_margin = 12
func LoadTheme(path string) (overlay.Config, error) {
	cfg := overlay.DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return overlay.Config{}, fmt.Errorf("theme %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return overlay.Config{}, fmt.Errorf("theme %s: %w", path, err)
	}
	return cfg, nil
}

// pairsFile is the layout of a panel file:
//
//	[[pair]]
//	name = "Source"
//	value = "shot_010.exr"
type pairsFile struct {
	Pairs []struct {
		Name  string `toml:"name"`
		Value string `toml:"value"`
	} `toml:"pair"`
}

// LoadPairs reads name/value pairs from a TOML panel file, in file order.
func LoadPairs(path string) ([]overlay.NameValuePair, error) {
	var f pairsFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("pairs %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("pairs %s: %w", path, err)
	}
	pairs := make([]overlay.NameValuePair, len(f.Pairs))
	for i, p := range f.Pairs {
		pairs[i] = overlay.NameValuePair{Name: p.Name, Value: p.Value}
	}
	return pairs, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("%w: %s", ErrUnknownKeys, strings.Join(names, ", "))
}
