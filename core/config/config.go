// Package config loads card filter configurations from YAML or JSON files.
// A configuration sets the parameters of the cost, version and leader slots
// of a card filter and optionally supplies the deck to filter.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/asaidimu/go-metafilter/core/card"
	"github.com/asaidimu/go-metafilter/core/filter"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation error.
var ErrInvalidConfig = errors.New("invalid config")

// ErrEmptyConfig is returned when the input holds no document at all.
var ErrEmptyConfig = errors.New("config is empty")

// Format is a configuration file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Config is the root of a configuration file.
type Config struct {
	Filter FilterConfig `yaml:"filter" json:"filter"`
	Cards  []CardConfig `yaml:"cards,omitempty" json:"cards,omitempty"`
}

// FilterConfig parameterizes the three filter slots. A nil Versions or
// Leaders list leaves that slot unfiltered; an empty but present list
// rejects every card.
type FilterConfig struct {
	Cost     *CostConfig `yaml:"cost,omitempty" json:"cost,omitempty"`
	Versions []int       `yaml:"versions,omitempty" json:"versions,omitempty"`
	Leaders  []int       `yaml:"leaders,omitempty" json:"leaders,omitempty"`
}

// CostConfig holds optional exclusive cost bounds.
type CostConfig struct {
	Min *float64 `yaml:"min,omitempty" json:"min,omitempty"`
	Max *float64 `yaml:"max,omitempty" json:"max,omitempty"`
}

// CardConfig describes one card of the deck.
type CardConfig struct {
	ID      int     `yaml:"id" json:"id"`
	Name    string  `yaml:"name" json:"name"`
	Cost    float64 `yaml:"cost" json:"cost"`
	Version int     `yaml:"version" json:"version"`
	Leader  int     `yaml:"leader" json:"leader"`
}

// Default returns the built-in configuration: versions 1 and 3, cost below
// 50, over the sample deck.
func Default() *Config {
	maxCost := 50.0
	return &Config{
		Filter: FilterConfig{
			Cost:     &CostConfig{Max: &maxCost},
			Versions: []int{1, 3},
		},
	}
}

// Load reads and parses a configuration file. The format is taken from the
// file extension.
func Load(path string) (*Config, error) {
	format := DetectFormat(path)
	if format == "" {
		return nil, fmt.Errorf("unsupported config file extension %q", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data, format)
}

// DetectFormat returns the format for a file extension, or "" if unknown.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return ""
	}
}

// Parse decodes and validates a configuration. The input must hold exactly
// one document, and unknown fields are rejected.
func Parse(data []byte, format Format) (*Config, error) {
	var dec decoder
	switch format {
	case FormatJSON:
		jd := json.NewDecoder(bytes.NewReader(data))
		jd.DisallowUnknownFields()
		dec = jd
	case FormatYAML:
		yd := yaml.NewDecoder(bytes.NewReader(data))
		yd.KnownFields(true)
		dec = yd
	default:
		return nil, fmt.Errorf("unsupported config format: %q", format)
	}

	var cfg Config
	if err := decodeOne(dec, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type decoder interface {
	Decode(v any) error
}

// decodeOne decodes the first document into cfg and requires the stream to
// end right after it.
func decodeOne(dec decoder, cfg *Config) error {
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to parse config: %w", ErrEmptyConfig)
		}
		return fmt.Errorf("failed to parse config: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return errors.New("failed to parse config: unexpected trailing data")
	}
	return nil
}

// Validate checks that every card has a name and that card IDs are unique.
// Inverted cost bounds are valid; they produce a filter that matches nothing.
func (c *Config) Validate() error {
	seen := make(map[int]int, len(c.Cards))
	for i, cc := range c.Cards {
		if cc.Name == "" {
			return fmt.Errorf("%w: card %d: name is required", ErrInvalidConfig, i)
		}
		if prev, ok := seen[cc.ID]; ok {
			return fmt.Errorf("%w: card %d: id %d already used by card %d", ErrInvalidConfig, i, cc.ID, prev)
		}
		seen[cc.ID] = i
	}
	return nil
}

// BuildFilter builds the frozen card filter described by the configuration, with
// slots in the order cost, version, leader.
func (c *Config) BuildFilter() *filter.Meta[*card.Card] {
	cost := card.NewCostFilter()
	if b := c.Filter.Cost; b != nil {
		if b.Min != nil {
			cost.MinCost(*b.Min)
		}
		if b.Max != nil {
			cost.MaxCost(*b.Max)
		}
	}

	var versions filter.Predicate[*card.Card] = card.EmptyFilter{}
	if c.Filter.Versions != nil {
		versions = card.NewVersionFilter(c.Filter.Versions...)
	}

	var leaders filter.Predicate[*card.Card] = card.EmptyFilter{}
	if c.Filter.Leaders != nil {
		leaders = card.NewLeaderFilter(c.Filter.Leaders...)
	}

	return filter.All[*card.Card](cost, versions, leaders)
}

// Deck returns the configured cards, or card.SampleDeck if none are listed.
func (c *Config) Deck() card.List {
	if len(c.Cards) == 0 {
		return card.SampleDeck()
	}
	deck := make(card.List, 0, len(c.Cards))
	for _, cc := range c.Cards {
		deck = append(deck, card.New(cc.ID, cc.Name, cc.Cost, cc.Version, cc.Leader))
	}
	return deck
}
