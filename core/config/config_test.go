package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/asaidimu/go-metafilter/core/card"
	"github.com/asaidimu/go-metafilter/core/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apply(cfg *Config) []int {
	var out []*card.Card
	filter.Apply(cfg.Deck(), filter.Predicate[*card.Card](cfg.BuildFilter()), &out)
	return card.List(out).IDs()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Deck(), 5)
	assert.Equal(t, 3, cfg.BuildFilter().Len())
	assert.Equal(t, []int{0, 1, 2}, apply(cfg))
}

func TestDetectFormat(t *testing.T) {
	tests := map[string]Format{
		"deck.json":    FormatJSON,
		"deck.JSON":    FormatJSON,
		"deck.yaml":    FormatYAML,
		"dir/deck.yml": FormatYAML,
		"deck.toml":    "",
		"no-extension": "",
	}
	for path, want := range tests {
		assert.Equal(t, want, DetectFormat(path), path)
	}
}

const yamlConfig = `
filter:
  cost:
    min: 11
    max: 50
  versions: [1, 3]
cards:
  - {id: 0, name: Card1, cost: 30, version: 1, leader: 0}
  - {id: 1, name: Card2, cost: 10, version: 1, leader: 0}
  - {id: 2, name: Card3, cost: 12.5, version: 1, leader: 1}
  - {id: 7, name: Card8, cost: 20, version: 3, leader: 2}
`

func TestLoadYAML(t *testing.T) {
	cfg, err := Load(writeFile(t, "deck.yaml", yamlConfig))
	require.NoError(t, err)

	require.NotNil(t, cfg.Filter.Cost)
	assert.Equal(t, 11.0, *cfg.Filter.Cost.Min)
	assert.Equal(t, 50.0, *cfg.Filter.Cost.Max)
	assert.Equal(t, []int{1, 3}, cfg.Filter.Versions)
	assert.Nil(t, cfg.Filter.Leaders)
	assert.Len(t, cfg.Cards, 4)

	assert.Equal(t, "[7] Card8 (20) [3, 2]", cfg.Deck()[3].String())
	assert.Equal(t, []int{0, 2, 7}, apply(cfg))
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "deck.json", `{
		"filter": {"versions": [1, 2], "leaders": [1]},
		"cards": [
			{"id": 0, "name": "Card1", "cost": 30, "version": 1, "leader": 0},
			{"id": 3, "name": "Card4", "cost": 100, "version": 1, "leader": 1},
			{"id": 4, "name": "Card5", "cost": 45, "version": 2, "leader": 1}
		]
	}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Nil(t, cfg.Filter.Cost)
	assert.Equal(t, []int{3, 4}, apply(cfg))
}

func TestParse(t *testing.T) {
	t.Run("Omitted slots accept everything", func(t *testing.T) {
		cfg, err := Parse([]byte(`{}`), FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2, 3, 4}, apply(cfg))
	})

	t.Run("Explicit empty version list rejects everything", func(t *testing.T) {
		cfg, err := Parse([]byte(`{"filter": {"versions": []}}`), FormatJSON)
		require.NoError(t, err)
		assert.NotNil(t, cfg.Filter.Versions)
		assert.Empty(t, apply(cfg))
	})

	t.Run("Inverted cost bounds are valid", func(t *testing.T) {
		cfg, err := Parse([]byte("filter:\n  cost: {min: 50, max: 10}\n"), FormatYAML)
		require.NoError(t, err)
		assert.Empty(t, apply(cfg))
	})

	t.Run("Unknown fields", func(t *testing.T) {
		_, err := Parse([]byte(`{"filter": {"colour": "red"}}`), FormatJSON)
		assert.Error(t, err)

		_, err = Parse([]byte("filters:\n  versions: [1]\n"), FormatYAML)
		assert.Error(t, err)
	})

	t.Run("Malformed input", func(t *testing.T) {
		_, err := Parse([]byte(`{"filter": `), FormatJSON)
		assert.ErrorContains(t, err, "failed to parse config")

		_, err = Parse([]byte("filter: [\n"), FormatYAML)
		assert.ErrorContains(t, err, "failed to parse config")
	})

	t.Run("Trailing documents", func(t *testing.T) {
		_, err := Parse([]byte(`{"filter":{"versions":[1]}} {"filter":{"colour":"red"}}`), FormatJSON)
		assert.EqualError(t, err, "failed to parse config: unexpected trailing data")

		_, err = Parse([]byte(`{"filter":{"versions":[1]}} {}`), FormatJSON)
		assert.EqualError(t, err, "failed to parse config: unexpected trailing data")

		_, err = Parse([]byte(`{} ]`), FormatJSON)
		assert.EqualError(t, err, "failed to parse config: unexpected trailing data")

		_, err = Parse([]byte("filter:\n  versions: [1]\n---\nfilters: junk\n"), FormatYAML)
		assert.EqualError(t, err, "failed to parse config: unexpected trailing data")

		cfg, err := Parse([]byte("{\"filter\": {\"versions\": [1]}}\n\n"), FormatJSON)
		require.NoError(t, err, "trailing whitespace is not a document")
		assert.Equal(t, []int{1}, cfg.Filter.Versions)
	})

	t.Run("Empty input", func(t *testing.T) {
		for _, format := range []Format{FormatJSON, FormatYAML} {
			_, err := Parse(nil, format)
			assert.ErrorIs(t, err, ErrEmptyConfig, format)
			assert.EqualError(t, err, "failed to parse config: config is empty")
		}

		_, err := Parse([]byte("# nothing configured\n"), FormatYAML)
		assert.ErrorIs(t, err, ErrEmptyConfig)
	})

	t.Run("Unsupported format", func(t *testing.T) {
		_, err := Parse([]byte(`{}`), Format("toml"))
		assert.ErrorContains(t, err, "unsupported config format")
	})
}

func TestValidate(t *testing.T) {
	t.Run("Missing name", func(t *testing.T) {
		cfg := &Config{Cards: []CardConfig{{ID: 1, Name: "a"}, {ID: 2}}}
		err := cfg.Validate()
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.ErrorContains(t, err, "card 1: name is required")
	})

	t.Run("Duplicate id", func(t *testing.T) {
		cfg := &Config{Cards: []CardConfig{{ID: 1, Name: "a"}, {ID: 1, Name: "b"}}}
		err := cfg.Validate()
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.ErrorContains(t, err, "id 1 already used by card 0")
	})

	t.Run("Parse runs validation", func(t *testing.T) {
		_, err := Parse([]byte("cards:\n  - {id: 1, name: a}\n  - {id: 1, name: b}\n"), FormatYAML)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("deck.toml")
	assert.ErrorContains(t, err, "unsupported config file extension")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuildFilterIsFrozen(t *testing.T) {
	cfg := Default()
	built := cfg.BuildFilter()

	cfg.Filter.Versions = append(cfg.Filter.Versions, 2)
	*cfg.Filter.Cost.Max = 1000

	var out []*card.Card
	filter.Apply(cfg.Deck(), filter.Predicate[*card.Card](built), &out)
	assert.Equal(t, []int{0, 1, 2}, card.List(out).IDs())
}
