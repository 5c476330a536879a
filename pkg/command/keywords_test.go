package command_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	// Packages
	agui "github.com/mutablelogic/go-agui"
	command "github.com/mutablelogic/go-agui/pkg/command"
	schema "github.com/mutablelogic/go-agui/pkg/schema"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

func TestDefaultKeywords(t *testing.T) {
	assert := assert.New(t)

	keywords := command.DefaultKeywords()
	assert.Len(keywords, 21)
	assert.Equal("light orange", keywords[0].Phrase)
	assert.Equal("teal", keywords[len(keywords)-1].Phrase)
	assert.NoError(keywords.Validate())

	// Every longer phrase comes before the shorter phrase it contains
	index := make(map[string]int, len(keywords))
	for i, keyword := range keywords {
		index[keyword.Phrase] = i
	}
	for _, keyword := range keywords {
		for _, word := range strings.Fields(keyword.Phrase)[1:] {
			if i, ok := index[word]; ok {
				assert.Less(index[keyword.Phrase], i, keyword.Phrase)
			}
		}
	}
}

func TestParseKeywords(t *testing.T) {
	assert := assert.New(t)

	keywords, err := command.ParseKeywords(strings.NewReader(`
- phrase: " Sea Green "
  color: "#2E8B57"
- phrase: green
  color: "#00FF00"
`))
	require.NoError(t, err)
	assert.Equal(command.Keywords{
		{Phrase: "sea green", Color: "#2E8B57"},
		{Phrase: "green", Color: "#00FF00"},
	}, keywords)

	keyword, ok := keywords.Match("paint it sea green")
	assert.True(ok)
	assert.Equal("#2E8B57", keyword.Color)

	_, ok = keywords.Match("paint it red")
	assert.False(ok)
}

func TestParseKeywordsErrors(t *testing.T) {
	tests := []string{
		``,
		`not: a sequence`,
		`- phrase: green`,
		`- color: "#000000"`,
		"- phrase: green\n  color: \"#00FF00\"\n- phrase: light green\n  color: \"#90EE90\"",
	}
	for _, test := range tests {
		_, err := command.ParseKeywords(strings.NewReader(test))
		assert.True(t, errors.Is(err, agui.ErrBadParameter), "%q: %v", test, err)
	}
}

func TestLoadKeywords(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "keywords.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- phrase: gold\n  color: \"#FFD700\"\n"), 0o600))

	keywords, err := command.LoadKeywords(path)
	require.NoError(t, err)

	detector, err := command.New(command.WithKeywords(keywords))
	require.NoError(t, err)

	_, directives := detector.Detect(user("switch the color to gold"))
	if assert.Len(directives, 1) {
		assert.Equal("#FFD700", directives[0].Get(schema.ParamColor))
	}

	// Built-in colors are no longer known
	_, directives = detector.Detect(user("switch the color to green"))
	assert.Empty(directives)

	_, err = command.LoadKeywords(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(err)
}
