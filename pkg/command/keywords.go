package command

import (
	"bytes"
	"io"
	"os"
	"strings"

	// Packages
	agui "github.com/mutablelogic/go-agui"
	yaml "gopkg.in/yaml.v3"

	_ "embed"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Keyword maps a color phrase onto a color code
type Keyword struct {
	Phrase string `yaml:"phrase"`
	Color  string `yaml:"color"`
}

// Keywords is an ordered keyword table. Order is significant: the first
// phrase contained in the text wins.
type Keywords []Keyword

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

//go:embed keywords.yaml
var defaultKeywords []byte

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// DefaultKeywords returns the built-in theme keyword table
func DefaultKeywords() Keywords {
	keywords, err := ParseKeywords(bytes.NewReader(defaultKeywords))
	if err != nil {
		panic(err)
	}
	return keywords
}

// LoadKeywords reads a keyword table from a YAML file
func LoadKeywords(path string) (Keywords, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseKeywords(f)
}

// ParseKeywords decodes a YAML sequence of phrase/color pairs and validates it
func ParseKeywords(r io.Reader) (Keywords, error) {
	var keywords Keywords
	if err := yaml.NewDecoder(r).Decode(&keywords); err != nil && err != io.EOF {
		return nil, agui.ErrBadParameter.Withf("keywords: %v", err)
	}
	for i := range keywords {
		keywords[i].Phrase = strings.ToLower(strings.TrimSpace(keywords[i].Phrase))
		keywords[i].Color = strings.TrimSpace(keywords[i].Color)
	}
	if err := keywords.Validate(); err != nil {
		return nil, err
	}
	return keywords, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Validate checks that every entry is complete, and that no phrase is
// unreachable because an earlier phrase is contained in it
func (k Keywords) Validate() error {
	if len(k) == 0 {
		return agui.ErrBadParameter.With("keywords: empty table")
	}
	for i, keyword := range k {
		if keyword.Phrase == "" {
			return agui.ErrBadParameter.Withf("keywords: missing phrase at %d", i)
		}
		if keyword.Color == "" {
			return agui.ErrBadParameter.Withf("keywords: missing color for %q", keyword.Phrase)
		}
		for _, earlier := range k[:i] {
			if strings.Contains(keyword.Phrase, earlier.Phrase) {
				return agui.ErrBadParameter.Withf("keywords: %q is shadowed by %q", keyword.Phrase, earlier.Phrase)
			}
		}
	}
	return nil
}

// Match returns the first keyword whose phrase is contained in text
func (k Keywords) Match(text string) (Keyword, bool) {
	for _, keyword := range k {
		if strings.Contains(text, keyword.Phrase) {
			return keyword, true
		}
	}
	return Keyword{}, false
}
