// Package compose turns content items into platform-ready post text.
//
// Template and hashtag tables ship with the binary as embedded YAML and are
// parsed once at startup; a malformed table panics at init rather than at
// generation time.
package compose

import (
	_ "embed"
	"errors"
	"fmt"

	"pulse-share/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed tables/templates.yaml
var templatesYAML []byte

//go:embed tables/hashtags.yaml
var hashtagsYAML []byte

// ErrInvalidTable is returned when a template or hashtag table fails validation.
var ErrInvalidTable = errors.New("invalid table")

// TemplateTable maps content type and platform to a template string.
type TemplateTable struct {
	Version   int
	Templates map[domain.ContentType]map[domain.PlatformID]string
}

// HashtagSet holds the tags for one content type.
type HashtagSet struct {
	Base      []string
	Platforms map[domain.PlatformID][]string
}

// HashtagTable maps content type to its hashtag set.
type HashtagTable struct {
	Version int
	Sets    map[domain.ContentType]HashtagSet
}

// rawTemplates represents the templates YAML structure.
type rawTemplates struct {
	Version   int                          `yaml:"version"`
	Templates map[string]map[string]string `yaml:"templates"`
}

// rawHashtags represents the hashtags YAML structure.
type rawHashtags struct {
	Version  int                            `yaml:"version"`
	Hashtags map[string]map[string][]string `yaml:"hashtags"`
}

// ParseTemplateTable decodes and validates a templates YAML document.
func ParseTemplateTable(data []byte) (TemplateTable, error) {
	var raw rawTemplates
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return TemplateTable{}, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}
	if raw.Version < 1 {
		return TemplateTable{}, fmt.Errorf("%w: missing version", ErrInvalidTable)
	}

	table := TemplateTable{
		Version:   raw.Version,
		Templates: make(map[domain.ContentType]map[domain.PlatformID]string, len(raw.Templates)),
	}
	for ct, byPlatform := range raw.Templates {
		entries := make(map[domain.PlatformID]string, len(byPlatform))
		for platform, tmpl := range byPlatform {
			if tmpl == "" {
				return TemplateTable{}, fmt.Errorf("%w: empty template %s/%s", ErrInvalidTable, ct, platform)
			}
			entries[domain.PlatformID(platform)] = tmpl
		}
		table.Templates[domain.ContentType(ct)] = entries
	}

	return table, nil
}

// ParseHashtagTable decodes and validates a hashtags YAML document.
// The music set is required since unknown content types fall back to it.
func ParseHashtagTable(data []byte) (HashtagTable, error) {
	var raw rawHashtags
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return HashtagTable{}, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}
	if raw.Version < 1 {
		return HashtagTable{}, fmt.Errorf("%w: missing version", ErrInvalidTable)
	}
	if _, ok := raw.Hashtags[string(domain.Music)]; !ok {
		return HashtagTable{}, fmt.Errorf("%w: music hashtag set is required", ErrInvalidTable)
	}

	table := HashtagTable{
		Version: raw.Version,
		Sets:    make(map[domain.ContentType]HashtagSet, len(raw.Hashtags)),
	}
	for ct, lists := range raw.Hashtags {
		set := HashtagSet{Platforms: make(map[domain.PlatformID][]string)}
		for key, tags := range lists {
			if key == "base" {
				set.Base = tags
				continue
			}
			set.Platforms[domain.PlatformID(key)] = tags
		}
		table.Sets[domain.ContentType(ct)] = set
	}

	return table, nil
}

func mustParse[T any](parse func([]byte) (T, error), data []byte) T {
	table, err := parse(data)
	if err != nil {
		panic(err)
	}
	return table
}

var (
	// DefaultTemplates is the template table shipped with the binary.
	DefaultTemplates = mustParse(ParseTemplateTable, templatesYAML)

	// DefaultHashtags is the hashtag table shipped with the binary.
	DefaultHashtags = mustParse(ParseHashtagTable, hashtagsYAML)
)
