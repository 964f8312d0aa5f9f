package compose

import (
	"strings"

	"pulse-share/internal/domain"
)

// HashtagComposer builds the hashtag string for a content type and platform.
type HashtagComposer struct {
	table HashtagTable
}

// NewHashtagComposer creates a composer over table.
func NewHashtagComposer(table HashtagTable) *HashtagComposer {
	return &HashtagComposer{table: table}
}

// Compose returns at most limit tags, space separated.
// Base tags come first, then platform tags. The lists are concatenated
// as-is, so a tag present in both appears twice.
func (c *HashtagComposer) Compose(ct domain.ContentType, platform domain.PlatformID, limit int) string {
	if limit <= 0 {
		return ""
	}

	set, ok := c.table.Sets[ct]
	if !ok {
		set = c.table.Sets[domain.Music]
	}

	tags := make([]string, 0, len(set.Base)+len(set.Platforms[platform]))
	tags = append(tags, set.Base...)
	tags = append(tags, set.Platforms[platform]...)

	if len(tags) > limit {
		tags = tags[:limit]
	}

	return strings.Join(tags, " ")
}
