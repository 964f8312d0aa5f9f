package domain

import (
	"maps"
	"unicode/utf8"
)

// PlatformProfile is the static constraint set for one target platform.
type PlatformProfile struct {
	ID           PlatformID `json:"id"`
	DisplayName  string     `json:"displayName"`
	MaxChars     int        `json:"maxChars"`
	HashtagLimit int        `json:"hashtagLimit"` // 0 means hashtags are not used
	ImageAspect  string     `json:"imageAspect"`  // informational only
	Color        string     `json:"color"`
}

// DisplayMeta is the label and emoji shown for a content type.
type DisplayMeta struct {
	Emoji string `json:"emoji"`
	Label string `json:"label"`
}

// GeneratedContent is the post generated for one platform.
type GeneratedContent struct {
	Text           string `json:"text"`
	CharacterCount int    `json:"characterCount"`
	IsOverLimit    bool   `json:"isOverLimit"`
	Hashtags       string `json:"hashtags"`
}

// NewGeneratedContent derives the character count from text and flags it
// against maxChars. Counts are in runes.
func NewGeneratedContent(text, hashtags string, maxChars int) GeneratedContent {
	count := utf8.RuneCountInString(text)
	return GeneratedContent{
		Text:           text,
		CharacterCount: count,
		IsOverLimit:    count > maxChars,
		Hashtags:       hashtags,
	}
}

// ShareSet maps each platform to its generated post.
type ShareSet map[PlatformID]GeneratedContent

// Clone returns a copy of s that can be modified independently.
func (s ShareSet) Clone() ShareSet {
	return maps.Clone(s)
}

// Source records which path produced a ShareSet.
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
	SourceCache  Source = "cache"
)
