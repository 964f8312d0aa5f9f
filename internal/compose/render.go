package compose

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"pulse-share/internal/catalog"
	"pulse-share/internal/domain"
)

// Defaults substituted when an item field is empty.
const (
	DefaultTitle        = "Untitled"
	DefaultPerson       = "me"
	DefaultStation      = "our station"
	DefaultCurrentTrack = "great music"
	DefaultListeners    = "our"
	DefaultGame         = "something epic"
	DefaultStreamID     = "live"
)

var extraBlankLines = regexp.MustCompile(`\n{3,}`)

// Render substitutes the placeholders in tmpl with fields of item.
// Unknown placeholders are left untouched. The result is plain text with
// no control characters other than newlines.
func Render(tmpl string, ct domain.ContentType, item domain.ContentItem) string {
	if item == nil {
		item = domain.GenericItem{Kind: ct}
	}

	values := placeholderValues(ct, item)
	pairs := make([]string, 0, len(values)*2)
	for name, value := range values {
		pairs = append(pairs, "{"+name+"}", clean(value))
	}

	text := strings.NewReplacer(pairs...).Replace(tmpl)
	return tidy(text)
}

// placeholderValues fills every placeholder for the active item variant.
func placeholderValues(ct domain.ContentType, item domain.ContentItem) map[string]string {
	base := item.Base()
	values := map[string]string{
		"contentType":  string(ct),
		"emoji":        catalog.DisplayMeta(ct).Emoji,
		"title":        orDefault(base.Title, DefaultTitle),
		"description":  base.Description,
		"artist":       DefaultPerson,
		"creator":      DefaultPerson,
		"station":      DefaultStation,
		"currentTrack": DefaultCurrentTrack,
		"listeners":    DefaultListeners,
		"game":         DefaultGame,
		"streamId":     DefaultStreamID,
	}

	switch v := item.(type) {
	case domain.MusicItem:
		values["artist"] = orDefault(v.ArtistName, DefaultPerson)
		values["creator"] = values["artist"]
	case domain.VideoItem:
		values["creator"] = orDefault(v.Creator, DefaultPerson)
	case domain.PodcastItem:
		values["creator"] = orDefault(v.Creator, DefaultPerson)
	case domain.RadioItem:
		values["station"] = orDefault(v.StationName, DefaultStation)
		values["currentTrack"] = orDefault(v.CurrentTrack, DefaultCurrentTrack)
		if v.ListenerCount != nil {
			values["listeners"] = strconv.Itoa(*v.ListenerCount)
		}
	case domain.GamingItem:
		values["creator"] = orDefault(v.Creator, DefaultPerson)
		values["game"] = orDefault(v.Game, DefaultGame)
	case domain.LiveStreamItem:
		values["creator"] = orDefault(v.Creator, DefaultPerson)
		values["game"] = orDefault(v.Game, DefaultGame)
		values["streamId"] = orDefault(v.StreamID, orDefault(v.ID, DefaultStreamID))
	}

	return values
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// clean makes a field value safe to paste: whitespace controls become
// spaces and every other control character is dropped.
func clean(value string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		default:
			return r
		}
	}, value)
}

// tidy trims trailing spaces per line and collapses the blank lines left
// behind by empty optional fields.
func tidy(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}
	text = strings.Join(lines, "\n")
	text = extraBlankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
