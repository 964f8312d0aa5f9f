package web

import (
	"strconv"
	"strings"

	"pulse-share/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// maxFieldRunes bounds each free-text field accepted from a request.
const maxFieldRunes = 2000

// ParseContentType reads the :type route param. Unknown types are accepted
// and handled by the catalog fallbacks.
func ParseContentType(raw string) (domain.ContentType, error) {
	ct := domain.ContentType(strings.ToLower(strings.TrimSpace(raw)))
	if ct == "" || strings.ContainsAny(string(ct), "/ \t\n") {
		return "", domain.ErrInvalidContent
	}
	return ct, nil
}

// BearerToken extracts the token from an Authorization header, or "".
func BearerToken(c *fiber.Ctx) string {
	token, ok := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// parseBodyFields decodes a JSON ContentFields body. Title is required.
func parseBodyFields(c *fiber.Ctx) (domain.ContentFields, error) {
	var fields domain.ContentFields
	if err := c.BodyParser(&fields); err != nil {
		return domain.ContentFields{}, domain.ErrInvalidContent
	}
	if strings.TrimSpace(fields.Title) == "" {
		return domain.ContentFields{}, domain.ErrInvalidContent
	}
	return limitFields(fields), nil
}

// parseQueryFields reads ContentFields from snake_case query parameters.
func parseQueryFields(c *fiber.Ctx) (domain.ContentFields, error) {
	fields := domain.ContentFields{
		ID:           c.Query("id"),
		Title:        c.Query("title"),
		Description:  c.Query("description"),
		ArtistName:   c.Query("artist_name"),
		Creator:      c.Query("creator"),
		StationName:  c.Query("station_name"),
		CurrentTrack: c.Query("current_track"),
		Game:         c.Query("game"),
		StreamID:     c.Query("stream_id"),
		AlbumCover:   c.Query("album_cover"),
		Thumbnail:    c.Query("thumbnail"),
		CoverImage:   c.Query("cover_image"),
	}
	if raw := c.Query("listener_count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return domain.ContentFields{}, domain.ErrInvalidContent
		}
		fields.ListenerCount = &n
	}
	return limitFields(fields), nil
}

func limitFields(f domain.ContentFields) domain.ContentFields {
	for _, s := range []*string{
		&f.ID, &f.Title, &f.Description, &f.ArtistName, &f.Creator, &f.StationName,
		&f.CurrentTrack, &f.Game, &f.StreamID, &f.AlbumCover, &f.Thumbnail, &f.CoverImage,
	} {
		*s = truncate(*s, maxFieldRunes)
	}
	return f
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
