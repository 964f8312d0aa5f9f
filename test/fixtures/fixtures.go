// Package fixtures provides sample content items and remote payloads for tests.
package fixtures

import "pulse-share/internal/domain"

// MusicItem creates a fully populated music item.
func MusicItem() domain.MusicItem {
	return domain.MusicItem{
		Common: domain.Common{
			ID:          "trk_001",
			Title:       "Digital Dreams",
			Description: "A synthwave ride through neon city nights.",
		},
		ArtistName: "Nova",
		AlbumCover: "https://cdn.example.com/covers/digital-dreams.jpg",
	}
}

// VideoItem creates a video item without a description.
func VideoItem() domain.VideoItem {
	return domain.VideoItem{
		Common:    domain.Common{ID: "vid_042", Title: "Studio Tour 2026"},
		Creator:   "Nova",
		Thumbnail: "https://cdn.example.com/thumbs/studio-tour.jpg",
	}
}

// PodcastItem creates a podcast episode.
func PodcastItem() domain.PodcastItem {
	return domain.PodcastItem{
		Common: domain.Common{
			ID:          "ep_117",
			Title:       "Building a Fanbase From Zero",
			Description: "How independent artists grow without a label.",
		},
		Creator: "The Indie Hour",
	}
}

// RadioItem creates a radio broadcast with a listener count.
func RadioItem() domain.RadioItem {
	listeners := 1250
	return domain.RadioItem{
		Common:        domain.Common{ID: "st_9", Title: "Late Night Grooves"},
		StationName:   "Pulse FM",
		CurrentTrack:  "Nova - Digital Dreams",
		ListenerCount: &listeners,
	}
}

// GamingItem creates a gaming session.
func GamingItem() domain.GamingItem {
	return domain.GamingItem{
		Common:  domain.Common{ID: "gm_3", Title: "Ranked Grind"},
		Creator: "pixelqueen",
		Game:    "Valorant",
	}
}

// LiveStreamItem creates a live stream with a stream id.
func LiveStreamItem() domain.LiveStreamItem {
	return domain.LiveStreamItem{
		Common:   domain.Common{ID: "ls_77", Title: "Friday Night Jam"},
		Creator:  "Nova",
		StreamID: "nova-jam",
	}
}

// MinimalItem creates an item with only a title, which must still render.
func MinimalItem(ct domain.ContentType) domain.ContentItem {
	return domain.NewContentItem(ct, domain.ContentFields{Title: "Just a Title"})
}

// AllItems returns one populated and one minimal item per content type.
func AllItems() []domain.ContentItem {
	items := []domain.ContentItem{
		MusicItem(), VideoItem(), PodcastItem(), RadioItem(), GamingItem(), LiveStreamItem(),
	}
	for _, ct := range domain.KnownContentTypes {
		items = append(items, MinimalItem(ct))
	}
	return items
}

// RemoteSuccessBody is a well-formed remote generation response.
// The character counts are deliberately wrong so tests can check they are recomputed.
func RemoteSuccessBody() string {
	return `{
  "content": {
    "twitter": {
      "text": "Remote twitter post for Digital Dreams",
      "characterCount": 999,
      "isOverLimit": true,
      "hashtags": "#Remote"
    },
    "instagram": {
      "text": "Remote instagram post",
      "characterCount": 0,
      "isOverLimit": false,
      "hashtags": ""
    }
  }
}`
}

// RemoteEmptyBody is a response with no content entries.
func RemoteEmptyBody() string {
	return `{"content": {}}`
}

// RemoteBlankTextBody is a response with an entry missing its text.
func RemoteBlankTextBody() string {
	return `{"content": {"twitter": {"text": "", "hashtags": "#x"}}}`
}

// RemoteGarbageBody is not JSON at all.
func RemoteGarbageBody() string {
	return `<html><body>502 Bad Gateway</body></html>`
}
