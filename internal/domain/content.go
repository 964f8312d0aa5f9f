// Package domain contains the core share-generation entities and rules.
package domain

// ContentType identifies the kind of creator content being shared.
type ContentType string

const (
	Music      ContentType = "music"
	Video      ContentType = "video"
	Podcast    ContentType = "podcast"
	Radio      ContentType = "radio"
	Gaming     ContentType = "gaming"
	LiveStream ContentType = "live_stream"
)

// KnownContentTypes lists every registered content type in display order.
var KnownContentTypes = []ContentType{Music, Video, Podcast, Radio, Gaming, LiveStream}

// Known reports whether the content type is registered.
func (ct ContentType) Known() bool {
	for _, known := range KnownContentTypes {
		if ct == known {
			return true
		}
	}
	return false
}

// PlatformID identifies a target social platform, e.g. "instagram".
type PlatformID string

const (
	Instagram PlatformID = "instagram"
	Twitter   PlatformID = "twitter"
	Facebook  PlatformID = "facebook"
	TikTok    PlatformID = "tiktok"
	YouTube   PlatformID = "youtube"
	LinkedIn  PlatformID = "linkedin"
	Discord   PlatformID = "discord"
	Twitch    PlatformID = "twitch"
)

// ContentItem is the caller-supplied record describing the thing being shared.
// Each content type has its own variant; the engine never mutates items.
type ContentItem interface {
	Type() ContentType
	Base() Common
}

// Common holds the fields every content item carries.
// Only Title is required; everything else renders a default when empty.
type Common struct {
	ID          string
	Title       string
	Description string
}

// Base returns the shared fields.
func (c Common) Base() Common { return c }

// MusicItem is a track or album.
type MusicItem struct {
	Common
	ArtistName string
	AlbumCover string
}

func (MusicItem) Type() ContentType { return Music }

// VideoItem is an uploaded video.
type VideoItem struct {
	Common
	Creator   string
	Thumbnail string
}

func (VideoItem) Type() ContentType { return Video }

// PodcastItem is a podcast episode.
type PodcastItem struct {
	Common
	Creator    string
	CoverImage string
}

func (PodcastItem) Type() ContentType { return Podcast }

// RadioItem is a radio station broadcast.
type RadioItem struct {
	Common
	StationName   string
	CurrentTrack  string
	ListenerCount *int // nil when unknown
	CoverImage    string
}

func (RadioItem) Type() ContentType { return Radio }

// GamingItem is a gaming clip or session.
type GamingItem struct {
	Common
	Creator   string
	Game      string
	Thumbnail string
}

func (GamingItem) Type() ContentType { return Gaming }

// LiveStreamItem is a live broadcast.
type LiveStreamItem struct {
	Common
	Creator   string
	StreamID  string
	Game      string
	Thumbnail string
}

func (LiveStreamItem) Type() ContentType { return LiveStream }

// GenericItem carries content of an unregistered type.
type GenericItem struct {
	Common
	Kind ContentType
}

func (g GenericItem) Type() ContentType { return g.Kind }
