package catalog

import "pulse-share/internal/domain"

type contentTypeEntry struct {
	meta      domain.DisplayMeta
	platforms []domain.PlatformID
}

var contentTypes = map[domain.ContentType]contentTypeEntry{
	domain.Music: {
		meta:      domain.DisplayMeta{Emoji: "🎵", Label: "Music"},
		platforms: []domain.PlatformID{domain.Instagram, domain.Twitter, domain.Facebook, domain.TikTok, domain.YouTube},
	},
	domain.Video: {
		meta:      domain.DisplayMeta{Emoji: "🎬", Label: "Video"},
		platforms: []domain.PlatformID{domain.YouTube, domain.Instagram, domain.TikTok, domain.Twitter, domain.Facebook},
	},
	domain.Podcast: {
		meta:      domain.DisplayMeta{Emoji: "🎙️", Label: "Podcast"},
		platforms: []domain.PlatformID{domain.Twitter, domain.LinkedIn, domain.Facebook, domain.Instagram},
	},
	domain.Radio: {
		meta:      domain.DisplayMeta{Emoji: "📻", Label: "Radio"},
		platforms: []domain.PlatformID{domain.Twitter, domain.Facebook, domain.Instagram},
	},
	domain.Gaming: {
		meta:      domain.DisplayMeta{Emoji: "🎮", Label: "Gaming"},
		platforms: []domain.PlatformID{domain.Twitch, domain.Discord, domain.Twitter, domain.YouTube},
	},
	domain.LiveStream: {
		meta:      domain.DisplayMeta{Emoji: "🔴", Label: "Live Stream"},
		platforms: []domain.PlatformID{domain.Twitter, domain.Instagram, domain.Facebook, domain.Twitch, domain.Discord},
	},
}

// genericMeta is shown for content types outside the registry.
var genericMeta = domain.DisplayMeta{Emoji: "✨", Label: "Content"}

// SupportedPlatforms returns the platforms offered for ct, in display order.
// Unknown content types get the music platform list.
func SupportedPlatforms(ct domain.ContentType) []domain.PlatformID {
	entry, ok := contentTypes[ct]
	if !ok {
		entry = contentTypes[domain.Music]
	}
	out := make([]domain.PlatformID, len(entry.platforms))
	copy(out, entry.platforms)
	return out
}

// DisplayMeta returns the emoji and label for ct.
func DisplayMeta(ct domain.ContentType) domain.DisplayMeta {
	if entry, ok := contentTypes[ct]; ok {
		return entry.meta
	}
	return genericMeta
}

// ContentTypes returns every registered content type in display order.
func ContentTypes() []domain.ContentType {
	out := make([]domain.ContentType, len(domain.KnownContentTypes))
	copy(out, domain.KnownContentTypes)
	return out
}

func init() {
	for ct, entry := range contentTypes {
		for _, id := range entry.platforms {
			if _, ok := platformIndex[id]; !ok {
				panic("catalog: content type " + string(ct) + " references unknown platform " + string(id))
			}
		}
	}
}
