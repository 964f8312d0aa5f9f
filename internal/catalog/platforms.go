// Package catalog holds the static platform and content type registries.
package catalog

import (
	"fmt"

	"pulse-share/internal/domain"
)

// platforms is in registration order; callers rely on it for stable tab ordering.
var platforms = []domain.PlatformProfile{
	{ID: domain.Instagram, DisplayName: "Instagram", MaxChars: 2200, HashtagLimit: 30, ImageAspect: "1080x1080", Color: "#E4405F"},
	{ID: domain.Twitter, DisplayName: "Twitter / X", MaxChars: 280, HashtagLimit: 3, ImageAspect: "1200x675", Color: "#1DA1F2"},
	{ID: domain.Facebook, DisplayName: "Facebook", MaxChars: 63206, HashtagLimit: 5, ImageAspect: "1200x630", Color: "#1877F2"},
	{ID: domain.TikTok, DisplayName: "TikTok", MaxChars: 2200, HashtagLimit: 5, ImageAspect: "1080x1920", Color: "#000000"},
	{ID: domain.YouTube, DisplayName: "YouTube", MaxChars: 5000, HashtagLimit: 15, ImageAspect: "1280x720", Color: "#FF0000"},
	{ID: domain.LinkedIn, DisplayName: "LinkedIn", MaxChars: 3000, HashtagLimit: 5, ImageAspect: "1200x627", Color: "#0A66C2"},
	{ID: domain.Discord, DisplayName: "Discord", MaxChars: 2000, HashtagLimit: 0, ImageAspect: "1280x720", Color: "#5865F2"},
	{ID: domain.Twitch, DisplayName: "Twitch", MaxChars: 500, HashtagLimit: 0, ImageAspect: "1920x1080", Color: "#9146FF"},
}

var platformIndex = func() map[domain.PlatformID]int {
	index := make(map[domain.PlatformID]int, len(platforms))
	for i, p := range platforms {
		if _, dup := index[p.ID]; dup {
			panic("catalog: duplicate platform " + string(p.ID))
		}
		index[p.ID] = i
	}
	return index
}()

// Profile returns the profile for id.
// Returns domain.ErrUnknownPlatform if the id is not registered.
func Profile(id domain.PlatformID) (domain.PlatformProfile, error) {
	i, ok := platformIndex[id]
	if !ok {
		return domain.PlatformProfile{}, fmt.Errorf("%w: %q", domain.ErrUnknownPlatform, id)
	}
	return platforms[i], nil
}

// MustProfile is like Profile but panics on unknown ids.
func MustProfile(id domain.PlatformID) domain.PlatformProfile {
	p, err := Profile(id)
	if err != nil {
		panic(err)
	}
	return p
}

// Profiles returns every profile in registration order.
func Profiles() []domain.PlatformProfile {
	out := make([]domain.PlatformProfile, len(platforms))
	copy(out, platforms)
	return out
}
