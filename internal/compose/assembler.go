package compose

import (
	"pulse-share/internal/catalog"
	"pulse-share/internal/domain"
)

// hashtagSeparator sits between the post body and its hashtag block.
const hashtagSeparator = "\n\n"

// Assembler renders the final post for one platform.
type Assembler struct {
	resolver *TemplateResolver
	hashtags *HashtagComposer
}

// NewAssembler creates an assembler from a resolver and a hashtag composer.
func NewAssembler(resolver *TemplateResolver, hashtags *HashtagComposer) *Assembler {
	return &Assembler{
		resolver: resolver,
		hashtags: hashtags,
	}
}

// NewDefaultAssembler creates an assembler over the embedded tables.
func NewDefaultAssembler() *Assembler {
	return NewAssembler(NewTemplateResolver(DefaultTemplates), NewHashtagComposer(DefaultHashtags))
}

// Assemble generates the post for item on platform.
// The only error is domain.ErrUnknownPlatform for a platform outside the catalog.
func (a *Assembler) Assemble(ct domain.ContentType, platform domain.PlatformID, item domain.ContentItem) (domain.GeneratedContent, error) {
	tmpl := a.resolver.Resolve(ct, platform)
	text := Render(tmpl, ct, item)

	profile, err := catalog.Profile(platform)
	if err != nil {
		return domain.GeneratedContent{}, err
	}

	var hashtags string
	if profile.HashtagLimit > 0 {
		hashtags = a.hashtags.Compose(ct, platform, profile.HashtagLimit)
		// A table with no tags for ct adds no separator either. The shipped
		// tables give every content type base tags, so this never triggers.
		if hashtags != "" {
			text += hashtagSeparator + hashtags
		}
	}

	return domain.NewGeneratedContent(text, hashtags, profile.MaxChars), nil
}

// AssembleAll generates posts for every platform ct supports.
func (a *Assembler) AssembleAll(ct domain.ContentType, item domain.ContentItem) (domain.ShareSet, error) {
	platforms := catalog.SupportedPlatforms(ct)
	set := make(domain.ShareSet, len(platforms))
	for _, platform := range platforms {
		content, err := a.Assemble(ct, platform, item)
		if err != nil {
			return nil, err
		}
		set[platform] = content
	}
	return set, nil
}
