package web

import (
	"fmt"

	"pulse-share/internal/catalog"
	"pulse-share/internal/domain"
)

//go:generate templ generate

// PreviewCard pairs a platform with its generated post.
type PreviewCard struct {
	Profile domain.PlatformProfile
	Content domain.GeneratedContent
}

// PreviewView is the data behind PreviewPage.
type PreviewView struct {
	PageTitle string
	Heading   string
	Label     string
	Cards     []PreviewCard
}

// NewPreviewView orders the cards the way the catalog lists platforms for ct.
// Platforms missing from set are skipped.
func NewPreviewView(ct domain.ContentType, item domain.ContentItem, set domain.ShareSet) PreviewView {
	meta := catalog.DisplayMeta(ct)
	title := ""
	if item != nil {
		title = item.Base().Title
	}
	if title == "" {
		title = "Untitled"
	}

	view := PreviewView{
		PageTitle: title + " · Share preview",
		Heading:   meta.Emoji + " " + title,
		Label:     meta.Label,
	}
	for _, platform := range catalog.SupportedPlatforms(ct) {
		content, ok := set[platform]
		if !ok {
			continue
		}
		view.Cards = append(view.Cards, PreviewCard{Profile: catalog.MustProfile(platform), Content: content})
	}
	return view
}

func charBudget(profile domain.PlatformProfile, content domain.GeneratedContent) string {
	return fmt.Sprintf("%d / %d", content.CharacterCount, profile.MaxChars)
}
