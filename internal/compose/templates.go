package compose

import "pulse-share/internal/domain"

// defaultSlot is the platform entry used as a content type's generic template.
const defaultSlot = domain.Twitter

// FallbackTemplate is used when the table has nothing for a content type.
const FallbackTemplate = `Check out my latest {contentType}: "{title}"!` + "\n\n" + PromotionLine

// PromotionLine closes the absolute fallback template.
const PromotionLine = "🚀 Discover more creators on Pulse!"

// tier tries to resolve a template; ok is false when the tier has no match.
type tier func(ct domain.ContentType, platform domain.PlatformID) (tmpl string, ok bool)

// TemplateResolver picks the template for a content type and platform.
// Tiers are tried in order and the first match wins.
type TemplateResolver struct {
	table TemplateTable
	tiers []tier
}

// NewTemplateResolver creates a resolver over table.
func NewTemplateResolver(table TemplateTable) *TemplateResolver {
	r := &TemplateResolver{table: table}
	r.tiers = []tier{
		r.exact,
		r.typeDefault,
		absolute,
	}
	return r
}

// Resolve returns the best template for ct on platform. It never fails.
func (r *TemplateResolver) Resolve(ct domain.ContentType, platform domain.PlatformID) string {
	for _, try := range r.tiers {
		if tmpl, ok := try(ct, platform); ok {
			return tmpl
		}
	}
	return FallbackTemplate
}

func (r *TemplateResolver) exact(ct domain.ContentType, platform domain.PlatformID) (string, bool) {
	tmpl, ok := r.table.Templates[ct][platform]
	return tmpl, ok
}

func (r *TemplateResolver) typeDefault(ct domain.ContentType, _ domain.PlatformID) (string, bool) {
	tmpl, ok := r.table.Templates[ct][defaultSlot]
	return tmpl, ok
}

func absolute(domain.ContentType, domain.PlatformID) (string, bool) {
	return FallbackTemplate, true
}
