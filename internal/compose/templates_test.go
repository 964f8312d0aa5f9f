package compose_test

import (
	"errors"
	"testing"

	"pulse-share/internal/compose"
	"pulse-share/internal/domain"
)

func testTemplateTable() compose.TemplateTable {
	return compose.TemplateTable{
		Version: 1,
		Templates: map[domain.ContentType]map[domain.PlatformID]string{
			domain.Music: {
				domain.Twitter:   "twitter {title}",
				domain.Instagram: "instagram {title}",
			},
			domain.Video: {
				domain.YouTube: "youtube {title}",
			},
		},
	}
}

func TestResolve_ExactMatch(t *testing.T) {
	r := compose.NewTemplateResolver(testTemplateTable())

	got := r.Resolve(domain.Music, domain.Instagram)

	if got != "instagram {title}" {
		t.Errorf("got %q", got)
	}
}

func TestResolve_UnregisteredPlatform_UsesTypeDefault(t *testing.T) {
	r := compose.NewTemplateResolver(testTemplateTable())

	got := r.Resolve(domain.Music, "myspace")

	if got != "twitter {title}" {
		t.Errorf("got %q, want the twitter slot", got)
	}
}

func TestResolve_NoTypeDefault_UsesAbsoluteFallback(t *testing.T) {
	r := compose.NewTemplateResolver(testTemplateTable())

	got := r.Resolve(domain.Video, domain.Discord)

	if got != compose.FallbackTemplate {
		t.Errorf("got %q, want fallback", got)
	}
}

func TestResolve_UnknownType_UsesAbsoluteFallback(t *testing.T) {
	r := compose.NewTemplateResolver(compose.DefaultTemplates)

	got := r.Resolve("unknown_type", domain.Instagram)

	if got != compose.FallbackTemplate {
		t.Errorf("got %q, want fallback", got)
	}
}

func TestResolve_NeverEmpty(t *testing.T) {
	r := compose.NewTemplateResolver(compose.DefaultTemplates)
	types := append(append([]domain.ContentType{}, domain.KnownContentTypes...), "unknown_type", "")
	platforms := []domain.PlatformID{
		domain.Instagram, domain.Twitter, domain.Facebook, domain.TikTok,
		domain.YouTube, domain.LinkedIn, domain.Discord, domain.Twitch, "myspace",
	}

	for _, ct := range types {
		for _, p := range platforms {
			if r.Resolve(ct, p) == "" {
				t.Errorf("empty template for %q/%q", ct, p)
			}
		}
	}
}

func TestDefaultTemplates_EveryTypeHasDefaultSlot(t *testing.T) {
	for _, ct := range domain.KnownContentTypes {
		if _, ok := compose.DefaultTemplates.Templates[ct][domain.Twitter]; !ok {
			t.Errorf("%s has no twitter template", ct)
		}
	}
}

func TestParseTemplateTable_Errors(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{name: "not yaml", data: "templates: [unclosed"},
		{name: "missing version", data: "templates:\n  music:\n    twitter: hi\n"},
		{name: "empty template", data: "version: 1\ntemplates:\n  music:\n    twitter: \"\"\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := compose.ParseTemplateTable([]byte(tc.data))
			if !errors.Is(err, compose.ErrInvalidTable) {
				t.Errorf("expected ErrInvalidTable, got %v", err)
			}
		})
	}
}

func TestParseHashtagTable_RequiresMusicSet(t *testing.T) {
	_, err := compose.ParseHashtagTable([]byte("version: 1\nhashtags:\n  video:\n    base: [\"#Video\"]\n"))

	if !errors.Is(err, compose.ErrInvalidTable) {
		t.Errorf("expected ErrInvalidTable, got %v", err)
	}
}

func TestParseHashtagTable_SplitsBaseFromPlatforms(t *testing.T) {
	table, err := compose.ParseHashtagTable([]byte(
		"version: 2\nhashtags:\n  music:\n    base: [\"#A\"]\n    twitter: [\"#B\", \"#C\"]\n",
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	set := table.Sets[domain.Music]
	if table.Version != 2 {
		t.Errorf("Version: got %v, want 2", table.Version)
	}
	if len(set.Base) != 1 || set.Base[0] != "#A" {
		t.Errorf("Base: got %v", set.Base)
	}
	if len(set.Platforms[domain.Twitter]) != 2 {
		t.Errorf("twitter tags: got %v", set.Platforms[domain.Twitter])
	}
}
