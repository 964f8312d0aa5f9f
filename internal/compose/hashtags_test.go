package compose_test

import (
	"strings"
	"testing"

	"pulse-share/internal/compose"
	"pulse-share/internal/domain"
)

func testHashtagTable() compose.HashtagTable {
	return compose.HashtagTable{
		Version: 1,
		Sets: map[domain.ContentType]compose.HashtagSet{
			domain.Music: {
				Base: []string{"#NewMusic", "#Music"},
				Platforms: map[domain.PlatformID][]string{
					domain.Instagram: {"#Music", "#IndieArtist"},
				},
			},
			domain.Gaming: {
				Base: []string{"#Gaming"},
			},
		},
	}
}

func TestCompose_ZeroLimit_ReturnsEmpty(t *testing.T) {
	// Arrange
	c := compose.NewHashtagComposer(testHashtagTable())

	// Act
	got := c.Compose(domain.Music, domain.Instagram, 0)

	// Assert
	if got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestCompose_BaseTagsComeFirst(t *testing.T) {
	// Arrange
	c := compose.NewHashtagComposer(testHashtagTable())

	// Act
	got := c.Compose(domain.Music, domain.Instagram, 3)

	// Assert
	if got != "#NewMusic #Music #Music" {
		t.Errorf("got %q, want %q", got, "#NewMusic #Music #Music")
	}
}

func TestCompose_DoesNotDeduplicate(t *testing.T) {
	c := compose.NewHashtagComposer(testHashtagTable())

	got := c.Compose(domain.Music, domain.Instagram, 10)

	if strings.Count(got, "#Music") != 2 {
		t.Errorf("expected #Music to be emitted twice, got %q", got)
	}
	if got != "#NewMusic #Music #Music #IndieArtist" {
		t.Errorf("got %q", got)
	}
}

func TestCompose_FewerTagsThanLimit_ReturnsAll(t *testing.T) {
	c := compose.NewHashtagComposer(testHashtagTable())

	got := c.Compose(domain.Gaming, domain.Twitter, 10)

	if got != "#Gaming" {
		t.Errorf("got %q, want #Gaming", got)
	}
}

func TestCompose_UnknownType_UsesMusicBase(t *testing.T) {
	c := compose.NewHashtagComposer(testHashtagTable())

	got := c.Compose("unknown_type", domain.Twitter, 5)

	if got != "#NewMusic #Music" {
		t.Errorf("got %q, want %q", got, "#NewMusic #Music")
	}
}

func TestCompose_DefaultTable_RespectsEveryPlatformLimit(t *testing.T) {
	c := compose.NewHashtagComposer(compose.DefaultHashtags)

	for _, ct := range domain.KnownContentTypes {
		for limit := 0; limit <= 30; limit++ {
			got := c.Compose(ct, domain.Instagram, limit)
			if n := len(strings.Fields(got)); n > limit {
				t.Errorf("%s limit %d: got %d tags", ct, limit, n)
			}
		}
	}
}
