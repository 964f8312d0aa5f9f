package compose_test

import (
	"strings"
	"testing"

	"pulse-share/internal/compose"
	"pulse-share/internal/domain"
)

func TestRender_MissingFields_UseDefaults(t *testing.T) {
	testCases := []struct {
		name string
		tmpl string
		ct   domain.ContentType
		item domain.ContentItem
		want string
	}{
		{
			name: "artist",
			tmpl: "{title} by {artist}",
			ct:   domain.Music,
			item: domain.MusicItem{Common: domain.Common{Title: "Song"}},
			want: "Song by me",
		},
		{
			name: "title",
			tmpl: "{title}",
			ct:   domain.Video,
			item: domain.VideoItem{},
			want: compose.DefaultTitle,
		},
		{
			name: "radio",
			tmpl: "{station} {currentTrack} {listeners}",
			ct:   domain.Radio,
			item: domain.RadioItem{},
			want: "our station great music our",
		},
		{
			name: "live stream id falls back to item id",
			tmpl: "pulse.live/{streamId}",
			ct:   domain.LiveStream,
			item: domain.LiveStreamItem{Common: domain.Common{ID: "abc"}},
			want: "pulse.live/abc",
		},
		{
			name: "nil item",
			tmpl: "{title} by {creator}",
			ct:   domain.Gaming,
			item: nil,
			want: "Untitled by me",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := compose.Render(tc.tmpl, tc.ct, tc.item); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRender_ListenerCount(t *testing.T) {
	count := 1250
	item := domain.RadioItem{ListenerCount: &count}

	got := compose.Render("join {listeners} listeners", domain.Radio, item)

	if got != "join 1250 listeners" {
		t.Errorf("got %q", got)
	}
}

func TestRender_FieldValuesAreNotExpanded(t *testing.T) {
	item := domain.MusicItem{Common: domain.Common{Title: "{artist}"}, ArtistName: "Nova"}

	got := compose.Render("{title} by {artist}", domain.Music, item)

	if got != "{artist} by Nova" {
		t.Errorf("got %q", got)
	}
}

func TestRender_UnknownPlaceholderKept(t *testing.T) {
	got := compose.Render("{title} {mood}", domain.Music, domain.MusicItem{Common: domain.Common{Title: "x"}})

	if got != "x {mood}" {
		t.Errorf("got %q", got)
	}
}

func TestRender_StripsControlCharacters(t *testing.T) {
	item := domain.VideoItem{Common: domain.Common{Title: "Bad\x07 Title\nSplit\tTab"}}

	got := compose.Render("{title}", domain.Video, item)

	if got != "Bad Title Split Tab" {
		t.Errorf("got %q", got)
	}
}

func TestRender_EmptyDescription_CollapsesBlankLines(t *testing.T) {
	tmpl := "Head\n\n{description}\n\nTail"

	got := compose.Render(tmpl, domain.Video, domain.VideoItem{})

	if got != "Head\n\nTail" {
		t.Errorf("got %q", got)
	}
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("blank lines not collapsed: %q", got)
	}
}

func TestRender_Emoji(t *testing.T) {
	got := compose.Render("{emoji}", domain.Radio, domain.RadioItem{})

	if got != "📻" {
		t.Errorf("got %q", got)
	}
}
