package domain

// ContentFields is the flat wire form of a ContentItem.
// It is the custom_data of remote generation requests and the body of
// share requests made to this service.
type ContentFields struct {
	ID            string `json:"id,omitempty"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	ArtistName    string `json:"artist_name,omitempty"`
	Creator       string `json:"creator,omitempty"`
	StationName   string `json:"station_name,omitempty"`
	CurrentTrack  string `json:"current_track,omitempty"`
	ListenerCount *int   `json:"listener_count,omitempty"`
	Game          string `json:"game,omitempty"`
	StreamID      string `json:"stream_id,omitempty"`
	AlbumCover    string `json:"album_cover,omitempty"`
	Thumbnail     string `json:"thumbnail,omitempty"`
	CoverImage    string `json:"cover_image,omitempty"`
}

// NewContentItem builds the variant matching ct from flat fields.
// Fields that do not belong to the variant are dropped.
func NewContentItem(ct ContentType, f ContentFields) ContentItem {
	common := Common{ID: f.ID, Title: f.Title, Description: f.Description}

	switch ct {
	case Music:
		return MusicItem{Common: common, ArtistName: f.ArtistName, AlbumCover: f.AlbumCover}
	case Video:
		return VideoItem{Common: common, Creator: f.Creator, Thumbnail: f.Thumbnail}
	case Podcast:
		return PodcastItem{Common: common, Creator: f.Creator, CoverImage: f.CoverImage}
	case Radio:
		return RadioItem{
			Common:        common,
			StationName:   f.StationName,
			CurrentTrack:  f.CurrentTrack,
			ListenerCount: f.ListenerCount,
			CoverImage:    f.CoverImage,
		}
	case Gaming:
		return GamingItem{Common: common, Creator: f.Creator, Game: f.Game, Thumbnail: f.Thumbnail}
	case LiveStream:
		return LiveStreamItem{
			Common:    common,
			Creator:   f.Creator,
			StreamID:  f.StreamID,
			Game:      f.Game,
			Thumbnail: f.Thumbnail,
		}
	default:
		return GenericItem{Common: common, Kind: ct}
	}
}

// FieldsOf flattens an item back into its wire form.
func FieldsOf(item ContentItem) ContentFields {
	base := item.Base()
	f := ContentFields{ID: base.ID, Title: base.Title, Description: base.Description}

	switch v := item.(type) {
	case MusicItem:
		f.ArtistName, f.AlbumCover = v.ArtistName, v.AlbumCover
	case VideoItem:
		f.Creator, f.Thumbnail = v.Creator, v.Thumbnail
	case PodcastItem:
		f.Creator, f.CoverImage = v.Creator, v.CoverImage
	case RadioItem:
		f.StationName, f.CurrentTrack = v.StationName, v.CurrentTrack
		f.ListenerCount, f.CoverImage = v.ListenerCount, v.CoverImage
	case GamingItem:
		f.Creator, f.Game, f.Thumbnail = v.Creator, v.Game, v.Thumbnail
	case LiveStreamItem:
		f.Creator, f.StreamID, f.Game, f.Thumbnail = v.Creator, v.StreamID, v.Game, v.Thumbnail
	}

	return f
}

// ImageURL returns whichever image the item carries, or "".
func ImageURL(item ContentItem) string {
	f := FieldsOf(item)
	switch {
	case f.AlbumCover != "":
		return f.AlbumCover
	case f.Thumbnail != "":
		return f.Thumbnail
	default:
		return f.CoverImage
	}
}
