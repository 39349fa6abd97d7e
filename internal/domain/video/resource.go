package video

// MediaType names one of the five binary asset slots a video carries.
type MediaType string

const (
	MediaTypeVideo         MediaType = "VIDEO"
	MediaTypeTrailer       MediaType = "TRAILER"
	MediaTypeBanner        MediaType = "BANNER"
	MediaTypeThumbnail     MediaType = "THUMBNAIL"
	MediaTypeThumbnailHalf MediaType = "THUMBNAIL_HALF"
)

// Resource is a binary asset handed to the media resource gateway.
type Resource struct {
	Content     []byte
	ContentType string
	Name        string
	Type        MediaType
}

// NewResource creates a resource.
func NewResource(content []byte, contentType, name string, mediaType MediaType) Resource {
	return Resource{
		Content:     content,
		ContentType: contentType,
		Name:        name,
		Type:        mediaType,
	}
}
