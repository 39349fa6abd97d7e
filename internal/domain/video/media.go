package video

// MediaStatus is the transcoding state of an audio-video asset. It is assigned
// by an external pipeline; this layer only stores it.
type MediaStatus string

const (
	MediaStatusPending    MediaStatus = "PENDING"
	MediaStatusProcessing MediaStatus = "PROCESSING"
	MediaStatusCompleted  MediaStatus = "COMPLETED"
	MediaStatusError      MediaStatus = "ERROR"
)

// AudioVideoMedia describes a stored audio-video asset. Equality is by
// checksum and raw location.
type AudioVideoMedia struct {
	Checksum        string
	Name            string
	RawLocation     string
	EncodedLocation string
	Status          MediaStatus
}

// NewAudioVideoMedia creates a pending audio-video descriptor for a freshly
// stored raw asset.
func NewAudioVideoMedia(checksum, name, rawLocation string) AudioVideoMedia {
	return AudioVideoMedia{
		Checksum:    checksum,
		Name:        name,
		RawLocation: rawLocation,
		Status:      MediaStatusPending,
	}
}

// AudioVideoMediaWith restores a descriptor from persisted state.
func AudioVideoMediaWith(checksum, name, rawLocation, encodedLocation string, status MediaStatus) AudioVideoMedia {
	return AudioVideoMedia{
		Checksum:        checksum,
		Name:            name,
		RawLocation:     rawLocation,
		EncodedLocation: encodedLocation,
		Status:          status,
	}
}

// Equals reports value equality by (checksum, rawLocation).
func (m AudioVideoMedia) Equals(other AudioVideoMedia) bool {
	return m.Checksum == other.Checksum && m.RawLocation == other.RawLocation
}

// ImageMedia describes a stored image asset. Equality is by checksum and
// location.
type ImageMedia struct {
	Checksum string
	Name     string
	Location string
}

// NewImageMedia creates an image descriptor.
func NewImageMedia(checksum, name, location string) ImageMedia {
	return ImageMedia{
		Checksum: checksum,
		Name:     name,
		Location: location,
	}
}

// Equals reports value equality by (checksum, location).
func (m ImageMedia) Equals(other ImageMedia) bool {
	return m.Checksum == other.Checksum && m.Location == other.Location
}
