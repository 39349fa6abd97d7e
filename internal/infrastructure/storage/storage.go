// Package storage implements the media resource gateway over a local
// filesystem, S3 or MinIO. Every asset for one video lives under the
// "<videoID>/" prefix so ClearResources can remove them all in one sweep.
package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path"
	"strings"

	"github.com/kinotek/catalog/internal/domain/video"
)

// objectKey builds the ID-scoped location of one asset.
func objectKey(id video.ID, resource video.Resource) string {
	return path.Join(id.String(), strings.ToLower(string(resource.Type)), resource.Name)
}

// checksum returns the hex SHA-256 of the resource content.
func checksum(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

func audioVideoFor(id video.ID, resource video.Resource) video.AudioVideoMedia {
	return video.NewAudioVideoMedia(checksum(resource.Content), resource.Name, objectKey(id, resource))
}

func imageFor(id video.ID, resource video.Resource) video.ImageMedia {
	return video.NewImageMedia(checksum(resource.Content), resource.Name, objectKey(id, resource))
}

func clearPrefix(id video.ID) string {
	return fmt.Sprintf("%s/", id.String())
}
