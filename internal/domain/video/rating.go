package video

// Rating is the audience rating assigned to a video.
type Rating string

const (
	RatingER    Rating = "ER"
	RatingL     Rating = "L"
	RatingAge10 Rating = "10"
	RatingAge12 Rating = "12"
	RatingAge14 Rating = "14"
	RatingAge16 Rating = "16"
	RatingAge18 Rating = "18"
)

// RatingOf parses a rating code. ok is false for unknown or empty codes;
// a missing rating is reported later by the video validator, not here.
func RatingOf(value string) (Rating, bool) {
	switch Rating(value) {
	case RatingER, RatingL, RatingAge10, RatingAge12, RatingAge14, RatingAge16, RatingAge18:
		return Rating(value), true
	default:
		return "", false
	}
}

// String returns the rating code.
func (r Rating) String() string {
	return string(r)
}
