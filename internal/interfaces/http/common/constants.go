package common

const (
	// MaxRequestBody limits JSON request bodies for profile/room/survey endpoints.
	MaxRequestBody = 1 << 20
	// MaxRoomPhotoCount caps the photos an owner can attach to a listing.
	MaxRoomPhotoCount = 10
)
