package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// caller's access token.
const AccessTokenHeaderName = "access_token"

// Field limits applied to every entry write.
const (
	MaxTitleLength  = 64
	MaxArtistLength = 32
	MaxGenreLength  = 32
	MaxTagLength    = 24
	MaxTags         = 8
	MaxDuration     = 10000
)
