package interfaces

import (
	"context"

	"myandesite/domain"
)

// RESTClient is the HTTP side of one node. Non-2xx responses carrying {code, message} surface as
// *service.AndesiteError.
//
//go:generate moq -stub -out mock/rest_client.go -pkg mock . RESTClient
type RESTClient interface {
	Name() string
	GetStats(ctx context.Context) (*domain.Stats, error)
	// LoadTracks resolves an identifier (URL, "ytsearch:..." query, "raw:..." track).
	LoadTracks(ctx context.Context, identifier string) (*domain.LoadedTrack, error)
	// DecodeTrack returns (nil, nil) when the node cannot decode the track.
	DecodeTrack(ctx context.Context, track string) (*domain.TrackInfo, error)
	DecodeTracks(ctx context.Context, tracks []string) ([]domain.TrackInfo, error)
}
