package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"myandesite/domain"
	"myandesite/helpers"
	"myandesite/interfaces"
	"myandesite/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// UserAgent is sent with every REST request.
const UserAgent = "myandesite/1.0 (+https://github.com/gieseladev/andesite)"

// RESTClient talks to the HTTP side of one Andesite node. Non-2xx responses with a {code, message}
// body are returned as *service.AndesiteError.
type RESTClient struct {
	name     string
	baseURL  string
	password string
	client   *http.Client
	logger   log.Logger
}

var _ interfaces.RESTClient = (*RESTClient)(nil)

// NewRESTClient creates a REST client for the node name at baseURL (e.g. http://andesite:5000, no
// trailing slash needed). An empty password sends no Authorization header. Panics on empty name or
// baseURL and nil client or logger.
//
// Called from cmd/main and the checker CLI for every node with a REST URL.
func NewRESTClient(name, baseURL, password string, client *http.Client, logger log.Logger) *RESTClient {
	return &RESTClient{
		name:     helpers.StrPanic(name, "adapters.rest.go: name is required"),
		baseURL:  strings.TrimRight(helpers.StrPanic(baseURL, "adapters.rest.go: baseURL is required"), "/"),
		password: password,
		client:   helpers.NilPanic(client, "adapters.rest.go: http client is required"),
		logger:   log.With(helpers.NilPanic(logger, "adapters.rest.go: logger is required"), "component", "rest", "node", name),
	}
}

func (c *RESTClient) Name() string { return c.name }

// Request performs method on path (relative to the base URL) with an optional JSON body and decodes
// the JSON response into out (skipped when out is nil).
//
// Returns: nil on 2xx; *service.AndesiteError when a status >= 400 carries {code, message}; a plain
// error for other failures (network, unexpected body).
func (c *RESTClient) Request(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	reqURL := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", path, err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", UserAgent)
	if c.password != "" {
		req.Header.Set(service.HeaderAuthorization, c.password)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	level.Debug(c.logger).Log("msg", "rest request", "method", method, "path", path)
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return responseError(resp.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// responseError maps an error response; bodies without a code and message stay untyped.
func responseError(status int, data []byte) error {
	var raw struct {
		Code    *int    `json:"code"`
		Message *string `json:"message"`
	}
	if err := json.Unmarshal(data, &raw); err != nil || raw.Code == nil || raw.Message == nil {
		return fmt.Errorf("andesite returned %d: %s", status, strings.TrimSpace(string(data)))
	}
	return &service.AndesiteError{Status: status, Code: *raw.Code, Message: *raw.Message}
}

// GetStats performs GET /stats.
func (c *RESTClient) GetStats(ctx context.Context) (*domain.Stats, error) {
	var stats domain.Stats
	if err := c.Request(ctx, http.MethodGet, "stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// LoadTracks performs GET /loadtracks?identifier=. The identifier is passed as is, so search
// prefixes are honoured.
func (c *RESTClient) LoadTracks(ctx context.Context, identifier string) (*domain.LoadedTrack, error) {
	var loaded domain.LoadedTrack
	q := url.Values{"identifier": []string{identifier}}
	if err := c.Request(ctx, http.MethodGet, "loadtracks", q, nil, &loaded); err != nil {
		return nil, err
	}
	return &loaded, nil
}

// LoadTracksSafe loads uri without interpreting search prefixes.
func (c *RESTClient) LoadTracksSafe(ctx context.Context, uri string) (*domain.LoadedTrack, error) {
	return c.LoadTracks(ctx, domain.RawIdentifier(uri))
}

// SearchTracks searches query with searcher.
func (c *RESTClient) SearchTracks(ctx context.Context, searcher domain.Searcher, query string) (*domain.LoadedTrack, error) {
	return c.LoadTracks(ctx, domain.SearchIdentifier(searcher, query))
}

// DecodeTrack performs POST /decodetrack. An Andesite error (invalid track data) yields (nil, nil);
// use DecodeTracks to see the error.
func (c *RESTClient) DecodeTrack(ctx context.Context, track string) (*domain.TrackInfo, error) {
	var info domain.TrackInfo
	err := c.Request(ctx, http.MethodPost, "decodetrack", nil, map[string]string{"track": track}, &info)
	if aerr := service.ToAndesiteError(err); aerr != nil {
		level.Debug(c.logger).Log("msg", "couldn't decode track", "err", aerr)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if info.Track == "" {
		info.Track = track
	}
	return &info, nil
}

// DecodeTracks performs POST /decodetracks; the result is in the order of tracks.
func (c *RESTClient) DecodeTracks(ctx context.Context, tracks []string) ([]domain.TrackInfo, error) {
	if tracks == nil {
		tracks = []string{}
	}
	var infos []domain.TrackInfo
	if err := c.Request(ctx, http.MethodPost, "decodetracks", nil, tracks, &infos); err != nil {
		return nil, err
	}
	return infos, nil
}
