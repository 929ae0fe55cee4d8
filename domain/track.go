package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
)

// UnknownArtist is what Lavaplayer reports as author when it is not known.
const UnknownArtist = "Unknown artist"

// LoadType classifies a /loadtracks response.
type LoadType string

const (
	LoadTypeTrackLoaded    LoadType = "TRACK_LOADED"
	LoadTypeSearchResult   LoadType = "SEARCH_RESULT"
	LoadTypePlaylistLoaded LoadType = "PLAYLIST_LOADED"
	LoadTypeNoMatches      LoadType = "NO_MATCHES"
	LoadTypeLoadFailed     LoadType = "LOAD_FAILED"
)

// Success is false only for LOAD_FAILED.
func (l LoadType) Success() bool { return l != LoadTypeLoadFailed }

// TrackMetadata describes a track. Length is nil for streams (Andesite sends Long.MAX_VALUE).
type TrackMetadata struct {
	Class      string
	Title      string
	Author     string
	Length     *Duration
	Identifier string
	URI        string
	IsStream   bool
	IsSeekable bool
	Position   Duration
}

type trackMetadataWire struct {
	Class      string   `json:"class"`
	Title      string   `json:"title"`
	Author     string   `json:"author"`
	Length     float64  `json:"length"`
	Identifier string   `json:"identifier"`
	URI        string   `json:"uri"`
	IsStream   bool     `json:"isStream"`
	IsSeekable bool     `json:"isSeekable"`
	Position   Duration `json:"position"`
}

func (m TrackMetadata) MarshalJSON() ([]byte, error) {
	w := trackMetadataWire{
		Class: m.Class, Title: m.Title, Author: m.Author, Identifier: m.Identifier, URI: m.URI,
		IsStream: m.IsStream, IsSeekable: m.IsSeekable, Position: m.Position,
		Length: math.MaxInt64,
	}
	if m.Length != nil {
		w.Length = float64(m.Length.Std().Milliseconds())
	}
	return json.Marshal(w)
}

func (m *TrackMetadata) UnmarshalJSON(b []byte) error {
	var w trackMetadataWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*m = TrackMetadata{
		Class: w.Class, Title: w.Title, Author: w.Author, Identifier: w.Identifier, URI: w.URI,
		IsStream: w.IsStream, IsSeekable: w.IsSeekable, Position: w.Position,
	}
	if !w.IsStream {
		d := Duration(time.Duration(w.Length) * time.Millisecond)
		m.Length = &d
	}
	return nil
}

// AuthorUnknown reports whether Lavaplayer did not know the author.
func (m TrackMetadata) AuthorUnknown() bool { return m.Author == UnknownArtist }

// TrackInfo is an encoded track plus its metadata.
type TrackInfo struct {
	Track string        `json:"track"`
	Info  TrackMetadata `json:"info"`
}

// PlaylistInfo describes a loaded playlist. SelectedTrack is nil when nothing is selected.
type PlaylistInfo struct {
	Name          string `json:"name"`
	SelectedTrack *int   `json:"selectedTrack"`
}

// StackFrame is one frame of a Java stack trace.
type StackFrame struct {
	ClassLoader   *string `json:"classLoader"`
	ModuleName    *string `json:"moduleName"`
	ModuleVersion *string `json:"moduleVersion"`
	ClassName     string  `json:"className"`
	MethodName    string  `json:"methodName"`
	FileName      *string `json:"fileName"`
	LineNumber    *int    `json:"lineNumber"`
	Pretty        string  `json:"pretty"`
}

// ErrorInfo is a Java exception serialised by Andesite.
type ErrorInfo struct {
	Class      string       `json:"class"`
	Message    *string      `json:"message"`
	Stack      []StackFrame `json:"stack"`
	Suppressed []ErrorInfo  `json:"suppressed"`
	Cause      *ErrorInfo   `json:"cause"`
}

// LoadedTrack is the /loadtracks response.
type LoadedTrack struct {
	LoadType     LoadType      `json:"loadType"`
	Tracks       []TrackInfo   `json:"tracks"`
	PlaylistInfo *PlaylistInfo `json:"playlistInfo"`
	Cause        *ErrorInfo    `json:"cause"`
	Severity     string        `json:"severity,omitempty"`
}

// Searcher is a search provider prefix understood by /loadtracks.
type Searcher string

const (
	SearchYouTube    Searcher = "ytsearch"
	SearchSoundCloud Searcher = "scsearch"
)

// ParseSearcher resolves a searcher id ("ytsearch") or service name ("YouTube", case-insensitive).
func ParseSearcher(s string) (Searcher, error) {
	switch strings.ToLower(s) {
	case string(SearchYouTube), "youtube":
		return SearchYouTube, nil
	case string(SearchSoundCloud), "soundcloud":
		return SearchSoundCloud, nil
	}
	return "", fmt.Errorf("unknown searcher %q", s)
}

// SearchIdentifier builds the /loadtracks identifier searching query with searcher.
func SearchIdentifier(searcher Searcher, query string) string {
	return string(searcher) + ":" + query
}

// RawIdentifier marks identifier as raw so the node does not interpret a search prefix in it.
func RawIdentifier(identifier string) string {
	return "raw:" + identifier
}
