// Package catalog loads the static song-archive JSON and derives the
// canonical song and video models used by the rest of the application.
package catalog

import (
	"encoding/json"
	"time"
)

// VideoCategory classifies a parent video by its free-text type string.
type VideoCategory int

const (
	CategoryOther VideoCategory = iota
	CategoryLive
	CategoryMV
	CategoryStreaming
)

// String returns the category name.
func (c VideoCategory) String() string {
	switch c {
	case CategoryLive:
		return "live"
	case CategoryMV:
		return "mv"
	case CategoryStreaming:
		return "streaming"
	case CategoryOther:
		return "other"
	default:
		return "unknown"
	}
}

// PerformanceType classifies a song as a solo or unit (group) performance.
type PerformanceType int

const (
	PerformanceSolo PerformanceType = iota
	PerformanceUnit
)

// String returns the performance type name.
func (p PerformanceType) String() string {
	switch p {
	case PerformanceSolo:
		return "solo"
	case PerformanceUnit:
		return "unit"
	default:
		return "unknown"
	}
}

// RawSong is a song record as it appears in the archive JSON. Timestamp
// fields historically appeared under several names and as either numbers
// or "mm:ss" strings, so they decode as untyped values and are resolved
// through StartValue/EndValue.
type RawSong struct {
	ID        int      `json:"id"`
	MovieID   int      `json:"movie_id"`
	Title     string   `json:"title"`
	SingerIDs []int    `json:"singer_ids"`
	Singers   []string `json:"singers"`
	Info      any      `json:"info"`

	Start     any `json:"start"`
	StartSec  any `json:"start_sec"`
	StartTime any `json:"start_time"`
	Time      any `json:"time"`
	Offset    any `json:"offset"`

	End     any `json:"end"`
	EndSec  any `json:"end_sec"`
	EndTime any `json:"end_time"`
}

// StartValue returns the raw start timestamp under the documented field
// precedence: start, start_sec, start_time, time, offset.
func (s RawSong) StartValue() any {
	return firstPresent(s.Start, s.StartSec, s.StartTime, s.Time, s.Offset)
}

// EndValue returns the raw end timestamp under the documented field
// precedence: end, end_sec, end_time.
func (s RawSong) EndValue() any {
	return firstPresent(s.End, s.EndSec, s.EndTime)
}

func firstPresent(values ...any) any {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

// RawMovie is a video record as it appears in the archive JSON.
type RawMovie struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	VideoID string `json:"video_id"`
	Type    string `json:"type"`
	Publish string `json:"publish"`
}

// PublishedAt parses the publish timestamp. The zero time is returned for
// missing or malformed values so sorting still has a total order.
func (m RawMovie) PublishedAt() time.Time {
	if m.Publish == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, m.Publish); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Talent is a singer directory entry. Directory dumps from different
// eras named the display field differently, so DisplayName resolves the
// first populated one.
type Talent struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	NameJP         string `json:"name_jp"`
	NameEN         string `json:"name_en"`
	DisplayNameAlt string `json:"display_name"`
	TitleAlt       string `json:"title"`
	Color          string `json:"color"`
}

// DisplayName returns the first present of name, name_jp, name_en,
// display_name, title.
func (t Talent) DisplayName() string {
	for _, name := range []string{t.Name, t.NameJP, t.NameEN, t.DisplayNameAlt, t.TitleAlt} {
		if name != "" {
			return name
		}
	}
	return ""
}

// Directory maps singer ids to talent entries.
type Directory map[int]Talent

// Merge returns a copy of d with entries from other layered on top.
func (d Directory) Merge(other Directory) Directory {
	merged := make(Directory, len(d)+len(other))
	for id, t := range d {
		merged[id] = t
	}
	for id, t := range other {
		merged[id] = t
	}
	return merged
}

// Singer is a resolved performer name with an optional display color
// (hex string, empty when the directory has none).
type Singer struct {
	Name  string
	Color string
}

// Song is the canonical, immutable song model derived from a RawSong.
type Song struct {
	ID      int
	MovieID int
	Title   string

	// Start and End are offsets into the parent video in whole seconds.
	// A nil Start means the raw value was absent or unparseable and
	// playback starts at 0. A nil End means the song plays to the end
	// of the video.
	Start *int
	End   *int

	Singers     []Singer
	Performance PerformanceType
}

// StartSeconds returns the playback start offset, treating a missing
// start as 0.
func (s Song) StartSeconds() int {
	if s.Start == nil {
		return 0
	}
	return *s.Start
}

// HasEnd reports whether the song defines an explicit end boundary that
// is usable for advancement. An end at or before the start is treated as
// no boundary rather than advancing the moment playback starts.
func (s Song) HasEnd() bool {
	return s.End != nil && *s.End > s.StartSeconds()
}

// ShuffleSong is a canonical song flattened with its parent video
// context, the unit handed to the shuffle playlist.
type ShuffleSong struct {
	Song
	VideoID    string
	VideoTitle string
}

// VideoEntry is the per-video aggregate shown in the list view.
type VideoEntry struct {
	MovieID     int
	Title       string
	VideoID     string
	Category    VideoCategory
	PublishedAt time.Time
	Songs       []Song
}

// SongCount returns the number of songs in the video.
func (v VideoEntry) SongCount() int {
	return len(v.Songs)
}

// moviesPayload is the wire shape of movies.json.
type moviesPayload struct {
	Movies map[string]RawMovie `json:"movies"`
}

// songsPayload is the wire shape of <performer>/all.json. The optional
// singers/singer_map objects are inline directory overlays; values are
// either bare name strings or full talent entries.
type songsPayload struct {
	Songs     []RawSong                  `json:"songs"`
	Singers   map[string]json.RawMessage `json:"singers"`
	SingerMap map[string]json.RawMessage `json:"singer_map"`
}
