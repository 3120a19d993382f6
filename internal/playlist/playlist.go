// Package playlist builds randomized song playlists for shuffle mode.
package playlist

import (
	"math/rand/v2"

	"github.com/actq/utaview/internal/catalog"
)

// Playlist is an ordered sequence of songs produced by a single shuffle.
// It is immutable: regeneration always builds a new playlist.
type Playlist struct {
	songs []catalog.ShuffleSong
}

// Build filters the song-level list and returns a new shuffled playlist.
// An empty filtered input yields an empty playlist.
func Build(
	songs []catalog.RawSong,
	movies map[int]catalog.RawMovie,
	dir catalog.Directory,
	categories catalog.CategorySet,
	performances catalog.PerformanceSet,
) *Playlist {
	flat := catalog.FlattenForShuffle(songs, movies, dir, categories, performances)
	return &Playlist{songs: Shuffle(flat)}
}

// FromSongs returns a playlist over the given songs as-is, without
// shuffling. Used by tests and deterministic replay.
func FromSongs(songs []catalog.ShuffleSong) *Playlist {
	copied := make([]catalog.ShuffleSong, len(songs))
	copy(copied, songs)
	return &Playlist{songs: copied}
}

// Song returns the song at index, or nil if out of bounds.
func (p *Playlist) Song(index int) *catalog.ShuffleSong {
	if index < 0 || index >= len(p.songs) {
		return nil
	}
	return &p.songs[index]
}

// Songs returns a copy of the playlist contents.
func (p *Playlist) Songs() []catalog.ShuffleSong {
	result := make([]catalog.ShuffleSong, len(p.songs))
	copy(result, p.songs)
	return result
}

// Len returns the number of songs.
func (p *Playlist) Len() int {
	return len(p.songs)
}

// IsEmpty reports whether the playlist has no songs.
func (p *Playlist) IsEmpty() bool {
	return len(p.songs) == 0
}

// Shuffle returns a uniform random permutation of songs using the
// Fisher-Yates algorithm. The input slice is not modified.
func Shuffle(songs []catalog.ShuffleSong) []catalog.ShuffleSong {
	shuffled := make([]catalog.ShuffleSong, len(songs))
	copy(shuffled, songs)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rand.IntN(i + 1) //nolint:gosec // not security-sensitive
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
