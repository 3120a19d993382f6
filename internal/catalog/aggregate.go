package catalog

import "sort"

// CategorySet is a multi-select filter over video categories.
type CategorySet map[VideoCategory]bool

// NewCategorySet returns a set containing the given categories.
func NewCategorySet(categories ...VideoCategory) CategorySet {
	s := make(CategorySet, len(categories))
	for _, c := range categories {
		s[c] = true
	}
	return s
}

// AllCategories returns a set with every category selected.
func AllCategories() CategorySet {
	return NewCategorySet(CategoryLive, CategoryStreaming, CategoryMV, CategoryOther)
}

// Has reports whether the category is selected.
func (s CategorySet) Has(c VideoCategory) bool { return s[c] }

// Toggle flips the category's membership.
func (s CategorySet) Toggle(c VideoCategory) {
	if s[c] {
		delete(s, c)
	} else {
		s[c] = true
	}
}

// IsEmpty reports whether no category is selected.
func (s CategorySet) IsEmpty() bool { return len(s) == 0 }

// PerformanceSet is a multi-select filter over performance types.
type PerformanceSet map[PerformanceType]bool

// NewPerformanceSet returns a set containing the given types.
func NewPerformanceSet(types ...PerformanceType) PerformanceSet {
	s := make(PerformanceSet, len(types))
	for _, t := range types {
		s[t] = true
	}
	return s
}

// AllPerformances returns a set with both performance types selected.
func AllPerformances() PerformanceSet {
	return NewPerformanceSet(PerformanceSolo, PerformanceUnit)
}

// Has reports whether the performance type is selected.
func (s PerformanceSet) Has(t PerformanceType) bool { return s[t] }

// Toggle flips the type's membership.
func (s PerformanceSet) Toggle(t PerformanceType) {
	if s[t] {
		delete(s, t)
	} else {
		s[t] = true
	}
}

// IsEmpty reports whether no performance type is selected.
func (s PerformanceSet) IsEmpty() bool { return len(s) == 0 }

// GroupByVideo aggregates songs under their parent videos, sorted by
// publish timestamp descending with encounter order as the tiebreak.
// Songs whose movie_id has no matching movie are dropped.
func GroupByVideo(songs []RawSong, movies map[int]RawMovie, dir Directory) []VideoEntry {
	byMovie := make(map[int]*VideoEntry)
	var order []int

	for _, raw := range songs {
		movie, ok := movies[raw.MovieID]
		if !ok {
			continue
		}
		entry, ok := byMovie[raw.MovieID]
		if !ok {
			entry = &VideoEntry{
				MovieID:     movie.ID,
				Title:       movie.Title,
				VideoID:     movie.VideoID,
				Category:    ClassifyVideoCategory(movie.Type),
				PublishedAt: movie.PublishedAt(),
			}
			byMovie[raw.MovieID] = entry
			order = append(order, raw.MovieID)
		}
		entry.Songs = append(entry.Songs, NormalizeSong(raw, dir))
	}

	entries := make([]VideoEntry, 0, len(order))
	for _, id := range order {
		entries = append(entries, *byMovie[id])
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].PublishedAt.After(entries[j].PublishedAt)
	})
	return entries
}

// FlattenForShuffle produces the song-level list the shuffle playlist is
// built from, in input encounter order. A song is included when its
// movie resolves, its video category is selected, and its performance
// type is selected.
func FlattenForShuffle(
	songs []RawSong,
	movies map[int]RawMovie,
	dir Directory,
	categories CategorySet,
	performances PerformanceSet,
) []ShuffleSong {
	var result []ShuffleSong
	for _, raw := range songs {
		movie, ok := movies[raw.MovieID]
		if !ok {
			continue
		}
		if !categories.Has(ClassifyVideoCategory(movie.Type)) {
			continue
		}
		song := NormalizeSong(raw, dir)
		if !performances.Has(song.Performance) {
			continue
		}
		result = append(result, ShuffleSong{
			Song:       song,
			VideoID:    movie.VideoID,
			VideoTitle: movie.Title,
		})
	}
	return result
}
