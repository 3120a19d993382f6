package catalog

import "testing"

func sampleMovies() map[int]RawMovie {
	return map[int]RawMovie{
		10: {ID: 10, Title: "3D Live 2024", VideoID: "livevid", Type: "3D Live", Publish: "2024-03-01T12:00:00Z"},
		11: {ID: 11, Title: "MV One", VideoID: "mvvid1", Type: "MV", Publish: "2024-05-01T12:00:00Z"},
		12: {ID: 12, Title: "Singing Stream", VideoID: "streamvid", Type: "Streaming", Publish: "2024-04-01T12:00:00Z"},
	}
}

func TestGroupByVideo_Aggregation(t *testing.T) {
	songs := []RawSong{
		{ID: 1, MovieID: 10, Title: "solo song", SingerIDs: []int{1}},
		{ID: 2, MovieID: 10, Title: "unit song", SingerIDs: []int{1, 2}},
	}

	entries := GroupByVideo(songs, sampleMovies(), testDirectory())

	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	entry := entries[0]
	if entry.SongCount() != 2 {
		t.Errorf("SongCount() = %d, want 2", entry.SongCount())
	}
	if entry.Category != CategoryLive {
		t.Errorf("Category = %v, want live", entry.Category)
	}
	if entry.Songs[0].Performance != PerformanceSolo {
		t.Errorf("song 1 performance = %v, want solo", entry.Songs[0].Performance)
	}
	if entry.Songs[1].Performance != PerformanceUnit {
		t.Errorf("song 2 performance = %v, want unit", entry.Songs[1].Performance)
	}
}

func TestGroupByVideo_SortsByPublishDescending(t *testing.T) {
	songs := []RawSong{
		{ID: 1, MovieID: 10},
		{ID: 2, MovieID: 11},
		{ID: 3, MovieID: 12},
	}

	entries := GroupByVideo(songs, sampleMovies(), nil)

	want := []int{11, 12, 10}
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}
	for i, movieID := range want {
		if entries[i].MovieID != movieID {
			t.Errorf("entries[%d].MovieID = %d, want %d", i, entries[i].MovieID, movieID)
		}
	}
}

func TestGroupByVideo_DropsOrphanSongs(t *testing.T) {
	songs := []RawSong{
		{ID: 1, MovieID: 10},
		{ID: 2, MovieID: 999},
	}

	entries := GroupByVideo(songs, sampleMovies(), nil)

	if len(entries) != 1 || entries[0].MovieID != 10 {
		t.Fatalf("entries = %+v, want only movie 10", entries)
	}
}

func TestFlattenForShuffle_Filters(t *testing.T) {
	movies := map[int]RawMovie{
		20: {ID: 20, Title: "MV Collection", VideoID: "mvv", Type: "MV"},
		21: {ID: 21, Title: "Live Night", VideoID: "livev", Type: "3D Live"},
	}
	songs := []RawSong{
		// Five mv/solo songs.
		{ID: 1, MovieID: 20, SingerIDs: []int{1}},
		{ID: 2, MovieID: 20, SingerIDs: []int{1}},
		{ID: 3, MovieID: 20, SingerIDs: []int{2}},
		{ID: 4, MovieID: 20, SingerIDs: []int{2}},
		{ID: 5, MovieID: 20, SingerIDs: []int{3}},
		// Excluded: mv but unit, live solo, live unit.
		{ID: 6, MovieID: 20, SingerIDs: []int{1, 2}},
		{ID: 7, MovieID: 21, SingerIDs: []int{1}},
		{ID: 8, MovieID: 21, SingerIDs: []int{1, 2}},
	}

	flat := FlattenForShuffle(
		songs, movies, testDirectory(),
		NewCategorySet(CategoryMV),
		NewPerformanceSet(PerformanceSolo),
	)

	if len(flat) != 5 {
		t.Fatalf("len(flat) = %d, want 5", len(flat))
	}
	for i, s := range flat {
		if s.ID != i+1 {
			t.Errorf("flat[%d].ID = %d, want %d (encounter order)", i, s.ID, i+1)
		}
		if s.VideoID != "mvv" || s.VideoTitle != "MV Collection" {
			t.Errorf("flat[%d] video context = %q/%q", i, s.VideoID, s.VideoTitle)
		}
	}
}

func TestFlattenForShuffle_EmptyFilter(t *testing.T) {
	songs := []RawSong{{ID: 1, MovieID: 10}}

	flat := FlattenForShuffle(songs, sampleMovies(), nil, NewCategorySet(), AllPerformances())

	if len(flat) != 0 {
		t.Errorf("len(flat) = %d, want 0", len(flat))
	}
}

func TestCategorySet_Toggle(t *testing.T) {
	s := NewCategorySet(CategoryLive)

	s.Toggle(CategoryMV)
	if !s.Has(CategoryMV) {
		t.Error("toggle should add mv")
	}
	s.Toggle(CategoryLive)
	s.Toggle(CategoryMV)
	if !s.IsEmpty() {
		t.Errorf("set = %v, want empty", s)
	}
}
