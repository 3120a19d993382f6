package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func archiveServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/movies.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"movies":{"10":{"title":"Live Night","video_id":"abc","type":"3D Live","publish":"2024-03-01T12:00:00Z"}}}`))
	})
	mux.HandleFunc("/kanata/all.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{
			"songs":[{"id":1,"movie_id":10,"title":"opening","singer_ids":[1],"start":"1:30","end_sec":150}],
			"singer_map":{"5":"Guest Five","6":{"name":"Guest Six","color":"#123456"}}
		}`))
	})
	mux.HandleFunc("/talents.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"1":{"name":"Kanata","color":"#76a2dc"}}`))
	})
	return httptest.NewServer(mux)
}

func TestClient_Load(t *testing.T) {
	srv := archiveServer(t)
	defer srv.Close()

	c := NewClient(srv.URL, "kanata")
	archive, err := c.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(archive.Songs) != 1 {
		t.Fatalf("len(Songs) = %d, want 1", len(archive.Songs))
	}
	song := NormalizeSong(archive.Songs[0], archive.Directory)
	if song.StartSeconds() != 90 {
		t.Errorf("StartSeconds() = %d, want 90", song.StartSeconds())
	}
	if song.End == nil || *song.End != 150 {
		t.Errorf("End = %v, want 150", song.End)
	}
	if song.Singers[0].Name != "Kanata" {
		t.Errorf("singer = %+v, want Kanata from talents.json", song.Singers[0])
	}

	movie, ok := archive.Movies[10]
	if !ok {
		t.Fatal("movie 10 missing (id should come from the object key)")
	}
	if movie.VideoID != "abc" {
		t.Errorf("VideoID = %q, want abc", movie.VideoID)
	}

	// Overlay entries layered over the talent directory.
	if archive.Directory[5].DisplayName() != "Guest Five" {
		t.Errorf("overlay string entry = %+v", archive.Directory[5])
	}
	if archive.Directory[6].Color != "#123456" {
		t.Errorf("overlay object entry = %+v", archive.Directory[6])
	}
}

func TestClient_TalentsArrayForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[{"id":1,"name":"Kanata"},{"id":2,"name_jp":"Watame"}]`))
	}))
	defer srv.Close()

	dir, err := NewClient(srv.URL, "kanata").Talents(context.Background())
	if err != nil {
		t.Fatalf("Talents() error: %v", err)
	}
	if dir[1].DisplayName() != "Kanata" || dir[2].DisplayName() != "Watame" {
		t.Errorf("dir = %+v", dir)
	}
}

func TestClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL, "kanata").Load(context.Background()); err == nil {
		t.Fatal("Load() should fail on server error")
	}
}

func TestClient_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"movies":`))
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL, "kanata").Movies(context.Background()); err == nil {
		t.Fatal("Movies() should fail on malformed JSON")
	}
}
