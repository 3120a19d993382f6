package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const userAgent = "utaview/1.0 (https://github.com/actq/utaview)"

// Client fetches the static archive JSON.
type Client struct {
	httpClient *http.Client
	baseURL    string
	performer  string
}

// NewClient creates an archive client for the given API base and
// performer directory.
func NewClient(baseURL, performer string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		performer: performer,
	}
}

// Archive bundles everything the views derive from.
type Archive struct {
	Songs     []RawSong
	Movies    map[int]RawMovie
	Directory Directory
}

// Load fetches movies, songs, and the talent directory. The inline
// singer overlays from the songs payload are layered over the talent
// directory.
func (c *Client) Load(ctx context.Context) (*Archive, error) {
	movies, err := c.Movies(ctx)
	if err != nil {
		return nil, err
	}
	songs, overlay, err := c.Songs(ctx)
	if err != nil {
		return nil, err
	}
	dir, err := c.Talents(ctx)
	if err != nil {
		return nil, err
	}
	return &Archive{
		Songs:     songs,
		Movies:    movies,
		Directory: dir.Merge(overlay),
	}, nil
}

// Movies fetches movies.json, keyed by movie id.
func (c *Client) Movies(ctx context.Context) (map[int]RawMovie, error) {
	var payload moviesPayload
	if err := c.getJSON(ctx, c.baseURL+"/movies.json", &payload); err != nil {
		return nil, err
	}
	movies := make(map[int]RawMovie, len(payload.Movies))
	for key, movie := range payload.Movies {
		id := movie.ID
		if id == 0 {
			// Older dumps only carry the id as the object key.
			parsed, err := strconv.Atoi(key)
			if err != nil {
				continue
			}
			id = parsed
			movie.ID = parsed
		}
		movies[id] = movie
	}
	return movies, nil
}

// Songs fetches <performer>/all.json and returns the songs plus any
// inline singer directory overlay.
func (c *Client) Songs(ctx context.Context) ([]RawSong, Directory, error) {
	var payload songsPayload
	url := fmt.Sprintf("%s/%s/all.json", c.baseURL, c.performer)
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, nil, err
	}
	overlay := make(Directory)
	mergeOverlay(overlay, payload.Singers)
	mergeOverlay(overlay, payload.SingerMap)
	return payload.Songs, overlay, nil
}

// Talents fetches talents.json. The payload has shipped both as a map
// keyed by id and as a plain array of entries.
func (c *Client) Talents(ctx context.Context) (Directory, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, c.baseURL+"/talents.json", &raw); err != nil {
		return nil, err
	}
	return decodeDirectory(raw)
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: unexpected status: %s", url, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

func decodeDirectory(raw json.RawMessage) (Directory, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return Directory{}, nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var entries []Talent
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("decode talent list: %w", err)
		}
		dir := make(Directory, len(entries))
		for _, t := range entries {
			dir[t.ID] = t
		}
		return dir, nil
	}

	var byID map[string]json.RawMessage
	if err := json.Unmarshal(raw, &byID); err != nil {
		return nil, fmt.Errorf("decode talent map: %w", err)
	}
	dir := make(Directory, len(byID))
	mergeOverlay(dir, byID)
	return dir, nil
}

// mergeOverlay folds id-keyed entries into dir. Values are either full
// talent objects or bare name strings.
func mergeOverlay(dir Directory, entries map[string]json.RawMessage) {
	for key, raw := range entries {
		id, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		var name string
		if err := json.Unmarshal(raw, &name); err == nil {
			dir[id] = Talent{ID: id, Name: name}
			continue
		}
		var t Talent
		if err := json.Unmarshal(raw, &t); err != nil {
			continue
		}
		t.ID = id
		dir[id] = t
	}
}
