package catalog

import "fmt"

// WatchURL returns the platform watch page for a video.
func WatchURL(videoID string) string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", videoID)
}

// SongURL returns a deep link opening the video at the song's start.
func SongURL(videoID string, song Song) string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s&t=%ds", videoID, song.StartSeconds())
}

// ThumbnailURL returns the medium-quality thumbnail for a video.
func ThumbnailURL(videoID string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/mqdefault.jpg", videoID)
}
