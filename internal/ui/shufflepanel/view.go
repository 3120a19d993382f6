package shufflepanel

import (
	"fmt"
	"strings"

	"github.com/actq/utaview/internal/catalog"
	"github.com/actq/utaview/internal/icons"
	"github.com/actq/utaview/internal/ui/render"
	"github.com/actq/utaview/internal/ui/styles"
)

// View renders the shuffle panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n")
	b.WriteString(render.Separator(m.Width()))
	b.WriteString("\n")

	if m.FiltersEmpty() {
		b.WriteString(styles.T().S().Error.Render(
			"少なくとも1つの動画タイプと1つの出演形式を選択してください"))
		b.WriteString("\n")
	}

	if m.ctrl.Len() == 0 {
		b.WriteString(styles.T().S().Muted.Render(
			"フィルタを設定して r で再生開始"))
		return b.String()
	}

	b.WriteString(m.renderNowPlaying())
	b.WriteString("\n")
	b.WriteString(m.renderSeekbar())
	b.WriteString("\n")
	b.WriteString(m.renderTransport())
	b.WriteString("\n")
	b.WriteString(render.Separator(m.Width()))
	b.WriteString("\n")
	b.WriteString(m.renderPlaylist())
	return b.String()
}

func (m Model) renderFilterBar() string {
	s := styles.T().S()
	cat := func(label string, c catalog.VideoCategory) string {
		if m.Categories.Has(c) {
			return s.FilterOn.Render(label)
		}
		return s.FilterOff.Render(label)
	}
	perf := func(label string, p catalog.PerformanceType) string {
		if m.Performances.Has(p) {
			return s.FilterOn.Render(label)
		}
		return s.FilterOff.Render(label)
	}

	return s.Muted.Render("動画タイプ ") +
		cat("1:3D Live", catalog.CategoryLive) + " " +
		cat("2:歌枠", catalog.CategoryStreaming) + " " +
		cat("3:MV", catalog.CategoryMV) + " " +
		cat("4:その他", catalog.CategoryOther) +
		s.Subtle.Render("   ") +
		s.Muted.Render("出演形式 ") +
		perf("s:ソロ", catalog.PerformanceSolo) + " " +
		perf("u:コラボ", catalog.PerformanceUnit) + "\n" +
		s.Subtle.Render("r: 再シャッフル  space: 再生/一時停止  h/l: 前後の曲  j/k+enter: 選択")
}

func (m Model) renderNowPlaying() string {
	s := styles.T().S()
	song := m.ctrl.Current()
	if song == nil {
		return ""
	}

	title := render.Truncate(song.Title, m.Width())
	video := render.Truncate(song.VideoTitle, m.Width())
	link := catalog.SongURL(song.VideoID, song.Song)

	return s.Title.Render(title) + "\n" +
		s.Muted.Render(video) + "\n" +
		render.TruncateStyled(styles.SingerTags(song.Singers), m.Width()) + "\n" +
		s.Subtle.Render(render.Truncate(link, m.Width()))
}

// renderSeekbar draws elapsed/total flanking a progress bar scaled to
// the song's own span, not the whole video.
func (m Model) renderSeekbar() string {
	s := styles.T().S()
	elapsed := formatTime(int(m.ctrl.SongElapsed()))
	total := formatTime(int(m.ctrl.SongDuration()))

	barWidth := m.Width() - len(elapsed) - len(total) - 4
	if barWidth < 8 {
		barWidth = 8
	}
	filled := int(m.ctrl.SongProgress() * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}
	bar := s.Current.Render(strings.Repeat("█", filled)) +
		s.Subtle.Render(strings.Repeat("─", barWidth-filled))

	return fmt.Sprintf("%s  %s  %s", s.Muted.Render(elapsed), bar, s.Muted.Render(total))
}

func (m Model) renderTransport() string {
	s := styles.T().S()
	var parts []string

	prev := icons.Prev() + " 前の曲"
	if m.ctrl.Index() == 0 {
		prev = s.Subtle.Render(prev)
	}
	parts = append(parts, prev)

	if m.ctrl.IsPlaying() {
		parts = append(parts, icons.Pause()+" 一時停止")
	} else {
		parts = append(parts, icons.Play()+" 再生")
	}

	next := "次の曲 " + icons.Next()
	if m.ctrl.Index() >= m.ctrl.Len()-1 {
		next = s.Subtle.Render(next)
	}
	parts = append(parts, next)

	parts = append(parts, fmt.Sprintf("(%d/%d)", m.ctrl.Index()+1, m.ctrl.Len()))
	return s.Base.Render(strings.Join(parts, "   "))
}

func (m Model) renderPlaylist() string {
	s := styles.T().S()
	songs := m.ctrl.Playlist()

	var lines []string
	for _, item := range playlistWindow(len(songs), m.selection(), 3) {
		if item.separator {
			lines = append(lines, s.Subtle.Render("    ···"))
			continue
		}
		song := songs[item.index]
		text := fmt.Sprintf("%3d  %s", item.index+1,
			render.Truncate(song.Title, m.Width()/2))
		text = render.Row(text,
			render.Truncate(song.VideoTitle, m.Width()/3), m.Width()-2)

		switch {
		case item.index == m.ctrl.Index():
			text = s.Current.Render(icons.Playing() + " " + text)
		case item.index == m.selection() && m.sel >= 0:
			text = s.Cursor.Render("  " + text)
		default:
			text = s.Base.Render("  " + text)
		}
		lines = append(lines, render.TruncateStyled(text, m.Width()))
	}
	return strings.Join(lines, "\n")
}

// formatTime renders whole seconds as m:ss, or h:mm:ss past an hour.
func formatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	mn := seconds % 3600 / 60
	sec := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, mn, sec)
	}
	return fmt.Sprintf("%d:%02d", mn, sec)
}
