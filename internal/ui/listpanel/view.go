package listpanel

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/actq/utaview/internal/catalog"
	"github.com/actq/utaview/internal/icons"
	"github.com/actq/utaview/internal/ui/render"
	"github.com/actq/utaview/internal/ui/styles"
)

// View renders the list panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n")
	b.WriteString(render.Separator(m.Width()))
	b.WriteString("\n")

	visible := m.Visible()
	if len(visible) == 0 {
		b.WriteString(styles.T().S().Muted.Render("該当する動画がありません"))
		return b.String()
	}

	lines, _ := m.cardLines(visible)
	b.WriteString(strings.Join(m.window(lines), "\n"))
	return b.String()
}

// renderFilterBar shows the two filter axes with the active choice
// highlighted.
func (m Model) renderFilterBar() string {
	s := styles.T().S()

	var types []string
	for f := TypeAll; f <= TypeOther; f++ {
		types = append(types, m.filterLabel(f.label(), f == m.typeFilter))
	}
	var perfs []string
	for f := PerfAll; f <= PerfUnit; f++ {
		perfs = append(perfs, m.filterLabel(f.label(), f == m.perfFilter))
	}

	return s.Muted.Render("動画タイプ ") + strings.Join(types, " ") +
		s.Subtle.Render("   ") +
		s.Muted.Render("出演形式 ") + strings.Join(perfs, " ") + "\n" +
		s.Subtle.Render("t/p: フィルタ切替  enter: 展開  e/c: すべて展開/閉じる")
}

func (m Model) filterLabel(label string, active bool) string {
	if active {
		return styles.T().S().FilterOn.Render(label)
	}
	return styles.T().S().FilterOff.Render(label)
}

// cardLines flattens the visible cards into display lines and returns
// the line index of the cursor's card header.
func (m Model) cardLines(visible []catalog.VideoEntry) (lines []string, cursorLine int) {
	s := styles.T().S()

	for i, e := range visible {
		marker := icons.Collapsed()
		if m.IsExpanded(e.MovieID) {
			marker = icons.Expanded()
		}
		title := render.Truncate(e.Title, m.Width()-24)
		header := fmt.Sprintf("%s %s", marker, title)
		meta := fmt.Sprintf("%d曲 · %s", e.SongCount(), publishLabel(e))

		row := render.Row(s.Base.Render(header), s.Muted.Render(meta), m.Width())
		if i == m.cursor {
			row = render.Row(s.Current.Render(header), s.Muted.Render(meta), m.Width())
			cursorLine = len(lines)
		}
		lines = append(lines, row)

		if m.IsExpanded(e.MovieID) {
			lines = append(lines, m.songLines(e)...)
		}
	}
	return lines, cursorLine
}

func (m Model) songLines(e catalog.VideoEntry) []string {
	s := styles.T().S()
	var lines []string
	for _, song := range m.visibleSongs(e) {
		title := render.Truncate(song.Title, m.Width()/2)
		line := "    " + s.Base.Render(title) + "  " + styles.SingerTags(song.Singers)
		lines = append(lines, render.TruncateStyled(line, m.Width()))
		lines = append(lines, "    "+s.Subtle.Render(catalog.SongURL(e.VideoID, song)))
	}
	return lines
}

// chromeLines is the rows consumed by the filter bar and separator.
const chromeLines = 3

// window slices the lines to the panel height at the scroll offset
// maintained by ensureCursorVisible, clamped in case the panel shrank
// since the last input.
func (m Model) window(lines []string) []string {
	avail := m.Height() - chromeLines
	if avail <= 0 || len(lines) <= avail {
		return lines
	}
	offset := m.offset
	if limit := len(lines) - avail; offset > limit {
		offset = limit
	}
	if offset < 0 {
		offset = 0
	}
	return lines[offset : offset+avail]
}

func publishLabel(e catalog.VideoEntry) string {
	if e.PublishedAt.IsZero() {
		return "不明"
	}
	return humanize.Time(e.PublishedAt)
}
