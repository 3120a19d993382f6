package app

import (
	"strings"

	"github.com/actq/utaview/internal/route"
	"github.com/actq/utaview/internal/ui/render"
	"github.com/actq/utaview/internal/ui/styles"
)

// headerHeight is the rows consumed above the active panel.
const headerHeight = 3

// View renders the header and the active panel.
func (m Model) View() string {
	if m.Width == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(render.Separator(m.Width))
	b.WriteString("\n")

	if m.ErrorMsg != "" {
		b.WriteString(styles.T().S().Error.Render(
			render.Truncate(m.ErrorMsg, m.Width)))
		b.WriteString("\n")
	}

	switch {
	case m.Loading:
		b.WriteString(styles.T().S().Muted.Render("カタログを読み込み中..."))
	case m.Mode == route.List:
		b.WriteString(m.ListPanel.View())
	default:
		b.WriteString(m.ShufflePanel.View())
	}
	return b.String()
}

func (m Model) renderHeader() string {
	t := styles.T()
	title := styles.ApplyGradient("utaview", t.Primary, t.Secondary)
	fragment := t.S().Subtle.Render(m.Mode.Fragment())
	hint := t.S().Muted.Render("tab: 表示切替  q: 終了")
	return render.Row(title+"  "+fragment, hint, m.Width)
}
