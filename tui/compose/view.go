package compose

import (
	"fmt"
	"strings"

	"github.com/CrestNiraj12/rantthread/tui/common"
)

// View renders the composer based on the active mode.
func (m Model) View() string {
	if m.err != nil {
		return common.ErrorStyle.Render("Error: "+m.err.Error()) + "\n"
	}

	switch m.mode {
	case editorMode:
		return m.status + "\n"

	case inlineMode:
		var b strings.Builder
		b.WriteString(common.AppTitleStyle.Render("🔥 rantthread"))
		b.WriteString("  Reply to " + common.HandleStyle.Render(m.ctx.AuthorLabel) + "\n")
		if m.ctx.Quoted != "" {
			b.WriteString(common.MutedStyle.Render("> "+common.QuoteExcerpt(m.ctx.Quoted, 70)) + "\n")
		}
		b.WriteString("\n")
		b.WriteString(m.textarea.View())
		b.WriteString("\n\n")

		if m.status != "" {
			b.WriteString(common.StatusBarStyle.Render(m.status))
		} else {
			b.WriteString(common.StatusBarStyle.Render(
				fmt.Sprintf("  ctrl+d: reply • esc: cancel • %d/%d chars",
					len(m.textarea.Value()), CharLimit),
			))
		}

		return b.String()
	}

	return ""
}
