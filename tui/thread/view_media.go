package thread

import (
	"strings"

	"github.com/CrestNiraj12/rantthread/domain"
	"github.com/CrestNiraj12/rantthread/tui/common"
)

// renderMediaLabel draws a compact attachment label. Attachments without a
// usable http(s) URL fall back to a placeholder.
func renderMediaLabel(md domain.Media) string {
	if !common.IsSafeExternalURL(md.URL) {
		return common.PlaceholderStyle.Render("[media unavailable]")
	}
	icon := "📎 file"
	switch strings.ToLower(strings.TrimSpace(md.Type)) {
	case "image":
		icon = "🖼 image"
	case "video", "gifv":
		icon = "🎬 video"
	case "audio":
		icon = "🔊 audio"
	}
	label := "[" + icon + "]"
	if alt := strings.TrimSpace(md.Alt); alt != "" {
		label += " " + alt
	}
	return common.PlaceholderStyle.Render(label)
}
