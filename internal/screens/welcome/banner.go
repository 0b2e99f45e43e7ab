package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathrush/internal/ui/theme"
)

const bannerArt = `
 ███╗   ███╗ █████╗ ████████╗██╗  ██╗██████╗ ██╗   ██╗███████╗██╗  ██╗
 ████╗ ████║██╔══██╗╚══██╔══╝██║  ██║██╔══██╗██║   ██║██╔════╝██║  ██║
 ██╔████╔██║███████║   ██║   ███████║██████╔╝██║   ██║███████╗███████║
 ██║╚██╔╝██║██╔══██║   ██║   ██╔══██║██╔══██╗██║   ██║╚════██║██╔══██║
 ██║ ╚═╝ ██║██║  ██║   ██║   ██║  ██║██║  ██║╚██████╔╝███████║██║  ██║
 ╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝ ╚══════╝╚═╝  ╚═╝`

const bannerCompact = "M · A · T · H · R · U · S · H"

// BannerWidth is the column count of the full banner.
const BannerWidth = 70

// RenderBanner returns the MATHRUSH banner styled in the arcade yellow.
// Uses a compact fallback when the full art does not fit.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	if width < BannerWidth+2 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
