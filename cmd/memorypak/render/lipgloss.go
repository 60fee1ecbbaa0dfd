package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"memorypak/internal/settings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

type palette struct {
	owned    lipgloss.Color
	wishlist lipgloss.Color
	favorite lipgloss.Color
	accent   lipgloss.Color
}

var palettes = map[settings.Theme]palette{
	settings.ThemeDark:  {owned: "10", wishlist: "11", favorite: "9", accent: "12"},
	settings.ThemeLight: {owned: "2", wishlist: "3", favorite: "1", accent: "4"},
}

type LipglossRenderer struct {
	width int
	r     *lipgloss.Renderer

	nameStyle     lipgloss.Style
	detailStyle   lipgloss.Style
	ownedStyle    lipgloss.Style
	wishlistStyle lipgloss.Style
	favoriteStyle lipgloss.Style
	statsStyle    lipgloss.Style
}

func NewLipglossRenderer(w io.Writer, width int, theme settings.Theme) *LipglossRenderer {
	r := lipgloss.NewRenderer(w)
	r.SetHasDarkBackground(theme != settings.ThemeLight)

	p, ok := palettes[theme]
	if !ok {
		p = palettes[settings.ThemeDark]
	}

	return &LipglossRenderer{
		width:         width,
		r:             r,
		nameStyle:     r.NewStyle().Bold(true),
		detailStyle:   r.NewStyle().Faint(true),
		ownedStyle:    r.NewStyle().Foreground(p.owned),
		wishlistStyle: r.NewStyle().Foreground(p.wishlist),
		favoriteStyle: r.NewStyle().Foreground(p.favorite),
		statsStyle:    r.NewStyle().Foreground(p.accent),
	}
}

func NewLipglossRendererAuto(w io.Writer, theme settings.Theme) *LipglossRenderer {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = tw
		}
	}
	return NewLipglossRenderer(w, width, theme)
}

func (r *LipglossRenderer) RenderList(view ListView) string {
	if view.IsEmpty() {
		empty := view.Empty
		if empty == "" {
			empty = "Nothing found."
		}
		return empty + "\n"
	}

	var sb strings.Builder
	for i, item := range view.Items {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(r.renderItem(item))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (r *LipglossRenderer) renderItem(item ListItem) string {
	name := r.nameStyle.Render(item.Name)
	badges := r.renderBadges(item)

	header := name
	if badges != "" {
		padding := max(1, r.width-lipgloss.Width(name)-lipgloss.Width(badges))
		header = name + strings.Repeat(" ", padding) + badges
	}

	lines := []string{header}
	if item.Detail != "" {
		lines = append(lines, r.detailStyle.Render("  "+item.Detail))
	}
	return strings.Join(lines, "\n")
}

func (r *LipglossRenderer) renderBadges(item ListItem) string {
	var badges []string
	if item.Owned {
		badges = append(badges, r.ownedStyle.Render("✓ Owned"))
	}
	if item.Wishlist {
		badges = append(badges, r.wishlistStyle.Render("Wishlist"))
	}
	if item.Favorite {
		badges = append(badges, r.favoriteStyle.Render("♥"))
	}
	return strings.Join(badges, " ")
}

func (r *LipglossRenderer) RenderStats(view StatsView) string {
	parts := []string{
		fmt.Sprintf("Total: %d", view.Total),
		fmt.Sprintf("Owned: %d", view.Owned),
		fmt.Sprintf("Wishlist: %d", view.Wishlist),
		fmt.Sprintf("Favorites: %d", view.Favorite),
	}
	if view.HasCompletion {
		parts = append(parts, fmt.Sprintf("%.1f%% Complete", view.Completion))
	}

	line := strings.Join(parts, " | ")
	if view.Label != "" {
		line = view.Label + ": " + line
	}
	return r.statsStyle.Render(line) + "\n"
}
