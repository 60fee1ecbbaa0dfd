package ui

import (
	"strings"

	"memorypak/internal/collection"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	completeSymbol = "◇"
	separator      = " · "
	borderTop      = "┌"
	borderSide     = "│"
	borderBottom   = "└"
)

func PickerTheme() *huh.Theme {
	t := huh.ThemeBase()
	red := lipgloss.Color("1")
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.SetString("✗").Foreground(red)
	t.Blurred.ErrorMessage = t.Blurred.ErrorMessage.SetString("✗").Foreground(red)
	return t
}

// Action is one toggle offered for an item.
type Action struct {
	Kind  collection.Kind
	Label string
}

// Actions lists the toggles available for an item with the given flags.
// Owned items are not offered the wishlist.
func Actions(f collection.Flags) []Action {
	actions := []Action{{Kind: collection.Owned, Label: "Mark Owned"}}
	if f.Owned {
		actions[0].Label = "Unmark Owned"
	} else {
		label := "Add to Wishlist"
		if f.Wishlist {
			label = "Remove from Wishlist"
		}
		actions = append(actions, Action{Kind: collection.Wishlist, Label: label})
	}

	fav := Action{Kind: collection.Favorite, Label: "Favorite"}
	if f.Favorite {
		fav.Label = "Unfavorite"
	}
	return append(actions, fav)
}

type Field struct {
	Label string
	Value string
}

// FlagFields describes an item's membership for RenderSummary.
func FlagFields(f collection.Flags) []Field {
	return []Field{
		{Label: "Owned", Value: yesNo(f.Owned)},
		{Label: "Wishlist", Value: yesNo(f.Wishlist)},
		{Label: "Favorite", Value: yesNo(f.Favorite)},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func borderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
}

// RenderSummary draws a bordered block with one line per non-empty field.
func RenderSummary(title string, fields []Field) string {
	var b strings.Builder

	border := borderStyle()

	b.WriteString(border.Render(borderTop))
	b.WriteString(" ")
	b.WriteString(title)
	b.WriteString("\n")

	b.WriteString(border.Render(borderSide))
	b.WriteString("\n")

	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		b.WriteString(border.Render(borderSide))
		b.WriteString(" ")
		b.WriteString(completeSymbol)
		b.WriteString(" ")
		b.WriteString(f.Label)
		b.WriteString(separator)
		b.WriteString(f.Value)
		b.WriteString("\n")
	}

	b.WriteString(border.Render(borderBottom))
	b.WriteString("\n")

	return b.String()
}
