package component

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

type zoneAction string

const (
	zoneCard    zoneAction = "card"
	zoneDetails zoneAction = "details"
	zoneRemove  zoneAction = "remove"
	zoneBack    zoneAction = "back"
)

// zoneKey builds the mouse zone id for a control. An empty prefix disables marking, which is
// what static renders use.
func zoneKey(prefix string, action zoneAction, playerID int) string {
	if prefix == "" {
		return ""
	}

	return prefix + string(action) + "-" + strconv.Itoa(playerID)
}

func markZone(zoneID string, value string) string {
	if zoneID == "" {
		return value
	}

	return zone.Mark(zoneID, value)
}

func NewTextInputModel(value string, placeholder string) textinput.Model {
	input := textinput.New()
	input.Cursor.Style = styles.CursorStyle
	input.SetValue(value)
	input.CharLimit = 127
	input.Placeholder = placeholder
	input.PromptStyle = styles.NoStyle
	input.TextStyle = styles.NoStyle

	return input
}
