package driver

import (
	"strings"

	"github.com/friedelschoen/wiimouse"
)

// buttonInfo binds one of the 11 core Remote buttons to the three names
// it's known by: the raw wiimouse.Key the device reports, the single
// character used on the control socket's b: broadcast and keymapget
// wire format, and the config-key fragment (button_<readable>).
type buttonInfo struct {
	key      wiimouse.Key
	protocol string
	readable string
}

// buttonTable lists every core Remote button in broadcast order.
var buttonTable = []buttonInfo{
	{wiimouse.KeyA, "a", "a"},
	{wiimouse.KeyB, "b", "b"},
	{wiimouse.KeyPlus, "+", "plus"},
	{wiimouse.KeyMinus, "-", "minus"},
	{wiimouse.KeyHome, "h", "home"},
	{wiimouse.KeyOne, "1", "one"},
	{wiimouse.KeyTwo, "2", "two"},
	{wiimouse.KeyUp, "u", "up"},
	{wiimouse.KeyDown, "d", "down"},
	{wiimouse.KeyLeft, "l", "left"},
	{wiimouse.KeyRight, "r", "right"},
}

// buttonByName resolves a button name from either the control socket's
// bindkey command or a config_file button_<name> key: case-insensitive,
// accepting either the readable name ("Plus") or the protocol token
// ("+").
func buttonByName(name string) (buttonInfo, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, b := range buttonTable {
		if b.readable == lower || b.protocol == lower {
			return b, true
		}
	}
	return buttonInfo{}, false
}
