package virtdev

import "strings"

// CatalogEntry describes one host keycode the control socket's
// keycount/keyget/bindkey commands can enumerate and resolve by name,
// one entry per bindable host key: a raw name
// matching the kernel's KEY_*/BTN_* macro, an optional human-readable
// label, and a coarse category used to group entries in a UI.
type CatalogEntry struct {
	Key      Key
	RawName  string
	Human    string
	Category string
}

// Catalog is the fixed, ordered list of bindable keycodes (the device
// itself registers the whole KeyReserved..KeyMax range at open time).
// Index into it is the wire index keyget/keycount expose over the
// control socket, so its order must stay stable across releases.
var Catalog = []CatalogEntry{
	{Key: ButtonLeft, RawName: "BTN_LEFT", Human: "Left Button", Category: "Mouse"},
	{Key: ButtonRight, RawName: "BTN_RIGHT", Human: "Right Button", Category: "Mouse"},
	{Key: ButtonMiddle, RawName: "BTN_MIDDLE", Human: "Middle Button", Category: "Mouse"},
	{Key: ButtonForward, RawName: "BTN_FORWARD", Human: "Forward", Category: "Mouse"},
	{Key: ButtonBack, RawName: "BTN_BACK", Human: "Back", Category: "Mouse"},
	{Key: ButtonSide, RawName: "BTN_SIDE", Human: "", Category: "Mouse"},
	{Key: ButtonExtra, RawName: "BTN_EXTRA", Human: "", Category: "Mouse"},
	{Key: ButtonTask, RawName: "BTN_TASK", Human: "", Category: "Mouse"},
	{Key: KeyEsc, RawName: "KEY_ESC", Human: "Escape", Category: "Keyboard"},
	{Key: KeyEnter, RawName: "KEY_ENTER", Human: "Enter", Category: "Keyboard"},
	{Key: Key1, RawName: "KEY_1", Human: "1", Category: "Keyboard"},
	{Key: Key2, RawName: "KEY_2", Human: "2", Category: "Keyboard"},
	{Key: Key3, RawName: "KEY_3", Human: "3", Category: "Keyboard"},
	{Key: Key4, RawName: "KEY_4", Human: "4", Category: "Keyboard"},
	{Key: Key5, RawName: "KEY_5", Human: "5", Category: "Keyboard"},
	{Key: Key6, RawName: "KEY_6", Human: "6", Category: "Keyboard"},
	{Key: Key7, RawName: "KEY_7", Human: "7", Category: "Keyboard"},
	{Key: Key8, RawName: "KEY_8", Human: "8", Category: "Keyboard"},
	{Key: Key9, RawName: "KEY_9", Human: "9", Category: "Keyboard"},
	{Key: Key0, RawName: "KEY_0", Human: "0", Category: "Keyboard"},
	{Key: KeyMinus, RawName: "KEY_MINUS", Human: "-", Category: "Keyboard"},
	{Key: KeyEqual, RawName: "KEY_EQUAL", Human: "=", Category: "Keyboard"},
	{Key: KeyBackspace, RawName: "KEY_BACKSPACE", Human: "Backspace", Category: "Keyboard"},
	{Key: KeyTab, RawName: "KEY_TAB", Human: "Tab", Category: "Keyboard"},
	{Key: KeyQ, RawName: "KEY_Q", Human: "Q", Category: "Keyboard"},
	{Key: KeyW, RawName: "KEY_W", Human: "W", Category: "Keyboard"},
	{Key: KeyE, RawName: "KEY_E", Human: "E", Category: "Keyboard"},
	{Key: KeyR, RawName: "KEY_R", Human: "R", Category: "Keyboard"},
	{Key: KeyT, RawName: "KEY_T", Human: "T", Category: "Keyboard"},
	{Key: KeyY, RawName: "KEY_Y", Human: "Y", Category: "Keyboard"},
	{Key: KeyU, RawName: "KEY_U", Human: "U", Category: "Keyboard"},
	{Key: KeyI, RawName: "KEY_I", Human: "I", Category: "Keyboard"},
	{Key: KeyO, RawName: "KEY_O", Human: "O", Category: "Keyboard"},
	{Key: KeyP, RawName: "KEY_P", Human: "P", Category: "Keyboard"},
	{Key: KeyLeftbrace, RawName: "KEY_LEFTBRACE", Human: "[", Category: "Keyboard"},
	{Key: KeyRightbrace, RawName: "KEY_RIGHTBRACE", Human: "]", Category: "Keyboard"},
	{Key: KeyA, RawName: "KEY_A", Human: "A", Category: "Keyboard"},
	{Key: KeyS, RawName: "KEY_S", Human: "S", Category: "Keyboard"},
	{Key: KeyD, RawName: "KEY_D", Human: "D", Category: "Keyboard"},
	{Key: KeyF, RawName: "KEY_F", Human: "F", Category: "Keyboard"},
	{Key: KeyG, RawName: "KEY_G", Human: "G", Category: "Keyboard"},
	{Key: KeyH, RawName: "KEY_H", Human: "H", Category: "Keyboard"},
	{Key: KeyJ, RawName: "KEY_J", Human: "J", Category: "Keyboard"},
	{Key: KeyK, RawName: "KEY_K", Human: "K", Category: "Keyboard"},
	{Key: KeyL, RawName: "KEY_L", Human: "L", Category: "Keyboard"},
	{Key: KeySemicolon, RawName: "KEY_SEMICOLON", Human: ";", Category: "Keyboard"},
	{Key: KeyApostrophe, RawName: "KEY_APOSTROPHE", Human: "'", Category: "Keyboard"},
	{Key: KeyGrave, RawName: "KEY_GRAVE", Human: "`", Category: "Keyboard"},
	{Key: KeyBackslash, RawName: "KEY_BACKSLASH", Human: "\\", Category: "Keyboard"},
	{Key: KeyZ, RawName: "KEY_Z", Human: "Z", Category: "Keyboard"},
	{Key: KeyX, RawName: "KEY_X", Human: "X", Category: "Keyboard"},
	{Key: KeyC, RawName: "KEY_C", Human: "C", Category: "Keyboard"},
	{Key: KeyV, RawName: "KEY_V", Human: "V", Category: "Keyboard"},
	{Key: KeyB, RawName: "KEY_B", Human: "B", Category: "Keyboard"},
	{Key: KeyN, RawName: "KEY_N", Human: "N", Category: "Keyboard"},
	{Key: KeyM, RawName: "KEY_M", Human: "M", Category: "Keyboard"},
	{Key: KeyComma, RawName: "KEY_COMMA", Human: ",", Category: "Keyboard"},
	{Key: KeyDot, RawName: "KEY_DOT", Human: ".", Category: "Keyboard"},
	{Key: KeySlash, RawName: "KEY_SLASH", Human: "/", Category: "Keyboard"},
	{Key: KeySpace, RawName: "KEY_SPACE", Human: "Space", Category: "Keyboard"},
	{Key: KeyF1, RawName: "KEY_F1", Human: "F1", Category: "Keyboard"},
	{Key: KeyF2, RawName: "KEY_F2", Human: "F2", Category: "Keyboard"},
	{Key: KeyF3, RawName: "KEY_F3", Human: "F3", Category: "Keyboard"},
	{Key: KeyF4, RawName: "KEY_F4", Human: "F4", Category: "Keyboard"},
	{Key: KeyF5, RawName: "KEY_F5", Human: "F5", Category: "Keyboard"},
	{Key: KeyF6, RawName: "KEY_F6", Human: "F6", Category: "Keyboard"},
	{Key: KeyF7, RawName: "KEY_F7", Human: "F7", Category: "Keyboard"},
	{Key: KeyF8, RawName: "KEY_F8", Human: "F8", Category: "Keyboard"},
	{Key: KeyF9, RawName: "KEY_F9", Human: "F9", Category: "Keyboard"},
	{Key: KeyF10, RawName: "KEY_F10", Human: "F10", Category: "Keyboard"},
	{Key: KeyF11, RawName: "KEY_F11", Human: "F11", Category: "Keyboard"},
	{Key: KeyF12, RawName: "KEY_F12", Human: "F12", Category: "Keyboard"},
	{Key: KeyLeftalt, RawName: "KEY_LEFTALT", Human: "Left Alt", Category: "Keyboard"},
	{Key: KeyLeftshift, RawName: "KEY_LEFTSHIFT", Human: "Left Shift", Category: "Keyboard"},
	{Key: KeyLeftctrl, RawName: "KEY_LEFTCTRL", Human: "Left Control", Category: "Keyboard"},
	{Key: KeyLeftmeta, RawName: "KEY_LEFTMETA", Human: "Left Meta", Category: "Keyboard"},
	{Key: KeyRightshift, RawName: "KEY_RIGHTSHIFT", Human: "Right Shift", Category: "Keyboard"},
	{Key: KeyRightalt, RawName: "KEY_RIGHTALT", Human: "Right Alt", Category: "Keyboard"},
	{Key: KeyRightctrl, RawName: "KEY_RIGHTCTRL", Human: "Right Control", Category: "Keyboard"},
	{Key: KeyRightmeta, RawName: "KEY_RIGHTMETA", Human: "Right Meta", Category: "Keyboard"},
	{Key: KeyCapslock, RawName: "KEY_CAPSLOCK", Human: "Caps Lock", Category: "Keyboard"},
	{Key: KeyNumlock, RawName: "KEY_NUMLOCK", Human: "Numlock", Category: "Keyboard"},
	{Key: KeyScrolllock, RawName: "KEY_SCROLLLOCK", Human: "Scrollock", Category: "Keyboard"},
	{Key: KeyKpasterisk, RawName: "KEY_KPASTERISK", Human: "Keypad *", Category: "Keyboard"},
	{Key: KeyKp1, RawName: "KEY_KP1", Human: "Keypad 1", Category: "Keyboard"},
	{Key: KeyKp2, RawName: "KEY_KP2", Human: "Keypad 2", Category: "Keyboard"},
	{Key: KeyKp3, RawName: "KEY_KP3", Human: "Keypad 3", Category: "Keyboard"},
	{Key: KeyKp4, RawName: "KEY_KP4", Human: "Keypad 4", Category: "Keyboard"},
	{Key: KeyKp5, RawName: "KEY_KP5", Human: "Keypad 5", Category: "Keyboard"},
	{Key: KeyKp6, RawName: "KEY_KP6", Human: "Keypad 6", Category: "Keyboard"},
	{Key: KeyKp7, RawName: "KEY_KP7", Human: "Keypad 7", Category: "Keyboard"},
	{Key: KeyKp8, RawName: "KEY_KP8", Human: "Keypad 8", Category: "Keyboard"},
	{Key: KeyKp9, RawName: "KEY_KP9", Human: "Keypad 9", Category: "Keyboard"},
	{Key: KeyKp0, RawName: "KEY_KP0", Human: "Keypad 0", Category: "Keyboard"},
	{Key: KeyKpplus, RawName: "KEY_KPPLUS", Human: "Keypad +", Category: "Keyboard"},
	{Key: KeyKpminus, RawName: "KEY_KPMINUS", Human: "Keypad -", Category: "Keyboard"},
	{Key: KeyKpdot, RawName: "KEY_KPDOT", Human: "Keypad .", Category: "Keyboard"},
	{Key: KeyKpenter, RawName: "KEY_KPENTER", Human: "Keypad Enter", Category: "Keyboard"},
	{Key: KeyKpslash, RawName: "KEY_KPSLASH", Human: "Keypad /", Category: "Keyboard"},
	{Key: KeySysrq, RawName: "KEY_SYSRQ", Human: "Sys Rq", Category: "Keyboard"},
	{Key: KeyInsert, RawName: "KEY_INSERT", Human: "Insert", Category: "Keyboard"},
	{Key: KeyDelete, RawName: "KEY_DELETE", Human: "Delete", Category: "Keyboard"},
	{Key: KeyHome, RawName: "KEY_HOME", Human: "Home", Category: "Keyboard"},
	{Key: KeyEnd, RawName: "KEY_END", Human: "End", Category: "Keyboard"},
	{Key: KeyPageup, RawName: "KEY_PAGEUP", Human: "Page Up", Category: "Keyboard"},
	{Key: KeyPagedown, RawName: "KEY_PAGEDOWN", Human: "Page Down", Category: "Keyboard"},
	{Key: KeyLeft, RawName: "KEY_LEFT", Human: "Left", Category: "Keyboard"},
	{Key: KeyRight, RawName: "KEY_RIGHT", Human: "Right", Category: "Keyboard"},
	{Key: KeyUp, RawName: "KEY_UP", Human: "Up", Category: "Keyboard"},
	{Key: KeyDown, RawName: "KEY_DOWN", Human: "Down", Category: "Keyboard"},
	{Key: KeyKpjpcomma, RawName: "KEY_KPJPCOMMA", Human: "", Category: "Extended Keyboard"},
	{Key: KeyZenkakuhankaku, RawName: "KEY_ZENKAKUHANKAKU", Human: "", Category: "Extended Keyboard"},
	{Key: Key102nd, RawName: "KEY_102ND", Human: "", Category: "Extended Keyboard"},
	{Key: KeyRo, RawName: "KEY_RO", Human: "", Category: "Extended Keyboard"},
	{Key: KeyKatakana, RawName: "KEY_KATAKANA", Human: "", Category: "Extended Keyboard"},
	{Key: KeyHiragana, RawName: "KEY_HIRAGANA", Human: "", Category: "Extended Keyboard"},
	{Key: KeyHenkan, RawName: "KEY_HENKAN", Human: "", Category: "Extended Keyboard"},
	{Key: KeyKatakanahiragana, RawName: "KEY_KATAKANAHIRAGANA", Human: "", Category: "Extended Keyboard"},
	{Key: KeyMuhenkan, RawName: "KEY_MUHENKAN", Human: "", Category: "Extended Keyboard"},
	{Key: KeyLinefeed, RawName: "KEY_LINEFEED", Human: "", Category: "Extended Keyboard"},
	{Key: KeyMacro, RawName: "KEY_MACRO", Human: "", Category: "Extended Keyboard"},
	{Key: KeyMute, RawName: "KEY_MUTE", Human: "", Category: "Extended Keyboard"},
	{Key: KeyVolumedown, RawName: "KEY_VOLUMEDOWN", Human: "", Category: "Extended Keyboard"},
	{Key: KeyVolumeup, RawName: "KEY_VOLUMEUP", Human: "", Category: "Extended Keyboard"},
	{Key: KeyPower, RawName: "KEY_POWER", Human: "", Category: "Extended Keyboard"},
	{Key: KeyKpequal, RawName: "KEY_KPEQUAL", Human: "", Category: "Extended Keyboard"},
	{Key: KeyKpplusminus, RawName: "KEY_KPPLUSMINUS", Human: "", Category: "Extended Keyboard"},
	{Key: KeyPause, RawName: "KEY_PAUSE", Human: "", Category: "Extended Keyboard"},
	{Key: KeyScale, RawName: "KEY_SCALE", Human: "", Category: "Extended Keyboard"},
	{Key: KeyKpcomma, RawName: "KEY_KPCOMMA", Human: "", Category: "Extended Keyboard"},
	{Key: KeyHangeul, RawName: "KEY_HANGEUL", Human: "", Category: "Extended Keyboard"},
	{Key: KeyHanja, RawName: "KEY_HANJA", Human: "", Category: "Extended Keyboard"},
	{Key: KeyYen, RawName: "KEY_YEN", Human: "", Category: "Extended Keyboard"},
	{Key: KeyCompose, RawName: "KEY_COMPOSE", Human: "", Category: "Extended Keyboard"},
	{Key: KeyStop, RawName: "KEY_STOP", Human: "", Category: "Extended Keyboard"},
	{Key: KeyAgain, RawName: "KEY_AGAIN", Human: "", Category: "Extended Keyboard"},
	{Key: KeyProps, RawName: "KEY_PROPS", Human: "", Category: "Extended Keyboard"},
	{Key: KeyUndo, RawName: "KEY_UNDO", Human: "", Category: "Extended Keyboard"},
	{Key: KeyFront, RawName: "KEY_FRONT", Human: "", Category: "Extended Keyboard"},
	{Key: KeyCopy, RawName: "KEY_COPY", Human: "", Category: "Extended Keyboard"},
	{Key: KeyOpen, RawName: "KEY_OPEN", Human: "", Category: "Extended Keyboard"},
	{Key: KeyPaste, RawName: "KEY_PASTE", Human: "", Category: "Extended Keyboard"},
	{Key: KeyFind, RawName: "KEY_FIND", Human: "", Category: "Extended Keyboard"},
	{Key: KeyCut, RawName: "KEY_CUT", Human: "", Category: "Extended Keyboard"},
	{Key: KeyHelp, RawName: "KEY_HELP", Human: "", Category: "Extended Keyboard"},
	{Key: KeyMenu, RawName: "KEY_MENU", Human: "", Category: "Extended Keyboard"},
	{Key: KeyCalc, RawName: "KEY_CALC", Human: "", Category: "Extended Keyboard"},
	{Key: KeySetup, RawName: "KEY_SETUP", Human: "", Category: "Extended Keyboard"},
	{Key: KeySleep, RawName: "KEY_SLEEP", Human: "", Category: "Extended Keyboard"},
	{Key: KeyWakeup, RawName: "KEY_WAKEUP", Human: "", Category: "Extended Keyboard"},
	{Key: KeyFile, RawName: "KEY_FILE", Human: "", Category: "Extended Keyboard"},
	{Key: KeySendfile, RawName: "KEY_SENDFILE", Human: "", Category: "Extended Keyboard"},
	{Key: KeyDeletefile, RawName: "KEY_DELETEFILE", Human: "", Category: "Extended Keyboard"},
	{Key: KeyXfer, RawName: "KEY_XFER", Human: "", Category: "Extended Keyboard"},
	{Key: KeyProg1, RawName: "KEY_PROG1", Human: "", Category: "Extended Keyboard"},
	{Key: KeyProg2, RawName: "KEY_PROG2", Human: "", Category: "Extended Keyboard"},
	{Key: KeyWww, RawName: "KEY_WWW", Human: "", Category: "Extended Keyboard"},
	{Key: KeyMsdos, RawName: "KEY_MSDOS", Human: "", Category: "Extended Keyboard"},
	{Key: KeyCoffee, RawName: "KEY_COFFEE", Human: "", Category: "Extended Keyboard"},
	{Key: KeyScreenlock, RawName: "KEY_SCREENLOCK", Human: "", Category: "Extended Keyboard"},
	{Key: KeyRotateDisplay, RawName: "KEY_ROTATE_DISPLAY", Human: "", Category: "Extended Keyboard"},
	{Key: KeyDirection, RawName: "KEY_DIRECTION", Human: "", Category: "Extended Keyboard"},
	{Key: KeyCyclewindows, RawName: "KEY_CYCLEWINDOWS", Human: "", Category: "Extended Keyboard"},
	{Key: KeyMail, RawName: "KEY_MAIL", Human: "", Category: "Extended Keyboard"},
	{Key: KeyBookmarks, RawName: "KEY_BOOKMARKS", Human: "", Category: "Extended Keyboard"},
	{Key: KeyComputer, RawName: "KEY_COMPUTER", Human: "", Category: "Extended Keyboard"},
	{Key: KeyBack, RawName: "KEY_BACK", Human: "", Category: "Extended Keyboard"},
	{Key: KeyForward, RawName: "KEY_FORWARD", Human: "", Category: "Extended Keyboard"},
	{Key: KeyClosecd, RawName: "KEY_CLOSECD", Human: "", Category: "Extended Keyboard"},
	{Key: KeyEjectcd, RawName: "KEY_EJECTCD", Human: "", Category: "Extended Keyboard"},
	{Key: KeyEjectclosecd, RawName: "KEY_EJECTCLOSECD", Human: "", Category: "Extended Keyboard"},
	{Key: KeyNextsong, RawName: "KEY_NEXTSONG", Human: "", Category: "Extended Keyboard"},
	{Key: KeyPlaypause, RawName: "KEY_PLAYPAUSE", Human: "", Category: "Extended Keyboard"},
	{Key: KeyPrevioussong, RawName: "KEY_PREVIOUSSONG", Human: "", Category: "Extended Keyboard"},
	{Key: KeyStopcd, RawName: "KEY_STOPCD", Human: "", Category: "Extended Keyboard"},
	{Key: KeyRecord, RawName: "KEY_RECORD", Human: "", Category: "Extended Keyboard"},
	{Key: KeyRewind, RawName: "KEY_REWIND", Human: "", Category: "Extended Keyboard"},
	{Key: KeyPhone, RawName: "KEY_PHONE", Human: "", Category: "Extended Keyboard"},
	{Key: KeyIso, RawName: "KEY_ISO", Human: "", Category: "Extended Keyboard"},
	{Key: KeyConfig, RawName: "KEY_CONFIG", Human: "", Category: "Extended Keyboard"},
	{Key: KeyHomepage, RawName: "KEY_HOMEPAGE", Human: "", Category: "Extended Keyboard"},
	{Key: KeyRefresh, RawName: "KEY_REFRESH", Human: "", Category: "Extended Keyboard"},
	{Key: KeyExit, RawName: "KEY_EXIT", Human: "", Category: "Extended Keyboard"},
	{Key: KeyMove, RawName: "KEY_MOVE", Human: "", Category: "Extended Keyboard"},
	{Key: KeyEdit, RawName: "KEY_EDIT", Human: "", Category: "Extended Keyboard"},
	{Key: KeyScrollup, RawName: "KEY_SCROLLUP", Human: "", Category: "Extended Keyboard"},
	{Key: KeyScrolldown, RawName: "KEY_SCROLLDOWN", Human: "", Category: "Extended Keyboard"},
	{Key: KeyKpleftparen, RawName: "KEY_KPLEFTPAREN", Human: "", Category: "Extended Keyboard"},
	{Key: KeyKprightparen, RawName: "KEY_KPRIGHTPAREN", Human: "", Category: "Extended Keyboard"},
	{Key: KeyNew, RawName: "KEY_NEW", Human: "", Category: "Extended Keyboard"},
	{Key: KeyRedo, RawName: "KEY_REDO", Human: "", Category: "Extended Keyboard"},
	{Key: KeyF13, RawName: "KEY_F13", Human: "", Category: "Extended Keyboard"},
	{Key: KeyF14, RawName: "KEY_F14", Human: "", Category: "Extended Keyboard"},
	{Key: KeyF15, RawName: "KEY_F15", Human: "", Category: "Extended Keyboard"},
	{Key: KeyF16, RawName: "KEY_F16", Human: "", Category: "Extended Keyboard"},
	{Key: KeyF17, RawName: "KEY_F17", Human: "", Category: "Extended Keyboard"},
	{Key: KeyF18, RawName: "KEY_F18", Human: "", Category: "Extended Keyboard"},
	{Key: KeyF19, RawName: "KEY_F19", Human: "", Category: "Extended Keyboard"},
	{Key: KeyF20, RawName: "KEY_F20", Human: "", Category: "Extended Keyboard"},
	{Key: KeyF21, RawName: "KEY_F21", Human: "", Category: "Extended Keyboard"},
	{Key: KeyF22, RawName: "KEY_F22", Human: "", Category: "Extended Keyboard"},
	{Key: KeyF23, RawName: "KEY_F23", Human: "", Category: "Extended Keyboard"},
	{Key: KeyF24, RawName: "KEY_F24", Human: "", Category: "Extended Keyboard"},
	{Key: KeyPlaycd, RawName: "KEY_PLAYCD", Human: "", Category: "Extended Keyboard"},
	{Key: KeyPausecd, RawName: "KEY_PAUSECD", Human: "", Category: "Extended Keyboard"},
	{Key: KeyProg3, RawName: "KEY_PROG3", Human: "", Category: "Extended Keyboard"},
	{Key: KeyProg4, RawName: "KEY_PROG4", Human: "", Category: "Extended Keyboard"},
	{Key: KeyAllApplications, RawName: "KEY_ALL_APPLICATIONS", Human: "", Category: "Extended Keyboard"},
	{Key: KeyDashboard, RawName: "KEY_DASHBOARD", Human: "", Category: "Extended Keyboard"},
	{Key: KeySuspend, RawName: "KEY_SUSPEND", Human: "", Category: "Extended Keyboard"},
	{Key: KeyClose, RawName: "KEY_CLOSE", Human: "", Category: "Extended Keyboard"},
	{Key: KeyPlay, RawName: "KEY_PLAY", Human: "", Category: "Extended Keyboard"},
	{Key: KeyFastforward, RawName: "KEY_FASTFORWARD", Human: "", Category: "Extended Keyboard"},
	{Key: KeyBassboost, RawName: "KEY_BASSBOOST", Human: "", Category: "Extended Keyboard"},
	{Key: KeyPrint, RawName: "KEY_PRINT", Human: "", Category: "Extended Keyboard"},
	{Key: KeyHp, RawName: "KEY_HP", Human: "", Category: "Extended Keyboard"},
	{Key: KeyCamera, RawName: "KEY_CAMERA", Human: "", Category: "Extended Keyboard"},
	{Key: KeySound, RawName: "KEY_SOUND", Human: "", Category: "Extended Keyboard"},
	{Key: KeyQuestion, RawName: "KEY_QUESTION", Human: "", Category: "Extended Keyboard"},
	{Key: KeyEmail, RawName: "KEY_EMAIL", Human: "", Category: "Extended Keyboard"},
	{Key: KeyChat, RawName: "KEY_CHAT", Human: "", Category: "Extended Keyboard"},
	{Key: KeySearch, RawName: "KEY_SEARCH", Human: "", Category: "Extended Keyboard"},
	{Key: KeyConnect, RawName: "KEY_CONNECT", Human: "", Category: "Extended Keyboard"},
	{Key: KeyFinance, RawName: "KEY_FINANCE", Human: "", Category: "Extended Keyboard"},
	{Key: KeySport, RawName: "KEY_SPORT", Human: "", Category: "Extended Keyboard"},
	{Key: KeyShop, RawName: "KEY_SHOP", Human: "", Category: "Extended Keyboard"},
	{Key: KeyAlterase, RawName: "KEY_ALTERASE", Human: "", Category: "Extended Keyboard"},
	{Key: KeyCancel, RawName: "KEY_CANCEL", Human: "", Category: "Extended Keyboard"},
	{Key: KeyBrightnessdown, RawName: "KEY_BRIGHTNESSDOWN", Human: "", Category: "Extended Keyboard"},
	{Key: KeyBrightnessup, RawName: "KEY_BRIGHTNESSUP", Human: "", Category: "Extended Keyboard"},
	{Key: KeyMedia, RawName: "KEY_MEDIA", Human: "", Category: "Extended Keyboard"},
	{Key: KeySwitchvideomode, RawName: "KEY_SWITCHVIDEOMODE", Human: "", Category: "Extended Keyboard"},
	{Key: KeyKbdillumtoggle, RawName: "KEY_KBDILLUMTOGGLE", Human: "", Category: "Extended Keyboard"},
	{Key: KeyKbdillumdown, RawName: "KEY_KBDILLUMDOWN", Human: "", Category: "Extended Keyboard"},
	{Key: KeyKbdillumup, RawName: "KEY_KBDILLUMUP", Human: "", Category: "Extended Keyboard"},
	{Key: KeySend, RawName: "KEY_SEND", Human: "", Category: "Extended Keyboard"},
	{Key: KeyReply, RawName: "KEY_REPLY", Human: "", Category: "Extended Keyboard"},
	{Key: KeyForwardmail, RawName: "KEY_FORWARDMAIL", Human: "", Category: "Extended Keyboard"},
	{Key: KeySave, RawName: "KEY_SAVE", Human: "", Category: "Extended Keyboard"},
	{Key: KeyDocuments, RawName: "KEY_DOCUMENTS", Human: "", Category: "Extended Keyboard"},
	{Key: KeyBattery, RawName: "KEY_BATTERY", Human: "", Category: "Extended Keyboard"},
	{Key: KeyBluetooth, RawName: "KEY_BLUETOOTH", Human: "", Category: "Extended Keyboard"},
	{Key: KeyWlan, RawName: "KEY_WLAN", Human: "", Category: "Extended Keyboard"},
	{Key: KeyUwb, RawName: "KEY_UWB", Human: "", Category: "Extended Keyboard"},
	{Key: KeyVideoNext, RawName: "KEY_VIDEO_NEXT", Human: "", Category: "Extended Keyboard"},
	{Key: KeyVideoPrev, RawName: "KEY_VIDEO_PREV", Human: "", Category: "Extended Keyboard"},
	{Key: KeyBrightnessCycle, RawName: "KEY_BRIGHTNESS_CYCLE", Human: "", Category: "Extended Keyboard"},
	{Key: KeyBrightnessAuto, RawName: "KEY_BRIGHTNESS_AUTO", Human: "", Category: "Extended Keyboard"},
	{Key: KeyBrightnessZero, RawName: "KEY_BRIGHTNESS_ZERO", Human: "", Category: "Extended Keyboard"},
	{Key: KeyDisplayOff, RawName: "KEY_DISPLAY_OFF", Human: "", Category: "Extended Keyboard"},
	{Key: KeyWwan, RawName: "KEY_WWAN", Human: "", Category: "Extended Keyboard"},
	{Key: KeyWimax, RawName: "KEY_WIMAX", Human: "", Category: "Extended Keyboard"},
	{Key: KeyRfkill, RawName: "KEY_RFKILL", Human: "", Category: "Extended Keyboard"},
	{Key: KeyMicmute, RawName: "KEY_MICMUTE", Human: "", Category: "Extended Keyboard"},
}

var (
	catalogByName map[string]*CatalogEntry
	catalogByKey  map[Key]*CatalogEntry
)

func init() {
	catalogByName = make(map[string]*CatalogEntry, len(Catalog)*2)
	catalogByKey = make(map[Key]*CatalogEntry, len(Catalog))
	for i := range Catalog {
		e := &Catalog[i]
		catalogByKey[e.Key] = e
		if e.Human != "" {
			catalogByName[strings.ToLower(e.Human)] = e
		}
		catalogByName[strings.ToLower(e.RawName)] = e
	}
}

// FindByName resolves a catalog entry by its raw or human name,
// case-insensitively, preferring an exact raw-name match.
func FindByName(name string) (*CatalogEntry, bool) {
	e, ok := catalogByName[strings.ToLower(name)]
	return e, ok
}

// FindByKey resolves a catalog entry by its uinput keycode.
func FindByKey(key Key) (*CatalogEntry, bool) {
	e, ok := catalogByKey[key]
	return e, ok
}
