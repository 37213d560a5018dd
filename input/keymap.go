// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import (
	"github.com/gogpu/wayapp/seat"
	"github.com/gogpu/wayapp/ui"
)

// namedKeys maps layout-resolved key symbols to named logical keys.
// Character-producing symbols are handled separately by MapKey; anything in
// neither path maps to KeyUnidentified.
var namedKeys = map[seat.Keysym]ui.NamedKey{
	// TTY function keys.
	seat.KeysymBackSpace:  ui.KeyBackspace,
	seat.KeysymTab:        ui.KeyTab,
	seat.KeysymClear:      ui.KeyClear,
	seat.KeysymReturn:     ui.KeyEnter,
	seat.KeysymPause:      ui.KeyPause,
	seat.KeysymScrollLock: ui.KeyScrollLock,
	seat.KeysymSysReq:     ui.KeyPrintScreen,
	seat.KeysymEscape:     ui.KeyEscape,
	seat.KeysymDelete:     ui.KeyDelete,

	// Input method keys.
	seat.KeysymMultiKey:          ui.KeyCompose,
	seat.KeysymCodeinput:         ui.KeyCodeInput,
	seat.KeysymSingleCandidate:   ui.KeySingleCandidate,
	seat.KeysymMultipleCandidate: ui.KeyAllCandidates,
	seat.KeysymPreviousCandidate: ui.KeyPreviousCandidate,

	// Japanese keys.
	seat.KeysymKanji:            ui.KeyKanjiMode,
	seat.KeysymMuhenkan:         ui.KeyNonConvert,
	seat.KeysymHenkanMode:       ui.KeyConvert,
	seat.KeysymRomaji:           ui.KeyRomaji,
	seat.KeysymHiragana:         ui.KeyHiragana,
	seat.KeysymKatakana:         ui.KeyKatakana,
	seat.KeysymHiraganaKatakana: ui.KeyHiraganaKatakana,
	seat.KeysymZenkaku:          ui.KeyZenkaku,
	seat.KeysymHankaku:          ui.KeyHankaku,
	seat.KeysymZenkakuHankaku:   ui.KeyZenkakuHankaku,
	seat.KeysymKanaLock:         ui.KeyKanaMode,
	seat.KeysymKanaShift:        ui.KeyKanaMode,
	seat.KeysymEisuShift:        ui.KeyAlphanumeric,
	seat.KeysymEisuToggle:       ui.KeyAlphanumeric,

	// Cursor control and motion.
	seat.KeysymHome:     ui.KeyHome,
	seat.KeysymLeft:     ui.KeyArrowLeft,
	seat.KeysymUp:       ui.KeyArrowUp,
	seat.KeysymRight:    ui.KeyArrowRight,
	seat.KeysymDown:     ui.KeyArrowDown,
	seat.KeysymPageUp:   ui.KeyPageUp,
	seat.KeysymPageDown: ui.KeyPageDown,
	seat.KeysymEnd:      ui.KeyEnd,

	// Misc functions.
	seat.KeysymSelect:     ui.KeySelect,
	seat.KeysymPrint:      ui.KeyPrintScreen,
	seat.KeysymExecute:    ui.KeyExecute,
	seat.KeysymInsert:     ui.KeyInsert,
	seat.KeysymUndo:       ui.KeyUndo,
	seat.KeysymRedo:       ui.KeyRedo,
	seat.KeysymMenu:       ui.KeyContextMenu,
	seat.KeysymFind:       ui.KeyFind,
	seat.KeysymCancel:     ui.KeyCancel,
	seat.KeysymHelp:       ui.KeyHelp,
	seat.KeysymBreak:      ui.KeyPause,
	seat.KeysymModeSwitch: ui.KeyModeChange,
	seat.KeysymNumLock:    ui.KeyNumLock,

	// Keypad controls. Digit and operator keypad symbols produce
	// characters and take the character path in MapKey.
	seat.KeysymKPTab:      ui.KeyTab,
	seat.KeysymKPEnter:    ui.KeyEnter,
	seat.KeysymKPF1:       ui.KeyF1,
	seat.KeysymKPF2:       ui.KeyF2,
	seat.KeysymKPF3:       ui.KeyF3,
	seat.KeysymKPF4:       ui.KeyF4,
	seat.KeysymKPHome:     ui.KeyHome,
	seat.KeysymKPLeft:     ui.KeyArrowLeft,
	seat.KeysymKPUp:       ui.KeyArrowUp,
	seat.KeysymKPRight:    ui.KeyArrowRight,
	seat.KeysymKPDown:     ui.KeyArrowDown,
	seat.KeysymKPPageUp:   ui.KeyPageUp,
	seat.KeysymKPPageDown: ui.KeyPageDown,
	seat.KeysymKPEnd:      ui.KeyEnd,
	seat.KeysymKPInsert:   ui.KeyInsert,
	seat.KeysymKPDelete:   ui.KeyDelete,

	// Function keys.
	seat.KeysymF1:  ui.KeyF1,
	seat.KeysymF2:  ui.KeyF2,
	seat.KeysymF3:  ui.KeyF3,
	seat.KeysymF4:  ui.KeyF4,
	seat.KeysymF5:  ui.KeyF5,
	seat.KeysymF6:  ui.KeyF6,
	seat.KeysymF7:  ui.KeyF7,
	seat.KeysymF8:  ui.KeyF8,
	seat.KeysymF9:  ui.KeyF9,
	seat.KeysymF10: ui.KeyF10,
	seat.KeysymF11: ui.KeyF11,
	seat.KeysymF12: ui.KeyF12,
	seat.KeysymF13: ui.KeyF13,
	seat.KeysymF14: ui.KeyF14,
	seat.KeysymF15: ui.KeyF15,
	seat.KeysymF16: ui.KeyF16,
	seat.KeysymF17: ui.KeyF17,
	seat.KeysymF18: ui.KeyF18,
	seat.KeysymF19: ui.KeyF19,
	seat.KeysymF20: ui.KeyF20,
	seat.KeysymF21: ui.KeyF21,
	seat.KeysymF22: ui.KeyF22,
	seat.KeysymF23: ui.KeyF23,
	seat.KeysymF24: ui.KeyF24,
	seat.KeysymF25: ui.KeyF25,
	seat.KeysymF26: ui.KeyF26,
	seat.KeysymF27: ui.KeyF27,
	seat.KeysymF28: ui.KeyF28,
	seat.KeysymF29: ui.KeyF29,
	seat.KeysymF30: ui.KeyF30,
	seat.KeysymF31: ui.KeyF31,
	seat.KeysymF32: ui.KeyF32,
	seat.KeysymF33: ui.KeyF33,
	seat.KeysymF34: ui.KeyF34,
	seat.KeysymF35: ui.KeyF35,

	// Modifiers.
	seat.KeysymShiftL:   ui.KeyShift,
	seat.KeysymShiftR:   ui.KeyShift,
	seat.KeysymControlL: ui.KeyControl,
	seat.KeysymControlR: ui.KeyControl,
	seat.KeysymCapsLock: ui.KeyCapsLock,
	seat.KeysymAltL:     ui.KeyAlt,
	seat.KeysymAltR:     ui.KeyAlt,
	seat.KeysymSuperL:   ui.KeySuper,
	seat.KeysymSuperR:   ui.KeySuper,
	seat.KeysymHyperL:   ui.KeyHyper,
	seat.KeysymHyperR:   ui.KeyHyper,
	seat.KeysymMetaL:    ui.KeyMeta,
	seat.KeysymMetaR:    ui.KeyMeta,

	// XKB group and level keys.
	seat.KeysymISOLevel3Shift: ui.KeyAltGraph,
	seat.KeysymISOLevel3Latch: ui.KeyAltGraph,
	seat.KeysymISOLevel3Lock:  ui.KeyAltGraph,
	seat.KeysymISONextGroup:   ui.KeyGroupNext,
	seat.KeysymISOPrevGroup:   ui.KeyGroupPrevious,
	seat.KeysymISOFirstGroup:  ui.KeyGroupFirst,
	seat.KeysymISOLastGroup:   ui.KeyGroupLast,
	seat.KeysymISOLeftTab:     ui.KeyTab,
	seat.KeysymISOEnter:       ui.KeyEnter,

	// Multimedia and system.
	seat.KeysymXF86MonBrightnessUp:   ui.KeyBrightnessUp,
	seat.KeysymXF86MonBrightnessDown: ui.KeyBrightnessDown,
	seat.KeysymXF86Standby:           ui.KeyStandby,
	seat.KeysymXF86Sleep:             ui.KeyStandby,
	seat.KeysymXF86Hibernate:         ui.KeyHibernate,
	seat.KeysymXF86PowerOff:          ui.KeyPower,
	seat.KeysymXF86PowerDown:         ui.KeyPower,
	seat.KeysymXF86WakeUp:            ui.KeyWakeUp,
	seat.KeysymXF86Eject:             ui.KeyEject,
	seat.KeysymXF86AudioLowerVolume:  ui.KeyAudioVolumeDown,
	seat.KeysymXF86AudioRaiseVolume:  ui.KeyAudioVolumeUp,
	seat.KeysymXF86AudioMute:         ui.KeyAudioVolumeMute,
	seat.KeysymXF86AudioPlay:         ui.KeyMediaPlay,
	seat.KeysymXF86AudioPause:        ui.KeyMediaPause,
	seat.KeysymXF86AudioStop:         ui.KeyMediaStop,
	seat.KeysymXF86AudioPrev:         ui.KeyMediaTrackPrevious,
	seat.KeysymXF86AudioNext:         ui.KeyMediaTrackNext,
	seat.KeysymXF86AudioRecord:       ui.KeyMediaRecord,
	seat.KeysymXF86AudioRewind:       ui.KeyMediaRewind,
	seat.KeysymXF86AudioForward:      ui.KeyMediaFastForward,

	// Browser and launcher.
	seat.KeysymXF86HomePage:    ui.KeyBrowserHome,
	seat.KeysymXF86Search:      ui.KeyBrowserSearch,
	seat.KeysymXF86Back:        ui.KeyBrowserBack,
	seat.KeysymXF86Forward:     ui.KeyBrowserForward,
	seat.KeysymXF86Refresh:     ui.KeyBrowserRefresh,
	seat.KeysymXF86Stop:        ui.KeyBrowserStop,
	seat.KeysymXF86Favorites:   ui.KeyBrowserFavorites,
	seat.KeysymXF86Mail:        ui.KeyLaunchMail,
	seat.KeysymXF86Calculator:  ui.KeyLaunchCalculator,
	seat.KeysymXF86Calendar:    ui.KeyLaunchCalendar,
	seat.KeysymXF86AudioMedia:  ui.KeyLaunchMediaPlayer,
	seat.KeysymXF86MyComputer:  ui.KeyLaunchMyComputer,
	seat.KeysymXF86ScreenSaver: ui.KeyLaunchScreenSaver,
	seat.KeysymXF86WWW:         ui.KeyLaunchWebBrowser,

	// Document actions.
	seat.KeysymXF86Copy:  ui.KeyCopy,
	seat.KeysymXF86Cut:   ui.KeyCut,
	seat.KeysymXF86Paste: ui.KeyPaste,
	seat.KeysymXF86New:   ui.KeyNew,
	seat.KeysymXF86Open:  ui.KeyOpen,
	seat.KeysymXF86Close: ui.KeyClose,
	seat.KeysymXF86Save:  ui.KeySave,
}

// MapKey maps a key symbol to its logical key and keyboard location. It is
// total: named symbols return their name, character symbols return the
// character, and everything else returns KeyUnidentified, never "no
// result". The space bar is a named key, matching the W3C key vocabulary.
func MapKey(sym seat.Keysym) (ui.Key, ui.Location) {
	loc := keysymLocation(sym)
	if sym == seat.KeysymSpace {
		return ui.Named(ui.KeySpace), loc
	}
	if name, ok := namedKeys[sym]; ok {
		return ui.Named(name), loc
	}
	if r := sym.Rune(); r != 0 {
		return ui.Character(r), loc
	}
	return ui.Named(ui.KeyUnidentified), loc
}

// keysymLocation reports where on the keyboard a symbol's key sits.
func keysymLocation(sym seat.Keysym) ui.Location {
	switch sym {
	case seat.KeysymShiftL, seat.KeysymControlL, seat.KeysymAltL,
		seat.KeysymSuperL, seat.KeysymHyperL, seat.KeysymMetaL:
		return ui.LocationLeft
	case seat.KeysymShiftR, seat.KeysymControlR, seat.KeysymAltR,
		seat.KeysymSuperR, seat.KeysymHyperR, seat.KeysymMetaR:
		return ui.LocationRight
	}
	if sym >= seat.KeysymKPSpace && sym <= seat.KeysymKPEqual {
		return ui.LocationNumpad
	}
	return ui.LocationStandard
}
