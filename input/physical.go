// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import (
	"github.com/gogpu/wayapp/seat"
	"github.com/gogpu/wayapp/ui"
)

// physicalCodes maps key symbols to physical key codes. Wayland keyboard
// events deliver a raw evdev code and a layout-resolved symbol but no
// layout-independent position, so the position is reconstructed from the
// symbol. On non-Latin layouts some keys will therefore resolve to a code
// that differs from the engraved position; symbols outside the table fall
// back to the raw code.
var physicalCodes = map[seat.Keysym]ui.KeyCode{
	seat.Keysym0: ui.CodeDigit0,
	seat.Keysym1: ui.CodeDigit1,
	seat.Keysym2: ui.CodeDigit2,
	seat.Keysym3: ui.CodeDigit3,
	seat.Keysym4: ui.CodeDigit4,
	seat.Keysym5: ui.CodeDigit5,
	seat.Keysym6: ui.CodeDigit6,
	seat.Keysym7: ui.CodeDigit7,
	seat.Keysym8: ui.CodeDigit8,
	seat.Keysym9: ui.CodeDigit9,

	seat.KeysymA: ui.CodeKeyA,
	seat.KeysymB: ui.CodeKeyB,
	seat.KeysymC: ui.CodeKeyC,
	seat.KeysymD: ui.CodeKeyD,
	seat.KeysymE: ui.CodeKeyE,
	seat.KeysymF: ui.CodeKeyF,
	seat.KeysymG: ui.CodeKeyG,
	seat.KeysymH: ui.CodeKeyH,
	seat.KeysymI: ui.CodeKeyI,
	seat.KeysymJ: ui.CodeKeyJ,
	seat.KeysymK: ui.CodeKeyK,
	seat.KeysymL: ui.CodeKeyL,
	seat.KeysymM: ui.CodeKeyM,
	seat.KeysymN: ui.CodeKeyN,
	seat.KeysymO: ui.CodeKeyO,
	seat.KeysymP: ui.CodeKeyP,
	seat.KeysymQ: ui.CodeKeyQ,
	seat.KeysymR: ui.CodeKeyR,
	seat.KeysymS: ui.CodeKeyS,
	seat.KeysymT: ui.CodeKeyT,
	seat.KeysymU: ui.CodeKeyU,
	seat.KeysymV: ui.CodeKeyV,
	seat.KeysymW: ui.CodeKeyW,
	seat.KeysymX: ui.CodeKeyX,
	seat.KeysymY: ui.CodeKeyY,
	seat.KeysymZ: ui.CodeKeyZ,

	seat.KeysymGrave:        ui.CodeBackquote,
	seat.KeysymMinus:        ui.CodeMinus,
	seat.KeysymEqual:        ui.CodeEqual,
	seat.KeysymBracketLeft:  ui.CodeBracketLeft,
	seat.KeysymBracketRight: ui.CodeBracketRight,
	seat.KeysymBackslash:    ui.CodeBackslash,
	seat.KeysymSemicolon:    ui.CodeSemicolon,
	seat.KeysymApostrophe:   ui.CodeQuote,
	seat.KeysymComma:        ui.CodeComma,
	seat.KeysymPeriod:       ui.CodePeriod,
	seat.KeysymSlash:        ui.CodeSlash,

	seat.KeysymSpace:     ui.CodeSpace,
	seat.KeysymTab:       ui.CodeTab,
	seat.KeysymReturn:    ui.CodeEnter,
	seat.KeysymBackSpace: ui.CodeBackspace,
	seat.KeysymDelete:    ui.CodeDelete,
	seat.KeysymEscape:    ui.CodeEscape,

	seat.KeysymShiftL:     ui.CodeShiftLeft,
	seat.KeysymShiftR:     ui.CodeShiftRight,
	seat.KeysymControlL:   ui.CodeControlLeft,
	seat.KeysymControlR:   ui.CodeControlRight,
	seat.KeysymAltL:       ui.CodeAltLeft,
	seat.KeysymAltR:       ui.CodeAltRight,
	seat.KeysymSuperL:     ui.CodeSuperLeft,
	seat.KeysymSuperR:     ui.CodeSuperRight,
	seat.KeysymCapsLock:   ui.CodeCapsLock,
	seat.KeysymNumLock:    ui.CodeNumLock,
	seat.KeysymScrollLock: ui.CodeScrollLock,

	seat.KeysymHome:     ui.CodeHome,
	seat.KeysymEnd:      ui.CodeEnd,
	seat.KeysymPageUp:   ui.CodePageUp,
	seat.KeysymPageDown: ui.CodePageDown,
	seat.KeysymLeft:     ui.CodeArrowLeft,
	seat.KeysymRight:    ui.CodeArrowRight,
	seat.KeysymUp:       ui.CodeArrowUp,
	seat.KeysymDown:     ui.CodeArrowDown,

	seat.KeysymInsert: ui.CodeInsert,
	seat.KeysymPrint:  ui.CodePrintScreen,
	seat.KeysymSysReq: ui.CodePrintScreen,

	seat.KeysymF1:  ui.CodeF1,
	seat.KeysymF2:  ui.CodeF2,
	seat.KeysymF3:  ui.CodeF3,
	seat.KeysymF4:  ui.CodeF4,
	seat.KeysymF5:  ui.CodeF5,
	seat.KeysymF6:  ui.CodeF6,
	seat.KeysymF7:  ui.CodeF7,
	seat.KeysymF8:  ui.CodeF8,
	seat.KeysymF9:  ui.CodeF9,
	seat.KeysymF10: ui.CodeF10,
	seat.KeysymF11: ui.CodeF11,
	seat.KeysymF12: ui.CodeF12,
	seat.KeysymF13: ui.CodeF13,
	seat.KeysymF14: ui.CodeF14,
	seat.KeysymF15: ui.CodeF15,
	seat.KeysymF16: ui.CodeF16,
	seat.KeysymF17: ui.CodeF17,
	seat.KeysymF18: ui.CodeF18,
	seat.KeysymF19: ui.CodeF19,
	seat.KeysymF20: ui.CodeF20,
	seat.KeysymF21: ui.CodeF21,
	seat.KeysymF22: ui.CodeF22,
	seat.KeysymF23: ui.CodeF23,
	seat.KeysymF24: ui.CodeF24,
	seat.KeysymF25: ui.CodeF25,
	seat.KeysymF26: ui.CodeF26,
	seat.KeysymF27: ui.CodeF27,
	seat.KeysymF28: ui.CodeF28,
	seat.KeysymF29: ui.CodeF29,
	seat.KeysymF30: ui.CodeF30,
	seat.KeysymF31: ui.CodeF31,
	seat.KeysymF32: ui.CodeF32,
	seat.KeysymF33: ui.CodeF33,
	seat.KeysymF34: ui.CodeF34,
	seat.KeysymF35: ui.CodeF35,

	seat.KeysymKP0:        ui.CodeNumpad0,
	seat.KeysymKP1:        ui.CodeNumpad1,
	seat.KeysymKP2:        ui.CodeNumpad2,
	seat.KeysymKP3:        ui.CodeNumpad3,
	seat.KeysymKP4:        ui.CodeNumpad4,
	seat.KeysymKP5:        ui.CodeNumpad5,
	seat.KeysymKP6:        ui.CodeNumpad6,
	seat.KeysymKP7:        ui.CodeNumpad7,
	seat.KeysymKP8:        ui.CodeNumpad8,
	seat.KeysymKP9:        ui.CodeNumpad9,
	seat.KeysymKPDecimal:  ui.CodeNumpadDecimal,
	seat.KeysymKPDivide:   ui.CodeNumpadDivide,
	seat.KeysymKPMultiply: ui.CodeNumpadMultiply,
	seat.KeysymKPSubtract: ui.CodeNumpadSubtract,
	seat.KeysymKPAdd:      ui.CodeNumpadAdd,
	seat.KeysymKPEnter:    ui.CodeNumpadEnter,
	seat.KeysymKPEqual:    ui.CodeNumpadEqual,

	seat.KeysymPause: ui.CodePause,
	seat.KeysymBreak: ui.CodePause,

	seat.KeysymXF86AudioMute:        ui.CodeAudioVolumeMute,
	seat.KeysymXF86AudioLowerVolume: ui.CodeAudioVolumeDown,
	seat.KeysymXF86AudioRaiseVolume: ui.CodeAudioVolumeUp,
	seat.KeysymXF86AudioPlay:        ui.CodeMediaPlayPause,
	seat.KeysymXF86AudioStop:        ui.CodeMediaStop,
	seat.KeysymXF86AudioPrev:        ui.CodeMediaTrackPrevious,
	seat.KeysymXF86AudioNext:        ui.CodeMediaTrackNext,

	seat.KeysymXF86Back:      ui.CodeBrowserBack,
	seat.KeysymXF86Forward:   ui.CodeBrowserForward,
	seat.KeysymXF86Refresh:   ui.CodeBrowserRefresh,
	seat.KeysymXF86Stop:      ui.CodeBrowserStop,
	seat.KeysymXF86Search:    ui.CodeBrowserSearch,
	seat.KeysymXF86HomePage:  ui.CodeBrowserHome,
	seat.KeysymXF86Favorites: ui.CodeBrowserFavorites,

	seat.KeysymXF86PowerOff: ui.CodePower,
	seat.KeysymXF86Sleep:    ui.CodeSleep,
	seat.KeysymXF86WakeUp:   ui.CodeWakeUp,

	seat.KeysymXF86Calculator: ui.CodeLaunchApp2,
	seat.KeysymXF86Mail:       ui.CodeLaunchMail,
	seat.KeysymXF86MyComputer: ui.CodeLaunchApp1,
	seat.KeysymXF86Music:      ui.CodeMediaSelect,
	seat.KeysymXF86Video:      ui.CodeLaunchApp2,

	seat.KeysymXF86Copy:  ui.CodeCopy,
	seat.KeysymXF86Cut:   ui.CodeCut,
	seat.KeysymXF86Paste: ui.CodePaste,

	seat.KeysymHenkanMode: ui.CodeConvert,
	seat.KeysymMuhenkan:   ui.CodeNonConvert,
	seat.KeysymKanji:      ui.CodeLang2,
	seat.KeysymKatakana:   ui.CodeLang3,
	seat.KeysymHiragana:   ui.CodeLang4,

	seat.KeysymMenu: ui.CodeContextMenu,
}

// MapPhysicalKey maps a key symbol to a physical key code. Symbols without
// a known code return CodeUnidentified with the raw evdev code preserved so
// callers can still distinguish keys.
func MapPhysicalKey(sym seat.Keysym, raw uint32) ui.PhysicalKey {
	if code, ok := physicalCodes[sym]; ok {
		return ui.PhysicalKey{Code: code}
	}
	return ui.PhysicalKey{Code: ui.CodeUnidentified, Raw: raw}
}
