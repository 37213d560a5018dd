// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package seat

// Keysym is an X11/xkbcommon key symbol: the layout-resolved identity of a
// key. Values follow keysymdef.h; Unicode codepoints are encoded with the
// 0x01000000 offset per the xkbcommon convention.
type Keysym uint32

// IsUnicode reports whether the keysym directly encodes a Unicode
// codepoint.
func (s Keysym) IsUnicode() bool {
	return s&0xff000000 == 0x01000000
}

// Rune returns the character a keysym represents, or 0 when it has none.
// Latin-1 keysyms are their own codepoints; other characters arrive as
// Unicode keysyms.
func (s Keysym) Rune() rune {
	switch {
	case s >= 0x20 && s <= 0x7e, s >= 0xa0 && s <= 0xff:
		return rune(s)
	case s.IsUnicode():
		return rune(s & 0x00ffffff)
	}
	return 0
}

// Latin-1 keysyms. For this range the keysym value is the codepoint.
const (
	KeysymSpace        Keysym = 0x0020
	KeysymApostrophe   Keysym = 0x0027
	KeysymComma        Keysym = 0x002c
	KeysymMinus        Keysym = 0x002d
	KeysymPeriod       Keysym = 0x002e
	KeysymSlash        Keysym = 0x002f
	Keysym0            Keysym = 0x0030
	Keysym1            Keysym = 0x0031
	Keysym2            Keysym = 0x0032
	Keysym3            Keysym = 0x0033
	Keysym4            Keysym = 0x0034
	Keysym5            Keysym = 0x0035
	Keysym6            Keysym = 0x0036
	Keysym7            Keysym = 0x0037
	Keysym8            Keysym = 0x0038
	Keysym9            Keysym = 0x0039
	KeysymSemicolon    Keysym = 0x003b
	KeysymEqual        Keysym = 0x003d
	KeysymBracketLeft  Keysym = 0x005b
	KeysymBackslash    Keysym = 0x005c
	KeysymBracketRight Keysym = 0x005d
	KeysymGrave        Keysym = 0x0060
	KeysymA            Keysym = 0x0061
	KeysymB            Keysym = 0x0062
	KeysymC            Keysym = 0x0063
	KeysymD            Keysym = 0x0064
	KeysymE            Keysym = 0x0065
	KeysymF            Keysym = 0x0066
	KeysymG            Keysym = 0x0067
	KeysymH            Keysym = 0x0068
	KeysymI            Keysym = 0x0069
	KeysymJ            Keysym = 0x006a
	KeysymK            Keysym = 0x006b
	KeysymL            Keysym = 0x006c
	KeysymM            Keysym = 0x006d
	KeysymN            Keysym = 0x006e
	KeysymO            Keysym = 0x006f
	KeysymP            Keysym = 0x0070
	KeysymQ            Keysym = 0x0071
	KeysymR            Keysym = 0x0072
	KeysymS            Keysym = 0x0073
	KeysymT            Keysym = 0x0074
	KeysymU            Keysym = 0x0075
	KeysymV            Keysym = 0x0076
	KeysymW            Keysym = 0x0077
	KeysymX            Keysym = 0x0078
	KeysymY            Keysym = 0x0079
	KeysymZ            Keysym = 0x007a
)

// TTY function keys.
const (
	KeysymBackSpace  Keysym = 0xff08
	KeysymTab        Keysym = 0xff09
	KeysymLinefeed   Keysym = 0xff0a
	KeysymClear      Keysym = 0xff0b
	KeysymReturn     Keysym = 0xff0d
	KeysymPause      Keysym = 0xff13
	KeysymScrollLock Keysym = 0xff14
	KeysymSysReq     Keysym = 0xff15
	KeysymEscape     Keysym = 0xff1b
	KeysymDelete     Keysym = 0xffff
)

// International and input-method keys.
const (
	KeysymMultiKey          Keysym = 0xff20
	KeysymKanji             Keysym = 0xff21
	KeysymMuhenkan          Keysym = 0xff22
	KeysymHenkanMode        Keysym = 0xff23
	KeysymRomaji            Keysym = 0xff24
	KeysymHiragana          Keysym = 0xff25
	KeysymKatakana          Keysym = 0xff26
	KeysymHiraganaKatakana  Keysym = 0xff27
	KeysymZenkaku           Keysym = 0xff28
	KeysymHankaku           Keysym = 0xff29
	KeysymZenkakuHankaku    Keysym = 0xff2a
	KeysymKanaLock          Keysym = 0xff2d
	KeysymKanaShift         Keysym = 0xff2e
	KeysymEisuShift         Keysym = 0xff2f
	KeysymEisuToggle        Keysym = 0xff30
	KeysymCodeinput         Keysym = 0xff37
	KeysymSingleCandidate   Keysym = 0xff3c
	KeysymMultipleCandidate Keysym = 0xff3d
	KeysymPreviousCandidate Keysym = 0xff3e
)

// Cursor control and motion.
const (
	KeysymHome     Keysym = 0xff50
	KeysymLeft     Keysym = 0xff51
	KeysymUp       Keysym = 0xff52
	KeysymRight    Keysym = 0xff53
	KeysymDown     Keysym = 0xff54
	KeysymPageUp   Keysym = 0xff55
	KeysymPageDown Keysym = 0xff56
	KeysymEnd      Keysym = 0xff57
	KeysymBegin    Keysym = 0xff58
)

// Miscellaneous functions.
const (
	KeysymSelect     Keysym = 0xff60
	KeysymPrint      Keysym = 0xff61
	KeysymExecute    Keysym = 0xff62
	KeysymInsert     Keysym = 0xff63
	KeysymUndo       Keysym = 0xff65
	KeysymRedo       Keysym = 0xff66
	KeysymMenu       Keysym = 0xff67
	KeysymFind       Keysym = 0xff68
	KeysymCancel     Keysym = 0xff69
	KeysymHelp       Keysym = 0xff6a
	KeysymBreak      Keysym = 0xff6b
	KeysymModeSwitch Keysym = 0xff7e
	KeysymNumLock    Keysym = 0xff7f
)

// Keypad keys.
const (
	KeysymKPSpace     Keysym = 0xff80
	KeysymKPTab       Keysym = 0xff89
	KeysymKPEnter     Keysym = 0xff8d
	KeysymKPF1        Keysym = 0xff91
	KeysymKPF2        Keysym = 0xff92
	KeysymKPF3        Keysym = 0xff93
	KeysymKPF4        Keysym = 0xff94
	KeysymKPHome      Keysym = 0xff95
	KeysymKPLeft      Keysym = 0xff96
	KeysymKPUp        Keysym = 0xff97
	KeysymKPRight     Keysym = 0xff98
	KeysymKPDown      Keysym = 0xff99
	KeysymKPPageUp    Keysym = 0xff9a
	KeysymKPPageDown  Keysym = 0xff9b
	KeysymKPEnd       Keysym = 0xff9c
	KeysymKPBegin     Keysym = 0xff9d
	KeysymKPInsert    Keysym = 0xff9e
	KeysymKPDelete    Keysym = 0xff9f
	KeysymKPMultiply  Keysym = 0xffaa
	KeysymKPAdd       Keysym = 0xffab
	KeysymKPSeparator Keysym = 0xffac
	KeysymKPSubtract  Keysym = 0xffad
	KeysymKPDecimal   Keysym = 0xffae
	KeysymKPDivide    Keysym = 0xffaf
	KeysymKP0         Keysym = 0xffb0
	KeysymKP1         Keysym = 0xffb1
	KeysymKP2         Keysym = 0xffb2
	KeysymKP3         Keysym = 0xffb3
	KeysymKP4         Keysym = 0xffb4
	KeysymKP5         Keysym = 0xffb5
	KeysymKP6         Keysym = 0xffb6
	KeysymKP7         Keysym = 0xffb7
	KeysymKP8         Keysym = 0xffb8
	KeysymKP9         Keysym = 0xffb9
	KeysymKPEqual     Keysym = 0xffbd
)

// Function keys. F1 through F35 are contiguous.
const (
	KeysymF1  Keysym = 0xffbe
	KeysymF2  Keysym = 0xffbf
	KeysymF3  Keysym = 0xffc0
	KeysymF4  Keysym = 0xffc1
	KeysymF5  Keysym = 0xffc2
	KeysymF6  Keysym = 0xffc3
	KeysymF7  Keysym = 0xffc4
	KeysymF8  Keysym = 0xffc5
	KeysymF9  Keysym = 0xffc6
	KeysymF10 Keysym = 0xffc7
	KeysymF11 Keysym = 0xffc8
	KeysymF12 Keysym = 0xffc9
	KeysymF13 Keysym = 0xffca
	KeysymF14 Keysym = 0xffcb
	KeysymF15 Keysym = 0xffcc
	KeysymF16 Keysym = 0xffcd
	KeysymF17 Keysym = 0xffce
	KeysymF18 Keysym = 0xffcf
	KeysymF19 Keysym = 0xffd0
	KeysymF20 Keysym = 0xffd1
	KeysymF21 Keysym = 0xffd2
	KeysymF22 Keysym = 0xffd3
	KeysymF23 Keysym = 0xffd4
	KeysymF24 Keysym = 0xffd5
	KeysymF25 Keysym = 0xffd6
	KeysymF26 Keysym = 0xffd7
	KeysymF27 Keysym = 0xffd8
	KeysymF28 Keysym = 0xffd9
	KeysymF29 Keysym = 0xffda
	KeysymF30 Keysym = 0xffdb
	KeysymF31 Keysym = 0xffdc
	KeysymF32 Keysym = 0xffdd
	KeysymF33 Keysym = 0xffde
	KeysymF34 Keysym = 0xffdf
	KeysymF35 Keysym = 0xffe0
)

// Modifier keys.
const (
	KeysymShiftL   Keysym = 0xffe1
	KeysymShiftR   Keysym = 0xffe2
	KeysymControlL Keysym = 0xffe3
	KeysymControlR Keysym = 0xffe4
	KeysymCapsLock Keysym = 0xffe5
	KeysymMetaL    Keysym = 0xffe7
	KeysymMetaR    Keysym = 0xffe8
	KeysymAltL     Keysym = 0xffe9
	KeysymAltR     Keysym = 0xffea
	KeysymSuperL   Keysym = 0xffeb
	KeysymSuperR   Keysym = 0xffec
	KeysymHyperL   Keysym = 0xffed
	KeysymHyperR   Keysym = 0xffee
)

// XKB extension keys.
const (
	KeysymISOLevel3Shift Keysym = 0xfe03
	KeysymISOLevel3Latch Keysym = 0xfe04
	KeysymISOLevel3Lock  Keysym = 0xfe05
	KeysymISONextGroup   Keysym = 0xfe08
	KeysymISOPrevGroup   Keysym = 0xfe0a
	KeysymISOFirstGroup  Keysym = 0xfe0c
	KeysymISOLastGroup   Keysym = 0xfe0e
	KeysymISOLeftTab     Keysym = 0xfe20
	KeysymISOEnter       Keysym = 0xfe34
)

// XFree86 multimedia and system keys.
const (
	KeysymXF86MonBrightnessUp   Keysym = 0x1008ff02
	KeysymXF86MonBrightnessDown Keysym = 0x1008ff03
	KeysymXF86Standby           Keysym = 0x1008ff10
	KeysymXF86AudioLowerVolume  Keysym = 0x1008ff11
	KeysymXF86AudioMute         Keysym = 0x1008ff12
	KeysymXF86AudioRaiseVolume  Keysym = 0x1008ff13
	KeysymXF86AudioPlay         Keysym = 0x1008ff14
	KeysymXF86AudioStop         Keysym = 0x1008ff15
	KeysymXF86AudioPrev         Keysym = 0x1008ff16
	KeysymXF86AudioNext         Keysym = 0x1008ff17
	KeysymXF86HomePage          Keysym = 0x1008ff18
	KeysymXF86Mail              Keysym = 0x1008ff19
	KeysymXF86Search            Keysym = 0x1008ff1b
	KeysymXF86AudioRecord       Keysym = 0x1008ff1c
	KeysymXF86Calculator        Keysym = 0x1008ff1d
	KeysymXF86Calendar          Keysym = 0x1008ff20
	KeysymXF86PowerDown         Keysym = 0x1008ff21
	KeysymXF86Back              Keysym = 0x1008ff26
	KeysymXF86Forward           Keysym = 0x1008ff27
	KeysymXF86Stop              Keysym = 0x1008ff28
	KeysymXF86Refresh           Keysym = 0x1008ff29
	KeysymXF86PowerOff          Keysym = 0x1008ff2a
	KeysymXF86WakeUp            Keysym = 0x1008ff2b
	KeysymXF86Eject             Keysym = 0x1008ff2c
	KeysymXF86ScreenSaver       Keysym = 0x1008ff2d
	KeysymXF86WWW               Keysym = 0x1008ff2e
	KeysymXF86Sleep             Keysym = 0x1008ff2f
	KeysymXF86Favorites         Keysym = 0x1008ff30
	KeysymXF86AudioPause        Keysym = 0x1008ff31
	KeysymXF86AudioMedia        Keysym = 0x1008ff32
	KeysymXF86MyComputer        Keysym = 0x1008ff33
	KeysymXF86AudioRewind       Keysym = 0x1008ff3e
	KeysymXF86Close             Keysym = 0x1008ff56
	KeysymXF86Copy              Keysym = 0x1008ff57
	KeysymXF86Cut               Keysym = 0x1008ff58
	KeysymXF86New               Keysym = 0x1008ff68
	KeysymXF86Open              Keysym = 0x1008ff6b
	KeysymXF86Paste             Keysym = 0x1008ff6d
	KeysymXF86Save              Keysym = 0x1008ff77
	KeysymXF86Video             Keysym = 0x1008ff87
	KeysymXF86Music             Keysym = 0x1008ff92
	KeysymXF86AudioForward      Keysym = 0x1008ff97
	KeysymXF86Hibernate         Keysym = 0x1008ffa8
)
