// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ui

// NamedKey is a logical key with a layout-independent name: function rows,
// the navigation cluster, modifiers, numpad controls, multimedia and IME
// keys. KeyUnidentified is a valid, observable value: mapping never fails,
// it names what it can and labels the rest.
type NamedKey uint16

const (
	KeyUnidentified NamedKey = iota

	// Editing and whitespace.
	KeyBackspace
	KeyTab
	KeyClear
	KeyEnter
	KeySpace
	KeyDelete
	KeyInsert
	KeyEscape

	// Clipboard. Also synthesized from ctrl+c/x/v chords.
	KeyCopy
	KeyCut
	KeyPaste

	// Navigation cluster.
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyArrowLeft
	KeyArrowUp
	KeyArrowRight
	KeyArrowDown

	// Modifiers.
	KeyShift
	KeyControl
	KeyAlt
	KeyAltGraph
	KeySuper
	KeyHyper
	KeyMeta
	KeyCapsLock
	KeyNumLock
	KeyScrollLock

	// Misc functions.
	KeyPause
	KeyPrintScreen
	KeySelect
	KeyExecute
	KeyUndo
	KeyRedo
	KeyContextMenu
	KeyFind
	KeyCancel
	KeyHelp
	KeyModeChange

	// Input method and layout groups.
	KeyCompose
	KeyCodeInput
	KeySingleCandidate
	KeyAllCandidates
	KeyPreviousCandidate
	KeyKanjiMode
	KeyNonConvert
	KeyConvert
	KeyRomaji
	KeyHiragana
	KeyKatakana
	KeyHiraganaKatakana
	KeyZenkaku
	KeyHankaku
	KeyZenkakuHankaku
	KeyKanaMode
	KeyAlphanumeric
	KeyGroupNext
	KeyGroupPrevious
	KeyGroupFirst
	KeyGroupLast

	// Function keys.
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
	KeyF25
	KeyF26
	KeyF27
	KeyF28
	KeyF29
	KeyF30
	KeyF31
	KeyF32
	KeyF33
	KeyF34
	KeyF35

	// Multimedia and system.
	KeyBrightnessUp
	KeyBrightnessDown
	KeyStandby
	KeyHibernate
	KeyPower
	KeyWakeUp
	KeyEject
	KeyAudioVolumeDown
	KeyAudioVolumeUp
	KeyAudioVolumeMute
	KeyMediaPlay
	KeyMediaPause
	KeyMediaStop
	KeyMediaTrackPrevious
	KeyMediaTrackNext
	KeyMediaRecord
	KeyMediaRewind
	KeyMediaFastForward

	// Browser and launcher.
	KeyBrowserHome
	KeyBrowserSearch
	KeyBrowserBack
	KeyBrowserForward
	KeyBrowserRefresh
	KeyBrowserStop
	KeyBrowserFavorites
	KeyLaunchMail
	KeyLaunchCalculator
	KeyLaunchCalendar
	KeyLaunchMediaPlayer
	KeyLaunchMyComputer
	KeyLaunchScreenSaver
	KeyLaunchWebBrowser

	// Document actions.
	KeyNew
	KeyOpen
	KeyClose
	KeySave
)

// Location distinguishes otherwise identical keys by their position on the
// keyboard.
type Location uint8

const (
	LocationStandard Location = iota
	LocationLeft
	LocationRight
	LocationNumpad
)

// String returns the location's name.
func (l Location) String() string {
	switch l {
	case LocationLeft:
		return "left"
	case LocationRight:
		return "right"
	case LocationNumpad:
		return "numpad"
	}
	return "standard"
}

// Key is the logical identity of a key as the active layout resolves it.
// Exactly one of Name and Char carries identity: named keys set Name;
// character-producing keys set Char. A key that is neither is
// KeyUnidentified with Char 0, still a valid key, never dropped.
type Key struct {
	Name NamedKey
	Char rune
}

// Named returns a Key for a named logical key.
func Named(n NamedKey) Key { return Key{Name: n} }

// Character returns a Key for a layout-produced character.
func Character(r rune) Key { return Key{Char: r} }

// IsNamed reports whether the key carries a name rather than a character.
// KeyUnidentified is a valid name, so an unmapped key is still named.
func (k Key) IsNamed() bool { return k.Char == 0 }

// KeyCode is a layout-independent physical key position, following the W3C
// UI Events code vocabulary.
type KeyCode uint16

const (
	CodeUnidentified KeyCode = iota

	// Writing system row.
	CodeBackquote
	CodeMinus
	CodeEqual
	CodeBracketLeft
	CodeBracketRight
	CodeBackslash
	CodeSemicolon
	CodeQuote
	CodeComma
	CodePeriod
	CodeSlash

	CodeDigit0
	CodeDigit1
	CodeDigit2
	CodeDigit3
	CodeDigit4
	CodeDigit5
	CodeDigit6
	CodeDigit7
	CodeDigit8
	CodeDigit9

	CodeKeyA
	CodeKeyB
	CodeKeyC
	CodeKeyD
	CodeKeyE
	CodeKeyF
	CodeKeyG
	CodeKeyH
	CodeKeyI
	CodeKeyJ
	CodeKeyK
	CodeKeyL
	CodeKeyM
	CodeKeyN
	CodeKeyO
	CodeKeyP
	CodeKeyQ
	CodeKeyR
	CodeKeyS
	CodeKeyT
	CodeKeyU
	CodeKeyV
	CodeKeyW
	CodeKeyX
	CodeKeyY
	CodeKeyZ

	CodeSpace
	CodeTab
	CodeEnter
	CodeBackspace
	CodeDelete
	CodeEscape

	CodeShiftLeft
	CodeShiftRight
	CodeControlLeft
	CodeControlRight
	CodeAltLeft
	CodeAltRight
	CodeSuperLeft
	CodeSuperRight
	CodeCapsLock
	CodeNumLock
	CodeScrollLock

	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown
	CodeArrowLeft
	CodeArrowRight
	CodeArrowUp
	CodeArrowDown
	CodeInsert
	CodePrintScreen
	CodePause
	CodeContextMenu

	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12
	CodeF13
	CodeF14
	CodeF15
	CodeF16
	CodeF17
	CodeF18
	CodeF19
	CodeF20
	CodeF21
	CodeF22
	CodeF23
	CodeF24
	CodeF25
	CodeF26
	CodeF27
	CodeF28
	CodeF29
	CodeF30
	CodeF31
	CodeF32
	CodeF33
	CodeF34
	CodeF35

	CodeNumpad0
	CodeNumpad1
	CodeNumpad2
	CodeNumpad3
	CodeNumpad4
	CodeNumpad5
	CodeNumpad6
	CodeNumpad7
	CodeNumpad8
	CodeNumpad9
	CodeNumpadDecimal
	CodeNumpadDivide
	CodeNumpadMultiply
	CodeNumpadSubtract
	CodeNumpadAdd
	CodeNumpadEnter
	CodeNumpadEqual

	CodeAudioVolumeMute
	CodeAudioVolumeDown
	CodeAudioVolumeUp
	CodeMediaPlayPause
	CodeMediaStop
	CodeMediaTrackPrevious
	CodeMediaTrackNext
	CodeMediaSelect

	CodeBrowserBack
	CodeBrowserForward
	CodeBrowserRefresh
	CodeBrowserStop
	CodeBrowserSearch
	CodeBrowserHome
	CodeBrowserFavorites

	CodePower
	CodeSleep
	CodeWakeUp
	CodeLaunchApp1
	CodeLaunchApp2
	CodeLaunchMail

	CodeCopy
	CodeCut
	CodePaste

	CodeConvert
	CodeNonConvert
	CodeLang2
	CodeLang3
	CodeLang4
)

// PhysicalKey identifies the hardware key that produced an event,
// independent of layout. When the position has no name in the code
// vocabulary, Code is CodeUnidentified and Raw still carries the scan code
// verbatim, so downstream shortcut matching keeps working.
type PhysicalKey struct {
	Code KeyCode
	Raw  uint32
}
