// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package seat

// CursorShape is a compositor cursor image request, matching the shapes of
// the wp-cursor-shape protocol.
type CursorShape uint8

const (
	CursorDefault CursorShape = iota
	CursorContextMenu
	CursorHelp
	CursorPointer
	CursorProgress
	CursorWait
	CursorCell
	CursorCrosshair
	CursorText
	CursorAlias
	CursorCopy
	CursorMove
	CursorNoDrop
	CursorNotAllowed
	CursorGrab
	CursorGrabbing
	CursorEWResize
	CursorNSResize
	CursorNESWResize
	CursorNWSEResize
	CursorColResize
	CursorRowResize
	CursorAllScroll
	CursorZoomIn
	CursorZoomOut
)

var cursorShapeNames = [...]string{
	CursorDefault:     "default",
	CursorContextMenu: "context-menu",
	CursorHelp:        "help",
	CursorPointer:     "pointer",
	CursorProgress:    "progress",
	CursorWait:        "wait",
	CursorCell:        "cell",
	CursorCrosshair:   "crosshair",
	CursorText:        "text",
	CursorAlias:       "alias",
	CursorCopy:        "copy",
	CursorMove:        "move",
	CursorNoDrop:      "no-drop",
	CursorNotAllowed:  "not-allowed",
	CursorGrab:        "grab",
	CursorGrabbing:    "grabbing",
	CursorEWResize:    "ew-resize",
	CursorNSResize:    "ns-resize",
	CursorNESWResize:  "nesw-resize",
	CursorNWSEResize:  "nwse-resize",
	CursorColResize:   "col-resize",
	CursorRowResize:   "row-resize",
	CursorAllScroll:   "all-scroll",
	CursorZoomIn:      "zoom-in",
	CursorZoomOut:     "zoom-out",
}

// String returns the protocol name of the shape.
func (s CursorShape) String() string {
	if int(s) < len(cursorShapeNames) {
		return cursorShapeNames[s]
	}
	return "default"
}
