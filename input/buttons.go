// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import (
	"github.com/gogpu/wayapp/seat"
	"github.com/gogpu/wayapp/ui"
)

// MapButton maps a linux input-event button code to a toolkit button.
// Side, extra and other buttons have no toolkit equivalent and report
// ok=false; events for them are dropped rather than mislabeled.
func MapButton(code uint32) (ui.Button, bool) {
	switch code {
	case seat.BtnLeft:
		return ui.ButtonPrimary, true
	case seat.BtnRight:
		return ui.ButtonSecondary, true
	case seat.BtnMiddle:
		return ui.ButtonMiddle, true
	}
	return 0, false
}
