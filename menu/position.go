package menu

import (
	"github.com/iw2rmb/selmenu/editor"
	"github.com/iw2rmb/selmenu/layer"
)

// menuGap is the distance between the menu's bottom edge and the top of the
// selection head.
const menuGap = 3

// DefaultShow makes the menu visible and centers it above the selection head,
// clamped horizontally to the menu's container.
//
// The node must already be attached: measuring a detached node returns
// layer.ErrDetached. Errors from the coordinate mapping are returned as is.
func DefaultShow(v editor.View, menu *layer.Node) error {
	start, err := v.CoordsAtPos(v.State().Selection.Head)
	if err != nil {
		return err
	}

	parent := menu.Parent()
	if parent == nil {
		return layer.ErrDetached
	}

	menu.Show()

	box := parent.Bounds()
	width, height := menu.Size()

	left := min(max(box.Left, start.Left-width/2), box.Right-width)
	menu.MoveTo(left, start.Top-height-menuGap)
	return nil
}

// DefaultHide hides the menu without touching its position.
func DefaultHide(menu *layer.Node) {
	menu.Hide()
}
