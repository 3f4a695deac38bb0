package editor

import "github.com/iw2rmb/selmenu/buffer"

// ChangeEvent reports one effective buffer change.
type ChangeEvent struct {
	Version uint64
	Prev    buffer.State
	State   buffer.State
}

// DocChanged reports whether the change touched the text.
func (e ChangeEvent) DocChanged() bool {
	return !e.Prev.Doc.Eq(e.State.Doc)
}
