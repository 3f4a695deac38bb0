package main

import (
	"github.com/atotto/clipboard"

	"github.com/iw2rmb/selmenu/editor"
)

type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }

func (systemClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }

// newClipboard returns nil when no clipboard utility is available, which
// turns copy and paste into no-ops.
func newClipboard() editor.Clipboard {
	if clipboard.Unsupported {
		return nil
	}
	return systemClipboard{}
}
