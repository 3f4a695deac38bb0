package buffer

// Undo entries are whole States; Doc storage is shared, so a snapshot costs
// one slice header.
type historyState struct {
	undo []State
	redo []State
}

func (b *Buffer) recordUndo(prev State) {
	limit := b.opt.HistoryLimit
	if limit <= 0 {
		return
	}

	b.hist.undo = append(b.hist.undo, prev)
	if len(b.hist.undo) > limit {
		b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
	}
	b.hist.redo = nil
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

func (b *Buffer) Undo() bool {
	if len(b.hist.undo) == 0 {
		return false
	}
	i := len(b.hist.undo) - 1
	prev := b.hist.undo[i]
	b.hist.undo = b.hist.undo[:i]
	b.hist.redo = append(b.hist.redo, b.State())
	b.restore(prev)
	return true
}

func (b *Buffer) Redo() bool {
	if len(b.hist.redo) == 0 {
		return false
	}
	i := len(b.hist.redo) - 1
	next := b.hist.redo[i]
	b.hist.redo = b.hist.redo[:i]
	b.hist.undo = append(b.hist.undo, b.State())
	b.restore(next)
	return true
}

func (b *Buffer) restore(s State) {
	b.doc = s.Doc
	b.sel = s.Selection
	b.version++
}
