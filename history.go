package daub

import (
	"image"
	"time"

	"github.com/disintegration/imaging"
)

// MaxUndo is the default maximum number of states retained by a History.
const MaxUndo = 30

// ContentStore is the narrow accessor/mutator pair a History snapshots and
// restores through. It is implemented by any canvas owning mutable raster content.
type ContentStore interface {
	Image() *image.NRGBA
	SetImage(img *image.NRGBA)
	Size() image.Point
}

// undoState stores a timestamped image snapshot for undo/redo purposes.
type undoState struct {
	img       *image.NRGBA
	timestamp time.Time
}

// History manages bounded undo and redo stacks of image snapshots over a
// content store. Snapshots are deep copied at capture time, so mutating the
// live content never alters a stored state.
type History struct {
	store     ContentStore
	undoStack []undoState
	redoStack []undoState
	maxUndo   int
}

// NewHistory creates a history bound to the given content store.
// A maxUndo value of zero or below falls back to MaxUndo.
func NewHistory(store ContentStore, maxUndo int) *History {
	if maxUndo <= 0 {
		maxUndo = MaxUndo
	}
	return &History{
		store:   store,
		maxUndo: maxUndo,
	}
}

// Save captures the current content onto the undo stack. It has to be called
// exactly once before each logical edit (stroke start, fill, clear), not once
// per incremental draw event within a stroke. When the undo stack exceeds its
// capacity the oldest states are evicted. Unless the save is part of a redo
// operation, clearRedo must be true so that the pending redo states are discarded.
func (h *History) Save(clearRedo bool) {
	h.undoStack = append(h.undoStack, h.capture())
	if len(h.undoStack) > h.maxUndo {
		h.undoStack = h.undoStack[len(h.undoStack)-h.maxUndo:]
	}
	if clearRedo {
		h.redoStack = nil
	}
}

// Undo reverses the last change applied to the content.
// It's a no-op when no undo states are stored.
func (h *History) Undo() {
	if len(h.undoStack) == 0 {
		return
	}
	h.redoStack = append(h.redoStack, h.capture())
	last := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.install(last)
}

// Redo restores a change previously reversed through Undo.
// It's a no-op when no redo states are stored.
func (h *History) Redo() {
	if len(h.redoStack) == 0 {
		return
	}
	h.Save(false)
	last := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.install(last)
}

// UndoCount returns the number of stored states restorable through Undo.
func (h *History) UndoCount() int {
	return len(h.undoStack)
}

// RedoCount returns the number of stored states restorable through Redo.
func (h *History) RedoCount() int {
	return len(h.redoStack)
}

// LastUndoTime returns the capture time of the most recent undo state.
// The second return value is false when the undo stack is empty.
func (h *History) LastUndoTime() (time.Time, bool) {
	if len(h.undoStack) == 0 {
		return time.Time{}, false
	}
	return h.undoStack[len(h.undoStack)-1].timestamp, true
}

// LastRedoTime returns the capture time of the most recent redo state.
// The second return value is false when the redo stack is empty.
func (h *History) LastRedoTime() (time.Time, bool) {
	if len(h.redoStack) == 0 {
		return time.Time{}, false
	}
	return h.redoStack[len(h.redoStack)-1].timestamp, true
}

// Clear drops all stored undo and redo states. The content is left untouched.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}

// capture deep copies the current content into a timestamped snapshot.
func (h *History) capture() undoState {
	return undoState{
		img:       cloneNRGBA(h.store.Image()),
		timestamp: time.Now(),
	}
}

// install replaces the current content with a stored snapshot. A snapshot
// whose size no longer matches the content store is rescaled to fit.
func (h *History) install(state undoState) {
	img := state.img
	size := h.store.Size()
	if !img.Bounds().Size().Eq(size) {
		img = imaging.Resize(img, size.X, size.Y, imaging.Linear)
	}
	h.store.SetImage(img)
}
