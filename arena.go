package brush

import "slices"

// FaceHandle addresses a face slot of one brush. A handle whose generation
// no longer matches its slot refers to a released face.
type FaceHandle struct {
	index      uint32
	generation uint32
}

type faceSlot struct {
	face       *Face
	generation uint32
	refs       int
}

// faceArena stores the faces of a brush. A slot stays alive while the live
// face list or any memento references it.
type faceArena struct {
	slots []faceSlot
	free  []uint32
}

// insert stores face with one reference
func (a *faceArena) insert(face *Face) FaceHandle {
	var index uint32
	if n := len(a.free); n > 0 {
		index = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		index = uint32(len(a.slots))
		a.slots = append(a.slots, faceSlot{})
	}

	slot := &a.slots[index]
	slot.face = face
	slot.refs = 1

	return FaceHandle{index: index, generation: slot.generation}
}

func (a *faceArena) valid(h FaceHandle) bool {
	return int(h.index) < len(a.slots) &&
		a.slots[h.index].generation == h.generation &&
		a.slots[h.index].refs > 0
}

// get returns the face behind h, nil for a stale handle
func (a *faceArena) get(h FaceHandle) *Face {
	if !a.valid(h) {
		return nil
	}
	return a.slots[h.index].face
}

func (a *faceArena) retain(h FaceHandle) {
	a.slots[h.index].refs++
}

// release drops one reference and frees the slot on the last one
func (a *faceArena) release(h FaceHandle) {
	if !a.valid(h) {
		return
	}

	slot := &a.slots[h.index]
	slot.refs--
	if slot.refs > 0 {
		return
	}

	slot.face.owner = nil
	slot.face = nil
	slot.generation++
	a.free = append(a.free, h.index)
}

// live returns the number of occupied slots
func (a *faceArena) live() int {
	return len(a.slots) - len(a.free)
}

// Memento is a snapshot of a brush face list. Faces are shared with the
// brush, not copied, so a memento only captures membership and order;
// per-face changes are captured by FaceMemento.
type Memento struct {
	arena    *faceArena
	handles  []FaceHandle
	released bool
}

// Len returns the number of faces in the snapshot
func (m *Memento) Len() int {
	return len(m.handles)
}

// Release gives the memento's faces back to the brush arena. A released
// memento can no longer be imported.
func (m *Memento) Release() {
	if m.released {
		return
	}
	for _, h := range m.handles {
		m.arena.release(h)
	}
	m.released = true
}

func newMemento(arena *faceArena, handles []FaceHandle) *Memento {
	m := &Memento{arena: arena, handles: slices.Clone(handles)}
	for _, h := range m.handles {
		arena.retain(h)
	}
	return m
}

// UndoObserver receives brush and face state before they are mutated.
// Ownership of the memento passes to the observer, which must Release it
// once the undo step is discarded.
type UndoObserver interface {
	SaveBrush(b *Brush, state *Memento)
	SaveFace(f *Face, state FaceMemento)
}
