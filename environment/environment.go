/*
File    : golox/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package environment implements variable storage: a global map plus an
explicit stack of scope frames, giving O(1) distance-indexed access rather
than a parent-pointer scope chain. Names resolve to a Cell, a pointer to a
Value, so that two lookups of the same name return the same storage
identity (the value-cell aliasing invariant).
*/
package environment

import (
	"fmt"

	"github.com/akashmaji946/golox/value"
)

// Cell is a shared, mutable box around a Value. Two Get calls for the same
// live binding return the identical *Cell, so a write through one is
// visible to every other holder.
type Cell struct {
	Value value.Value
}

type frame map[string]*Cell

// Environment is a global map plus a stack of scope frames. The tail of the
// frames slice is the innermost (most recently pushed) frame; distance 0 in
// GetAt means "top of the frames stack".
type Environment struct {
	globals frame
	frames  []frame
}

// New creates an Environment with an empty global scope and no frames
// pushed.
func New() *Environment {
	return &Environment{globals: make(frame)}
}

// Push starts a new, empty scope frame (block entry or function call).
func (e *Environment) Push() {
	e.frames = append(e.frames, make(frame))
}

// Pop discards the innermost scope frame. Callers (Block/Call) must
// always balance Push/Pop; popping with no frame pushed is a caller
// defect and panics.
func (e *Environment) Pop() {
	if len(e.frames) == 0 {
		panic("environment: pop with no frame pushed")
	}
	e.frames = e.frames[:len(e.frames)-1]
}

// Depth reports the number of pushed frames, used by tests to assert scope
// balance around statement evaluation.
func (e *Environment) Depth() int {
	return len(e.frames)
}

// Define inserts name into the innermost frame, or into globals if no
// frame is pushed, always creating a fresh cell and shadowing any outer
// binding of the same name.
func (e *Environment) Define(name string, v value.Value) {
	c := &Cell{Value: v}
	if len(e.frames) == 0 {
		e.globals[name] = c
		return
	}
	e.frames[len(e.frames)-1][name] = c
}

// Get searches the innermost frame outward, finally the globals, and
// returns the cell found, or (nil, false).
func (e *Environment) Get(name string) (*Cell, bool) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if c, ok := e.frames[i][name]; ok {
			return c, true
		}
	}
	c, ok := e.globals[name]
	return c, ok
}

// GetAt performs O(1) access at a precomputed scope distance: distance 0 is
// the innermost frame, increasing outward; distance equal to len(frames)
// means globals. Any other out-of-range distance is an invariant
// violation and panics.
func (e *Environment) GetAt(name string, distance int) (*Cell, bool) {
	if distance == len(e.frames) {
		c, ok := e.globals[name]
		return c, ok
	}
	if distance < 0 || distance > len(e.frames) {
		panic(fmt.Sprintf("environment: distance %d out of range (frames=%d)", distance, len(e.frames)))
	}
	idx := len(e.frames) - 1 - distance
	c, ok := e.frames[idx][name]
	return c, ok
}

// Assign mutates the cell for an existing binding in place, searching
// innermost-out then globals, and reports whether a binding was found.
func (e *Environment) Assign(name string, v value.Value) bool {
	c, ok := e.Get(name)
	if !ok {
		return false
	}
	c.Value = v
	return true
}

// AssignAt mutates the cell at a precomputed distance in place, mirroring
// GetAt's indexing.
func (e *Environment) AssignAt(name string, distance int, v value.Value) bool {
	c, ok := e.GetAt(name, distance)
	if !ok {
		return false
	}
	c.Value = v
	return true
}
