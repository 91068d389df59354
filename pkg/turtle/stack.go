// Package turtle provides the transform stack used to drive turtle-graphics
// style generation: a current 4x4 transform plus a LIFO of saved transforms.
//
// All operations compose on the right of the current transform, so rotations
// and translations are expressed in the turtle's local frame. The turtle's
// heading ("up") is its local +Y axis.
package turtle

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// UnderflowError is returned by Pop when there is no matching Push.
type UnderflowError struct{}

func (e *UnderflowError) Error() string {
	return "turtle: pop on empty transform stack"
}

// Stack holds the current transform and the saved transforms.
// A Stack belongs to a single generation pass and is not safe for concurrent use.
type Stack struct {
	current mgl32.Mat4
	saved   []mgl32.Mat4
}

// New returns a stack whose current transform is the identity.
func New() *Stack {
	return &Stack{current: mgl32.Ident4()}
}

// Current returns the active transform.
func (s *Stack) Current() mgl32.Mat4 {
	return s.current
}

// Depth returns the number of saved transforms.
func (s *Stack) Depth() int {
	return len(s.saved)
}

// Push saves a copy of the current transform. The current transform is left
// unchanged for further composition.
func (s *Stack) Push() {
	s.saved = append(s.saved, s.current)
}

// Pop restores the most recently pushed transform.
func (s *Stack) Pop() error {
	n := len(s.saved)
	if n == 0 {
		return &UnderflowError{}
	}
	s.current = s.saved[n-1]
	s.saved = s.saved[:n-1]
	return nil
}

// MustPop is like Pop but panics on underflow. An unmatched pop is a logic
// defect in the caller, not a recoverable condition.
func (s *Stack) MustPop() {
	if err := s.Pop(); err != nil {
		panic(err)
	}
}

// TranslateForward moves the turtle distance units along its local up axis
// and returns the world-space point the local origin now maps to.
func (s *Stack) TranslateForward(distance float32) mgl32.Vec3 {
	s.current = s.current.Mul4(mgl32.Translate3D(0, distance, 0))
	return s.current.Col(3).Vec3()
}

// RotateAroundLocalX pitches the turtle by angleDegrees around its local X axis.
func (s *Stack) RotateAroundLocalX(angleDegrees float32) {
	s.current = s.current.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(angleDegrees)))
}

// RotateAroundWorldY turns the turtle by angleDegrees around the Y axis of the
// frame in effect. For an unrotated turtle this is the world Y axis; after a
// Pop back to a trunk frame it is the trunk's own axis, which is what fans
// sibling branches out around their parent.
func (s *Stack) RotateAroundWorldY(angleDegrees float32) {
	s.current = s.current.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(angleDegrees)))
}

// Guard pops the stack exactly once when released.
type Guard struct {
	stack    *Stack
	depth    int
	released bool
}

// Scoped pushes the current transform and returns a Guard that restores it.
// Typical use:
//
//	g := s.Scoped()
//	defer g.Release()
func (s *Stack) Scoped() *Guard {
	s.Push()
	return &Guard{stack: s, depth: len(s.saved)}
}

// Release restores the transform saved by Scoped. Releasing twice is a no-op.
// It panics if pushes made inside the scope were left unmatched.
func (g *Guard) Release() {
	if g.released {
		return
	}
	g.released = true
	if d := g.stack.Depth(); d != g.depth {
		panic(fmt.Sprintf("turtle: unbalanced scope, depth %d at release, want %d", d, g.depth))
	}
	g.stack.MustPop()
}
