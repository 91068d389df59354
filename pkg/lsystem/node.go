// Package lsystem grows a branching tree skeleton with a small fixed
// production system (after Prusinkiewicz & Lindenmayer, "The Algorithmic
// Beauty of Plants").
package lsystem

import (
	"iter"

	"github.com/go-gl/mathgl/mgl32"
)

// Node is one joint of the skeleton. Position and radius are fixed at
// construction; children keep generation order.
type Node struct {
	position mgl32.Vec3
	radius   float32
	parent   *Node
	children []*Node
}

func newNode(position mgl32.Vec3, radius float32) *Node {
	return &Node{position: position, radius: radius}
}

func (n *Node) addChild(child *Node) {
	child.parent = n
	n.children = append(n.children, child)
}

// Position returns the world-space position of the joint.
func (n *Node) Position() mgl32.Vec3 { return n.position }

// Radius returns the branch thickness at the joint.
func (n *Node) Radius() float32 { return n.radius }

// Parent returns the parent joint, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the owned children in generation order.
// The returned slice must not be modified.
func (n *Node) Children() []*Node { return n.children }

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool { return n.parent == nil }

// Depth returns the number of edges between n and the root.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// PreOrder yields n and its descendants depth-first, parents before
// children, children in stored order.
func (n *Node) PreOrder() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		stack := []*Node{n}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(top) {
				return
			}
			for i := len(top.children) - 1; i >= 0; i-- {
				stack = append(stack, top.children[i])
			}
		}
	}
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	count := 0
	for range n.PreOrder() {
		count++
	}
	return count
}
