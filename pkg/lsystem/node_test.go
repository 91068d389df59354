package lsystem

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// buildSample returns a small hand-built tree:
//
//	a
//	├── b
//	│   ├── d
//	│   └── e
//	└── c
func buildSample() map[string]*Node {
	nodes := map[string]*Node{}
	for i, name := range []string{"a", "b", "c", "d", "e"} {
		nodes[name] = newNode(mgl32.Vec3{float32(i), 0, 0}, 1)
	}
	nodes["a"].addChild(nodes["b"])
	nodes["a"].addChild(nodes["c"])
	nodes["b"].addChild(nodes["d"])
	nodes["b"].addChild(nodes["e"])
	return nodes
}

func TestPreOrder(t *testing.T) {
	nodes := buildSample()
	names := map[*Node]string{}
	for name, n := range nodes {
		names[n] = name
	}

	var got string
	for n := range nodes["a"].PreOrder() {
		got += names[n]
	}
	if got != "abdec" {
		t.Errorf("PreOrder = %q, want %q", got, "abdec")
	}
}

func TestPreOrderEarlyStop(t *testing.T) {
	nodes := buildSample()
	count := 0
	for range nodes["a"].PreOrder() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("visited %d nodes after break, want 2", count)
	}
}

func TestNodeLinks(t *testing.T) {
	nodes := buildSample()

	if !nodes["a"].IsRoot() {
		t.Error("a should be the root")
	}
	if nodes["d"].Parent() != nodes["b"] {
		t.Error("d's parent should be b")
	}
	if nodes["e"].Depth() != 2 {
		t.Errorf("e depth = %d, want 2", nodes["e"].Depth())
	}
	if nodes["a"].Count() != 5 {
		t.Errorf("Count = %d, want 5", nodes["a"].Count())
	}
	if got := nodes["b"].Children(); len(got) != 2 || got[0] != nodes["d"] || got[1] != nodes["e"] {
		t.Error("b's children out of insertion order")
	}
}
