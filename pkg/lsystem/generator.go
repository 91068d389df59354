package lsystem

import (
	"fmt"

	"github.com/Faultbox/arbor/pkg/turtle"
)

// trunkScale is the trunk length in units of Length(0).
const trunkScale = 3

// generator holds the state of one generation pass.
type generator struct {
	params Params
	stack  *turtle.Stack
}

// Generate validates p and grows a skeleton. The root sits at the origin,
// the trunk joint 3*Length(0) above it, and the production rule is expanded
// from the trunk joint with iteration 0.
func Generate(p Params) (*Node, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	g := &generator{params: p, stack: turtle.New()}

	root := newNode(g.stack.Current().Col(3).Vec3(), p.Radius(0))
	trunk := newNode(g.stack.TranslateForward(trunkScale*p.Length(0)), p.Radius(0))
	root.addChild(trunk)

	g.expand(0, trunk)

	if d := g.stack.Depth(); d != 0 {
		panic(fmt.Sprintf("lsystem: transform stack left at depth %d", d))
	}
	return root, nil
}

// expand applies A(n): F(l) [X(b) F(l) A(n+1)] Y(d1) [X(b) F(l) A(n+1)] Y(d2) [X(b) F(l) A(n+1)]
func (g *generator) expand(numIter int, node *Node) {
	if numIter >= g.params.MaxIterations {
		return
	}

	cont := newNode(g.stack.TranslateForward(g.params.Length(numIter)), g.params.Radius(numIter))
	node.addChild(cont)

	g.branch(numIter, cont)
	g.stack.RotateAroundWorldY(g.params.DivergenceAngle1)
	g.branch(numIter, cont)
	g.stack.RotateAroundWorldY(g.params.DivergenceAngle2)
	g.branch(numIter, cont)
}

// branch grows one inclined branch off parent inside a saved transform scope.
func (g *generator) branch(numIter int, parent *Node) {
	scope := g.stack.Scoped()
	defer scope.Release()

	g.stack.RotateAroundLocalX(g.params.BranchingAngle)
	child := newNode(g.stack.TranslateForward(g.params.Length(numIter)), g.params.Radius(numIter+1))
	parent.addChild(child)

	g.expand(numIter+1, child)
}

// ContinuationCount returns the number of continuation joints grown by the
// production rule for the given depth: (3^n - 1) / 2.
func ContinuationCount(maxIterations int) int {
	return (pow3(maxIterations) - 1) / 2
}

// BranchCount returns the number of branch joints: 3 * (3^n - 1) / 2.
func BranchCount(maxIterations int) int {
	return 3 * ContinuationCount(maxIterations)
}

// ExpectedNodeCount returns the total number of skeleton nodes, root and
// trunk included.
func ExpectedNodeCount(maxIterations int) int {
	return 2 + ContinuationCount(maxIterations) + BranchCount(maxIterations)
}

func pow3(n int) int {
	r := 1
	for ; n > 0; n-- {
		r *= 3
	}
	return r
}
