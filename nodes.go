package squarecalc

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind
	// pos is the byte offset of the token that produced the node.
	pos int

	num   float64
	name  string
	fn    FunctionKind
	konst ConstantKind

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum   // num
	nodeConst // konst
	nodeName  // lookup(name)

	nodeCall // apply fn to left

	nodeNeg // evaluate left, then negate
	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
	nodePow // evaluate left, exp by right
)

var nodenames = [...]string{
	nodeNone:  "None",
	nodeNum:   "Num",
	nodeConst: "Const",
	nodeName:  "Name",
	nodeCall:  "Call",
	nodeNeg:   "Neg",
	nodeAdd:   "Add",
	nodeSub:   "Sub",
	nodeMul:   "Mul",
	nodeDiv:   "Div",
	nodePow:   "Pow",
}

func (k nodeKind) String() string {
	if k < 0 || int(k) >= len(nodenames) {
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
	return nodenames[k]
}

// binnode gives the node kind for a binary operator.
var binnode = [...]nodeKind{
	Add: nodeAdd,
	Sub: nodeSub,
	Mul: nodeMul,
	Div: nodeDiv,
	Pow: nodePow,
}

// binsym gives the operator text for a binary node kind.
var binsym = map[nodeKind]string{
	nodeAdd: " + ",
	nodeSub: " - ",
	nodeMul: " * ",
	nodeDiv: " / ",
	nodePow: " ^ ",
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *node) fmt(b *strings.Builder) {
	b.WriteByte('(')
	defer b.WriteByte(')')
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteString("$#$")
	case nodeNum:
		b.WriteString(strconv.FormatFloat(n.num, 'g', -1, 64))
	case nodeConst:
		b.WriteString(n.konst.String())
	case nodeName:
		b.WriteString(n.name)
	case nodeCall:
		b.WriteString(n.fn.String())
		n.left.fmt(b)
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		n.left.fmt(b)
		b.WriteString(binsym[n.kind])
		n.right.fmt(b)
	default:
		panic("squarecalc: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
