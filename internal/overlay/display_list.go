package overlay

import (
	"encoding/json"
	"slices"
	"sync"
)

type OpKind string

const (
	OpCircle OpKind = "circle"
	OpLine   OpKind = "line"
	OpArc    OpKind = "arc"
)

// Op is one recorded draw call. Args depend on the kind:
//   - circle: x, y, radius
//   - line: x1, y1, x2, y2
//   - arc: x, y, radius, startAngle, endAngle
type Op struct {
	Kind  OpKind    `json:"op"`
	Args  []float64 `json:"args"`
	Style Style     `json:"style"`
}

// DisplayList is a Surface that records draw ops, so a remote canvas can replay them.
type DisplayList struct {
	mu     sync.Mutex
	width  int
	height int
	ops    []Op
}

var _ Surface = (*DisplayList)(nil)

func NewDisplayList() *DisplayList {
	return &DisplayList{}
}

func (dl *DisplayList) Resize(width, height int) {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	dl.width = width
	dl.height = height
}

func (dl *DisplayList) Clear() {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	dl.ops = dl.ops[:0]
}

func (dl *DisplayList) Circle(x, y, radius float64, style Style) {
	dl.add(Op{Kind: OpCircle, Args: []float64{x, y, radius}, Style: style})
}

func (dl *DisplayList) Line(x1, y1, x2, y2 float64, style Style) {
	dl.add(Op{Kind: OpLine, Args: []float64{x1, y1, x2, y2}, Style: style})
}

func (dl *DisplayList) Arc(x, y, radius, startAngle, endAngle float64, style Style) {
	dl.add(Op{Kind: OpArc, Args: []float64{x, y, radius, startAngle, endAngle}, Style: style})
}

func (dl *DisplayList) add(op Op) {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	dl.ops = append(dl.ops, op)
}

// Frame is the serialised form of a display list.
type Frame struct {
	Width  int  `json:"width"`
	Height int  `json:"height"`
	Ops    []Op `json:"ops"`
}

// Snapshot returns a copy of the current size and ops.
func (dl *DisplayList) Snapshot() Frame {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	ops := slices.Clone(dl.ops)
	if ops == nil {
		ops = []Op{}
	}
	return Frame{
		Width:  dl.width,
		Height: dl.height,
		Ops:    ops,
	}
}

func (dl *DisplayList) MarshalJSON() ([]byte, error) {
	return json.Marshal(dl.Snapshot())
}
