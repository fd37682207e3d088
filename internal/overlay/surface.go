package overlay

// Colors used on the overlay, in canvas notation.
const (
	ColorKeypoint = "#00bfff"
	ColorBone     = "#ffffff"
	ColorPass     = "#00ff00"
	ColorFail     = "#ff0000"
)

// Style of a single draw op.
type Style struct {
	Color string  `json:"color"`
	Width float64 `json:"width,omitempty"`
	Fill  bool    `json:"fill,omitempty"`
}

//go:generate mockgen -source=$GOFILE -destination=surface_mocks_test.go -package=overlay_test

// Surface is a 2D drawing target sized to the camera frame.
type Surface interface {
	Resize(width, height int)
	Clear()
	Circle(x, y, radius float64, style Style)
	Line(x1, y1, x2, y2 float64, style Style)
	// Arc draws clockwise from startAngle to endAngle, in radians.
	Arc(x, y, radius, startAngle, endAngle float64, style Style)
}
