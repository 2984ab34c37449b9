package domain

// Axis identifies one of the three cartesian axes.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
	AxisZ Axis = "z"
)

// Valid reports whether the axis is one of x, y, z.
func (a Axis) Valid() bool {
	return a == AxisX || a == AxisY || a == AxisZ
}

// Point is a 3-D coordinate in metres.
type Point struct {
	X float64
	Y float64
	Z float64
}

// Component returns the coordinate along the given axis.
func (p Point) Component(a Axis) float64 {
	switch a {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	default:
		return p.Z
	}
}

// WithComponent returns a copy of p with the coordinate along a replaced.
func (p Point) WithComponent(a Axis, v float64) Point {
	switch a {
	case AxisX:
		p.X = v
	case AxisY:
		p.Y = v
	default:
		p.Z = v
	}
	return p
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Volume is the simulation domain extent. All components must be positive.
type Volume = Point

// Spacing is the grid discretisation step per axis. All components must be
// positive. It doubles as the offset unit that keeps conductor vertices away
// from the source location.
type Spacing = Point

// BowtieSpec describes one triangular wing: Length along the longitudinal
// axis, Height across the transverse axis (full base separation).
type BowtieSpec struct {
	Length float64
	Height float64
}

// MaterialPEC is the solver's built-in perfect electric conductor tag.
const MaterialPEC = "pec"

// Triangle is a flat conductor patch. The three vertices share one coordinate
// (the plane normal axis) and must not be collinear. Thickness zero means a
// sheet; positive values extrude a prism.
type Triangle struct {
	V1        Point
	V2        Point
	V3        Point
	Thickness float64
	Material  string
}

// ViewMode selects the sampling granularity of a geometry view.
type ViewMode string

const (
	// ViewNormal samples per cell.
	ViewNormal ViewMode = "n"
	// ViewFine samples per cell edge.
	ViewFine ViewMode = "f"
)

// GeometryView is an axis-aligned export box for inspecting built geometry.
type GeometryView struct {
	Min    Point
	Max    Point
	Step   Spacing
	Output string
	Mode   ViewMode
}

// Contains reports whether the box q..r lies inside the view bounds.
func (v GeometryView) Contains(q, r Point) bool {
	return v.Min.X <= q.X && v.Min.Y <= q.Y && v.Min.Z <= q.Z &&
		v.Max.X >= r.X && v.Max.Y >= r.Y && v.Max.Z >= r.Z
}
