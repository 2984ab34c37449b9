package domain

import (
	"fmt"
)

// Build derives the full antenna geometry for one model spec: the two wing
// triangles, the feed point, the optional receiver probe, and the geometry
// views. It is a pure function; all validation happens here, before any
// command is emitted.
func Build(spec ModelSpec) (Model, error) {
	if err := validateDimensions(spec); err != nil {
		return Model{}, err
	}

	long := spec.Gap.Axis
	if long == "" {
		long = spec.Source.Polarisation
	}
	if !long.Valid() {
		return Model{}, buildErr(KindUnknownVariant, "feed gap axis %q is not one of x, y, z", string(spec.Gap.Axis))
	}
	if !spec.Source.Polarisation.Valid() {
		return Model{}, buildErr(KindUnknownVariant, "source polarisation %q is not one of x, y, z", string(spec.Source.Polarisation))
	}
	trans := nextAxis(long)

	feed, err := referencePoint(spec)
	if err != nil {
		return Model{}, err
	}

	// One grid cell is the minimum separation between the feed and the
	// nearest conductor vertex; a vertex on the source location is an
	// ill-defined excitation point in the solver.
	if spec.Gap.Positive < 1 || spec.Gap.Negative < 1 {
		return Model{}, buildErr(KindInvalidGeometry,
			"feed gap must be at least one cell per wing (positive=%d negative=%d)",
			spec.Gap.Positive, spec.Gap.Negative)
	}

	cell := spec.Spacing.Component(long)
	gapPos := float64(spec.Gap.Positive) * cell
	gapNeg := float64(spec.Gap.Negative) * cell

	material := spec.Material
	if material == "" {
		material = MaterialPEC
	}

	wings := [2]Triangle{
		wing(feed, long, trans, +1, gapPos, spec.Bowtie, material),
		wing(feed, long, trans, -1, gapNeg, spec.Bowtie, material),
	}
	for i, w := range wings {
		if collinear(w.V1, w.V2, w.V3) {
			return Model{}, buildErr(KindDegenerateGeometry, "wing %d has collinear vertices", i+1)
		}
	}

	model := Model{
		Feed: feed,
		Source: TransmissionLineSource{
			Polarisation: spec.Source.Polarisation,
			Position:     feed,
			Impedance:    spec.Source.Impedance,
			WaveformID:   spec.Waveform.ID,
		},
		Wings: wings,
	}

	if spec.Probe.Enabled {
		p := feed.Add(spec.Probe.Offset)
		if !inVolume(p, spec.Volume) {
			return Model{}, buildErr(KindInvalidGeometry, "probe at %v lies outside the simulation volume", p)
		}
		model.Probe = &p
	}

	views, err := buildViews(spec, wings)
	if err != nil {
		return Model{}, err
	}
	model.Views = views

	return model, nil
}

func validateDimensions(spec ModelSpec) error {
	if spec.Volume.X <= 0 || spec.Volume.Y <= 0 || spec.Volume.Z <= 0 {
		return buildErr(KindInvalidGeometry, "simulation volume components must be positive, got %v", spec.Volume)
	}
	if spec.Spacing.X <= 0 || spec.Spacing.Y <= 0 || spec.Spacing.Z <= 0 {
		return buildErr(KindInvalidGeometry, "grid spacing components must be positive, got %v", spec.Spacing)
	}
	if spec.Bowtie.Length <= 0 || spec.Bowtie.Height <= 0 {
		return buildErr(KindInvalidGeometry, "bowtie dimensions must be positive, got length=%g height=%g",
			spec.Bowtie.Length, spec.Bowtie.Height)
	}
	if spec.TimeWindow <= 0 {
		return buildErr(KindInvalidGeometry, "time window must be positive, got %g", spec.TimeWindow)
	}
	return nil
}

// referencePoint anchors the antenna: the volume midpoint, or a fixed
// coordinate along one axis with the other two centered.
func referencePoint(spec ModelSpec) (Point, error) {
	center := Point{X: spec.Volume.X / 2, Y: spec.Volume.Y / 2, Z: spec.Volume.Z / 2}

	switch spec.Placement.Variant {
	case PlacementCentered:
		return center, nil

	case PlacementGroundOffset:
		if !spec.Placement.OffsetAxis.Valid() {
			return Point{}, buildErr(KindUnknownVariant, "placement offset axis %q is not one of x, y, z",
				string(spec.Placement.OffsetAxis))
		}
		off := spec.Placement.Offset
		if off <= 0 || off >= spec.Volume.Component(spec.Placement.OffsetAxis) {
			return Point{}, buildErr(KindInvalidGeometry, "placement offset %g is outside the volume on axis %s",
				off, spec.Placement.OffsetAxis)
		}
		return center.WithComponent(spec.Placement.OffsetAxis, off), nil

	default:
		return Point{}, buildErr(KindUnknownVariant, "unsupported placement variant %q", string(spec.Placement.Variant))
	}
}

// wing builds one triangular conductor. The apex sits one feed gap from the
// reference point on the longitudinal axis; the base edge lies a further
// bowtie length out, spanning the bowtie height across the transverse axis.
// sign distinguishes the two mirrored wings.
func wing(feed Point, long, trans Axis, sign float64, gap float64, bt BowtieSpec, material string) Triangle {
	apex := feed.WithComponent(long, feed.Component(long)+sign*gap)

	baseLong := feed.Component(long) + sign*(gap+bt.Length)
	base := feed.WithComponent(long, baseLong)

	return Triangle{
		V1:        apex,
		V2:        base.WithComponent(trans, feed.Component(trans)-bt.Height/2),
		V3:        base.WithComponent(trans, feed.Component(trans)+bt.Height/2),
		Thickness: 0,
		Material:  material,
	}
}

func buildViews(spec ModelSpec, wings [2]Triangle) ([]GeometryView, error) {
	name := spec.Name
	if name == "" {
		name = "model"
	}

	var views []GeometryView
	if spec.Views.FullDomain {
		views = append(views, GeometryView{
			Min:    Point{},
			Max:    spec.Volume,
			Step:   spec.Spacing,
			Output: name + "_domain",
			Mode:   ViewNormal,
		})
	}

	lo, hi := extent(wings)
	pad := Point{X: 2 * spec.Spacing.X, Y: 2 * spec.Spacing.Y, Z: 2 * spec.Spacing.Z}
	detail := GeometryView{
		Min:    Point{X: lo.X - pad.X, Y: lo.Y - pad.Y, Z: lo.Z - pad.Z},
		Max:    Point{X: hi.X + pad.X, Y: hi.Y + pad.Y, Z: hi.Z + pad.Z},
		Step:   spec.Spacing,
		Output: name + "_antenna",
		Mode:   ViewFine,
	}
	if !inVolume(detail.Min, spec.Volume) || !inVolume(detail.Max, spec.Volume) {
		return nil, buildErr(KindInvalidGeometry, "padded antenna view %v..%v leaves the simulation volume",
			detail.Min, detail.Max)
	}

	// The detail view is always last in the emitted sequence.
	return append(views, detail), nil
}

func extent(wings [2]Triangle) (lo Point, hi Point) {
	vs := []Point{
		wings[0].V1, wings[0].V2, wings[0].V3,
		wings[1].V1, wings[1].V2, wings[1].V3,
	}
	lo, hi = vs[0], vs[0]
	for _, v := range vs[1:] {
		lo = Point{X: min(lo.X, v.X), Y: min(lo.Y, v.Y), Z: min(lo.Z, v.Z)}
		hi = Point{X: max(hi.X, v.X), Y: max(hi.Y, v.Y), Z: max(hi.Z, v.Z)}
	}
	return lo, hi
}

// collinear reports whether the three vertices have a zero cross product,
// i.e. the triangle has no area (possible if the bowtie height underflows).
func collinear(a, b, c Point) bool {
	abX, abY, abZ := b.X-a.X, b.Y-a.Y, b.Z-a.Z
	acX, acY, acZ := c.X-a.X, c.Y-a.Y, c.Z-a.Z

	crossX := abY*acZ - abZ*acY
	crossY := abZ*acX - abX*acZ
	crossZ := abX*acY - abY*acX
	return crossX == 0 && crossY == 0 && crossZ == 0
}

func inVolume(p Point, vol Volume) bool {
	return p.X >= 0 && p.Y >= 0 && p.Z >= 0 &&
		p.X <= vol.X && p.Y <= vol.Y && p.Z <= vol.Z
}

func nextAxis(a Axis) Axis {
	switch a {
	case AxisX:
		return AxisY
	case AxisY:
		return AxisZ
	default:
		return AxisX
	}
}

func buildErr(kind ErrorKind, format string, args ...any) *OpError {
	return &OpError{
		Op:   "domain.build",
		Kind: kind,
		Err:  fmt.Errorf(format, args...),
	}
}
