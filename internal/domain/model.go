package domain

import "time"

// PlacementVariant selects how the antenna reference point is anchored
// inside the simulation volume.
type PlacementVariant string

const (
	// PlacementCentered puts the feed at the volume midpoint on all axes.
	PlacementCentered PlacementVariant = "centered"
	// PlacementGroundOffset pins the feed at a fixed coordinate along one
	// axis (e.g. a fixed height above a ground plane) and centers the rest.
	PlacementGroundOffset PlacementVariant = "ground_offset"
)

// Placement describes the reference point derivation. OffsetAxis and Offset
// are only meaningful for PlacementGroundOffset.
type Placement struct {
	Variant    PlacementVariant
	OffsetAxis Axis
	Offset     float64
}

// FeedGap is the per-wing separation between the feed point and the nearest
// wing vertex, in whole grid cells along Axis. The two magnitudes are
// deliberately independent: source model variants tune them asymmetrically.
type FeedGap struct {
	Axis     Axis
	Positive int
	Negative int
}

// Waveform is the excitation waveform declaration.
type Waveform struct {
	Shape     string
	Amplitude float64
	Frequency float64
	ID        string
}

// SourceSpec configures the transmission line excitation. Its position is
// always the reference point and is derived by the builder.
type SourceSpec struct {
	Polarisation Axis
	Impedance    float64
}

// TransmissionLineSource is the resolved excitation.
type TransmissionLineSource struct {
	Polarisation Axis
	Position     Point
	Impedance    float64
	WaveformID   string
}

// ProbeSpec optionally places a receiver at feed + Offset.
type ProbeSpec struct {
	Enabled bool
	Offset  Point
}

// ViewSpec selects which geometry views are produced. The detail view around
// the antenna is always emitted; the full-domain view only on request.
type ViewSpec struct {
	FullDomain bool
}

// ModelSpec is the immutable input of the geometry builder: one antenna
// model variant as loaded from a workspace model file.
type ModelSpec struct {
	Name  string
	Title string

	Volume     Volume
	Spacing    Spacing
	TimeWindow float64

	Waveform Waveform
	Source   SourceSpec

	Bowtie    BowtieSpec
	Placement Placement
	Gap       FeedGap
	Material  string

	Probe ProbeSpec
	Views ViewSpec
}

// Model is the builder output: fully resolved geometry, ready for emission.
type Model struct {
	Feed   Point
	Source TransmissionLineSource
	Wings  [2]Triangle
	Probe  *Point
	Views  []GeometryView
}

// ModelRef is a lightweight reference to a model file on disk.
type ModelRef struct {
	Name string
	Path string
}

// Deck is an emitted command sequence as an artifact for persistence.
type Deck struct {
	ModelName string
	Variant   PlacementVariant
	Text      []byte
	BuiltAt   time.Time
}
