package yamlmodel

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/bowgen/internal/domain"
)

const (
	defaultWaveformID = "pulse"
	defaultFeedGap    = 1
)

// mapAndValidate maps the YAML DTO into the domain spec. Only structural
// concerns are checked here (required fields, recognizable axes as strings);
// geometric validation is the builder's job.
func mapAndValidate(path string, ym yamlModel) (domain.ModelSpec, error) {
	if strings.TrimSpace(ym.Name) == "" {
		return domain.ModelSpec{}, invalidField(path, "name", "model name is required")
	}
	if strings.TrimSpace(ym.Title) == "" {
		return domain.ModelSpec{}, invalidField(path, "title", "model title is required")
	}
	if strings.TrimSpace(ym.Waveform.Shape) == "" {
		return domain.ModelSpec{}, invalidField(path, "waveform.shape", "waveform shape is required")
	}
	if strings.TrimSpace(ym.Placement.Variant) == "" {
		return domain.ModelSpec{}, invalidField(path, "placement.variant", "placement variant is required")
	}

	spec := domain.ModelSpec{
		Name:  ym.Name,
		Title: ym.Title,

		Volume:     point(ym.Domain),
		Spacing:    point(ym.DxDyDz),
		TimeWindow: ym.TimeWindow,

		Waveform: domain.Waveform{
			Shape:     ym.Waveform.Shape,
			Amplitude: ym.Waveform.Amplitude,
			Frequency: ym.Waveform.Frequency,
			ID:        ym.Waveform.ID,
		},
		Source: domain.SourceSpec{
			Polarisation: domain.Axis(ym.Source.Polarisation),
			Impedance:    ym.Source.Impedance,
		},

		Bowtie: domain.BowtieSpec{
			Length: ym.Bowtie.Length,
			Height: ym.Bowtie.Height,
		},
		Placement: domain.Placement{
			Variant:    domain.PlacementVariant(ym.Placement.Variant),
			OffsetAxis: domain.Axis(ym.Placement.OffsetAxis),
			Offset:     ym.Placement.Offset,
		},
		Material: strings.TrimSpace(ym.Material),

		Views: domain.ViewSpec{FullDomain: ym.Views.FullDomain},
	}

	if spec.Source.Polarisation == "" {
		spec.Source.Polarisation = domain.AxisX
	}
	if spec.Waveform.ID == "" {
		spec.Waveform.ID = defaultWaveformID
	}
	if spec.Material == "" {
		spec.Material = domain.MaterialPEC
	}

	spec.Gap = domain.FeedGap{
		Axis:     spec.Source.Polarisation,
		Positive: defaultFeedGap,
		Negative: defaultFeedGap,
	}
	if ym.FeedGap != nil {
		if strings.TrimSpace(ym.FeedGap.Axis) != "" {
			spec.Gap.Axis = domain.Axis(ym.FeedGap.Axis)
		}
		if ym.FeedGap.Positive != nil {
			spec.Gap.Positive = *ym.FeedGap.Positive
		}
		if ym.FeedGap.Negative != nil {
			spec.Gap.Negative = *ym.FeedGap.Negative
		}
	}

	if ym.Probe != nil {
		spec.Probe = domain.ProbeSpec{
			Enabled: true,
			Offset:  point(ym.Probe.Offset),
		}
	}

	return spec, nil
}

func point(p yamlPoint) domain.Point {
	return domain.Point{X: p.X, Y: p.Y, Z: p.Z}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlmodel.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s", field, msg),
	}
}
