package gprmax

import "github.com/aalvaropc/bowgen/internal/domain"

// Emit produces the solver-mandated command order for a built model:
// title, grid declarations, waveform, source, optional receiver, the two
// wings, then geometry views with the antenna detail view always last.
// The model is assumed validated; Emit performs no checks and no I/O.
func Emit(spec domain.ModelSpec, m domain.Model) []Command {
	cmds := []Command{
		Title(spec.Title),
		DomainSize(spec.Volume),
		Discretisation(spec.Spacing),
		TimeWindow(spec.TimeWindow),
		WaveformDecl(spec.Waveform),
		TransmissionLine(m.Source),
	}

	if m.Probe != nil {
		cmds = append(cmds, Rx(*m.Probe))
	}

	cmds = append(cmds, TriangleDecl(m.Wings[0]), TriangleDecl(m.Wings[1]))

	for _, v := range m.Views {
		cmds = append(cmds, GeometryViewDecl(v))
	}

	return cmds
}

// EncodeDeck serializes commands one per line with a trailing newline.
// Output is byte-identical for identical inputs.
func EncodeDeck(cmds []Command) []byte {
	var b []byte
	for _, c := range cmds {
		b = append(b, c.String()...)
		b = append(b, '\n')
	}
	return b
}
