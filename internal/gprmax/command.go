// Package gprmax renders built antenna models into the solver's line-oriented
// input dialect. Commands are typed records, fully resolved at construction;
// encoding is a separate step so geometry and text representation stay
// independently testable.
package gprmax

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/bowgen/internal/domain"
)

// Command is one solver declaration: `#keyword: arg arg ...`.
type Command struct {
	Keyword string
	Args    []string
}

func (c Command) String() string {
	if len(c.Args) == 0 {
		return "#" + c.Keyword + ":"
	}
	return "#" + c.Keyword + ": " + strings.Join(c.Args, " ")
}

// num formats a coordinate or scalar the way the solver expects: general
// floating point with six significant digits (C `%g`).
func num(v float64) string {
	return fmt.Sprintf("%.6g", v)
}

func coords(p domain.Point) []string {
	return []string{num(p.X), num(p.Y), num(p.Z)}
}

// Title declares the model title.
func Title(title string) Command {
	return Command{Keyword: "title", Args: []string{title}}
}

// DomainSize declares the simulation volume extent.
func DomainSize(v domain.Volume) Command {
	return Command{Keyword: "domain", Args: coords(v)}
}

// Discretisation declares the grid spacing.
func Discretisation(s domain.Spacing) Command {
	return Command{Keyword: "dx_dy_dz", Args: coords(s)}
}

// TimeWindow declares the simulated duration in seconds.
func TimeWindow(t float64) Command {
	return Command{Keyword: "time_window", Args: []string{num(t)}}
}

// WaveformDecl declares an excitation waveform.
func WaveformDecl(w domain.Waveform) Command {
	return Command{Keyword: "waveform", Args: []string{
		w.Shape, num(w.Amplitude), num(w.Frequency), w.ID,
	}}
}

// TransmissionLine declares the source: polarisation, position,
// characteristic impedance and the waveform it injects.
func TransmissionLine(src domain.TransmissionLineSource) Command {
	args := []string{string(src.Polarisation)}
	args = append(args, coords(src.Position)...)
	args = append(args, num(src.Impedance), src.WaveformID)
	return Command{Keyword: "transmission_line", Args: args}
}

// Rx declares a receiver probe.
func Rx(p domain.Point) Command {
	return Command{Keyword: "rx", Args: coords(p)}
}

// TriangleDecl declares one conductor patch.
func TriangleDecl(t domain.Triangle) Command {
	var args []string
	args = append(args, coords(t.V1)...)
	args = append(args, coords(t.V2)...)
	args = append(args, coords(t.V3)...)
	args = append(args, num(t.Thickness), t.Material)
	return Command{Keyword: "triangle", Args: args}
}

// GeometryViewDecl declares a geometry export box.
func GeometryViewDecl(v domain.GeometryView) Command {
	var args []string
	args = append(args, coords(v.Min)...)
	args = append(args, coords(v.Max)...)
	args = append(args, coords(v.Step)...)
	args = append(args, v.Output, string(v.Mode))
	return Command{Keyword: "geometry_view", Args: args}
}
