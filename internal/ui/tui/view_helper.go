package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/bowgen/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func fmtPoint(p domain.Point) string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

func renderModelSummary(spec domain.ModelSpec, m domain.Model) string {
	var b strings.Builder

	b.WriteString("Model: ")
	b.WriteString(spec.Name)
	b.WriteString("\n")
	b.WriteString(spec.Title)
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Volume:  %s m\n", fmtPoint(spec.Volume)))
	b.WriteString(fmt.Sprintf("Spacing: %s m\n", fmtPoint(spec.Spacing)))
	b.WriteString(fmt.Sprintf("Window:  %g s\n\n", spec.TimeWindow))

	b.WriteString(fmt.Sprintf("Placement: %s\n", spec.Placement.Variant))
	b.WriteString(fmt.Sprintf("Feed:      %s\n", fmtPoint(m.Feed)))
	b.WriteString(fmt.Sprintf("Source:    %s polarised, %g ohm, waveform %q\n\n",
		m.Source.Polarisation, m.Source.Impedance, m.Source.WaveformID))

	b.WriteString("Wings:\n")
	for i, w := range m.Wings {
		b.WriteString(fmt.Sprintf("  %d. apex %s  base %s / %s\n",
			i+1, fmtPoint(w.V1), fmtPoint(w.V2), fmtPoint(w.V3)))
	}
	b.WriteString("\n")

	if m.Probe != nil {
		b.WriteString(fmt.Sprintf("Probe: %s\n\n", fmtPoint(*m.Probe)))
	}

	b.WriteString("Views:\n")
	for _, v := range m.Views {
		b.WriteString(fmt.Sprintf("  - %s [%s]  %s → %s\n",
			v.Output, v.Mode, fmtPoint(v.Min), fmtPoint(v.Max)))
	}

	return b.String()
}

func renderDeckResult(deck domain.Deck, id string) string {
	var b strings.Builder

	b.WriteString("Model:   ")
	b.WriteString(deck.ModelName)
	b.WriteString("\n")
	b.WriteString("Variant: ")
	b.WriteString(string(deck.Variant))
	b.WriteString("\n")
	if id != "" {
		b.WriteString("Saved:   ")
		b.WriteString(id)
		b.WriteString(".in\n")
	}
	b.WriteString("\n")
	b.WriteString(string(deck.Text))

	return b.String()
}
