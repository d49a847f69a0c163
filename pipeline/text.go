package pipeline

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// TextSink prints a human-readable summary of a report.
type TextSink struct {
	w io.Writer
	p *message.Printer
}

// NewTextSink writes to w with number formatting for tag.
func NewTextSink(w io.Writer, tag language.Tag) *TextSink {
	return &TextSink{w: w, p: message.NewPrinter(tag)}
}

// Emit prints the grid size and each metric's optimum. Ties list every
// tying composition.
func (s *TextSink) Emit(r *Report) error {
	if _, err := s.p.Fprintf(s.w, "Resolution of the volume fraction array is: %.4g\n", r.Grid.Step()); err != nil {
		return err
	}
	if _, err := s.p.Fprintf(s.w, "The total number of combinations is: %d\n\n", r.Grid.Len()); err != nil {
		return err
	}
	for _, o := range r.Optima {
		var err error
		if o.Unique() {
			_, err = s.p.Fprintf(s.w, "Best %s fit (%.6g, index %d):\n  %v\n",
				o.Metric, o.Value, o.First(), o.Compositions[0])
		} else {
			_, err = s.p.Fprintf(s.w, "%d compositions tie for best %s fit (%.6g), indices %v:\n",
				len(o.Indices), o.Metric, o.Value, o.Indices)
			for _, c := range o.Compositions {
				if err == nil {
					_, err = s.p.Fprintf(s.w, "  %v\n", c)
				}
			}
		}
		if err != nil {
			return err
		}
	}

	return nil
}
