package report

import (
	"bytes"
	"fmt"

	"github.com/okian/sportfit/internal/domain/types"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// CategoryChart renders the four category scores as a PNG bar chart on a
// fixed 0-100 axis.
func (r *Renderer) CategoryChart(scores types.CategoryScores, locale string) ([]byte, error) {
	p := plot.New()
	p.Title.Text = r.labels.Label("profile_chart", locale)
	p.Y.Label.Text = r.labels.Label("score", locale)
	p.Y.Min = 0
	p.Y.Max = 100

	values := plotter.Values{scores.Physical, scores.Technical, scores.Tactical, scores.Psychological}
	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return nil, fmt.Errorf("bar chart: %w", err)
	}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars, plotter.NewGrid())
	p.NominalX(
		r.labels.Label("physical", locale),
		r.labels.Label("technical", locale),
		r.labels.Label("tactical", locale),
		r.labels.Label("psychological", locale),
	)

	wt, err := p.WriterTo(vg.Length(r.width)*vg.Inch, vg.Length(r.height)*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("chart writer: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write chart: %w", err)
	}
	return buf.Bytes(), nil
}
