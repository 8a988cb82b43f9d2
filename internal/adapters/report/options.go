package report

// Option configures a Renderer.
type Option func(*Renderer)

// WithLabeler sets the translator used for headings.
func WithLabeler(l Labeler) Option {
	return func(r *Renderer) {
		if l != nil {
			r.labels = l
		}
	}
}

// WithChartSize sets the PNG size in inches. Non-positive values are ignored.
func WithChartSize(width, height float64) Option {
	return func(r *Renderer) {
		if width > 0 && height > 0 {
			r.width, r.height = width, height
		}
	}
}
