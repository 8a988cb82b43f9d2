package scoring

// Option applies a configuration option to the PolicyScorer.
type Option func(*PolicyScorer)

// WithPolicy replaces the scoring policy. Invalid policies are ignored.
func WithPolicy(p Policy) Option {
	return func(s *PolicyScorer) {
		if p.Validate() == nil {
			s.policy = p
		}
	}
}

// WithReferenceTable replaces the profile reference table.
func WithReferenceTable(t ReferenceTable) Option {
	return func(s *PolicyScorer) {
		if len(t.Physical)+len(t.Technical)+len(t.Tactical) > 0 {
			s.table = t
		}
	}
}
