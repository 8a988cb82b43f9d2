package labels

// Option applies a configuration option to the Labeler.
type Option func(*Labeler)

// WithMode sets the ordering mode. Unknown modes are ignored.
func WithMode(m Mode) Option {
	return func(l *Labeler) {
		if m == ModeDeclaration || m == ModeRelevance {
			l.mode = m
		}
	}
}

// WithStrengthRules replaces the strength table.
func WithStrengthRules(rules []Rule) Option {
	return func(l *Labeler) {
		if len(rules) > 0 {
			l.strengths = rules
		}
	}
}

// WithDevelopmentRules replaces the development table.
func WithDevelopmentRules(rules []Rule) Option {
	return func(l *Labeler) {
		if len(rules) > 0 {
			l.development = rules
		}
	}
}
