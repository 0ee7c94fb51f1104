package models

// OptionKind discriminates the two shapes a choice value can take:
// a bare string that is both value and label, or a value with a
// separate display label (and optionally a description).
type OptionKind int

const (
	PlainLabel OptionKind = iota
	LabeledOption
)

// Option is a single selectable choice for form fields. Callers go
// through Value/Label instead of inspecting the shape themselves.
type Option struct {
	kind        OptionKind
	value       string
	label       string
	description string
}

// Plain builds an option whose label doubles as its value.
func Plain(label string) Option {
	return Option{kind: PlainLabel, value: label, label: label}
}

// Labeled builds an option with distinct value and display label.
func Labeled(value, label string) Option {
	return Option{kind: LabeledOption, value: value, label: label}
}

// Described builds a labeled option carrying a longer description.
func Described(value, label, description string) Option {
	o := Labeled(value, label)
	o.description = description
	return o
}

func (o Option) Kind() OptionKind    { return o.kind }
func (o Option) Value() string       { return o.value }
func (o Option) Label() string       { return o.label }
func (o Option) Description() string { return o.description }

// Plains maps a list of bare labels to options.
func Plains(labels ...string) []Option {
	opts := make([]Option, 0, len(labels))
	for _, l := range labels {
		opts = append(opts, Plain(l))
	}
	return opts
}
