package record

import "github.com/viant/tagly/format/text"

// Option represents accessor option
type Option func(a *Accessor)

// Options represents accessor options
type Options []Option

// Apply applies options
func (o Options) Apply(a *Accessor) {
	for _, opt := range o {
		opt(a)
	}
}

// WithNil reports nil pointers and interfaces as scalar nil instead of skipping them
func WithNil() Option {
	return func(a *Accessor) {
		a.includeNil = true
	}
}

// WithUnexported includes unexported struct fields
func WithUnexported() Option {
	return func(a *Accessor) {
		a.unexported = true
	}
}

// WithTagNames uses name part of supplied tags (i.e. json) as field label when walk tag does not define one
func WithTagNames(names ...string) Option {
	return func(a *Accessor) {
		a.tagNames = append(a.tagNames, names...)
	}
}

// WithCaseFormat formats default field labels with supplied case format
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(a *Accessor) {
		a.caseFormat = caseFormat
	}
}

// WithPresence skips fields not flagged as set by a presence marker
func WithPresence() Option {
	return func(a *Accessor) {
		a.presence = true
	}
}
