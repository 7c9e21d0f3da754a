// Package solmeta extracts the package name and containing component from a
// Solus/PiSi metadata.xml document using a streaming parse, without building
// a document tree.
package solmeta

// Metadata holds the fields extracted from a metadata.xml document.
//
// A Metadata is not safe for concurrent mutation: only one Load may run at a
// time, and no Load may run while another goroutine reads the record. Once a
// Load has returned, any number of goroutines may share the pointer and call
// the accessors concurrently.
type Metadata struct {
	options     options
	packageName *string
	component   *string
}

type options struct {
	logger Logger
}

func defaultOptions() options {
	return options{logger: nopLogger{}}
}

// Option is a Metadata option.
type Option func(o *options)

// WithLogger directs failure diagnostics to l instead of discarding them.
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New creates an empty metadata record. Both fields start absent.
func New(opts ...Option) *Metadata {
	m := &Metadata{options: defaultOptions()}
	for i := range opts {
		opts[i](&m.options)
	}
	return m
}

// PackageName returns the extracted package name,
// or false if the last load did not capture one.
func (m *Metadata) PackageName() (string, bool) {
	if m.packageName == nil {
		return "", false
	}
	return *m.packageName, true
}

// Component returns the component the package belongs to,
// or false if the last load did not capture one.
func (m *Metadata) Component() (string, bool) {
	if m.component == nil {
		return "", false
	}
	return *m.component, true
}

func (m *Metadata) reset() {
	m.packageName = nil
	m.component = nil
}
