package params

import (
	"sort"

	"github.com/nauticalab/paramfile/internal/log"
)

// DefaultCommentPrefix starts a comment that runs to the end of the line.
const DefaultCommentPrefix = "#"

// UnknownParameter describes a name found in a parameter file that the
// store has no registration for.
type UnknownParameter struct {
	Name   string
	Line   int
	Source string
}

// UnknownHandler receives a notification for every unknown name found
// while loading. It must not modify the store.
type UnknownHandler func(UnknownParameter)

// Parameter is a read-only copy of one entry.
type Parameter struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
	Set   bool   `json:"set"`
}

// entry is a parameter slot. set distinguishes a stored value from the
// unset state, so every string is a legal value.
type entry struct {
	value string
	set   bool
}

// Store holds a fixed set of named parameters and their current values.
// A Store is not safe for concurrent mutation.
type Store struct {
	entries       map[string]*entry
	commentPrefix string
	onUnknown     UnknownHandler
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithCommentPrefix sets the comment prefix used by subsequent loads.
func WithCommentPrefix(prefix string) Option {
	return func(s *Store) {
		s.commentPrefix = prefix
	}
}

// WithUnknownHandler replaces the default handler, which logs a warning.
// A nil handler discards notifications.
func WithUnknownHandler(h UnknownHandler) Option {
	return func(s *Store) {
		s.onUnknown = h
	}
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		entries:       make(map[string]*entry),
		commentPrefix: DefaultCommentPrefix,
		onUnknown:     logUnknown,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// logUnknown is the default UnknownHandler.
func logUnknown(p UnknownParameter) {
	logger := log.WithComponent("params")
	logger.Warn().
		Str("parameter", p.Name).
		Int("line", p.Line).
		Str("source", p.Source).
		Msg("unknown parameter identifier will be ignored")
}

// Register adds a parameter to the schema. An empty defaultValue leaves
// the parameter unset until a file provides a value.
func (s *Store) Register(name, defaultValue string) error {
	if _, exists := s.entries[name]; exists {
		return &DuplicateParameterError{Name: name}
	}

	e := &entry{}
	if defaultValue != "" {
		e.value = defaultValue
		e.set = true
	}
	s.entries[name] = e
	return nil
}

// MustRegister is like Register but panics on a duplicate name.
func (s *Store) MustRegister(name, defaultValue string) {
	if err := s.Register(name, defaultValue); err != nil {
		panic(err)
	}
}

// SetCommentPrefix changes the comment prefix for future loads. Values
// that are already loaded are not re-parsed.
func (s *Store) SetCommentPrefix(prefix string) {
	s.commentPrefix = prefix
}

// CommentPrefix returns the current comment prefix.
func (s *Store) CommentPrefix() string {
	return s.commentPrefix
}

// Get returns the current value of a parameter.
func (s *Store) Get(name string) (string, error) {
	e, ok := s.entries[name]
	if !ok {
		return "", &UnknownParameterError{Name: name}
	}
	if !e.set {
		return "", &NoValueError{Name: name}
	}
	return e.value, nil
}

// Lookup reports the value of a parameter without failing. known is false
// for names that were never registered; set is false for unset parameters.
func (s *Store) Lookup(name string) (value string, set, known bool) {
	e, ok := s.entries[name]
	if !ok {
		return "", false, false
	}
	return e.value, e.set, true
}

// Len returns the number of registered parameters.
func (s *Store) Len() int {
	return len(s.entries)
}

// Names returns all registered names in lexicographic order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns a copy of every entry, ordered by name.
func (s *Store) Snapshot() []Parameter {
	names := s.Names()
	out := make([]Parameter, 0, len(names))
	for _, name := range names {
		e := s.entries[name]
		out = append(out, Parameter{Name: name, Value: e.value, Set: e.set})
	}
	return out
}
