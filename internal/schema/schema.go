// Package schema loads YAML parameter schemas and turns them into
// registered params.Store instances.
//
// A schema file lists the parameters a tool expects:
//
//	commentPrefix: "#"
//	parameters:
//	  - name: port
//	    default: "8080"
//	    description: TCP port to listen on
//	  - name: host
//
// Parameters without a default start unset.
package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nauticalab/paramfile/internal/params"
	"gopkg.in/yaml.v3"
)

// Schema describes the parameters of one parameter file format.
type Schema struct {
	// CommentPrefix overrides params.DefaultCommentPrefix when set.
	CommentPrefix string `yaml:"commentPrefix,omitempty"`
	// Parameters are registered in order; names must be unique.
	Parameters []ParameterSpec `yaml:"parameters" validate:"dive"`
}

// ParameterSpec declares a single parameter.
type ParameterSpec struct {
	Name        string `yaml:"name" validate:"required,param_name"`
	Default     string `yaml:"default,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// EffectiveCommentPrefix returns the comment prefix stores built from s use.
func (s *Schema) EffectiveCommentPrefix() string {
	if s.CommentPrefix == "" {
		return params.DefaultCommentPrefix
	}
	return s.CommentPrefix
}

// Load reads and validates the schema file at path.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid schema in %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a schema document. Unknown fields are rejected.
func Parse(data []byte) (*Schema, error) {
	var s Schema

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// NewStore creates a store with the schema's comment prefix and registers
// every parameter. opts are applied after the comment prefix.
func (s *Schema) NewStore(opts ...params.Option) (*params.Store, error) {
	all := append([]params.Option{params.WithCommentPrefix(s.EffectiveCommentPrefix())}, opts...)
	store := params.New(all...)

	for _, p := range s.Parameters {
		if err := store.Register(p.Name, p.Default); err != nil {
			return nil, fmt.Errorf("failed to register parameter: %w", err)
		}
	}
	return store, nil
}

// Description returns the description of the named parameter, if any.
func (s *Schema) Description(name string) string {
	for _, p := range s.Parameters {
		if p.Name == name {
			return p.Description
		}
	}
	return ""
}

// FromStore builds a schema whose defaults are the store's current values.
// Unset parameters are listed without a default.
func FromStore(store *params.Store) *Schema {
	s := &Schema{}
	if prefix := store.CommentPrefix(); prefix != params.DefaultCommentPrefix {
		s.CommentPrefix = prefix
	}
	for _, p := range store.Snapshot() {
		s.Parameters = append(s.Parameters, ParameterSpec{Name: p.Name, Default: p.Value})
	}
	return s
}

// Write encodes s as YAML to w.
func (s *Schema) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode schema: %w", err)
	}
	return enc.Close()
}
