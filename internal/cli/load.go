package cli

import (
	"github.com/nauticalab/paramfile/internal/log"
	"github.com/nauticalab/paramfile/internal/params"
	"github.com/nauticalab/paramfile/internal/schema"
)

// loaded is a schema together with a store built from it and the unknown
// identifiers reported while loading.
type loaded struct {
	schema  *schema.Schema
	store   *params.Store
	unknown []params.UnknownParameter
}

// loadSchemaStore builds an empty store from the schema file.
func loadSchemaStore(schemaPath string, opts ...params.Option) (*schema.Schema, *params.Store, error) {
	s, err := schema.Load(schemaPath)
	if err != nil {
		return nil, nil, err
	}
	store, err := s.NewStore(opts...)
	if err != nil {
		return nil, nil, err
	}
	return s, store, nil
}

// loadParamFile builds a store from the schema and loads paramFile into it.
// Unknown identifiers are collected rather than logged; on a load error
// the ones seen before the failing line are logged before returning.
func loadParamFile(schemaPath, paramFile string) (*loaded, error) {
	l := &loaded{}
	s, store, err := loadSchemaStore(schemaPath, params.WithUnknownHandler(func(p params.UnknownParameter) {
		l.unknown = append(l.unknown, p)
	}))
	if err != nil {
		return nil, err
	}
	l.schema = s
	l.store = store

	if err := store.LoadFromFile(paramFile); err != nil {
		l.logUnknown()
		return nil, err
	}
	return l, nil
}

// logUnknown reports collected unknown identifiers through the shared logger.
func (l *loaded) logUnknown() {
	logger := log.WithComponent("params")
	for _, p := range l.unknown {
		logger.Warn().
			Str("parameter", p.Name).
			Int("line", p.Line).
			Str("source", p.Source).
			Msg("unknown parameter identifier will be ignored")
	}
}
