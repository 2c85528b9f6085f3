package faultline

import (
	"fmt"

	"faultline.dev/pkg/faultline/httperr"
)

// Factories instantiate pluggable components from their configured
// identifiers. Options come from the configuration surface and are
// decoded by each factory.
type (
	TransformerFactory func(options map[string]any) (Transformer, error)
	FilterFactory      func(options map[string]any) (Filter, error)
	DisplayerFactory   func(options map[string]any) (Displayer, error)
)

// Registry resolves configured component names to instances. It plays
// the factory role the pipeline delegates to: transformers, filters and
// displayers are configured as references and instantiated through it
// at assembly time. Registration happens at startup; the registry is
// read-only afterwards.
type Registry struct {
	transformers map[string]TransformerFactory
	filters      map[string]FilterFactory
	displayers   map[string]DisplayerFactory
	matchers     map[string]Matcher
}

// NewRegistry returns a registry preloaded with the components this
// package provides itself: the token mismatch transformer and matchers
// for the bundled HTTP error types.
func NewRegistry() *Registry {
	r := &Registry{
		transformers: make(map[string]TransformerFactory),
		filters:      make(map[string]FilterFactory),
		displayers:   make(map[string]DisplayerFactory),
		matchers:     make(map[string]Matcher),
	}

	r.RegisterTransformer("token_mismatch", func(map[string]any) (Transformer, error) {
		return NormalizeTokenMismatch(), nil
	})

	r.RegisterMatcher("not_found", IsType[httperr.ErrorNotFound]())
	r.RegisterMatcher("gone", IsType[httperr.ErrorGone]())
	r.RegisterMatcher("bad_request", IsType[httperr.ErrorBadRequest]())
	r.RegisterMatcher("forbidden", IsType[httperr.ErrorForbidden]())
	r.RegisterMatcher("unauthorized", IsType[httperr.ErrorUnauthorized]())
	r.RegisterMatcher("method_not_allowed", IsType[httperr.ErrorMethodNotAllowed]())
	r.RegisterMatcher("too_many_requests", IsType[httperr.ErrorTooManyRequests]())
	r.RegisterMatcher("service_unavailable", IsType[httperr.ErrorServiceUnavailable]())
	r.RegisterMatcher("token_mismatch", IsType[httperr.ErrorTokenMismatch]())

	return r
}

func (r *Registry) RegisterTransformer(name string, factory TransformerFactory) {
	r.transformers[name] = factory
}

func (r *Registry) RegisterFilter(name string, factory FilterFactory) {
	r.filters[name] = factory
}

func (r *Registry) RegisterDisplayer(name string, factory DisplayerFactory) {
	r.displayers[name] = factory
}

func (r *Registry) RegisterMatcher(name string, m Matcher) {
	r.matchers[name] = m
}

// Transformer instantiates the transformer registered under name.
func (r *Registry) Transformer(name string, options map[string]any) (Transformer, error) {
	factory, ok := r.transformers[name]
	if !ok {
		return nil, fmt.Errorf("transformer %q is not registered", name)
	}

	return factory(options)
}

// Filter instantiates the filter registered under name.
func (r *Registry) Filter(name string, options map[string]any) (Filter, error) {
	factory, ok := r.filters[name]
	if !ok {
		return nil, fmt.Errorf("filter %q is not registered", name)
	}

	return factory(options)
}

// Displayer instantiates the displayer registered under name.
func (r *Registry) Displayer(name string, options map[string]any) (Displayer, error) {
	factory, ok := r.displayers[name]
	if !ok {
		return nil, fmt.Errorf("displayer %q is not registered", name)
	}

	return factory(options)
}

// Matcher returns the error matcher registered under name.
func (r *Registry) Matcher(name string) (Matcher, error) {
	m, ok := r.matchers[name]
	if !ok {
		return nil, fmt.Errorf("matcher %q is not registered", name)
	}

	return m, nil
}
