// Package validator runs untrusted decoration payloads through the schema
// registry and reports either the normalized typed value or an error tree.
package validator

import (
	"encoding/json"
	"runtime"

	"golang.org/x/sync/errgroup"

	"decor-golang/internal/decoration"
	"decor-golang/internal/decoration/schema"
)

// UnexpectedMessage is the single root message reported when a candidate
// cannot be interpreted as structured data at all.
const UnexpectedMessage = "Invalid decoration details format"

// Result is {isValid, data, errors}: data is set only when valid, errors only
// when not.
type Result[T any] struct {
	IsValid bool              `json:"isValid"`
	Data    *T                `json:"data"`
	Errors  *schema.ErrorTree `json:"errors"`
}

// Item pairs a candidate with the caller's identifier for batch validation.
type Item struct {
	ID        string `json:"id"`
	Candidate any    `json:"candidate"`
}

type Validator struct {
	registry *schema.Registry
	workers  int
}

type Option func(*Validator)

// WithWorkers bounds how many batch items are validated at once.
func WithWorkers(n int) Option {
	return func(v *Validator) {
		if n > 0 {
			v.workers = n
		}
	}
}

func New(registry *schema.Registry, opts ...Option) *Validator {
	v := &Validator{
		registry: registry,
		workers:  runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *Validator) Registry() *schema.Registry {
	return v.registry
}

// Validate checks a decoration_details candidate.
func (v *Validator) Validate(candidate any) Result[decoration.Configuration] {
	return ValidateWith[decoration.Configuration](v.registry.Configuration(), candidate)
}

// ValidateBatch validates every item independently and keys the results by
// item id. A repeated id keeps the result of its last occurrence.
func (v *Validator) ValidateBatch(items []Item) map[string]Result[decoration.Configuration] {
	results := make([]Result[decoration.Configuration], len(items))

	var g errgroup.Group
	g.SetLimit(v.workers)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			results[i] = v.Validate(item.Candidate)
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string]Result[decoration.Configuration], len(items))
	for i, item := range items {
		out[item.ID] = results[i]
	}
	return out
}

// AllValid reports whether every result of ValidateBatch is valid. Results
// are keyed by id, so only the last item of a repeated id counts.
func (v *Validator) AllValid(items []Item) bool {
	for _, res := range v.ValidateBatch(items) {
		if !res.IsValid {
			return false
		}
	}
	return true
}

func (v *Validator) ValidateTechniqueDetails(t decoration.Technique, candidate any) (Result[json.RawMessage], bool) {
	node, ok := v.registry.Technique(t)
	if !ok {
		return Result[json.RawMessage]{}, false
	}
	return ValidateWith[json.RawMessage](node, candidate), true
}

func (v *Validator) ValidateTechniqueCatalog(candidate any) Result[decoration.TechniqueCatalog] {
	return ValidateWith[decoration.TechniqueCatalog](v.registry.TechniqueCatalog(), candidate)
}

func (v *Validator) ValidatePlacement(candidate any) Result[decoration.Placement] {
	return ValidateWith[decoration.Placement](v.registry.Placement(), candidate)
}

func (v *Validator) ValidateUpcharge(candidate any) Result[decoration.Upcharge] {
	return ValidateWith[decoration.Upcharge](v.registry.Upcharge(), candidate)
}

func (v *Validator) ValidateLineItemDecoration(candidate any) Result[decoration.LineItemDecoration] {
	return ValidateWith[decoration.LineItemDecoration](v.registry.LineItemDecoration(), candidate)
}

// ValidateWith parses candidate against node and decodes the normalized value
// into T. It never panics: anything that goes wrong outside of the schema
// checks is reported as UnexpectedMessage.
func ValidateWith[T any](node schema.Node, candidate any) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = unexpected[T]()
		}
	}()

	value, err := schema.Normalize(candidate)
	if err != nil {
		return unexpected[T]()
	}

	errs := schema.NewErrorTree()
	out := node.Parse(value, errs)
	if !errs.Empty() {
		return Result[T]{Errors: errs}
	}

	b, err := json.Marshal(out)
	if err != nil {
		return unexpected[T]()
	}
	var data T
	if err := json.Unmarshal(b, &data); err != nil {
		return unexpected[T]()
	}

	return Result[T]{IsValid: true, Data: &data}
}

func unexpected[T any]() Result[T] {
	errs := schema.NewErrorTree()
	errs.Add(UnexpectedMessage)
	return Result[T]{Errors: errs}
}
