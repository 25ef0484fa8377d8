// Package sugar binds an attribute to a textual expression.
//
// The bound attribute is recomputed whenever a referenced attribute announces
// a change: notify, then pull. Unlike binding.Engine there is no batch; when
// one write affects two expression-bound attributes each recomputes and
// notifies on its own, so a listener reacting to the first may still see the
// old value of the second.
package sugar

import (
	"fmt"
	"log/slog"

	"github.com/delaneyj/rebound/emitter"
	"github.com/delaneyj/rebound/expr"
)

// Observable objects can announce attribute updates. References to objects
// that are not Observable are evaluated but never trigger a recompute.
type Observable interface {
	On(event string, cb emitter.Callback) (off func())
}

type Target interface {
	SetAttributeChain(chain *emitter.Chain, name string, value any)
}

type OnErrorFunc func(b *Binding, err error)

type Option func(*Binding)

// WithOnError receives evaluation failures that happen while reacting to a
// notification, where there is no caller to return them to.
func WithOnError(fn OnErrorFunc) Option {
	return func(b *Binding) {
		b.onError = fn
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(b *Binding) {
		b.logger = logger
	}
}

type Binding struct {
	target     Target
	attribute  string
	expression *expr.Expression
	offs       []func()
	onError    OnErrorFunc
	logger     *slog.Logger
}

// Bind compiles text, writes its current value to target's attribute and
// keeps it updated.
func Bind(target Target, attribute, text string, r expr.Resolver, opts ...Option) (*Binding, error) {
	if target == nil {
		return nil, fmt.Errorf("sugar: binding %q: nil target", attribute)
	}
	x, err := expr.Parse(text, r)
	if err != nil {
		return nil, fmt.Errorf("sugar: binding %q: %w", attribute, err)
	}

	b := &Binding{
		target:     target,
		attribute:  attribute,
		expression: x,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.onError == nil {
		b.onError = func(b *Binding, err error) {
			b.logger.Error("expression binding failed",
				"attribute", b.attribute,
				"expression", b.expression.Text(),
				"error", err,
			)
		}
	}

	v, err := x.Eval()
	if err != nil {
		return nil, fmt.Errorf("sugar: binding %q: %w", attribute, err)
	}

	for _, ref := range x.References() {
		observable, ok := ref.Object.(Observable)
		if !ok {
			continue
		}
		b.offs = append(b.offs, observable.On(emitter.UpdateEvent(ref.Attribute), b.update))
	}

	target.SetAttributeChain(nil, attribute, v)
	return b, nil
}

func (b *Binding) update(chain *emitter.Chain, args ...any) {
	v, err := b.expression.Eval()
	if err != nil {
		b.onError(b, err)
		return
	}
	b.target.SetAttributeChain(chain, b.attribute, v)
}

// Refresh re-evaluates outside any notification and writes the result.
func (b *Binding) Refresh() error {
	v, err := b.expression.Eval()
	if err != nil {
		return fmt.Errorf("sugar: refreshing %q: %w", b.attribute, err)
	}
	b.target.SetAttributeChain(nil, b.attribute, v)
	return nil
}

func (b *Binding) Attribute() string {
	return b.attribute
}

func (b *Binding) Expression() *expr.Expression {
	return b.expression
}

// Subscriptions counts the referenced attributes being watched.
func (b *Binding) Subscriptions() int {
	return len(b.offs)
}

// Close stops watching. The attribute keeps its last value.
func (b *Binding) Close() {
	for _, off := range b.offs {
		off()
	}
	b.offs = nil
}
