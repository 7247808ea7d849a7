// Package postprocess applies the final cosmetic pass over an assembled
// document. Every rule is a pure string transformation, and the default chain
// is idempotent: running it on its own output changes nothing.
package postprocess

import (
	"fmt"
)

// Processor transforms a complete document.
type Processor interface {
	Process(document string) (string, error)
}

// Rule is one named rewrite within a Chain.
type Rule interface {
	Name() string
	Apply(document string) (string, error)
}

// RuleFunc adapts a plain function that cannot fail.
type RuleFunc struct {
	RuleName string
	Fn       func(string) string
}

func (r RuleFunc) Name() string { return r.RuleName }

func (r RuleFunc) Apply(document string) (string, error) {
	return r.Fn(document), nil
}

// Chain runs rules in order; the first failure aborts the pass.
type Chain struct {
	rules []Rule
}

var _ Processor = (*Chain)(nil)

// NewChain builds a chain over rules. Nil rules are dropped.
func NewChain(rules ...Rule) *Chain {
	kept := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		if rule != nil {
			kept = append(kept, rule)
		}
	}
	return &Chain{rules: kept}
}

// Default returns the standard normalising chain.
func Default() *Chain {
	return NewChain(DefaultRules()...)
}

// Rules lists the rule names in execution order.
func (c *Chain) Rules() []string {
	names := make([]string, 0, len(c.rules))
	for _, rule := range c.rules {
		names = append(names, rule.Name())
	}
	return names
}

func (c *Chain) Process(document string) (string, error) {
	out := document
	for _, rule := range c.rules {
		next, err := rule.Apply(out)
		if err != nil {
			return "", fmt.Errorf("postprocess: rule %q: %w", rule.Name(), err)
		}
		out = next
	}
	return out, nil
}

// Postprocess runs the default chain.
func Postprocess(document string) (string, error) {
	return Default().Process(document)
}
