// Package selection decides when a product's customization choices are
// complete enough to be added to an order. The product's group definitions
// are the source of truth; selections are re-evaluated on every change and
// never reach a terminal state.
package selection

import (
	"fmt"

	"github.com/thinknumbers/order-scanner-delight/internal/catalog"
)

// Selections maps a customization group name to the chosen options.
// A non-multiple group holds at most one option.
type Selections map[string][]catalog.Option

type State int

const (
	Incomplete State = iota
	Complete
)

func (s State) String() string {
	if s == Complete {
		return "COMPLETE"
	}
	return "INCOMPLETE"
}

// Initialize builds the starting selections for a product detail session.
// Required single-choice groups preselect their first option so they are
// never unsatisfied by omission; everything else starts empty.
func Initialize(p *catalog.Product) Selections {
	s := make(Selections, len(p.Customizations))
	for _, g := range p.Customizations {
		if g.Required && !g.Multiple && len(g.Options) > 0 {
			s[g.Name] = []catalog.Option{g.Options[0]}
		} else {
			s[g.Name] = nil
		}
	}
	return s
}

// Apply replaces the selection for a group with the named options.
// Arity is enforced here: a non-multiple group rejects more than one option,
// and unknown group or option names are rejected outright.
func Apply(p *catalog.Product, s Selections, groupName string, optionNames []string) error {
	g, ok := p.Group(groupName)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownGroup, groupName)
	}

	opts := make([]catalog.Option, 0, len(optionNames))
	seen := make(map[string]bool, len(optionNames))
	for _, name := range optionNames {
		if seen[name] {
			continue
		}
		seen[name] = true

		opt, ok := g.Option(name)
		if !ok {
			return fmt.Errorf("%w: %q in group %q", ErrUnknownOption, name, groupName)
		}
		opts = append(opts, opt)
	}

	if !g.Multiple && len(opts) > 1 {
		return fmt.Errorf("%w: group %q", ErrSingleChoice, groupName)
	}

	s[groupName] = opts
	return nil
}

// IsValid reports whether every required group has a non-empty selection.
// Optional groups are always satisfied.
func IsValid(p *catalog.Product, s Selections) bool {
	return len(Unsatisfied(p, s)) == 0
}

// Unsatisfied lists required group names with an empty selection,
// in the product's own group order.
func Unsatisfied(p *catalog.Product, s Selections) []string {
	var missing []string
	for _, g := range p.Customizations {
		if g.Required && len(s[g.Name]) == 0 {
			missing = append(missing, g.Name)
		}
	}
	return missing
}

// Evaluate recomputes the session state from scratch.
func Evaluate(p *catalog.Product, s Selections) State {
	if IsValid(p, s) {
		return Complete
	}
	return Incomplete
}
