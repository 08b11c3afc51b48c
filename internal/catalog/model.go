package catalog

import "github.com/shopspring/decimal"

// Product is read-only once loaded into a browsing session.
type Product struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	Description    string               `json:"description"`
	Price          decimal.Decimal      `json:"price"`
	Image          string               `json:"image,omitempty"`
	CategoryID     string               `json:"category"`
	Customizations []CustomizationGroup `json:"customizations,omitempty"`
	Popular        bool                 `json:"popular,omitempty"`
}

// CustomizationGroup names a set of related options.
// Required groups must have at least one selection before add-to-cart.
// Multiple groups allow a set of options instead of a single choice.
type CustomizationGroup struct {
	Name     string   `json:"name"`
	Options  []Option `json:"options"`
	Required bool     `json:"required,omitempty"`
	Multiple bool     `json:"multiple,omitempty"`
}

// Option carries a non-negative price delta applied per unit quantity.
type Option struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// Group finds a customization group by name.
func (p *Product) Group(name string) (*CustomizationGroup, bool) {
	for i := range p.Customizations {
		if p.Customizations[i].Name == name {
			return &p.Customizations[i], true
		}
	}
	return nil, false
}

// Option finds an option by name within the group.
func (g *CustomizationGroup) Option(name string) (Option, bool) {
	for _, opt := range g.Options {
		if opt.Name == name {
			return opt, true
		}
	}
	return Option{}, false
}
