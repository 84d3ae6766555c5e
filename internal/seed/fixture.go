package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixture is the demo dataset consumed by cmd/seed. Products reference
// categories by slug and order items reference products by name, all scoped
// to the store they are declared under.
type Fixture struct {
	Admin  AdminFixture   `yaml:"admin"`
	Stores []StoreFixture `yaml:"stores"`
}

type AdminFixture struct {
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
}

type StoreFixture struct {
	Name       string            `yaml:"name"`
	Categories []CategoryFixture `yaml:"categories"`
	Products   []ProductFixture  `yaml:"products"`
	Customers  []CustomerFixture `yaml:"customers"`
}

type CategoryFixture struct {
	Name string `yaml:"name"`
	Slug string `yaml:"slug"`
}

type ProductFixture struct {
	Name       string `yaml:"name"`
	Category   string `yaml:"category"`
	PriceCents int64  `yaml:"price_cents"`
	Image      string `yaml:"image"`
	Ratings    []int  `yaml:"ratings"`
}

type CustomerFixture struct {
	Name    string         `yaml:"name"`
	Email   string         `yaml:"email"`
	Picture string         `yaml:"picture"`
	Orders  []OrderFixture `yaml:"orders"`
}

// OrderFixture places the order DaysAgo days before the seeding run, so the
// same file keeps producing orders inside the trends window.
type OrderFixture struct {
	DaysAgo int                `yaml:"days_ago"`
	Items   []OrderItemFixture `yaml:"items"`
}

type OrderItemFixture struct {
	Product  string `yaml:"product"`
	Quantity int    `yaml:"quantity"`
}

// Load reads and validates a fixture file.
func Load(path string) (*Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return Parse(raw)
}

// Parse decodes fixture YAML and checks the cross references inside it.
func Parse(raw []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Fixture) validate() error {
	if f.Admin.Email == "" || f.Admin.Password == "" {
		return fmt.Errorf("fixture admin needs an email and a password")
	}
	for _, store := range f.Stores {
		if store.Name == "" {
			return fmt.Errorf("fixture store needs a name")
		}
		if err := store.validate(); err != nil {
			return fmt.Errorf("store %q: %w", store.Name, err)
		}
	}
	return nil
}

func (s *StoreFixture) validate() error {
	slugs := make(map[string]bool, len(s.Categories))
	for _, cat := range s.Categories {
		if cat.Name == "" || cat.Slug == "" {
			return fmt.Errorf("category needs a name and a slug")
		}
		if slugs[cat.Slug] {
			return fmt.Errorf("duplicate category slug %q", cat.Slug)
		}
		slugs[cat.Slug] = true
	}

	products := make(map[string]bool, len(s.Products))
	for _, p := range s.Products {
		if p.Name == "" {
			return fmt.Errorf("product needs a name")
		}
		if products[p.Name] {
			return fmt.Errorf("duplicate product %q", p.Name)
		}
		products[p.Name] = true
		if p.Category != "" && !slugs[p.Category] {
			return fmt.Errorf("product %q references unknown category %q", p.Name, p.Category)
		}
		if p.PriceCents <= 0 {
			return fmt.Errorf("product %q needs a positive price", p.Name)
		}
		for _, rating := range p.Ratings {
			if rating < 1 || rating > 5 {
				return fmt.Errorf("product %q has rating %d outside 1..5", p.Name, rating)
			}
		}
	}

	for _, cust := range s.Customers {
		if cust.Name == "" || cust.Email == "" {
			return fmt.Errorf("customer needs a name and an email")
		}
		for _, order := range cust.Orders {
			if order.DaysAgo < 0 {
				return fmt.Errorf("customer %q has an order with negative days_ago", cust.Name)
			}
			if len(order.Items) == 0 {
				return fmt.Errorf("customer %q has an order without items", cust.Name)
			}
			for _, item := range order.Items {
				if !products[item.Product] {
					return fmt.Errorf("customer %q orders unknown product %q", cust.Name, item.Product)
				}
				if item.Quantity <= 0 {
					return fmt.Errorf("customer %q orders %q with a non-positive quantity", cust.Name, item.Product)
				}
			}
		}
	}
	return nil
}
