package seeder

import (
	"fmt"

	"github.com/fatih/color"
)

// Config holds the seed run parameters.
type Config struct {
	Users    int   // users to create
	Products int   // products to create
	Orders   int   // orders to create
	Clear    bool  // delete previously seeded data first
	Seed     int64 // random seed, 0 means time-based
}

func (c Config) Validate() error {
	if c.Users < 0 {
		return fmt.Errorf("%w: users must be >= 0, got %d", ErrConfig, c.Users)
	}
	if c.Products < 0 {
		return fmt.Errorf("%w: products must be >= 0, got %d", ErrConfig, c.Products)
	}
	if c.Orders < 0 {
		return fmt.Errorf("%w: orders must be >= 0, got %d", ErrConfig, c.Orders)
	}
	return nil
}

// Summary counts the rows created by a run, per entity.
type Summary struct {
	Categories     int
	Products       int
	Specifications int
	Users          int
	Addresses      int
	Coupons        int
	Carts          int
	CartItems      int
	Orders         int
	OrderItems     int
	Payments       int
	Reviews        int
	Banners        int
	Messages       int
}

func (s Summary) Print() {
	color.Green("\n✅ Seed completed successfully!")
	fmt.Println()

	rows := []struct {
		label string
		count int
	}{
		{"Categories", s.Categories},
		{"Products", s.Products},
		{"Specifications", s.Specifications},
		{"Users", s.Users},
		{"Shipping addresses", s.Addresses},
		{"Coupons", s.Coupons},
		{"Carts", s.Carts},
		{"Cart items", s.CartItems},
		{"Orders", s.Orders},
		{"Order items", s.OrderItems},
		{"Payments", s.Payments},
		{"Reviews", s.Reviews},
		{"Banners", s.Banners},
		{"Contact messages", s.Messages},
	}
	for _, row := range rows {
		fmt.Printf("  %-20s %d\n", row.label, row.count)
	}
}
