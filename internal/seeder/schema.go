package seeder

import (
	"context"
	"fmt"
	"strings"

	"github.com/eletroplus/eletroseed/internal/database"
)

// Table names follow the Django app_model convention of the store backend.
const (
	tableCategory       = "catalog_category"
	tableProduct        = "catalog_product"
	tableSpecification  = "catalog_productspecification"
	tableUser           = "users_user"
	tableAddress        = "users_shippingaddress"
	tableCart           = "cart_cart"
	tableCartItem       = "cart_cartitem"
	tableCoupon         = "orders_coupon"
	tableOrder          = "orders_order"
	tableOrderItem      = "orders_orderitem"
	tablePayment        = "payment_payment"
	tableReview         = "reviews_review"
	tableBanner         = "banner_banner"
	tableContactMessage = "contact_contactmessage"
)

// RequiredTables lists every table the seeder writes to.
var RequiredTables = []string{
	tableCategory,
	tableProduct,
	tableSpecification,
	tableUser,
	tableAddress,
	tableCart,
	tableCartItem,
	tableCoupon,
	tableOrder,
	tableOrderItem,
	tablePayment,
	tableReview,
	tableBanner,
	tableContactMessage,
}

// CheckSchema verifies that the target database is fully migrated: every
// seeded table exists and users_shippingaddress carries the neighborhood
// column. It runs before the seeding transaction so a mismatch never
// leaves partial data behind.
func CheckSchema(ctx context.Context, q database.Querier, dialect database.Dialect) error {
	var missing []string
	for _, table := range RequiredTables {
		exists, err := dialect.TableExists(ctx, q, table)
		if err != nil {
			return fmt.Errorf("failed to check table %s: %w", table, err)
		}
		if !exists {
			missing = append(missing, table)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing tables: %s", ErrSchemaMismatch, strings.Join(missing, ", "))
	}

	exists, err := dialect.ColumnExists(ctx, q, tableAddress, "neighborhood")
	if err != nil {
		return fmt.Errorf("failed to check column %s.neighborhood: %w", tableAddress, err)
	}
	if !exists {
		return fmt.Errorf("%w: column %s.neighborhood does not exist (apply the users migration or db/patches/0001_add_neighborhood.sql)",
			ErrSchemaMismatch, tableAddress)
	}

	return nil
}
