package seeder

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/fatih/color"
	"golang.org/x/crypto/bcrypt"

	"github.com/eletroplus/eletroseed/internal/database"
)

// seedPassword is the fixed plaintext every generated account gets. It is
// stored bcrypt-hashed; the plaintext exists only so developers can log in
// as any seeded user.
const seedPassword = "senha123"

type Seeder struct {
	db      *sql.DB
	dialect database.Dialect
}

func New(db *sql.DB, dialect database.Dialect) *Seeder {
	return &Seeder{db: db, dialect: dialect}
}

// run carries the per-invocation state: the generator and the ids of rows
// created so far, so later stages can reference earlier ones.
type run struct {
	seeder  *Seeder
	tx      *sql.Tx
	gen     *generator
	summary Summary

	categories []seededCategory
	products   []seededProduct
	users      []seededUser
	coupons    []seededCoupon
	orders     []seededOrder
}

type seededCategory struct {
	id   int64
	tmpl *categoryTemplate
}

type seededProduct struct {
	id        int64
	unitPrice float64 // discount price when present, base price otherwise
	stock     int
}

type seededUser struct {
	id             int64
	firstAddressID int64
}

type seededCoupon struct {
	id         int64
	percentage int
	value      float64
}

type seededOrder struct {
	id        int64
	status    string
	total     float64
	createdAt time.Time
}

// Run executes the full seed inside a single transaction. On any error the
// transaction is rolled back and the database is left exactly as it was.
func (s *Seeder) Run(ctx context.Context, cfg Config) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}

	color.Cyan("🌱 Starting database seed (%s)...", describeRun(cfg))

	if err := CheckSchema(ctx, s.db, s.dialect); err != nil {
		return Summary{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to begin transaction: %w", err)
	}

	r := &run{seeder: s, tx: tx, gen: newGenerator(cfg.Seed)}

	if err := r.execute(ctx, cfg); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return Summary{}, fmt.Errorf("seed failed and rollback failed: %v (original: %w)", rbErr, err)
		}
		color.Yellow("🔄 Transaction rolled back")
		return Summary{}, err
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return Summary{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return r.summary, nil
}

func (r *run) execute(ctx context.Context, cfg Config) error {
	if cfg.Clear {
		if err := r.clearData(ctx); err != nil {
			return err
		}
	}

	stages := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"categories", r.createCategories},
		{"products", func(ctx context.Context) error { return r.createProducts(ctx, cfg.Products) }},
		{"users", func(ctx context.Context) error { return r.createUsers(ctx, cfg.Users) }},
		{"shipping addresses", r.createShippingAddresses},
		{"coupons", r.createCoupons},
		{"carts", r.createCarts},
		{"orders", func(ctx context.Context) error { return r.createOrders(ctx, cfg.Orders) }},
		{"payments", r.createPayments},
		{"reviews", r.createReviews},
		{"banners", r.createBanners},
		{"contact messages", r.createContactMessages},
	}

	for _, stage := range stages {
		color.Cyan("  📝 Seeding %s...", stage.name)
		if err := stage.fn(ctx); err != nil {
			return fmt.Errorf("failed to seed %s: %w", stage.name, err)
		}
	}

	return nil
}

// insert creates one row and returns its id.
func (r *run) insert(ctx context.Context, table string, columns []string, values []interface{}) (int64, error) {
	return r.seeder.dialect.InsertReturningID(ctx, r.tx, table, columns, values)
}

// lookupID finds an existing row by a natural key. Fixed catalogs use it to
// stay idempotent on repeated runs without --clear.
func (r *run) lookupID(ctx context.Context, table, column string, value interface{}) (int64, bool, error) {
	query, args, err := sq.Select("id").
		From(table).
		Where(sq.Eq{column: value}).
		Limit(1).
		PlaceholderFormat(r.seeder.dialect.Placeholder()).
		ToSql()
	if err != nil {
		return 0, false, err
	}

	var id int64
	err = r.tx.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

func (r *run) deleteAll(ctx context.Context, table string, pred interface{}) error {
	builder := sq.Delete(table).PlaceholderFormat(r.seeder.dialect.Placeholder())
	if pred != nil {
		builder = builder.Where(pred)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}
	if _, err := r.tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}
	return nil
}

// clearData deletes previously seeded rows, children before parents.
// Superuser accounts survive.
func (r *run) clearData(ctx context.Context) error {
	color.Yellow("🗑️  Clearing existing data...")

	ordered := []string{
		tableContactMessage,
		tableReview,
		tableBanner,
		tablePayment,
		tableOrderItem,
		tableOrder,
		tableCartItem,
		tableCart,
		tableCoupon,
		tableAddress,
	}
	for _, table := range ordered {
		if err := r.deleteAll(ctx, table, nil); err != nil {
			return err
		}
	}

	if err := r.deleteAll(ctx, tableUser, sq.Eq{"is_superuser": false}); err != nil {
		return err
	}

	for _, table := range []string{tableSpecification, tableProduct, tableCategory} {
		if err := r.deleteAll(ctx, table, nil); err != nil {
			return err
		}
	}

	return nil
}

func (r *run) createCategories(ctx context.Context) error {
	for i := range categoryTemplates {
		tmpl := &categoryTemplates[i]

		id, found, err := r.lookupID(ctx, tableCategory, "name", tmpl.Name)
		if err != nil {
			return err
		}
		if !found {
			id, err = r.insert(ctx, tableCategory,
				[]string{"name", "icon"},
				[]interface{}{tmpl.Name, tmpl.Icon})
			if err != nil {
				return err
			}
			r.summary.Categories++
		}

		r.categories = append(r.categories, seededCategory{id: id, tmpl: tmpl})
	}
	return nil
}

func (r *run) createProducts(ctx context.Context, count int) error {
	g := r.gen

	// "key" is reserved in MySQL, hence the quoting.
	keyColumn := r.seeder.dialect.QuoteIdentifier("key")

	for i := 0; i < count; i++ {
		category := r.categories[i%len(r.categories)]
		tmpl := category.tmpl

		brand := g.pick(brands)
		model := g.pick(productModels)

		name := tmpl.Noun + " " + brand + " " + model
		if len(tmpl.Variants) > 0 {
			name += " " + g.pick(tmpl.Variants)
		}

		basePrice := g.money(tmpl.PriceMin, tmpl.PriceMax)

		// 30% of products carry a 10-40% discount.
		var discountPrice interface{}
		unitPrice := basePrice
		if g.chance(0.30) {
			percent := g.between(10, 40)
			unitPrice = round2(basePrice * (1 - float64(percent)/100))
			discountPrice = unitPrice
		}

		stock := g.between(0, 100)
		rating := round1(3.5 + g.rand.Float64()*1.5)

		images := make([]string, 0, 2)
		for _, idx := range g.sample(len(productImageURLs), 2) {
			images = append(images, productImageURLs[idx])
		}
		imageJSON, err := json.Marshal(images)
		if err != nil {
			return err
		}

		id, err := r.insert(ctx, tableProduct,
			[]string{"name", "description", "brand", "model", "category_id", "price",
				"discount_price", "stock", "rating", "rating_count", "image_urls",
				"is_featured", "created_at"},
			[]interface{}{
				name,
				name + " com tecnologia avançada e design moderno. Ideal para sua casa!",
				brand,
				model,
				category.id,
				basePrice,
				discountPrice,
				stock,
				rating,
				g.between(0, 500),
				string(imageJSON),
				g.chance(0.15),
				time.Now(),
			})
		if err != nil {
			return err
		}
		r.summary.Products++

		for _, spec := range tmpl.Specs {
			if _, err := r.insert(ctx, tableSpecification,
				[]string{"product_id", keyColumn, "value"},
				[]interface{}{id, spec.Key, g.pick(spec.Options)}); err != nil {
				return err
			}
			r.summary.Specifications++
		}

		r.products = append(r.products, seededProduct{id: id, unitPrice: unitPrice, stock: stock})
	}
	return nil
}

func (r *run) createUsers(ctx context.Context, count int) error {
	if count == 0 {
		return nil
	}
	g := r.gen

	// All seeded accounts share one password; hash it once.
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	for i := 0; i < count; i++ {
		firstName := g.pick(firstNames)
		lastName := g.pick(lastNames)
		place := cityStates[g.rand.Intn(len(cityStates))]

		birthDate := time.Now().AddDate(0, 0, -g.between(18*365, 65*365))
		birthDate = time.Date(birthDate.Year(), birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC)

		id, err := r.insert(ctx, tableUser,
			[]string{"email", "password", "name", "phone", "street", "city", "state",
				"zip_code", "country", "birth_date", "is_active", "is_staff",
				"is_superuser", "date_joined"},
			[]interface{}{
				email(firstName, lastName, i),
				string(passwordHash),
				firstName + " " + lastName,
				g.phone(),
				g.pick(streets),
				place.City,
				place.State,
				g.zipCode(),
				"Brasil",
				birthDate,
				true,
				false,
				false,
				time.Now(),
			})
		if err != nil {
			return err
		}
		r.summary.Users++

		r.users = append(r.users, seededUser{id: id})
	}
	return nil
}

func (r *run) createShippingAddresses(ctx context.Context) error {
	g := r.gen

	for i := range r.users {
		numAddresses := g.between(1, 3)
		for j := 0; j < numAddresses; j++ {
			place := cityStates[g.rand.Intn(len(cityStates))]

			id, err := r.insert(ctx, tableAddress,
				[]string{"user_id", "street", "number", "complement", "neighborhood",
					"city", "state", "zip_code", "country", "is_default"},
				[]interface{}{
					r.users[i].id,
					g.pick(streets),
					strconv.Itoa(g.between(100, 9999)),
					g.pick(complements),
					g.pick(neighborhoods),
					place.City,
					place.State,
					g.zipCode(),
					"Brasil",
					j == 0,
				})
			if err != nil {
				return err
			}
			r.summary.Addresses++

			if j == 0 {
				r.users[i].firstAddressID = id
			}
		}
	}
	return nil
}

func (r *run) createCoupons(ctx context.Context) error {
	g := r.gen

	for _, tmpl := range couponCatalog {
		id, found, err := r.lookupID(ctx, tableCoupon, "code", tmpl.Code)
		if err != nil {
			return err
		}
		if !found {
			id, err = r.insert(ctx, tableCoupon,
				[]string{"code", "discount_value", "discount_percentage", "max_uses",
					"current_uses", "valid_until", "active"},
				[]interface{}{
					tmpl.Code,
					tmpl.Value,
					tmpl.Percentage,
					tmpl.MaxUses,
					g.between(0, tmpl.MaxUses/2),
					time.Now().AddDate(0, 0, tmpl.ValidDays),
					g.chance(0.80),
				})
			if err != nil {
				return err
			}
			r.summary.Coupons++
		}

		r.coupons = append(r.coupons, seededCoupon{id: id, percentage: tmpl.Percentage, value: tmpl.Value})
	}
	return nil
}

func (r *run) createCarts(ctx context.Context) error {
	g := r.gen

	// 60% of users get a cart, hit exactly (within truncation).
	target := int(float64(len(r.users)) * 0.6)
	for _, userIdx := range g.sample(len(r.users), target) {
		cartID, err := r.insert(ctx, tableCart,
			[]string{"user_id", "created_at"},
			[]interface{}{r.users[userIdx].id, time.Now()})
		if err != nil {
			return err
		}
		r.summary.Carts++

		if len(r.products) == 0 {
			continue
		}

		for _, productIdx := range g.sample(len(r.products), g.between(1, 5)) {
			product := r.products[productIdx]
			if product.stock <= 0 {
				continue
			}

			quantity := g.between(1, 3)
			if quantity > product.stock {
				quantity = product.stock
			}

			if _, err := r.insert(ctx, tableCartItem,
				[]string{"cart_id", "product_id", "quantity", "price_at_time"},
				[]interface{}{cartID, product.id, quantity, product.unitPrice}); err != nil {
				return err
			}
			r.summary.CartItems++
		}
	}
	return nil
}

func (r *run) createOrders(ctx context.Context, count int) error {
	if count == 0 {
		return nil
	}
	if len(r.users) == 0 || len(r.products) == 0 {
		return fmt.Errorf("%w: orders require at least one user and one product", ErrConfig)
	}
	g := r.gen

	for i := 0; i < count; i++ {
		user := r.users[g.rand.Intn(len(r.users))]
		status := orderStatuses[g.weighted(orderStatusWeights)]
		createdAt := g.pastTime(90)

		// 30% of orders ship for free.
		shipping := standardShipping
		if g.chance(0.30) {
			shipping = 0
		}

		// 20% of orders use a coupon.
		var couponID interface{}
		var coupon *seededCoupon
		if g.chance(0.20) {
			coupon = &r.coupons[g.rand.Intn(len(r.coupons))]
			couponID = coupon.id
		}

		type orderLine struct {
			product  seededProduct
			quantity int
		}
		var lines []orderLine
		subtotal := 0.0
		for _, productIdx := range g.sample(len(r.products), g.between(1, 4)) {
			product := r.products[productIdx]
			quantity := g.between(1, 2)
			lines = append(lines, orderLine{product: product, quantity: quantity})
			subtotal += product.unitPrice * float64(quantity)
		}
		subtotal = round2(subtotal)

		discount := 0.0
		if coupon != nil {
			if coupon.percentage > 0 {
				discount = subtotal * float64(coupon.percentage) / 100
			} else {
				discount = coupon.value
			}
			if discount > subtotal {
				discount = subtotal
			}
			discount = round2(discount)
		}

		total := round2(subtotal - discount + shipping)

		orderID, err := r.insert(ctx, tableOrder,
			[]string{"user_id", "shipping_address_id", "status", "subtotal",
				"discount", "shipping", "total", "coupon_id", "created_at"},
			[]interface{}{
				user.id,
				user.firstAddressID,
				status,
				subtotal,
				discount,
				shipping,
				total,
				couponID,
				createdAt,
			})
		if err != nil {
			return err
		}
		r.summary.Orders++

		for _, line := range lines {
			// unit_price is a snapshot: later catalogue price changes must
			// not affect existing orders.
			if _, err := r.insert(ctx, tableOrderItem,
				[]string{"order_id", "product_id", "quantity", "unit_price"},
				[]interface{}{orderID, line.product.id, line.quantity, line.product.unitPrice}); err != nil {
				return err
			}
			r.summary.OrderItems++
		}

		r.orders = append(r.orders, seededOrder{id: orderID, status: status, total: total, createdAt: createdAt})
	}
	return nil
}

func (r *run) createPayments(ctx context.Context) error {
	g := r.gen

	for _, order := range r.orders {
		if !paidStatuses[order.status] {
			continue
		}

		method := paymentMethods[g.weighted(paymentMethodWeights)]

		// Paid orders settle within a day; fulfilled ones settled fast.
		maxHours := 24
		if order.status != statusPaid {
			maxHours = 6
		}
		paidAt := order.createdAt.Add(time.Duration(g.between(1, maxHours)) * time.Hour)

		if _, err := r.insert(ctx, tablePayment,
			[]string{"order_id", "method", "status", "transaction_id", "amount",
				"paid_at", "created_at"},
			[]interface{}{
				order.id,
				method,
				"PAID",
				g.nextTransactionID(),
				order.total,
				paidAt,
				order.createdAt,
			}); err != nil {
			return err
		}
		r.summary.Payments++
	}
	return nil
}

func (r *run) createReviews(ctx context.Context) error {
	g := r.gen

	if len(r.users) == 0 {
		return nil
	}

	for _, product := range r.products {
		numReviews := g.between(0, 10)
		for _, userIdx := range g.sample(len(r.users), numReviews) {
			if _, err := r.insert(ctx, tableReview,
				[]string{"user_id", "product_id", "rating", "comment", "created_at"},
				[]interface{}{
					r.users[userIdx].id,
					product.id,
					g.between(3, 5),
					g.pick(reviewComments),
					g.pastTime(90),
				}); err != nil {
				return err
			}
			r.summary.Reviews++
		}
	}
	return nil
}

func (r *run) createBanners(ctx context.Context) error {
	// "order" is reserved in SQL, hence the quoting.
	orderColumn := r.seeder.dialect.QuoteIdentifier("order")

	for _, tmpl := range bannerCatalog {
		_, found, err := r.lookupID(ctx, tableBanner, "title", tmpl.Title)
		if err != nil {
			return err
		}
		if found {
			continue
		}

		if _, err := r.insert(ctx, tableBanner,
			[]string{"title", "subtitle", "image_url", "link", orderColumn},
			[]interface{}{tmpl.Title, tmpl.Subtitle, tmpl.ImageURL, tmpl.Link, tmpl.Order}); err != nil {
			return err
		}
		r.summary.Banners++
	}
	return nil
}

func (r *run) createContactMessages(ctx context.Context) error {
	g := r.gen

	for _, tmpl := range contactCatalog {
		if _, err := r.insert(ctx, tableContactMessage,
			[]string{"name", "email", "phone", "subject", "message", "is_read", "created_at"},
			[]interface{}{
				tmpl.Name,
				tmpl.Email,
				g.phone(),
				tmpl.Subject,
				tmpl.Message,
				g.chance(0.60),
				g.pastTime(30),
			}); err != nil {
			return err
		}
		r.summary.Messages++
	}
	return nil
}

func describeRun(cfg Config) string {
	var b strings.Builder
	fmt.Fprintf(&b, "users=%d products=%d orders=%d", cfg.Users, cfg.Products, cfg.Orders)
	if cfg.Clear {
		b.WriteString(" clear")
	}
	return b.String()
}
