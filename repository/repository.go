// Package repository persists the storefront state with GORM. The in-memory
// store stays authoritative for reads; the repository seeds it at startup
// and receives every write before it becomes visible.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/afnankhn654-alt/ShopNest/catalog"
	"github.com/afnankhn654-alt/ShopNest/models"
	"github.com/afnankhn654-alt/ShopNest/store"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

const seedBatchSize = 100

type Repository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// OpenPostgres connects to PostgreSQL with the given DSN or URL.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("DB connection failed: %w", err)
	}
	return db, nil
}

func New(db *gorm.DB, logger *zap.Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

// Migrate creates or updates the tables.
func (r *Repository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(
		&ProductRecord{},
		&ReviewRecord{},
		&OrderRecord{},
		&AddressRecord{},
	); err != nil {
		return fmt.Errorf("AutoMigrate failed: %w", err)
	}
	return nil
}

// LoadOrSeed returns the persisted dataset, writing seed first when the
// database is empty. Categories and banners always come from seed.
func (r *Repository) LoadOrSeed(ctx context.Context, seed catalog.Dataset) (catalog.Dataset, error) {
	db := r.db.WithContext(ctx)

	var count int64
	if err := db.Model(&ProductRecord{}).Count(&count).Error; err != nil {
		return catalog.Dataset{}, fmt.Errorf("count products: %w", err)
	}
	if count == 0 {
		if err := r.seed(ctx, seed); err != nil {
			return catalog.Dataset{}, err
		}
		r.logger.Info("database seeded",
			zap.Int("products", len(seed.Products)),
			zap.Int("orders", len(seed.Orders)))
		return seed, nil
	}

	ds := catalog.Dataset{
		Categories: seed.Categories,
		Banners:    seed.Banners,
		Addresses:  make(map[string][]models.Address),
	}

	var products []ProductRecord
	if err := db.Order("position").Find(&products).Error; err != nil {
		return catalog.Dataset{}, fmt.Errorf("load products: %w", err)
	}
	ds.Products = make([]models.Product, len(products))
	for i, rec := range products {
		ds.Products[i] = rec.Body
	}

	var orders []OrderRecord
	if err := db.Order("position").Find(&orders).Error; err != nil {
		return catalog.Dataset{}, fmt.Errorf("load orders: %w", err)
	}
	ds.Orders = make([]models.Order, len(orders))
	for i, rec := range orders {
		ds.Orders[i] = rec.order()
	}

	var addresses []AddressRecord
	if err := db.Order("user_id, position").Find(&addresses).Error; err != nil {
		return catalog.Dataset{}, fmt.Errorf("load addresses: %w", err)
	}
	for _, rec := range addresses {
		ds.Addresses[rec.UserID] = append(ds.Addresses[rec.UserID], rec.address())
	}

	r.logger.Info("dataset loaded from database",
		zap.Int("products", len(ds.Products)),
		zap.Int("orders", len(ds.Orders)))
	return ds, nil
}

func (r *Repository) seed(ctx context.Context, ds catalog.Dataset) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := make([]ProductRecord, len(ds.Products))
		for i, p := range ds.Products {
			products[i] = productRecord(i, p)
		}
		if err := tx.CreateInBatches(products, seedBatchSize).Error; err != nil {
			return fmt.Errorf("seed products: %w", err)
		}

		var reviews []ReviewRecord
		for _, p := range ds.Products {
			for _, rv := range p.Reviews {
				reviews = append(reviews, ReviewRecord{
					ID: rv.ID, ProductID: p.ID, UserID: rv.UserID, Rating: rv.Rating, Body: rv,
				})
			}
		}
		if len(reviews) > 0 {
			if err := tx.CreateInBatches(reviews, seedBatchSize).Error; err != nil {
				return fmt.Errorf("seed reviews: %w", err)
			}
		}

		if len(ds.Orders) > 0 {
			orders := make([]OrderRecord, len(ds.Orders))
			for i, o := range ds.Orders {
				orders[i] = orderRecord(i, o)
			}
			if err := tx.Create(&orders).Error; err != nil {
				return fmt.Errorf("seed orders: %w", err)
			}
		}

		for userID, list := range ds.Addresses {
			if err := replaceAddresses(tx, userID, list); err != nil {
				return err
			}
		}
		return nil
	})
}

// SaveReview stores the review, the product's new rating and the reviewed
// order line in one transaction.
func (r *Repository) SaveReview(ctx context.Context, change store.ReviewChange) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product ProductRecord
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, "id = ?", change.Product.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return store.ErrProductNotFound
			}
			return err
		}

		var order OrderRecord
		if err := tx.First(&order, "id = ?", change.Order.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return store.ErrOrderNotFound
			}
			return err
		}

		if err := tx.Create(&ReviewRecord{
			ID:        change.Review.ID,
			ProductID: change.Product.ID,
			OrderID:   change.Order.ID,
			UserID:    change.Review.UserID,
			Rating:    change.Review.Rating,
			Body:      change.Review,
		}).Error; err != nil {
			return err
		}

		updated := productRecord(product.Position, change.Product)
		if err := tx.Save(&updated).Error; err != nil {
			return err
		}

		order.Items = change.Order.Items
		return tx.Save(&order).Error
	})
}

// SaveAddresses replaces a user's address book.
func (r *Repository) SaveAddresses(ctx context.Context, userID string, list []models.Address) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return replaceAddresses(tx, userID, list)
	})
}

func replaceAddresses(tx *gorm.DB, userID string, list []models.Address) error {
	if err := tx.Where("user_id = ?", userID).Delete(&AddressRecord{}).Error; err != nil {
		return fmt.Errorf("clear addresses: %w", err)
	}
	if len(list) == 0 {
		return nil
	}
	records := make([]AddressRecord, len(list))
	for i, a := range list {
		records[i] = addressRecord(userID, i, a)
	}
	if err := tx.Create(&records).Error; err != nil {
		return fmt.Errorf("save addresses: %w", err)
	}
	return nil
}
