// Package store owns the storefront state: the shared catalog, orders and
// address books, and the per-session carts, navigators and transcripts.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/afnankhn654-alt/ShopNest/catalog"
	"github.com/afnankhn654-alt/ShopNest/models"
	"go.uber.org/zap"
)

// Repository persists mutations before they become visible in memory.
type Repository interface {
	SaveReview(ctx context.Context, change ReviewChange) error
	SaveAddresses(ctx context.Context, userID string, addresses []models.Address) error
}

// ReviewChange is the complete effect of one review submission.
type ReviewChange struct {
	Review  models.Review
	Product models.Product
	Order   models.Order
}

// EventType names a change pushed to live order subscribers.
type EventType string

const EventReviewAdded EventType = "review_added"

// Event is a committed change. UserID stays server-side; subscribers of the
// live feed are not authenticated.
type Event struct {
	Type        EventType     `json:"type"`
	UserID      string        `json:"-"`
	OrderID     string        `json:"orderId"`
	ProductID   string        `json:"productId"`
	Review      models.Review `json:"review"`
	Rating      float64       `json:"rating"`
	ReviewCount int           `json:"reviewCount"`
}

// Notifier receives events after they are committed.
type Notifier interface {
	Notify(Event)
}

type Options struct {
	Repository   Repository
	Notifier     Notifier
	Logger       *zap.Logger
	EnforceStock bool
	Now          func() time.Time
}

// Store is the application-root state. Product and order values it holds are
// never mutated in place: writers swap in fresh slices, so the shallow
// copies handed to readers stay consistent.
type Store struct {
	mu         sync.RWMutex
	products   []models.Product
	index      map[string]int
	categories []models.Category
	banners    []models.Banner
	orders     []models.Order
	addresses  map[string][]models.Address

	repo         Repository
	notifier     Notifier
	logger       *zap.Logger
	enforceStock bool
	now          func() time.Time
}

func New(ds catalog.Dataset, opts Options) *Store {
	s := &Store{
		products:     ds.Products,
		index:        make(map[string]int, len(ds.Products)),
		categories:   ds.Categories,
		banners:      ds.Banners,
		orders:       ds.Orders,
		addresses:    make(map[string][]models.Address, len(ds.Addresses)),
		repo:         opts.Repository,
		notifier:     opts.Notifier,
		logger:       opts.Logger,
		enforceStock: opts.EnforceStock,
		now:          opts.Now,
	}
	for i, p := range s.products {
		s.index[p.ID] = i
	}
	for userID, list := range ds.Addresses {
		s.addresses[userID] = append([]models.Address(nil), list...)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// EnforceStock reports whether carts created for this store reject
// quantities above the available stock.
func (s *Store) EnforceStock() bool {
	return s.enforceStock
}

// Products returns every product in seed order.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Product(nil), s.products...)
}

func (s *Store) Product(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return s.products[i].Clone(), nil
}

func (s *Store) HasProduct(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[id]
	return ok
}

func (s *Store) HasCategory(id string) bool {
	_, err := s.Category(id)
	return err == nil
}

func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Category(nil), s.categories...)
}

func (s *Store) Category(id string) (models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Category{}, ErrCategoryNotFound
}

func (s *Store) Banners() []models.Banner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Banner(nil), s.banners...)
}

// ProductsInCategory lists a category's products in the requested order.
func (s *Store) ProductsInCategory(categoryID string, sort catalog.SortOption) ([]models.Product, error) {
	if !s.HasCategory(categoryID) {
		return nil, ErrCategoryNotFound
	}
	return catalog.Sort(catalog.InCategory(s.Products(), categoryID), sort), nil
}

func (s *Store) Search(query string) []models.Product {
	return catalog.Search(s.Products(), query)
}

// Similar lists up to n other products from the same category.
func (s *Store) Similar(productID string, n int) ([]models.Product, error) {
	p, err := s.Product(productID)
	if err != nil {
		return nil, err
	}
	return catalog.Similar(s.Products(), p, n), nil
}

func (s *Store) FlashSale() []models.Product {
	return catalog.FlashSale(s.Products())
}

// Orders lists the orders of userID, or every order when userID is empty.
func (s *Store) Orders(userID string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if userID == "" || o.UserID == userID {
			out = append(out, o.Clone())
		}
	}
	return out
}

func (s *Store) Order(id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.orderIndexLocked(id)
	if i < 0 {
		return models.Order{}, ErrOrderNotFound
	}
	return s.orders[i].Clone(), nil
}

func (s *Store) orderIndexLocked(id string) int {
	for i, o := range s.orders {
		if o.ID == id {
			return i
		}
	}
	return -1
}
