package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/afnankhn654-alt/ShopNest/catalog"
	"github.com/afnankhn654-alt/ShopNest/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRepo struct {
	mu        sync.Mutex
	reviews   []ReviewChange
	addresses map[string][]models.Address
	err       error
}

func (r *recordingRepo) SaveReview(_ context.Context, change ReviewChange) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.reviews = append(r.reviews, change)
	return nil
}

func (r *recordingRepo) SaveAddresses(_ context.Context, userID string, list []models.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if r.addresses == nil {
		r.addresses = make(map[string][]models.Address)
	}
	r.addresses[userID] = list
	return nil
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []Event
}

func (n *recordingNotifier) Notify(e Event) {
	n.mu.Lock()
	n.events = append(n.events, e)
	n.mu.Unlock()
}

func newTestStore(t *testing.T, opts Options) *Store {
	t.Helper()
	opts.Now = func() time.Time { return time.Date(2024, 3, 9, 15, 0, 0, 0, time.UTC) }
	return New(catalog.Seed(7, 20), opts)
}

func TestStore_Queries(t *testing.T) {
	s := newTestStore(t, Options{})

	assert.Len(t, s.Products(), 24)
	p, err := s.Product("p2")
	require.NoError(t, err)
	assert.Equal(t, "perfumes", p.Category)

	_, err = s.Product("nope")
	assert.ErrorIs(t, err, ErrProductNotFound)

	assert.True(t, s.HasProduct("p1"))
	assert.True(t, s.HasCategory("fashion"))
	assert.False(t, s.HasCategory("toys"))
	assert.Len(t, s.Categories(), 4)
	assert.Len(t, s.Banners(), 3)
	assert.Len(t, s.FlashSale(), 4)

	_, err = s.ProductsInCategory("toys", catalog.SortDefault)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
	asc, err := s.ProductsInCategory("electronics", catalog.SortPriceAsc)
	require.NoError(t, err)
	for i := 1; i < len(asc); i++ {
		assert.LessOrEqual(t, asc[i-1].Price, asc[i].Price)
	}

	similar, err := s.Similar("p1", 5)
	require.NoError(t, err)
	assert.Len(t, similar, 5)
	for _, sp := range similar {
		assert.NotEqual(t, "p1", sp.ID)
		assert.Equal(t, "electronics", sp.Category)
	}

	assert.NotEmpty(t, s.Search("aura-x"))
	assert.Len(t, s.Orders(""), 3)
	assert.Len(t, s.Orders(catalog.DemoUserID), 3)
	assert.Empty(t, s.Orders("someone-else"))
}

func TestStore_ProductIsACopy(t *testing.T) {
	s := newTestStore(t, Options{})
	p, err := s.Product("p1")
	require.NoError(t, err)
	p.Reviews[0].Rating = 1
	p.Name = "changed"

	again, err := s.Product("p1")
	require.NoError(t, err)
	assert.Equal(t, 5, again.Reviews[0].Rating)
	assert.NotEqual(t, "changed", again.Name)
}

func TestSubmitReview(t *testing.T) {
	repo := &recordingRepo{}
	notifier := &recordingNotifier{}
	s := newTestStore(t, Options{Repository: repo, Notifier: notifier})

	review, err := s.SubmitReview(context.Background(), "p3", "order-1", models.ReviewInput{
		UserID: "u1", Author: "Ann", Rating: 2, Title: "Runs small", Content: "Size up.",
	})
	require.NoError(t, err)
	assert.Regexp(t, `^review-[0-9a-f-]{36}$`, review.ID)
	assert.Equal(t, "2024-03-09", review.Date)
	assert.True(t, review.IsVerified)

	p, err := s.Product("p3")
	require.NoError(t, err)
	assert.Equal(t, 2, p.ReviewCount)
	assert.Equal(t, 3.0, p.Rating)

	o, err := s.Order("order-1")
	require.NoError(t, err)
	assert.True(t, o.Items[o.Line("p3")].HasBeenReviewed)

	require.Len(t, repo.reviews, 1)
	assert.Equal(t, review.ID, repo.reviews[0].Review.ID)
	require.Len(t, notifier.events, 1)
	assert.Equal(t, EventReviewAdded, notifier.events[0].Type)
	assert.Equal(t, 3.0, notifier.events[0].Rating)
}

func TestSubmitReview_Errors(t *testing.T) {
	s := newTestStore(t, Options{})
	ctx := context.Background()
	good := models.ReviewInput{Author: "A", Rating: 4, Title: "Fine", Content: "ok"}

	tests := []struct {
		name    string
		product string
		order   string
		input   models.ReviewInput
		want    error
	}{
		{"unknown product", "p404", "order-1", good, ErrProductNotFound},
		{"unknown order", "p3", "order-404", good, ErrOrderNotFound},
		{"product not in order", "p4", "order-1", good, ErrOrderLineNotFound},
		{"already reviewed", "p1", "order-1", good, ErrAlreadyReviewed},
		{"order shipped but not delivered", "p4", "order-2", good, ErrOrderNotDelivered},
		{"rating too low", "p3", "order-1", models.ReviewInput{Rating: 0, Content: "x"}, ErrInvalidRating},
		{"rating too high", "p3", "order-1", models.ReviewInput{Rating: 6, Content: "x"}, ErrInvalidRating},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.SubmitReview(ctx, tt.product, tt.order, tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := s.SubmitReview(ctx, "p3", "order-1", models.ReviewInput{Rating: 3, Title: "Nice", Content: "  "})
	assert.True(t, IsValidation(err))
	_, err = s.SubmitReview(ctx, "p3", "order-1", models.ReviewInput{Rating: 3, Title: " ", Content: "Nice"})
	assert.True(t, IsValidation(err))

	shipped, err := s.Order("order-2")
	require.NoError(t, err)
	assert.False(t, shipped.Items[0].HasBeenReviewed)

	p, err := s.Product("p3")
	require.NoError(t, err)
	assert.Equal(t, 1, p.ReviewCount, "failed submissions change nothing")
}

func TestSubmitReview_RepositoryFailureChangesNothing(t *testing.T) {
	s := newTestStore(t, Options{Repository: &recordingRepo{err: errors.New("db down")}})

	_, err := s.SubmitReview(context.Background(), "p3", "order-1", models.ReviewInput{Rating: 5, Title: "Great", Content: "great"})
	require.Error(t, err)

	p, err := s.Product("p3")
	require.NoError(t, err)
	assert.Equal(t, 1, p.ReviewCount)
	o, err := s.Order("order-1")
	require.NoError(t, err)
	assert.False(t, o.Items[o.Line("p3")].HasBeenReviewed)
}

func TestSubmitReview_RatingInvariantUnderConcurrency(t *testing.T) {
	orders := make([]models.Order, 20)
	for i := range orders {
		orders[i] = models.Order{
			ID:     "o" + string(rune('a'+i)),
			Status: models.OrderStatusDelivered,
			Items:  []models.OrderLine{{ProductID: "p1", Quantity: 1}},
		}
	}
	ds := catalog.Seed(1, 0)
	ds.Orders = orders
	s := New(ds, Options{})

	var wg sync.WaitGroup
	for i, o := range orders {
		wg.Add(1)
		go func(orderID string, rating int) {
			defer wg.Done()
			_, err := s.SubmitReview(context.Background(), "p1", orderID, models.ReviewInput{Rating: rating, Title: "t", Content: "c"})
			assert.NoError(t, err)
		}(o.ID, i%5+1)
	}
	wg.Wait()

	p, err := s.Product("p1")
	require.NoError(t, err)
	assert.Equal(t, 21, p.ReviewCount)
	assert.Len(t, p.Reviews, 21)
	assert.Equal(t, models.AverageRating(p.Reviews), p.Rating)
	for _, o := range s.Orders("") {
		assert.True(t, o.Items[0].HasBeenReviewed)
	}
}
