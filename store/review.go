package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/afnankhn654-alt/ShopNest/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubmitReview attaches a verified review to a product bought in a delivered
// order and marks that order line as reviewed. Both changes become visible together;
// on any error nothing changes.
func (s *Store) SubmitReview(ctx context.Context, productID, orderID string, input models.ReviewInput) (models.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return models.Review{}, ErrInvalidRating
	}
	if strings.TrimSpace(input.Title) == "" {
		return models.Review{}, validationf("Please give your review a title.")
	}
	if strings.TrimSpace(input.Content) == "" {
		return models.Review{}, validationf("Please write a few words about the product.")
	}

	s.mu.Lock()
	change, err := s.prepareReviewLocked(productID, orderID, input)
	if err != nil {
		s.mu.Unlock()
		return models.Review{}, err
	}
	if s.repo != nil {
		if err := s.repo.SaveReview(ctx, change); err != nil {
			s.mu.Unlock()
			s.logger.Error("failed to persist review",
				zap.String("product_id", productID), zap.String("order_id", orderID), zap.Error(err))
			return models.Review{}, fmt.Errorf("save review: %w", err)
		}
	}
	s.products[s.index[productID]] = change.Product
	s.orders[s.orderIndexLocked(orderID)] = change.Order
	s.mu.Unlock()

	s.logger.Info("review submitted",
		zap.String("review_id", change.Review.ID),
		zap.String("product_id", productID),
		zap.String("order_id", orderID),
		zap.Int("rating", change.Review.Rating))

	if s.notifier != nil {
		s.notifier.Notify(Event{
			Type:        EventReviewAdded,
			UserID:      change.Order.UserID,
			OrderID:     orderID,
			ProductID:   productID,
			Review:      change.Review,
			Rating:      change.Product.Rating,
			ReviewCount: change.Product.ReviewCount,
		})
	}
	return change.Review, nil
}

func (s *Store) prepareReviewLocked(productID, orderID string, input models.ReviewInput) (ReviewChange, error) {
	pi, ok := s.index[productID]
	if !ok {
		return ReviewChange{}, ErrProductNotFound
	}
	oi := s.orderIndexLocked(orderID)
	if oi < 0 {
		return ReviewChange{}, ErrOrderNotFound
	}
	order := s.orders[oi].Clone()
	if order.Status != models.OrderStatusDelivered {
		return ReviewChange{}, ErrOrderNotDelivered
	}
	line := order.Line(productID)
	if line < 0 {
		return ReviewChange{}, ErrOrderLineNotFound
	}
	if order.Items[line].HasBeenReviewed {
		return ReviewChange{}, ErrAlreadyReviewed
	}
	order.Items[line].HasBeenReviewed = true

	review := models.Review{
		ID:         "review-" + uuid.NewString(),
		UserID:     input.UserID,
		Author:     input.Author,
		Avatar:     input.Avatar,
		Rating:     input.Rating,
		Title:      input.Title,
		Content:    input.Content,
		Date:       s.now().Format("2006-01-02"),
		IsVerified: true,
		Images:     append([]string(nil), input.Images...),
	}

	product := s.products[pi]
	product.Reviews = append(append(make([]models.Review, 0, len(product.Reviews)+1), product.Reviews...), review)
	product.Recompute()

	return ReviewChange{Review: review, Product: product, Order: order}, nil
}
