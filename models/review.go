package models

import "github.com/shopspring/decimal"

// Review is a verified buyer review. Reviews are append-only.
type Review struct {
	ID         string   `json:"id"`
	UserID     string   `json:"userId"`
	Author     string   `json:"author"`
	Avatar     string   `json:"avatar"`
	Rating     int      `json:"rating"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Date       string   `json:"date"`
	IsVerified bool     `json:"isVerified"`
	Images     []string `json:"images"`
}

func (r Review) Clone() Review {
	c := r
	c.Images = append([]string(nil), r.Images...)
	return c
}

// ReviewInput is what a buyer submits; id, date and verification are assigned
// by the store.
type ReviewInput struct {
	UserID  string   `json:"userId"`
	Author  string   `json:"author"`
	Avatar  string   `json:"avatar"`
	Rating  int      `json:"rating"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Images  []string `json:"images"`
}

// AverageRating is the mean review rating rounded to one decimal. A product
// without reviews rates 0.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum int64
	for _, r := range reviews {
		sum += int64(r.Rating)
	}
	mean := decimal.NewFromInt(sum).Div(decimal.NewFromInt(int64(len(reviews))))
	return mean.Round(1).InexactFloat64()
}

// Recompute refreshes the derived rating fields from the review list.
func (p *Product) Recompute() {
	p.ReviewCount = len(p.Reviews)
	p.Rating = AverageRating(p.Reviews)
}
