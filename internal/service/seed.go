package service

import (
	"context"

	"github.com/commercekit/shop-api/internal/domain"
)

// sampleProducts is the fixture catalog installed by the seed endpoint.
var sampleProducts = []domain.CreateProduct{
	{
		Title:       "Wireless Headphones",
		Description: strPtr("Noise-cancelling over-ear headphones with 30h battery."),
		Price:       99.99,
		Category:    "Electronics",
		InStock:     boolPtr(true),
		Image:       strPtr("https://images.unsplash.com/photo-1518443881150-2f81e7a0f34b?w=800&q=80"),
		Rating:      4.5,
	},
	{
		Title:       "Smart Watch",
		Description: strPtr("Fitness tracking, heart rate monitor, and notifications."),
		Price:       149.99,
		Category:    "Wearables",
		InStock:     boolPtr(true),
		Image:       strPtr("https://images.unsplash.com/photo-1511732351157-1865efcb7b7b?w=800&q=80"),
		Rating:      4.2,
	},
	{
		Title:       "Running Shoes",
		Description: strPtr("Lightweight and comfortable shoes for daily runs."),
		Price:       79.99,
		Category:    "Footwear",
		InStock:     boolPtr(true),
		Image:       strPtr("https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?w=800&q=80"),
		Rating:      4.6,
	},
	{
		Title:       "Backpack",
		Description: strPtr("Durable backpack with laptop compartment."),
		Price:       59.99,
		Category:    "Accessories",
		InStock:     boolPtr(true),
		Image:       strPtr("https://images.unsplash.com/photo-1514477917009-389c76a86b68?w=800&q=80"),
		Rating:      4.1,
	},
}

// SeedProducts installs the sample catalog. Titles already present are
// skipped, so repeated calls do not duplicate products.
func (s *productService) SeedProducts(ctx context.Context) (int, error) {
	inserted := 0
	for i := range sampleProducts {
		p := sampleProducts[i]

		exists, err := s.repo.ExistsByTitle(ctx, p.Title)
		if err != nil {
			s.logger.Error("Unable to seed products", "error", err)
			return 0, err
		}
		if exists {
			continue
		}

		if _, err := s.repo.Insert(ctx, &p); err != nil {
			s.logger.Error("Unable to seed products", "title", p.Title, "error", err)
			return 0, err
		}
		inserted++
	}

	s.logger.Info("Seeded sample products", "inserted", inserted)
	return inserted, nil
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
