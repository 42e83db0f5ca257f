package productcontroller

import (
	"context"

	"github.com/foresthealth/storefront-api/models"
	"github.com/foresthealth/storefront-api/store"
)

// SeedProducts inserts the sample catalog when the product collection is
// empty. Idempotent; the startup orchestration decides what to do with a
// failure.
func SeedProducts(ctx context.Context, s *store.Store) error {
	if !s.Available() {
		return nil
	}
	count, err := s.Count(ctx, store.Products)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, p := range models.SampleProducts {
		if _, err := s.InsertOne(ctx, store.Products, p); err != nil {
			return err
		}
	}
	return nil
}
