package app

import (
	"context"
	"log"
	"sync"
)

// Aggregator joins a product list with the media service, one independent lookup
// per product. A broken lookup must never blank the whole list.
type Aggregator struct {
	media MediaFetcher
}

func NewAggregator(media MediaFetcher) *Aggregator {
	return &Aggregator{media: media}
}

// Aggregate issues one media lookup per product and attaches the results in
// place as they arrive. Lookups run concurrently and independently; a failed or
// empty lookup leaves that product with an empty Images slice and the rest of
// the batch untouched. No retries, no dedup across calls.
func (a *Aggregator) Aggregate(ctx context.Context, products []*Product) {
	var wg sync.WaitGroup
	for _, product := range products {
		if product == nil {
			continue
		}
		wg.Add(1)
		go func(product *Product) {
			defer wg.Done()
			attachments, err := a.media.ByProduct(ctx, product.ID)
			if err != nil {
				log.Printf("can not fetch media for product %s: %v", product.ID, err)
				product.Images = []MediaAttachment{}
				return
			}
			if attachments == nil {
				attachments = []MediaAttachment{}
			}
			product.Images = attachments
		}(product)
	}
	wg.Wait()
}

// FilterOwned keeps the products owned by userID, order preserved. Pure and
// synchronous: it only looks at already-fetched data.
func FilterOwned(products []*Product, userID string) []*Product {
	owned := make([]*Product, 0, len(products))
	if userID == "" {
		return owned
	}
	for _, product := range products {
		if product != nil && product.UserID == userID {
			owned = append(owned, product)
		}
	}
	return owned
}
