package listeners

import (
	"context"
	"errors"

	"github.com/SeaCloudHub/enquiry/domain"
	"github.com/SeaCloudHub/enquiry/domain/customer"
)

type CustomerCacheEvictor interface {
	Evict(ctx context.Context, id uint64) error
	EvictEmail(ctx context.Context, email string) error
	EvictList(ctx context.Context) error
}

// CacheEvictionListener drops cached reads made stale by a committed write.
type CacheEvictionListener struct {
	cache CustomerCacheEvictor
}

func NewCacheEvictionListener(cache CustomerCacheEvictor) CacheEvictionListener {
	return CacheEvictionListener{cache: cache}
}

func (l CacheEvictionListener) EventHandler(ctx context.Context, event domain.BaseDomainEvent) error {
	switch e := event.(type) {
	case customer.CustomerCreatedEvent:
		return l.cache.EvictList(ctx)
	case customer.TransactionAddedEvent:
		return errors.Join(
			l.cache.Evict(ctx, e.CustomerID),
			l.cache.EvictList(ctx),
		)
	case customer.CustomerContactChangedEvent:
		return errors.Join(
			l.cache.Evict(ctx, e.CustomerID),
			l.cache.EvictEmail(ctx, e.OldEmail),
			l.cache.EvictList(ctx),
		)
	}

	return nil
}
