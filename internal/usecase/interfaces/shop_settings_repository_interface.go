package interfaces

import (
	"context"

	"ringbuilder/internal/domain/entities"
)

// IShopSettingsRepository abstracts DynamoDB persistence for merchant
// settings. Get returns a zero-value settings struct (empty Shop) when the
// merchant has never saved settings.

type IShopSettingsRepository interface {
	Get(ctx context.Context, shop string) (entities.ShopSettings, error)
	Put(ctx context.Context, s entities.ShopSettings) (entities.ShopSettings, error)
}
