package interfaces

import (
	"context"

	"ringbuilder/internal/domain/entities"
)

// ICatalogRepository abstracts DynamoDB persistence for the settings and
// stones catalog. Listings are shop-scoped; filters narrow the result set.

type ICatalogRepository interface {
	ListSettings(ctx context.Context, shop string, f entities.SettingFilter) ([]entities.Setting, error)
	GetSettingByID(ctx context.Context, id string) (entities.Setting, error)
	ListStones(ctx context.Context, shop string, f entities.StoneFilter) ([]entities.Stone, error)
	GetStoneByID(ctx context.Context, id string) (entities.Stone, error)
}
