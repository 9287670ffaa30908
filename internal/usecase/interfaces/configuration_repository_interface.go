package interfaces

import (
	"context"

	"ringbuilder/internal/domain/entities"
)

// IConfigurationRepository abstracts DynamoDB persistence for submitted
// RingConfiguration snapshots.

type IConfigurationRepository interface {
	Create(ctx context.Context, c entities.RingConfiguration) (entities.RingConfiguration, error)
	GetByID(ctx context.Context, id string) (entities.RingConfiguration, error)
	ListByShop(ctx context.Context, shop string) ([]entities.RingConfiguration, error)
}
