package repository

import (
	"context"
	"time"

	"ringbuilder/internal/domain/entities"
	"ringbuilder/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultShopSettingsTableName = "shop_settings"

type sideStoneTierItem struct {
	Quality       string  `dynamodbav:"quality"`
	PricePerStone float64 `dynamodbav:"price_per_stone"`
}

type shopSettingsItem struct {
	Shop           string              `dynamodbav:"shop"`
	MarkupPercent  float64             `dynamodbav:"markup_percent"`
	EngravingFee   float64             `dynamodbav:"engraving_fee"`
	SideStoneTiers []sideStoneTierItem `dynamodbav:"side_stone_tiers,omitempty"`
	RingSizes      []string            `dynamodbav:"ring_sizes,omitempty"`
	UpdatedAt      string              `dynamodbav:"updated_at"`
}

// ShopSettingsDynamoRepository persists merchant settings in DynamoDB.
//
// Table requirements:
//   - PK: shop (string)

type ShopSettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IShopSettingsRepository = (*ShopSettingsDynamoRepository)(nil)

func NewShopSettingsDynamoRepository(ddb *dynamodb.Client) *ShopSettingsDynamoRepository {
	return &ShopSettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SHOP_SETTINGS_TABLE", defaultShopSettingsTableName),
	}
}

func (r *ShopSettingsDynamoRepository) Get(ctx context.Context, shop string) (entities.ShopSettings, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"shop": &types.AttributeValueMemberS{Value: shop},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ShopSettings{}, err
	}
	if len(out.Item) == 0 {
		return entities.ShopSettings{}, nil
	}

	var it shopSettingsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ShopSettings{}, err
	}
	return fromShopSettingsItem(it), nil
}

func (r *ShopSettingsDynamoRepository) Put(ctx context.Context, s entities.ShopSettings) (entities.ShopSettings, error) {
	av, err := attributevalue.MarshalMap(toShopSettingsItem(s))
	if err != nil {
		return entities.ShopSettings{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.ShopSettings{}, err
	}
	return s, nil
}

func toShopSettingsItem(s entities.ShopSettings) shopSettingsItem {
	tiers := make([]sideStoneTierItem, 0, len(s.SideStoneTiers))
	for _, t := range s.SideStoneTiers {
		tiers = append(tiers, sideStoneTierItem{Quality: t.Quality, PricePerStone: t.PricePerStone})
	}
	return shopSettingsItem{
		Shop:           s.Shop,
		MarkupPercent:  s.MarkupPercent,
		EngravingFee:   s.EngravingFee,
		SideStoneTiers: tiers,
		RingSizes:      s.RingSizes,
		UpdatedAt:      s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromShopSettingsItem(it shopSettingsItem) entities.ShopSettings {
	tiers := make([]entities.SideStoneTier, 0, len(it.SideStoneTiers))
	for _, t := range it.SideStoneTiers {
		tiers = append(tiers, entities.SideStoneTier{Quality: t.Quality, PricePerStone: t.PricePerStone})
	}
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ShopSettings{
		Shop:           it.Shop,
		MarkupPercent:  it.MarkupPercent,
		EngravingFee:   it.EngravingFee,
		SideStoneTiers: tiers,
		RingSizes:      it.RingSizes,
		UpdatedAt:      updatedAt,
	}
}
