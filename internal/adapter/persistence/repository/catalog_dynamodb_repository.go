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

const (
	defaultSettingsTableName = "ring_settings"
	defaultStonesTableName   = "stones"
	catalogShopIndex         = "shop-index"
)

type settingItem struct {
	ID               string             `dynamodbav:"id"`
	Shop             string             `dynamodbav:"shop"`
	Name             string             `dynamodbav:"name"`
	Description      string             `dynamodbav:"description,omitempty"`
	BasePrices       map[string]float64 `dynamodbav:"base_prices"`
	CompatibleShapes []string           `dynamodbav:"compatible_shapes,omitempty"`
	Images           []string           `dynamodbav:"images,omitempty"`
	CreatedAt        string             `dynamodbav:"created_at"`
	UpdatedAt        string             `dynamodbav:"updated_at"`
}

type stoneItem struct {
	ID         string  `dynamodbav:"id"`
	Shop       string  `dynamodbav:"shop"`
	Carat      float64 `dynamodbav:"carat"`
	Shape      string  `dynamodbav:"shape"`
	Cut        string  `dynamodbav:"cut"`
	Color      string  `dynamodbav:"color"`
	Clarity    string  `dynamodbav:"clarity"`
	CertLab    string  `dynamodbav:"cert_lab,omitempty"`
	CertNumber string  `dynamodbav:"cert_number,omitempty"`
	CertURL    string  `dynamodbav:"cert_url,omitempty"`
	Price      float64 `dynamodbav:"price"`
	ImageURL   string  `dynamodbav:"image_url,omitempty"`
	CreatedAt  string  `dynamodbav:"created_at"`
	UpdatedAt  string  `dynamodbav:"updated_at"`
}

// CatalogDynamoRepository reads the settings and stones catalog from
// DynamoDB.
//
// Table requirements (both tables):
//   - PK: id (string)
//   - GSI: shop-index (PK: shop)
//
// Filters are applied in memory after the shop-index query: the shape
// filter needs the "empty compatibility list means any shape" rule, which a
// DynamoDB filter expression cannot evaluate, and per-shop catalogs are
// small enough that one query page covers them.

type CatalogDynamoRepository struct {
	ddb           *dynamodb.Client
	settingsTable string
	stonesTable   string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:           ddb,
		settingsTable: getenvDefault("SETTINGS_TABLE", defaultSettingsTableName),
		stonesTable:   getenvDefault("STONES_TABLE", defaultStonesTableName),
	}
}

func (r *CatalogDynamoRepository) ListSettings(ctx context.Context, shop string, f entities.SettingFilter) ([]entities.Setting, error) {
	items, err := r.queryByShop(ctx, r.settingsTable, shop)
	if err != nil {
		return nil, err
	}

	settings := make([]entities.Setting, 0, len(items))
	for _, raw := range items {
		var it settingItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		s := fromSettingItem(it)
		if matchesSettingFilter(s, f) {
			settings = append(settings, s)
		}
	}
	return settings, nil
}

func (r *CatalogDynamoRepository) GetSettingByID(ctx context.Context, id string) (entities.Setting, error) {
	item, err := r.getByID(ctx, r.settingsTable, id)
	if err != nil || item == nil {
		return entities.Setting{}, err
	}

	var it settingItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Setting{}, err
	}
	return fromSettingItem(it), nil
}

func (r *CatalogDynamoRepository) ListStones(ctx context.Context, shop string, f entities.StoneFilter) ([]entities.Stone, error) {
	items, err := r.queryByShop(ctx, r.stonesTable, shop)
	if err != nil {
		return nil, err
	}

	stones := make([]entities.Stone, 0, len(items))
	for _, raw := range items {
		var it stoneItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		s := fromStoneItem(it)
		if matchesStoneFilter(s, f) {
			stones = append(stones, s)
		}
	}
	return stones, nil
}

func (r *CatalogDynamoRepository) GetStoneByID(ctx context.Context, id string) (entities.Stone, error) {
	item, err := r.getByID(ctx, r.stonesTable, id)
	if err != nil || item == nil {
		return entities.Stone{}, err
	}

	var it stoneItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Stone{}, err
	}
	return fromStoneItem(it), nil
}

func (r *CatalogDynamoRepository) queryByShop(ctx context.Context, table, shop string) ([]map[string]types.AttributeValue, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(catalogShopIndex),
		KeyConditionExpression: aws.String("shop = :shop"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":shop": &types.AttributeValueMemberS{Value: shop},
		},
	})
	if err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (r *CatalogDynamoRepository) getByID(ctx context.Context, table, id string) (map[string]types.AttributeValue, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return out.Item, nil
}

func matchesSettingFilter(s entities.Setting, f entities.SettingFilter) bool {
	if f.Shape != "" && !s.SupportsShape(f.Shape) {
		return false
	}
	// Price filtering uses the cheapest metal when no metal is requested.
	price := lowestBasePrice(s)
	if f.Metal != "" {
		price = s.PriceFor(f.Metal)
		if price == 0 {
			return false
		}
	}
	if f.MinPrice > 0 && price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && price > f.MaxPrice {
		return false
	}
	return true
}

func matchesStoneFilter(s entities.Stone, f entities.StoneFilter) bool {
	if f.Shape != "" && s.Shape != f.Shape {
		return false
	}
	if f.MinCarat > 0 && s.Carat < f.MinCarat {
		return false
	}
	if f.MaxCarat > 0 && s.Carat > f.MaxCarat {
		return false
	}
	if f.MinPrice > 0 && s.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && s.Price > f.MaxPrice {
		return false
	}
	if f.Cut != "" && s.Cut != f.Cut {
		return false
	}
	if f.Color != "" && s.Color != f.Color {
		return false
	}
	if f.Clarity != "" && s.Clarity != f.Clarity {
		return false
	}
	if f.Lab != "" && s.Certificate.Lab != f.Lab {
		return false
	}
	return true
}

func lowestBasePrice(s entities.Setting) float64 {
	lowest := 0.0
	for _, p := range s.BasePrices {
		if lowest == 0 || (p > 0 && p < lowest) {
			lowest = p
		}
	}
	return lowest
}

func fromSettingItem(it settingItem) entities.Setting {
	prices := make(map[entities.MetalType]float64, len(it.BasePrices))
	for metal, price := range it.BasePrices {
		prices[entities.MetalType(metal)] = price
	}
	shapes := make([]entities.StoneShape, 0, len(it.CompatibleShapes))
	for _, shape := range it.CompatibleShapes {
		shapes = append(shapes, entities.StoneShape(shape))
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Setting{
		ID:               it.ID,
		Shop:             it.Shop,
		Name:             it.Name,
		Description:      it.Description,
		BasePrices:       prices,
		CompatibleShapes: shapes,
		Images:           it.Images,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}

func fromStoneItem(it stoneItem) entities.Stone {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Stone{
		ID:      it.ID,
		Shop:    it.Shop,
		Carat:   it.Carat,
		Shape:   entities.StoneShape(it.Shape),
		Cut:     it.Cut,
		Color:   it.Color,
		Clarity: it.Clarity,
		Certificate: entities.Certificate{
			Lab:    it.CertLab,
			Number: it.CertNumber,
			URL:    it.CertURL,
		},
		Price:     it.Price,
		ImageURL:  it.ImageURL,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
