package repository

import (
	"context"
	"encoding/json"
	"time"

	"ringbuilder/internal/domain/entities"
	"ringbuilder/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultConfigurationsTableName = "ring_configurations"
	configurationsShopIndex        = "shop-index"
)

type configurationItem struct {
	ID          string                 `dynamodbav:"id"`
	Shop        string                 `dynamodbav:"shop"`
	SessionID   string                 `dynamodbav:"session_id"`
	SettingID   string                 `dynamodbav:"setting_id"`
	StoneID     string                 `dynamodbav:"stone_id"`
	MetalType   string                 `dynamodbav:"metal_type"`
	RingSize    string                 `dynamodbav:"ring_size"`
	SideStones  string                 `dynamodbav:"side_stones,omitempty"`
	Engraving   string                 `dynamodbav:"engraving,omitempty"`
	TotalPrice  float64                `dynamodbav:"total_price"`
	CreatedAt   string                 `dynamodbav:"created_at"`
	CartData    map[string]interface{} `dynamodbav:"cart_data,omitempty"`
	CartDataRaw string                 `dynamodbav:"cart_data_raw,omitempty"`
}

// ConfigurationDynamoRepository persists submitted RingConfiguration
// snapshots in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: shop-index (PK: shop)

type ConfigurationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IConfigurationRepository = (*ConfigurationDynamoRepository)(nil)

func NewConfigurationDynamoRepository(ddb *dynamodb.Client) *ConfigurationDynamoRepository {
	return &ConfigurationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONFIGURATIONS_TABLE", defaultConfigurationsTableName),
	}
}

func (r *ConfigurationDynamoRepository) Create(ctx context.Context, c entities.RingConfiguration) (entities.RingConfiguration, error) {
	it, err := toConfigurationItem(c)
	if err != nil {
		return entities.RingConfiguration{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.RingConfiguration{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.RingConfiguration{}, err
	}
	return c, nil
}

func (r *ConfigurationDynamoRepository) GetByID(ctx context.Context, id string) (entities.RingConfiguration, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RingConfiguration{}, err
	}
	if len(out.Item) == 0 {
		return entities.RingConfiguration{}, nil
	}

	var it configurationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RingConfiguration{}, err
	}
	return fromConfigurationItem(it), nil
}

func (r *ConfigurationDynamoRepository) ListByShop(ctx context.Context, shop string) ([]entities.RingConfiguration, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(configurationsShopIndex),
		KeyConditionExpression: aws.String("shop = :shop"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":shop": &types.AttributeValueMemberS{Value: shop},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.RingConfiguration, 0, len(out.Items))
	for _, raw := range out.Items {
		var it configurationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromConfigurationItem(it))
	}
	return items, nil
}

func toConfigurationItem(c entities.RingConfiguration) (configurationItem, error) {
	it := configurationItem{
		ID:          c.ID,
		Shop:        c.Shop,
		SessionID:   c.SessionID,
		SettingID:   c.SettingID,
		StoneID:     c.StoneID,
		MetalType:   string(c.MetalType),
		RingSize:    c.RingSize,
		TotalPrice:  c.TotalPrice,
		CreatedAt:   c.CreatedAt.UTC().Format(time.RFC3339Nano),
		CartData:    c.CartData,
		CartDataRaw: string(c.CartDataRaw),
	}
	if c.SideStones != nil {
		b, err := json.Marshal(c.SideStones)
		if err != nil {
			return configurationItem{}, err
		}
		it.SideStones = string(b)
	}
	if c.Engraving != nil {
		b, err := json.Marshal(c.Engraving)
		if err != nil {
			return configurationItem{}, err
		}
		it.Engraving = string(b)
	}
	return it, nil
}

func fromConfigurationItem(it configurationItem) entities.RingConfiguration {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	c := entities.RingConfiguration{
		ID:          it.ID,
		Shop:        it.Shop,
		SessionID:   it.SessionID,
		SettingID:   it.SettingID,
		StoneID:     it.StoneID,
		MetalType:   entities.MetalType(it.MetalType),
		RingSize:    it.RingSize,
		TotalPrice:  it.TotalPrice,
		CreatedAt:   createdAt,
		CartData:    it.CartData,
		CartDataRaw: []byte(it.CartDataRaw),
	}
	if it.SideStones != "" {
		var ss entities.SideStonesConfig
		if err := json.Unmarshal([]byte(it.SideStones), &ss); err == nil {
			c.SideStones = &ss
		}
	}
	if it.Engraving != "" {
		var e entities.EngravingConfig
		if err := json.Unmarshal([]byte(it.Engraving), &e); err == nil {
			c.Engraving = &e
		}
	}
	return c
}
