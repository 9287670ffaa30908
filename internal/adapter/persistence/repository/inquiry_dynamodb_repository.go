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
	defaultInquiriesTableName = "inquiries"
	inquiriesShopIndex        = "shop-index"
)

type inquiryItem struct {
	ID        string `dynamodbav:"id"`
	Shop      string `dynamodbav:"shop"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email"`
	Message   string `dynamodbav:"message"`
	StoneID   string `dynamodbav:"stone_id,omitempty"`
	SessionID string `dynamodbav:"session_id,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// InquiryDynamoRepository persists shopper inquiries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: shop-index (PK: shop)

type InquiryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInquiryRepository = (*InquiryDynamoRepository)(nil)

func NewInquiryDynamoRepository(ddb *dynamodb.Client) *InquiryDynamoRepository {
	return &InquiryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INQUIRIES_TABLE", defaultInquiriesTableName),
	}
}

func (r *InquiryDynamoRepository) Create(ctx context.Context, i entities.Inquiry) (entities.Inquiry, error) {
	av, err := attributevalue.MarshalMap(toInquiryItem(i))
	if err != nil {
		return entities.Inquiry{}, err
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
		return entities.Inquiry{}, err
	}
	return i, nil
}

func (r *InquiryDynamoRepository) ListByShop(ctx context.Context, shop string) ([]entities.Inquiry, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(inquiriesShopIndex),
		KeyConditionExpression: aws.String("shop = :shop"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":shop": &types.AttributeValueMemberS{Value: shop},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Inquiry, 0, len(out.Items))
	for _, raw := range out.Items {
		var it inquiryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromInquiryItem(it))
	}
	return items, nil
}

func toInquiryItem(i entities.Inquiry) inquiryItem {
	return inquiryItem{
		ID:        i.ID,
		Shop:      i.Shop,
		Name:      i.Name,
		Email:     i.Email,
		Message:   i.Message,
		StoneID:   i.StoneID,
		SessionID: i.SessionID,
		CreatedAt: i.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromInquiryItem(it inquiryItem) entities.Inquiry {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Inquiry{
		ID:        it.ID,
		Shop:      it.Shop,
		Name:      it.Name,
		Email:     it.Email,
		Message:   it.Message,
		StoneID:   it.StoneID,
		SessionID: it.SessionID,
		CreatedAt: createdAt,
	}
}
