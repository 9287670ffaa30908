package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"ringbuilder/internal/domain/entities"
	"ringbuilder/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSessionsTableName = "builder_sessions"

// builderSessionItem stores the full session document as a JSON payload
// next to the attributes the table conditions on. Payload corruption is
// tolerated on read: a session that cannot be decoded is treated as absent.
type builderSessionItem struct {
	ID        string `dynamodbav:"id"`
	Shop      string `dynamodbav:"shop"`
	Status    string `dynamodbav:"status"`
	Payload   string `dynamodbav:"payload"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// BuilderSessionDynamoRepository persists BuilderSession entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type BuilderSessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBuilderSessionRepository = (*BuilderSessionDynamoRepository)(nil)

func NewBuilderSessionDynamoRepository(ddb *dynamodb.Client) *BuilderSessionDynamoRepository {
	return &BuilderSessionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SESSIONS_TABLE", defaultSessionsTableName),
	}
}

func (r *BuilderSessionDynamoRepository) Create(ctx context.Context, s entities.BuilderSession) (entities.BuilderSession, error) {
	it, err := toBuilderSessionItem(s)
	if err != nil {
		return entities.BuilderSession{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.BuilderSession{}, err
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
		return entities.BuilderSession{}, err
	}
	return s, nil
}

func (r *BuilderSessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.BuilderSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BuilderSession{}, err
	}
	if len(out.Item) == 0 {
		return entities.BuilderSession{}, nil
	}

	var it builderSessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BuilderSession{}, err
	}
	return fromBuilderSessionItem(it), nil
}

// Save overwrites the stored session document.
func (r *BuilderSessionDynamoRepository) Save(ctx context.Context, s entities.BuilderSession) (entities.BuilderSession, error) {
	it, err := toBuilderSessionItem(s)
	if err != nil {
		return entities.BuilderSession{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.BuilderSession{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.BuilderSession{}, err
	}
	return s, nil
}

func (r *BuilderSessionDynamoRepository) MarkSubmitted(ctx context.Context, id string) (entities.BuilderSession, error) {
	return r.transitionStatus(ctx, id, entities.SessionStatusActive, entities.SessionStatusSubmitted)
}

func (r *BuilderSessionDynamoRepository) Reactivate(ctx context.Context, id string) (entities.BuilderSession, error) {
	return r.transitionStatus(ctx, id, entities.SessionStatusSubmitted, entities.SessionStatusActive)
}

// transitionStatus flips the status attribute atomically. A failed
// condition (missing session or wrong current status) returns a zero-value
// session, not an error.
func (r *BuilderSessionDynamoRepository) transitionStatus(ctx context.Context, id string, from, to entities.SessionStatus) (entities.BuilderSession, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.BuilderSession{}, nil
		}
		return entities.BuilderSession{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.BuilderSession{}, nil
	}

	var it builderSessionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.BuilderSession{}, err
	}
	return fromBuilderSessionItem(it), nil
}

func toBuilderSessionItem(s entities.BuilderSession) (builderSessionItem, error) {
	payload, err := json.Marshal(s)
	if err != nil {
		return builderSessionItem{}, err
	}
	return builderSessionItem{
		ID:        s.ID,
		Shop:      s.Shop,
		Status:    string(s.Status),
		Payload:   string(payload),
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromBuilderSessionItem(it builderSessionItem) entities.BuilderSession {
	var s entities.BuilderSession
	if err := json.Unmarshal([]byte(it.Payload), &s); err != nil {
		// Corrupt state is "no saved state", never a fatal error.
		log.Printf("[builder][repository] corrupt session payload id=%s err=%v", it.ID, err)
		return entities.BuilderSession{}
	}
	// Table attributes win over the payload copy for fields the table
	// conditions on.
	s.ID = it.ID
	s.Shop = it.Shop
	s.Status = entities.SessionStatus(it.Status)
	if updatedAt, err := time.Parse(time.RFC3339Nano, it.UpdatedAt); err == nil {
		s.UpdatedAt = updatedAt
	}
	return s
}
