package repository

import (
	"context"
	"time"

	"pix_direct_sales/internal/domain/entities"
	"pix_direct_sales/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const subscriptionsLastPaymentIndex = "last_payment_id-index"

type subscriptionItem struct {
	UserID        string `dynamodbav:"user_id"`
	Status        string `dynamodbav:"status"`
	LastPaymentID string `dynamodbav:"last_payment_id,omitempty"`
	ActivatedAt   string `dynamodbav:"activated_at,omitempty"`
	ExpiresAt     string `dynamodbav:"expires_at,omitempty"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// SubscriptionDynamoRepository persists one subscription per user.
//
// Table requirements:
//   - PK: user_id (string)
//   - GSI last_payment_id-index: last_payment_id (string)
type SubscriptionDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ISubscriptionRepository = (*SubscriptionDynamoRepository)(nil)

func NewSubscriptionDynamoRepository(ddb DynamoDBAPI, tableName string) *SubscriptionDynamoRepository {
	return &SubscriptionDynamoRepository{ddb: ddb, tableName: tableName}
}

// UpsertByUserID replaces the record, clearing any previous activation window.
func (r *SubscriptionDynamoRepository) UpsertByUserID(ctx context.Context, s entities.Subscription) (entities.Subscription, error) {
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = time.Now().UTC()
	}
	av, err := attributevalue.MarshalMap(toSubscriptionItem(s))
	if err != nil {
		return entities.Subscription{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.Subscription{}, err
	}
	return s, nil
}

func (r *SubscriptionDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.Subscription, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"user_id": stringAttr(userID)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Subscription{}, err
	}
	if len(out.Item) == 0 {
		return entities.Subscription{}, nil
	}
	var it subscriptionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Subscription{}, err
	}
	return fromSubscriptionItem(it), nil
}

func (r *SubscriptionDynamoRepository) GetByLastPaymentID(ctx context.Context, paymentID string) (entities.Subscription, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(subscriptionsLastPaymentIndex),
		KeyConditionExpression:    aws.String("last_payment_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{":pid": stringAttr(paymentID)},
		Limit:                     aws.Int32(1),
	})
	if err != nil {
		return entities.Subscription{}, err
	}
	if len(out.Items) == 0 {
		return entities.Subscription{}, nil
	}
	var it subscriptionItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Subscription{}, err
	}
	return fromSubscriptionItem(it), nil
}

func (r *SubscriptionDynamoRepository) UpdateStatus(ctx context.Context, userID string, status entities.SubscriptionStatus) error {
	return r.update(ctx, userID,
		"SET #status = :status, #updated_at = :updated_at",
		map[string]string{"#status": "status"},
		map[string]types.AttributeValue{":status": stringAttr(string(status))},
	)
}

func (r *SubscriptionDynamoRepository) Activate(ctx context.Context, userID, paymentID string, activatedAt, expiresAt time.Time) error {
	return r.update(ctx, userID,
		"SET #status = :status, #last_payment_id = :pid, #activated_at = :activated_at, #expires_at = :expires_at, #updated_at = :updated_at",
		map[string]string{
			"#status":          "status",
			"#last_payment_id": "last_payment_id",
			"#activated_at":    "activated_at",
			"#expires_at":      "expires_at",
		},
		map[string]types.AttributeValue{
			":status":       stringAttr(string(entities.SubscriptionStatusActive)),
			":pid":          stringAttr(paymentID),
			":activated_at": stringAttr(formatTime(activatedAt)),
			":expires_at":   stringAttr(formatTime(expiresAt)),
		},
	)
}

func (r *SubscriptionDynamoRepository) update(ctx context.Context, userID, expr string, names map[string]string, values map[string]types.AttributeValue) error {
	values[":updated_at"] = stringAttr(formatTime(time.Now()))
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       map[string]types.AttributeValue{"user_id": stringAttr(userID)},
		ConditionExpression:       aws.String("attribute_exists(#user_id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#user_id": "user_id", "#updated_at": "updated_at"}),
		ExpressionAttributeValues: values,
	})
	if err != nil && !isConditionFailed(err) {
		return err
	}
	return nil
}

func toSubscriptionItem(s entities.Subscription) subscriptionItem {
	return subscriptionItem{
		UserID:        s.UserID,
		Status:        string(s.Status),
		LastPaymentID: s.LastPaymentID,
		ActivatedAt:   formatTimePtr(s.ActivatedAt),
		ExpiresAt:     formatTimePtr(s.ExpiresAt),
		UpdatedAt:     formatTime(s.UpdatedAt),
	}
}

func fromSubscriptionItem(it subscriptionItem) entities.Subscription {
	return entities.Subscription{
		UserID:        it.UserID,
		Status:        entities.SubscriptionStatus(it.Status),
		LastPaymentID: it.LastPaymentID,
		ActivatedAt:   parseTimePtr(it.ActivatedAt),
		ExpiresAt:     parseTimePtr(it.ExpiresAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
