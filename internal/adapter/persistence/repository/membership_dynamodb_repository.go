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

type membershipItem struct {
	Key        string `dynamodbav:"membership_key"`
	ProductID  string `dynamodbav:"product_id"`
	BuyerEmail string `dynamodbav:"buyer_email"`
	BuyerName  string `dynamodbav:"buyer_name"`
	Status     string `dynamodbav:"status"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// MembershipDynamoRepository keys memberships by "product_id#buyer_email" so
// a buyer holds at most one membership per product.
type MembershipDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IMembershipRepository = (*MembershipDynamoRepository)(nil)

func NewMembershipDynamoRepository(ddb DynamoDBAPI, tableName string) *MembershipDynamoRepository {
	return &MembershipDynamoRepository{ddb: ddb, tableName: tableName}
}

// CreateIfAbsent inserts the membership unless the product/buyer pair already
// has one, so re-opening checkout never touches an existing grant.
func (r *MembershipDynamoRepository) CreateIfAbsent(ctx context.Context, m entities.Membership) error {
	now := time.Now()
	created := m.CreatedAt
	if created.IsZero() {
		created = now
	}
	item, err := attributevalue.MarshalMap(membershipItem{
		Key:        entities.MembershipKey(m.ProductID, m.BuyerEmail),
		ProductID:  m.ProductID,
		BuyerEmail: m.BuyerEmail,
		BuyerName:  m.BuyerName,
		Status:     string(m.Status),
		CreatedAt:  formatTime(created),
		UpdatedAt:  formatTime(now),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     item,
		ConditionExpression:      aws.String("attribute_not_exists(#key)"),
		ExpressionAttributeNames: map[string]string{"#key": "membership_key"},
	})
	if err != nil && !isConditionFailed(err) {
		return err
	}
	return nil
}

func (r *MembershipDynamoRepository) GetByProductAndBuyer(ctx context.Context, productID, buyerEmail string) (entities.Membership, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"membership_key": stringAttr(entities.MembershipKey(productID, buyerEmail)),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Membership{}, err
	}
	if len(out.Item) == 0 {
		return entities.Membership{}, nil
	}
	var it membershipItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Membership{}, err
	}
	return fromMembershipItem(it), nil
}

// UpdateStatusByProductAndBuyer is a no-op when no membership exists, or when
// a pre-approval status would replace an approved one.
func (r *MembershipDynamoRepository) UpdateStatusByProductAndBuyer(ctx context.Context, productID, buyerEmail string, status entities.PaymentStatus) error {
	condition := "attribute_exists(#key)"
	values := map[string]types.AttributeValue{
		":status":     stringAttr(string(status)),
		":updated_at": stringAttr(formatTime(time.Now())),
	}
	if status.IsPreApproval() {
		condition += " AND #status <> :approved"
		values[":approved"] = stringAttr(string(entities.PaymentStatusApproved))
	}
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"membership_key": stringAttr(entities.MembershipKey(productID, buyerEmail)),
		},
		ConditionExpression: aws.String(condition),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#key":        "membership_key",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: values,
	})
	if err != nil && !isConditionFailed(err) {
		return err
	}
	return nil
}

func fromMembershipItem(it membershipItem) entities.Membership {
	return entities.Membership{
		ProductID:  it.ProductID,
		BuyerEmail: it.BuyerEmail,
		BuyerName:  it.BuyerName,
		Status:     entities.PaymentStatus(it.Status),
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
