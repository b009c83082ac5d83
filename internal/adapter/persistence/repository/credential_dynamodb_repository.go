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

type credentialItem struct {
	UserID      string `dynamodbav:"user_id"`
	AccessToken string `dynamodbav:"access_token"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// CredentialDynamoRepository stores seller Mercado Pago tokens (PK user_id).
type CredentialDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ICredentialRepository = (*CredentialDynamoRepository)(nil)

func NewCredentialDynamoRepository(ddb DynamoDBAPI, tableName string) *CredentialDynamoRepository {
	return &CredentialDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CredentialDynamoRepository) GetBySellerID(ctx context.Context, sellerID string) (entities.Credential, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       map[string]types.AttributeValue{"user_id": stringAttr(sellerID)},
	})
	if err != nil {
		return entities.Credential{}, err
	}
	if len(out.Item) == 0 {
		return entities.Credential{}, nil
	}
	var it credentialItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Credential{}, err
	}
	return entities.Credential{SellerID: it.UserID, AccessToken: it.AccessToken, UpdatedAt: parseTime(it.UpdatedAt)}, nil
}

func (r *CredentialDynamoRepository) Upsert(ctx context.Context, c entities.Credential) error {
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = time.Now()
	}
	av, err := attributevalue.MarshalMap(credentialItem{
		UserID:      c.SellerID,
		AccessToken: c.AccessToken,
		UpdatedAt:   formatTime(c.UpdatedAt),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{TableName: aws.String(r.tableName), Item: av})
	return err
}
