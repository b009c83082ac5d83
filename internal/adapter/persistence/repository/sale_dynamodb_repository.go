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

const (
	salesPaymentIDIndex = "payment_id-index"
	salesProductIDIndex = "product_id-index"
)

type saleItem struct {
	ID            string `dynamodbav:"id"`
	ProductID     string `dynamodbav:"product_id"`
	SellerID      string `dynamodbav:"seller_id"`
	BuyerEmail    string `dynamodbav:"buyer_email"`
	BuyerName     string `dynamodbav:"buyer_name"`
	Amount        string `dynamodbav:"amount"`
	PaymentID     string `dynamodbav:"payment_id,omitempty"`
	PaymentStatus string `dynamodbav:"payment_status"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// SaleDynamoRepository persists Sale entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI payment_id-index: payment_id (string)
//   - GSI product_id-index: product_id (string)
type SaleDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ISaleRepository = (*SaleDynamoRepository)(nil)

func NewSaleDynamoRepository(ddb DynamoDBAPI, tableName string) *SaleDynamoRepository {
	return &SaleDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SaleDynamoRepository) Create(ctx context.Context, s entities.Sale) (entities.Sale, error) {
	av, err := attributevalue.MarshalMap(toSaleItem(s))
	if err != nil {
		return entities.Sale{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Sale{}, err
	}
	return s, nil
}

func (r *SaleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Sale, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"id": stringAttr(id)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Sale{}, err
	}
	if len(out.Item) == 0 {
		return entities.Sale{}, nil
	}
	var it saleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Sale{}, err
	}
	return fromSaleItem(it), nil
}

func (r *SaleDynamoRepository) GetByPaymentID(ctx context.Context, paymentID string) (entities.Sale, error) {
	sales, err := r.query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(salesPaymentIDIndex),
		KeyConditionExpression:    aws.String("payment_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{":pid": stringAttr(paymentID)},
	})
	if err != nil || len(sales) == 0 {
		return entities.Sale{}, err
	}
	return latestSale(sales), nil
}

func (r *SaleDynamoRepository) FindLatestByProductAndBuyer(ctx context.Context, productID, buyerEmail string) (entities.Sale, error) {
	sales, err := r.query(ctx, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(salesProductIDIndex),
		KeyConditionExpression:   aws.String("product_id = :pid"),
		FilterExpression:         aws.String("#email = :email"),
		ExpressionAttributeNames: map[string]string{"#email": "buyer_email"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid":   stringAttr(productID),
			":email": stringAttr(buyerEmail),
		},
	})
	if err != nil || len(sales) == 0 {
		return entities.Sale{}, err
	}
	return latestSale(sales), nil
}

func (r *SaleDynamoRepository) UpdateStatusByPaymentID(ctx context.Context, paymentID string, status entities.PaymentStatus) error {
	sale, err := r.GetByPaymentID(ctx, paymentID)
	if err != nil || sale.ID == "" {
		return err
	}
	return r.UpdateStatusByID(ctx, sale.ID, status)
}

func (r *SaleDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.PaymentStatus) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 map[string]types.AttributeValue{"id": stringAttr(id)},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "payment_status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     stringAttr(string(status)),
			":updated_at": stringAttr(formatTime(time.Now())),
		},
	})
	if err != nil && !isConditionFailed(err) {
		return err
	}
	return nil
}

func (r *SaleDynamoRepository) query(ctx context.Context, in *dynamodb.QueryInput) ([]entities.Sale, error) {
	var sales []entities.Sale
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		var items []saleItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			sales = append(sales, fromSaleItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return sales, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func latestSale(sales []entities.Sale) entities.Sale {
	latest := sales[0]
	for _, s := range sales[1:] {
		if s.CreatedAt.After(latest.CreatedAt) {
			latest = s
		}
	}
	return latest
}

func toSaleItem(s entities.Sale) saleItem {
	return saleItem{
		ID:            s.ID,
		ProductID:     s.ProductID,
		SellerID:      s.SellerID,
		BuyerEmail:    s.BuyerEmail,
		BuyerName:     s.BuyerName,
		Amount:        s.Amount.String(),
		PaymentID:     s.PaymentID,
		PaymentStatus: string(s.PaymentStatus),
		CreatedAt:     formatTime(s.CreatedAt),
		UpdatedAt:     formatTime(s.UpdatedAt),
	}
}

func fromSaleItem(it saleItem) entities.Sale {
	return entities.Sale{
		ID:            it.ID,
		ProductID:     it.ProductID,
		SellerID:      it.SellerID,
		BuyerEmail:    it.BuyerEmail,
		BuyerName:     it.BuyerName,
		Amount:        parseDecimal(it.Amount),
		PaymentID:     it.PaymentID,
		PaymentStatus: entities.PaymentStatus(it.PaymentStatus),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
