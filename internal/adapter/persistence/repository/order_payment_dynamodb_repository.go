package repository

import (
	"context"

	"design_studio/internal/domain/entities"
	"design_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const paymentsOrderIDIndex = "order_id-index"

type orderPaymentItem struct {
	ID           string                 `dynamodbav:"id"`
	OrderID      string                 `dynamodbav:"order_id"`
	Amount       float64                `dynamodbav:"amount"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// OrderPaymentDynamoRepository persists OrderPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)

type OrderPaymentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IOrderPaymentRepository = (*OrderPaymentDynamoRepository)(nil)

func NewOrderPaymentDynamoRepository(ddb DynamoDBAPI, tableName string) *OrderPaymentDynamoRepository {
	return &OrderPaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OrderPaymentDynamoRepository) Create(ctx context.Context, p entities.OrderPayment) (entities.OrderPayment, error) {
	av, err := attributevalue.MarshalMap(toOrderPaymentItem(p))
	if err != nil {
		return entities.OrderPayment{}, err
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
		return entities.OrderPayment{}, err
	}
	return p, nil
}

func (r *OrderPaymentDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderPayment, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})

	items := make([]entities.OrderPayment, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it orderPaymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromOrderPaymentItem(it))
		}
	}
	return items, nil
}

func toOrderPaymentItem(p entities.OrderPayment) orderPaymentItem {
	return orderPaymentItem{
		ID:           p.ID,
		OrderID:      p.OrderID,
		Amount:       p.Amount,
		Date:         formatTime(p.Date),
		Status:       string(p.Status),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func fromOrderPaymentItem(it orderPaymentItem) entities.OrderPayment {
	return entities.OrderPayment{
		ID:           it.ID,
		OrderID:      it.OrderID,
		Amount:       it.Amount,
		Date:         parseTime(it.Date),
		Status:       entities.PaymentStatus(it.Status),
		MPPayload:    it.MPPayload,
		MPPayloadRaw: []byte(it.MPPayloadRaw),
	}
}
