package repository

import (
	"context"
	"strconv"

	"design_studio/internal/domain/entities"
	"design_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type designOrderItem struct {
	ID            string `dynamodbav:"id"`
	CustomerID    string `dynamodbav:"customer_id"`
	PackageID     string `dynamodbav:"package_id"`
	Status        string `dynamodbav:"status"`
	PaymentStatus string `dynamodbav:"payment_status"`
	RevisionsUsed int    `dynamodbav:"revisions_used"`
	MaxRevisions  int    `dynamodbav:"max_revisions"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at,omitempty"`
}

// DesignOrderDynamoRepository persists DesignOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Status changes go through TransitionStatus, which conditions the write on
// the status and revisions_used the caller read.

type DesignOrderDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IDesignOrderRepository = (*DesignOrderDynamoRepository)(nil)

func NewDesignOrderDynamoRepository(ddb DynamoDBAPI, tableName string) *DesignOrderDynamoRepository {
	return &DesignOrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *DesignOrderDynamoRepository) Create(ctx context.Context, o entities.DesignOrder) (entities.DesignOrder, error) {
	av, err := attributevalue.MarshalMap(toDesignOrderItem(o))
	if err != nil {
		return entities.DesignOrder{}, err
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
		return entities.DesignOrder{}, err
	}
	return o, nil
}

func (r *DesignOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.DesignOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DesignOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.DesignOrder{}, nil
	}

	var it designOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DesignOrder{}, err
	}
	return fromDesignOrderItem(it), nil
}

// List scans the whole table. The operator queue needs every order to rank
// and count them.
func (r *DesignOrderDynamoRepository) List(ctx context.Context) ([]entities.DesignOrder, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})

	var orders []entities.DesignOrder
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it designOrderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromDesignOrderItem(it))
		}
	}
	return orders, nil
}

func (r *DesignOrderDynamoRepository) TransitionStatus(ctx context.Context, current, next entities.DesignOrder) (entities.DesignOrder, bool, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("id", next.ID),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected AND #revisions_used = :expected_revisions"),
		UpdateExpression:    aws.String("SET #status = :status, #revisions_used = :revisions_used, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#status":         "status",
			"#revisions_used": "revisions_used",
			"#updated_at":     "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected":           &types.AttributeValueMemberS{Value: string(current.Status)},
			":expected_revisions": &types.AttributeValueMemberN{Value: strconv.Itoa(current.RevisionsUsed)},
			":status":             &types.AttributeValueMemberS{Value: string(next.Status)},
			":revisions_used":     &types.AttributeValueMemberN{Value: strconv.Itoa(next.RevisionsUsed)},
			":updated_at":         &types.AttributeValueMemberS{Value: formatTime(next.UpdatedAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.DesignOrder{}, false, nil
		}
		return entities.DesignOrder{}, false, err
	}

	var it designOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.DesignOrder{}, false, err
	}
	return fromDesignOrderItem(it), true, nil
}

// UpdatePaymentStatus leaves updated_at alone: it anchors revision deadlines.
// The write only applies while the stored payment_status differs from status,
// so a second writer of the same status gets an empty order back.
func (r *DesignOrderDynamoRepository) UpdatePaymentStatus(ctx context.Context, id string, status entities.OrderPaymentStatus) (entities.DesignOrder, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("id", id),
		ConditionExpression: aws.String("attribute_exists(#id) AND (attribute_not_exists(#payment_status) OR #payment_status <> :payment_status)"),
		UpdateExpression:    aws.String("SET #payment_status = :payment_status"),
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#payment_status": "payment_status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":payment_status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.DesignOrder{}, nil
		}
		return entities.DesignOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.DesignOrder{}, nil
	}

	var it designOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.DesignOrder{}, err
	}
	return fromDesignOrderItem(it), nil
}

func toDesignOrderItem(o entities.DesignOrder) designOrderItem {
	return designOrderItem{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		PackageID:     o.PackageID,
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		RevisionsUsed: o.RevisionsUsed,
		MaxRevisions:  o.MaxRevisions,
		CreatedAt:     formatTime(o.CreatedAt),
		UpdatedAt:     formatTime(o.UpdatedAt),
	}
}

func fromDesignOrderItem(it designOrderItem) entities.DesignOrder {
	return entities.DesignOrder{
		ID:            it.ID,
		CustomerID:    it.CustomerID,
		PackageID:     it.PackageID,
		Status:        entities.OrderStatus(it.Status),
		PaymentStatus: entities.OrderPaymentStatus(it.PaymentStatus),
		RevisionsUsed: it.RevisionsUsed,
		MaxRevisions:  it.MaxRevisions,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
