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

// BatchGetItem accepts at most 100 keys per request.
const batchGetLimit = 100

type designPackageItem struct {
	ID            string  `dynamodbav:"id"`
	Name          string  `dynamodbav:"name"`
	CategoryID    string  `dynamodbav:"category_id,omitempty"`
	Price         float64 `dynamodbav:"price"`
	EstimatedDays *int    `dynamodbav:"estimated_days,omitempty"`
}

// DesignPackageDynamoRepository persists the package catalog in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type DesignPackageDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IDesignPackageRepository = (*DesignPackageDynamoRepository)(nil)

func NewDesignPackageDynamoRepository(ddb DynamoDBAPI, tableName string) *DesignPackageDynamoRepository {
	return &DesignPackageDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *DesignPackageDynamoRepository) Upsert(ctx context.Context, p entities.DesignPackage) (entities.DesignPackage, error) {
	av, err := attributevalue.MarshalMap(toDesignPackageItem(p))
	if err != nil {
		return entities.DesignPackage{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.DesignPackage{}, err
	}
	return p, nil
}

func (r *DesignPackageDynamoRepository) GetByID(ctx context.Context, id string) (entities.DesignPackage, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       stringKey("id", id),
	})
	if err != nil {
		return entities.DesignPackage{}, err
	}
	if len(out.Item) == 0 {
		return entities.DesignPackage{}, nil
	}

	var it designPackageItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DesignPackage{}, err
	}
	return fromDesignPackageItem(it), nil
}

// ListByIDs returns the packages found among ids, keyed by id. Missing ids
// are simply absent from the result.
func (r *DesignPackageDynamoRepository) ListByIDs(ctx context.Context, ids []string) (map[string]entities.DesignPackage, error) {
	out := make(map[string]entities.DesignPackage, len(ids))
	for start := 0; start < len(ids); start += batchGetLimit {
		end := min(start+batchGetLimit, len(ids))

		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, id := range ids[start:end] {
			keys = append(keys, stringKey("id", id))
		}
		request := map[string]types.KeysAndAttributes{
			r.tableName: {Keys: keys},
		}

		for len(request) > 0 {
			res, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, err
			}
			for _, raw := range res.Responses[r.tableName] {
				var it designPackageItem
				if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
					return nil, err
				}
				out[it.ID] = fromDesignPackageItem(it)
			}
			request = res.UnprocessedKeys
		}
	}
	return out, nil
}

func toDesignPackageItem(p entities.DesignPackage) designPackageItem {
	return designPackageItem{
		ID:            p.ID,
		Name:          p.Name,
		CategoryID:    p.CategoryID,
		Price:         p.Price,
		EstimatedDays: p.EstimatedDays,
	}
}

func fromDesignPackageItem(it designPackageItem) entities.DesignPackage {
	return entities.DesignPackage{
		ID:            it.ID,
		Name:          it.Name,
		CategoryID:    it.CategoryID,
		Price:         it.Price,
		EstimatedDays: it.EstimatedDays,
	}
}
