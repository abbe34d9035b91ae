package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"design_studio/internal/domain/entities"
	"design_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const slaConfigKey = "sla_config"

type settingItem struct {
	Key   string `dynamodbav:"key"`
	Value string `dynamodbav:"value"`
}

// SLAConfigDynamoRepository keeps the SLA policy as a JSON document in the
// key/value settings table.
//
// Table requirements:
//   - PK: key (string)

type SLAConfigDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ISLAConfigRepository = (*SLAConfigDynamoRepository)(nil)

func NewSLAConfigDynamoRepository(ddb DynamoDBAPI, tableName string) *SLAConfigDynamoRepository {
	return &SLAConfigDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SLAConfigDynamoRepository) Get(ctx context.Context) (*entities.SLAConfig, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("key", slaConfigKey),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it settingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	if it.Value == "" {
		return nil, nil
	}
	var cfg entities.SLAConfig
	if err := json.Unmarshal([]byte(it.Value), &cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", slaConfigKey, err)
	}
	return &cfg, nil
}

func (r *SLAConfigDynamoRepository) Save(ctx context.Context, cfg entities.SLAConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(settingItem{Key: slaConfigKey, Value: string(raw)})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
