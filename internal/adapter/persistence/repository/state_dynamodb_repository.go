package repository

import (
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"web_estimate/internal/clock"
	"web_estimate/internal/usecase/interfaces"
)

const defaultStateTableName = "estimate_state"

type stateItem struct {
	ID        string `dynamodbav:"id"`
	Value     string `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// StateDynamoRepository keeps saved selections in DynamoDB, one item per key.
//
// Table requirements:
//   - PK: id (string)
//
// Writes are whole-value overwrites; the last writer wins.

type StateDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	clock     clock.Clock
}

var _ interfaces.IKeyValueStore = (*StateDynamoRepository)(nil)

func NewStateDynamoRepository(ddb dynamoAPI, tableName string, clk clock.Clock) *StateDynamoRepository {
	if strings.TrimSpace(tableName) == "" {
		tableName = defaultStateTableName
	}
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &StateDynamoRepository{ddb: ddb, tableName: tableName, clock: clk}
}

func (r *StateDynamoRepository) Get(ctx context.Context, key string) (string, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            keyOf(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", false, err
	}
	if len(out.Item) == 0 {
		return "", false, nil
	}

	var it stateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", false, err
	}
	return it.Value, true, nil
}

func (r *StateDynamoRepository) Set(ctx context.Context, key, value string) error {
	av, err := attributevalue.MarshalMap(stateItem{
		ID:        key,
		Value:     value,
		UpdatedAt: r.clock.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *StateDynamoRepository) Delete(ctx context.Context, key string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       keyOf(key),
	})
	return err
}
