package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	log "github.com/sirupsen/logrus"
)

const tableActiveTimeout = 2 * time.Minute

// requestsTableInput describes the ledger table: id as hash key and the
// batch_id-index GSI used by ListByBatchID.
func requestsTableInput(tableName string) *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName:   aws.String(tableName),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("batch_id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
			{
				IndexName: aws.String(RequestsBatchIDIndex),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String("batch_id"), KeyType: types.KeyTypeHash},
				},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			},
		},
	}
}

// EnsureRequestsTable creates the ledger table when missing and waits for it
// to become active. It reports whether the table was created.
func EnsureRequestsTable(ctx context.Context, ddb *dynamodb.Client, tableName string) (bool, error) {
	if tableName == "" {
		tableName = DefaultRequestsTableName
	}

	_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(tableName)})
	if err == nil {
		log.Printf("[ledger][migrate] table exists table=%s", tableName)
		return false, nil
	}
	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return false, fmt.Errorf("describe table %s: %w", tableName, err)
	}

	if _, err := ddb.CreateTable(ctx, requestsTableInput(tableName)); err != nil {
		return false, fmt.Errorf("create table %s: %w", tableName, err)
	}

	waiter := dynamodb.NewTableExistsWaiter(ddb)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(tableName)}, tableActiveTimeout); err != nil {
		return true, fmt.Errorf("wait table %s: %w", tableName, err)
	}
	log.Printf("[ledger][migrate] table created table=%s", tableName)
	return true, nil
}
