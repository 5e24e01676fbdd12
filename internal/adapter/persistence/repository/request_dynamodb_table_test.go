package repository

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestRequestsTableInput(t *testing.T) {
	in := requestsTableInput("payment_requests")

	if aws.ToString(in.TableName) != "payment_requests" {
		t.Fatalf("unexpected table: %s", aws.ToString(in.TableName))
	}
	if in.BillingMode != types.BillingModePayPerRequest {
		t.Fatalf("expected on-demand billing, got %s", in.BillingMode)
	}
	if len(in.KeySchema) != 1 || aws.ToString(in.KeySchema[0].AttributeName) != "id" {
		t.Fatalf("unexpected key schema: %+v", in.KeySchema)
	}
	if len(in.GlobalSecondaryIndexes) != 1 {
		t.Fatalf("expected one GSI, got %d", len(in.GlobalSecondaryIndexes))
	}
	gsi := in.GlobalSecondaryIndexes[0]
	if aws.ToString(gsi.IndexName) != RequestsBatchIDIndex || aws.ToString(gsi.KeySchema[0].AttributeName) != "batch_id" {
		t.Fatalf("unexpected GSI: %+v", gsi)
	}
	if gsi.Projection.ProjectionType != types.ProjectionTypeAll {
		t.Fatalf("expected ALL projection, got %s", gsi.Projection.ProjectionType)
	}
}
