package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"faepa_workflow/internal/domain/entities"
	"faepa_workflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultRequestsTableName = "payment_requests"
	RequestsBatchIDIndex     = "batch_id-index"

	// TransactWriteItems accepts at most 100 actions.
	maxTransactItems = 100
)

type requestItem struct {
	ID            string `dynamodbav:"id"`
	BatchID       string `dynamodbav:"batch_id"`
	SubmissionID  string `dynamodbav:"submission_id"`
	Status        string `dynamodbav:"status"`
	ProviderName  string `dynamodbav:"provider_name"`
	ProviderValue string `dynamodbav:"provider_value"`

	SnapshotPayment []entities.SnapshotField `dynamodbav:"snapshot_payment"`
	SnapshotService []entities.SnapshotField `dynamodbav:"snapshot_service"`
	SnapshotPayout  []entities.SnapshotField `dynamodbav:"snapshot_payout"`

	BatchTitle       string `dynamodbav:"batch_title,omitempty"`
	BatchMessage     string `dynamodbav:"batch_message,omitempty"`
	CoordinatorID    string `dynamodbav:"coordinator_id,omitempty"`
	CoordinatorEmail string `dynamodbav:"coordinator_email,omitempty"`
	RequesterID      string `dynamodbav:"requester_id,omitempty"`
	RequesterEmail   string `dynamodbav:"requester_email,omitempty"`
	CreatedBy        string `dynamodbav:"created_by,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`

	DecisionAt   string `dynamodbav:"decision_at,omitempty"`
	DecisionBy   string `dynamodbav:"decision_by,omitempty"`
	DecisionNote string `dynamodbav:"decision_note,omitempty"`

	BatchSubmitted   bool   `dynamodbav:"batch_submitted"`
	BatchSubmittedAt string `dynamodbav:"batch_submitted_at,omitempty"`
	BatchSubmittedBy string `dynamodbav:"batch_submitted_by,omitempty"`

	FaepaForwarded     bool   `dynamodbav:"faepa_forwarded"`
	FaepaForwardedAt   string `dynamodbav:"faepa_forwarded_at,omitempty"`
	FaepaForwardedBy   string `dynamodbav:"faepa_forwarded_by,omitempty"`
	FaepaForwardedNote string `dynamodbav:"faepa_forwarded_note,omitempty"`

	FaepaPaid              bool   `dynamodbav:"faepa_paid"`
	FaepaPaidAt            string `dynamodbav:"faepa_paid_at,omitempty"`
	FaepaPaidBy            string `dynamodbav:"faepa_paid_by,omitempty"`
	FaepaPaymentNote       string `dynamodbav:"faepa_payment_note,omitempty"`
	FaepaPaymentAttachment string `dynamodbav:"faepa_payment_attachment,omitempty"`
	FaepaPaymentReceipt    string `dynamodbav:"faepa_payment_receipt,omitempty"`

	Version int64 `dynamodbav:"version"`
}

// RequestDynamoRepository persists RequestRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: batch_id-index (PK: batch_id)
//
// Every write is conditioned on the version attribute read by the caller.

type RequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRequestRepository = (*RequestDynamoRepository)(nil)

func NewRequestDynamoRepository(ddb *dynamodb.Client, tableName string) *RequestDynamoRepository {
	if tableName == "" {
		tableName = DefaultRequestsTableName
	}
	return &RequestDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *RequestDynamoRepository) CreateBatch(ctx context.Context, records []entities.RequestRecord) error {
	for start := 0; start < len(records); start += maxTransactItems {
		end := start + maxTransactItems
		if end > len(records) {
			end = len(records)
		}

		items := make([]types.TransactWriteItem, 0, end-start)
		for _, rec := range records[start:end] {
			av, err := attributevalue.MarshalMap(toRequestItem(rec))
			if err != nil {
				return err
			}
			items = append(items, types.TransactWriteItem{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			})
		}

		if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
			return fmt.Errorf("create request batch: %w", err)
		}
	}
	return nil
}

func (r *RequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.RequestRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RequestRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.RequestRecord{}, nil
	}

	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RequestRecord{}, err
	}
	return fromRequestItem(it), nil
}

func (r *RequestDynamoRepository) ListByBatchID(ctx context.Context, batchID string) ([]entities.RequestRecord, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(RequestsBatchIDIndex),
		KeyConditionExpression: aws.String("batch_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: batchID},
		},
	})

	var records []entities.RequestRecord
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		page, err := unmarshalRequestItems(out.Items)
		if err != nil {
			return nil, err
		}
		records = append(records, page...)
	}
	sortRecords(records)
	return records, nil
}

func (r *RequestDynamoRepository) List(ctx context.Context) ([]entities.RequestRecord, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	var records []entities.RequestRecord
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		page, err := unmarshalRequestItems(out.Items)
		if err != nil {
			return nil, err
		}
		records = append(records, page...)
	}
	sortRecords(records)
	return records, nil
}

// Update replaces the stored item when its version still matches rec.Version
// and returns the record with the bumped version.
func (r *RequestDynamoRepository) Update(ctx context.Context, rec entities.RequestRecord) (entities.RequestRecord, error) {
	expected := rec.Version
	rec.Version = expected + 1

	av, err := attributevalue.MarshalMap(toRequestItem(rec))
	if err != nil {
		return entities.RequestRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expected)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.RequestRecord{}, interfaces.ErrVersionConflict
		}
		return entities.RequestRecord{}, err
	}
	return rec, nil
}

func unmarshalRequestItems(raw []map[string]types.AttributeValue) ([]entities.RequestRecord, error) {
	records := make([]entities.RequestRecord, 0, len(raw))
	for _, av := range raw {
		var it requestItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		records = append(records, fromRequestItem(it))
	}
	return records, nil
}

// sortRecords orders records by creation, then id; the batch index has no sort key.
func sortRecords(records []entities.RequestRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.Before(records[j].CreatedAt)
		}
		return records[i].ID < records[j].ID
	})
}

func toRequestItem(r entities.RequestRecord) requestItem {
	return requestItem{
		ID:            r.ID,
		BatchID:       r.BatchID,
		SubmissionID:  r.SubmissionID,
		Status:        string(r.Status),
		ProviderName:  r.ProviderName,
		ProviderValue: r.ProviderValue,

		SnapshotPayment: sectionOrEmpty(r.SnapshotPayment),
		SnapshotService: sectionOrEmpty(r.SnapshotService),
		SnapshotPayout:  sectionOrEmpty(r.SnapshotPayout),

		BatchTitle:       r.BatchTitle,
		BatchMessage:     r.BatchMessage,
		CoordinatorID:    r.CoordinatorID,
		CoordinatorEmail: r.CoordinatorEmail,
		RequesterID:      r.RequesterID,
		RequesterEmail:   r.RequesterEmail,
		CreatedBy:        r.CreatedBy,

		CreatedAt: formatTime(r.CreatedAt),
		UpdatedAt: formatTime(r.UpdatedAt),

		DecisionAt:   formatTime(r.DecisionAt),
		DecisionBy:   r.DecisionBy,
		DecisionNote: r.DecisionNote,

		BatchSubmitted:   r.BatchSubmitted,
		BatchSubmittedAt: formatTime(r.BatchSubmittedAt),
		BatchSubmittedBy: r.BatchSubmittedBy,

		FaepaForwarded:     r.FaepaForwarded,
		FaepaForwardedAt:   formatTime(r.FaepaForwardedAt),
		FaepaForwardedBy:   r.FaepaForwardedBy,
		FaepaForwardedNote: r.FaepaForwardedNote,

		FaepaPaid:              r.FaepaPaid,
		FaepaPaidAt:            formatTime(r.FaepaPaidAt),
		FaepaPaidBy:            r.FaepaPaidBy,
		FaepaPaymentNote:       r.FaepaPaymentNote,
		FaepaPaymentAttachment: r.FaepaPaymentAttachment,
		FaepaPaymentReceipt:    r.FaepaPaymentReceipt,

		Version: r.Version,
	}
}

func fromRequestItem(it requestItem) entities.RequestRecord {
	return entities.RequestRecord{
		ID:            it.ID,
		BatchID:       it.BatchID,
		SubmissionID:  it.SubmissionID,
		Status:        entities.NormalizeRequestStatus(it.Status),
		ProviderName:  it.ProviderName,
		ProviderValue: it.ProviderValue,

		SnapshotPayment: it.SnapshotPayment,
		SnapshotService: it.SnapshotService,
		SnapshotPayout:  it.SnapshotPayout,

		BatchTitle:       it.BatchTitle,
		BatchMessage:     it.BatchMessage,
		CoordinatorID:    it.CoordinatorID,
		CoordinatorEmail: it.CoordinatorEmail,
		RequesterID:      it.RequesterID,
		RequesterEmail:   it.RequesterEmail,
		CreatedBy:        it.CreatedBy,

		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),

		DecisionAt:   parseTime(it.DecisionAt),
		DecisionBy:   it.DecisionBy,
		DecisionNote: it.DecisionNote,

		BatchSubmitted:   it.BatchSubmitted,
		BatchSubmittedAt: parseTime(it.BatchSubmittedAt),
		BatchSubmittedBy: it.BatchSubmittedBy,

		FaepaForwarded:     it.FaepaForwarded,
		FaepaForwardedAt:   parseTime(it.FaepaForwardedAt),
		FaepaForwardedBy:   it.FaepaForwardedBy,
		FaepaForwardedNote: it.FaepaForwardedNote,

		FaepaPaid:              it.FaepaPaid,
		FaepaPaidAt:            parseTime(it.FaepaPaidAt),
		FaepaPaidBy:            it.FaepaPaidBy,
		FaepaPaymentNote:       it.FaepaPaymentNote,
		FaepaPaymentAttachment: it.FaepaPaymentAttachment,
		FaepaPaymentReceipt:    it.FaepaPaymentReceipt,

		Version: it.Version,
	}
}
