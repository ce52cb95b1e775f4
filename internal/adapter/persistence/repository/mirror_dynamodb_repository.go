package repository

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"quotation_desk/internal/domain/entities"
	"quotation_desk/internal/usecase/interfaces"
)

type dynamoPutter interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type mirrorRecordItem struct {
	ID         string `dynamodbav:"id"`
	BaseID     string `dynamodbav:"base_id"`
	Date       string `dynamodbav:"date"`
	Type       string `dynamodbav:"type"`
	Number     string `dynamodbav:"number"`
	Amount     string `dynamodbav:"amount"`
	ClientName string `dynamodbav:"client_name"`
	Phone      string `dynamodbav:"phone,omitempty"`
	Location   string `dynamodbav:"location,omitempty"`
	Note       string `dynamodbav:"note,omitempty"`
	MirroredAt string `dynamodbav:"mirrored_at"`
}

type mirrorCustomerItem struct {
	ID           string `dynamodbav:"id"`
	ClientName   string `dynamodbav:"client_name"`
	Phone        string `dynamodbav:"phone,omitempty"`
	Location     string `dynamodbav:"location,omitempty"`
	Email        string `dynamodbav:"email,omitempty"`
	Status       string `dynamodbav:"status,omitempty"`
	LastActivity string `dynamodbav:"last_activity,omitempty"`
	MirroredAt   string `dynamodbav:"mirrored_at"`
}

// MirrorTables names the DynamoDB tables used by the mirror.
//
// Table requirements: PK id (string) on each table. Quotations get their own
// table; invoices and receipts share the records table.
type MirrorTables struct {
	Records    string
	Customers  string
	Quotations string
}

// DynamoMirrorRepository copies saved documents to DynamoDB. Every document
// gets a fresh id, so the mirror is an append-only history.
type DynamoMirrorRepository struct {
	ddb    dynamoPutter
	tables MirrorTables
	log    *zap.Logger
	now    func() time.Time
}

var _ interfaces.ICloudMirror = (*DynamoMirrorRepository)(nil)

func NewDynamoMirrorRepository(ddb *dynamodb.Client, tables MirrorTables, log *zap.Logger) *DynamoMirrorRepository {
	return newDynamoMirrorRepository(ddb, tables, log)
}

func newDynamoMirrorRepository(ddb dynamoPutter, tables MirrorTables, log *zap.Logger) *DynamoMirrorRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &DynamoMirrorRepository{ddb: ddb, tables: tables, log: log, now: time.Now}
}

func (r *DynamoMirrorRepository) SaveRecord(ctx context.Context, rec entities.Record) bool {
	table := r.tables.Records
	if rec.Type == entities.RecordTypeQuotation {
		table = r.tables.Quotations
	}
	it := mirrorRecordItem{
		ID:         uuid.NewString(),
		BaseID:     rec.BaseID,
		Date:       rec.DateString(),
		Type:       string(rec.Type),
		Number:     rec.Number,
		Amount:     rec.Amount.StringFixed(2),
		ClientName: rec.ClientName,
		Phone:      rec.Phone,
		Location:   rec.Location,
		Note:       rec.Note,
		MirroredAt: r.now().UTC().Format(time.RFC3339Nano),
	}
	return r.put(ctx, table, it, zap.String("number", rec.Number))
}

func (r *DynamoMirrorRepository) SaveCustomer(ctx context.Context, c entities.Customer) bool {
	it := mirrorCustomerItem{
		ID:           uuid.NewString(),
		ClientName:   c.ClientName,
		Phone:        c.Phone,
		Location:     c.Location,
		Email:        c.Email,
		Status:       c.Status,
		LastActivity: c.LastActivity,
		MirroredAt:   r.now().UTC().Format(time.RFC3339Nano),
	}
	return r.put(ctx, r.tables.Customers, it, zap.String("client_name", c.ClientName))
}

func (r *DynamoMirrorRepository) put(ctx context.Context, table string, item any, field zap.Field) bool {
	if r == nil || r.ddb == nil || table == "" {
		return false
	}
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		r.log.Warn("[mirror][dynamodb] marshal failed", zap.String("table", table), field, zap.Error(err))
		return false
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		r.log.Warn("[mirror][dynamodb] put failed", zap.String("table", table), field, zap.Error(err))
		return false
	}
	r.log.Debug("[mirror][dynamodb] saved", zap.String("table", table), field)
	return true
}
