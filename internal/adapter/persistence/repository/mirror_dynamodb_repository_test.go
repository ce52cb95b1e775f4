package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"

	"quotation_desk/internal/domain/entities"
)

type fakePutter struct {
	inputs []*dynamodb.PutItemInput
	err    error
}

func (f *fakePutter) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.inputs = append(f.inputs, in)
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.PutItemOutput{}, nil
}

func TestDynamoMirrorRepository_SaveRecord(t *testing.T) {
	tables := MirrorTables{Records: "records", Customers: "customers", Quotations: "quotations"}

	t.Run("quotation goes to quotations table", func(t *testing.T) {
		ddb := &fakePutter{}
		repo := newDynamoMirrorRepository(ddb, tables, nil)
		ok := repo.SaveRecord(context.Background(), entities.Record{Type: entities.RecordTypeQuotation, Number: "Q20240001", Amount: decimal.NewFromInt(970)})
		if !ok || len(ddb.inputs) != 1 {
			t.Fatalf("expected one put, got %d (ok=%v)", len(ddb.inputs), ok)
		}
		in := ddb.inputs[0]
		if *in.TableName != "quotations" {
			t.Fatalf("unexpected table %s", *in.TableName)
		}
		amount, ok := in.Item["amount"].(*types.AttributeValueMemberS)
		if !ok || amount.Value != "970.00" {
			t.Fatalf("unexpected amount attribute: %#v", in.Item["amount"])
		}
	})

	t.Run("invoice goes to records table", func(t *testing.T) {
		ddb := &fakePutter{}
		repo := newDynamoMirrorRepository(ddb, tables, nil)
		repo.SaveRecord(context.Background(), entities.Record{Type: entities.RecordTypeInvoice, Number: "INV-1"})
		if *ddb.inputs[0].TableName != "records" {
			t.Fatalf("unexpected table %s", *ddb.inputs[0].TableName)
		}
	})

	t.Run("failure reports false", func(t *testing.T) {
		repo := newDynamoMirrorRepository(&fakePutter{err: errors.New("throttled")}, tables, nil)
		if repo.SaveCustomer(context.Background(), entities.Customer{ClientName: "Ali"}) {
			t.Fatal("expected false on put failure")
		}
	})

	t.Run("missing client reports false", func(t *testing.T) {
		repo := newDynamoMirrorRepository(nil, tables, nil)
		if repo.SaveRecord(context.Background(), entities.Record{}) {
			t.Fatal("expected false without client")
		}
	})
}
