package interfaces

import (
	"context"

	"quotation_desk/internal/domain/entities"
)

// ICloudMirror copies saved documents to a cloud document store. Failures are
// reported as false and never interrupt the caller.
type ICloudMirror interface {
	SaveRecord(ctx context.Context, r entities.Record) bool
	SaveCustomer(ctx context.Context, c entities.Customer) bool
}
