package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"quotation_desk/internal/domain/entities"
	"quotation_desk/internal/domain/matching"
	"quotation_desk/internal/domain/normalize"
	"quotation_desk/internal/usecase/interfaces"
)

// ICustomerUseCase keeps the customer table in step with saved documents.
type ICustomerUseCase interface {
	// Upsert finds or creates the customer behind a save. It never fails:
	// every backend error is logged and swallowed.
	Upsert(ctx context.Context, name, phone, location string)
	List(ctx context.Context) ([]entities.Customer, interfaces.Source)
}

type CustomerUseCase struct {
	gateway interfaces.IPersistenceGateway
	mirror  interfaces.ICloudMirror
	log     *zap.Logger
	now     func() time.Time
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(gateway interfaces.IPersistenceGateway, mirror interfaces.ICloudMirror, log *zap.Logger) *CustomerUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &CustomerUseCase{gateway: gateway, mirror: mirror, log: log, now: time.Now}
}

func (u *CustomerUseCase) Upsert(ctx context.Context, name, phone, location string) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	location = strings.TrimSpace(location)
	if name == "" {
		return
	}
	properName := normalize.ProperCase(name)
	properLocation := normalize.ProperCase(location)

	err := u.gateway.UpsertCustomerPrimary(ctx, properName, phone, properLocation)
	if err == nil {
		u.log.Debug("[customer][usecase] upserted in primary store", zap.String("client_name", properName))
		u.mirrorCustomer(ctx, entities.Customer{ClientName: properName, Phone: phone, Location: properLocation, Status: entities.CustomerStatusActive})
		return
	}
	if !errors.Is(err, interfaces.ErrPrimaryUnavailable) {
		u.log.Warn("[customer][usecase] primary upsert failed, using flat file", zap.String("client_name", properName), zap.Error(err))
	}

	customers, err := u.gateway.ReadCustomersFlat(ctx)
	if err != nil {
		u.log.Warn("[customer][usecase] customers file unreadable, not rewritten", zap.String("client_name", properName), zap.Error(err))
		return
	}
	today := u.now().Format(entities.DateLayout)

	var saved entities.Customer
	if idx, ok := matching.MatchCustomer(name, phone, customers); ok {
		c := &customers[idx]
		c.ClientName = properName
		if phone != "" {
			c.Phone = phone
		}
		if location != "" {
			c.Location = properLocation
		}
		if strings.TrimSpace(c.Status) == "" {
			c.Status = entities.CustomerStatusActive
		}
		c.LastActivity = today
		saved = *c
	} else {
		saved = entities.Customer{
			ClientName:   properName,
			Phone:        phone,
			Location:     properLocation,
			Status:       entities.CustomerStatusActive,
			LastActivity: today,
		}
		customers = append(customers, saved)
	}

	if err := u.gateway.WriteCustomers(ctx, customers); err != nil {
		u.log.Warn("[customer][usecase] customers write failed", zap.String("client_name", properName), zap.Error(err))
	}
	u.mirrorCustomer(ctx, saved)
}

func (u *CustomerUseCase) mirrorCustomer(ctx context.Context, c entities.Customer) {
	if u.mirror == nil {
		return
	}
	if !u.mirror.SaveCustomer(ctx, c) {
		u.log.Warn("[customer][usecase] cloud mirror did not accept customer", zap.String("client_name", c.ClientName))
	}
}

func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, interfaces.Source) {
	return u.gateway.ReadCustomers(ctx)
}
