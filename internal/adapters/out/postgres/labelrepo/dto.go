// Package labelrepo persists purchased shipping labels per order. Rows are
// keyed by a surrogate UUID and unique per (order_id, label_id) so a label
// written twice is updated in place.
package labelrepo

import (
	"time"

	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/core/domain/model/label"

	"github.com/google/uuid"
)

// LabelDTO is the row of the labels table.
type LabelDTO struct {
	ID               uuid.UUID     `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_labels_order_label,priority:1"`
	LabelID          string        `gorm:"not null;uniqueIndex:idx_labels_order_label,priority:2"`
	CarrierID        string
	ServiceName      string
	PackageName      string
	Tracking         string
	Rate             float64
	Currency         string        `gorm:"type:varchar(3)"`
	Status           string        `gorm:"index"`
	CreatedDate      int64         `gorm:"index"`
	RefundableAmount float64
	ProductNames     []string      `gorm:"type:jsonb;serializer:json"`
	Refund           *label.Refund `gorm:"type:jsonb;serializer:json"`
	UpdatedAt        time.Time
}

// TableName overrides GORM's default naming to use "labels".
func (LabelDTO) TableName() string {
	return "labels"
}

// updatableColumns are overwritten when a stored label is saved again.
var updatableColumns = []string{
	"carrier_id",
	"service_name",
	"package_name",
	"tracking",
	"rate",
	"currency",
	"status",
	"created_date",
	"refundable_amount",
	"product_names",
	"refund",
	"updated_at",
}

// fromDomain maps a label record of an order to a fresh row. The row ID is
// only used on insert.
func fromDomain(orderID kernel.OrderID, r label.Record) LabelDTO {
	r = r.Clone()
	return LabelDTO{
		ID:               uuid.New(),
		OrderID:          orderID.UUID(),
		LabelID:          r.LabelID,
		CarrierID:        r.CarrierID,
		ServiceName:      r.ServiceName,
		PackageName:      r.PackageName,
		Tracking:         r.Tracking,
		Rate:             r.Rate,
		Currency:         r.Currency,
		Status:           r.Status,
		CreatedDate:      r.CreatedDate,
		RefundableAmount: r.RefundableAmount,
		ProductNames:     r.ProductNames,
		Refund:           r.Refund,
	}
}

// toDomain restores a label record. StatusUpdated is session state and is
// never stored, so restored labels are always due for a status refresh.
func toDomain(dto LabelDTO) label.Record {
	productNames := dto.ProductNames
	if productNames == nil {
		productNames = []string{}
	}

	return label.Record{
		LabelID:          dto.LabelID,
		CarrierID:        dto.CarrierID,
		ServiceName:      dto.ServiceName,
		PackageName:      dto.PackageName,
		Tracking:         dto.Tracking,
		Rate:             dto.Rate,
		Currency:         dto.Currency,
		Status:           dto.Status,
		CreatedDate:      dto.CreatedDate,
		RefundableAmount: dto.RefundableAmount,
		ProductNames:     productNames,
		Refund:           dto.Refund,
	}.Clone()
}
