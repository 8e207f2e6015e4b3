package labelrepo

import (
	"context"
	"errors"
	"time"

	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/core/domain/model/label"
	"shippinglabel/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrLabelIDIsRequired is returned when saving a label without a carrier ID.
var ErrLabelIDIsRequired = errs.NewValueIsRequiredError("labelId")

// GormLabelRepository implements ports.LabelRepository using GORM. It also
// serves as a ports.LabelStatusSource answering from the stored copy.
type GormLabelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	now     func() time.Time
}

// aggregateTracker records the orders whose labels were written.
type aggregateTracker interface {
	TrackAggregate(id kernel.OrderID, aggregate any)
}

// NewGormLabelRepository creates a new GORM label repository.
func NewGormLabelRepository(db *gorm.DB, tracker aggregateTracker) *GormLabelRepository {
	return &GormLabelRepository{
		db:      db,
		tracker: tracker,
		now:     time.Now,
	}
}

// Save upserts every label of the order in one statement.
func (r *GormLabelRepository) Save(ctx context.Context, orderID kernel.OrderID, labels []label.Record) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if len(labels) == 0 {
		return nil
	}

	now := r.now()
	dtos := make([]LabelDTO, 0, len(labels))
	for _, l := range labels {
		if l.LabelID == "" {
			return ErrLabelIDIsRequired
		}
		dto := fromDomain(orderID, l)
		dto.UpdatedAt = now
		dtos = append(dtos, dto)
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "order_id"}, {Name: "label_id"}},
		DoUpdates: clause.AssignmentColumns(updatableColumns),
	}).Create(&dtos).Error
	if err != nil {
		return err
	}

	if r.tracker != nil {
		r.tracker.TrackAggregate(orderID, label.CloneAll(labels))
	}
	return nil
}

// GetByOrder returns the labels of an order, most recent first.
func (r *GormLabelRepository) GetByOrder(ctx context.Context, orderID kernel.OrderID) ([]label.Record, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LabelDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.UUID()).
		Order("created_date DESC").
		Order("label_id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	labels := make([]label.Record, 0, len(dtos))
	for _, dto := range dtos {
		labels = append(labels, toDomain(dto))
	}
	return labels, nil
}

// Get retrieves one label of an order.
func (r *GormLabelRepository) Get(ctx context.Context, orderID kernel.OrderID, labelID string) (label.Record, error) {
	if err := orderID.Validate(); err != nil {
		return label.Record{}, err
	}

	var dto LabelDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND label_id = ?", orderID.UUID(), labelID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return label.Record{}, errs.NewObjectNotFoundError("label", labelID)
		}
		return label.Record{}, err
	}

	return toDomain(dto), nil
}

// LabelStatus reports the stored status of a label as a full status update.
func (r *GormLabelRepository) LabelStatus(
	ctx context.Context,
	orderID kernel.OrderID,
	labelID string,
) (label.StatusUpdate, error) {
	stored, err := r.Get(ctx, orderID, labelID)
	if err != nil {
		return label.StatusUpdate{}, err
	}

	return label.StatusUpdate{
		Status:           &stored.Status,
		Tracking:         &stored.Tracking,
		RefundableAmount: &stored.RefundableAmount,
		Refund:           stored.Refund,
	}, nil
}
