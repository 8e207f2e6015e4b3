package queries

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// GetOrderLabelsQueryHandler reads label history straight from the labels
// table.
//
// Example:
//
//	handler := NewGetOrderLabelsQueryHandler(db)
//	query, _ := NewGetOrderLabelsQuery(orderID)
//
//	labels, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, l := range labels {
//	    fmt.Printf("%s %s %s\n", l.LabelID, l.Tracking, l.Status)
//	}
type GetOrderLabelsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderLabelsQueryHandler(db *gorm.DB) GetOrderLabelsQueryHandler {
	return GetOrderLabelsQueryHandler{db: db}
}

// Handle returns the labels most recent first. An order without labels yields
// an empty slice.
func (h GetOrderLabelsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderLabelsQuery,
) ([]GetOrderLabelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	labels := make([]GetOrderLabelsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			label_id,
			carrier_id,
			service_name,
			tracking,
			status,
			rate,
			currency,
			created_date,
			refundable_amount,
			product_names,
			refund
		FROM labels
		WHERE order_id = ?
		ORDER BY created_date DESC, label_id
	`, query.OrderID().UUID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp                 GetOrderLabelsQueryResponse
			productNames, refund []byte
		)

		err = rows.Scan(
			&resp.LabelID,
			&resp.CarrierID,
			&resp.ServiceName,
			&resp.Tracking,
			&resp.Status,
			&resp.Rate,
			&resp.Currency,
			&resp.CreatedDate,
			&resp.RefundableAmount,
			&productNames,
			&refund,
		)
		if err != nil {
			return nil, err
		}

		if len(productNames) > 0 {
			if err = json.Unmarshal(productNames, &resp.ProductNames); err != nil {
				return nil, fmt.Errorf("label %s: product names: %w", resp.LabelID, err)
			}
		}
		if resp.ProductNames == nil {
			resp.ProductNames = []string{}
		}

		if len(refund) > 0 {
			var r struct {
				Status string `json:"status"`
			}
			if err = json.Unmarshal(refund, &r); err != nil {
				return nil, fmt.Errorf("label %s: refund: %w", resp.LabelID, err)
			}
			resp.RefundStatus = r.Status
		}

		labels = append(labels, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return labels, nil
}
