package queries

import (
	"context"
	"database/sql"

	"deliveryhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryHistoryQueryHandler serves a party's delivery history, newest
// first, capped at DeliveryHistoryLimit.
type GetDeliveryHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryHistoryQueryHandler creates a handler for history queries.
func NewGetDeliveryHistoryQueryHandler(db *gorm.DB) GetDeliveryHistoryQueryHandler {
	return GetDeliveryHistoryQueryHandler{db: db}
}

// Handle executes the query for whichever filter the query carries.
func (h GetDeliveryHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryHistoryQuery,
) ([]GetDeliveryHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	column, id := historyFilter(query)

	history := make([]GetDeliveryHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			courier_id,
			status,
			destination,
			fee,
			tip,
			created_at,
			completed_at,
			cancelled_at
		FROM deliveries
		WHERE `+column+` = ?
		ORDER BY created_at DESC
		LIMIT ?
	`, id.Bytes(), DeliveryHistoryLimit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetDeliveryHistoryQueryResponse
		var rowID uuid.UUID
		var courierID uuid.NullUUID
		var completedAt, cancelledAt sql.NullTime

		err = rows.Scan(
			&rowID,
			&courierID,
			&resp.Status,
			&resp.Destination,
			&resp.Fee,
			&resp.Tip,
			&resp.CreatedAt,
			&completedAt,
			&cancelledAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(rowID[:]); err != nil {
			return nil, err
		}
		if courierID.Valid {
			cID, idErr := kernel.UUIDFromBytes(courierID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.CourierID = &cID
		}
		if completedAt.Valid {
			resp.CompletedAt = &completedAt.Time
		}
		if cancelledAt.Valid {
			resp.CancelledAt = &cancelledAt.Time
		}

		history = append(history, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}

// historyFilter maps the query's exclusive filter onto its column. The column
// name comes from this fixed set, never from user input.
func historyFilter(query GetDeliveryHistoryQuery) (string, kernel.UUID) {
	switch {
	case query.CourierID() != nil:
		return "courier_id", *query.CourierID()
	case query.StoreID() != nil:
		return "store_id", *query.StoreID()
	default:
		return "customer_id", *query.CustomerID()
	}
}
