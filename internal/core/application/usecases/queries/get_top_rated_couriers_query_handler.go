package queries

import (
	"context"

	"deliveryhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTopRatedCouriersQueryHandler serves the courier leaderboard: highest
// rating first, completed deliveries breaking ties. Unrated couriers sit at
// the bottom with their stored 0.00 average.
type GetTopRatedCouriersQueryHandler struct {
	db *gorm.DB
}

// NewGetTopRatedCouriersQueryHandler creates a handler for leaderboard queries.
func NewGetTopRatedCouriersQueryHandler(db *gorm.DB) GetTopRatedCouriersQueryHandler {
	return GetTopRatedCouriersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetTopRatedCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetTopRatedCouriersQuery,
) ([]GetTopRatedCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	couriers := make([]GetTopRatedCouriersQueryResponse, 0, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			rating,
			rating_count,
			completed_deliveries
		FROM couriers
		ORDER BY rating DESC, completed_deliveries DESC
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetTopRatedCouriersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Rating,
			&resp.RatingCount,
			&resp.CompletedDeliveries,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		couriers = append(couriers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
