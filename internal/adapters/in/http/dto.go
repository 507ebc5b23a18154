package http

import (
	"time"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// IDResponse carries the server-generated identifier of a created resource.
type IDResponse struct {
	ID string `json:"id"`
}

// RegisterCourierRequest is the body of POST /api/v1/couriers.
type RegisterCourierRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	Document  string `json:"document"`
	LicenseID string `json:"license_id"`
}

// RegisterCustomerRequest is the body of POST /api/v1/customers.
type RegisterCustomerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// RegisterStoreRequest is the body of POST /api/v1/stores.
type RegisterStoreRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Address  string `json:"address"`
}

// LoginRequest is the body of POST /api/v1/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the signed access token.
type LoginResponse struct {
	Token string `json:"token"`
}

// CreateDeliveryRequest is the body of POST /api/v1/deliveries.
type CreateDeliveryRequest struct {
	StoreID            string          `json:"store_id"`
	CustomerID         string          `json:"customer_id"`
	Origin             string          `json:"origin"`
	Destination        string          `json:"destination"`
	ProductDescription string          `json:"product_description"`
	Fee                decimal.Decimal `json:"fee"`
	Tip                decimal.Decimal `json:"tip"`
	EstimatedMinutes   *int            `json:"estimated_minutes"`
	Notes              string          `json:"notes"`
}

// AssignCourierRequest is the body of POST /api/v1/deliveries/:deliveryId/assign.
type AssignCourierRequest struct {
	CourierID string `json:"courier_id"`
}

// UpdateDeliveryStatusRequest is the body of PUT /api/v1/deliveries/:deliveryId/status.
type UpdateDeliveryStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// SubmitRatingRequest is the body of POST /api/v1/couriers/:courierId/ratings.
type SubmitRatingRequest struct {
	Score decimal.Decimal `json:"score"`
}

// SetAvailabilityRequest is the body of PUT /api/v1/couriers/:courierId/availability.
type SetAvailabilityRequest struct {
	Availability string `json:"availability"`
}

// BadgeResponse carries a courier's regenerated QR badge identifier.
type BadgeResponse struct {
	BadgeID string `json:"badge_id"`
}

// PendingDelivery is one element of GET /api/v1/deliveries/pending.
type PendingDelivery struct {
	ID                 string          `json:"id"`
	StoreID            string          `json:"store_id"`
	CustomerID         string          `json:"customer_id"`
	Origin             string          `json:"origin"`
	Destination        string          `json:"destination"`
	ProductDescription string          `json:"product_description"`
	Fee                decimal.Decimal `json:"fee"`
	Tip                decimal.Decimal `json:"tip"`
	CreatedAt          time.Time       `json:"created_at"`
}

// HistoryEntry is one element of GET /api/v1/deliveries/history.
type HistoryEntry struct {
	ID          string          `json:"id"`
	CourierID   *string         `json:"courier_id"`
	Status      string          `json:"status"`
	Destination string          `json:"destination"`
	Fee         decimal.Decimal `json:"fee"`
	Tip         decimal.Decimal `json:"tip"`
	CreatedAt   time.Time       `json:"created_at"`
	CompletedAt *time.Time      `json:"completed_at"`
	CancelledAt *time.Time      `json:"cancelled_at"`
}

// AvailableCourier is one element of GET /api/v1/couriers/available.
type AvailableCourier struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Rating              decimal.Decimal `json:"rating"`
	CompletedDeliveries int             `json:"completed_deliveries"`
}

// TopRatedCourier is one element of GET /api/v1/couriers/top.
type TopRatedCourier struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Rating              decimal.Decimal `json:"rating"`
	RatingCount         int             `json:"rating_count"`
	CompletedDeliveries int             `json:"completed_deliveries"`
}
