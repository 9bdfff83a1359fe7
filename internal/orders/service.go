// Package orders lists a user's order history and handles bill approval.
package orders

import (
	"context"

	"blueace_booking_client/internal/api"
	"blueace_booking_client/platform/apperr"
	"blueace_booking_client/platform/logger"
)

// Terminal order statuses used to partition the history.
const (
	StatusServiceDone = "Service Done"
	StatusCancelled   = "Cancelled"
)

// History is the user's order list split by progress.
type History struct {
	All       []api.Order
	Active    []api.Order
	Completed []api.Order
	Cancelled []api.Order
}

// Service exposes order history operations.
type Service struct {
	client *api.Client
	log    *logger.Logger
}

// New creates an orders service.
func New(client *api.Client, log *logger.Logger) *Service {
	return &Service{client: client, log: log}
}

// History fetches and partitions the user's orders.
func (s *Service) History(ctx context.Context, userID string) (History, error) {
	if userID == "" {
		return History{}, apperr.Validation("user id is required")
	}

	orders, err := s.client.GetOrdersByUser(ctx, userID)
	if err != nil {
		return History{}, err
	}

	return Partition(orders), nil
}

// Partition splits orders into active, completed, and cancelled buckets.
// Active means the status is not terminal.
func Partition(orders []api.Order) History {
	history := History{All: orders}

	for _, order := range orders {
		switch order.OrderStatus {
		case StatusServiceDone:
			history.Completed = append(history.Completed, order)
		case StatusCancelled:
			history.Cancelled = append(history.Cancelled, order)
		default:
			history.Active = append(history.Active, order)
		}
	}

	return history
}

// ApproveBill marks a vendor bill as approved.
func (s *Service) ApproveBill(ctx context.Context, billID string) (string, error) {
	if billID == "" {
		return "", apperr.Validation("bill id is required")
	}

	if err := s.client.UpdateBillStatus(ctx, billID, "Approved"); err != nil {
		return "", err
	}

	return "Bill approved successfully! Please Wait Our Vendor Call You Shortly", nil
}
