// Package frontdesk covers the simple record stores around the access core:
// package deliveries, administration notices, and incident occurrences. No
// derived logic beyond filtering and status stamping.
package frontdesk

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"condogate/internal/domain"
	"condogate/internal/storage"
	dErrors "condogate/pkg/domain-errors"
)

type DeliveryInput struct {
	RecipientID  string `json:"recipient_id"`
	Kind         string `json:"kind"`
	Observations string `json:"observations"`
}

type DeliveryService struct {
	deliveries storage.DeliveryStore
	people     storage.PersonStore
	now        func() time.Time
}

func NewDeliveryService(deliveries storage.DeliveryStore, people storage.PersonStore) *DeliveryService {
	return &DeliveryService{deliveries: deliveries, people: people, now: time.Now}
}

// Create registers a pending delivery, snapshotting the recipient name the
// same way the ledger snapshots person data.
func (s *DeliveryService) Create(ctx context.Context, input DeliveryInput) (domain.Delivery, error) {
	if strings.TrimSpace(input.RecipientID) == "" {
		return domain.Delivery{}, dErrors.New(dErrors.CodePrecondition, "select a recipient first")
	}
	if strings.TrimSpace(input.Kind) == "" {
		return domain.Delivery{}, dErrors.New(dErrors.CodeBadRequest, "delivery kind is required")
	}
	recipient, err := s.people.FindByID(ctx, input.RecipientID)
	if err != nil {
		return domain.Delivery{}, err
	}
	delivery := domain.Delivery{
		ID:            uuid.NewString(),
		RecipientID:   recipient.ID,
		RecipientName: recipient.Name,
		Kind:          strings.TrimSpace(input.Kind),
		Observations:  strings.TrimSpace(input.Observations),
		Status:        domain.DeliveryPending,
		CreatedAt:     s.now(),
	}
	if err := s.deliveries.Save(ctx, delivery); err != nil {
		return domain.Delivery{}, err
	}
	return delivery, nil
}

// ToggleStatus flips Pending and Delivered, stamping or clearing DeliveredAt.
func (s *DeliveryService) ToggleStatus(ctx context.Context, id string) (domain.Delivery, error) {
	delivery, err := s.deliveries.FindByID(ctx, id)
	if err != nil {
		return domain.Delivery{}, err
	}
	if delivery.Status == domain.DeliveryPending {
		delivery.Status = domain.DeliveryDelivered
		deliveredAt := s.now()
		delivery.DeliveredAt = &deliveredAt
	} else {
		delivery.Status = domain.DeliveryPending
		delivery.DeliveredAt = nil
	}
	if err := s.deliveries.Save(ctx, delivery); err != nil {
		return domain.Delivery{}, err
	}
	return delivery, nil
}

// List returns deliveries newest first, optionally restricted to one status.
func (s *DeliveryService) List(ctx context.Context, status string) ([]domain.Delivery, error) {
	deliveries, err := s.deliveries.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]domain.Delivery, 0, len(deliveries))
	for _, delivery := range deliveries {
		if status != "" && !strings.EqualFold(string(delivery.Status), status) {
			continue
		}
		filtered = append(filtered, delivery)
	}
	sortByCreatedAtDesc(filtered, func(d domain.Delivery) time.Time { return d.CreatedAt })
	return filtered, nil
}

// PendingCount backs the dashboard tile.
func (s *DeliveryService) PendingCount(ctx context.Context) (int, error) {
	pending, err := s.List(ctx, string(domain.DeliveryPending))
	if err != nil {
		return 0, err
	}
	return len(pending), nil
}
