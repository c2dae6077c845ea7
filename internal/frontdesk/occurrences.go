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

type OccurrenceInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type OccurrenceService struct {
	occurrences storage.OccurrenceStore
	now         func() time.Time
}

func NewOccurrenceService(occurrences storage.OccurrenceStore) *OccurrenceService {
	return &OccurrenceService{occurrences: occurrences, now: time.Now}
}

func (s *OccurrenceService) Create(ctx context.Context, input OccurrenceInput) (domain.Occurrence, error) {
	if strings.TrimSpace(input.Title) == "" {
		return domain.Occurrence{}, dErrors.New(dErrors.CodeBadRequest, "occurrence title is required")
	}
	occurrence := domain.Occurrence{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Status:      domain.OccurrencePending,
		CreatedAt:   s.now(),
	}
	if err := s.occurrences.Save(ctx, occurrence); err != nil {
		return domain.Occurrence{}, err
	}
	return occurrence, nil
}

// Resolve closes an occurrence, stamping ResolvedAt and recording the
// resolution comment. Resolving twice is a conflict.
func (s *OccurrenceService) Resolve(ctx context.Context, id, comment string) (domain.Occurrence, error) {
	occurrence, err := s.occurrences.FindByID(ctx, id)
	if err != nil {
		return domain.Occurrence{}, err
	}
	if occurrence.Status == domain.OccurrenceResolved {
		return domain.Occurrence{}, dErrors.New(dErrors.CodeConflict, "occurrence already resolved")
	}
	resolvedAt := s.now()
	occurrence.Status = domain.OccurrenceResolved
	occurrence.ResolvedAt = &resolvedAt
	occurrence.Comments = strings.TrimSpace(comment)
	if err := s.occurrences.Save(ctx, occurrence); err != nil {
		return domain.Occurrence{}, err
	}
	return occurrence, nil
}

// List returns occurrences newest first, optionally restricted to one status.
func (s *OccurrenceService) List(ctx context.Context, status string) ([]domain.Occurrence, error) {
	occurrences, err := s.occurrences.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]domain.Occurrence, 0, len(occurrences))
	for _, occurrence := range occurrences {
		if status != "" && !strings.EqualFold(string(occurrence.Status), status) {
			continue
		}
		filtered = append(filtered, occurrence)
	}
	sortByCreatedAtDesc(filtered, func(o domain.Occurrence) time.Time { return o.CreatedAt })
	return filtered, nil
}
