package frontdesk

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"condogate/internal/domain"
	"condogate/internal/storage"
	dErrors "condogate/pkg/domain-errors"
)

type NoticeInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

type NoticeService struct {
	notices storage.NoticeStore
	now     func() time.Time
}

func NewNoticeService(notices storage.NoticeStore) *NoticeService {
	return &NoticeService{notices: notices, now: time.Now}
}

func (s *NoticeService) Create(ctx context.Context, input NoticeInput) (domain.Notice, error) {
	if strings.TrimSpace(input.Title) == "" {
		return domain.Notice{}, dErrors.New(dErrors.CodeBadRequest, "notice title is required")
	}
	priority := domain.Priority(input.Priority)
	switch priority {
	case domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh:
	default:
		return domain.Notice{}, dErrors.Newf(dErrors.CodeBadRequest, "unknown priority %q", input.Priority)
	}
	notice := domain.Notice{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Priority:    priority,
		CreatedAt:   s.now(),
	}
	if err := s.notices.Save(ctx, notice); err != nil {
		return domain.Notice{}, err
	}
	return notice, nil
}

// MarkViewed records the acknowledgement; repeated calls by the same user are
// no-ops.
func (s *NoticeService) MarkViewed(ctx context.Context, noticeID, userID string) (domain.Notice, error) {
	notice, err := s.notices.FindByID(ctx, noticeID)
	if err != nil {
		return domain.Notice{}, err
	}
	if !notice.ViewedByUser(userID) {
		notice.ViewedBy = append(notice.ViewedBy, userID)
		if err := s.notices.Save(ctx, notice); err != nil {
			return domain.Notice{}, err
		}
	}
	return notice, nil
}

func (s *NoticeService) List(ctx context.Context) ([]domain.Notice, error) {
	notices, err := s.notices.List(ctx)
	if err != nil {
		return nil, err
	}
	sortByCreatedAtDesc(notices, func(n domain.Notice) time.Time { return n.CreatedAt })
	return notices, nil
}

// UnreadCount backs the dashboard tile for the current user.
func (s *NoticeService) UnreadCount(ctx context.Context, userID string) (int, error) {
	notices, err := s.notices.List(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, notice := range notices {
		if !notice.ViewedByUser(userID) {
			count++
		}
	}
	return count, nil
}

func sortByCreatedAtDesc[T any](items []T, createdAt func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]).After(createdAt(items[j]))
	})
}
