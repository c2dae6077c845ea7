package frontdesk

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"condogate/internal/domain"
	"condogate/internal/storage"
	dErrors "condogate/pkg/domain-errors"
)

func newDeliveryFixture(t *testing.T) *DeliveryService {
	t.Helper()
	people := storage.NewInMemoryPersonStore()
	require.NoError(t, people.Save(context.Background(), domain.Person{
		ID: "person-1", Name: "Carlos Silva", Type: domain.PersonTypeResident, HouseID: "house-1",
	}))
	return NewDeliveryService(storage.NewInMemoryDeliveryStore(), people)
}

func TestDeliveries(t *testing.T) {
	ctx := context.Background()

	t.Run("create snapshots the recipient name", func(t *testing.T) {
		svc := newDeliveryFixture(t)
		delivery, err := svc.Create(ctx, DeliveryInput{RecipientID: "person-1", Kind: "Caixa", Observations: " frágil "})
		require.NoError(t, err)
		assert.Equal(t, "Carlos Silva", delivery.RecipientName)
		assert.Equal(t, "frágil", delivery.Observations)
		assert.Equal(t, domain.DeliveryPending, delivery.Status)
		assert.Nil(t, delivery.DeliveredAt)
	})

	t.Run("create without a recipient fails the precondition", func(t *testing.T) {
		svc := newDeliveryFixture(t)
		_, err := svc.Create(ctx, DeliveryInput{Kind: "Caixa"})
		require.Error(t, err)
		assert.True(t, dErrors.Is(err, dErrors.CodePrecondition))
	})

	t.Run("create for an unknown recipient is not found", func(t *testing.T) {
		svc := newDeliveryFixture(t)
		_, err := svc.Create(ctx, DeliveryInput{RecipientID: "person-404", Kind: "Caixa"})
		require.Error(t, err)
		assert.True(t, dErrors.Is(err, dErrors.CodeNotFound))
	})

	t.Run("toggle flips status and stamps DeliveredAt both ways", func(t *testing.T) {
		svc := newDeliveryFixture(t)
		delivery, err := svc.Create(ctx, DeliveryInput{RecipientID: "person-1", Kind: "Caixa"})
		require.NoError(t, err)

		delivered, err := svc.ToggleStatus(ctx, delivery.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.DeliveryDelivered, delivered.Status)
		require.NotNil(t, delivered.DeliveredAt)

		back, err := svc.ToggleStatus(ctx, delivery.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.DeliveryPending, back.Status)
		assert.Nil(t, back.DeliveredAt)
	})

	t.Run("list filters by status and counts pending", func(t *testing.T) {
		svc := newDeliveryFixture(t)
		first, err := svc.Create(ctx, DeliveryInput{RecipientID: "person-1", Kind: "Caixa"})
		require.NoError(t, err)
		_, err = svc.Create(ctx, DeliveryInput{RecipientID: "person-1", Kind: "Envelope"})
		require.NoError(t, err)
		_, err = svc.ToggleStatus(ctx, first.ID)
		require.NoError(t, err)

		pending, err := svc.List(ctx, "pending")
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, "Envelope", pending[0].Kind)

		count, err := svc.PendingCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestNotices(t *testing.T) {
	ctx := context.Background()

	t.Run("create validates priority", func(t *testing.T) {
		svc := NewNoticeService(storage.NewInMemoryNoticeStore())
		_, err := svc.Create(ctx, NoticeInput{Title: "Manutenção", Priority: "Urgent"})
		require.Error(t, err)
		assert.True(t, dErrors.Is(err, dErrors.CodeBadRequest))

		notice, err := svc.Create(ctx, NoticeInput{Title: "Manutenção", Priority: string(domain.PriorityHigh)})
		require.NoError(t, err)
		assert.Equal(t, domain.PriorityHigh, notice.Priority)
	})

	t.Run("mark viewed is idempotent per user", func(t *testing.T) {
		svc := NewNoticeService(storage.NewInMemoryNoticeStore())
		notice, err := svc.Create(ctx, NoticeInput{Title: "Manutenção", Priority: string(domain.PriorityLow)})
		require.NoError(t, err)

		viewed, err := svc.MarkViewed(ctx, notice.ID, "user-1")
		require.NoError(t, err)
		assert.True(t, viewed.ViewedByUser("user-1"))

		again, err := svc.MarkViewed(ctx, notice.ID, "user-1")
		require.NoError(t, err)
		assert.Len(t, again.ViewedBy, 1)
	})

	t.Run("unread count is per user", func(t *testing.T) {
		svc := NewNoticeService(storage.NewInMemoryNoticeStore())
		first, err := svc.Create(ctx, NoticeInput{Title: "Aviso 1", Priority: string(domain.PriorityLow)})
		require.NoError(t, err)
		_, err = svc.Create(ctx, NoticeInput{Title: "Aviso 2", Priority: string(domain.PriorityMedium)})
		require.NoError(t, err)

		_, err = svc.MarkViewed(ctx, first.ID, "user-1")
		require.NoError(t, err)

		count, err := svc.UnreadCount(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		otherCount, err := svc.UnreadCount(ctx, "user-2")
		require.NoError(t, err)
		assert.Equal(t, 2, otherCount)
	})

	t.Run("list is newest first", func(t *testing.T) {
		store := storage.NewInMemoryNoticeStore()
		svc := NewNoticeService(store)
		base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local)
		for i, title := range []string{"older", "newer"} {
			svc.now = func() time.Time { return base.Add(time.Duration(i) * time.Hour) }
			_, err := svc.Create(ctx, NoticeInput{Title: title, Priority: string(domain.PriorityLow)})
			require.NoError(t, err)
		}

		notices, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, notices, 2)
		assert.Equal(t, "newer", notices[0].Title)
	})
}

func TestOccurrences(t *testing.T) {
	ctx := context.Background()

	t.Run("resolve stamps time and comment", func(t *testing.T) {
		svc := NewOccurrenceService(storage.NewInMemoryOccurrenceStore())
		occurrence, err := svc.Create(ctx, OccurrenceInput{Title: "Barulho", Description: "Festa após as 22h"})
		require.NoError(t, err)
		assert.Equal(t, domain.OccurrencePending, occurrence.Status)

		resolved, err := svc.Resolve(ctx, occurrence.ID, " conversamos com o morador ")
		require.NoError(t, err)
		assert.Equal(t, domain.OccurrenceResolved, resolved.Status)
		require.NotNil(t, resolved.ResolvedAt)
		assert.Equal(t, "conversamos com o morador", resolved.Comments)
	})

	t.Run("resolving twice is a conflict", func(t *testing.T) {
		svc := NewOccurrenceService(storage.NewInMemoryOccurrenceStore())
		occurrence, err := svc.Create(ctx, OccurrenceInput{Title: "Barulho"})
		require.NoError(t, err)

		_, err = svc.Resolve(ctx, occurrence.ID, "feito")
		require.NoError(t, err)
		_, err = svc.Resolve(ctx, occurrence.ID, "de novo")
		require.Error(t, err)
		assert.True(t, dErrors.Is(err, dErrors.CodeConflict))
	})

	t.Run("untitled occurrences are rejected", func(t *testing.T) {
		svc := NewOccurrenceService(storage.NewInMemoryOccurrenceStore())
		_, err := svc.Create(ctx, OccurrenceInput{Title: "  "})
		require.Error(t, err)
		assert.True(t, dErrors.Is(err, dErrors.CodeBadRequest))
	})

	t.Run("list filters by status", func(t *testing.T) {
		svc := NewOccurrenceService(storage.NewInMemoryOccurrenceStore())
		first, err := svc.Create(ctx, OccurrenceInput{Title: "Portão quebrado"})
		require.NoError(t, err)
		_, err = svc.Create(ctx, OccurrenceInput{Title: "Lâmpada queimada"})
		require.NoError(t, err)
		_, err = svc.Resolve(ctx, first.ID, "trocada")
		require.NoError(t, err)

		pending, err := svc.List(ctx, "Pending")
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, "Lâmpada queimada", pending[0].Title)

		all, err := svc.List(ctx, "")
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}
