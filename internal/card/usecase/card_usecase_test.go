package usecase

import (
	"context"
	"strings"
	"testing"

	"howtouseai-backend/internal/card/domain"
	"howtouseai-backend/internal/card/dto"
	"howtouseai-backend/internal/card/repository"
	categorydomain "howtouseai-backend/internal/category/domain"
	categoryrepo "howtouseai-backend/internal/category/repository"
	likerepo "howtouseai-backend/internal/like/repository"
	"howtouseai-backend/pkg/apperror"
	"howtouseai-backend/pkg/database/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	uc         CardUsecase
	likes      likerepo.CardLikeRepository
	categories categoryrepo.CategoryRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.New(t)
	categories := categoryrepo.NewGormCategoryRepository(db)
	likes := likerepo.NewGormCardLikeRepository(db)
	return &fixture{
		uc:         NewCardUsecase(repository.NewGormCardRepository(db), categories, likes),
		likes:      likes,
		categories: categories,
	}
}

func (f *fixture) category(t *testing.T, name string) uint {
	t.Helper()
	c := &categorydomain.Category{Name: name, IconURL: "/images/categories/" + strings.ToLower(name) + ".png"}
	require.NoError(t, f.categories.Create(context.Background(), c))
	return c.ID
}

func (f *fixture) card(t *testing.T, title, uuid string, categoryID uint) *dto.CardResponse {
	t.Helper()
	created, err := f.uc.CreateCard(context.Background(), &dto.CreateCardRequest{
		Title:      title,
		CategoryID: categoryID,
		UUID:       uuid,
		Tags:       strPtr("ai,tips"),
	})
	require.NoError(t, err)
	return created
}

func strPtr(s string) *string { return &s }

func TestCreateCard(t *testing.T) {
	f := newFixture(t)
	catID := f.category(t, "Writing")

	created, err := f.uc.CreateCard(context.Background(), &dto.CreateCardRequest{
		Title:      "Summarize meeting notes",
		CategoryID: catID,
		UUID:       "device-a",
		Content:    strPtr("Paste notes and ask for action items"),
	})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, "device-a", created.UUID)
	assert.Equal(t, "Writing", created.Category.Name)
	assert.Equal(t, "Paste notes and ask for action items", created.Content)
	assert.Equal(t, "", created.Tags)
	assert.Zero(t, created.LikesCount)
	assert.False(t, created.LikedByUser)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateCardDuplicateTitlePerUUID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	catID := f.category(t, "Coding")
	f.card(t, "Explain regex", "device-a", catID)

	_, err := f.uc.CreateCard(ctx, &dto.CreateCardRequest{Title: "Explain regex", CategoryID: catID, UUID: "device-a"})
	assert.ErrorIs(t, err, domain.ErrCardAlreadyExists)
	assert.True(t, apperror.IsKind(err, apperror.KindAlreadyExists))

	// Another device may reuse the title
	other, err := f.uc.CreateCard(ctx, &dto.CreateCardRequest{Title: "Explain regex", CategoryID: catID, UUID: "device-b"})
	require.NoError(t, err)
	assert.Equal(t, "device-b", other.UUID)
}

func TestCreateCardValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	catID := f.category(t, "Art")

	tests := []struct {
		name string
		req  *dto.CreateCardRequest
		want error
	}{
		{"missing category", &dto.CreateCardRequest{Title: "T", CategoryID: 999, UUID: "u"}, categorydomain.ErrCategoryNotFound},
		{"blank title", &dto.CreateCardRequest{Title: "  ", CategoryID: catID, UUID: "u"}, domain.ErrInvalidCard},
		{"long title", &dto.CreateCardRequest{Title: strings.Repeat("x", 256), CategoryID: catID, UUID: "u"}, domain.ErrInvalidCard},
		{"blank uuid", &dto.CreateCardRequest{Title: "T", CategoryID: catID, UUID: ""}, domain.ErrInvalidCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.CreateCard(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGetCard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created := f.card(t, "Plan a trip", "device-a", f.category(t, "Travel"))

	_, _, err := f.likes.Toggle(ctx, created.ID, "device-b")
	require.NoError(t, err)

	got, err := f.uc.GetCard(ctx, created.ID, "device-b")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.LikesCount)
	assert.True(t, got.LikedByUser)

	got, err = f.uc.GetCard(ctx, created.ID, "")
	require.NoError(t, err)
	assert.False(t, got.LikedByUser)

	_, err = f.uc.GetCard(ctx, 9999, "")
	assert.ErrorIs(t, err, domain.ErrCardNotFound)
}

func TestListCardsOrderedByLikesThenNewest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	catID := f.category(t, "Coding")

	first := f.card(t, "first", "owner", catID)
	second := f.card(t, "second", "owner", catID)
	third := f.card(t, "third", "owner", catID)

	for _, uuid := range []string{"a", "b"} {
		_, _, err := f.likes.Toggle(ctx, first.ID, uuid)
		require.NoError(t, err)
	}
	_, _, err := f.likes.Toggle(ctx, second.ID, "a")
	require.NoError(t, err)

	page, err := f.uc.ListCards(ctx, dto.ListQuery{RequesterUUID: "a"})
	require.NoError(t, err)

	require.Len(t, page.Content, 3)
	assert.Equal(t, []uint{first.ID, second.ID, third.ID},
		[]uint{page.Content[0].ID, page.Content[1].ID, page.Content[2].ID})
	assert.Equal(t, int64(2), page.Content[0].LikesCount)
	assert.True(t, page.Content[0].LikedByUser)
	assert.True(t, page.Content[1].LikedByUser)
	assert.False(t, page.Content[2].LikedByUser)
	assert.Equal(t, int64(3), page.TotalElements)
	assert.Equal(t, 1, page.TotalPages)
	assert.True(t, page.First)
	assert.True(t, page.Last)
}

func TestListCardsPagingAndFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	coding := f.category(t, "Coding")
	art := f.category(t, "Art")

	for i := 0; i < 5; i++ {
		f.card(t, "code "+string(rune('a'+i)), "owner", coding)
	}
	_, err := f.uc.CreateCard(ctx, &dto.CreateCardRequest{Title: "sketch", CategoryID: art, UUID: "owner", Tags: strPtr("drawing")})
	require.NoError(t, err)

	t.Run("page size and metadata", func(t *testing.T) {
		page, err := f.uc.ListCards(ctx, dto.ListQuery{Page: 1, Size: 2})
		require.NoError(t, err)
		assert.Len(t, page.Content, 2)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 2, page.Size)
		assert.Equal(t, int64(6), page.TotalElements)
		assert.Equal(t, 3, page.TotalPages)
		assert.False(t, page.First)
		assert.False(t, page.Last)
	})

	t.Run("size is clamped", func(t *testing.T) {
		page, err := f.uc.ListCards(ctx, dto.ListQuery{Page: -3, Size: 1000})
		require.NoError(t, err)
		assert.Equal(t, 0, page.Page)
		assert.Equal(t, MaxPageSize, page.Size)

		page, err = f.uc.ListCards(ctx, dto.ListQuery{})
		require.NoError(t, err)
		assert.Equal(t, DefaultPageSize, page.Size)
	})

	t.Run("category filter", func(t *testing.T) {
		page, err := f.uc.ListCards(ctx, dto.ListQuery{CategoryID: art})
		require.NoError(t, err)
		require.Len(t, page.Content, 1)
		assert.Equal(t, "sketch", page.Content[0].Title)
	})

	t.Run("tag filter", func(t *testing.T) {
		page, err := f.uc.ListCards(ctx, dto.ListQuery{Tag: "drawing"})
		require.NoError(t, err)
		require.Len(t, page.Content, 1)
		assert.Equal(t, "sketch", page.Content[0].Title)
	})

	t.Run("past the end", func(t *testing.T) {
		page, err := f.uc.ListCards(ctx, dto.ListQuery{Page: 10, Size: 5})
		require.NoError(t, err)
		assert.Empty(t, page.Content)
		assert.True(t, page.Last)
	})
}

func TestUpdateCard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	coding := f.category(t, "Coding")
	art := f.category(t, "Art")
	card := f.card(t, "Refactor loop", "owner", coding)
	f.card(t, "Write tests", "owner", coding)

	t.Run("non owner is rejected", func(t *testing.T) {
		_, err := f.uc.UpdateCard(ctx, card.ID, &dto.UpdateCardRequest{UUID: "intruder", Title: strPtr("Hijack")})
		assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)
		assert.True(t, apperror.IsKind(err, apperror.KindUnauthorized))
	})

	t.Run("nil and blank fields keep values", func(t *testing.T) {
		updated, err := f.uc.UpdateCard(ctx, card.ID, &dto.UpdateCardRequest{UUID: "owner", Title: strPtr(" ")})
		require.NoError(t, err)
		assert.Equal(t, "Refactor loop", updated.Title)
		assert.Equal(t, "ai,tips", updated.Tags)
		assert.Equal(t, "Coding", updated.Category.Name)
	})

	t.Run("colliding title fails", func(t *testing.T) {
		_, err := f.uc.UpdateCard(ctx, card.ID, &dto.UpdateCardRequest{UUID: "owner", Title: strPtr("Write tests")})
		assert.ErrorIs(t, err, domain.ErrCardAlreadyExists)
	})

	t.Run("missing category", func(t *testing.T) {
		missing := uint(999)
		_, err := f.uc.UpdateCard(ctx, card.ID, &dto.UpdateCardRequest{UUID: "owner", CategoryID: &missing})
		assert.ErrorIs(t, err, categorydomain.ErrCategoryNotFound)
	})

	t.Run("fields are replaced", func(t *testing.T) {
		updated, err := f.uc.UpdateCard(ctx, card.ID, &dto.UpdateCardRequest{
			UUID:       "owner",
			Title:      strPtr("Refactor with AI"),
			CategoryID: &art,
			Tags:       strPtr(""),
			Content:    strPtr("new content"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Refactor with AI", updated.Title)
		assert.Equal(t, "Art", updated.Category.Name)
		assert.Equal(t, "", updated.Tags)
		assert.Equal(t, "new content", updated.Content)

		fetched, err := f.uc.GetCard(ctx, card.ID, "")
		require.NoError(t, err)
		assert.Equal(t, updated.Title, fetched.Title)
		assert.Equal(t, art, fetched.Category.ID)
		assert.Equal(t, "new content", fetched.Content)
	})

	t.Run("missing card", func(t *testing.T) {
		_, err := f.uc.UpdateCard(ctx, 9999, &dto.UpdateCardRequest{UUID: "owner"})
		assert.ErrorIs(t, err, domain.ErrCardNotFound)
	})
}

func TestDeleteCard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	card := f.card(t, "Draft email", "owner", f.category(t, "Writing"))

	for _, uuid := range []string{"a", "b", "c"} {
		_, _, err := f.likes.Toggle(ctx, card.ID, uuid)
		require.NoError(t, err)
	}

	err := f.uc.DeleteCard(ctx, card.ID, "intruder")
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)

	err = f.uc.DeleteCard(ctx, card.ID, "")
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)

	require.NoError(t, f.uc.DeleteCard(ctx, card.ID, "owner"))

	_, err = f.uc.GetCard(ctx, card.ID, "")
	assert.ErrorIs(t, err, domain.ErrCardNotFound)

	count, err := f.likes.CountByCardID(ctx, card.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	err = f.uc.DeleteCard(ctx, card.ID, "owner")
	assert.ErrorIs(t, err, domain.ErrCardNotFound)
}

func TestSearchCards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	writing := f.category(t, "Writing")
	coding := f.category(t, "Coding")

	email := f.card(t, "Draft a polite email", "owner", writing)
	_, err := f.uc.CreateCard(ctx, &dto.CreateCardRequest{
		Title: "Reply to a customer", CategoryID: writing, UUID: "owner", Tags: strPtr("email,support"),
	})
	require.NoError(t, err)
	f.card(t, "Explain a stack trace", "owner", coding)

	_, _, err = f.likes.Toggle(ctx, email.ID, "fan")
	require.NoError(t, err)

	t.Run("title match ranks above tag match", func(t *testing.T) {
		results, err := f.uc.SearchCards(ctx, dto.SearchQuery{Q: "email", RequesterUUID: "fan"})
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, email.ID, results[0].ID)
		assert.True(t, results[0].LikedByUser)
		assert.Equal(t, int64(1), results[0].LikesCount)
		assert.Equal(t, "Reply to a customer", results[1].Title)
	})

	t.Run("typos still match", func(t *testing.T) {
		results, err := f.uc.SearchCards(ctx, dto.SearchQuery{Q: "stak"})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Explain a stack trace", results[0].Title)
	})

	t.Run("category and size narrow results", func(t *testing.T) {
		results, err := f.uc.SearchCards(ctx, dto.SearchQuery{Q: "email", CategoryID: coding})
		require.NoError(t, err)
		assert.Empty(t, results)

		results, err = f.uc.SearchCards(ctx, dto.SearchQuery{Q: "email", Size: 1})
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("blank query", func(t *testing.T) {
		_, err := f.uc.SearchCards(ctx, dto.SearchQuery{Q: "  "})
		assert.ErrorIs(t, err, domain.ErrInvalidCard)
	})
}
