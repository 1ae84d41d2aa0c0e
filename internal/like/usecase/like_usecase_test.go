package usecase

import (
	"context"
	"sync"
	"testing"

	carddomain "howtouseai-backend/internal/card/domain"
	cardrepo "howtouseai-backend/internal/card/repository"
	categorydomain "howtouseai-backend/internal/category/domain"
	categoryrepo "howtouseai-backend/internal/category/repository"
	"howtouseai-backend/internal/like/domain"
	"howtouseai-backend/internal/like/repository"
	"howtouseai-backend/pkg/apperror"
	"howtouseai-backend/pkg/database/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (CardLikeUsecase, cardrepo.CardRepository, uint) {
	t.Helper()
	ctx := context.Background()
	db := dbtest.New(t)

	category := &categorydomain.Category{Name: "Coding", IconURL: "/images/categories/coding.png"}
	require.NoError(t, categoryrepo.NewGormCategoryRepository(db).Create(ctx, category))

	cards := cardrepo.NewGormCardRepository(db)
	card := &carddomain.Card{UUID: "owner", Title: "Explain a stack trace", CategoryID: category.ID}
	require.NoError(t, cards.Create(ctx, card))

	return NewCardLikeUsecase(repository.NewGormCardLikeRepository(db), cards), cards, card.ID
}

func TestToggleLikeTwiceRestoresState(t *testing.T) {
	uc, _, cardID := setup(t)
	ctx := context.Background()

	res, err := uc.ToggleLike(ctx, cardID, "device-a")
	require.NoError(t, err)
	assert.True(t, res.Liked)
	assert.Equal(t, int64(1), res.LikesCount)

	res, err = uc.ToggleLike(ctx, cardID, "device-b")
	require.NoError(t, err)
	assert.True(t, res.Liked)
	assert.Equal(t, int64(2), res.LikesCount)

	res, err = uc.ToggleLike(ctx, cardID, "device-a")
	require.NoError(t, err)
	assert.False(t, res.Liked)
	assert.Equal(t, int64(1), res.LikesCount)
}

func TestToggleLikeValidation(t *testing.T) {
	uc, _, cardID := setup(t)
	ctx := context.Background()

	_, err := uc.ToggleLike(ctx, cardID, "  ")
	assert.ErrorIs(t, err, domain.ErrUUIDRequired)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = uc.ToggleLike(ctx, cardID+100, "device-a")
	assert.ErrorIs(t, err, carddomain.ErrCardNotFound)
}

func TestToggleLikeOnDeletedCard(t *testing.T) {
	uc, cards, cardID := setup(t)
	ctx := context.Background()

	_, err := uc.ToggleLike(ctx, cardID, "device-a")
	require.NoError(t, err)
	require.NoError(t, cards.DeleteWithLikes(ctx, cardID))

	_, err = uc.ToggleLike(ctx, cardID, "device-a")
	assert.ErrorIs(t, err, carddomain.ErrCardNotFound)
}

func TestRemoveLikeIsIdempotent(t *testing.T) {
	uc, _, cardID := setup(t)
	ctx := context.Background()

	_, err := uc.ToggleLike(ctx, cardID, "device-a")
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		res, err := uc.RemoveLike(ctx, cardID, "device-a")
		require.NoError(t, err)
		assert.False(t, res.Liked)
		assert.Zero(t, res.LikesCount)
	}
}

func TestConcurrentTogglesKeepOneRowPerDevice(t *testing.T) {
	uc, _, cardID := setup(t)
	ctx := context.Background()

	const devices = 8
	var wg sync.WaitGroup
	for i := 0; i < devices; i++ {
		wg.Add(1)
		go func(uuid string) {
			defer wg.Done()
			_, err := uc.ToggleLike(ctx, cardID, uuid)
			assert.NoError(t, err)
		}(string(rune('a' + i)))
	}
	wg.Wait()

	res, err := uc.RemoveLike(ctx, cardID, "nobody")
	require.NoError(t, err)
	assert.Equal(t, int64(devices), res.LikesCount)
}
