package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"howtouseai-backend/internal/card/domain"
	"howtouseai-backend/internal/card/dto"
	"howtouseai-backend/internal/card/repository"
	categorydomain "howtouseai-backend/internal/category/domain"
	categoryrepo "howtouseai-backend/internal/category/repository"
	likerepo "howtouseai-backend/internal/like/repository"
	"howtouseai-backend/pkg/database"
	"howtouseai-backend/pkg/fuzzy"

	"go.uber.org/zap"
)

// cardUsecase implements CardUsecase interface
type cardUsecase struct {
	cardRepo     repository.CardRepository
	categoryRepo categoryrepo.CategoryRepository
	likeRepo     likerepo.CardLikeRepository
}

// NewCardUsecase creates a new instance of cardUsecase
func NewCardUsecase(cardRepo repository.CardRepository, categoryRepo categoryrepo.CategoryRepository, likeRepo likerepo.CardLikeRepository) CardUsecase {
	return &cardUsecase{
		cardRepo:     cardRepo,
		categoryRepo: categoryRepo,
		likeRepo:     likeRepo,
	}
}

func (u *cardUsecase) ListCards(ctx context.Context, query dto.ListQuery) (*dto.CardPage, error) {
	page, size := normalizePage(query.Page, query.Size)

	filter := repository.CardFilter{CategoryID: query.CategoryID, Tag: strings.TrimSpace(query.Tag)}
	cards, total, err := u.cardRepo.FindPage(ctx, filter, size, page*size)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, c.ID)
	}
	counts, err := u.likeRepo.CountByCardIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	liked, err := u.likeRepo.LikedCardIDs(ctx, query.RequesterUUID, ids)
	if err != nil {
		return nil, err
	}

	content := make([]*dto.CardResponse, 0, len(cards))
	for _, c := range cards {
		content = append(content, dto.NewCardResponse(c, counts[c.ID], liked[c.ID]))
	}

	zap.L().Debug("cards listed", zap.Int("page", page), zap.Int("size", size), zap.Int64("total", total))
	return dto.NewCardPage(content, page, size, total), nil
}

func (u *cardUsecase) GetCard(ctx context.Context, id uint, requesterUUID string) (*dto.CardResponse, error) {
	card, err := u.findCard(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.toResponse(ctx, card, requesterUUID)
}

func (u *cardUsecase) SearchCards(ctx context.Context, query dto.SearchQuery) ([]*dto.CardResponse, error) {
	_, size := normalizePage(0, query.Size)
	q := strings.TrimSpace(query.Q)
	if q == "" {
		return nil, fmt.Errorf("%w: q is required", domain.ErrInvalidCard)
	}

	candidates, err := u.cardRepo.FindCandidates(ctx, repository.CardFilter{CategoryID: query.CategoryID}, searchCandidates)
	if err != nil {
		return nil, err
	}

	type scored struct {
		card  *domain.Card
		score float64
	}
	matches := make([]scored, 0)
	for _, c := range candidates {
		score := fuzzy.Score(q,
			fuzzy.Field{Text: c.Title, Weight: 3},
			fuzzy.Field{Text: c.Tags, Weight: 2},
			fuzzy.Field{Text: c.Situation, Weight: 1},
		)
		if score > 0 {
			matches = append(matches, scored{card: c, score: score})
		}
	}

	// Candidates arrive in listing order, so ties keep it
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	if len(matches) > size {
		matches = matches[:size]
	}

	ids := make([]uint, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.card.ID)
	}
	counts, err := u.likeRepo.CountByCardIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	liked, err := u.likeRepo.LikedCardIDs(ctx, query.RequesterUUID, ids)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CardResponse, 0, len(matches))
	for _, m := range matches {
		result = append(result, dto.NewCardResponse(m.card, counts[m.card.ID], liked[m.card.ID]))
	}

	zap.L().Debug("cards searched", zap.String("q", q), zap.Int("candidates", len(candidates)), zap.Int("matches", len(result)))
	return result, nil
}

func (u *cardUsecase) CreateCard(ctx context.Context, req *dto.CreateCardRequest) (*dto.CardResponse, error) {
	if err := validateTitle(req.Title, true); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.UUID) == "" {
		return nil, fmt.Errorf("%w: uuid is required", domain.ErrInvalidCard)
	}

	category, err := u.findCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	exists, err := u.cardRepo.ExistsByTitleAndUUID(ctx, req.Title, req.UUID)
	if err != nil {
		return nil, err
	}
	if exists {
		zap.L().Warn("duplicate card title", zap.String("title", req.Title), zap.String("uuid", req.UUID))
		return nil, fmt.Errorf("%w: %s", domain.ErrCardAlreadyExists, req.Title)
	}

	card := &domain.Card{
		UUID:          req.UUID,
		Title:         req.Title,
		CategoryID:    category.ID,
		Category:      *category,
		Tags:          deref(req.Tags),
		Situation:     deref(req.Situation),
		UsageExamples: deref(req.UsageExamples),
		Content:       deref(req.Content),
	}
	if err := u.cardRepo.Create(ctx, card); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCardAlreadyExists, req.Title)
		}
		return nil, err
	}

	zap.L().Info("card created", zap.Uint("id", card.ID), zap.String("title", card.Title), zap.String("uuid", card.UUID))
	return dto.NewCardResponse(card, 0, false), nil
}

func (u *cardUsecase) UpdateCard(ctx context.Context, id uint, req *dto.UpdateCardRequest) (*dto.CardResponse, error) {
	card, err := u.findCard(ctx, id)
	if err != nil {
		return nil, err
	}

	if !card.OwnedBy(req.UUID) {
		zap.L().Warn("unauthorized card update", zap.Uint("id", id), zap.String("request_uuid", req.UUID))
		return nil, fmt.Errorf("%w: cannot modify card ID %d", domain.ErrUnauthorizedAccess, id)
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		newTitle := *req.Title
		if err := validateTitle(newTitle, false); err != nil {
			return nil, err
		}
		if newTitle != card.Title {
			exists, err := u.cardRepo.ExistsByTitleAndUUID(ctx, newTitle, req.UUID)
			if err != nil {
				return nil, err
			}
			if exists {
				zap.L().Warn("duplicate card title on update", zap.Uint("id", id), zap.String("title", newTitle))
				return nil, fmt.Errorf("%w: %s", domain.ErrCardAlreadyExists, newTitle)
			}
			card.Title = newTitle
		}
	}

	if req.CategoryID != nil && *req.CategoryID != card.CategoryID {
		category, err := u.findCategory(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		card.CategoryID = category.ID
		card.Category = *category
	}

	if req.Tags != nil {
		card.Tags = *req.Tags
	}
	if req.Situation != nil {
		card.Situation = *req.Situation
	}
	if req.UsageExamples != nil {
		card.UsageExamples = *req.UsageExamples
	}
	if req.Content != nil {
		card.Content = *req.Content
	}

	if err := u.cardRepo.Update(ctx, card); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCardAlreadyExists, card.Title)
		}
		return nil, err
	}

	zap.L().Info("card updated", zap.Uint("id", card.ID), zap.String("title", card.Title))
	return u.toResponse(ctx, card, req.UUID)
}

func (u *cardUsecase) DeleteCard(ctx context.Context, id uint, uuid string) error {
	card, err := u.findCard(ctx, id)
	if err != nil {
		return err
	}

	if !card.OwnedBy(uuid) {
		zap.L().Warn("unauthorized card delete", zap.Uint("id", id), zap.String("request_uuid", uuid))
		return fmt.Errorf("%w: cannot delete card ID %d", domain.ErrUnauthorizedAccess, id)
	}

	if err := u.cardRepo.DeleteWithLikes(ctx, id); err != nil {
		return err
	}

	zap.L().Info("card deleted", zap.Uint("id", id), zap.String("title", card.Title))
	return nil
}

func (u *cardUsecase) findCard(ctx context.Context, id uint) (*domain.Card, error) {
	card, err := u.cardRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, fmt.Errorf("%w: ID %d", domain.ErrCardNotFound, id)
	}
	return card, nil
}

func (u *cardUsecase) findCategory(ctx context.Context, id uint) (*categorydomain.Category, error) {
	category, err := u.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		zap.L().Warn("card references missing category", zap.Uint("category_id", id))
		return nil, fmt.Errorf("%w: ID %d", categorydomain.ErrCategoryNotFound, id)
	}
	return category, nil
}

func (u *cardUsecase) toResponse(ctx context.Context, card *domain.Card, requesterUUID string) (*dto.CardResponse, error) {
	count, err := u.likeRepo.CountByCardID(ctx, card.ID)
	if err != nil {
		return nil, err
	}

	liked := false
	if requesterUUID != "" {
		liked, err = u.likeRepo.Exists(ctx, card.ID, requesterUUID)
		if err != nil {
			return nil, err
		}
	}
	return dto.NewCardResponse(card, count, liked), nil
}

func validateTitle(title string, required bool) error {
	if required && strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidCard)
	}
	if utf8.RuneCountInString(title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title must be at most %d characters", domain.ErrInvalidCard, domain.MaxTitleLength)
	}
	return nil
}

func normalizePage(page, size int) (int, int) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return page, size
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
