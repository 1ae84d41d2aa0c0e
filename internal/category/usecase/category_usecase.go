package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"howtouseai-backend/internal/category/domain"
	"howtouseai-backend/internal/category/dto"
	"howtouseai-backend/internal/category/repository"
	"howtouseai-backend/pkg/database"

	"go.uber.org/zap"
)

// categoryUsecase implements CategoryUsecase interface
type categoryUsecase struct {
	categoryRepo repository.CategoryRepository
	icons        IconStorer
}

// NewCategoryUsecase creates a new instance of categoryUsecase
func NewCategoryUsecase(categoryRepo repository.CategoryRepository, icons IconStorer) CategoryUsecase {
	return &categoryUsecase{
		categoryRepo: categoryRepo,
		icons:        icons,
	}
}

func (u *categoryUsecase) ListCategories(ctx context.Context) ([]*dto.CategoryResponse, error) {
	categories, err := u.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, dto.NewCategoryResponse(c))
	}
	zap.L().Debug("categories listed", zap.Int("count", len(result)))
	return result, nil
}

func (u *categoryUsecase) GetCategory(ctx context.Context, id uint) (*dto.CategoryResponse, error) {
	category, err := u.findCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewCategoryResponse(category), nil
}

func (u *categoryUsecase) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if !validName(req.Name) {
		return nil, domain.ErrInvalidCategoryName
	}

	exists, err := u.categoryRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		zap.L().Warn("duplicate category name", zap.String("name", req.Name))
		return nil, fmt.Errorf("%w: %s", domain.ErrCategoryAlreadyExists, req.Name)
	}

	iconURL, err := u.icons.Store(ctx, req.Icon)
	if err != nil {
		return nil, err
	}

	category := &domain.Category{
		Name:    req.Name,
		IconURL: iconURL,
	}
	if err := u.categoryRepo.Create(ctx, category); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCategoryAlreadyExists, req.Name)
		}
		return nil, err
	}

	zap.L().Info("category created", zap.Uint("id", category.ID), zap.String("name", category.Name), zap.String("icon_url", iconURL))
	return dto.NewCategoryResponse(category), nil
}

func (u *categoryUsecase) UpdateCategory(ctx context.Context, id uint, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := u.findCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		newName := *req.Name
		if !validName(newName) {
			return nil, domain.ErrInvalidCategoryName
		}
		if newName != category.Name {
			exists, err := u.categoryRepo.ExistsByName(ctx, newName)
			if err != nil {
				return nil, err
			}
			if exists {
				zap.L().Warn("duplicate category name on update", zap.Uint("id", id), zap.String("name", newName))
				return nil, fmt.Errorf("%w: %s", domain.ErrCategoryAlreadyExists, newName)
			}
			category.Name = newName
		}
	}

	if req.Icon != nil && req.Icon.Size > 0 {
		iconURL, err := u.icons.Store(ctx, req.Icon)
		if err != nil {
			return nil, err
		}
		category.IconURL = iconURL
	}

	if err := u.categoryRepo.Update(ctx, category); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCategoryAlreadyExists, category.Name)
		}
		return nil, err
	}

	zap.L().Info("category updated", zap.Uint("id", category.ID), zap.String("name", category.Name))
	return dto.NewCategoryResponse(category), nil
}

func (u *categoryUsecase) findCategory(ctx context.Context, id uint) (*domain.Category, error) {
	category, err := u.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: ID %d", domain.ErrCategoryNotFound, id)
	}
	return category, nil
}

func validName(name string) bool {
	return strings.TrimSpace(name) != "" && utf8.RuneCountInString(name) <= domain.MaxNameLength
}
