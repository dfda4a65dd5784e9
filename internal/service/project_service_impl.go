package service

import (
	"context"
	"strings"

	"github.com/portfolio/messaging/internal/model"
	"github.com/portfolio/messaging/internal/repository"
)

// ProjectServiceImpl は ProjectService の実装
type ProjectServiceImpl struct {
	catalogRepo repository.CatalogRepository
}

// NewProjectService は ProjectServiceImpl を生成する（DI: CatalogRepository を注入）
func NewProjectService(catalogRepo repository.CatalogRepository) ProjectService {
	return &ProjectServiceImpl{catalogRepo: catalogRepo}
}

// List はプロジェクト一覧を取得する。カテゴリは大文字小文字を区別しない
func (s *ProjectServiceImpl) List(ctx context.Context, category string) ([]*model.Project, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		category = model.CategoryAll
	}
	return s.catalogRepo.Projects(ctx, category)
}

// Filters はカテゴリタブの一覧を返す
func (s *ProjectServiceImpl) Filters(ctx context.Context) ([]model.ProjectFilter, error) {
	return s.catalogRepo.ProjectFilters(ctx)
}

// Services は提供サービスの一覧を返す
func (s *ProjectServiceImpl) Services(ctx context.Context) ([]*model.Service, error) {
	return s.catalogRepo.Services(ctx)
}

// Skills はスキルカテゴリの一覧を返す
func (s *ProjectServiceImpl) Skills(ctx context.Context) ([]*model.SkillCategory, error) {
	return s.catalogRepo.SkillCategories(ctx)
}
