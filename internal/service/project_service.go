package service

import (
	"context"

	"github.com/portfolio/messaging/internal/model"
)

// ProjectService はポートフォリオ掲載コンテンツのインターフェース
type ProjectService interface {
	// List はカテゴリで絞り込んだプロジェクト一覧を返す（"all" は全件）
	List(ctx context.Context, category string) ([]*model.Project, error)
	Filters(ctx context.Context) ([]model.ProjectFilter, error)
	Services(ctx context.Context) ([]*model.Service, error)
	Skills(ctx context.Context) ([]*model.SkillCategory, error)
}
