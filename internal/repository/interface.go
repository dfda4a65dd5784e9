package repository

import (
	"context"

	"github.com/portfolio/messaging/internal/model"
)

// ConversationRepository はチャットの会話ログ。追加のみで、変更・削除はできない。
type ConversationRepository interface {
	// Append adds msg to the end of the log.
	Append(ctx context.Context, msg *model.ChatMessage) error
	// List returns the log in insertion order. The slice is a copy.
	List(ctx context.Context) ([]model.ChatMessage, error)
	// Len returns the number of messages in the log.
	Len(ctx context.Context) (int, error)
}

// CatalogRepository serves the static portfolio content.
type CatalogRepository interface {
	// Projects returns projects in the given category; "all" or "" returns every project.
	Projects(ctx context.Context, category string) ([]*model.Project, error)
	ProjectFilters(ctx context.Context) ([]model.ProjectFilter, error)
	Services(ctx context.Context) ([]*model.Service, error)
	SkillCategories(ctx context.Context) ([]*model.SkillCategory, error)
}
