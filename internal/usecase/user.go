package usecase

import (
	"context"

	"github.com/Caiohenrks/bot-financeiro-telegram/internal/entity"
)

type UpsertUser struct {
	repo UserRepository
}

func NewUpsertUser(repo UserRepository) *UpsertUser {
	return &UpsertUser{repo: repo}
}

func (u *UpsertUser) Execute(ctx context.Context, user entity.User) error {
	return u.repo.Upsert(ctx, user)
}

type ListUsers struct {
	repo UserRepository
}

func NewListUsers(repo UserRepository) *ListUsers {
	return &ListUsers{repo: repo}
}

func (l *ListUsers) Execute(ctx context.Context) ([]entity.User, error) {
	return l.repo.List(ctx)
}
