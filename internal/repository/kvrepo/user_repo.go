package kvrepo

import (
	"context"
	"encoding/json"

	"github.com/fsdevblog/ecopoints/internal/domain"
	"github.com/fsdevblog/ecopoints/pkg/kvstore"
)

type UserRepository struct {
	store kvstore.Store
}

func NewUserRepository(store kvstore.Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Find(ctx context.Context, userID string) (*domain.UserAccount, error) {
	raw, err := r.store.Get(ctx, UserKey(userID))
	if err != nil {
		return nil, convertErr(err, "finding user %s", userID)
	}

	var account domain.UserAccount
	if jsonErr := json.Unmarshal(raw, &account); jsonErr != nil {
		return nil, convertErr(jsonErr, "decoding user %s", userID)
	}
	return &account, nil
}

func (r *UserRepository) Save(ctx context.Context, account *domain.UserAccount) error {
	raw, marshalErr := json.Marshal(account)
	if marshalErr != nil {
		return convertErr(marshalErr, "encoding user %s", account.UserID)
	}
	return convertErr(r.store.Put(ctx, UserKey(account.UserID), raw), "saving user %s", account.UserID)
}
