package repository

import (
	"testing"

	"github.com/lshigami/MedQuest/internal/model"
	"github.com/lshigami/MedQuest/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository_UniqueEmail(t *testing.T) {
	repo := NewUserRepository(testutil.NewDB(t))

	require.NoError(t, repo.Create(&model.User{Email: "dup@x.io", Password: "h", Role: model.RoleUser, SubscriptionStatus: model.SubscriptionInactive}))
	err := repo.Create(&model.User{Email: "dup@x.io", Password: "h2", Role: model.RoleUser, SubscriptionStatus: model.SubscriptionInactive})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestUserRepository_UpdateSubscriptionStatus(t *testing.T) {
	repo := NewUserRepository(testutil.NewDB(t))
	u := &model.User{Email: "sub@x.io", Password: "h", Role: model.RoleUser, SubscriptionStatus: model.SubscriptionInactive}
	require.NoError(t, repo.Create(u))

	require.NoError(t, repo.UpdateSubscriptionStatus(u.ID, model.SubscriptionActive))
	require.NoError(t, repo.UpdateSubscriptionStatus(u.ID, model.SubscriptionActive))

	got, err := repo.FindByEmail("sub@x.io")
	require.NoError(t, err)
	assert.Equal(t, model.SubscriptionActive, got.SubscriptionStatus)
}
