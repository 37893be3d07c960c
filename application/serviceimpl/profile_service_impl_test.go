package serviceimpl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Madhavladani/adeptjs64/domain/apperror"
	"github.com/Madhavladani/adeptjs64/domain/dto"
	"github.com/Madhavladani/adeptjs64/domain/models"
	"github.com/Madhavladani/adeptjs64/domain/repositories"
)

type fakeUserRepo struct {
	users   map[uuid.UUID]*models.User
	updates int
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *models.User) error {
	r.updates++
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func TestProfileService(t *testing.T) {
	id := uuid.New()
	repo := &fakeUserRepo{users: map[uuid.UUID]*models.User{
		id: {ID: id, FullName: "Jane Doe", Email: "jane@example.com", City: strPtr("Bangkok"), AccountType: models.AccountPro},
	}}
	svc := NewProfileService(repo)
	ctx := context.Background()

	user, err := svc.GetProfile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "pro", user.AccountType.Name())

	updated, err := svc.UpdateProfile(ctx, id, &dto.UpdateProfileRequest{
		FullName: strPtr(" Jane Smith "),
		Country:  strPtr("Thailand"),
		City:     strPtr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", updated.FullName)
	require.NotNil(t, updated.Country)
	assert.Equal(t, "Thailand", *updated.Country)
	assert.Nil(t, updated.City, "empty string clears the field")
	assert.Nil(t, updated.MobileNumber, "omitted fields are untouched")
	assert.Equal(t, "jane@example.com", updated.Email)
	assert.Equal(t, 1, repo.updates)

	_, err = svc.GetProfile(ctx, uuid.New())
	assert.True(t, apperror.IsNotFound(err))
}
