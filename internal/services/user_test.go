package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-bloglist/internal/models"
	"github.com/sbilibin2017/gw-bloglist/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestUserService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lister := services.NewMockUserLister(ctrl)
	svc := services.NewUserService(lister)
	ctx := context.Background()

	users := []models.UserWithBlogs{{User: models.UserDB{UserID: uuid.New(), Username: "alice"}}}

	lister.EXPECT().List(ctx).Return(users, nil)
	got, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, users, got)

	lister.EXPECT().List(ctx).Return(nil, errors.New("db error"))
	got, err = svc.List(ctx)
	assert.EqualError(t, err, "db error")
	assert.Nil(t, got)
}
