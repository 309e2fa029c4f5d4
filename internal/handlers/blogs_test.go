package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-bloglist/internal/apperr"
	"github.com/sbilibin2017/gw-bloglist/internal/auth"
	"github.com/sbilibin2017/gw-bloglist/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func sampleBlog(owner *models.Identity) *models.BlogWithOwner {
	b := &models.BlogWithOwner{
		BlogDB: models.BlogDB{
			BlogID: uuid.New(),
			Title:  "Go proverbs",
			Author: "Rob Pike",
			URL:    "https://go-proverbs.github.io",
			Likes:  4,
		},
	}
	if owner != nil {
		b.UserID = uuid.NullUUID{UUID: owner.UserID, Valid: true}
		b.OwnerUsername = sql.NullString{String: owner.Username, Valid: true}
		b.OwnerName = sql.NullString{String: owner.Name, Valid: true}
	}
	return b
}

func TestListBlogsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := &models.Identity{UserID: uuid.New(), Username: "alice", Name: "Alice"}
	owned := sampleBlog(owner)
	legacy := sampleBlog(nil)

	svc := NewMockBlogLister(ctrl)
	svc.EXPECT().List(gomock.Any()).Return([]models.BlogWithOwner{*owned, *legacy}, nil)

	rr := httptest.NewRecorder()
	NewListBlogsHandler(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/blogs", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp []BlogResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, owned.BlogID.String(), resp[0].ID)
	assert.Equal(t, &BlogOwnerResponse{ID: owner.UserID.String(), Username: "alice", Name: "Alice"}, resp[0].User)
	assert.Nil(t, resp[1].User)
	assert.NotContains(t, rr.Body.String(), "password")

	svc.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))
	rr = httptest.NewRecorder()
	NewListBlogsHandler(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/blogs", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestGetBlogHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	blog := sampleBlog(nil)

	tests := []struct {
		name         string
		id           string
		mockSetup    func(m *MockBlogGetter)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "found",
			id:   blog.BlogID.String(),
			mockSetup: func(m *MockBlogGetter) {
				m.EXPECT().Get(gomock.Any(), blog.BlogID.String()).Return(blog, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "malformed key",
			id:   "123",
			mockSetup: func(m *MockBlogGetter) {
				m.EXPECT().Get(gomock.Any(), "123").Return(nil, apperr.MalformedKey("123", errors.New("invalid length")))
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "malformatted id",
		},
		{
			name: "not found",
			id:   blog.BlogID.String(),
			mockSetup: func(m *MockBlogGetter) {
				m.EXPECT().Get(gomock.Any(), blog.BlogID.String()).Return(nil, apperr.NotFound("Blog not found"))
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  "Blog not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockBlogGetter(ctrl)
			tt.mockSetup(svc)

			req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/blogs/"+tt.id, nil), "id", tt.id)
			rr := httptest.NewRecorder()
			NewGetBlogHandler(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedErr != "" {
				var resp apperr.Response
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErr, resp.Error)
			}
		})
	}
}

func TestCreateBlogHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := &models.Identity{UserID: uuid.New(), Username: "alice", Name: "Alice"}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockBlogCreator)
		expectedCode int
	}{
		{
			name: "created",
			body: `{"title":"T","author":"alice"}`,
			mockSetup: func(m *MockBlogCreator) {
				m.EXPECT().Create(gomock.Any(), identity, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *models.Identity, f models.BlogFields) (*models.BlogWithOwner, error) {
						assert.Equal(t, "T", *f.Title)
						assert.Equal(t, "alice", *f.Author)
						assert.Nil(t, f.Likes)
						assert.Nil(t, f.URL)
						return sampleBlog(identity), nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "validation failed",
			body: `{"author":"alice"}`,
			mockSetup: func(m *MockBlogCreator) {
				m.EXPECT().Create(gomock.Any(), identity, gomock.Any()).Return(nil, apperr.Validation("title is required"))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "malformed body",
			body:         `{"title":`,
			mockSetup:    func(*MockBlogCreator) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "likes of the wrong type",
			body:         `{"title":"T","author":"a","likes":"many"}`,
			mockSetup:    func(*MockBlogCreator) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockBlogCreator(ctrl)
			tt.mockSetup(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/blogs", strings.NewReader(tt.body))
			req = req.WithContext(auth.WithIdentity(req.Context(), identity))
			rr := httptest.NewRecorder()
			NewCreateBlogHandler(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestUpdateBlogHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := &models.Identity{UserID: uuid.New(), Username: "alice", Name: "Alice"}
	blog := sampleBlog(identity)
	id := blog.BlogID.String()

	tests := []struct {
		name         string
		mockErr      error
		expectedCode int
	}{
		{"updated", nil, http.StatusOK},
		{"forbidden", apperr.Forbidden("Access denied. You can only modify your own blogs"), http.StatusForbidden},
		{"not found", apperr.NotFound("Blog not found"), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockBlogUpdater(ctrl)
			ret := blog
			if tt.mockErr != nil {
				ret = nil
			}
			svc.EXPECT().Update(gomock.Any(), identity, id, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ *models.Identity, _ string, f models.BlogFields) (*models.BlogWithOwner, error) {
					require.NotNil(t, f.Likes)
					assert.Equal(t, 5, *f.Likes)
					assert.Nil(t, f.Title)
					return ret, tt.mockErr
				})

			req := httptest.NewRequest(http.MethodPut, "/api/blogs/"+id, strings.NewReader(`{"likes":5}`))
			req = withURLParam(req.WithContext(auth.WithIdentity(req.Context(), identity)), "id", id)
			rr := httptest.NewRecorder()
			NewUpdateBlogHandler(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestDeleteBlogHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := &models.Identity{UserID: uuid.New(), Username: "alice", Name: "Alice"}
	id := uuid.NewString()

	tests := []struct {
		name         string
		mockErr      error
		expectedCode int
	}{
		{"deleted", nil, http.StatusNoContent},
		{"forbidden", apperr.Forbidden("Access denied"), http.StatusForbidden},
		{"missing token", apperr.Auth(apperr.ReasonMissingToken, nil), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockBlogDeleter(ctrl)
			svc.EXPECT().Delete(gomock.Any(), identity, id).Return(tt.mockErr)

			req := httptest.NewRequest(http.MethodDelete, "/api/blogs/"+id, nil)
			req = withURLParam(req.WithContext(auth.WithIdentity(req.Context(), identity)), "id", id)
			rr := httptest.NewRecorder()
			NewDeleteBlogHandler(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.mockErr == nil {
				assert.Empty(t, rr.Body.String())
			}
		})
	}
}

func TestBlogStatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockStatsGetter(ctrl)

	svc.EXPECT().Get(gomock.Any()).Return(&models.BlogStats{
		TotalLikes: 12,
		Favorite:   &models.BlogDB{Title: "T", Author: "A", Likes: 12},
		MostBlogs:  &models.AuthorBlogs{Author: "A", Blogs: 1},
		MostLikes:  &models.AuthorLikes{Author: "A", Likes: 12},
	}, nil)
	rr := httptest.NewRecorder()
	NewBlogStatsHandler(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/blogs/stats", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"total_likes": 12,
		"favorite_blog": {"title":"T","author":"A","likes":12},
		"most_blogs": {"author":"A","blogs":1},
		"most_likes": {"author":"A","likes":12}
	}`, rr.Body.String())

	svc.EXPECT().Get(gomock.Any()).Return(&models.BlogStats{}, nil)
	rr = httptest.NewRecorder()
	NewBlogStatsHandler(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/blogs/stats", nil))
	assert.JSONEq(t, `{"total_likes":0,"favorite_blog":null,"most_blogs":null,"most_likes":null}`, rr.Body.String())
}
