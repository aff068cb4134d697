package server

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Naveenmanral1/Vconnect-backend/internal/auth"
	"github.com/Naveenmanral1/Vconnect-backend/internal/entities"
	"github.com/Naveenmanral1/Vconnect-backend/internal/service"
	"github.com/Naveenmanral1/Vconnect-backend/internal/service/mock"
	"github.com/Naveenmanral1/Vconnect-backend/internal/storage"
)

var (
	testOwnerID  = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	testViewerID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	testPostID   = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

func withViewer(r *http.Request, id uuid.UUID) *http.Request {
	return r.WithContext(auth.WithViewer(r.Context(), id))
}

func Test_listPosts(t *testing.T) {
	timestamp := time.Unix(100, 0)

	r, err := http.NewRequest(http.MethodGet, "/v1/posts", nil)
	require.NoError(t, err)
	r = withViewer(r, testViewerID)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	name, avatar := "John Doe", "/media/a.png"

	s.EXPECT().ListPosts(gomock.Any(), gomock.Any(), storage.DescendingOrder).
		Do(func(_ context.Context, viewer *uuid.UUID, _ storage.OrderType) {
			require.NotNil(t, viewer)
			assert.Equal(t, testViewerID, *viewer)
		}).
		Return([]*entities.FeedPost{
			{
				Post: entities.Post{
					ID:          testPostID,
					Owner:       testOwnerID,
					Title:       "title",
					Description: "text",
					Image:       "/media/i.png",
					CreatedAt:   timestamp,
					UpdatedAt:   timestamp,
				},
				LikesCount:  2,
				IsLiked:     true,
				OwnerName:   &name,
				OwnerAvatar: &avatar,
			},
		}, nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Get("/v1/posts", srv.listPosts)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
[
   {
      "id":"33333333-3333-3333-3333-333333333333",
      "owner":"11111111-1111-1111-1111-111111111111",
      "title":"title",
      "description":"text",
      "image":"/media/i.png",
      "createdAt":100,
      "updatedAt":100,
      "likesCount":2,
      "isLiked":true,
      "ownerName":"John Doe",
      "ownerAvatar":"/media/a.png"
   }
]`, w.Body.String())
}

func Test_listPosts_sortParam(t *testing.T) {
	tt := []struct {
		name  string
		query string
		order storage.OrderType
	}{
		{"default is newest first", "", storage.DescendingOrder},
		{"-createdAt is newest first", "sort=-createdAt", storage.DescendingOrder},
		{"createdAt is oldest first", "sort=createdAt", storage.AscendingOrder},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			r, err := http.NewRequest(http.MethodGet, fmt.Sprintf("/v1/posts?%s", tc.query), nil)
			require.NoError(t, err)

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			s := mock.NewMockService(ctrl)

			// Anonymous request, viewer is nil.
			s.EXPECT().ListPosts(gomock.Any(), nil, tc.order).Return([]*entities.FeedPost{}, nil)

			router := chi.NewRouter()
			srv := server{s: s}
			router.Get("/v1/posts", srv.listPosts)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `[]`, w.Body.String())
		})
	}
}

func Test_listFollowedPosts(t *testing.T) {
	r, err := http.NewRequest(http.MethodGet, "/v1/posts/following-posts", nil)
	require.NoError(t, err)
	r = withViewer(r, testViewerID)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().ListFollowedPosts(gomock.Any(), testViewerID).Return([]*entities.FeedPost{}, nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Get("/v1/posts/following-posts", srv.listFollowedPosts)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func Test_getPost(t *testing.T) {
	timestamp := time.Unix(200, 0)

	r, err := http.NewRequest(http.MethodGet, fmt.Sprintf("/v1/posts/%s", testPostID), nil)
	require.NoError(t, err)
	r = withViewer(r, testViewerID)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().GetPost(gomock.Any(), testPostID, gomock.Any()).Return(&entities.PostView{
		Post: entities.Post{
			ID:          testPostID,
			Owner:       testOwnerID,
			Description: "text",
			Image:       "/media/i.png",
			CreatedAt:   timestamp,
			UpdatedAt:   timestamp,
		},
		LikesCount: 1,
		IsLiked:    false,
	}, nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Get("/v1/posts/{postId}", srv.getPost)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
   "id":"33333333-3333-3333-3333-333333333333",
   "owner":"11111111-1111-1111-1111-111111111111",
   "description":"text",
   "image":"/media/i.png",
   "createdAt":200,
   "updatedAt":200,
   "likesCount":1,
   "isLiked":false
}`, w.Body.String())
}

func Test_getPost_notFound(t *testing.T) {
	r, err := http.NewRequest(http.MethodGet, fmt.Sprintf("/v1/posts/%s", testPostID), nil)
	require.NoError(t, err)
	r = withViewer(r, testViewerID)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().GetPost(gomock.Any(), testPostID, gomock.Any()).Return(nil, storage.ErrNotFound)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Get("/v1/posts/{postId}", srv.getPost)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_getPost_invalidID(t *testing.T) {
	r, err := http.NewRequest(http.MethodGet, "/v1/posts/not-a-uuid", nil)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Get("/v1/posts/{postId}", srv.getPost)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "invalid postId"}`, w.Body.String())
}

func Test_deletePost_forbidden(t *testing.T) {
	r, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("/v1/posts/%s", testPostID), nil)
	require.NoError(t, err)
	r = withViewer(r, testViewerID)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().DeletePost(gomock.Any(), testPostID, testViewerID).Return(nil, service.ErrForbidden)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Delete("/v1/posts/{postId}", srv.deletePost)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func Test_toggleFollow(t *testing.T) {
	tt := []struct {
		name     string
		followed bool
		body     string
	}{
		{"edge created", true, `{"followed": true}`},
		{"edge removed", false, `{"followed": false}`},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			r, err := http.NewRequest(http.MethodPost, fmt.Sprintf("/v1/follows/%s", testOwnerID), nil)
			require.NoError(t, err)
			r = withViewer(r, testViewerID)

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			s := mock.NewMockService(ctrl)

			s.EXPECT().ToggleFollow(gomock.Any(), testViewerID, testOwnerID).Return(tc.followed, nil)

			router := chi.NewRouter()
			srv := server{s: s}
			router.Post("/v1/follows/{pageId}", srv.toggleFollow)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tc.body, w.Body.String())
		})
	}
}

func Test_toggleFollow_pageNotFound(t *testing.T) {
	r, err := http.NewRequest(http.MethodPost, fmt.Sprintf("/v1/follows/%s", testOwnerID), nil)
	require.NoError(t, err)
	r = withViewer(r, testViewerID)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().ToggleFollow(gomock.Any(), testViewerID, testOwnerID).Return(false, storage.ErrNotFound)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Post("/v1/follows/{pageId}", srv.toggleFollow)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_listFollowers(t *testing.T) {
	r, err := http.NewRequest(http.MethodGet, fmt.Sprintf("/v1/follows/%s", testOwnerID), nil)
	require.NoError(t, err)
	r = withViewer(r, testViewerID)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	avatar := "/media/a.png"

	s.EXPECT().ListFollowers(gomock.Any(), testOwnerID).Return([]*entities.Follower{
		{
			ID:              testViewerID,
			FullName:        "Jane Roe",
			Avatar:          &avatar,
			FollowersCount:  3,
			FollowsPageBack: true,
		},
		{
			ID:              testPostID,
			FullName:        "No Profile",
			Avatar:          nil,
			FollowersCount:  0,
			FollowsPageBack: false,
		},
	}, nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Get("/v1/follows/{pageId}", srv.listFollowers)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
[
   {
      "id":"22222222-2222-2222-2222-222222222222",
      "fullName":"Jane Roe",
      "avatar":"/media/a.png",
      "followersCount":3,
      "followedToFollower":true
   },
   {
      "id":"33333333-3333-3333-3333-333333333333",
      "fullName":"No Profile",
      "avatar":null,
      "followersCount":0,
      "followedToFollower":false
   }
]`, w.Body.String())
}

func Test_listFollowing(t *testing.T) {
	r, err := http.NewRequest(http.MethodGet, fmt.Sprintf("/v1/follows/%s/following", testViewerID), nil)
	require.NoError(t, err)
	r = withViewer(r, testViewerID)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	firstName := "John"

	s.EXPECT().ListFollowing(gomock.Any(), testViewerID).Return([]*entities.FollowedPage{
		{
			ID:        testOwnerID,
			FullName:  "John Doe",
			Email:     "john@example.com",
			FirstName: &firstName,
			Avatar:    nil,
		},
	}, nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Get("/v1/follows/{followerId}/following", srv.listFollowing)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
[
   {
      "id":"11111111-1111-1111-1111-111111111111",
      "fullName":"John Doe",
      "email":"john@example.com",
      "firstName":"John",
      "avatar":null
   }
]`, w.Body.String())
}

func Test_toggleLike(t *testing.T) {
	r, err := http.NewRequest(http.MethodPost, fmt.Sprintf("/v1/likes/toggle/%s", testPostID), nil)
	require.NoError(t, err)
	r = withViewer(r, testViewerID)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().ToggleLike(gomock.Any(), testViewerID, testPostID).Return(true, nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Post("/v1/likes/toggle/{postId}", srv.toggleLike)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"isLiked": true}`, w.Body.String())
}

func Test_listPostLikes(t *testing.T) {
	r, err := http.NewRequest(http.MethodGet, fmt.Sprintf("/v1/likes/%s/likes", testPostID), nil)
	require.NoError(t, err)
	r = withViewer(r, testViewerID)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().ListPostLikes(gomock.Any(), testPostID).Return([]*entities.ProfileSummary{
		{
			Owner:     testViewerID,
			FirstName: "Jane",
			LastName:  "Roe",
			Avatar:    "/media/a.png",
		},
	}, nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Get("/v1/likes/{postId}/likes", srv.listPostLikes)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
[
   {
      "owner":"22222222-2222-2222-2222-222222222222",
      "firstName":"Jane",
      "lastName":"Roe",
      "avatar":"/media/a.png"
   }
]`, w.Body.String())
}

func Test_listPostLikes_empty(t *testing.T) {
	r, err := http.NewRequest(http.MethodGet, fmt.Sprintf("/v1/likes/%s/likes", testPostID), nil)
	require.NoError(t, err)
	r = withViewer(r, testViewerID)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	// A post without likes is reported as not found, not as an empty list.
	s.EXPECT().ListPostLikes(gomock.Any(), testPostID).Return(nil, storage.ErrNotFound)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Get("/v1/likes/{postId}/likes", srv.listPostLikes)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_getProfile(t *testing.T) {
	timestamp := time.Unix(300, 0)

	r, err := http.NewRequest(http.MethodGet, fmt.Sprintf("/v1/profiles/%s", testOwnerID), nil)
	require.NoError(t, err)
	r = withViewer(r, testViewerID)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	profileID := uuid.MustParse("44444444-4444-4444-4444-444444444444")

	s.EXPECT().GetProfileCard(gomock.Any(), testOwnerID, gomock.Any()).
		Do(func(_ context.Context, _ uuid.UUID, viewer *uuid.UUID) {
			require.NotNil(t, viewer)
			assert.Equal(t, testViewerID, *viewer)
		}).
		Return(&entities.ProfileCard{
			Profile: entities.Profile{
				ID:          profileID,
				Owner:       testOwnerID,
				FirstName:   "John",
				LastName:    "Doe",
				City:        "Pune",
				Gender:      entities.MaleGender,
				DateOfBirth: "1990-01-01",
				Bio:         "bio",
				Avatar:      "/media/a.png",
				CreatedAt:   timestamp,
				UpdatedAt:   timestamp,
			},
			FullName:       "John Doe",
			Email:          "john@example.com",
			FollowersCount: 5,
			FollowingCount: 2,
			IsFollowed:     true,
		}, nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Get("/v1/profiles/{userId}", srv.getProfile)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
   "id":"44444444-4444-4444-4444-444444444444",
   "owner":"11111111-1111-1111-1111-111111111111",
   "firstName":"John",
   "lastName":"Doe",
   "city":"Pune",
   "gender":"Male",
   "dateOfBirth":"1990-01-01",
   "bio":"bio",
   "avatar":"/media/a.png",
   "createdAt":300,
   "updatedAt":300,
   "fullName":"John Doe",
   "email":"john@example.com",
   "followersCount":5,
   "followingCount":2,
   "isFollowed":true
}`, w.Body.String())
}

func Test_registerUser(t *testing.T) {
	timestamp := time.Unix(400, 0)

	body := `{"fullName": "John Doe", "email": "john@example.com", "password": "secret123"}`
	r, err := http.NewRequest(http.MethodPost, "/v1/users/register", strings.NewReader(body))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().RegisterUser(gomock.Any(), "John Doe", "john@example.com", "secret123").
		Return(&entities.User{
			ID:        testOwnerID,
			FullName:  "John Doe",
			Email:     "john@example.com",
			CreatedAt: timestamp,
		}, nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Post("/v1/users/register", srv.registerUser)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `
{
   "id":"11111111-1111-1111-1111-111111111111",
   "fullName":"John Doe",
   "email":"john@example.com",
   "createdAt":400
}`, w.Body.String())
}

func Test_registerUser_duplicateEmail(t *testing.T) {
	body := `{"fullName": "John Doe", "email": "john@example.com", "password": "secret123"}`
	r, err := http.NewRequest(http.MethodPost, "/v1/users/register", strings.NewReader(body))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().RegisterUser(gomock.Any(), "John Doe", "john@example.com", "secret123").
		Return(nil, storage.ErrAlreadyExists)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Post("/v1/users/register", srv.registerUser)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func Test_loginUser(t *testing.T) {
	timestamp := time.Unix(500, 0)

	body := `{"email": "john@example.com", "password": "secret123"}`
	r, err := http.NewRequest(http.MethodPost, "/v1/users/login", strings.NewReader(body))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().LoginUser(gomock.Any(), "john@example.com", "secret123").
		Return(&entities.User{
			ID:        testOwnerID,
			FullName:  "John Doe",
			Email:     "john@example.com",
			CreatedAt: timestamp,
		}, auth.Pair{Access: "access", Refresh: "refresh"}, nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Post("/v1/users/login", srv.loginUser)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
   "user":{
      "id":"11111111-1111-1111-1111-111111111111",
      "fullName":"John Doe",
      "email":"john@example.com",
      "createdAt":500
   },
   "accessToken":"access",
   "refreshToken":"refresh"
}`, w.Body.String())

	cookies := w.Result().Cookies()
	names := make([]string, len(cookies))
	for i, c := range cookies {
		names[i] = c.Name
	}
	assert.Contains(t, names, auth.AccessTokenCookie)
	assert.Contains(t, names, auth.RefreshTokenCookie)
}

func Test_loginUser_invalidCredentials(t *testing.T) {
	body := `{"email": "john@example.com", "password": "wrong"}`
	r, err := http.NewRequest(http.MethodPost, "/v1/users/login", strings.NewReader(body))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().LoginUser(gomock.Any(), "john@example.com", "wrong").
		Return(nil, auth.Pair{}, service.ErrInvalidCredentials)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Post("/v1/users/login", srv.loginUser)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func Test_refreshToken(t *testing.T) {
	body := `{"refreshToken": "old-refresh"}`
	r, err := http.NewRequest(http.MethodPost, "/v1/users/refresh-token", strings.NewReader(body))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().RefreshSession(gomock.Any(), "old-refresh").
		Return(auth.Pair{Access: "new-access", Refresh: "new-refresh"}, nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Post("/v1/users/refresh-token", srv.refreshToken)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"accessToken": "new-access", "refreshToken": "new-refresh"}`, w.Body.String())
}

func Test_refreshToken_rotatedOut(t *testing.T) {
	body := `{"refreshToken": "stale"}`
	r, err := http.NewRequest(http.MethodPost, "/v1/users/refresh-token", strings.NewReader(body))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().RefreshSession(gomock.Any(), "stale").Return(auth.Pair{}, service.ErrInvalidToken)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Post("/v1/users/refresh-token", srv.refreshToken)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func Test_getCurrentUser(t *testing.T) {
	r, err := http.NewRequest(http.MethodGet, "/v1/users/current-user", nil)
	require.NoError(t, err)
	r = withViewer(r, testViewerID)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	avatar := "/media/a.png"

	s.EXPECT().GetCurrentUser(gomock.Any(), testViewerID).Return(&entities.CurrentUser{
		ID:       testViewerID,
		FullName: "Jane Roe",
		Email:    "jane@example.com",
		Avatar:   &avatar,
	}, nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Get("/v1/users/current-user", srv.getCurrentUser)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
   "id":"22222222-2222-2222-2222-222222222222",
   "fullName":"Jane Roe",
   "email":"jane@example.com",
   "avatar":"/media/a.png"
}`, w.Body.String())
}

func Test_createProfile_invalidGender(t *testing.T) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	for k, v := range map[string]string{
		"firstName":   "John",
		"lastName":    "Doe",
		"city":        "Pune",
		"gender":      "Other",
		"dateOfBirth": "1990-01-01",
		"bio":         "bio",
	} {
		require.NoError(t, form.WriteField(k, v))
	}
	require.NoError(t, form.Close())

	r, err := http.NewRequest(http.MethodPost, "/v1/profiles", &body)
	require.NoError(t, err)
	r.Header.Set("Content-Type", form.FormDataContentType())
	r = withViewer(r, testViewerID)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Post("/v1/profiles", srv.createProfile)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "gender must be Male or Female"}`, w.Body.String())
}

func Test_createPost_missingDescription(t *testing.T) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	require.NoError(t, form.WriteField("title", "title"))
	require.NoError(t, form.Close())

	r, err := http.NewRequest(http.MethodPost, "/v1/posts", &body)
	require.NoError(t, err)
	r.Header.Set("Content-Type", form.FormDataContentType())
	r = withViewer(r, testViewerID)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Post("/v1/posts", srv.createPost)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "description is required"}`, w.Body.String())
}

func Test_requiredAuth(t *testing.T) {
	t1 := auth.New("access", "refresh", time.Minute, time.Hour)

	pair, err := t1.IssuePair(testViewerID)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().LogoutUser(gomock.Any(), testViewerID).Return(nil)

	router := chi.NewRouter()
	srv := server{s: s, t: t1}
	router.With(t1.Required).Post("/v1/users/logout", srv.logoutUser)

	t.Run("no token", func(t *testing.T) {
		r, err := http.NewRequest(http.MethodPost, "/v1/users/logout", nil)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("bearer token", func(t *testing.T) {
		r, err := http.NewRequest(http.MethodPost, "/v1/users/logout", nil)
		require.NoError(t, err)
		r.Header.Set("Authorization", "Bearer "+pair.Access)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		r, err := http.NewRequest(http.MethodPost, "/v1/users/logout", nil)
		require.NoError(t, err)
		r.Header.Set("Authorization", "Bearer "+pair.Refresh)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
