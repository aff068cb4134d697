// Package service contains interface for service business-logic.
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Naveenmanral1/Vconnect-backend/internal/auth"
	"github.com/Naveenmanral1/Vconnect-backend/internal/entities"
	"github.com/Naveenmanral1/Vconnect-backend/internal/storage"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

// ErrForbidden is returned when the caller is not the owning identity for a
// mutation that requires ownership.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidCredentials ...
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken is returned when a refresh token is malformed, expired or
// already rotated out.
var ErrInvalidToken = errors.New("invalid token")

// Service ...
// Not-found and uniqueness failures surface as storage.ErrNotFound and
// storage.ErrAlreadyExists respectively.
type Service interface {
	RegisterUser(ctx context.Context, fullName, email, password string) (*entities.User, error)
	LoginUser(ctx context.Context, email, password string) (*entities.User, auth.Pair, error)
	RefreshSession(ctx context.Context, refreshToken string) (auth.Pair, error)
	LogoutUser(ctx context.Context, userID uuid.UUID) error
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entities.CurrentUser, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error

	CreateProfile(ctx context.Context, p *entities.Profile) (*entities.Profile, error)
	UpdateProfile(ctx context.Context, profileID, editor uuid.UUID, p *storage.UpdateProfileParams) (updated, old *entities.Profile, err error)
	GetProfileCard(ctx context.Context, owner uuid.UUID, viewer *uuid.UUID) (*entities.ProfileCard, error)

	CreatePost(ctx context.Context, p *entities.Post) (*entities.Post, error)
	UpdatePost(ctx context.Context, postID, editor uuid.UUID, p *storage.UpdatePostParams) (updated, old *entities.Post, err error)
	DeletePost(ctx context.Context, postID, requestedBy uuid.UUID) (*entities.Post, error)
	GetPost(ctx context.Context, postID uuid.UUID, viewer *uuid.UUID) (*entities.PostView, error)
	ListPosts(ctx context.Context, viewer *uuid.UUID, order storage.OrderType) ([]*entities.FeedPost, error)
	ListFollowedPosts(ctx context.Context, viewer uuid.UUID) ([]*entities.FeedPost, error)

	ToggleFollow(ctx context.Context, follower, page uuid.UUID) (bool, error)
	ListFollowers(ctx context.Context, page uuid.UUID) ([]*entities.Follower, error)
	ListFollowing(ctx context.Context, follower uuid.UUID) ([]*entities.FollowedPage, error)

	ToggleLike(ctx context.Context, likedBy, post uuid.UUID) (bool, error)
	ListPostLikes(ctx context.Context, post uuid.UUID) ([]*entities.ProfileSummary, error)
}
