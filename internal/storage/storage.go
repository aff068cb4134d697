// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Naveenmanral1/Vconnect-backend/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// ErrAlreadyExists is returned when a uniqueness constraint is violated
// (duplicate email, second profile for the same owner).
var ErrAlreadyExists = fmt.Errorf("already exists")

// OrderType ...
type OrderType string

const (
	// AscendingOrder ...
	AscendingOrder OrderType = "asc"
	// DescendingOrder ...
	DescendingOrder OrderType = "desc"
)

// ListPostsParams ...
// FollowedBy filters posts down to owners followed by the given user.
// Viewer, when set, is used to compute per-viewer fields (isLiked); a nil
// viewer yields the default-deny value.
type ListPostsParams struct {
	Order      OrderType
	FollowedBy *uuid.UUID
	Viewer     *uuid.UUID
}

// UpdateProfileParams ...
// Nil fields are left unchanged.
type UpdateProfileParams struct {
	FirstName   *string
	LastName    *string
	City        *string
	Gender      *entities.Gender
	DateOfBirth *string
	Bio         *string
	Avatar      *string
	Cover       *string
}

// UpdatePostParams ...
// Nil fields are left unchanged.
type UpdatePostParams struct {
	Title       *string
	Description *string
	Image       *string
}

// Storage provides methods for interacting with database.
type Storage interface {
	InTx(ctx context.Context, f func(s Storage) error) error

	CreateUser(ctx context.Context, u *entities.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
	SetRefreshToken(ctx context.Context, id uuid.UUID, token string) error
	SetPasswordHash(ctx context.Context, id uuid.UUID, hash string) error
	GetCurrentUser(ctx context.Context, id uuid.UUID) (*entities.CurrentUser, error)

	CreateProfile(ctx context.Context, p *entities.Profile) error
	GetProfile(ctx context.Context, id uuid.UUID) (*entities.Profile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, p *UpdateProfileParams) (*entities.Profile, error)
	GetProfileCard(ctx context.Context, owner uuid.UUID, viewer *uuid.UUID) (*entities.ProfileCard, error)

	CreatePost(ctx context.Context, p *entities.Post) error
	GetPost(ctx context.Context, id uuid.UUID) (*entities.Post, error)
	UpdatePost(ctx context.Context, id uuid.UUID, p *UpdatePostParams) (*entities.Post, error)
	DeletePost(ctx context.Context, id uuid.UUID) error
	GetPostView(ctx context.Context, id uuid.UUID, viewer *uuid.UUID) (*entities.PostView, error)
	ListPosts(ctx context.Context, p *ListPostsParams) ([]*entities.FeedPost, error)

	ToggleFollow(ctx context.Context, follower, page uuid.UUID) (bool, error)
	ListFollowers(ctx context.Context, page uuid.UUID) ([]*entities.Follower, error)
	ListFollowing(ctx context.Context, follower uuid.UUID) ([]*entities.FollowedPage, error)

	ToggleLike(ctx context.Context, likedBy, post uuid.UUID) (bool, error)
	ListPostLikes(ctx context.Context, post uuid.UUID) ([]*entities.ProfileSummary, error)
}
