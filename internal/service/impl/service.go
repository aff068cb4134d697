// Package impl is implementation of service interface.
package impl

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Naveenmanral1/Vconnect-backend/internal/auth"
	"github.com/Naveenmanral1/Vconnect-backend/internal/entities"
	"github.com/Naveenmanral1/Vconnect-backend/internal/service"
	"github.com/Naveenmanral1/Vconnect-backend/internal/storage"
)

type srv struct {
	s storage.Storage
	t *auth.Tokens
}

// New creates new instance of service.
func New(s storage.Storage, t *auth.Tokens) service.Service {
	return srv{
		s: s,
		t: t,
	}
}

func (s srv) RegisterUser(ctx context.Context, fullName, email, password string) (*entities.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &entities.User{
		ID:           uuid.New(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := s.s.CreateUser(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

func (s srv) LoginUser(ctx context.Context, email, password string) (*entities.User, auth.Pair, error) {
	u, err := s.s.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, auth.Pair{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, auth.Pair{}, service.ErrInvalidCredentials
	}

	pair, err := s.t.IssuePair(u.ID)
	if err != nil {
		return nil, auth.Pair{}, fmt.Errorf("failed to issue token pair: %w", err)
	}

	if err := s.s.SetRefreshToken(ctx, u.ID, pair.Refresh); err != nil {
		return nil, auth.Pair{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return u, pair, nil
}

func (s srv) RefreshSession(ctx context.Context, refreshToken string) (auth.Pair, error) {
	id, err := s.t.VerifyRefresh(refreshToken)
	if err != nil {
		return auth.Pair{}, service.ErrInvalidToken
	}

	var pair auth.Pair

	// Rotation happens in a tx so two concurrent refreshes with the same
	// token can not both succeed.
	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		u, err := tx.GetUserByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}

		if u.RefreshToken == "" || u.RefreshToken != refreshToken {
			return service.ErrInvalidToken
		}

		if pair, err = s.t.IssuePair(u.ID); err != nil {
			return fmt.Errorf("failed to issue token pair: %w", err)
		}

		if err := tx.SetRefreshToken(ctx, u.ID, pair.Refresh); err != nil {
			return fmt.Errorf("failed to store refresh token: %w", err)
		}

		return nil
	}); err != nil {
		return auth.Pair{}, err
	}

	return pair, nil
}

func (s srv) LogoutUser(ctx context.Context, userID uuid.UUID) error {
	if err := s.s.SetRefreshToken(ctx, userID, ""); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}

	return nil
}

func (s srv) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entities.CurrentUser, error) {
	u, err := s.s.GetCurrentUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	return u, nil
}

func (s srv) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error {
	u, err := s.s.GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(oldPassword)); err != nil {
		return service.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.s.SetPasswordHash(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("failed to set password: %w", err)
	}

	return nil
}

func (s srv) CreateProfile(ctx context.Context, p *entities.Profile) (*entities.Profile, error) {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt

	if err := s.s.CreateProfile(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return p, nil
}

func (s srv) UpdateProfile(ctx context.Context, profileID, editor uuid.UUID, p *storage.UpdateProfileParams) (*entities.Profile, *entities.Profile, error) {
	old, err := s.s.GetProfile(ctx, profileID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if old.Owner != editor {
		return nil, nil, service.ErrForbidden
	}

	updated, err := s.s.UpdateProfile(ctx, profileID, p)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return updated, old, nil
}

func (s srv) GetProfileCard(ctx context.Context, owner uuid.UUID, viewer *uuid.UUID) (*entities.ProfileCard, error) {
	card, err := s.s.GetProfileCard(ctx, owner, viewer)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile card: %w", err)
	}

	return card, nil
}

func (s srv) CreatePost(ctx context.Context, p *entities.Post) (*entities.Post, error) {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt

	if err := s.s.CreatePost(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return p, nil
}

func (s srv) UpdatePost(ctx context.Context, postID, editor uuid.UUID, p *storage.UpdatePostParams) (*entities.Post, *entities.Post, error) {
	old, err := s.s.GetPost(ctx, postID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get post: %w", err)
	}

	if old.Owner != editor {
		return nil, nil, service.ErrForbidden
	}

	updated, err := s.s.UpdatePost(ctx, postID, p)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update post: %w", err)
	}

	return updated, old, nil
}

func (s srv) DeletePost(ctx context.Context, postID, requestedBy uuid.UUID) (*entities.Post, error) {
	p, err := s.s.GetPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	if p.Owner != requestedBy {
		return nil, service.ErrForbidden
	}

	if err := s.s.DeletePost(ctx, postID); err != nil {
		return nil, fmt.Errorf("failed to delete post: %w", err)
	}

	return p, nil
}

func (s srv) GetPost(ctx context.Context, postID uuid.UUID, viewer *uuid.UUID) (*entities.PostView, error) {
	v, err := s.s.GetPostView(ctx, postID, viewer)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return v, nil
}

func (s srv) ListPosts(ctx context.Context, viewer *uuid.UUID, order storage.OrderType) ([]*entities.FeedPost, error) {
	posts, err := s.s.ListPosts(ctx, &storage.ListPostsParams{
		Order:  order,
		Viewer: viewer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

func (s srv) ListFollowedPosts(ctx context.Context, viewer uuid.UUID) ([]*entities.FeedPost, error) {
	posts, err := s.s.ListPosts(ctx, &storage.ListPostsParams{
		Order:      storage.DescendingOrder,
		FollowedBy: &viewer,
		Viewer:     &viewer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list followed posts: %w", err)
	}

	return posts, nil
}

func (s srv) ToggleFollow(ctx context.Context, follower, page uuid.UUID) (bool, error) {
	followed, err := s.s.ToggleFollow(ctx, follower, page)
	if err != nil {
		return false, fmt.Errorf("failed to toggle follow: %w", err)
	}

	return followed, nil
}

func (s srv) ListFollowers(ctx context.Context, page uuid.UUID) ([]*entities.Follower, error) {
	followers, err := s.s.ListFollowers(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}

	return followers, nil
}

func (s srv) ListFollowing(ctx context.Context, follower uuid.UUID) ([]*entities.FollowedPage, error) {
	pages, err := s.s.ListFollowing(ctx, follower)
	if err != nil {
		return nil, fmt.Errorf("failed to list following: %w", err)
	}

	return pages, nil
}

func (s srv) ToggleLike(ctx context.Context, likedBy, post uuid.UUID) (bool, error) {
	liked, err := s.s.ToggleLike(ctx, likedBy, post)
	if err != nil {
		return false, fmt.Errorf("failed to toggle like: %w", err)
	}

	return liked, nil
}

func (s srv) ListPostLikes(ctx context.Context, post uuid.UUID) ([]*entities.ProfileSummary, error) {
	likes, err := s.s.ListPostLikes(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to list likes: %w", err)
	}

	// Absence of likes is meaningful here: the original API reports it as
	// not found rather than an empty collection.
	if len(likes) == 0 {
		return nil, storage.ErrNotFound
	}

	return likes, nil
}
