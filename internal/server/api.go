package server

import (
	"github.com/google/uuid"

	"github.com/Naveenmanral1/Vconnect-backend/internal/entities"
)

const maxBodySize = 16 << 20

// RegisterUserRequest ...
// swagger:model
type RegisterUserRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginUserRequest ...
// swagger:model
type LoginUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshTokenRequest ...
// swagger:model
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// UpdatePasswordRequest ...
// swagger:model
type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// User ...
type User struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	CreatedAt uint64    `json:"createdAt"`
}

// LoginUserResponse ...
// swagger:model
type LoginUserResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenPairResponse ...
// swagger:model
type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// CurrentUser ...
type CurrentUser struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email"`
	Avatar   *string   `json:"avatar"`
}

// Profile ...
type Profile struct {
	ID          uuid.UUID `json:"id"`
	Owner       uuid.UUID `json:"owner"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	City        string    `json:"city"`
	Gender      string    `json:"gender"`
	DateOfBirth string    `json:"dateOfBirth"`
	Bio         string    `json:"bio"`
	Avatar      string    `json:"avatar"`
	Cover       string    `json:"cover,omitempty"`
	CreatedAt   uint64    `json:"createdAt"`
	UpdatedAt   uint64    `json:"updatedAt"`
}

// ProfileCard is a profile with follow-graph aggregates relative to the
// caller.
// swagger:model
type ProfileCard struct {
	Profile
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	FollowersCount uint32 `json:"followersCount"`
	FollowingCount uint32 `json:"followingCount"`
	IsFollowed     bool   `json:"isFollowed"`
}

// Post ...
type Post struct {
	ID          uuid.UUID `json:"id"`
	Owner       uuid.UUID `json:"owner"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CreatedAt   uint64    `json:"createdAt"`
	UpdatedAt   uint64    `json:"updatedAt"`
}

// PostView ...
// swagger:model
type PostView struct {
	Post
	LikesCount uint32 `json:"likesCount"`
	IsLiked    bool   `json:"isLiked"`
}

// FeedPost ...
// swagger:model
type FeedPost struct {
	Post
	LikesCount  uint32  `json:"likesCount"`
	IsLiked     bool    `json:"isLiked"`
	OwnerName   *string `json:"ownerName"`
	OwnerAvatar *string `json:"ownerAvatar"`
}

// ToggleFollowResponse ...
// swagger:model
type ToggleFollowResponse struct {
	Followed bool `json:"followed"`
}

// ToggleLikeResponse ...
// swagger:model
type ToggleLikeResponse struct {
	IsLiked bool `json:"isLiked"`
}

// Follower is one row of a page's followers listing.
type Follower struct {
	ID                 uuid.UUID `json:"id"`
	FullName           string    `json:"fullName"`
	Avatar             *string   `json:"avatar"`
	FollowersCount     uint32    `json:"followersCount"`
	FollowedToFollower bool      `json:"followedToFollower"`
}

// FollowedPage ...
type FollowedPage struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	FirstName *string   `json:"firstName"`
	Avatar    *string   `json:"avatar"`
}

// LikerProfile ...
type LikerProfile struct {
	Owner     uuid.UUID `json:"owner"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Avatar    string    `json:"avatar"`
}

func toAPIUser(u *entities.User) User {
	return User{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		CreatedAt: uint64(u.CreatedAt.Unix()),
	}
}

func toAPICurrentUser(u *entities.CurrentUser) CurrentUser {
	return CurrentUser{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Avatar:   u.Avatar,
	}
}

func toAPIProfile(p *entities.Profile) Profile {
	return Profile{
		ID:          p.ID,
		Owner:       p.Owner,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		City:        p.City,
		Gender:      string(p.Gender),
		DateOfBirth: p.DateOfBirth,
		Bio:         p.Bio,
		Avatar:      p.Avatar,
		Cover:       p.Cover,
		CreatedAt:   uint64(p.CreatedAt.Unix()),
		UpdatedAt:   uint64(p.UpdatedAt.Unix()),
	}
}

func toAPIProfileCard(c *entities.ProfileCard) ProfileCard {
	return ProfileCard{
		Profile:        toAPIProfile(&c.Profile),
		FullName:       c.FullName,
		Email:          c.Email,
		FollowersCount: c.FollowersCount,
		FollowingCount: c.FollowingCount,
		IsFollowed:     c.IsFollowed,
	}
}

func toAPIPost(p *entities.Post) Post {
	return Post{
		ID:          p.ID,
		Owner:       p.Owner,
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
		CreatedAt:   uint64(p.CreatedAt.Unix()),
		UpdatedAt:   uint64(p.UpdatedAt.Unix()),
	}
}

func toAPIPostView(v *entities.PostView) PostView {
	return PostView{
		Post:       toAPIPost(&v.Post),
		LikesCount: v.LikesCount,
		IsLiked:    v.IsLiked,
	}
}

func toAPIFeedPosts(posts []*entities.FeedPost) []FeedPost {
	out := make([]FeedPost, len(posts))
	for i, v := range posts {
		out[i] = FeedPost{
			Post:        toAPIPost(&v.Post),
			LikesCount:  v.LikesCount,
			IsLiked:     v.IsLiked,
			OwnerName:   v.OwnerName,
			OwnerAvatar: v.OwnerAvatar,
		}
	}

	return out
}

func toAPIFollowers(followers []*entities.Follower) []Follower {
	out := make([]Follower, len(followers))
	for i, v := range followers {
		out[i] = Follower{
			ID:                 v.ID,
			FullName:           v.FullName,
			Avatar:             v.Avatar,
			FollowersCount:     v.FollowersCount,
			FollowedToFollower: v.FollowsPageBack,
		}
	}

	return out
}

func toAPIFollowedPages(pages []*entities.FollowedPage) []FollowedPage {
	out := make([]FollowedPage, len(pages))
	for i, v := range pages {
		out[i] = FollowedPage{
			ID:        v.ID,
			FullName:  v.FullName,
			Email:     v.Email,
			FirstName: v.FirstName,
			Avatar:    v.Avatar,
		}
	}

	return out
}

func toAPILikerProfiles(likes []*entities.ProfileSummary) []LikerProfile {
	out := make([]LikerProfile, len(likes))
	for i, v := range likes {
		out[i] = LikerProfile{
			Owner:     v.Owner,
			FirstName: v.FirstName,
			LastName:  v.LastName,
			Avatar:    v.Avatar,
		}
	}

	return out
}
