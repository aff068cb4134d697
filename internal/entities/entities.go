// Package entities contains main entities of service.
package entities

import (
	"time"

	"github.com/google/uuid"
)

// Gender ...
type Gender string

const (
	// MaleGender ...
	MaleGender Gender = "Male"
	// FemaleGender ...
	FemaleGender Gender = "Female"
)

// IsValid reports whether g is one of the known genders.
func (g Gender) IsValid() bool {
	return g == MaleGender || g == FemaleGender
}

// User is an identity record. RefreshToken holds the single currently valid
// refresh token, empty when the user is logged out.
type User struct {
	ID           uuid.UUID
	FullName     string
	Email        string
	PasswordHash string
	RefreshToken string
	CreatedAt    time.Time
}

// Profile is a 1:1 extension of a User. At most one per owner.
type Profile struct {
	ID          uuid.UUID
	Owner       uuid.UUID
	FirstName   string
	LastName    string
	City        string
	Gender      Gender
	DateOfBirth string
	Bio         string
	Avatar      string
	Cover       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Post ...
type Post struct {
	ID          uuid.UUID
	Owner       uuid.UUID
	Title       string
	Description string
	Image       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PostView is a post with engagement fields computed for a particular viewer.
type PostView struct {
	Post
	LikesCount uint32
	IsLiked    bool
}

// FeedPost is a post enriched for feeds: engagement fields plus a snapshot of
// the owner's current profile. OwnerName and OwnerAvatar are nil when the
// owner has no profile.
type FeedPost struct {
	Post
	LikesCount  uint32
	IsLiked     bool
	OwnerName   *string
	OwnerAvatar *string
}

// ProfileCard is a profile with follow-graph aggregates computed for a
// particular viewer.
type ProfileCard struct {
	Profile
	FullName       string
	Email          string
	FollowersCount uint32
	FollowingCount uint32
	IsFollowed     bool
}

// Follower is one row of a page's followers listing. FollowsPageBack reports
// whether the page follows this follower back.
type Follower struct {
	ID              uuid.UUID
	FullName        string
	Avatar          *string
	FollowersCount  uint32
	FollowsPageBack bool
}

// FollowedPage is one row of a user's following listing.
type FollowedPage struct {
	ID        uuid.UUID
	FullName  string
	Email     string
	FirstName *string
	Avatar    *string
}

// ProfileSummary is a short profile used in likers listings.
type ProfileSummary struct {
	Owner     uuid.UUID
	FirstName string
	LastName  string
	Avatar    string
}

// CurrentUser is the authenticated caller's card.
type CurrentUser struct {
	ID       uuid.UUID
	FullName string
	Email    string
	Avatar   *string
}
