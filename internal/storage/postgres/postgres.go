// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/Naveenmanral1/Vconnect-backend/internal/entities"
	"github.com/Naveenmanral1/Vconnect-backend/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")
var errBeginCalledWithinTx = errors.New("can not run InTx in tx")

const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
)

type pg struct {
	ext sqlx.ExtContext
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

type userDTO struct {
	ID           uuid.UUID `db:"id"`
	FullName     string    `db:"full_name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	RefreshToken string    `db:"refresh_token"`
	CreatedAt    time.Time `db:"created_at"`
}

type profileDTO struct {
	ID          uuid.UUID `db:"id"`
	Owner       uuid.UUID `db:"owner"`
	FirstName   string    `db:"first_name"`
	LastName    string    `db:"last_name"`
	City        string    `db:"city"`
	Gender      string    `db:"gender"`
	DateOfBirth string    `db:"date_of_birth"`
	Bio         string    `db:"bio"`
	Avatar      string    `db:"avatar"`
	Cover       string    `db:"cover"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type postDTO struct {
	ID          uuid.UUID `db:"id"`
	Owner       uuid.UUID `db:"owner"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Image       string    `db:"image"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (s pg) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return errBeginCalledWithinTx
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := f(pg{ext: tx}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

func (s pg) CreateUser(ctx context.Context, u *entities.User) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO users(id, full_name, email, password_hash, created_at)
			VALUES($1, $2, $3, $4, $5)
		`, u.ID, u.FullName, u.Email, u.PasswordHash, u.CreatedAt.UTC(),
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == uniqueViolation {
			return storage.ErrAlreadyExists
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return s.getUser(ctx, `WHERE id = $1`, id)
}

func (s pg) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return s.getUser(ctx, `WHERE email = $1`, email)
}

func (s pg) getUser(ctx context.Context, where string, arg interface{}) (*entities.User, error) {
	var u userDTO

	if err := sqlx.GetContext(ctx, s.ext, &u,
		`SELECT id, full_name, email, password_hash, refresh_token, created_at FROM users `+where,
		arg,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.User{
		ID:           u.ID,
		FullName:     u.FullName,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		RefreshToken: u.RefreshToken,
		CreatedAt:    u.CreatedAt,
	}, nil
}

func (s pg) SetRefreshToken(ctx context.Context, id uuid.UUID, token string) error {
	res, err := s.ext.ExecContext(ctx, `UPDATE users SET refresh_token=$2 WHERE id=$1`, id, token)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) SetPasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	res, err := s.ext.ExecContext(ctx, `UPDATE users SET password_hash=$2 WHERE id=$1`, id, hash)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) GetCurrentUser(ctx context.Context, id uuid.UUID) (*entities.CurrentUser, error) {
	var u struct {
		ID       uuid.UUID `db:"id"`
		FullName string    `db:"full_name"`
		Email    string    `db:"email"`
		Avatar   *string   `db:"avatar"`
	}

	if err := sqlx.GetContext(ctx, s.ext, &u, `
			SELECT u.id, u.full_name, u.email, p.avatar
			FROM users u
			LEFT JOIN profile p ON p.owner = u.id
			WHERE u.id = $1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.CurrentUser{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Avatar:   u.Avatar,
	}, nil
}

func (s pg) CreateProfile(ctx context.Context, p *entities.Profile) error {
	profile := profileDTO{
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
		CreatedAt:   p.CreatedAt.UTC(),
		UpdatedAt:   p.CreatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext, `
			INSERT INTO profile(id, owner, first_name, last_name, city, gender, date_of_birth, bio, avatar, cover, created_at, updated_at)
			VALUES(:id, :owner, :first_name, :last_name, :city, :gender, :date_of_birth, :bio, :avatar, :cover, :created_at, :updated_at)
		`, profile,
	); err != nil {
		if err, ok := err.(*pq.Error); ok {
			switch err.Code {
			case uniqueViolation:
				return storage.ErrAlreadyExists
			case foreignKeyViolation:
				return storage.ErrNotFound
			}
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetProfile(ctx context.Context, id uuid.UUID) (*entities.Profile, error) {
	var p profileDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, `
			SELECT id, owner, first_name, last_name, city, gender, date_of_birth, bio, avatar, cover, created_at, updated_at
			FROM profile
			WHERE id = $1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toProfile(&p), nil
}

func (s pg) UpdateProfile(ctx context.Context, id uuid.UUID, p *storage.UpdateProfileParams) (*entities.Profile, error) {
	var gender *string
	if p.Gender != nil {
		g := string(*p.Gender)
		gender = &g
	}

	var out profileDTO

	if err := sqlx.GetContext(ctx, s.ext, &out, `
			UPDATE profile SET
				first_name=COALESCE($2, first_name),
				last_name=COALESCE($3, last_name),
				city=COALESCE($4, city),
				gender=COALESCE($5, gender),
				date_of_birth=COALESCE($6, date_of_birth),
				bio=COALESCE($7, bio),
				avatar=COALESCE($8, avatar),
				cover=COALESCE($9, cover),
				updated_at=now()
			WHERE id=$1
			RETURNING id, owner, first_name, last_name, city, gender, date_of_birth, bio, avatar, cover, created_at, updated_at
		`, id, p.FirstName, p.LastName, p.City, gender, p.DateOfBirth, p.Bio, p.Avatar, p.Cover,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to exec: %w", err)
	}

	return toProfile(&out), nil
}

func (s pg) GetProfileCard(ctx context.Context, owner uuid.UUID, viewer *uuid.UUID) (*entities.ProfileCard, error) {
	var card struct {
		profileDTO
		FullName       string `db:"full_name"`
		Email          string `db:"email"`
		FollowersCount uint32 `db:"followers_count"`
		FollowingCount uint32 `db:"following_count"`
		IsFollowed     bool   `db:"is_followed"`
	}

	// A NULL viewer matches no follow edge, so is_followed defaults to false.
	if err := sqlx.GetContext(ctx, s.ext, &card, `
			SELECT
				p.id, p.owner, p.first_name, p.last_name, p.city, p.gender, p.date_of_birth,
				p.bio, p.avatar, p.cover, p.created_at, p.updated_at,
				u.full_name, u.email,
				(SELECT COUNT(*) FROM follow WHERE page = p.owner) AS followers_count,
				(SELECT COUNT(*) FROM follow WHERE follower = p.owner) AS following_count,
				EXISTS(SELECT 1 FROM follow WHERE page = p.owner AND follower = $2) AS is_followed
			FROM profile p
			JOIN users u ON u.id = p.owner
			WHERE p.owner = $1
		`, owner, viewer,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.ProfileCard{
		Profile:        *toProfile(&card.profileDTO),
		FullName:       card.FullName,
		Email:          card.Email,
		FollowersCount: card.FollowersCount,
		FollowingCount: card.FollowingCount,
		IsFollowed:     card.IsFollowed,
	}, nil
}

func (s pg) CreatePost(ctx context.Context, p *entities.Post) error {
	post := postDTO{
		ID:          p.ID,
		Owner:       p.Owner,
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt.UTC(),
		UpdatedAt:   p.CreatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext, `
			INSERT INTO post(id, owner, title, description, image, created_at, updated_at)
			VALUES(:id, :owner, :title, :description, :image, :created_at, :updated_at)
		`, post,
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetPost(ctx context.Context, id uuid.UUID) (*entities.Post, error) {
	var p postDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, `
			SELECT id, owner, title, description, image, created_at, updated_at
			FROM post
			WHERE id = $1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toPost(&p), nil
}

func (s pg) UpdatePost(ctx context.Context, id uuid.UUID, p *storage.UpdatePostParams) (*entities.Post, error) {
	var out postDTO

	if err := sqlx.GetContext(ctx, s.ext, &out, `
			UPDATE post SET
				title=COALESCE($2, title),
				description=COALESCE($3, description),
				image=COALESCE($4, image),
				updated_at=now()
			WHERE id=$1
			RETURNING id, owner, title, description, image, created_at, updated_at
		`, id, p.Title, p.Description, p.Image,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to exec: %w", err)
	}

	return toPost(&out), nil
}

func (s pg) DeletePost(ctx context.Context, id uuid.UUID) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM post WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) GetPostView(ctx context.Context, id uuid.UUID, viewer *uuid.UUID) (*entities.PostView, error) {
	var view struct {
		postDTO
		LikesCount uint32 `db:"likes_count"`
		IsLiked    bool   `db:"is_liked"`
	}

	if err := sqlx.GetContext(ctx, s.ext, &view, `
			SELECT
				p.id, p.owner, p.title, p.description, p.image, p.created_at, p.updated_at,
				(SELECT COUNT(*) FROM "like" l WHERE l.post = p.id) AS likes_count,
				EXISTS(SELECT 1 FROM "like" l WHERE l.post = p.id AND l.liked_by = $2) AS is_liked
			FROM post p
			WHERE p.id = $1
		`, id, viewer,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.PostView{
		Post:       *toPost(&view.postDTO),
		LikesCount: view.LikesCount,
		IsLiked:    view.IsLiked,
	}, nil
}

func (s pg) ListPosts(ctx context.Context, p *storage.ListPostsParams) ([]*entities.FeedPost, error) {
	order := "DESC"
	if p.Order == storage.AscendingOrder {
		order = "ASC"
	}

	where := ""
	if p.FollowedBy != nil {
		where = `WHERE p.owner IN (SELECT page FROM follow WHERE follower = $2)`
	}

	// seq keeps the order stable when created_at collides.
	query := fmt.Sprintf(`
			SELECT
				p.id, p.owner, p.title, p.description, p.image, p.created_at, p.updated_at,
				(SELECT COUNT(*) FROM "like" l WHERE l.post = p.id) AS likes_count,
				EXISTS(SELECT 1 FROM "like" l WHERE l.post = p.id AND l.liked_by = $1) AS is_liked,
				pr.first_name AS owner_name,
				pr.avatar AS owner_avatar
			FROM post p
			LEFT JOIN profile pr ON pr.owner = p.owner
			%s
			ORDER BY p.created_at %s, p.seq ASC
		`, where, order)

	args := []interface{}{p.Viewer}
	if p.FollowedBy != nil {
		args = append(args, *p.FollowedBy)
	}

	var rows []*struct {
		postDTO
		LikesCount  uint32  `db:"likes_count"`
		IsLiked     bool    `db:"is_liked"`
		OwnerName   *string `db:"owner_name"`
		OwnerAvatar *string `db:"owner_avatar"`
	}

	if err := sqlx.SelectContext(ctx, s.ext, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.FeedPost, len(rows))
	for i, v := range rows {
		out[i] = &entities.FeedPost{
			Post:        *toPost(&v.postDTO),
			LikesCount:  v.LikesCount,
			IsLiked:     v.IsLiked,
			OwnerName:   v.OwnerName,
			OwnerAvatar: v.OwnerAvatar,
		}
	}

	return out, nil
}

func (s pg) ToggleFollow(ctx context.Context, follower, page uuid.UUID) (bool, error) {
	return s.toggle(ctx,
		`DELETE FROM follow WHERE follower=$1 AND page=$2`,
		`INSERT INTO follow(follower, page) VALUES($1, $2) ON CONFLICT DO NOTHING`,
		follower, page,
	)
}

func (s pg) ToggleLike(ctx context.Context, likedBy, post uuid.UUID) (bool, error) {
	return s.toggle(ctx,
		`DELETE FROM "like" WHERE liked_by=$1 AND post=$2`,
		`INSERT INTO "like"(liked_by, post) VALUES($1, $2) ON CONFLICT DO NOTHING`,
		likedBy, post,
	)
}

// toggle flips an edge's existence. The composite primary key makes a
// duplicated edge impossible whatever the interleaving; concurrent toggles
// on the same key serialize as last-committer-wins.
func (s pg) toggle(ctx context.Context, del, ins string, from, to uuid.UUID) (bool, error) {
	res, err := s.ext.ExecContext(ctx, del, from, to)
	if err != nil {
		return false, fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c > 0 {
		return false, nil
	}

	if _, err := s.ext.ExecContext(ctx, ins, from, to); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return false, storage.ErrNotFound
		}

		return false, fmt.Errorf("failed to exec: %w", err)
	}

	return true, nil
}

func (s pg) ListFollowers(ctx context.Context, page uuid.UUID) ([]*entities.Follower, error) {
	// followers_count and follows_page_back are second-degree lookups
	// computed independently per row.
	var rows []*struct {
		ID              uuid.UUID `db:"id"`
		FullName        string    `db:"full_name"`
		Avatar          *string   `db:"avatar"`
		FollowersCount  uint32    `db:"followers_count"`
		FollowsPageBack bool      `db:"follows_page_back"`
	}

	if err := sqlx.SelectContext(ctx, s.ext, &rows, `
			SELECT
				u.id, u.full_name, pr.avatar,
				(SELECT COUNT(*) FROM follow WHERE page = f.follower) AS followers_count,
				EXISTS(SELECT 1 FROM follow WHERE follower = $1 AND page = f.follower) AS follows_page_back
			FROM follow f
			JOIN users u ON u.id = f.follower
			LEFT JOIN profile pr ON pr.owner = u.id
			WHERE f.page = $1
			ORDER BY f.created_at
		`, page,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Follower, len(rows))
	for i, v := range rows {
		out[i] = &entities.Follower{
			ID:              v.ID,
			FullName:        v.FullName,
			Avatar:          v.Avatar,
			FollowersCount:  v.FollowersCount,
			FollowsPageBack: v.FollowsPageBack,
		}
	}

	return out, nil
}

func (s pg) ListFollowing(ctx context.Context, follower uuid.UUID) ([]*entities.FollowedPage, error) {
	var rows []*struct {
		ID        uuid.UUID `db:"id"`
		FullName  string    `db:"full_name"`
		Email     string    `db:"email"`
		FirstName *string   `db:"first_name"`
		Avatar    *string   `db:"avatar"`
	}

	if err := sqlx.SelectContext(ctx, s.ext, &rows, `
			SELECT u.id, u.full_name, u.email, pr.first_name, pr.avatar
			FROM follow f
			JOIN users u ON u.id = f.page
			LEFT JOIN profile pr ON pr.owner = u.id
			WHERE f.follower = $1
			ORDER BY f.created_at
		`, follower,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.FollowedPage, len(rows))
	for i, v := range rows {
		out[i] = &entities.FollowedPage{
			ID:        v.ID,
			FullName:  v.FullName,
			Email:     v.Email,
			FirstName: v.FirstName,
			Avatar:    v.Avatar,
		}
	}

	return out, nil
}

func (s pg) ListPostLikes(ctx context.Context, post uuid.UUID) ([]*entities.ProfileSummary, error) {
	var rows []*struct {
		Owner     uuid.UUID `db:"owner"`
		FirstName string    `db:"first_name"`
		LastName  string    `db:"last_name"`
		Avatar    string    `db:"avatar"`
	}

	if err := sqlx.SelectContext(ctx, s.ext, &rows, `
			SELECT pr.owner, pr.first_name, pr.last_name, pr.avatar
			FROM "like" l
			JOIN profile pr ON pr.owner = l.liked_by
			WHERE l.post = $1
			ORDER BY l.created_at
		`, post,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.ProfileSummary, len(rows))
	for i, v := range rows {
		out[i] = &entities.ProfileSummary{
			Owner:     v.Owner,
			FirstName: v.FirstName,
			LastName:  v.LastName,
			Avatar:    v.Avatar,
		}
	}

	return out, nil
}

func toProfile(p *profileDTO) *entities.Profile {
	return &entities.Profile{
		ID:          p.ID,
		Owner:       p.Owner,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		City:        p.City,
		Gender:      entities.Gender(p.Gender),
		DateOfBirth: p.DateOfBirth,
		Bio:         p.Bio,
		Avatar:      p.Avatar,
		Cover:       p.Cover,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toPost(p *postDTO) *entities.Post {
	return &entities.Post{
		ID:          p.ID,
		Owner:       p.Owner,
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
