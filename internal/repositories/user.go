package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-bloglist/internal/apperr"
	"github.com/sbilibin2017/gw-bloglist/internal/logger"
	"github.com/sbilibin2017/gw-bloglist/internal/models"
)

const uniqueViolation = "23505"

type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the user with its owned blog keys, or nil when there is none.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, name, password_hash, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`
	const blogsQuery = `
		SELECT blog_id
		FROM user_blogs
		WHERE user_id = $1
		ORDER BY position
	`

	ex := executor(ctx, r.db, r.txGetter)

	var user models.UserDB
	err := sqlx.GetContext(ctx, ex, &user, query, userID)
	logQuery(query, []any{userID}, user.Username, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var blogIDs []uuid.UUID
	err = sqlx.SelectContext(ctx, ex, &blogIDs, blogsQuery, userID)
	logQuery(blogsQuery, []any{userID}, len(blogIDs), err)
	if err != nil {
		return nil, err
	}
	user.BlogIDs = blogIDs

	return &user, nil
}

// GetByUsername returns the user with the given username, or nil when there is none.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, name, password_hash, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, username)
	logQuery(query, []any{username}, user.UserID, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns every user with the summaries of the blogs it owns.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserWithBlogs, error) {
	const usersQuery = `
		SELECT user_id, username, name, password_hash, created_at, updated_at
		FROM users
		ORDER BY created_at, username
	`
	const blogsQuery = `
		SELECT ub.user_id, b.blog_id, b.title, b.author, b.url
		FROM user_blogs ub
		JOIN blogs b ON b.blog_id = ub.blog_id
		ORDER BY ub.position
	`

	ex := executor(ctx, r.db, r.txGetter)

	var users []models.UserDB
	err := sqlx.SelectContext(ctx, ex, &users, usersQuery)
	logQuery(usersQuery, nil, len(users), err)
	if err != nil {
		return nil, err
	}

	var blogs []models.UserBlogDB
	err = sqlx.SelectContext(ctx, ex, &blogs, blogsQuery)
	logQuery(blogsQuery, nil, len(blogs), err)
	if err != nil {
		return nil, err
	}

	byUser := make(map[uuid.UUID][]models.UserBlogDB, len(users))
	for _, b := range blogs {
		byUser[b.UserID] = append(byUser[b.UserID], b)
	}

	result := make([]models.UserWithBlogs, 0, len(users))
	for _, u := range users {
		owned := byUser[u.UserID]
		u.BlogIDs = make([]uuid.UUID, 0, len(owned))
		for _, b := range owned {
			u.BlogIDs = append(u.BlogIDs, b.BlogID)
		}
		result = append(result, models.UserWithBlogs{User: u, Blogs: owned})
	}
	return result, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new user. A taken username is reported as a validation failure.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (user_id, username, name, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	row := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query,
		user.UserID, user.Username, user.Name, user.PasswordHash)
	err := row.Scan(&user.CreatedAt, &user.UpdatedAt)

	logQuery(query, []any{user.UserID, user.Username, user.Name, logger.Redacted}, user.CreatedAt, err)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperr.Validation("username must be unique")
	}
	return err
}

// AppendBlog adds blogID at the end of the user's owned-blog list.
func (r *UserWriteRepository) AppendBlog(ctx context.Context, userID, blogID uuid.UUID) error {
	const query = `
		INSERT INTO user_blogs (user_id, blog_id)
		VALUES ($1, $2)
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID, blogID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{userID, blogID}, rowsAffected, err)

	return err
}
