package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-bloglist/internal/models"
)

const selectBlogWithOwner = `
	SELECT b.blog_id, b.title, b.author, b.url, b.likes, b.user_id, b.created_at, b.updated_at,
	       u.username AS owner_username, u.name AS owner_name
	FROM blogs b
	LEFT JOIN users u ON u.user_id = b.user_id
`

// BlogReaderRepository handles blog read operations
type BlogReaderRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBlogReaderRepository(db *sqlx.DB, txGetter TxGetter) *BlogReaderRepository {
	return &BlogReaderRepository{db: db, txGetter: txGetter}
}

// List returns every blog in creation order with its owner summary.
func (r *BlogReaderRepository) List(ctx context.Context) ([]models.BlogWithOwner, error) {
	query := selectBlogWithOwner + ` ORDER BY b.created_at, b.blog_id`

	blogs := []models.BlogWithOwner{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &blogs, query)

	logQuery(query, nil, len(blogs), err)

	return blogs, err
}

// GetByID returns the blog with its owner summary, or nil when there is none.
func (r *BlogReaderRepository) GetByID(ctx context.Context, blogID uuid.UUID) (*models.BlogWithOwner, error) {
	query := selectBlogWithOwner + ` WHERE b.blog_id = $1`

	var blog models.BlogWithOwner
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &blog, query, blogID)

	logQuery(query, []any{blogID}, blog.Title, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// BlogWriterRepository handles blog write operations
type BlogWriterRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBlogWriterRepository(db *sqlx.DB, txGetter TxGetter) *BlogWriterRepository {
	return &BlogWriterRepository{db: db, txGetter: txGetter}
}

// Save inserts a new blog and fills in its timestamps.
func (r *BlogWriterRepository) Save(ctx context.Context, blog *models.BlogDB) error {
	const query = `
		INSERT INTO blogs (blog_id, title, author, url, likes, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	args := []any{blog.BlogID, blog.Title, blog.Author, blog.URL, blog.Likes, blog.UserID}

	row := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...)
	err := row.Scan(&blog.CreatedAt, &blog.UpdatedAt)

	logQuery(query, args, blog.CreatedAt, err)

	return err
}

// UpdateOwned writes the mutable fields of blog, but only while the stored
// owner still equals blog.UserID. It reports false when no such row exists.
func (r *BlogWriterRepository) UpdateOwned(ctx context.Context, blog *models.BlogDB) (bool, error) {
	if !blog.UserID.Valid {
		return false, nil
	}

	const query = `
		UPDATE blogs
		SET title = $3, author = $4, url = $5, likes = $6, updated_at = NOW()
		WHERE blog_id = $1 AND user_id = $2
		RETURNING updated_at
	`
	args := []any{blog.BlogID, blog.UserID.UUID, blog.Title, blog.Author, blog.URL, blog.Likes}

	row := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...)
	err := row.Scan(&blog.UpdatedAt)

	logQuery(query, args, blog.UpdatedAt, err)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// DeleteOwned removes the blog while it is still owned by ownerID.
// It reports false when no such row exists.
func (r *BlogWriterRepository) DeleteOwned(ctx context.Context, blogID, ownerID uuid.UUID) (bool, error) {
	const query = `
		DELETE FROM blogs
		WHERE blog_id = $1 AND user_id = $2
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, blogID, ownerID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{blogID, ownerID}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
