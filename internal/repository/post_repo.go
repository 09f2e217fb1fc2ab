package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/themizzi/wpaccept/internal/config"
	"github.com/themizzi/wpaccept/internal/models"
)

// ErrPostNotFound is returned when no post row has the requested ID
var ErrPostNotFound = errors.New("post not found")

// PostRepository inserts and reads post fixtures in the WordPress posts table
type PostRepository struct {
	db     *sql.DB
	driver string
	table  string
}

// NewPostRepository creates a repository for the prefixed posts table
func NewPostRepository(db *sql.DB, driver, tablePrefix string) *PostRepository {
	return &PostRepository{
		db:     db,
		driver: driver,
		table:  tablePrefix + "posts",
	}
}

// HavePostInDatabase inserts post and returns its new ID
func (r *PostRepository) HavePostInDatabase(ctx context.Context, post *models.Post) (int64, error) {
	if post.Date.IsZero() {
		post.Date = time.Now().UTC()
	}
	if post.Type == "" {
		post.Type = models.DefaultPostType
	}
	if post.Name == "" {
		post.Name = models.Slug(post.Title)
	}

	query := r.bind(fmt.Sprintf(`
		INSERT INTO %s (post_author, post_date, post_date_gmt, post_content, post_title, post_excerpt,
		                post_status, post_name, post_type, post_modified, post_modified_gmt,
		                to_ping, pinged, post_content_filtered)
		VALUES (?, ?, ?, ?, ?, '', ?, ?, ?, ?, ?, '', '', '')
	`, r.table))

	date := post.Date
	args := []any{
		post.Author,
		date, date,
		post.Content,
		post.Title,
		string(post.Status),
		post.Name,
		post.Type,
		date, date,
	}

	var id int64
	if r.driver == config.DriverPostgres {
		if err := r.db.QueryRowContext(ctx, query+" RETURNING ID", args...).Scan(&id); err != nil {
			return 0, fmt.Errorf("failed to create post: %w", err)
		}
	} else {
		result, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, fmt.Errorf("failed to create post: %w", err)
		}
		id, err = result.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("failed to get post id: %w", err)
		}
	}

	post.ID = id
	return id, nil
}

// GetPost retrieves a post by ID
func (r *PostRepository) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	query := r.bind(fmt.Sprintf(`
		SELECT ID, post_author, post_title, post_content, post_status, post_name, post_type
		FROM %s
		WHERE ID = ?
	`, r.table))

	post := &models.Post{}
	var status string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID,
		&post.Author,
		&post.Title,
		&post.Content,
		&status,
		&post.Name,
		&post.Type,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	post.Status = models.PostStatus(status)
	return post, nil
}

// DeletePost removes a fixture post
func (r *PostRepository) DeletePost(ctx context.Context, id int64) error {
	query := r.bind(fmt.Sprintf(`DELETE FROM %s WHERE ID = ?`, r.table))

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrPostNotFound
	}

	return nil
}

// bind rewrites ? placeholders to $n for postgres
func (r *PostRepository) bind(query string) string {
	if r.driver != config.DriverPostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, c := range query {
		if c == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}
