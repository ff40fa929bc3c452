package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"Pulse/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Create inserts a new post into the posts table
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		INSERT INTO posts (id, title, body, expires_at, topics, owner_id, owner_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		post.ID, post.Title, post.Body, post.ExpiresAt,
		pq.Array(post.Topics), post.Owner.ID, post.Owner.Name,
	).Scan(&post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	return post, nil
}

// GetByID retrieves a post by its id
func (r *postgresPostRepo) GetByID(ctx context.Context, id string) (*posts.Post, error) {
	query := `
		SELECT id, title, body, expires_at, topics, owner_id, owner_name, created_at, updated_at
		FROM posts
		WHERE id = $1`

	post := &posts.Post{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.Title, &post.Body, &post.ExpiresAt,
		pq.Array(&post.Topics), &post.Owner.ID, &post.Owner.Name,
		&post.CreatedAt, &post.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

// List retrieves all posts in creation order
func (r *postgresPostRepo) List(ctx context.Context) ([]*posts.Post, error) {
	query := `
		SELECT id, title, body, expires_at, topics, owner_id, owner_name, created_at, updated_at
		FROM posts
		ORDER BY created_at, id`

	return r.queryPosts(ctx, query)
}

// GetByTopic retrieves all posts tagged with the topic in creation order
func (r *postgresPostRepo) GetByTopic(ctx context.Context, topic string) ([]*posts.Post, error) {
	query := `
		SELECT id, title, body, expires_at, topics, owner_id, owner_name, created_at, updated_at
		FROM posts
		WHERE $1 = ANY(topics)
		ORDER BY created_at, id`

	return r.queryPosts(ctx, query, topic)
}

// Update rewrites the mutable fields of a post
func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		UPDATE posts
		SET title = $2, body = $3, expires_at = $4, topics = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		post.ID, post.Title, post.Body, post.ExpiresAt, pq.Array(post.Topics),
	).Scan(&post.CreatedAt, &post.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

// Delete removes a post. Interaction rows cascade via the schema.
func (r *postgresPostRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return posts.ErrPostNotFound
	}
	return nil
}

func (r *postgresPostRepo) queryPosts(ctx context.Context, query string, args ...interface{}) ([]*posts.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var result []*posts.Post
	for rows.Next() {
		post := &posts.Post{}
		if err := rows.Scan(
			&post.ID, &post.Title, &post.Body, &post.ExpiresAt,
			pq.Array(&post.Topics), &post.Owner.ID, &post.Owner.Name,
			&post.CreatedAt, &post.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		result = append(result, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return result, nil
}
