package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Pulse/internal/core/interactions"
)

type postgresInteractionRepo struct {
	db *sql.DB
}

// NewInteractionRepository creates a new PostgreSQL interaction repository
func NewInteractionRepository(db *sql.DB) interactions.Repository {
	return &postgresInteractionRepo{db: db}
}

// Insert appends a new interaction record. Used for comments.
func (r *postgresInteractionRepo) Insert(ctx context.Context, rec *interactions.Interaction) (*interactions.Interaction, error) {
	query := `
		INSERT INTO interactions (id, post_id, user_id, user_name, type, comment_body)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		rec.ID, rec.PostID, rec.User.ID, rec.User.Name, string(rec.Type), nullableBody(rec),
	).Scan(&rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert interaction: %w", err)
	}

	return rec, nil
}

// ReplaceVote removes any existing like-or-dislike by the same user on the
// same post and inserts the new vote. Both statements run in one transaction
// so concurrent identical requests cannot leave two active votes.
func (r *postgresInteractionRepo) ReplaceVote(ctx context.Context, rec *interactions.Interaction) (*interactions.Interaction, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin vote transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		DELETE FROM interactions
		WHERE post_id = $1 AND user_id = $2 AND type IN ('like', 'dislike')`,
		rec.PostID, rec.User.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to remove prior vote: %w", err)
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO interactions (id, post_id, user_id, user_name, type, comment_body)
		VALUES ($1, $2, $3, $4, $5, NULL)
		RETURNING created_at`,
		rec.ID, rec.PostID, rec.User.ID, rec.User.Name, string(rec.Type),
	).Scan(&rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert vote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit vote transaction: %w", err)
	}

	return rec, nil
}

// ListForPost returns all records for a post in creation order
func (r *postgresInteractionRepo) ListForPost(ctx context.Context, postID string) ([]interactions.Interaction, error) {
	query := `
		SELECT id, post_id, user_id, user_name, type, comment_body, created_at
		FROM interactions
		WHERE post_id = $1
		ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query interactions: %w", err)
	}
	defer rows.Close()

	var result []interactions.Interaction
	for rows.Next() {
		var rec interactions.Interaction
		var recType string
		var body sql.NullString
		if err := rows.Scan(
			&rec.ID, &rec.PostID, &rec.User.ID, &rec.User.Name,
			&recType, &body, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan interaction: %w", err)
		}
		rec.Type = interactions.Type(recType)
		rec.CommentBody = body.String
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate interactions: %w", err)
	}

	return result, nil
}

func nullableBody(rec *interactions.Interaction) sql.NullString {
	if rec.Type == interactions.TypeComment {
		return sql.NullString{String: rec.CommentBody, Valid: true}
	}
	return sql.NullString{}
}
