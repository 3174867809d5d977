// BlogHub | 2026
// repository.go

package comment

import (
	"context"
	"fmt"

	"github.com/bloghub-dev/bloghub/internal/core"
)

type Repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, c *Comment) (int64, error) {
	query := `
		INSERT INTO comments (post_id, author, content)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err := r.db.GetContext(ctx, &id, query, c.PostID, c.Author, c.Content)
	if err != nil {
		return 0, fmt.Errorf("insert comment: %w", err)
	}

	return id, nil
}

func (r *Repository) ListByPost(
	ctx context.Context,
	postID int64,
) ([]Comment, error) {
	query := `
		SELECT id, post_id, author, content, created_at
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at`

	var comments []Comment
	if err := r.db.SelectContext(ctx, &comments, query, postID); err != nil {
		return nil, fmt.Errorf("select comments: %w", err)
	}

	if comments == nil {
		comments = []Comment{}
	}

	return comments, nil
}
