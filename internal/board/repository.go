// BlogHub | 2026
// repository.go

package board

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/bloghub-dev/bloghub/internal/core"
)

const selectColumns = `id, title, detail, user_id, blog_id,
	deleted, deleted_at, created_at`

// Repository holds the pool directly because the multi-row write paths
// open their own transactions.
type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the board and every image row in one transaction; a
// failure on any image insert rolls the whole board back.
func (r *Repository) Create(
	ctx context.Context,
	b *Board,
	imageURLs []string,
) (int64, error) {
	var boardID int64

	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO boards (title, detail, user_id, blog_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id`

		err := tx.GetContext(
			ctx, &boardID, query,
			b.Title, b.Detail, b.UserID, b.BlogID,
		)
		if err != nil {
			return fmt.Errorf("insert board: %w", err)
		}

		return insertImages(ctx, tx, boardID, imageURLs)
	})
	if err != nil {
		return 0, err
	}

	return boardID, nil
}

// ListByBlog returns the blog's live boards, newest first, with their
// images attached.
func (r *Repository) ListByBlog(
	ctx context.Context,
	blogID int64,
) ([]BoardWithImages, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM boards
		WHERE blog_id = $1 AND deleted = FALSE
		ORDER BY created_at DESC`, selectColumns)

	var boards []Board
	if err := r.db.SelectContext(ctx, &boards, query, blogID); err != nil {
		return nil, fmt.Errorf("select boards: %w", err)
	}

	if len(boards) == 0 {
		return []BoardWithImages{}, nil
	}

	ids := make([]int64, 0, len(boards))
	for _, b := range boards {
		ids = append(ids, b.ID)
	}

	var images []BoardImage
	err := r.db.SelectContext(
		ctx, &images,
		`SELECT id, board_id, image_url FROM board_images
		 WHERE board_id = ANY($1) ORDER BY id`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("select board images: %w", err)
	}

	byBoard := make(map[int64][]BoardImage, len(boards))
	for _, img := range images {
		byBoard[img.BoardID] = append(byBoard[img.BoardID], img)
	}

	result := make([]BoardWithImages, 0, len(boards))
	for _, b := range boards {
		imgs := byBoard[b.ID]
		if imgs == nil {
			imgs = []BoardImage{}
		}
		result = append(result, BoardWithImages{Board: b, Images: imgs})
	}

	return result, nil
}

// GetByID returns one live board scoped to its blog.
func (r *Repository) GetByID(
	ctx context.Context,
	blogID int64,
	boardID int64,
) (*BoardWithImages, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM boards
		WHERE id = $1 AND blog_id = $2 AND deleted = FALSE`, selectColumns)

	var b Board
	if err := r.db.GetContext(ctx, &b, query, boardID, blogID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("select board: %w", err)
	}

	images := []BoardImage{}
	err := r.db.SelectContext(
		ctx, &images,
		`SELECT id, board_id, image_url FROM board_images
		 WHERE board_id = $1 ORDER BY id`,
		b.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("select board images: %w", err)
	}

	return &BoardWithImages{Board: b, Images: images}, nil
}

// GetAnyByID also matches soft-deleted rows; the hard-delete path
// needs them.
func (r *Repository) GetAnyByID(
	ctx context.Context,
	blogID int64,
	boardID int64,
) (*Board, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM boards
		WHERE id = $1 AND blog_id = $2`, selectColumns)

	var b Board
	if err := r.db.GetContext(ctx, &b, query, boardID, blogID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("select board: %w", err)
	}

	return &b, nil
}

// Update applies the field changes and, when replaceImages is set,
// swaps the full image list in the same transaction. An empty new list
// still clears the existing rows.
func (r *Repository) Update(
	ctx context.Context,
	boardID int64,
	builder *core.UpdateBuilder,
	images []string,
	replaceImages bool,
) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if !builder.Empty() {
			where := fmt.Sprintf(
				"id = %s AND deleted = FALSE",
				builder.WherePlaceholder(1),
			)

			query, args, err := builder.Build(where, boardID)
			if err != nil {
				return err
			}

			result, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return fmt.Errorf("update board: %w", err)
			}

			affected, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("update board rows affected: %w", err)
			}
			if affected == 0 {
				return core.ErrNotFound
			}
		}

		if !replaceImages {
			return nil
		}

		_, err := tx.ExecContext(
			ctx,
			`DELETE FROM board_images WHERE board_id = $1`,
			boardID,
		)
		if err != nil {
			return fmt.Errorf("delete board images: %w", err)
		}

		return insertImages(ctx, tx, boardID, images)
	})
}

func (r *Repository) SoftDelete(ctx context.Context, boardID int64) error {
	result, err := r.db.ExecContext(
		ctx,
		`UPDATE boards SET deleted = TRUE, deleted_at = NOW()
		 WHERE id = $1 AND deleted = FALSE`,
		boardID,
	)
	if err != nil {
		return fmt.Errorf("soft delete board: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("soft delete rows affected: %w", err)
	}
	if affected == 0 {
		return core.ErrNotFound
	}

	return nil
}

// HardDelete removes an already-soft-deleted board and its images in
// one transaction.
func (r *Repository) HardDelete(ctx context.Context, boardID int64) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(
			ctx,
			`DELETE FROM board_images WHERE board_id = $1`,
			boardID,
		)
		if err != nil {
			return fmt.Errorf("delete board images: %w", err)
		}

		result, err := tx.ExecContext(
			ctx,
			`DELETE FROM boards WHERE id = $1 AND deleted = TRUE`,
			boardID,
		)
		if err != nil {
			return fmt.Errorf("delete board: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete board rows affected: %w", err)
		}
		if affected == 0 {
			return core.ErrNotFound
		}

		return nil
	})
}

func insertImages(
	ctx context.Context,
	tx *sqlx.Tx,
	boardID int64,
	imageURLs []string,
) error {
	for _, url := range imageURLs {
		var imageID int64
		err := tx.GetContext(
			ctx, &imageID,
			`INSERT INTO board_images (board_id, image_url)
			 VALUES ($1, $2) RETURNING id`,
			boardID, url,
		)
		if err != nil {
			return fmt.Errorf("insert board image: %w", err)
		}
	}
	return nil
}
