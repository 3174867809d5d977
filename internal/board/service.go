// BlogHub | 2026
// service.go

package board

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bloghub-dev/bloghub/internal/blog"
	"github.com/bloghub-dev/bloghub/internal/core"
)

type Store interface {
	Create(ctx context.Context, b *Board, imageURLs []string) (int64, error)
	ListByBlog(ctx context.Context, blogID int64) ([]BoardWithImages, error)
	GetByID(
		ctx context.Context,
		blogID int64,
		boardID int64,
	) (*BoardWithImages, error)
	GetAnyByID(ctx context.Context, blogID, boardID int64) (*Board, error)
	Update(
		ctx context.Context,
		boardID int64,
		builder *core.UpdateBuilder,
		images []string,
		replaceImages bool,
	) error
	SoftDelete(ctx context.Context, boardID int64) error
	HardDelete(ctx context.Context, boardID int64) error
}

type BlogStore interface {
	GetBySubDomain(
		ctx context.Context,
		subDomain string,
	) (*blog.BlogWithTemplate, error)
}

type Service struct {
	store Store
	blogs BlogStore
}

func NewService(store Store, blogs BlogStore) *Service {
	return &Service{store: store, blogs: blogs}
}

// resolveBlog maps a subdomain to its blog row; mutations additionally
// require the acting user to own it.
func (s *Service) resolveBlog(
	ctx context.Context,
	subDomain string,
) (*blog.BlogWithTemplate, error) {
	b, err := s.blogs.GetBySubDomain(ctx, subDomain)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NewAppError(http.StatusNotFound, "blog not found")
		}
		return nil, fmt.Errorf("resolve blog: %w", err)
	}
	return b, nil
}

func (s *Service) resolveOwnedBlog(
	ctx context.Context,
	userID int64,
	subDomain string,
) (*blog.BlogWithTemplate, error) {
	b, err := s.resolveBlog(ctx, subDomain)
	if err != nil {
		return nil, err
	}

	if b.UserID != userID {
		return nil, core.NewAppError(
			http.StatusForbidden,
			"not the blog owner",
		)
	}

	return b, nil
}

// Create writes the board and its images all-or-nothing.
func (s *Service) Create(
	ctx context.Context,
	userID int64,
	subDomain string,
	req CreateRequest,
) (int64, error) {
	b, err := s.resolveOwnedBlog(ctx, userID, subDomain)
	if err != nil {
		return 0, err
	}

	id, err := s.store.Create(ctx, &Board{
		Title:  req.Title,
		Detail: req.Detail,
		UserID: userID,
		BlogID: b.ID,
	}, req.ImageURLs)
	if err != nil {
		return 0, fmt.Errorf("create board: %w", err)
	}

	return id, nil
}

func (s *Service) GetAll(
	ctx context.Context,
	subDomain string,
) ([]BoardWithImages, error) {
	b, err := s.resolveBlog(ctx, subDomain)
	if err != nil {
		return nil, err
	}

	boards, err := s.store.ListByBlog(ctx, b.ID)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}

	return boards, nil
}

func (s *Service) GetOne(
	ctx context.Context,
	subDomain string,
	boardID int64,
) (*BoardWithImages, error) {
	b, err := s.resolveBlog(ctx, subDomain)
	if err != nil {
		return nil, err
	}

	board, err := s.store.GetByID(ctx, b.ID, boardID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NewAppError(http.StatusNotFound, "board not found")
		}
		return nil, fmt.Errorf("get board: %w", err)
	}

	return board, nil
}

// Update applies partial title/detail changes; when image_url is
// present in the payload the stored set is replaced wholesale, so an
// empty list clears every image.
func (s *Service) Update(
	ctx context.Context,
	userID int64,
	subDomain string,
	boardID int64,
	req UpdateRequest,
) error {
	b, err := s.resolveOwnedBlog(ctx, userID, subDomain)
	if err != nil {
		return err
	}

	if _, err := s.store.GetByID(ctx, b.ID, boardID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return core.NewAppError(http.StatusNotFound, "board not found")
		}
		return fmt.Errorf("update board: %w", err)
	}

	builder := core.NewUpdateBuilder("boards")
	if req.Title != nil {
		builder.Set("title", *req.Title)
	}
	if req.Detail != nil {
		builder.Set("detail", *req.Detail)
	}

	if builder.Empty() && req.ImageURLs == nil {
		return core.ErrNoFields
	}

	var images []string
	if req.ImageURLs != nil {
		images = *req.ImageURLs
	}

	err = s.store.Update(ctx, boardID, builder, images, req.ImageURLs != nil)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return core.NewAppError(http.StatusNotFound, "board not found")
		}
		return fmt.Errorf("update board: %w", err)
	}

	return nil
}

func (s *Service) SoftDelete(
	ctx context.Context,
	userID int64,
	subDomain string,
	boardID int64,
) error {
	b, err := s.resolveOwnedBlog(ctx, userID, subDomain)
	if err != nil {
		return err
	}

	if _, err := s.store.GetByID(ctx, b.ID, boardID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return core.NewAppError(http.StatusNotFound, "board not found")
		}
		return fmt.Errorf("soft delete board: %w", err)
	}

	if err := s.store.SoftDelete(ctx, boardID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return core.NewAppError(http.StatusNotFound, "board not found")
		}
		return fmt.Errorf("soft delete board: %w", err)
	}

	return nil
}

// HardDelete permanently removes a board, but only after it has been
// soft-deleted first; a live board on this path is 404.
func (s *Service) HardDelete(
	ctx context.Context,
	userID int64,
	subDomain string,
	boardID int64,
) error {
	b, err := s.resolveOwnedBlog(ctx, userID, subDomain)
	if err != nil {
		return err
	}

	board, err := s.store.GetAnyByID(ctx, b.ID, boardID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return core.NewAppError(http.StatusNotFound, "board not found")
		}
		return fmt.Errorf("hard delete board: %w", err)
	}

	if !board.Deleted {
		return core.NewAppError(
			http.StatusNotFound,
			"board is not soft-deleted",
		)
	}

	if err := s.store.HardDelete(ctx, boardID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return core.NewAppError(http.StatusNotFound, "board not found")
		}
		return fmt.Errorf("hard delete board: %w", err)
	}

	return nil
}
