// BlogHub | 2026
// entity.go

package board

import "time"

type Board struct {
	ID        int64      `db:"id" json:"id"`
	Title     string     `db:"title" json:"title"`
	Detail    string     `db:"detail" json:"detail"`
	UserID    int64      `db:"user_id" json:"userId"`
	BlogID    int64      `db:"blog_id" json:"blogId"`
	Deleted   bool       `db:"deleted" json:"-"`
	DeletedAt *time.Time `db:"deleted_at" json:"-"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
}

// BoardImage rows are owned by their board outright: replaced as a
// whole on update, removed with the board on hard delete.
type BoardImage struct {
	ID       int64  `db:"id" json:"id"`
	BoardID  int64  `db:"board_id" json:"boardId"`
	ImageURL string `db:"image_url" json:"imageUrl"`
}

type BoardWithImages struct {
	Board
	Images []BoardImage `db:"-" json:"images"`
}
