package book

import (
	"time"
)

type Book struct {
	ID        int64
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateBookRequest struct {
	Title string
}

type UpdateBookRequest struct {
	ID    int64
	Title string
}

/* Verifies if the title field is filled and returns a warning message if not. */
func FilledFields(title string) error {
	if title == "" {
		return ErrResponseBookEntryBlankFields
	}

	return nil
}
