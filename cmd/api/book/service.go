package book

import (
	"context"
	"log/slog"
	"time"

	"github.com/bookshelf-service/cmd/api/notifications"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type ServiceAPI interface {
	CreateBook(ctx context.Context, req CreateBookRequest) (Book, error)
	GetBook(ctx context.Context, id int64) (Book, error)
	ListBooks(ctx context.Context) ([]Book, error)
	UpdateBook(ctx context.Context, req UpdateBookRequest) (Book, error)
	DeleteBook(ctx context.Context, id int64) error
}

type Repository interface {
	CreateBook(ctx context.Context, bookEntry Book) (Book, error)
	GetBookByID(ctx context.Context, id int64) (Book, error)
	ListBooks(ctx context.Context) ([]Book, error)
	UpdateBook(ctx context.Context, bookEntry Book) (Book, error)
	DeleteBook(ctx context.Context, id int64) error
}

type Service struct {
	repo                 Repository
	ntfy                 *notifications.Ntfy
	notificationsTimeout time.Duration
}

func NewService(repo Repository, ntfy *notifications.Ntfy, notificationsTimeout time.Duration) *Service {
	return &Service{repo: repo, ntfy: ntfy, notificationsTimeout: notificationsTimeout}
}

/* Fills the creation time fields and stores the book. The ID is assigned by the repository. */
func (s *Service) CreateBook(ctx context.Context, req CreateBookRequest) (Book, error) {
	createdAt := time.Now().UTC().Round(time.Millisecond)

	newBook := Book{
		Title:     req.Title,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}

	storedBook, err := s.repo.CreateBook(ctx, newBook)
	if err != nil {
		return Book{}, err
	}

	go func() {
		ntfyCtx, cancel := context.WithTimeout(context.Background(), s.notificationsTimeout)
		defer cancel()
		if err := s.ntfy.BookCreated(ntfyCtx, storedBook.Title); err != nil {
			slog.Error("notifying book creation", "error", err)
		}
	}()

	return storedBook, nil
}

func (s *Service) GetBook(ctx context.Context, id int64) (Book, error) {
	return s.repo.GetBookByID(ctx, id)
}

func (s *Service) ListBooks(ctx context.Context) ([]Book, error) {
	return s.repo.ListBooks(ctx)
}

/* Attributes a new updating time to the entry and replaces the stored title. */
func (s *Service) UpdateBook(ctx context.Context, req UpdateBookRequest) (Book, error) {
	bookEntry := Book{
		ID:        req.ID,
		Title:     req.Title,
		UpdatedAt: time.Now().UTC().Round(time.Millisecond),
	}
	return s.repo.UpdateBook(ctx, bookEntry)
}

func (s *Service) DeleteBook(ctx context.Context, id int64) error {
	return s.repo.DeleteBook(ctx, id)
}
