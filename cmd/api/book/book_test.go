package book_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/bookshelf-service/cmd/api/book"
	bookmock "github.com/bookshelf-service/cmd/api/book/mocks"
	"github.com/bookshelf-service/cmd/api/notifications"
	"github.com/matryer/is"
	gomock "go.uber.org/mock/gomock"
)

var ctx context.Context = context.Background()

var ntfy *notifications.Ntfy = notifications.NewNtfy(false, "", &http.Client{})

var notificationsTimeout = 1 * time.Second

func TestCreateBook(t *testing.T) {

	t.Run("creates a book without errors", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockRepo, ntfy, notificationsTimeout)

		reqBook := book.CreateBookRequest{
			Title: "Service tester book",
		}

		mockRepo.EXPECT().CreateBook(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, b book.Book) (book.Book, error) {
			is.Equal(b.ID, int64(0)) //The repository is the one assigning IDs.
			is.Equal(b.Title, reqBook.Title)
			is.True(b.CreatedAt.Compare(time.Now().Round(time.Millisecond)) <= 0)
			is.True(b.UpdatedAt.Equal(b.CreatedAt))
			b.ID = 1
			return b, nil
		})

		createdBook, err := mS.CreateBook(ctx, reqBook)
		is.NoErr(err)
		is.Equal(createdBook.ID, int64(1))
		is.Equal(createdBook.Title, reqBook.Title)
	})

	t.Run("propagates a repository error", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockRepo, ntfy, notificationsTimeout)

		repoErr := errors.New("boom")
		mockRepo.EXPECT().CreateBook(gomock.Any(), gomock.Any()).Return(book.Book{}, repoErr)

		_, err := mS.CreateBook(ctx, book.CreateBookRequest{Title: "doomed book"})
		is.True(errors.Is(err, repoErr))
	})
}

func TestUpdateBook(t *testing.T) {
	t.Run("updates a book without errors", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockRepo, ntfy, notificationsTimeout)

		reqBook := book.UpdateBookRequest{
			ID:    42,
			Title: "Updated service tester book",
		}

		mockRepo.EXPECT().UpdateBook(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, b book.Book) (book.Book, error) {
			is.Equal(b.ID, reqBook.ID)
			is.Equal(b.Title, reqBook.Title)
			is.True(b.UpdatedAt.Compare(time.Now().Round(time.Millisecond)) <= 0)
			return b, nil
		})

		updatedBook, err := mS.UpdateBook(ctx, reqBook)
		is.NoErr(err)
		is.Equal(updatedBook.ID, reqBook.ID)
		is.Equal(updatedBook.Title, reqBook.Title)
	})

	t.Run("expected book not found error", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockRepo, ntfy, notificationsTimeout)

		mockRepo.EXPECT().UpdateBook(gomock.Any(), gomock.Any()).Return(book.Book{}, fmt.Errorf("updating book on db: %w", book.ErrResponseBookNotFound))

		_, err := mS.UpdateBook(ctx, book.UpdateBookRequest{ID: 999, Title: "ghost book"})
		is.True(errors.Is(err, book.ErrResponseBookNotFound))
	})
}

func TestGetBook(t *testing.T) {
	t.Run("returns the asked book", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockRepo, ntfy, notificationsTimeout)

		stored := book.Book{ID: 7, Title: "Stored tester book"}
		mockRepo.EXPECT().GetBookByID(gomock.Any(), int64(7)).Return(stored, nil)

		returnedBook, err := mS.GetBook(ctx, 7)
		is.NoErr(err)
		is.Equal(returnedBook, stored)
	})
}

func TestDeleteBook(t *testing.T) {
	t.Run("deletes the asked book", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockRepo, ntfy, notificationsTimeout)

		mockRepo.EXPECT().DeleteBook(gomock.Any(), int64(7)).Return(nil)

		is.NoErr(mS.DeleteBook(ctx, 7))
	})

	t.Run("expected book not found error", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockRepo, ntfy, notificationsTimeout)

		mockRepo.EXPECT().DeleteBook(gomock.Any(), int64(999)).Return(fmt.Errorf("deleting book on db: %w", book.ErrResponseBookNotFound))

		err := mS.DeleteBook(ctx, 999)
		is.True(errors.Is(err, book.ErrResponseBookNotFound))
	})
}

func TestFilledFields(t *testing.T) {
	t.Run("expected blank fields error", func(t *testing.T) {
		is := is.New(t)
		err := book.FilledFields("")
		is.True(errors.Is(err, book.ErrResponseBookEntryBlankFields))
	})

	t.Run("accepts a filled title", func(t *testing.T) {
		is := is.New(t)
		is.NoErr(book.FilledFields("A title"))
	})
}
