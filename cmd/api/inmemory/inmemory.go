package inmemory

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/bookshelf-service/cmd/api/book"
	"github.com/hashicorp/go-memdb"
)

type InMemoryStore struct {
	db     *memdb.MemDB
	lastID atomic.Int64
}

func NewInMemoryStore() (*InMemoryStore, error) {
	// Define the schema
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			"book": {
				Name: "book",
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "ID"},
					},
				},
			},
		},
	}

	if err := schema.Validate(); err != nil {
		return nil, fmt.Errorf("validating in-memory schema: %w", err)
	}

	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize in-memory database: %w", err)
	}
	return &InMemoryStore{db: db}, nil
}

/* Assigns the next monotonic ID to the entry and inserts it. */
func (store *InMemoryStore) CreateBook(ctx context.Context, bookEntry book.Book) (book.Book, error) {
	bookEntry.ID = store.lastID.Add(1)

	txn := store.db.Txn(true)
	defer txn.Abort()

	if err := txn.Insert("book", bookEntry); err != nil {
		return book.Book{}, fmt.Errorf("storing book on db: %w", err)
	}

	txn.Commit()
	return bookEntry, nil
}

func (store *InMemoryStore) GetBookByID(ctx context.Context, id int64) (book.Book, error) {
	txn := store.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First("book", "id", id)
	if err != nil {
		return book.Book{}, fmt.Errorf("searching by ID: %w", err)
	}
	if raw == nil {
		return book.Book{}, fmt.Errorf("searching by ID: %w", book.ErrResponseBookNotFound)
	}

	return raw.(book.Book), nil
}

/* Returns every stored book. The id index iterates in ascending order, which is creation order. */
func (store *InMemoryStore) ListBooks(ctx context.Context) ([]book.Book, error) {
	txn := store.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get("book", "id")
	if err != nil {
		return []book.Book{}, fmt.Errorf("listing books from db: %w", err)
	}

	books := []book.Book{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		books = append(books, obj.(book.Book))
	}

	return books, nil
}

func (store *InMemoryStore) UpdateBook(ctx context.Context, bookEntry book.Book) (book.Book, error) {
	txn := store.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First("book", "id", bookEntry.ID)
	if err != nil {
		return book.Book{}, fmt.Errorf("updating book on db: %w", err)
	}
	if raw == nil {
		return book.Book{}, fmt.Errorf("updating book on db: %w", book.ErrResponseBookNotFound)
	}

	updatedBook := raw.(book.Book)
	updatedBook.Title = bookEntry.Title
	//CreatedAt will not change
	updatedBook.UpdatedAt = bookEntry.UpdatedAt

	if err := txn.Insert("book", updatedBook); err != nil {
		return book.Book{}, fmt.Errorf("updating book on db: %w", err)
	}

	txn.Commit()
	return updatedBook, nil
}

func (store *InMemoryStore) DeleteBook(ctx context.Context, id int64) error {
	txn := store.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First("book", "id", id)
	if err != nil {
		return fmt.Errorf("deleting book on db: %w", err)
	}
	if raw == nil {
		return fmt.Errorf("deleting book on db: %w", book.ErrResponseBookNotFound)
	}

	if err := txn.Delete("book", raw); err != nil {
		return fmt.Errorf("deleting book on db: %w", err)
	}

	txn.Commit()
	return nil
}
