// Package books provides database operations for the catalog table,
// including the favourite-flagged rows created through the books
// favourites API.
//
// This package implements the BookStore interface defined in
// internal/services/interfaces.go.
//
// # Interface Implementation
//
//	var _ services.BookStore = (*Repository)(nil)
//
// # Usage
//
//	repo := books.NewRepository(db)
//	livro, err := repo.FindByID(123)
package books

import (
	"gorm.io/gorm"

	"github.com/livrariapp/livraria-server/internal/entities"
)

// Repository handles all catalog database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID fetches a book by primary key.
// Returns gorm.ErrRecordNotFound when the id is unknown.
func (r *Repository) FindByID(id uint) (*entities.Book, error) {
	var livro entities.Book
	err := r.db.First(&livro, id).Error
	if err != nil {
		return nil, err
	}
	return &livro, nil
}

// ListAll returns every book in the catalog.
func (r *Repository) ListAll() ([]entities.Book, error) {
	livros := make([]entities.Book, 0)
	err := r.db.Find(&livros).Error
	return livros, err
}

// Create inserts a new book.
func (r *Repository) Create(livro *entities.Book) error {
	return r.db.Create(livro).Error
}

// Save writes every column of an existing book, so cleared optional
// fields are persisted as NULL.
func (r *Repository) Save(livro *entities.Book) error {
	return r.db.Save(livro).Error
}

// DeleteByID removes a book by primary key. Deleting an unknown id is
// not an error.
func (r *Repository) DeleteByID(id uint) error {
	return r.db.Delete(&entities.Book{}, id).Error
}

// ListFavoritesByDevice returns all favourite-flagged books for a device.
func (r *Repository) ListFavoritesByDevice(deviceID string) ([]entities.Book, error) {
	livros := make([]entities.Book, 0)
	err := r.db.Where("device_id = ? AND favorito = ?", deviceID, true).Find(&livros).Error
	return livros, err
}

// FindFavorite fetches the favourite-flagged book for a (device, Google
// Books) pair. Returns gorm.ErrRecordNotFound when no such row exists;
// rows with favorito cleared do not match.
func (r *Repository) FindFavorite(deviceID, googleBooksID string) (*entities.Book, error) {
	var livro entities.Book
	err := r.db.
		Where("device_id = ? AND google_books_id = ? AND favorito = ?", deviceID, googleBooksID, true).
		First(&livro).Error
	if err != nil {
		return nil, err
	}
	return &livro, nil
}

// ExistsFavorite reports whether a favourite-flagged book exists for a
// (device, Google Books) pair.
func (r *Repository) ExistsFavorite(deviceID, googleBooksID string) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).
		Where("device_id = ? AND google_books_id = ? AND favorito = ?", deviceID, googleBooksID, true).
		Count(&count).Error
	return count > 0, err
}

// Search returns books whose title or author contains the query
// (case-insensitive partial match).
func (r *Repository) Search(query string) ([]entities.Book, error) {
	livros := make([]entities.Book, 0)
	searchPattern := "%" + query + "%"
	err := r.db.
		Where("LOWER(titulo) LIKE LOWER(?) OR LOWER(autor) LIKE LOWER(?)", searchPattern, searchPattern).
		Find(&livros).Error
	return livros, err
}
