package services

import (
	"github.com/livrariapp/livraria-server/internal/entities"
)

// FavoriteStore defines the database operations the favourites service
// needs. Implemented by internal/database/favorites.Repository.
type FavoriteStore interface {
	ListByDevice(deviceID string) ([]entities.Favorite, error)
	ListAll() ([]entities.Favorite, error)
	FindByDeviceAndBook(deviceID, googleBooksID string) (*entities.Favorite, error)
	ExistsByDeviceAndBook(deviceID, googleBooksID string) (bool, error)
	FindByID(id uint) (*entities.Favorite, error)
	Create(favorito *entities.Favorite) error
	Delete(favorito *entities.Favorite) error
	DeleteByID(id uint) error
}

// BookStore defines the database operations the books service needs.
// Implemented by internal/database/books.Repository.
type BookStore interface {
	FindByID(id uint) (*entities.Book, error)
	ListAll() ([]entities.Book, error)
	Create(livro *entities.Book) error
	Save(livro *entities.Book) error
	DeleteByID(id uint) error
	ListFavoritesByDevice(deviceID string) ([]entities.Book, error)
	FindFavorite(deviceID, googleBooksID string) (*entities.Book, error)
	ExistsFavorite(deviceID, googleBooksID string) (bool, error)
	Search(query string) ([]entities.Book, error)
}
