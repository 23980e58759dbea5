// Package favorites provides database operations for the standalone
// favourites table.
//
// This package implements the FavoriteStore interface defined in
// internal/services/interfaces.go.
//
// # Interface Implementation
//
//	var _ services.FavoriteStore = (*Repository)(nil)
//
// # Usage
//
//	repo := favorites.NewRepository(db)
//	favoritos, err := repo.ListByDevice("device-1")
package favorites

import (
	"gorm.io/gorm"

	"github.com/livrariapp/livraria-server/internal/entities"
)

// Repository handles all favourites database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new favourites repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListByDevice returns every favourite recorded for a device.
func (r *Repository) ListByDevice(deviceID string) ([]entities.Favorite, error) {
	favoritos := make([]entities.Favorite, 0)
	err := r.db.Where("device_id = ?", deviceID).Find(&favoritos).Error
	return favoritos, err
}

// ListAll returns every favourite in the table.
func (r *Repository) ListAll() ([]entities.Favorite, error) {
	favoritos := make([]entities.Favorite, 0)
	err := r.db.Find(&favoritos).Error
	return favoritos, err
}

// FindByDeviceAndBook fetches the favourite for a (device, Google Books)
// pair. Returns gorm.ErrRecordNotFound when the pair is not recorded.
func (r *Repository) FindByDeviceAndBook(deviceID, googleBooksID string) (*entities.Favorite, error) {
	var favorito entities.Favorite
	err := r.db.Where("device_id = ? AND google_books_id = ?", deviceID, googleBooksID).First(&favorito).Error
	if err != nil {
		return nil, err
	}
	return &favorito, nil
}

// ExistsByDeviceAndBook reports whether a (device, Google Books) pair is recorded.
func (r *Repository) ExistsByDeviceAndBook(deviceID, googleBooksID string) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Favorite{}).
		Where("device_id = ? AND google_books_id = ?", deviceID, googleBooksID).
		Count(&count).Error
	return count > 0, err
}

// FindByID fetches a favourite by primary key.
func (r *Repository) FindByID(id uint) (*entities.Favorite, error) {
	var favorito entities.Favorite
	err := r.db.First(&favorito, id).Error
	if err != nil {
		return nil, err
	}
	return &favorito, nil
}

// Create inserts a new favourite. The unique index on
// (device_id, google_books_id) rejects duplicates.
func (r *Repository) Create(favorito *entities.Favorite) error {
	return r.db.Create(favorito).Error
}

// Delete removes a favourite row.
func (r *Repository) Delete(favorito *entities.Favorite) error {
	return r.db.Delete(favorito).Error
}

// DeleteByID removes a favourite by primary key.
func (r *Repository) DeleteByID(id uint) error {
	return r.db.Delete(&entities.Favorite{}, id).Error
}
