package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/livrariapp/livraria-server/internal/entities"
)

const msgRequiredFields = "deviceId, googleBooksId e titulo são obrigatórios"

// FavoriteInput carries the payload of a favourite-add request. The
// optional fields stay nil when the client omits them.
type FavoriteInput struct {
	DeviceID      string
	GoogleBooksID string
	Title         string
	Author        *string
	ImageURL      *string
	Description   *string
	PublishedText *string
}

// FavoritesService maintains the per-device favourites list in the
// standalone favoritos table.
type FavoritesService struct {
	store FavoriteStore
}

func NewFavoritesService(store FavoriteStore) *FavoritesService {
	return &FavoritesService{store: store}
}

// ListByDevice returns all favourites recorded for a device.
func (s *FavoritesService) ListByDevice(deviceID string) ([]entities.Favorite, error) {
	return s.store.ListByDevice(deviceID)
}

// ListAll returns every favourite across all devices.
func (s *FavoritesService) ListAll() ([]entities.Favorite, error) {
	return s.store.ListAll()
}

// IsFavorite reports whether a device already marked a Google Books title.
func (s *FavoritesService) IsFavorite(deviceID, googleBooksID string) (bool, error) {
	return s.store.ExistsByDeviceAndBook(deviceID, googleBooksID)
}

// Add records a favourite for a device. Adding a pair that already
// exists returns the stored row unchanged: the metadata snapshot is
// taken from the first successful call and never refreshed.
func (s *FavoritesService) Add(input FavoriteInput) (*entities.Favorite, error) {
	if input.DeviceID == "" || input.GoogleBooksID == "" || input.Title == "" {
		return nil, &ValidationError{Message: msgRequiredFields}
	}

	existing, err := s.store.FindByDeviceAndBook(input.DeviceID, input.GoogleBooksID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up favourite: %w", err)
	}

	favorito := &entities.Favorite{
		DeviceID:      input.DeviceID,
		GoogleBooksID: input.GoogleBooksID,
		Title:         input.Title,
		Author:        input.Author,
		ImageURL:      input.ImageURL,
		Description:   input.Description,
		PublishedText: input.PublishedText,
		CreatedAt:     time.Now().Truncate(time.Second),
	}
	if err := s.store.Create(favorito); err != nil {
		// A concurrent add for the same pair may win the race between the
		// lookup above and this insert; the unique index rejects the
		// duplicate and the winning row is the correct answer.
		if winner, ferr := s.store.FindByDeviceAndBook(input.DeviceID, input.GoogleBooksID); ferr == nil {
			return winner, nil
		}
		return nil, fmt.Errorf("failed to create favourite: %w", err)
	}
	return favorito, nil
}

// Remove deletes the favourite for a (device, Google Books) pair.
func (s *FavoritesService) Remove(deviceID, googleBooksID string) error {
	favorito, err := s.store.FindByDeviceAndBook(deviceID, googleBooksID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Message: "Favorito não encontrado para este dispositivo e livro"}
		}
		return fmt.Errorf("failed to look up favourite: %w", err)
	}
	return s.store.Delete(favorito)
}

// FindByID fetches a favourite by id.
func (s *FavoritesService) FindByID(id uint) (*entities.Favorite, error) {
	favorito, err := s.store.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: fmt.Sprintf("Favorito não encontrado com ID: %d", id)}
		}
		return nil, fmt.Errorf("failed to look up favourite: %w", err)
	}
	return favorito, nil
}

// DeleteByID deletes a favourite by id.
func (s *FavoritesService) DeleteByID(id uint) error {
	if _, err := s.store.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Message: fmt.Sprintf("Favorito não encontrado com ID: %d", id)}
		}
		return fmt.Errorf("failed to look up favourite: %w", err)
	}
	return s.store.DeleteByID(id)
}
