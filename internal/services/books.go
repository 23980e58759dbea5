package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/livrariapp/livraria-server/internal/entities"
)

// BookDTO is the client view of a catalog book: the core fields only,
// never the device/favourite bookkeeping columns.
type BookDTO struct {
	ID          uint       `json:"id"`
	Title       string     `json:"titulo"`
	Author      *string    `json:"autor"`
	Genre       *string    `json:"genero"`
	CoverURL    *string    `json:"capa"`
	PublishedAt *time.Time `json:"dataPublicacao"`
	Description *string    `json:"descricao"`
}

// BooksService covers catalog CRUD, the favourite-via-book API and the
// title/author search.
type BooksService struct {
	store BookStore
}

func NewBooksService(store BookStore) *BooksService {
	return &BooksService{store: store}
}

func toDTO(livro *entities.Book) *BookDTO {
	return &BookDTO{
		ID:          livro.ID,
		Title:       livro.Title,
		Author:      livro.Author,
		Genre:       livro.Genre,
		CoverURL:    livro.CoverURL,
		PublishedAt: livro.PublishedAt,
		Description: livro.Description,
	}
}

// Create inserts a catalog book built from the core fields of the DTO.
func (s *BooksService) Create(dto BookDTO) (*BookDTO, error) {
	livro := &entities.Book{
		Title:       dto.Title,
		Author:      dto.Author,
		Genre:       dto.Genre,
		CoverURL:    dto.CoverURL,
		PublishedAt: dto.PublishedAt,
		Description: dto.Description,
		CreatedAt:   time.Now().Truncate(time.Second),
	}
	if err := s.store.Create(livro); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return toDTO(livro), nil
}

// ListAll returns the whole catalog as DTOs.
func (s *BooksService) ListAll() ([]BookDTO, error) {
	livros, err := s.store.ListAll()
	if err != nil {
		return nil, err
	}
	dtos := make([]BookDTO, 0, len(livros))
	for i := range livros {
		dtos = append(dtos, *toDTO(&livros[i]))
	}
	return dtos, nil
}

// FindByID returns the book as a DTO, or nil when the id is unknown.
func (s *BooksService) FindByID(id uint) (*BookDTO, error) {
	livro, err := s.store.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up book: %w", err)
	}
	return toDTO(livro), nil
}

// Update overwrites every core field with the DTO value, nils included.
// The favourite bookkeeping fields are left untouched. Returns nil when
// the id is unknown.
func (s *BooksService) Update(id uint, dto BookDTO) (*BookDTO, error) {
	livro, err := s.store.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up book: %w", err)
	}

	livro.Title = dto.Title
	livro.Author = dto.Author
	livro.Genre = dto.Genre
	livro.CoverURL = dto.CoverURL
	livro.PublishedAt = dto.PublishedAt
	livro.Description = dto.Description
	if err := s.store.Save(livro); err != nil {
		return nil, fmt.Errorf("failed to update book: %w", err)
	}
	return toDTO(livro), nil
}

// DeleteByID deletes a catalog book. Unknown ids are silently ignored.
func (s *BooksService) DeleteByID(id uint) error {
	return s.store.DeleteByID(id)
}

// FavoritesByDevice returns all favourite-flagged books for a device.
func (s *BooksService) FavoritesByDevice(deviceID string) ([]entities.Book, error) {
	return s.store.ListFavoritesByDevice(deviceID)
}

// IsFavorite reports whether a device has a favourite-flagged book for
// a Google Books title.
func (s *BooksService) IsFavorite(deviceID, googleBooksID string) (bool, error) {
	return s.store.ExistsFavorite(deviceID, googleBooksID)
}

// AddFavorite records a favourite as a book row with the favourite flag
// set. The cover is seeded from the supplied image URL. Idempotent like
// FavoritesService.Add: an existing pair is returned unchanged.
func (s *BooksService) AddFavorite(input FavoriteInput) (*entities.Book, error) {
	if input.DeviceID == "" || input.GoogleBooksID == "" || input.Title == "" {
		return nil, &ValidationError{Message: msgRequiredFields}
	}

	existing, err := s.store.FindFavorite(input.DeviceID, input.GoogleBooksID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up favourite book: %w", err)
	}

	livro := &entities.Book{
		Title:         input.Title,
		Author:        input.Author,
		CoverURL:      input.ImageURL,
		Description:   input.Description,
		DeviceID:      &input.DeviceID,
		GoogleBooksID: &input.GoogleBooksID,
		ImageURL:      input.ImageURL,
		PublishedText: input.PublishedText,
		Favorite:      true,
		CreatedAt:     time.Now().Truncate(time.Second),
	}
	if err := s.store.Create(livro); err != nil {
		// Lost race against a concurrent identical add: the partial unique
		// index rejected the duplicate, so the winning row already exists.
		if winner, ferr := s.store.FindFavorite(input.DeviceID, input.GoogleBooksID); ferr == nil {
			return winner, nil
		}
		return nil, fmt.Errorf("failed to create favourite book: %w", err)
	}
	return livro, nil
}

// RemoveFavorite clears the favourite flag on the matching book. The
// row is kept, unlike FavoritesService.Remove which deletes.
func (s *BooksService) RemoveFavorite(deviceID, googleBooksID string) error {
	livro, err := s.store.FindFavorite(deviceID, googleBooksID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Message: "Favorito não encontrado para este dispositivo e livro"}
		}
		return fmt.Errorf("failed to look up favourite book: %w", err)
	}
	livro.Favorite = false
	return s.store.Save(livro)
}

// Search returns books whose title or author contains the trimmed
// query, case-insensitively. A nil or whitespace-only query returns the
// whole catalog.
func (s *BooksService) Search(query string) ([]entities.Book, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return s.store.ListAll()
	}
	return s.store.Search(trimmed)
}
