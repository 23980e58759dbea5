package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/livrariapp/livraria-server/internal/entities"
	"github.com/livrariapp/livraria-server/internal/services"
)

// BooksService defines the operations the /livros routes dispatch to.
type BooksService interface {
	Create(dto services.BookDTO) (*services.BookDTO, error)
	ListAll() ([]services.BookDTO, error)
	FindByID(id uint) (*services.BookDTO, error)
	Update(id uint, dto services.BookDTO) (*services.BookDTO, error)
	DeleteByID(id uint) error
	FavoritesByDevice(deviceID string) ([]entities.Book, error)
	IsFavorite(deviceID, googleBooksID string) (bool, error)
	AddFavorite(input services.FavoriteInput) (*entities.Book, error)
	RemoveFavorite(deviceID, googleBooksID string) error
	Search(query string) ([]entities.Book, error)
}

type BooksController struct {
	service BooksService
}

func NewBooksController(service BooksService) *BooksController {
	return &BooksController{service: service}
}

// Create inserts a catalog book.
// POST /livros
func (bc *BooksController) Create(c *gin.Context) {
	var dto services.BookDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	created, err := bc.service.Create(dto)
	if err != nil {
		respondInternalError(c, err, "create book")
		return
	}
	c.JSON(http.StatusOK, created)
}

// List returns the whole catalog.
// GET /livros
func (bc *BooksController) List(c *gin.Context) {
	livros, err := bc.service.ListAll()
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, livros)
}

// GetByID fetches a catalog book.
// GET /livros/:id
func (bc *BooksController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	livro, err := bc.service.FindByID(id)
	if err != nil {
		respondInternalError(c, err, "get book")
		return
	}
	if livro == nil {
		respondNotFound(c, "Livro não encontrado")
		return
	}
	c.JSON(http.StatusOK, livro)
}

// Update overwrites the core fields of a catalog book.
// PUT /livros/:id
func (bc *BooksController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var dto services.BookDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	updated, err := bc.service.Update(id, dto)
	if err != nil {
		respondInternalError(c, err, "update book")
		return
	}
	if updated == nil {
		respondNotFound(c, "Livro não encontrado")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes a catalog book. Unknown ids still answer 204.
// DELETE /livros/:id
func (bc *BooksController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := bc.service.DeleteByID(id); err != nil {
		respondInternalError(c, err, "delete book")
		return
	}
	c.Status(http.StatusNoContent)
}

// FavoritesByDevice returns every favourite-flagged book of a device.
// GET /livros/favoritos/device/:deviceId
func (bc *BooksController) FavoritesByDevice(c *gin.Context) {
	livros, err := bc.service.FavoritesByDevice(c.Param("deviceId"))
	if err != nil {
		respondInternalError(c, err, "list favourite books")
		return
	}
	c.JSON(http.StatusOK, livros)
}

// CheckFavorite reports whether a Google Books title is a favourite of a device.
// GET /livros/favoritos/check?deviceId=...&googleBooksId=...
func (bc *BooksController) CheckFavorite(c *gin.Context) {
	deviceID, googleBooksID, ok := requireDevicePair(c)
	if !ok {
		return
	}
	isFavorito, err := bc.service.IsFavorite(deviceID, googleBooksID)
	if err != nil {
		respondInternalError(c, err, "check favourite book")
		return
	}
	c.JSON(http.StatusOK, isFavorito)
}

// AddFavorite records a favourite as a flagged book row.
// POST /livros/favoritos
func (bc *BooksController) AddFavorite(c *gin.Context) {
	var payload favoritePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	livro, err := bc.service.AddFavorite(payload.toInput())
	if err != nil {
		respondServiceError(c, err, "add favourite book")
		return
	}
	c.JSON(http.StatusCreated, livro)
}

// RemoveFavorite clears the favourite flag; the book row survives.
// DELETE /livros/favoritos?deviceId=...&googleBooksId=...
func (bc *BooksController) RemoveFavorite(c *gin.Context) {
	deviceID, googleBooksID, ok := requireDevicePair(c)
	if !ok {
		return
	}
	if err := bc.service.RemoveFavorite(deviceID, googleBooksID); err != nil {
		respondServiceError(c, err, "remove favourite book")
		return
	}
	c.Status(http.StatusNoContent)
}

// Search looks up books by title or author; an empty query lists everything.
// GET /livros/busca?query=...
func (bc *BooksController) Search(c *gin.Context) {
	livros, err := bc.service.Search(c.Query("query"))
	if err != nil {
		respondInternalError(c, err, "search books")
		return
	}
	c.JSON(http.StatusOK, livros)
}
