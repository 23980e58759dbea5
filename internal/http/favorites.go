package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/livrariapp/livraria-server/internal/entities"
	"github.com/livrariapp/livraria-server/internal/services"
)

// FavoritesService defines the operations the /favoritos routes dispatch to.
type FavoritesService interface {
	ListByDevice(deviceID string) ([]entities.Favorite, error)
	IsFavorite(deviceID, googleBooksID string) (bool, error)
	Add(input services.FavoriteInput) (*entities.Favorite, error)
	Remove(deviceID, googleBooksID string) error
	FindByID(id uint) (*entities.Favorite, error)
	DeleteByID(id uint) error
}

type FavoritesController struct {
	service FavoritesService
}

func NewFavoritesController(service FavoritesService) *FavoritesController {
	return &FavoritesController{service: service}
}

// favoritePayload is the body of a favourite-add request. dataPublicacao
// stays free-form text here: clients send whatever Google Books returns.
type favoritePayload struct {
	DeviceID      string  `json:"deviceId"`
	GoogleBooksID string  `json:"googleBooksId"`
	Title         string  `json:"titulo"`
	Author        *string `json:"autor"`
	ImageURL      *string `json:"imagemUrl"`
	Description   *string `json:"descricao"`
	PublishedText *string `json:"dataPublicacao"`
}

func (p favoritePayload) toInput() services.FavoriteInput {
	return services.FavoriteInput{
		DeviceID:      p.DeviceID,
		GoogleBooksID: p.GoogleBooksID,
		Title:         p.Title,
		Author:        p.Author,
		ImageURL:      p.ImageURL,
		Description:   p.Description,
		PublishedText: p.PublishedText,
	}
}

// ListByDevice returns every favourite of a device.
// GET /favoritos/device/:deviceId
func (fc *FavoritesController) ListByDevice(c *gin.Context) {
	favoritos, err := fc.service.ListByDevice(c.Param("deviceId"))
	if err != nil {
		respondInternalError(c, err, "list favourites")
		return
	}
	c.JSON(http.StatusOK, favoritos)
}

// Check reports whether a Google Books title is a favourite of a device.
// GET /favoritos/check?deviceId=...&googleBooksId=...
func (fc *FavoritesController) Check(c *gin.Context) {
	deviceID, googleBooksID, ok := requireDevicePair(c)
	if !ok {
		return
	}
	isFavorito, err := fc.service.IsFavorite(deviceID, googleBooksID)
	if err != nil {
		respondInternalError(c, err, "check favourite")
		return
	}
	c.JSON(http.StatusOK, isFavorito)
}

// Add records a favourite for a device.
// POST /favoritos
func (fc *FavoritesController) Add(c *gin.Context) {
	var payload favoritePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	favorito, err := fc.service.Add(payload.toInput())
	if err != nil {
		respondServiceError(c, err, "add favourite")
		return
	}
	c.JSON(http.StatusCreated, favorito)
}

// Remove deletes the favourite of a device for a Google Books title.
// DELETE /favoritos?deviceId=...&googleBooksId=...
func (fc *FavoritesController) Remove(c *gin.Context) {
	deviceID, googleBooksID, ok := requireDevicePair(c)
	if !ok {
		return
	}
	if err := fc.service.Remove(deviceID, googleBooksID); err != nil {
		respondServiceError(c, err, "remove favourite")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetByID fetches a single favourite.
// GET /favoritos/:id
func (fc *FavoritesController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	favorito, err := fc.service.FindByID(id)
	if err != nil {
		respondServiceError(c, err, "get favourite")
		return
	}
	c.JSON(http.StatusOK, favorito)
}

// DeleteByID deletes a single favourite.
// DELETE /favoritos/:id
func (fc *FavoritesController) DeleteByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := fc.service.DeleteByID(id); err != nil {
		respondServiceError(c, err, "delete favourite")
		return
	}
	c.Status(http.StatusNoContent)
}
