package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/livrariapp/livraria-server/internal/database/books"
	"github.com/livrariapp/livraria-server/internal/database/favorites"
	"github.com/livrariapp/livraria-server/internal/http"
	"github.com/livrariapp/livraria-server/internal/services"
)

// Data access layer
var _ services.FavoriteStore = (*favorites.Repository)(nil)
var _ services.BookStore = (*books.Repository)(nil)

// Service layer
var _ http.FavoritesService = (*services.FavoritesService)(nil)
var _ http.BooksService = (*services.BooksService)(nil)
