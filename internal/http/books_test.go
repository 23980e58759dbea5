package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/livrariapp/livraria-server/internal/entities"
	"github.com/livrariapp/livraria-server/internal/services"
)

func TestLivros_CreateAndGet(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	w := doRequest(router, "POST", "/livros",
		`{"titulo":"Clean Code","autor":"Martin","genero":"Software"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var created services.BookDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Clean Code", created.Title)

	w = doRequest(router, "GET", fmt.Sprintf("/livros/%d", created.ID), "")
	require.Equal(t, http.StatusOK, w.Code)

	var found services.BookDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &found))
	assert.Equal(t, created.ID, found.ID)
	require.NotNil(t, found.Author)
	assert.Equal(t, "Martin", *found.Author)

	w = doRequest(router, "GET", "/livros/9999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLivros_List(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	w := doRequest(router, "GET", "/livros", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	doRequest(router, "POST", "/livros", `{"titulo":"Clean Code"}`)
	doRequest(router, "POST", "/livros", `{"titulo":"The Mythical Man-Month"}`)

	w = doRequest(router, "GET", "/livros", "")
	require.Equal(t, http.StatusOK, w.Code)

	var listed []services.BookDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Len(t, listed, 2)
}

func TestLivros_Update(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	w := doRequest(router, "POST", "/livros",
		`{"titulo":"Clean Code","autor":"Martin"}`)
	var created services.BookDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// PUT overwrites every core field, nulls included.
	w = doRequest(router, "PUT", fmt.Sprintf("/livros/%d", created.ID),
		`{"titulo":"Clean Code 2e"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var updated services.BookDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Clean Code 2e", updated.Title)
	assert.Nil(t, updated.Author)

	w = doRequest(router, "PUT", "/livros/9999", `{"titulo":"Ghost"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLivros_Delete(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	w := doRequest(router, "POST", "/livros", `{"titulo":"Clean Code"}`)
	var created services.BookDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doRequest(router, "DELETE", fmt.Sprintf("/livros/%d", created.ID), "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Deleting an unknown id still answers 204.
	w = doRequest(router, "DELETE", "/livros/9999", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestLivrosFavoritos_SoftDelete(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	w := doRequest(router, "POST", "/livros/favoritos",
		`{"deviceId":"D2","googleBooksId":"G9","titulo":"B9","imagemUrl":"https://covers.example/b9.jpg"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created entities.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.Favorite)
	require.NotNil(t, created.CoverURL)
	require.NotNil(t, created.ImageURL)
	assert.Equal(t, *created.ImageURL, *created.CoverURL)

	w = doRequest(router, "DELETE", "/livros/favoritos?deviceId=D2&googleBooksId=G9", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	// The book row survives with the flag cleared.
	w = doRequest(router, "GET", fmt.Sprintf("/livros/%d", created.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, "GET", "/livros/favoritos/check?deviceId=D2&googleBooksId=G9", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "false", w.Body.String())
}

func TestLivrosFavoritos_AddIsIdempotent(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	w := doRequest(router, "POST", "/livros/favoritos",
		`{"deviceId":"D1","googleBooksId":"G1","titulo":"B1"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var first entities.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))

	w = doRequest(router, "POST", "/livros/favoritos",
		`{"deviceId":"D1","googleBooksId":"G1","titulo":"B-different"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var second entities.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "B1", second.Title)
}

func TestLivrosFavoritos_MissingFields(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	w := doRequest(router, "POST", "/livros/favoritos", `{"deviceId":"D1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "deviceId, googleBooksId e titulo são obrigatórios")
}

func TestLivrosFavoritos_ListByDevice(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	doRequest(router, "POST", "/livros/favoritos",
		`{"deviceId":"D1","googleBooksId":"G1","titulo":"B1"}`)
	doRequest(router, "POST", "/livros/favoritos",
		`{"deviceId":"D1","googleBooksId":"G2","titulo":"B2"}`)
	doRequest(router, "POST", "/livros/favoritos",
		`{"deviceId":"D2","googleBooksId":"G1","titulo":"B1"}`)

	w := doRequest(router, "GET", "/livros/favoritos/device/D1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var listed []entities.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Len(t, listed, 2)
}

func TestLivrosFavoritos_RemoveAbsent(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	w := doRequest(router, "DELETE", "/livros/favoritos?deviceId=D9&googleBooksId=G9", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Favorito não encontrado")
}

func TestLivros_Busca(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	doRequest(router, "POST", "/livros", `{"titulo":"Clean Code","autor":"Martin"}`)
	doRequest(router, "POST", "/livros", `{"titulo":"The Mythical Man-Month","autor":"Brooks"}`)

	w := doRequest(router, "GET", "/livros/busca?query=code", "")
	require.Equal(t, http.StatusOK, w.Code)

	var results []entities.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "Clean Code", results[0].Title)

	// Empty query returns the whole catalog.
	w = doRequest(router, "GET", "/livros/busca?query=", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	assert.Len(t, results, 2)

	// Matching on author works too.
	w = doRequest(router, "GET", "/livros/busca?query=brooks", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "The Mythical Man-Month", results[0].Title)
}
