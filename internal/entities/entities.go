package entities

import (
	"time"
)

// Favorite is a Google Books title a device marked as favourite.
// The (device_id, google_books_id) pair is unique; the remaining fields
// are a snapshot of the Google Books metadata taken when the favourite
// was created and are never refreshed afterwards.
type Favorite struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	DeviceID      string    `gorm:"column:device_id;size:500;not null;uniqueIndex:idx_favoritos_device_book" json:"deviceId"`
	GoogleBooksID string    `gorm:"column:google_books_id;size:500;not null;uniqueIndex:idx_favoritos_device_book" json:"googleBooksId"`
	Title         string    `gorm:"column:titulo;size:1000;not null" json:"titulo"`
	Author        *string   `gorm:"column:autor;size:1000" json:"autor"`
	ImageURL      *string   `gorm:"column:imagem_url;size:2000" json:"imagemUrl"`
	Description   *string   `gorm:"column:descricao;size:5000" json:"descricao"`
	PublishedText *string   `gorm:"column:data_publicacao" json:"dataPublicacao"` // free-form text, e.g. "2008" or "2008-08-01"
	CreatedAt     time.Time `gorm:"column:data_criacao;not null" json:"dataCriacao"`
}

// Book is a catalog entry. Catalog books carry only the core fields;
// books created through the favourites API additionally carry the
// device/Google Books fields and Favorite set to true. Removing such a
// favourite flips the flag instead of deleting the row.
type Book struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Title         string     `gorm:"column:titulo;size:1000;not null" json:"titulo"`
	Author        *string    `gorm:"column:autor;size:1000" json:"autor"`
	Genre         *string    `gorm:"column:genero" json:"genero"`
	CoverURL      *string    `gorm:"column:capa;size:2000" json:"capa"`
	PublishedAt   *time.Time `gorm:"column:data_publicacao" json:"dataPublicacao"`
	Description   *string    `gorm:"column:descricao;size:5000" json:"descricao"`
	DeviceID      *string    `gorm:"column:device_id;size:500" json:"deviceId"`
	GoogleBooksID *string    `gorm:"column:google_books_id;size:500" json:"googleBooksId"`
	ImageURL      *string    `gorm:"column:imagem_url;size:2000" json:"imagemUrl"`
	PublishedText *string    `gorm:"column:data_publicacao_texto" json:"dataPublicacaoTexto"`
	Favorite      bool       `gorm:"column:favorito;not null;default:false" json:"favorito"`
	CreatedAt     time.Time  `gorm:"column:data_criacao;not null" json:"dataCriacao"`
}

func (Favorite) TableName() string {
	return "favoritos"
}

func (Book) TableName() string {
	return "tb_livros"
}
