package models

import "github.com/ghuser/biblioteca/pkg/catalog"

// Book is a catalog item identified by its ISBN.
type Book struct {
	catalog.Item
	ISBN      string
	Pages     *int
	Genre     string
	Publisher string
	Language  string
	Price     *float64
	Stock     *int
}
