package models

import "github.com/ghuser/biblioteca/pkg/catalog"

// Magazine is one issue of a periodical.
type Magazine struct {
	catalog.Item
	IssueNumber *int
	Category    string
	Frequency   string
	ISSN        string
	Price       *float64
	Pages       *int
	Publisher   string
}
