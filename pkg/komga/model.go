package komga

import "strings"

// Library is a top-level content root on the server.
type Library struct {
	ID   string
	Name string
	Root string
}

// Series groups the books of one comic run inside a library.
type Series struct {
	ID         string
	LibraryID  string
	Name       string
	BooksCount int
	URL        string
	Metadata   SeriesMetadata
}

type SeriesMetadata struct {
	Status    string
	Summary   string
	Publisher string
}

// Book is a single readable volume or issue of a series.
type Book struct {
	ID       string
	SeriesID string
	Name     string
	Number   int
	URL      string
	Media    BookMedia
	Metadata BookMetadata
}

type BookMedia struct {
	Status     string
	MediaType  string
	PagesCount int
}

type BookMetadata struct {
	Title       string
	Summary     string
	Number      string
	ReleaseDate string // ISO date, empty when the server has none
	Authors     []Author
}

// Author is one creator credit on a book.
type Author struct {
	Name string
	Role string
}

// Creator roles as used in book metadata and ComicInfo.xml.
const (
	RoleWriter    = "writer"
	RolePenciller = "penciller"
	RoleInker     = "inker"
)

// AuthorByRole returns the first credited author whose role matches,
// case-insensitively.
func (m BookMetadata) AuthorByRole(role string) (Author, bool) {
	for _, a := range m.Authors {
		if strings.EqualFold(a.Role, role) {
			return a, true
		}
	}
	return Author{}, false
}

func (m BookMetadata) Writer() (Author, bool)    { return m.AuthorByRole(RoleWriter) }
func (m BookMetadata) Penciller() (Author, bool) { return m.AuthorByRole(RolePenciller) }
func (m BookMetadata) Inker() (Author, bool)     { return m.AuthorByRole(RoleInker) }

// Page is one image inside a book, identified by its position.
type Page struct {
	Number    int
	FileName  string
	MediaType string
}
