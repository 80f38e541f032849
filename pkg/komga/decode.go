package komga

import (
	"encoding/json"
	"fmt"

	"github.com/kerbaras/komgareader/pkg/utils"
)

// The server is free to drift on descriptive fields, so every record is
// decoded field by field: identity fields through utils.Required, everything
// else through utils.Optional with its documented default. A decode either
// returns a complete record or a single error.

// DecodeLibrary decodes one library record.
func DecodeLibrary(data []byte) (Library, error) {
	obj, err := utils.DecodeObject(data)
	if err != nil {
		return Library{}, fmt.Errorf("komga: decode library: %w", err)
	}
	return decodeLibrary(obj)
}

func decodeLibrary(obj utils.Object) (Library, error) {
	var lib Library
	var err error
	if lib.ID, err = utils.Required[string](obj, "id"); err != nil {
		return Library{}, fmt.Errorf("komga: decode library: %w", err)
	}
	if lib.Name, err = utils.Required[string](obj, "name"); err != nil {
		return Library{}, fmt.Errorf("komga: decode library: %w", err)
	}
	if lib.Root, err = utils.Required[string](obj, "root"); err != nil {
		return Library{}, fmt.Errorf("komga: decode library: %w", err)
	}
	return lib, nil
}

// DecodeSeries decodes one series record.
func DecodeSeries(data []byte) (Series, error) {
	obj, err := utils.DecodeObject(data)
	if err != nil {
		return Series{}, fmt.Errorf("komga: decode series: %w", err)
	}
	return decodeSeries(obj)
}

func decodeSeries(obj utils.Object) (Series, error) {
	var s Series
	var err error
	if s.ID, err = utils.Required[string](obj, "id"); err != nil {
		return Series{}, fmt.Errorf("komga: decode series: %w", err)
	}
	if s.LibraryID, err = utils.Required[string](obj, "libraryId"); err != nil {
		return Series{}, fmt.Errorf("komga: decode series: %w", err)
	}
	if s.Name, err = utils.Required[string](obj, "name"); err != nil {
		return Series{}, fmt.Errorf("komga: decode series: %w", err)
	}
	s.BooksCount = utils.Optional(obj, "booksCount", 0)
	s.URL = utils.Optional(obj, "url", "")

	meta := utils.Optional[utils.Object](obj, "metadata", nil)
	s.Metadata = SeriesMetadata{
		Status:    utils.Optional(meta, "status", ""),
		Summary:   utils.Optional(meta, "summary", ""),
		Publisher: utils.Optional(meta, "publisher", ""),
	}
	return s, nil
}

// DecodeBook decodes one book record.
func DecodeBook(data []byte) (Book, error) {
	obj, err := utils.DecodeObject(data)
	if err != nil {
		return Book{}, fmt.Errorf("komga: decode book: %w", err)
	}
	return decodeBook(obj)
}

// authorWire mirrors one entry of the metadata.authors list.
type authorWire struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

func decodeBook(obj utils.Object) (Book, error) {
	var b Book
	var err error
	if b.ID, err = utils.Required[string](obj, "id"); err != nil {
		return Book{}, fmt.Errorf("komga: decode book: %w", err)
	}
	if b.SeriesID, err = utils.Required[string](obj, "seriesId"); err != nil {
		return Book{}, fmt.Errorf("komga: decode book: %w", err)
	}
	if b.Name, err = utils.Required[string](obj, "name"); err != nil {
		return Book{}, fmt.Errorf("komga: decode book: %w", err)
	}
	b.Number = utils.Optional(obj, "number", 0)
	b.URL = utils.Optional(obj, "url", "")

	media := utils.Optional[utils.Object](obj, "media", nil)
	b.Media = BookMedia{
		Status:     utils.Optional(media, "status", ""),
		MediaType:  utils.Optional(media, "mediaType", ""),
		PagesCount: utils.Optional(media, "pagesCount", 0),
	}

	meta := utils.Optional[utils.Object](obj, "metadata", nil)
	b.Metadata = BookMetadata{
		Title:       utils.Optional(meta, "title", ""),
		Summary:     utils.Optional(meta, "summary", ""),
		Number:      utils.Optional(meta, "number", ""),
		ReleaseDate: utils.Optional(meta, "releaseDate", ""),
	}
	for _, a := range utils.Optional[[]authorWire](meta, "authors", nil) {
		b.Metadata.Authors = append(b.Metadata.Authors, Author{Name: a.Name, Role: a.Role})
	}
	return b, nil
}

// DecodePage decodes one page record.
func DecodePage(data []byte) (Page, error) {
	obj, err := utils.DecodeObject(data)
	if err != nil {
		return Page{}, fmt.Errorf("komga: decode page: %w", err)
	}
	return decodePage(obj)
}

func decodePage(obj utils.Object) (Page, error) {
	var p Page
	var err error
	if p.Number, err = utils.Required[int](obj, "number"); err != nil {
		return Page{}, fmt.Errorf("komga: decode page: %w", err)
	}
	p.FileName = utils.Optional(obj, "fileName", "")
	p.MediaType = utils.Optional(obj, "mediaType", "")
	return p, nil
}

// DecodeLibraries decodes the JSON array returned by the library listing.
func DecodeLibraries(data []byte) ([]Library, error) {
	var raws []utils.Object
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("komga: decode libraries: %w", err)
	}
	libs := make([]Library, len(raws))
	for i, raw := range raws {
		lib, err := decodeLibrary(raw)
		if err != nil {
			return nil, err
		}
		libs[i] = lib
	}
	return libs, nil
}

// DecodePages decodes the JSON array returned by the book page listing.
func DecodePages(data []byte) ([]Page, error) {
	var raws []utils.Object
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("komga: decode pages: %w", err)
	}
	pages := make([]Page, len(raws))
	for i, raw := range raws {
		p, err := decodePage(raw)
		if err != nil {
			return nil, err
		}
		pages[i] = p
	}
	return pages, nil
}

// pagedWire mirrors the server's paginated envelope.
type pagedWire struct {
	Content []utils.Object `json:"content"`
}

// DecodeSeriesPage decodes one page of a paginated series listing.
func DecodeSeriesPage(data []byte) ([]Series, error) {
	var page pagedWire
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("komga: decode series page: %w", err)
	}
	series := make([]Series, len(page.Content))
	for i, raw := range page.Content {
		s, err := decodeSeries(raw)
		if err != nil {
			return nil, err
		}
		series[i] = s
	}
	return series, nil
}

// DecodeBooksPage decodes one page of a paginated book listing.
func DecodeBooksPage(data []byte) ([]Book, error) {
	var page pagedWire
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("komga: decode books page: %w", err)
	}
	books := make([]Book, len(page.Content))
	for i, raw := range page.Content {
		b, err := decodeBook(raw)
		if err != nil {
			return nil, err
		}
		books[i] = b
	}
	return books, nil
}
