package komga

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerbaras/komgareader/pkg/utils"
)

func TestDecodeLibrary(t *testing.T) {
	lib, err := DecodeLibrary([]byte(`{"id":"lib1","name":"Comics","root":"/data/comics"}`))
	require.NoError(t, err)

	assert.Equal(t, "lib1", lib.ID)
	assert.Equal(t, "Comics", lib.Name)
	assert.Equal(t, "/data/comics", lib.Root)
}

func TestDecodeLibrary_MissingRequired(t *testing.T) {
	_, err := DecodeLibrary([]byte(`{"id":"lib1","name":"Comics"}`))
	assert.ErrorIs(t, err, utils.ErrMissingField)

	_, err = DecodeLibrary([]byte(`{"id":42,"name":"Comics","root":"/x"}`))
	assert.ErrorIs(t, err, utils.ErrInvalidField)
}

func TestDecodeSeries(t *testing.T) {
	data := []byte(`{
		"id": "ser1",
		"libraryId": "lib1",
		"name": "Danger Girl",
		"booksCount": 7,
		"url": "/api/v1/series/ser1",
		"metadata": {"status": "ENDED", "summary": "Spies.", "publisher": "Cliffhanger"}
	}`)

	s, err := DecodeSeries(data)
	require.NoError(t, err)

	assert.Equal(t, "ser1", s.ID)
	assert.Equal(t, "lib1", s.LibraryID)
	assert.Equal(t, "Danger Girl", s.Name)
	assert.Equal(t, 7, s.BooksCount)
	assert.Equal(t, "/api/v1/series/ser1", s.URL)
	assert.Equal(t, "ENDED", s.Metadata.Status)
	assert.Equal(t, "Spies.", s.Metadata.Summary)
	assert.Equal(t, "Cliffhanger", s.Metadata.Publisher)
}

func TestDecodeSeries_MissingMetadata(t *testing.T) {
	s, err := DecodeSeries([]byte(`{"id":"ser1","libraryId":"lib1","name":"Danger Girl"}`))
	require.NoError(t, err)

	assert.Equal(t, 0, s.BooksCount)
	assert.Empty(t, s.URL)
	assert.Equal(t, SeriesMetadata{}, s.Metadata)
}

func TestDecodeSeries_WrongTypedOptionalDefaults(t *testing.T) {
	data := []byte(`{
		"id": "ser1",
		"libraryId": "lib1",
		"name": "Danger Girl",
		"booksCount": "many",
		"metadata": "oops"
	}`)

	s, err := DecodeSeries(data)
	require.NoError(t, err)
	assert.Equal(t, 0, s.BooksCount)
	assert.Equal(t, SeriesMetadata{}, s.Metadata)
}

func TestDecodeBook(t *testing.T) {
	data := []byte(`{
		"id": "bk1",
		"seriesId": "ser1",
		"name": "Danger Girl #2",
		"number": 2,
		"url": "/api/v1/books/bk1",
		"media": {"status": "READY", "mediaType": "application/zip", "pagesCount": 22},
		"metadata": {
			"title": "The Dangerous Game",
			"summary": "Spies and explosions.",
			"number": "2",
			"releaseDate": "1998-04-01",
			"authors": [
				{"name": "Andy Hartnell", "role": "writer"},
				{"name": "J. Scott Campbell", "role": "penciller"}
			]
		}
	}`)

	b, err := DecodeBook(data)
	require.NoError(t, err)

	assert.Equal(t, "bk1", b.ID)
	assert.Equal(t, "ser1", b.SeriesID)
	assert.Equal(t, "Danger Girl #2", b.Name)
	assert.Equal(t, 2, b.Number)
	assert.Equal(t, 22, b.Media.PagesCount)
	assert.Equal(t, "application/zip", b.Media.MediaType)
	assert.Equal(t, "The Dangerous Game", b.Metadata.Title)
	assert.Equal(t, "1998-04-01", b.Metadata.ReleaseDate)
	require.Len(t, b.Metadata.Authors, 2)
	assert.Equal(t, Author{Name: "Andy Hartnell", Role: "writer"}, b.Metadata.Authors[0])
}

func TestDecodeBook_MissingNestedRecords(t *testing.T) {
	b, err := DecodeBook([]byte(`{"id":"bk1","seriesId":"ser1","name":"Danger Girl #2"}`))
	require.NoError(t, err)

	assert.Equal(t, 0, b.Number)
	assert.Equal(t, BookMedia{}, b.Media)
	assert.Equal(t, BookMetadata{}, b.Metadata)
	assert.Empty(t, b.Metadata.Authors)
}

func TestDecodeBook_MissingRequired(t *testing.T) {
	_, err := DecodeBook([]byte(`{"seriesId":"ser1","name":"x"}`))
	assert.ErrorIs(t, err, utils.ErrMissingField)
}

func TestDecodePage(t *testing.T) {
	p, err := DecodePage([]byte(`{"number":3,"fileName":"003.jpg","mediaType":"image/jpeg"}`))
	require.NoError(t, err)

	assert.Equal(t, Page{Number: 3, FileName: "003.jpg", MediaType: "image/jpeg"}, p)

	_, err = DecodePage([]byte(`{"fileName":"003.jpg"}`))
	assert.ErrorIs(t, err, utils.ErrMissingField)
}

func TestDecodeLibraries(t *testing.T) {
	data := []byte(`[
		{"id":"lib1","name":"Comics","root":"/data/comics"},
		{"id":"lib2","name":"Manga","root":"/data/manga"}
	]`)

	libs, err := DecodeLibraries(data)
	require.NoError(t, err)
	require.Len(t, libs, 2)
	assert.Equal(t, "Manga", libs[1].Name)
}

func TestDecodeLibraries_ElementFailureIsAtomic(t *testing.T) {
	data := []byte(`[
		{"id":"lib1","name":"Comics","root":"/data/comics"},
		{"id":"lib2","name":"Manga"}
	]`)

	_, err := DecodeLibraries(data)
	assert.ErrorIs(t, err, utils.ErrMissingField)
}

func TestDecodeSeriesPage(t *testing.T) {
	data := []byte(`{
		"content": [
			{"id":"ser1","libraryId":"lib1","name":"Danger Girl"},
			{"id":"ser2","libraryId":"lib1","name":"Gen13","booksCount":3}
		],
		"totalElements": 2
	}`)

	series, err := DecodeSeriesPage(data)
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, "Gen13", series[1].Name)
	assert.Equal(t, 3, series[1].BooksCount)
}

func TestDecodeBooksPage(t *testing.T) {
	data := []byte(`{"content":[{"id":"bk1","seriesId":"ser1","name":"Danger Girl #1"}]}`)

	books, err := DecodeBooksPage(data)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Danger Girl #1", books[0].Name)
}

func TestDecodePages(t *testing.T) {
	data := []byte(`[
		{"number":1,"fileName":"001.jpg","mediaType":"image/jpeg"},
		{"number":2,"fileName":"002.jpg","mediaType":"image/jpeg"}
	]`)

	pages, err := DecodePages(data)
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, 2, pages[1].Number)
}

func TestDecode_Idempotent(t *testing.T) {
	data := []byte(`{"id":"ser1","libraryId":"lib1","name":"Danger Girl","booksCount":7}`)

	first, err := DecodeSeries(data)
	require.NoError(t, err)
	second, err := DecodeSeries(data)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
