package comicinfo

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Metadata is the flat record extracted from a ComicInfo.xml document. Every
// field is independently optional; string fields stay empty and Year/Month
// stay nil when the document has nothing usable for them.
type Metadata struct {
	Title   string
	Series  string
	Number  string
	Volume  string
	Summary string

	Writer    string
	Penciller string
	Inker     string
	Colorist  string
	Letterer  string
	Publisher string
	Genre     string

	Year  *int
	Month *int
}

// Decode reads a ComicInfo.xml byte buffer into a Metadata record. The only
// failure mode is a byte stream that does not parse as XML; malformed field
// content (such as a non-numeric Year) is dropped, not reported.
func Decode(data []byte) (Metadata, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var md Metadata
	var text strings.Builder
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Metadata{}, fmt.Errorf("comicinfo: parse: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			text.Reset()
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			md.assign(t.Name.Local, strings.TrimSpace(text.String()))
			text.Reset()
		}
	}
	return md, nil
}

// assign routes one element's trimmed text into its field. Element names not
// in the ComicInfo schema fall through the default branch untouched.
func (m *Metadata) assign(name, value string) {
	switch name {
	case "Title":
		m.Title = value
	case "Series":
		m.Series = value
	case "Number":
		m.Number = value
	case "Volume":
		m.Volume = value
	case "Summary":
		m.Summary = value
	case "Writer":
		m.Writer = value
	case "Penciller":
		m.Penciller = value
	case "Inker":
		m.Inker = value
	case "Colorist":
		m.Colorist = value
	case "Letterer":
		m.Letterer = value
	case "Publisher":
		m.Publisher = value
	case "Genre":
		m.Genre = value
	case "Year":
		if n, err := strconv.Atoi(value); err == nil {
			m.Year = &n
		}
	case "Month":
		if n, err := strconv.Atoi(value); err == nil {
			m.Month = &n
		}
	default:
		// unknown tags are ignored
	}
}
