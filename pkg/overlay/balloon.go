package overlay

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kerbaras/komgareader/pkg/utils"
)

// Balloon coordinates arrive on a fixed 1000x1000 reference grid, independent
// of the actual page image dimensions.
const gridSize = 1000

// Shape classifies the outline of a speech balloon.
type Shape string

const (
	ShapeOval      Shape = "OVAL"
	ShapeRectangle Shape = "RECTANGLE"
	ShapeCloud     Shape = "CLOUD"
	ShapeJagged    Shape = "JAGGED"
)

// ParseShape maps a raw shape tag to a Shape, case-insensitively. Unknown or
// empty tags fall back to the oval, the most common balloon outline.
func ParseShape(s string) Shape {
	switch Shape(strings.ToUpper(s)) {
	case ShapeRectangle:
		return ShapeRectangle
	case ShapeCloud:
		return ShapeCloud
	case ShapeJagged:
		return ShapeJagged
	default:
		return ShapeOval
	}
}

// Balloon is one detected speech region with its translation, as returned by
// the translation service for a page image.
type Balloon struct {
	ID              string // generated per decoded instance
	OriginalText    string
	TranslatedText  string
	ShouldTranslate bool
	Shape           Shape
	Box2D           []int // [yMin, xMin, yMax, xMax] on the reference grid
	CenterPoint     []int // [y, x] on the reference grid, empty when absent
}

// DecodeBalloon decodes one balloon record. The texts and a well-formed
// four-element box_2d are required; everything else defaults.
func DecodeBalloon(data []byte) (Balloon, error) {
	obj, err := utils.DecodeObject(data)
	if err != nil {
		return Balloon{}, fmt.Errorf("overlay: decode balloon: %w", err)
	}
	return decodeBalloon(obj)
}

func decodeBalloon(obj utils.Object) (Balloon, error) {
	b := Balloon{ID: uuid.NewString()}
	var err error
	if b.OriginalText, err = utils.Required[string](obj, "original_text"); err != nil {
		return Balloon{}, fmt.Errorf("overlay: decode balloon: %w", err)
	}
	if b.TranslatedText, err = utils.Required[string](obj, "italian_translation"); err != nil {
		return Balloon{}, fmt.Errorf("overlay: decode balloon: %w", err)
	}
	if b.Box2D, err = utils.Required[[]int](obj, "box_2d"); err != nil {
		return Balloon{}, fmt.Errorf("overlay: decode balloon: %w", err)
	}
	if len(b.Box2D) != 4 {
		return Balloon{}, fmt.Errorf("overlay: decode balloon: %w: %q needs 4 elements, got %d",
			utils.ErrInvalidField, "box_2d", len(b.Box2D))
	}
	b.ShouldTranslate = utils.Optional(obj, "should_translate", true)
	b.Shape = ParseShape(utils.Optional(obj, "shape", ""))
	b.CenterPoint = utils.Optional[[]int](obj, "center_point", nil)
	return b, nil
}

// DecodeBalloons decodes the JSON array the translation service returns for
// one page.
func DecodeBalloons(data []byte) ([]Balloon, error) {
	var raws []utils.Object
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("overlay: decode balloons: %w", err)
	}
	balloons := make([]Balloon, len(raws))
	for i, raw := range raws {
		b, err := decodeBalloon(raw)
		if err != nil {
			return nil, err
		}
		balloons[i] = b
	}
	return balloons, nil
}

// BoundingBox returns the balloon's box projected into the unit square, for
// placement over an image of any size. A box that is not a four-element list
// yields the zero rectangle rather than an error.
func (b Balloon) BoundingBox() Rect {
	if len(b.Box2D) != 4 {
		return Rect{}
	}
	yMin, xMin, yMax, xMax := b.Box2D[0], b.Box2D[1], b.Box2D[2], b.Box2D[3]
	return Rect{
		X:      float64(xMin) / gridSize,
		Y:      float64(yMin) / gridSize,
		Width:  float64(xMax-xMin) / gridSize,
		Height: float64(yMax-yMin) / gridSize,
	}
}

// Center returns the balloon's anchor point in grid coordinates: the explicit
// center point when one is present and well-formed, else the midpoint of the
// box, else the origin.
func (b Balloon) Center() Point {
	if len(b.CenterPoint) == 2 {
		return Point{X: float64(b.CenterPoint[1]), Y: float64(b.CenterPoint[0])}
	}
	if len(b.Box2D) == 4 {
		return Point{
			X: float64(b.Box2D[1]+b.Box2D[3]) / 2,
			Y: float64(b.Box2D[0]+b.Box2D[2]) / 2,
		}
	}
	return Point{}
}
