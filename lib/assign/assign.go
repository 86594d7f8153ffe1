package assign

import (
	"slices"
	"strings"

	"github.com/ValentinKolb/dShelf/lib/shelf"
	"github.com/ValentinKolb/dShelf/lib/shelf/util"
	"github.com/lni/dragonboat/v4/logger"
)

var Logger = logger.GetLogger("assign")

const (
	// offsetModulo and offsetShift map a hash to [-8, 8]
	offsetModulo = 17
	offsetShift  = 8

	rotationSuffix = "rotation"
)

// Axis discriminates the two pixel offsets of a stamp.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
)

// fonts is the ordered list of typewriter font stacks a stamp can be printed in.
// It is an array so its length can never drop to zero.
var fonts = [...]string{
	"'Courier New', Courier, monospace",
	"'American Typewriter', 'Courier New', monospace",
	"'Consolas', 'Courier New', monospace",
	"'Monaco', 'Courier New', monospace",
	"'Lucida Console', 'Courier New', monospace",
}

// Fonts returns a copy of the font stacks DisplayFont picks from, in order.
func Fonts() []string {
	return slices.Clone(fonts[:])
}

// --------------------------------------------------------------------------
// Library Assignment
// --------------------------------------------------------------------------

// Library picks a library for a book title: abs(hash(title)) mod len(libraries).
// The same title always yields the same library for the same reference set.
//
// Errors:
//   - shelf.ErrInvalidInput if the title is empty or whitespace only
//   - shelf.ErrNoLibrariesAvailable if libraries is empty
func Library(title string, libraries []shelf.Library) (shelf.Library, error) {
	if strings.TrimSpace(title) == "" {
		return shelf.Library{}, shelf.NewError(shelf.RetCInvalidInput, "book title cannot be empty")
	}
	if len(libraries) == 0 {
		return shelf.Library{}, shelf.NewError(shelf.RetCNoLibrariesAvailable, "no libraries available for assignment")
	}
	return libraries[util.Bucket(util.HashString32(title), len(libraries))], nil
}

// --------------------------------------------------------------------------
// Stamp Placement
// --------------------------------------------------------------------------

// PixelOffset returns a stable offset in [-8, 8] for a date label on one axis.
func PixelOffset(dateLabel string, axis Axis) int {
	return util.Bucket(util.HashString32(dateLabel+string(axis)), offsetModulo) - offsetShift
}

// RotationAngle returns a stable rotation in degrees in [-8, 8] for a date label.
func RotationAngle(dateLabel string) int {
	return util.Bucket(util.HashString32(dateLabel+rotationSuffix), offsetModulo) - offsetShift
}

// DisplayFont returns the typewriter font a date label is stamped in.
func DisplayFont(dateLabel string) string {
	return fonts[util.Bucket(util.HashString32(dateLabel), len(fonts))]
}

// Stamp bundles everything needed to place a checkout stamp on a card.
type Stamp struct {
	Date     string `json:"date"`
	OffsetX  int    `json:"offset_x"`
	OffsetY  int    `json:"offset_y"`
	Rotation int    `json:"rotation"`
	Font     string `json:"font"`
}

// NewStamp computes the placement of a stamp for a date label
func NewStamp(dateLabel string) Stamp {
	return Stamp{
		Date:     dateLabel,
		OffsetX:  PixelOffset(dateLabel, AxisX),
		OffsetY:  PixelOffset(dateLabel, AxisY),
		Rotation: RotationAngle(dateLabel),
		Font:     DisplayFont(dateLabel),
	}
}

// --------------------------------------------------------------------------
// Stamp Colour
// --------------------------------------------------------------------------

// defaultColorClass is used for records without a colour or with one outside the palette
const defaultColorClass = "text-gray-700"

// ColorClass returns the CSS utility class for a stamp colour.
// An empty colour silently maps to the default, an unknown one is logged.
func ColorClass(color shelf.StampColor) string {
	switch color {
	case shelf.StampRed:
		return "text-red-600"
	case shelf.StampBlue:
		return "text-blue-600"
	case shelf.StampBrown:
		return "text-amber-900"
	case shelf.StampGreen:
		return "text-green-600"
	case "":
		return defaultColorClass
	default:
		Logger.Warningf("unexpected stamp color: %s", color)
		return defaultColorClass
	}
}
