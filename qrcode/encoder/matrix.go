package encoder

import (
	"fmt"

	qrenc "github.com/ericlevine/qrenc"
	"github.com/ericlevine/qrenc/bitutil"
	"github.com/ericlevine/qrenc/qrcode/tables"
)

// Position detection pattern (7x7 finder pattern)
var positionDetectionPattern = mustParsePattern(`
#######
#.....#
#.###.#
#.###.#
#.###.#
#.....#
#######`)

// Position adjustment pattern (5x5 alignment pattern)
var positionAdjustmentPattern = mustParsePattern(`
#####
#...#
#.#.#
#...#
#####`)

func mustParsePattern(repr string) *bitutil.Bitmap {
	bm, err := bitutil.ParseBitmap(repr, "#", ".")
	if err != nil {
		panic(err)
	}
	return bm
}

// typeInfoCoordinates lists the cells of the format information copy around
// the top-left finder, least significant bit first, as (x, y).
var typeInfoCoordinates = [15][2]int{
	{8, 0}, {8, 1}, {8, 2}, {8, 3}, {8, 4}, {8, 5}, {8, 7}, {8, 8},
	{7, 8}, {5, 8}, {4, 8}, {3, 8}, {2, 8}, {1, 8}, {0, 8},
}

// BuildMatrix places codewords into a symbol of the given version using mask
// pattern maskPattern, together with every function pattern and the format
// and version information.
func BuildMatrix(codewords []byte, ecLevel tables.ErrorCorrectionLevel, version *tables.Version, maskPattern int) (*bitutil.Bitmap, error) {
	skeleton, err := buildSkeleton(version)
	if err != nil {
		return nil, err
	}
	return placeData(skeleton, codewords, ecLevel, maskPattern)
}

// buildSkeleton draws the function patterns of a version and reserves the
// format information area. Data modules are left unset.
func buildSkeleton(version *tables.Version) (*bitutil.Bitmap, error) {
	dimension := version.Dimension()
	matrix := bitutil.NewSquareBitmap(dimension)

	embedBasicPatterns(version, matrix)
	// Reserve format information; the final bits are written per mask.
	embedTypeInfo(0, matrix)
	if err := maybeEmbedVersionInfo(version, matrix); err != nil {
		return nil, err
	}
	return matrix, nil
}

// placeData writes format information for ecLevel and maskPattern into a copy
// of skeleton and fills its unset modules with the masked codeword bits.
func placeData(skeleton *bitutil.Bitmap, codewords []byte, ecLevel tables.ErrorCorrectionLevel, maskPattern int) (*bitutil.Bitmap, error) {
	mask, err := tables.MaskForIndex(maskPattern)
	if err != nil {
		return nil, err
	}
	typeInfoBits, err := tables.FormatInfoBits(ecLevel, maskPattern)
	if err != nil {
		return nil, err
	}

	matrix := skeleton.Clone()
	embedTypeInfo(typeInfoBits, matrix)
	if err := embedDataBits(codewords, mask, matrix); err != nil {
		return nil, err
	}
	if err := matrix.AssertResolved(); err != nil {
		return nil, err
	}
	return matrix, nil
}

func embedBasicPatterns(version *tables.Version, matrix *bitutil.Bitmap) {
	dimension := matrix.Width()

	// Position detection patterns
	matrix.Embed(0, 0, positionDetectionPattern)
	matrix.Embed(dimension-7, 0, positionDetectionPattern)
	matrix.Embed(0, dimension-7, positionDetectionPattern)

	// Separators
	light := bitutil.Constant(false)
	matrix.Rect(0, 7, 8, 1, light)
	matrix.Rect(7, 0, 1, 8, light)
	matrix.Rect(dimension-8, 7, 8, 1, light)
	matrix.Rect(dimension-8, 0, 1, 8, light)
	matrix.Rect(0, dimension-8, 8, 1, light)
	matrix.Rect(7, dimension-8, 1, 8, light)

	// Alignment patterns
	centers := version.AlignmentPatternCenters()
	for _, cy := range centers {
		for _, cx := range centers {
			// Only embed if the center cell is not already occupied by a finder pattern
			if matrix.IsSet(cx, cy) {
				continue
			}
			matrix.Embed(cx-2, cy-2, positionAdjustmentPattern)
		}
	}

	// Timing patterns
	timing := func(i int) bitutil.Fill {
		return bitutil.Computed(func(x, y int, prev bitutil.Cell) bool {
			if prev != bitutil.Unset {
				return prev == bitutil.Dark
			}
			return (x+y+i)%2 == 0
		})
	}
	matrix.Rect(8, 6, dimension-16, 1, timing(8))
	matrix.Rect(6, 8, 1, dimension-16, timing(8))

	// Dark module
	matrix.Set(8, dimension-8, true)
}

// embedTypeInfo writes both copies of the 15-bit format information word.
func embedTypeInfo(typeInfoBits int, matrix *bitutil.Bitmap) {
	dimension := matrix.Width()
	for i, coord := range typeInfoCoordinates {
		bit := (typeInfoBits>>uint(i))&1 == 1
		matrix.Set(coord[0], coord[1], bit)

		// Also place in the second location
		if i < 8 {
			matrix.Set(dimension-1-i, 8, bit)
		} else {
			matrix.Set(8, dimension-7+(i-8), bit)
		}
	}
}

// maybeEmbedVersionInfo writes the two 6x3 version information blocks for
// versions 7 and up.
func maybeEmbedVersionInfo(version *tables.Version, matrix *bitutil.Bitmap) error {
	if version.Number < 7 {
		return nil
	}
	versionInfoBits, err := tables.VersionInfoBits(version.Number)
	if err != nil {
		return err
	}
	dimension := matrix.Width()
	bitIndex := 0
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			bit := (versionInfoBits>>uint(bitIndex))&1 == 1
			bitIndex++
			// Bottom-left
			matrix.Set(i, dimension-11+j, bit)
			// Top-right
			matrix.Set(dimension-11+j, i, bit)
		}
	}
	return nil
}

// embedDataBits walks the symbol in two-module columns from the right edge,
// alternating upward and downward and skipping the vertical timing column,
// and writes codeword bits most significant first into every unset module.
// Modules left over once the codewords are exhausted receive zero bits.
func embedDataBits(codewords []byte, mask tables.MaskFunc, matrix *bitutil.Bitmap) error {
	dimension := matrix.Height()
	numBits := len(codewords) * 8
	bitIndex := 0
	direction := -1
	y := dimension - 1

	for x := dimension - 1; x > 0; x -= 2 {
		if x == 6 {
			x-- // skip timing column
		}
		for ; y >= 0 && y < dimension; y += direction {
			for i := 0; i < 2; i++ {
				xx := x - i
				if matrix.IsSet(xx, y) {
					continue
				}
				var bit bool
				if bitIndex < numBits {
					bit = codewords[bitIndex/8]&(0x80>>uint(bitIndex%8)) != 0
					bitIndex++
				}
				if mask(y, xx) {
					bit = !bit
				}
				matrix.Set(xx, y, bit)
			}
		}
		direction = -direction
		y += direction
	}

	if bitIndex != numBits {
		return fmt.Errorf("%w: placed %d of %d bits", qrenc.ErrOverflow, bitIndex, numBits)
	}
	return nil
}
