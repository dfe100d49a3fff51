package encoder

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/ericlevine/qrenc/bitutil"
	"github.com/ericlevine/qrenc/qrcode/tables"
)

// Penalty weights for the four mask rules.
const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// ChooseMask builds a symbol for every mask pattern and returns the one with
// the lowest penalty. Ties go to the lowest pattern index.
func ChooseMask(codewords []byte, ecLevel tables.ErrorCorrectionLevel, version *tables.Version) (int, *bitutil.Bitmap, error) {
	skeleton, err := buildSkeleton(version)
	if err != nil {
		return 0, nil, err
	}

	var (
		candidates [tables.NumMaskPatterns]*bitutil.Bitmap
		penalties  [tables.NumMaskPatterns]int
		g          errgroup.Group
	)
	for i := 0; i < tables.NumMaskPatterns; i++ {
		i := i
		g.Go(func() error {
			matrix, err := placeData(skeleton, codewords, ecLevel, i)
			if err != nil {
				return err
			}
			candidates[i] = matrix
			penalties[i] = Penalty(matrix)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, nil, err
	}

	minPenalty := math.MaxInt
	bestPattern := 0
	for i, penalty := range penalties {
		if penalty < minPenalty {
			minPenalty = penalty
			bestPattern = i
		}
	}
	return bestPattern, candidates[bestPattern], nil
}

// Penalty scores a resolved symbol; lower is better.
func Penalty(matrix *bitutil.Bitmap) int {
	return applyMaskPenaltyRule1(matrix) +
		applyMaskPenaltyRule2(matrix) +
		applyMaskPenaltyRule3(matrix) +
		applyMaskPenaltyRule4(matrix)
}

// Mask penalty rule 1: penalize runs of 5+ same-color modules
func applyMaskPenaltyRule1(matrix *bitutil.Bitmap) int {
	return applyMaskPenaltyRule1Internal(matrix, true) + applyMaskPenaltyRule1Internal(matrix, false)
}

func applyMaskPenaltyRule1Internal(matrix *bitutil.Bitmap, isHorizontal bool) int {
	penalty := 0
	iLimit := matrix.Height()
	jLimit := matrix.Width()
	if !isHorizontal {
		iLimit, jLimit = jLimit, iLimit
	}
	for i := 0; i < iLimit; i++ {
		numSameBitCells := 0
		var prevBit bitutil.Cell
		for j := 0; j < jLimit; j++ {
			var bit bitutil.Cell
			if isHorizontal {
				bit = matrix.Cell(j, i)
			} else {
				bit = matrix.Cell(i, j)
			}
			if bit == prevBit {
				numSameBitCells++
			} else {
				if numSameBitCells >= 5 {
					penalty += penaltyN1 + (numSameBitCells - 5)
				}
				numSameBitCells = 1
				prevBit = bit
			}
		}
		if numSameBitCells >= 5 {
			penalty += penaltyN1 + (numSameBitCells - 5)
		}
	}
	return penalty
}

// Mask penalty rule 2: penalize 2x2 blocks of same color
func applyMaskPenaltyRule2(matrix *bitutil.Bitmap) int {
	penalty := 0
	for y := 0; y < matrix.Height()-1; y++ {
		for x := 0; x < matrix.Width()-1; x++ {
			value := matrix.Get(x, y)
			if value == matrix.Get(x+1, y) && value == matrix.Get(x, y+1) && value == matrix.Get(x+1, y+1) {
				penalty += penaltyN2
			}
		}
	}
	return penalty
}

// finderLike is the 1:1:3:1:1 dark/light sequence penalized by rule 3.
var finderLike = [7]bool{true, false, true, true, true, false, true}

// Mask penalty rule 3: penalize finder-like patterns followed by four light
// modules, and their mirror image preceded by four light modules. A pattern
// with light modules on both sides scores twice.
func applyMaskPenaltyRule3(matrix *bitutil.Bitmap) int {
	width, height := matrix.Width(), matrix.Height()
	horizontal := func(pos, line int) bool { return matrix.Get(pos, line) }
	vertical := func(pos, line int) bool { return matrix.Get(line, pos) }

	penalty := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x+6 < width {
				penalty += finderLikePenalty(horizontal, x, y, width)
			}
			if y+6 < height {
				penalty += finderLikePenalty(vertical, y, x, height)
			}
		}
	}
	return penalty
}

// finderLikePenalty scores the run starting at position pos of line. get
// reads a module by (position along the line, line index).
func finderLikePenalty(get func(pos, line int) bool, pos, line, limit int) int {
	for k, dark := range finderLike {
		if get(pos+k, line) != dark {
			return 0
		}
	}
	penalty := 0
	if isLightRun(get, pos+7, pos+11, line, limit) {
		penalty += penaltyN3
	}
	if isLightRun(get, pos-4, pos, line, limit) {
		penalty += penaltyN3
	}
	return penalty
}

func isLightRun(get func(pos, line int) bool, from, to, line, limit int) bool {
	if from < 0 || to > limit {
		return false
	}
	for i := from; i < to; i++ {
		if get(i, line) {
			return false
		}
	}
	return true
}

// Mask penalty rule 4: penalize deviation from 50% dark modules
func applyMaskPenaltyRule4(matrix *bitutil.Bitmap) int {
	numDarkCells := matrix.CountDark()
	total := matrix.Height() * matrix.Width()
	fivePercentVariances := abs(numDarkCells*2-total) * 10 / total
	return fivePercentVariances * penaltyN4
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
