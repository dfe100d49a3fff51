package reedsolomon

import (
	"errors"
	"fmt"
)

// ErrInvalidLayout is returned when a codeword count does not match a layout.
var ErrInvalidLayout = errors.New("reedsolomon: codewords do not match block layout")

// BlockLayout describes how a symbol's codewords are split into RS blocks.
// The first ShortBlocks blocks carry ShortBlockDataLen data codewords, the
// remaining blocks carry one more. Every block carries ECCodewordsPerBlock
// error-correction codewords.
type BlockLayout struct {
	ECCodewordsPerBlock int
	TotalBlocks         int
	ShortBlocks         int
	ShortBlockDataLen   int
	TotalCodewords      int
}

// NewBlockLayout derives a layout from the symbol's total codeword count, its
// error-correction codewords per block and its block count.
func NewBlockLayout(totalCodewords, ecPerBlock, numBlocks int) (BlockLayout, error) {
	if numBlocks <= 0 || ecPerBlock <= 0 {
		return BlockLayout{}, fmt.Errorf("%w: %d blocks of %d ec codewords", ErrInvalidLayout, numBlocks, ecPerBlock)
	}
	longBlocks := totalCodewords % numBlocks
	shortLen := totalCodewords/numBlocks - ecPerBlock
	if shortLen <= 0 {
		return BlockLayout{}, fmt.Errorf("%w: no room for data in %d codewords", ErrInvalidLayout, totalCodewords)
	}
	return BlockLayout{
		ECCodewordsPerBlock: ecPerBlock,
		TotalBlocks:         numBlocks,
		ShortBlocks:         numBlocks - longBlocks,
		ShortBlockDataLen:   shortLen,
		TotalCodewords:      totalCodewords,
	}, nil
}

// DataCodewords returns the number of data codewords across all blocks.
func (l BlockLayout) DataCodewords() int {
	return l.TotalCodewords - l.ECCodewordsPerBlock*l.TotalBlocks
}

// BlockDataLen returns the number of data codewords in block i.
func (l BlockLayout) BlockDataLen(i int) int {
	if i < l.ShortBlocks {
		return l.ShortBlockDataLen
	}
	return l.ShortBlockDataLen + 1
}

// Capacity returns the number of data bits available in the layout.
func (l BlockLayout) Capacity() int {
	return l.DataCodewords() * 8
}

// Interleave splits data into blocks, appends RS codewords to each and weaves
// them in symbol order: the i-th data codeword of every block, then the i-th
// error-correction codeword of every block.
func Interleave(layout BlockLayout, data []byte) ([]byte, error) {
	if len(data) != layout.DataCodewords() {
		return nil, fmt.Errorf("%w: got %d data codewords, want %d", ErrInvalidLayout, len(data), layout.DataCodewords())
	}

	dataBlocks := make([][]byte, layout.TotalBlocks)
	ecBlocks := make([][]byte, layout.TotalBlocks)
	offset := 0
	for i := range dataBlocks {
		n := layout.BlockDataLen(i)
		dataBlocks[i] = data[offset : offset+n]
		offset += n
		ec, err := defaultEncoder.Encode(dataBlocks[i], layout.ECCodewordsPerBlock)
		if err != nil {
			return nil, err
		}
		ecBlocks[i] = ec
	}

	result := make([]byte, 0, layout.TotalCodewords)
	for i := 0; i <= layout.ShortBlockDataLen; i++ {
		for _, block := range dataBlocks {
			if i < len(block) {
				result = append(result, block[i])
			}
		}
	}
	for i := 0; i < layout.ECCodewordsPerBlock; i++ {
		for _, block := range ecBlocks {
			result = append(result, block[i])
		}
	}

	if len(result) != layout.TotalCodewords {
		return nil, fmt.Errorf("%w: interleaved %d codewords, want %d", ErrInvalidLayout, len(result), layout.TotalCodewords)
	}
	return result, nil
}

// Deinterleave reverses Interleave. Each block is error-corrected before its
// data codewords are concatenated. It returns the data codewords and the total
// number of codewords that were corrected.
func Deinterleave(layout BlockLayout, codewords []byte) ([]byte, int, error) {
	if len(codewords) != layout.TotalCodewords {
		return nil, 0, fmt.Errorf("%w: got %d codewords, want %d", ErrInvalidLayout, len(codewords), layout.TotalCodewords)
	}

	blocks := make([][]byte, layout.TotalBlocks)
	for i := range blocks {
		blocks[i] = make([]byte, 0, layout.BlockDataLen(i)+layout.ECCodewordsPerBlock)
	}

	offset := 0
	for i := 0; i <= layout.ShortBlockDataLen; i++ {
		for j := range blocks {
			if i < layout.BlockDataLen(j) {
				blocks[j] = append(blocks[j], codewords[offset])
				offset++
			}
		}
	}
	for i := 0; i < layout.ECCodewordsPerBlock; i++ {
		for j := range blocks {
			blocks[j] = append(blocks[j], codewords[offset])
			offset++
		}
	}

	data := make([]byte, 0, layout.DataCodewords())
	total := 0
	for i, block := range blocks {
		corrected, n, err := defaultDecoder.Decode(block, layout.ECCodewordsPerBlock)
		if err != nil {
			return nil, 0, fmt.Errorf("block %d: %w", i, err)
		}
		total += n
		data = append(data, corrected[:layout.BlockDataLen(i)]...)
	}
	return data, total, nil
}
