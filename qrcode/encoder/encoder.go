// Package encoder implements QR code encoding.
package encoder

import (
	"errors"
	"fmt"
	"strings"

	qrenc "github.com/ericlevine/qrenc"
	"github.com/ericlevine/qrenc/bitutil"
	"github.com/ericlevine/qrenc/charset"
	"github.com/ericlevine/qrenc/qrcode/tables"
	"github.com/ericlevine/qrenc/reedsolomon"
)

// AutoMask asks Encode to pick the mask pattern with the lowest penalty.
const AutoMask = -1

// Hints carries the optional parameters of Encode. The zero value of each
// field except Mask selects automatic behaviour; set Mask to AutoMask for an
// automatic mask.
type Hints struct {
	Mode    tables.Mode      // 0 for auto-detection
	Version int              // 0 for the smallest version that fits
	Mask    int              // AutoMask or 0..7
	Charset *charset.Charset // byte-mode encoding, nil for UTF-8
}

// QRCode holds the encoded QR code data. It is not modified after Encode
// returns it.
type QRCode struct {
	Mode        tables.Mode
	ECLevel     tables.ErrorCorrectionLevel
	Version     *tables.Version
	MaskPattern int
	Matrix      *bitutil.Bitmap

	// Codewords are the interleaved data and error correction codewords
	// placed in Matrix.
	Codewords []byte
}

// ChooseMode determines the most compact mode that can represent content:
// numeric for digits only, alphanumeric for the 45-character set, byte
// otherwise. Empty content uses byte mode.
func ChooseMode(content string) tables.Mode {
	if content == "" {
		return tables.ModeByte
	}
	hasAlphanumeric := false
	for _, c := range content {
		if tables.IsNumeric(c) {
			continue
		}
		if _, ok := tables.AlphanumericCode(c); ok {
			hasAlphanumeric = true
			continue
		}
		return tables.ModeByte
	}
	if hasAlphanumeric {
		return tables.ModeAlphanumeric
	}
	return tables.ModeNumeric
}

// Encode encodes content into a QRCode at the given error correction level.
func Encode(content string, ecLevel tables.ErrorCorrectionLevel, hints Hints) (*QRCode, error) {
	if !ecLevel.Valid() {
		return nil, fmt.Errorf("%w: %d", tables.ErrInvalidECLevel, int(ecLevel))
	}
	if hints.Mask != AutoMask {
		if _, err := tables.MaskForIndex(hints.Mask); err != nil {
			return nil, err
		}
	}

	mode := hints.Mode
	if mode == 0 {
		mode = ChooseMode(content)
	}

	// Build data bits
	dataBits := bitutil.NewBitArray(0)
	numLetters, err := appendBytes(content, mode, hints.Charset, dataBits)
	if err != nil {
		return nil, err
	}

	// Choose version
	var version *tables.Version
	if hints.Version != 0 {
		version, err = tables.VersionForNumber(hints.Version)
		if err != nil {
			return nil, err
		}
		if !willFit(mode, numLetters, dataBits.Size(), version, ecLevel) {
			capacity, _ := tables.CharacterCapacity(version.Number, ecLevel, mode)
			return nil, fmt.Errorf("%w: %d %s characters, version %d-%s holds %d",
				qrenc.ErrCapacityOverflow, numLetters, mode, version.Number, ecLevel, capacity)
		}
	} else {
		version, err = chooseVersion(mode, numLetters, dataBits.Size(), ecLevel)
		if err != nil {
			return nil, err
		}
	}

	// Header: mode indicator and character count
	countBits, err := mode.CharacterCountBits(version.Number)
	if err != nil {
		return nil, err
	}
	bits := bitutil.NewBitArray(0)
	bits.AppendBits(uint32(mode.Bits()), 4)
	bits.AppendBits(uint32(numLetters), countBits)
	bits.AppendBitArray(dataBits)

	layout, err := version.Layout(ecLevel)
	if err != nil {
		return nil, err
	}
	if err := terminateBits(layout.DataCodewords(), bits); err != nil {
		return nil, err
	}

	codewords, err := reedsolomon.Interleave(layout, bits.Bytes())
	if err != nil {
		return nil, err
	}

	qr := &QRCode{
		Mode:        mode,
		ECLevel:     ecLevel,
		Version:     version,
		MaskPattern: hints.Mask,
		Codewords:   codewords,
	}
	if hints.Mask == AutoMask {
		qr.MaskPattern, qr.Matrix, err = ChooseMask(codewords, ecLevel, version)
	} else {
		qr.Matrix, err = BuildMatrix(codewords, ecLevel, version, hints.Mask)
	}
	if err != nil {
		return nil, err
	}
	return qr, nil
}

// willFit reports whether a segment fits version at ecLevel, including its
// character count field.
func willFit(mode tables.Mode, numLetters, numDataBits int, version *tables.Version, ecLevel tables.ErrorCorrectionLevel) bool {
	countBits, err := mode.CharacterCountBits(version.Number)
	if err != nil || numLetters >= 1<<countBits {
		return false
	}
	totalBits := 4 + countBits + numDataBits
	return totalBits <= version.DataCodewords(ecLevel)*8
}

func chooseVersion(mode tables.Mode, numLetters, numDataBits int, ecLevel tables.ErrorCorrectionLevel) (*tables.Version, error) {
	for versionNum := tables.MinVersion; versionNum <= tables.MaxVersion; versionNum++ {
		version, err := tables.VersionForNumber(versionNum)
		if err != nil {
			return nil, err
		}
		if willFit(mode, numLetters, numDataBits, version, ecLevel) {
			return version, nil
		}
	}
	return nil, fmt.Errorf("%w: %d %s characters at level %s",
		qrenc.ErrNoVersionFits, numLetters, mode, ecLevel)
}

// terminateBits appends the terminator, pads to a byte boundary and fills the
// remaining capacity with alternating 0xEC and 0x11 bytes.
func terminateBits(numDataBytes int, bits *bitutil.BitArray) error {
	capacity := numDataBytes * 8
	if bits.Size() > capacity {
		return fmt.Errorf("%w: %d data bits exceed capacity %d", qrenc.ErrCapacityOverflow, bits.Size(), capacity)
	}

	// Terminator mode
	for i := 0; i < 4 && bits.Size() < capacity; i++ {
		bits.AppendBit(false)
	}

	// Pad to byte boundary
	if numBitsInLastByte := bits.Size() & 0x07; numBitsInLastByte > 0 {
		for i := numBitsInLastByte; i < 8; i++ {
			bits.AppendBit(false)
		}
	}

	// Pad with alternating bytes
	numPaddingBytes := numDataBytes - bits.SizeInBytes()
	for i := 0; i < numPaddingBytes; i++ {
		if i%2 == 0 {
			bits.AppendBits(0xEC, 8)
		} else {
			bits.AppendBits(0x11, 8)
		}
	}
	if bits.Size() != capacity {
		return fmt.Errorf("%w: padded to %d bits, want %d", qrenc.ErrCapacityOverflow, bits.Size(), capacity)
	}
	return nil
}

// appendBytes encodes content in mode and returns the character count for
// the segment header.
func appendBytes(content string, mode tables.Mode, cs *charset.Charset, bits *bitutil.BitArray) (int, error) {
	switch mode {
	case tables.ModeNumeric:
		return len(content), appendNumericBytes(content, bits)
	case tables.ModeAlphanumeric:
		return len(content), appendAlphanumericBytes(content, bits)
	case tables.ModeByte:
		return append8BitBytes(content, cs, bits)
	case tables.ModeKanji, tables.ModeECI:
		return 0, fmt.Errorf("%w: %s", qrenc.ErrUnsupportedMode, mode)
	default:
		return 0, fmt.Errorf("%w: %s", tables.ErrInvalidMode, mode)
	}
}

func appendNumericBytes(content string, bits *bitutil.BitArray) error {
	for i := 0; i < len(content); i++ {
		if !tables.IsNumeric(rune(content[i])) {
			return fmt.Errorf("%w: numeric mode cannot encode %q at offset %d",
				qrenc.ErrUnsupportedMode, content[i], i)
		}
	}
	length := len(content)
	i := 0
	for i < length {
		num1 := int(content[i] - '0')
		if i+2 < length {
			num2 := int(content[i+1] - '0')
			num3 := int(content[i+2] - '0')
			bits.AppendBits(uint32(num1*100+num2*10+num3), 10)
			i += 3
		} else if i+1 < length {
			num2 := int(content[i+1] - '0')
			bits.AppendBits(uint32(num1*10+num2), 7)
			i += 2
		} else {
			bits.AppendBits(uint32(num1), 4)
			i++
		}
	}
	return nil
}

func appendAlphanumericBytes(content string, bits *bitutil.BitArray) error {
	codes := make([]int, len(content))
	for i := 0; i < len(content); i++ {
		code, ok := tables.AlphanumericCode(rune(content[i]))
		if !ok {
			return fmt.Errorf("%w: alphanumeric mode cannot encode %q at offset %d",
				qrenc.ErrUnsupportedMode, content[i], i)
		}
		codes[i] = code
	}
	for i := 0; i < len(codes); i += 2 {
		if i+1 < len(codes) {
			bits.AppendBits(uint32(codes[i]*45+codes[i+1]), 11)
		} else {
			bits.AppendBits(uint32(codes[i]), 6)
		}
	}
	return nil
}

func append8BitBytes(content string, cs *charset.Charset, bits *bitutil.BitArray) (int, error) {
	if cs == nil {
		cs = charset.UTF8
	}
	data, err := cs.Encode(content)
	if err != nil {
		if errors.Is(err, charset.ErrUnencodable) {
			return 0, fmt.Errorf("%w: %v", qrenc.ErrUnsupportedMode, err)
		}
		return 0, err
	}
	bits.AppendBytes(data)
	return len(data), nil
}

// String returns a visual representation of the QR code.
func (qr *QRCode) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "mode: %s\necLevel: %s\nversion: %d\nmaskPattern: %d\n",
		qr.Mode, qr.ECLevel, qr.Version.Number, qr.MaskPattern)
	for y := 0; y < qr.Matrix.Height(); y++ {
		for x := 0; x < qr.Matrix.Width(); x++ {
			if qr.Matrix.Get(x, y) {
				sb.WriteString("##")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
