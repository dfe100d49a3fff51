package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	qrenc "github.com/ericlevine/qrenc"
	"github.com/ericlevine/qrenc/qrcode"
)

func main() {
	ecLevel := flag.String("ecc", "M", "error correction level: L, M, Q or H")
	mode := flag.String("mode", "", "force encoding mode: numeric, alphanumeric or byte")
	version := flag.Int("version", 0, "force symbol version (1-40)")
	mask := flag.Int("mask", -1, "force mask pattern (0-7)")
	border := flag.Int("border", 2, "quiet zone width in modules")
	scale := flag.Int("scale", 1, "pixels or cells per module")
	format := flag.String("format", "", "output format: raw, ascii, term, svg, gif or image (default term on a terminal, ascii otherwise)")
	rects := flag.Bool("svg-rects", false, "emit one rect per dark module in SVG output")
	charset := flag.String("charset", "", "byte mode character set: UTF-8 or ISO-8859-1")
	output := flag.String("o", "", "write output to `file` instead of stdout")
	verbose := flag.Bool("v", false, "print the chosen mode, version, level and mask to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: qrenc [flags] <text>\n       <command> | qrenc [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Encode text as a QR code.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	content, err := readContent()
	if err != nil {
		fmt.Fprintf(os.Stderr, "qrenc: error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	opts := &qrenc.EncodeOptions{
		ErrorCorrection: *ecLevel,
		Mode:            *mode,
		Version:         *version,
		Border:          border,
		Scale:           *scale,
		SVGRects:        *rects,
		CharacterSet:    *charset,
	}
	if *mask >= 0 {
		opts.Mask = mask
	}
	if opts.Format, err = chooseFormat(*format, *output); err != nil {
		fmt.Fprintf(os.Stderr, "qrenc: error: %v\n", err)
		os.Exit(1)
	}

	result, err := qrcode.Encode(content, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "qrenc: error: %v\n", err)
		os.Exit(1)
	}
	if *verbose {
		code := result.Code
		fmt.Fprintf(os.Stderr, "mode=%s version=%d ecc=%s mask=%d\n",
			code.Mode, code.Version.Number, code.ECLevel, code.MaskPattern)
	}

	if err := writeOutput(result, *output); err != nil {
		fmt.Fprintf(os.Stderr, "qrenc: error: %v\n", err)
		os.Exit(1)
	}
}

// readContent takes the text from the arguments or, if there are none, from a
// pipe on stdin.
func readContent() (string, error) {
	if flag.NArg() > 0 {
		return strings.Join(flag.Args(), " "), nil
	}
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return "", fmt.Errorf("no input text or pipe")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

func chooseFormat(name, output string) (qrenc.OutputFormat, error) {
	if name != "" {
		return qrenc.ParseOutputFormat(name)
	}
	if output == "" && isatty.IsTerminal(os.Stdout.Fd()) {
		return qrenc.FormatTerm, nil
	}
	return qrenc.FormatASCII, nil
}

func writeOutput(result *qrcode.Output, path string) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	var err error
	switch {
	case result.Format == qrenc.FormatRaw:
		var sb strings.Builder
		for _, row := range result.Grid {
			for _, dark := range row {
				if dark {
					sb.WriteByte('1')
				} else {
					sb.WriteByte('0')
				}
			}
			sb.WriteByte('\n')
		}
		_, err = io.WriteString(w, sb.String())
	case result.Format.IsText():
		text := result.Text
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		_, err = io.WriteString(w, text)
	default:
		_, err = w.Write(result.Data)
	}
	return err
}
