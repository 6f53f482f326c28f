package loaders

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"strconv"
)

// Limits on PPM headers, checked before any pixel memory is allocated
const (
	maxPPMDimension = 1 << 14
	maxPPMPixels    = 1 << 25
)

// LoadPPM reads a binary (P6) or ASCII (P3) Netpbm color image
func LoadPPM(filename string) (image.Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()
	return DecodePPM(file)
}

// DecodePPM decodes a P6 or P3 stream with a maximum value of at most 65535
func DecodePPM(r io.Reader) (image.Image, error) {
	br := bufio.NewReader(r)

	magic, err := ppmToken(br)
	if err != nil {
		return nil, fmt.Errorf("failed to read PPM header: %w", err)
	}
	if magic != "P6" && magic != "P3" {
		return nil, fmt.Errorf("unsupported PPM format %q", magic)
	}

	var header [3]int
	for i := range header {
		tok, err := ppmToken(br)
		if err != nil {
			return nil, fmt.Errorf("failed to read PPM header: %w", err)
		}
		if header[i], err = strconv.Atoi(tok); err != nil || header[i] <= 0 {
			return nil, fmt.Errorf("invalid PPM header value %q", tok)
		}
	}
	width, height, maxVal := header[0], header[1], header[2]
	if maxVal > 65535 {
		return nil, fmt.Errorf("invalid PPM max value %d", maxVal)
	}
	if width > maxPPMDimension || height > maxPPMDimension || width*height > maxPPMPixels {
		return nil, fmt.Errorf("invalid PPM dimensions %dx%d", width, height)
	}

	img := image.NewRGBA64(image.Rect(0, 0, width, height))
	scale := func(v int) uint16 {
		return uint16(v * 65535 / maxVal)
	}

	next := func() (int, error) {
		if magic == "P3" {
			tok, err := ppmToken(br)
			if err != nil {
				return 0, err
			}
			return strconv.Atoi(tok)
		}
		if maxVal < 256 {
			b, err := br.ReadByte()
			return int(b), err
		}
		var buf [2]byte
		_, err := io.ReadFull(br, buf[:])
		return int(buf[0])<<8 | int(buf[1]), err
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var rgb [3]int
			for c := range rgb {
				v, err := next()
				if err != nil {
					return nil, fmt.Errorf("truncated PPM data at (%d, %d): %w", x, y, err)
				}
				rgb[c] = min(max(v, 0), maxVal)
			}
			img.SetRGBA64(x, y, color.RGBA64{R: scale(rgb[0]), G: scale(rgb[1]), B: scale(rgb[2]), A: 0xffff})
		}
	}
	return img, nil
}

// ppmToken returns the next whitespace separated header token, skipping
// comments. For P6 it consumes exactly one whitespace byte after the token.
func ppmToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				return string(tok), nil
			}
			return "", err
		}
		switch {
		case b == '#' && len(tok) == 0:
			if _, err := br.ReadString('\n'); err != nil {
				return "", err
			}
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}
