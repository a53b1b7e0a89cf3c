package qrcode

import (
	"encoding/base64"
	"errors"
	"os"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrEmptyContent is returned when content is empty or only whitespace.
	ErrEmptyContent = errors.New("qrcode: content cannot be empty")
	// ErrFailedToGenerate wraps encoder failures, e.g. content too long for the recovery level.
	ErrFailedToGenerate = errors.New("qrcode: failed to generate QR code")
	// ErrFailedToWrite wraps file system failures in WriteFile.
	ErrFailedToWrite = errors.New("qrcode: failed to write image")
)

// DefaultSize is the image width and height in pixels.
const DefaultSize = 256

// Recovery is the error correction level. Lower levels hold longer payloads.
type Recovery = skipqrcode.RecoveryLevel

const (
	RecoveryLow     = skipqrcode.Low
	RecoveryMedium  = skipqrcode.Medium
	RecoveryHigh    = skipqrcode.High
	RecoveryHighest = skipqrcode.Highest
)

type options struct {
	size     int
	recovery Recovery
}

// Option configures image generation.
type Option func(*options)

// WithSize sets the image size in pixels. Non-positive sizes fall back to DefaultSize.
func WithSize(px int) Option {
	return func(o *options) {
		if px > 0 {
			o.size = px
		}
	}
}

// WithRecovery sets the error correction level.
func WithRecovery(level Recovery) Option {
	return func(o *options) { o.recovery = level }
}

// Encode returns content as a PNG QR code.
// mailto: URIs with a full message body are long, so the default recovery level is Low.
func Encode(content string, opts ...Option) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	o := options{size: DefaultSize, recovery: RecoveryLow}
	for _, opt := range opts {
		opt(&o)
	}

	png, err := skipqrcode.Encode(content, o.recovery, o.size)
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerate, err)
	}
	return png, nil
}

// DataURI returns content as a base64 PNG data URI for use in an <img> src.
func DataURI(content string, opts ...Option) (string, error) {
	png, err := Encode(content, opts...)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// WriteFile encodes content and writes the PNG to path.
func WriteFile(path, content string, opts ...Option) error {
	png, err := Encode(content, opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return errors.Join(ErrFailedToWrite, err)
	}
	return nil
}
