// Package datauri converts uploaded files to the base64 data-URI strings the
// backend stores for medical images, and back again for editing. The URI's
// metadata substrings carry the MIME type and filename; when absent, decoding
// falls back to JPEG defaults.
package datauri

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultMIMEType = "image/jpeg"
	DefaultFilename = "uploadedFile.jpg"
)

// ErrNotDataURI is returned for strings without a base64 payload section.
var ErrNotDataURI = errors.New("not a base64 data URI")

// ErrNotImage rejects uploads whose MIME type is not image/*.
var ErrNotImage = errors.New("not an image file")

// File is a decoded upload: name, MIME type and raw bytes.
type File struct {
	Name     string
	MIMEType string
	Data     []byte
}

// ValidateImage enforces the image-only upload rule. It runs before any
// network call; a rejected file never leaves the console.
func ValidateImage(mimeType string) error {
	if !strings.HasPrefix(mimeType, "image/") {
		return fmt.Errorf("%w: %s", ErrNotImage, mimeType)
	}
	return nil
}

// Encode renders the file as data:<mime>;name=<name>;base64,<payload> so a
// later Decode can recover both the type and the original filename.
func Encode(f File) string {
	mime := f.MIMEType
	if mime == "" {
		mime = DefaultMIMEType
	}
	var b strings.Builder
	b.WriteString("data:")
	b.WriteString(mime)
	if f.Name != "" {
		b.WriteString(";name=")
		b.WriteString(f.Name)
	}
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(f.Data))
	return b.String()
}

// Decode parses a data URI back into a file. The MIME type is whatever sits
// between "data:" and the first ";"; the filename comes from a "name=" field.
// Either may be missing in URIs produced elsewhere, so both default.
func Decode(uri string) (File, error) {
	meta, payload, found := strings.Cut(uri, ",")
	if !found {
		return File{}, ErrNotDataURI
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return File{}, fmt.Errorf("decode payload: %w", err)
	}

	f := File{
		Name:     DefaultFilename,
		MIMEType: DefaultMIMEType,
		Data:     data,
	}

	meta = strings.TrimPrefix(meta, "data:")
	for i, part := range strings.Split(meta, ";") {
		switch {
		case i == 0 && part != "" && strings.Contains(part, "/"):
			f.MIMEType = part
		case strings.HasPrefix(part, "name="):
			if name := strings.TrimPrefix(part, "name="); name != "" {
				f.Name = name
			}
		}
	}

	return f, nil
}
