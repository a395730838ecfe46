package datauri

import (
	"bytes"
	"errors"
	"testing"
)

// Minimal valid PNG and JPEG headers are enough: the codec never inspects
// pixel data.
var (
	pngSample  = append([]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}, []byte("png-payload")...)
	jpegSample = append([]byte{0xff, 0xd8, 0xff, 0xe0}, []byte("jpeg-payload")...)
)

func TestRoundTrip(t *testing.T) {
	cases := []File{
		{Name: "scan.png", MIMEType: "image/png", Data: pngSample},
		{Name: "xray.jpg", MIMEType: "image/jpeg", Data: jpegSample},
	}
	for _, in := range cases {
		t.Run(in.MIMEType, func(t *testing.T) {
			out, err := Decode(Encode(in))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if out.MIMEType != in.MIMEType {
				t.Errorf("MIME type %q, want %q", out.MIMEType, in.MIMEType)
			}
			if out.Name != in.Name {
				t.Errorf("name %q, want %q", out.Name, in.Name)
			}
			if !bytes.Equal(out.Data, in.Data) {
				t.Error("content bytes differ after round trip")
			}
		})
	}
}

func TestDecode_DefaultsWhenMetadataMissing(t *testing.T) {
	// A URI produced by another client may omit the name field entirely.
	out, err := Decode("data:image/png;base64,aGVsbG8=")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Name != DefaultFilename {
		t.Errorf("expected default filename, got %q", out.Name)
	}
	if out.MIMEType != "image/png" {
		t.Errorf("expected image/png, got %q", out.MIMEType)
	}

	// No recognizable MIME type at all.
	out, err = Decode("data:;base64,aGVsbG8=")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.MIMEType != DefaultMIMEType || out.Name != DefaultFilename {
		t.Errorf("expected jpeg defaults, got %q %q", out.MIMEType, out.Name)
	}
	if string(out.Data) != "hello" {
		t.Errorf("expected payload hello, got %q", out.Data)
	}
}

func TestDecode_Rejects(t *testing.T) {
	if _, err := Decode("no payload separator"); !errors.Is(err, ErrNotDataURI) {
		t.Errorf("expected ErrNotDataURI, got %v", err)
	}
	if _, err := Decode("data:image/png;base64,!!!"); err == nil {
		t.Error("expected base64 error")
	}
}

func TestEncode_DefaultsEmptyMIME(t *testing.T) {
	uri := Encode(File{Data: []byte("x")})
	out, err := Decode(uri)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.MIMEType != DefaultMIMEType {
		t.Errorf("expected default MIME, got %q", out.MIMEType)
	}
}

func TestValidateImage(t *testing.T) {
	if err := ValidateImage("image/png"); err != nil {
		t.Errorf("png should validate: %v", err)
	}
	if err := ValidateImage("application/pdf"); !errors.Is(err, ErrNotImage) {
		t.Errorf("expected ErrNotImage, got %v", err)
	}
	if err := ValidateImage(""); !errors.Is(err, ErrNotImage) {
		t.Errorf("expected ErrNotImage for empty type, got %v", err)
	}
}
