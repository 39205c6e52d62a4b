package imaging

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/edge-detect-mcp/internal/edge"
)

func sampleMask() edge.EdgeMask {
	m := edge.NewEdgeMask(3, 4)
	m[0][1] = true
	m[2][3] = true
	return m
}

func TestMaskImage(t *testing.T) {
	img := MaskImage(sampleMask())

	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Fatalf("dimensions: got %dx%d, want 4x3", img.Bounds().Dx(), img.Bounds().Dy())
	}
	if img.GrayAt(1, 0).Y != 255 || img.GrayAt(3, 2).Y != 255 {
		t.Error("edge pixels should be white")
	}
	if img.GrayAt(0, 0).Y != 0 || img.GrayAt(3, 1).Y != 0 {
		t.Error("non-edge pixels should be black")
	}
}

func TestEncodeMask(t *testing.T) {
	stats := edge.Stats{Rows: 3, Cols: 4, EdgePixels: 2}
	result, err := EncodeMask(sampleMask(), stats)
	if err != nil {
		t.Fatalf("EncodeMask failed: %v", err)
	}

	if result.Width != 4 || result.Height != 3 {
		t.Errorf("dimensions: got %dx%d, want 4x3", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}
	if result.EdgePixels != 2 || result.Stats != stats {
		t.Errorf("counts: got %d, %+v", result.EdgePixels, result.Stats)
	}

	decoded, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(decoded))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	if r, _, _, _ := img.At(1, 0).RGBA(); r>>8 != 255 {
		t.Errorf("decoded edge pixel: got %d, want 255", r>>8)
	}
}

func TestSaveMask(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edges.png")
	if err := SaveMask(sampleMask(), path); err != nil {
		t.Fatalf("SaveMask failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Errorf("dimensions: got %dx%d, want 4x3", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestSaveMask_BadPath(t *testing.T) {
	if err := SaveMask(sampleMask(), filepath.Join(t.TempDir(), "missing", "edges.png")); err == nil {
		t.Error("SaveMask should fail when the directory does not exist")
	}
}
