package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTestPGM(t *testing.T, path string, pixels []uint8, size uint32) {
	t.Helper()
	if err := WritePGM(&pgm{pixels: pixels, size: size, maxVal: 255}, path); err != nil {
		t.Fatalf("WritePGM: %v", err)
	}
}

func TestCompressFile_ThenDecompressFile_RecoversPixels(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.pgm")
	encoded := filepath.Join(dir, "out.qtc")
	output := filepath.Join(dir, "restored.pgm")

	pixels := []uint8{10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 110, 120, 130, 140, 150, 160}
	writeTestPGM(t, input, pixels, 4)

	cfg := Config{Compress: true, InputFile: input, OutputFile: encoded, Alpha: defaultAlpha}
	if err := CompressFile(cfg, Logger{}); err != nil {
		t.Fatalf("CompressFile: %v", err)
	}
	if _, err := os.Stat(encoded); err != nil {
		t.Fatalf("expected %s to exist: %v", encoded, err)
	}

	decfg := Config{Decompress: true, InputFile: encoded, OutputFile: output}
	if err := DecompressFile(decfg, Logger{}); err != nil {
		t.Fatalf("DecompressFile: %v", err)
	}

	got, err := ReadPGM(output)
	if err != nil {
		t.Fatalf("ReadPGM: %v", err)
	}
	for i := range pixels {
		if got.pixels[i] != pixels[i] {
			t.Fatalf("pixel %d = %d, want %d", i, got.pixels[i], pixels[i])
		}
	}
}

func TestCompressFile_WithArchiveFlagWritesSidecar(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.pgm")
	encoded := filepath.Join(dir, "out.qtc")
	writeTestPGM(t, input, []uint8{1, 2, 3, 4}, 2)

	cfg := Config{Compress: true, InputFile: input, OutputFile: encoded, Alpha: defaultAlpha, Archive: true}
	if err := CompressFile(cfg, Logger{}); err != nil {
		t.Fatalf("CompressFile: %v", err)
	}
	if _, err := os.Stat(encoded + ".zst"); err != nil {
		t.Fatalf("expected archive sidecar to exist: %v", err)
	}
}

func TestCompressFile_WithGridFlagWritesGrid(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.pgm")
	encoded := filepath.Join(dir, "out.qtc")
	grid := filepath.Join(dir, "grid.pgm")
	writeTestPGM(t, input, []uint8{1, 2, 3, 4}, 2)

	cfg := Config{
		Compress: true, InputFile: input, OutputFile: encoded, Alpha: defaultAlpha,
		GenerateGrid: true, GridFile: grid,
	}
	if err := CompressFile(cfg, Logger{}); err != nil {
		t.Fatalf("CompressFile: %v", err)
	}
	if _, err := os.Stat(grid); err != nil {
		t.Fatalf("expected grid file to exist: %v", err)
	}
}

func TestCompressFile_PropagatesReadErrors(t *testing.T) {
	cfg := Config{Compress: true, InputFile: "/nonexistent/path.pgm", Alpha: defaultAlpha}
	if err := CompressFile(cfg, Logger{}); err == nil {
		t.Fatalf("expected error for a missing input file")
	}
}
