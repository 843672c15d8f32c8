package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPGM_WriteThenReadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.pgm")

	want := &pgm{
		pixels: []uint8{10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 110, 120, 130, 140, 150, 160},
		size:   4,
		maxVal: 255,
	}
	if err := WritePGM(want, path); err != nil {
		t.Fatalf("WritePGM: %v", err)
	}

	got, err := ReadPGM(path)
	if err != nil {
		t.Fatalf("ReadPGM: %v", err)
	}
	if got.size != want.size || got.maxVal != want.maxVal {
		t.Fatalf("got size=%d maxVal=%d, want size=%d maxVal=%d", got.size, got.maxVal, want.size, want.maxVal)
	}
	for i := range want.pixels {
		if got.pixels[i] != want.pixels[i] {
			t.Fatalf("pixel %d = %d, want %d", i, got.pixels[i], want.pixels[i])
		}
	}
}

func TestReadPGM_RejectsNonSquare(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.pgm")
	raw := []byte("P5\n4 2\n255\n")
	raw = append(raw, make([]byte, 8)...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := ReadPGM(path); err == nil {
		t.Fatalf("expected error for a non-square raster")
	}
}

func TestReadPGM_RejectsNonPowerOfTwoSide(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.pgm")
	raw := []byte("P5\n3 3\n255\n")
	raw = append(raw, make([]byte, 9)...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := ReadPGM(path); err == nil {
		t.Fatalf("expected error for a non-power-of-two side")
	}
}

func TestReadPGM_RejectsWrongMagic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.pgm")
	raw := []byte("P6\n2 2\n255\n")
	raw = append(raw, make([]byte, 4)...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := ReadPGM(path); err == nil {
		t.Fatalf("expected error for wrong magic")
	}
}

func TestReadPGM_ToleratesHeaderComment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "commented.pgm")
	raw := []byte("P5\n# a header comment\n2 2\n255\n")
	raw = append(raw, []byte{1, 2, 3, 4}...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := ReadPGM(path)
	if err != nil {
		t.Fatalf("ReadPGM: %v", err)
	}
	if got.size != 2 || got.pixels[3] != 4 {
		t.Fatalf("got = %+v", got)
	}
}
