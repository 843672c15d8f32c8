package main

import (
	"os"
	"time"
)

// CompressFile reads the input PGM, builds and (optionally) lossy-filters
// a quadtree, encodes it to QTC, and writes the output — plus the
// optional segmentation grid and archive sidecar config asks for.
func CompressFile(cfg Config, log Logger) error {
	log.Subheader("Compression Operation")
	log.Item("Input", "%s", cfg.InputFile)
	log.Item("Output", "%s", cfg.ResolvedOutput())

	src, err := ReadPGM(cfg.InputFile)
	if err != nil {
		return err
	}

	t, err := BuildTree(src.pixels, src.size)
	if err != nil {
		return err
	}

	if cfg.RunsLossy() {
		if err := ApplyLossy(t, cfg.Alpha); err != nil {
			return err
		}
	}

	encoded, err := Encode(t, time.Now(), log)
	if err != nil {
		return err
	}

	outPath := cfg.ResolvedOutput()
	if err := os.WriteFile(outPath, encoded, 0o644); err != nil {
		return wrapError(KindIO, "writing QTC output", err)
	}

	if cfg.Archive {
		archived := ArchiveCompress(encoded)
		if err := os.WriteFile(outPath+".zst", archived, 0o644); err != nil {
			return wrapError(KindIO, "writing archive sidecar", err)
		}
	}

	if cfg.GenerateGrid {
		if err := writeGrid(t, cfg.GridFile); err != nil {
			return err
		}
	}

	log.Success("Compression completed successfully")
	return nil
}

// DecompressFile reads a QTC file, rebuilds the tree, reconstructs
// pixels, and writes the output PGM — plus an optional grid.
func DecompressFile(cfg Config, log Logger) error {
	log.Subheader("Decompression Operation")
	log.Item("Input", "%s", cfg.InputFile)
	log.Item("Output", "%s", cfg.ResolvedOutput())

	data, err := os.ReadFile(cfg.InputFile)
	if err != nil {
		return wrapError(KindIO, "reading QTC input", err)
	}

	t, err := Decode(data, log)
	if err != nil {
		return err
	}

	pixels, err := Reconstruct(t)
	if err != nil {
		return err
	}

	out := &pgm{pixels: pixels, size: t.size, maxVal: 255}
	if err := WritePGM(out, cfg.ResolvedOutput()); err != nil {
		return err
	}

	if cfg.GenerateGrid {
		if err := writeGrid(t, cfg.GridFile); err != nil {
			return err
		}
	}

	log.Success("Decompression completed successfully")
	return nil
}

// writeGrid renders and writes the segmentation-grid PGM collaborator.
func writeGrid(t *tree, path string) error {
	pixels, err := GenerateGrid(t)
	if err != nil {
		return err
	}
	return WritePGM(&pgm{pixels: pixels, size: t.size, maxVal: 255}, path)
}
