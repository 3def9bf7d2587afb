// Package exporter writes rename mappings to CSV/TSV files.
package exporter

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// OpenOutputFile opens an output file, compressing it when the name ends in .gz.
// If filePath is empty, returns stdout, which is never closed.
func OpenOutputFile(filePath string) (io.WriteCloser, error) {
	if filePath == "" {
		return nopCloser{os.Stdout}, nil
	}

	file, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create mapping file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(filePath), ".gz") {
		return &gzipWriter{file: file, writer: gzip.NewWriter(file)}, nil
	}
	return file, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// gzipWriter wraps gzip writer and file to close both properly.
type gzipWriter struct {
	file   *os.File
	writer *gzip.Writer
}

func (g *gzipWriter) Write(p []byte) (int, error) {
	return g.writer.Write(p)
}

func (g *gzipWriter) Close() error {
	if err := g.writer.Close(); err != nil {
		g.file.Close()
		return err
	}
	return g.file.Close()
}

// DetectOutputDelimiter returns '\t' for .tsv files (optionally .gz) and ',' otherwise.
func DetectOutputDelimiter(filePath string) rune {
	path := filePath
	if strings.EqualFold(filepath.Ext(path), ".gz") {
		path = strings.TrimSuffix(path, filepath.Ext(path))
	}

	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		return '\t'
	}
	return ','
}
