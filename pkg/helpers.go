package pkg

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// EnsureDir creates path if it does not exist yet.
func EnsureDir(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat directory %s: %w", path, err)
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	log.Printf("New directory %s is now created", path)
	return nil
}

// BaseName recovers the document base name from an exported file name.
// Extraction stage files are named "<base>_Sort_by_Frequency.txt", so
// everything up to the first underscore is the base. A name without an
// underscore falls back to the name with its extension stripped.
func BaseName(fileName string) string {
	if idx := strings.Index(fileName, "_"); idx != -1 {
		return fileName[:idx]
	}
	return strings.TrimSuffix(fileName, filepath.Ext(fileName))
}

// FrequencyFileName builds the extraction stage output name for a document.
func FrequencyFileName(base string) string {
	return base + SortByFrequencyMarker + ".txt"
}

// WeightFileName builds the weighting stage output name for a document
// frequency file.
func WeightFileName(inputName, ext string) string {
	return BaseName(inputName) + SortByTermWeightMarker + ext
}
