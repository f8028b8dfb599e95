// scraper/zip.go
package scraper

import (
	"archive/zip"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// ExtractZip extracts every member of the archive into destDir,
// overwriting whatever a previous extraction left behind. Member paths
// are validated against escaping the destination directory.
func ExtractZip(zipPath, destDir string) error {
	log.Printf("Scraper: Extracting %s to %s...\n", zipPath, destDir)

	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return fmt.Errorf("failed to open archive %s: %w", zipPath, err)
	}
	defer r.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("failed to create extract directory %s: %w", destDir, err)
	}

	for _, member := range r.File {
		if err := extractMember(member, destDir); err != nil {
			return err
		}
	}

	log.Println("Scraper: Extraction complete.")
	return nil
}

func extractMember(member *zip.File, destDir string) error {
	destPath := filepath.Join(destDir, member.Name)

	// Reject members whose cleaned path escapes destDir.
	if !strings.HasPrefix(destPath, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return fmt.Errorf("archive member %s escapes extract directory", member.Name)
	}

	if member.FileInfo().IsDir() {
		if err := os.MkdirAll(destPath, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", destPath, err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", destPath, err)
	}

	src, err := member.Open()
	if err != nil {
		return fmt.Errorf("failed to open archive member %s: %w", member.Name, err)
	}
	defer src.Close()

	dst, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", destPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to extract %s: %w", member.Name, err)
	}
	return nil
}
