// scraper/archive_downloader.go
package scraper

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/airpuff/tailnumber/config"
)

// The registry endpoint rejects default Go client user-agents, so the
// download identifies itself as a desktop browser.
const browserUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) " +
	"Chrome/91.0.4472.114 Safari/537.36"

// DownloadFile downloads a URL to a local path with a bounded retry
// budget and a per-attempt timeout. Each failed attempt is logged and
// retried immediately; exhausting the budget returns an error and the
// destination file is removed.
func DownloadFile(url, localSavePath string, maxRetries int, timeout time.Duration) error {
	client := http.Client{Timeout: timeout}

	if err := os.MkdirAll(filepath.Dir(localSavePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", localSavePath, err)
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.Printf("Scraper: Downloading %s (attempt %d/%d)...\n", url, attempt, maxRetries)
		if err := downloadOnce(&client, url, localSavePath); err != nil {
			lastErr = err
			log.Printf("Scraper: Download error: %v. Retrying...\n", err)
			continue
		}
		log.Println("Scraper: Download complete.")
		return nil
	}

	os.Remove(localSavePath)
	return fmt.Errorf("failed to download %s after %d attempts: %w", url, maxRetries, lastErr)
}

func downloadOnce(client *http.Client, url, localSavePath string) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download %s: received status code %d", url, resp.StatusCode)
	}

	outFile, err := os.Create(localSavePath)
	if err != nil {
		return fmt.Errorf("failed to create local file %s: %w", localSavePath, err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, resp.Body); err != nil {
		return fmt.Errorf("failed to write downloaded content to %s: %w", localSavePath, err)
	}
	return nil
}

// FileMD5 computes the MD5 checksum of a file, streaming rather than
// reading the whole archive into memory.
func FileMD5(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s for checksum: %w", path, err)
	}
	defer file.Close()

	h := md5.New()
	if _, err := io.Copy(h, file); err != nil {
		return "", fmt.Errorf("failed to checksum %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// ArchiveFetcher downloads the FAA archive, decides by checksum
// whether its content changed, atomically replaces the local copy and
// keeps the extracted directory current. All side effects are
// file-system only.
type ArchiveFetcher struct {
	URL         string
	ArchivePath string
	TempPath    string
	ExtractDir  string
	MaxRetries  int
	Timeout     time.Duration
}

func NewArchiveFetcher(cfg *config.Config) *ArchiveFetcher {
	return &ArchiveFetcher{
		URL:         cfg.FAA.ArchiveURL,
		ArchivePath: cfg.ArchivePath(),
		TempPath:    cfg.TempArchivePath(),
		ExtractDir:  cfg.ExtractDir(),
		MaxRetries:  cfg.FAA.DownloadRetries,
		Timeout:     cfg.FAA.DownloadTimeout,
	}
}

// Sync downloads the archive to a temp path and compares checksums
// against the existing local copy. Changed content atomically replaces
// the old archive and is re-extracted; identical content is discarded.
// A failed download leaves the existing archive and extracted files
// untouched. Returns whether the local data changed.
func (f *ArchiveFetcher) Sync() (bool, error) {
	if err := DownloadFile(f.URL, f.TempPath, f.MaxRetries, f.Timeout); err != nil {
		return false, err
	}

	changed := true
	if _, err := os.Stat(f.ArchivePath); err == nil {
		originalMD5, err := FileMD5(f.ArchivePath)
		if err != nil {
			return false, err
		}
		newMD5, err := FileMD5(f.TempPath)
		if err != nil {
			return false, err
		}
		if originalMD5 == newMD5 {
			log.Println("Scraper: Archive is up-to-date. Skipping update.")
			changed = false
		} else {
			log.Println("Scraper: Archive has changed. Updating with new download.")
		}
	} else {
		log.Println("Scraper: No existing archive found. Creating new file.")
	}

	if !changed {
		if err := os.Remove(f.TempPath); err != nil {
			return false, fmt.Errorf("failed to remove temp archive %s: %w", f.TempPath, err)
		}
		// First run after a manual cleanup: the archive is current but
		// the extracted files are gone, so extract the existing copy.
		if _, err := os.Stat(f.ExtractDir); os.IsNotExist(err) {
			log.Println("Scraper: Extracted directory missing. Extracting existing archive...")
			if err := ExtractZip(f.ArchivePath, f.ExtractDir); err != nil {
				return false, err
			}
		}
		return false, nil
	}

	if err := os.Rename(f.TempPath, f.ArchivePath); err != nil {
		return false, fmt.Errorf("failed to move archive into place: %w", err)
	}
	if err := ExtractZip(f.ArchivePath, f.ExtractDir); err != nil {
		return false, err
	}
	return true, nil
}
