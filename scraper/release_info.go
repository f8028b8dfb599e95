// scraper/release_info.go
package scraper

import (
	"fmt"
	"log"
	"net/http"
	"regexp"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Regex to find the posted refresh date on the registry download page,
// e.g. "Last updated: 08/25/2026" or "Updated 08/25/2026".
var lastUpdatedRegex = regexp.MustCompile(`(?i)(?:last\s+)?updated:?\s+(\d{2}/\d{2}/\d{4})`)

const releaseDateLayout = "01/02/2006" // MM/DD/YYYY

// ReleaseInfo holds the posted refresh date scraped from the FAA
// registry download page. Advisory only: the checksum comparison in
// ArchiveFetcher is what actually gates an import.
type ReleaseInfo struct {
	UpdatedOn     time.Time
	RawDateString string
	CheckedAt     time.Time
}

// FetchReleaseInfo scrapes the registry download page for the posted
// "last updated" date. Callers treat a failure here as non-fatal; the
// page layout changes more often than the archive format.
func FetchReleaseInfo(pageURL string) (*ReleaseInfo, error) {
	log.Printf("Scraper: Checking posted release date from %s\n", pageURL)

	client := http.Client{Timeout: 20 * time.Second}
	req, err := http.NewRequest(http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", pageURL, err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get URL %s: %w", pageURL, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get URL %s: status code %d", pageURL, res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML from %s: %w", pageURL, err)
	}

	matches := lastUpdatedRegex.FindStringSubmatch(doc.Find("body").Text())
	if len(matches) < 2 {
		return nil, fmt.Errorf("could not find a 'last updated' date on %s", pageURL)
	}

	updatedOn, err := time.Parse(releaseDateLayout, matches[1])
	if err != nil {
		return nil, fmt.Errorf("failed to parse release date '%s': %w", matches[1], err)
	}

	log.Printf("Scraper: Registry page reports data updated on %s\n", updatedOn.Format("2006-01-02"))
	return &ReleaseInfo{
		UpdatedOn:     updatedOn,
		RawDateString: matches[0],
		CheckedAt:     time.Now().UTC(),
	}, nil
}
