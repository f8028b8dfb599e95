// handlers/aircraft_handler.go
package handlers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/airpuff/tailnumber/database"
	"github.com/airpuff/tailnumber/models"
)

// Helper to respond with JSON
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Error marshalling JSON response: %v", err)
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// Helper to respond with an error
func respondWithError(w http.ResponseWriter, code int, message string) {
	log.Printf("API Error %d: %s", code, message)
	respondWithJSON(w, code, map[string]string{"error": message})
}

// AircraftHandler serves tail-number lookups against the store. It is
// a read-only consumer; the sync pipeline is the only writer.
type AircraftHandler struct {
	db *sql.DB
}

func NewAircraftHandler(db *sql.DB) *AircraftHandler {
	return &AircraftHandler{db: db}
}

// RegisterRoutes mounts the lookup endpoints on the given router.
func (h *AircraftHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/health", h.Health)
	r.Get("/api/v1/aircraft/{tailNumber}", h.GetAircraft)
	r.Get("/api/v1/aircraft/{tailNumber}/text", h.GetAircraftText)
}

// GetAircraft returns the joined registration document for a tail
// number. The path parameter tolerates a leading N and mixed case.
func (h *AircraftHandler) GetAircraft(w http.ResponseWriter, r *http.Request) {
	tail := chi.URLParam(r, "tailNumber")

	detail, err := database.GetAircraftByTailNumber(h.db, tail)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to look up aircraft: %v", err))
		return
	}
	if detail == nil {
		respondWithError(w, http.StatusNotFound, fmt.Sprintf("No aircraft found for tail number '%s'", tail))
		return
	}
	respondWithJSON(w, http.StatusOK, detail)
}

// GetAircraftText returns the same lookup as a plain-text card, for
// terminal use (curl).
func (h *AircraftHandler) GetAircraftText(w http.ResponseWriter, r *http.Request) {
	tail := chi.URLParam(r, "tailNumber")

	detail, err := database.GetAircraftByTailNumber(h.db, tail)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to look up aircraft: %v", err))
		return
	}
	if detail == nil {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprintf(w, "No aircraft found for tail number %q\n", tail)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(formatAircraftText(detail)))
}

// Health reports whether the store is reachable and populated.
func (h *AircraftHandler) Health(w http.ResponseWriter, r *http.Request) {
	count, err := database.CountAircraft(h.db)
	if err != nil {
		respondWithJSON(w, http.StatusServiceUnavailable, models.HealthStatus{
			Status:  "error",
			Message: "database connection error",
		})
		return
	}
	respondWithJSON(w, http.StatusOK, models.HealthStatus{
		Status:        "ok",
		AircraftCount: count,
	})
}

// formatAircraftText renders the lookup result as a fixed-width card.
// Absent fields are omitted rather than printed blank.
func formatAircraftText(d *models.AircraftDetail) string {
	var b strings.Builder
	rule := strings.Repeat("=", 60)
	thin := strings.Repeat("-", 60)

	line := func(label string, v *string) {
		if v != nil {
			fmt.Fprintf(&b, "%-22s %s\n", label+":", *v)
		}
	}
	intLine := func(label string, v *int) {
		if v != nil {
			fmt.Fprintf(&b, "%-22s %d\n", label+":", *v)
		}
	}

	fmt.Fprintf(&b, "%s\nAIRCRAFT INFORMATION - N%s\n%s\n\n", rule, d.NNumber, rule)
	fmt.Fprintf(&b, "%-22s N%s\n", "N-Number:", d.NNumber)
	line("Serial Number", d.SerialNumber)
	line("Manufacturer", d.AircraftManufacturerName)
	line("Model", d.AircraftModelName)
	intLine("Year Manufactured", d.YearMfr)

	fmt.Fprintf(&b, "\n%s\nENGINE INFORMATION\n%s\n", thin, thin)
	line("Engine Manufacturer", d.EngineManufacturerName)
	line("Engine Model", d.EngineModelName)
	intLine("Horsepower", d.Horsepower)
	intLine("Thrust (lbs)", d.PoundsOfThrust)

	fmt.Fprintf(&b, "\n%s\nREGISTRATION INFORMATION\n%s\n", thin, thin)
	line("Registrant Name", d.RegistrantName)
	line("Street", d.Street1)
	line("Street 2", d.Street2)
	line("City", d.City)
	line("State", d.State)
	line("Zip Code", d.ZipCode)
	line("Country Code", d.CountryMailCode)

	fmt.Fprintf(&b, "\n%s\nCERTIFICATION & STATUS\n%s\n", thin, thin)
	line("Cert Issue Date", d.CertIssueDate)
	line("Expiration Date", d.ExpirationDate)
	line("Status Code", d.StatusCode)
	line("Airworthiness Date", d.AirworthinessDate)

	fmt.Fprintf(&b, "\n%s\n", rule)
	return b.String()
}
