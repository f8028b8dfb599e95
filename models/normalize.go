// models/normalize.go
package models

import (
	"strconv"
	"strings"

	"github.com/airpuff/tailnumber/utils"
)

// Normalization helpers shared by the three loaders. These are pure
// functions so the parse -> normalize step can be tested without any
// file or database I/O.

// CleanString truncates s to the destination column length, trims
// surrounding whitespace and returns nil when nothing is left. Absent
// beats empty-string here: a blank code column must not shadow a real
// reference row on the lookup joins.
func CleanString(s string, maxLen int) *string {
	if s == "" {
		return nil
	}
	r := []rune(s)
	if len(r) > maxLen {
		s = string(r[:maxLen])
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// CleanInt parses a trimmed integer field, treating blank or
// unparseable values as zero. Used for the reference-table counts
// (engines, seats, horsepower, thrust, cruising speed).
func CleanInt(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// CleanIntPtr parses a trimmed integer field, treating blank or
// unparseable values as absent. Used for year_mfr on the aircraft
// table, which stays NULL rather than becoming year zero. The zero
// vs NULL asymmetry with CleanInt is deliberate and load-bearing for
// existing consumers.
func CleanIntPtr(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// CleanDate reformats an 8-digit FAA date (YYYYMMDD) to ISO
// (YYYY-MM-DD). Anything that is not exactly eight digits is absent;
// a partial or garbled date is worse than no date.
func CleanDate(s string) *string {
	s = strings.TrimSpace(s)
	if len(s) != 8 {
		return nil
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return nil
		}
	}
	iso := s[0:4] + "-" + s[4:6] + "-" + s[6:8]
	return &iso
}

// NormalizeAircraft converts a raw MASTER.txt row to an Aircraft
// record. Returns ok=false when the tail number is blank after
// normalization; such rows (header and footer noise in the bulk
// extract) are skipped entirely.
func NormalizeAircraft(row MasterRow) (Aircraft, bool) {
	tail := utils.NormalizeTailNumber(row.NNumber)
	if tail == "" {
		return Aircraft{}, false
	}
	return Aircraft{
		NNumber:             tail,
		SerialNumber:        CleanString(row.SerialNumber, 30),
		MfrModelCode:        CleanString(row.MfrModelCode, 7),
		EngineMfrModelCode:  CleanString(row.EngineMfrModel, 5),
		YearMfr:             CleanIntPtr(row.YearMfr),
		TypeRegistrant:      CleanString(row.TypeRegistrant, 1),
		RegistrantName:      CleanString(row.Name, 50),
		Street1:             CleanString(row.Street, 33),
		Street2:             CleanString(row.Street2, 33),
		City:                CleanString(row.City, 18),
		State:               CleanString(row.State, 2),
		ZipCode:             CleanString(row.ZipCode, 10),
		RegistrantRegion:    CleanString(row.Region, 1),
		CountyMailCode:      CleanString(row.County, 3),
		CountryMailCode:     CleanString(row.Country, 2),
		LastActivityDate:    CleanDate(row.LastActionDate),
		CertIssueDate:       CleanDate(row.CertIssueDate),
		CertRequested:       CleanString(row.Certification, 10),
		TypeAircraft:        CleanString(row.TypeAircraft, 1),
		TypeEngine:          CleanString(row.TypeEngine, 2),
		StatusCode:          CleanString(row.StatusCode, 2),
		ModeSCode:           CleanString(row.ModeSCode, 8),
		FractionalOwnership: CleanString(row.FractOwner, 1),
		AirworthinessDate:   CleanDate(row.AirWorthDate),
		OtherName1:          CleanString(row.OtherNames1, 50),
		OtherName2:          CleanString(row.OtherNames2, 50),
		OtherName3:          CleanString(row.OtherNames3, 50),
		OtherName4:          CleanString(row.OtherNames4, 50),
		OtherName5:          CleanString(row.OtherNames5, 50),
		ExpirationDate:      CleanDate(row.ExpirationDate),
		UniqueID:            CleanString(row.UniqueID, 8),
		KitMfr:              CleanString(row.KitMfr, 30),
		KitModelCode:        CleanString(row.KitModel, 20),
		ModeSCodeHex:        CleanString(row.ModeSCodeHex, 10),
	}, true
}

// NormalizeModel converts a raw ACFTREF.txt row to an AircraftModel
// record. Returns ok=false when the model code is blank.
func NormalizeModel(row AcftRefRow) (AircraftModel, bool) {
	code := CleanString(row.Code, 7)
	if code == nil {
		return AircraftModel{}, false
	}
	return AircraftModel{
		ModelCode:                *code,
		ManufacturerName:         CleanString(row.Mfr, 30),
		ModelName:                CleanString(row.Model, 20),
		TypeAircraft:             CleanString(row.TypeAcft, 1),
		TypeEngine:               CleanString(row.TypeEng, 2),
		AircraftCategoryCode:     CleanString(row.AcCat, 1),
		BuilderCertificationCode: CleanString(row.BuildCertInd, 1),
		NumberOfEngines:          CleanInt(row.NoEng),
		NumberOfSeats:            CleanInt(row.NoSeats),
		AircraftWeightCategory:   CleanString(row.AcWeight, 7),
		AircraftCruisingSpeed:    CleanInt(row.Speed),
		TCDataSheet:              CleanString(row.TCDataSheet, 15),
		TCDataHolder:             CleanString(row.TCDataHolder, 50),
	}, true
}

// NormalizeEngine converts a raw ENGINE.txt row to an Engine record.
// Returns ok=false when the engine code is blank.
func NormalizeEngine(row EngineRow) (Engine, bool) {
	code := CleanString(row.Code, 5)
	if code == nil {
		return Engine{}, false
	}
	return Engine{
		EngineCode:       *code,
		ManufacturerName: CleanString(row.Mfr, 50),
		EngineModelName:  CleanString(row.Model, 13),
		TypeEngine:       CleanString(row.Type, 2),
		Horsepower:       CleanInt(row.Horsepower),
		PoundsOfThrust:   CleanInt(row.Thrust),
	}, true
}
