// database/aircraft_store.go
package database

import (
	"database/sql"
	"fmt"

	"github.com/airpuff/tailnumber/models"
	"github.com/airpuff/tailnumber/utils"
)

// AircraftWriter streams upserts into the aircraft fact table.
type AircraftWriter struct {
	w *batchWriter
}

func NewAircraftWriter(db *sql.DB, batchSize int) (*AircraftWriter, error) {
	w, err := newBatchWriter(db, `
		INSERT OR REPLACE INTO aircraft (
			n_number, serial_number, mfr_model_code, engine_mfr_model_code, year_mfr,
			type_registrant, registrant_name, street1, street2, city, state, zip_code,
			registrant_region, county_mail_code, country_mail_code, last_activity_date,
			cert_issue_date, cert_requested, type_aircraft, type_engine, status_code,
			mode_s_code, fractional_ownership, airworthiness_date, other_name_1,
			other_name_2, other_name_3, other_name_4, other_name_5, expiration_date,
			unique_id, kit_mfr, kit_model_code, mode_s_code_hex
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, batchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create aircraft writer: %w", err)
	}
	return &AircraftWriter{w: w}, nil
}

func (aw *AircraftWriter) Upsert(a models.Aircraft) error {
	return aw.w.exec(
		a.NNumber, a.SerialNumber, a.MfrModelCode, a.EngineMfrModelCode, a.YearMfr,
		a.TypeRegistrant, a.RegistrantName, a.Street1, a.Street2, a.City, a.State, a.ZipCode,
		a.RegistrantRegion, a.CountyMailCode, a.CountryMailCode, a.LastActivityDate,
		a.CertIssueDate, a.CertRequested, a.TypeAircraft, a.TypeEngine, a.StatusCode,
		a.ModeSCode, a.FractionalOwnership, a.AirworthinessDate, a.OtherName1,
		a.OtherName2, a.OtherName3, a.OtherName4, a.OtherName5, a.ExpirationDate,
		a.UniqueID, a.KitMfr, a.KitModelCode, a.ModeSCodeHex,
	)
}

func (aw *AircraftWriter) Close(commit bool) error { return aw.w.Close(commit) }

// GetAircraftByTailNumber looks up one registration by tail number,
// left-joined to the model and engine reference tables. The input is
// normalized the same way the importer normalizes keys, so "N538CD",
// "538cd" and "  n538CD " all hit the same row. Returns (nil, nil)
// when no row matches.
func GetAircraftByTailNumber(db *sql.DB, tailNumber string) (*models.AircraftDetail, error) {
	tail := utils.NormalizeTailNumber(tailNumber)
	if tail == "" {
		return nil, nil
	}

	row := db.QueryRow(`
		SELECT
			a.n_number, a.serial_number, a.mfr_model_code, a.engine_mfr_model_code,
			a.year_mfr, a.type_registrant, a.registrant_name, a.street1, a.street2,
			a.city, a.state, a.zip_code, a.registrant_region, a.county_mail_code,
			a.country_mail_code, a.last_activity_date, a.cert_issue_date,
			a.cert_requested, a.type_aircraft, a.type_engine, a.status_code,
			a.mode_s_code, a.mode_s_code_hex, a.fractional_ownership,
			a.airworthiness_date, a.other_name_1, a.other_name_2, a.other_name_3,
			a.other_name_4, a.other_name_5, a.expiration_date, a.unique_id,
			a.kit_mfr, a.kit_model_code,
			am.manufacturer_name, am.model_name, am.number_of_engines, am.number_of_seats,
			e.manufacturer_name, e.engine_model_name, e.horsepower, e.pounds_of_thrust
		FROM aircraft a
		LEFT JOIN aircraft_model am ON a.mfr_model_code = am.model_code
		LEFT JOIN engine e ON a.engine_mfr_model_code = e.engine_code
		WHERE a.n_number = ?
	`, tail)

	var d models.AircraftDetail
	err := row.Scan(
		&d.NNumber, &d.SerialNumber, &d.MfrModelCode, &d.EngineMfrModelCode,
		&d.YearMfr, &d.TypeRegistrant, &d.RegistrantName, &d.Street1, &d.Street2,
		&d.City, &d.State, &d.ZipCode, &d.RegistrantRegion, &d.CountyMailCode,
		&d.CountryMailCode, &d.LastActivityDate, &d.CertIssueDate,
		&d.CertRequested, &d.TypeAircraft, &d.TypeEngine, &d.StatusCode,
		&d.ModeSCode, &d.ModeSCodeHex, &d.FractionalOwnership,
		&d.AirworthinessDate, &d.OtherName1, &d.OtherName2, &d.OtherName3,
		&d.OtherName4, &d.OtherName5, &d.ExpirationDate, &d.UniqueID,
		&d.KitMfr, &d.KitModelCode,
		&d.AircraftManufacturerName, &d.AircraftModelName, &d.NumberOfEngines, &d.NumberOfSeats,
		&d.EngineManufacturerName, &d.EngineModelName, &d.Horsepower, &d.PoundsOfThrust,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query aircraft %s: %w", tail, err)
	}
	return &d, nil
}

// CountAircraft returns the number of aircraft rows; used by the
// health endpoint to tell an empty store from a populated one.
func CountAircraft(db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM aircraft`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count aircraft rows: %w", err)
	}
	return count, nil
}
