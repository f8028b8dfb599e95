// database/schema.go
package database

import (
	"database/sql"
	"fmt"
)

// Schema statements are idempotent (IF NOT EXISTS) and never drop or
// alter existing tables. InitSchema is run once at orchestrator start
// and once at API-server start, not lazily inside query paths.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS aircraft (
		n_number TEXT(5) PRIMARY KEY,
		serial_number TEXT(30),
		mfr_model_code TEXT(7),
		engine_mfr_model_code TEXT(5),
		year_mfr INTEGER,
		type_registrant TEXT(1),
		registrant_name TEXT(50),
		street1 TEXT(33),
		street2 TEXT(33),
		city TEXT(18),
		state TEXT(2),
		zip_code TEXT(10),
		registrant_region TEXT(1),
		county_mail_code TEXT(3),
		country_mail_code TEXT(2),
		last_activity_date DATE,
		cert_issue_date DATE,
		cert_requested TEXT(10),
		type_aircraft TEXT(1),
		type_engine TEXT(2),
		status_code TEXT(2),
		mode_s_code TEXT(8),
		fractional_ownership TEXT(1),
		airworthiness_date DATE,
		other_name_1 TEXT(50),
		other_name_2 TEXT(50),
		other_name_3 TEXT(50),
		other_name_4 TEXT(50),
		other_name_5 TEXT(50),
		expiration_date DATE,
		unique_id TEXT(8),
		kit_mfr TEXT(30),
		kit_model_code TEXT(20),
		mode_s_code_hex TEXT(10)
	)`,

	`CREATE TABLE IF NOT EXISTS aircraft_model (
		model_code TEXT(7) PRIMARY KEY,
		manufacturer_name TEXT(30),
		model_name TEXT(20),
		type_aircraft TEXT(1),
		type_engine TEXT(2),
		aircraft_category_code TEXT(1),
		builder_certification_code TEXT(1),
		number_of_engines INTEGER,
		number_of_seats INTEGER,
		aircraft_weight_category TEXT(7),
		aircraft_cruising_speed INTEGER,
		tc_data_sheet TEXT(15),
		tc_data_holder TEXT(50)
	)`,

	`CREATE TABLE IF NOT EXISTS engine (
		engine_code TEXT(5) PRIMARY KEY,
		manufacturer_name TEXT(50),
		engine_model_name TEXT(13),
		type_engine TEXT(2),
		horsepower INTEGER,
		pounds_of_thrust INTEGER
	)`,

	`CREATE TABLE IF NOT EXISTS file_metadata (
		file_name TEXT(50) PRIMARY KEY,
		file_create_date DATETIME,
		file_md5sum TEXT(32)
	)`,

	// Indexes keeping the lookup joins and date-range queries fast.
	`CREATE INDEX IF NOT EXISTS idx_last_activity_date ON aircraft (last_activity_date)`,
	`CREATE INDEX IF NOT EXISTS idx_cert_requested ON aircraft (cert_requested)`,
	`CREATE INDEX IF NOT EXISTS idx_mfr_model_code ON aircraft (mfr_model_code)`,
	`CREATE INDEX IF NOT EXISTS idx_engine_mfr_model_code ON aircraft (engine_mfr_model_code)`,
}

// InitSchema creates the four tables and the aircraft indexes if they
// do not exist yet.
func InitSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
