// database/reference_store.go
package database

import (
	"database/sql"
	"fmt"

	"github.com/airpuff/tailnumber/models"
)

// Reference-table writers: aircraft_model and engine rows are replaced
// wholesale on re-import. INSERT OR REPLACE overwrites every column of
// an existing row, so a re-run against an unchanged file is a content
// no-op and a changed file fully refreshes each affected row.

// ModelWriter streams upserts into the aircraft_model table.
type ModelWriter struct {
	w *batchWriter
}

func NewModelWriter(db *sql.DB, batchSize int) (*ModelWriter, error) {
	w, err := newBatchWriter(db, `
		INSERT OR REPLACE INTO aircraft_model (
			model_code, manufacturer_name, model_name, type_aircraft, type_engine,
			aircraft_category_code, builder_certification_code, number_of_engines,
			number_of_seats, aircraft_weight_category, aircraft_cruising_speed,
			tc_data_sheet, tc_data_holder
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, batchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create aircraft_model writer: %w", err)
	}
	return &ModelWriter{w: w}, nil
}

func (mw *ModelWriter) Upsert(m models.AircraftModel) error {
	return mw.w.exec(
		m.ModelCode, m.ManufacturerName, m.ModelName, m.TypeAircraft, m.TypeEngine,
		m.AircraftCategoryCode, m.BuilderCertificationCode, m.NumberOfEngines,
		m.NumberOfSeats, m.AircraftWeightCategory, m.AircraftCruisingSpeed,
		m.TCDataSheet, m.TCDataHolder,
	)
}

func (mw *ModelWriter) Close(commit bool) error { return mw.w.Close(commit) }

// EngineWriter streams upserts into the engine table.
type EngineWriter struct {
	w *batchWriter
}

func NewEngineWriter(db *sql.DB, batchSize int) (*EngineWriter, error) {
	w, err := newBatchWriter(db, `
		INSERT OR REPLACE INTO engine (
			engine_code, manufacturer_name, engine_model_name, type_engine,
			horsepower, pounds_of_thrust
		) VALUES (?, ?, ?, ?, ?, ?)
	`, batchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine writer: %w", err)
	}
	return &EngineWriter{w: w}, nil
}

func (ew *EngineWriter) Upsert(e models.Engine) error {
	return ew.w.exec(
		e.EngineCode, e.ManufacturerName, e.EngineModelName, e.TypeEngine,
		e.Horsepower, e.PoundsOfThrust,
	)
}

func (ew *EngineWriter) Close(commit bool) error { return ew.w.Close(commit) }
