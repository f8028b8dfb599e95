// models/engine.go
package models

// EngineRow is one raw record from ENGINE.txt, the engine reference
// file. CSV tags match the published headers.
type EngineRow struct {
	Code       string `csv:"CODE"`
	Mfr        string `csv:"MFR"`
	Model      string `csv:"MODEL"`
	Type       string `csv:"TYPE"`
	Horsepower string `csv:"HORSEPOWER"`
	Thrust     string `csv:"THRUST"`
}

// Engine is the normalized reference record keyed by the FAA engine
// code. Horsepower and thrust default to zero when blank.
type Engine struct {
	EngineCode       string  `db:"engine_code"`
	ManufacturerName *string `db:"manufacturer_name"`
	EngineModelName  *string `db:"engine_model_name"`
	TypeEngine       *string `db:"type_engine"`
	Horsepower       int     `db:"horsepower"`
	PoundsOfThrust   int     `db:"pounds_of_thrust"`
}
