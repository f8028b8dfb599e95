// models/aircraft_model.go
package models

// AcftRefRow is one raw record from ACFTREF.txt, the aircraft
// make/model reference file. CSV tags match the published headers.
type AcftRefRow struct {
	Code         string `csv:"CODE"`
	Mfr          string `csv:"MFR"`
	Model        string `csv:"MODEL"`
	TypeAcft     string `csv:"TYPE-ACFT"`
	TypeEng      string `csv:"TYPE-ENG"`
	AcCat        string `csv:"AC-CAT"`
	BuildCertInd string `csv:"BUILD-CERT-IND"`
	NoEng        string `csv:"NO-ENG"`
	NoSeats      string `csv:"NO-SEATS"`
	AcWeight     string `csv:"AC-WEIGHT"`
	Speed        string `csv:"SPEED"`
	TCDataSheet  string `csv:"TC-DATA-SHEET"`
	TCDataHolder string `csv:"TC-DATA-HOLDER"`
}

// AircraftModel is the normalized reference record keyed by the FAA
// manufacturer-model code. Count and speed fields default to zero when
// the source field is blank or unparseable.
type AircraftModel struct {
	ModelCode                string  `db:"model_code"`
	ManufacturerName         *string `db:"manufacturer_name"`
	ModelName                *string `db:"model_name"`
	TypeAircraft             *string `db:"type_aircraft"`
	TypeEngine               *string `db:"type_engine"`
	AircraftCategoryCode     *string `db:"aircraft_category_code"`
	BuilderCertificationCode *string `db:"builder_certification_code"`
	NumberOfEngines          int     `db:"number_of_engines"`
	NumberOfSeats            int     `db:"number_of_seats"`
	AircraftWeightCategory   *string `db:"aircraft_weight_category"`
	AircraftCruisingSpeed    int     `db:"aircraft_cruising_speed"`
	TCDataSheet              *string `db:"tc_data_sheet"`
	TCDataHolder             *string `db:"tc_data_holder"`
}
