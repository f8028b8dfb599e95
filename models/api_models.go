// models/api_models.go
package models

// AircraftDetail is the lookup API document: one aircraft row
// left-joined to its model and engine reference rows. Pointer fields
// marshal as absent rather than empty when the source data had no
// value.
type AircraftDetail struct {
	NNumber             string  `json:"n_number"`
	SerialNumber        *string `json:"serial_number,omitempty"`
	MfrModelCode        *string `json:"mfr_model_code,omitempty"`
	EngineMfrModelCode  *string `json:"engine_mfr_model_code,omitempty"`
	YearMfr             *int    `json:"year_mfr,omitempty"`
	TypeRegistrant      *string `json:"type_registrant,omitempty"`
	RegistrantName      *string `json:"registrant_name,omitempty"`
	Street1             *string `json:"street1,omitempty"`
	Street2             *string `json:"street2,omitempty"`
	City                *string `json:"city,omitempty"`
	State               *string `json:"state,omitempty"`
	ZipCode             *string `json:"zip_code,omitempty"`
	RegistrantRegion    *string `json:"registrant_region,omitempty"`
	CountyMailCode      *string `json:"county_mail_code,omitempty"`
	CountryMailCode     *string `json:"country_mail_code,omitempty"`
	LastActivityDate    *string `json:"last_activity_date,omitempty"`
	CertIssueDate       *string `json:"cert_issue_date,omitempty"`
	CertRequested       *string `json:"cert_requested,omitempty"`
	TypeAircraft        *string `json:"type_aircraft,omitempty"`
	TypeEngine          *string `json:"type_engine,omitempty"`
	StatusCode          *string `json:"status_code,omitempty"`
	ModeSCode           *string `json:"mode_s_code,omitempty"`
	ModeSCodeHex        *string `json:"mode_s_code_hex,omitempty"`
	FractionalOwnership *string `json:"fractional_ownership,omitempty"`
	AirworthinessDate   *string `json:"airworthiness_date,omitempty"`
	OtherName1          *string `json:"other_name_1,omitempty"`
	OtherName2          *string `json:"other_name_2,omitempty"`
	OtherName3          *string `json:"other_name_3,omitempty"`
	OtherName4          *string `json:"other_name_4,omitempty"`
	OtherName5          *string `json:"other_name_5,omitempty"`
	ExpirationDate      *string `json:"expiration_date,omitempty"`
	UniqueID            *string `json:"unique_id,omitempty"`
	KitMfr              *string `json:"kit_mfr,omitempty"`
	KitModelCode        *string `json:"kit_model_code,omitempty"`

	// Joined from aircraft_model
	AircraftManufacturerName *string `json:"aircraft_manufacturer_name,omitempty"`
	AircraftModelName        *string `json:"aircraft_model_name,omitempty"`
	NumberOfEngines          *int    `json:"number_of_engines,omitempty"`
	NumberOfSeats            *int    `json:"number_of_seats,omitempty"`

	// Joined from engine
	EngineManufacturerName *string `json:"engine_manufacturer_name,omitempty"`
	EngineModelName        *string `json:"engine_model_name,omitempty"`
	Horsepower             *int    `json:"horsepower,omitempty"`
	PoundsOfThrust         *int    `json:"pounds_of_thrust,omitempty"`
}

// HealthStatus is the health endpoint payload.
type HealthStatus struct {
	Status        string `json:"status"`
	Message       string `json:"message,omitempty"`
	AircraftCount int    `json:"aircraft_count"`
}
