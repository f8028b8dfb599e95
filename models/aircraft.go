// models/aircraft.go
package models

// MasterRow is one raw record from MASTER.txt, the FAA aircraft
// registration master file. CSV tags match the published headers
// exactly, including the stray leading space the FAA ships on the
// "KIT MODEL" column.
type MasterRow struct {
	NNumber          string `csv:"N-NUMBER"`
	SerialNumber     string `csv:"SERIAL NUMBER"`
	MfrModelCode     string `csv:"MFR MDL CODE"`
	EngineMfrModel   string `csv:"ENG MFR MDL"`
	YearMfr          string `csv:"YEAR MFR"`
	TypeRegistrant   string `csv:"TYPE REGISTRANT"`
	Name             string `csv:"NAME"`
	Street           string `csv:"STREET"`
	Street2          string `csv:"STREET2"`
	City             string `csv:"CITY"`
	State            string `csv:"STATE"`
	ZipCode          string `csv:"ZIP CODE"`
	Region           string `csv:"REGION"`
	County           string `csv:"COUNTY"`
	Country          string `csv:"COUNTRY"`
	LastActionDate   string `csv:"LAST ACTION DATE"`
	CertIssueDate    string `csv:"CERT ISSUE DATE"`
	Certification    string `csv:"CERTIFICATION"`
	TypeAircraft     string `csv:"TYPE AIRCRAFT"`
	TypeEngine       string `csv:"TYPE ENGINE"`
	StatusCode       string `csv:"STATUS CODE"`
	ModeSCode        string `csv:"MODE S CODE"`
	FractOwner       string `csv:"FRACT OWNER"`
	AirWorthDate     string `csv:"AIR WORTH DATE"`
	OtherNames1      string `csv:"OTHER NAMES(1)"`
	OtherNames2      string `csv:"OTHER NAMES(2)"`
	OtherNames3      string `csv:"OTHER NAMES(3)"`
	OtherNames4      string `csv:"OTHER NAMES(4)"`
	OtherNames5      string `csv:"OTHER NAMES(5)"`
	ExpirationDate   string `csv:"EXPIRATION DATE"`
	UniqueID         string `csv:"UNIQUE ID"`
	KitMfr           string `csv:"KIT MFR"`
	KitModel         string `csv:" KIT MODEL"`
	ModeSCodeHex     string `csv:"MODE S CODE HEX"`
}

// Aircraft is the normalized registration record written to the
// aircraft table. Pointer fields are absent (NULL) when the source
// field was empty after trimming; the distinction matters for the
// JOIN-facing code columns, where a blank must not look like a value.
type Aircraft struct {
	NNumber             string  `db:"n_number"`
	SerialNumber        *string `db:"serial_number"`
	MfrModelCode        *string `db:"mfr_model_code"`
	EngineMfrModelCode  *string `db:"engine_mfr_model_code"`
	YearMfr             *int    `db:"year_mfr"`
	TypeRegistrant      *string `db:"type_registrant"`
	RegistrantName      *string `db:"registrant_name"`
	Street1             *string `db:"street1"`
	Street2             *string `db:"street2"`
	City                *string `db:"city"`
	State               *string `db:"state"`
	ZipCode             *string `db:"zip_code"`
	RegistrantRegion    *string `db:"registrant_region"`
	CountyMailCode      *string `db:"county_mail_code"`
	CountryMailCode     *string `db:"country_mail_code"`
	LastActivityDate    *string `db:"last_activity_date"`
	CertIssueDate       *string `db:"cert_issue_date"`
	CertRequested       *string `db:"cert_requested"`
	TypeAircraft        *string `db:"type_aircraft"`
	TypeEngine          *string `db:"type_engine"`
	StatusCode          *string `db:"status_code"`
	ModeSCode           *string `db:"mode_s_code"`
	FractionalOwnership *string `db:"fractional_ownership"`
	AirworthinessDate   *string `db:"airworthiness_date"`
	OtherName1          *string `db:"other_name_1"`
	OtherName2          *string `db:"other_name_2"`
	OtherName3          *string `db:"other_name_3"`
	OtherName4          *string `db:"other_name_4"`
	OtherName5          *string `db:"other_name_5"`
	ExpirationDate      *string `db:"expiration_date"`
	UniqueID            *string `db:"unique_id"`
	KitMfr              *string `db:"kit_mfr"`
	KitModelCode        *string `db:"kit_model_code"`
	ModeSCodeHex        *string `db:"mode_s_code_hex"`
}
