package models

import "html/template"

// InspectionItem is one pre-printed line of the receipt acknowledgment form.
type InspectionItem struct {
	No      int
	Label   template.HTML
	OptionA string
	OptionB string
	Merged  string // spans both option columns when set
}

// ReceiptData is everything the receipt template reads. All fields are
// already display strings.
type ReceiptData struct {
	Company      CompanyProfile
	HeaderImage  template.URL // data URI, empty when no header asset exists
	DONumber     string
	Attn         string
	Date         string
	ShipTo       string
	SiteAddress1 string
	SiteAddress2 string
	POClient     string
	POClientDate string
	Quantity     string
	FuelType     string
	Transporter  string
	FleetNumber  string
	DriverName   string
	Inspection   []InspectionItem
	Disclaimers  []string
}
