package models

import (
	"strconv"
	"strings"
	"time"
)

// Sheet column headers, in storage and export order.
const (
	ColNo           = "No"
	ColMonth        = "Month"
	ColSPOLetter    = "SPO-Letter"
	ColDONumber     = "NOMOR DO"
	ColDate         = "Date"
	ColSource       = "Source"
	ColTransporter  = "Transportir"
	ColClient       = "Client"
	ColSiteAddress1 = "Site/Discharge Addr Line 1"
	ColSiteAddress2 = "Site/Discharge Addr Line 2"
	ColPOClient     = "PO Client"
	ColPOClientDate = "Tgl PO"
	ColPOPertamina  = "PO Pertamina"
	ColPICDelivery  = "PIC Delivery"
	ColQty          = "Qty"
	ColFuelType     = "Jenis BBM"
	ColFleetNumber  = "Fleet Number"
	ColDriverName   = "Nama Driver"
	ColRemarks      = "Keterangan"
)

var Columns = []string{
	ColNo, ColMonth, ColSPOLetter, ColDONumber, ColDate, ColSource, ColTransporter,
	ColClient, ColSiteAddress1, ColSiteAddress2, ColPOClient, ColPOClientDate,
	ColPOPertamina, ColPICDelivery, ColQty, ColFuelType, ColFleetNumber,
	ColDriverName, ColRemarks,
}

// identifierColumns hold references that the spreadsheet may turn into numbers.
var identifierColumns = map[string]bool{
	ColSPOLetter:   true,
	ColDONumber:    true,
	ColPOClient:    true,
	ColPOPertamina: true,
	ColFleetNumber: true,
}

// Fuel catalogue offered on the order form.
const (
	FuelBiosolarB40 = "Biosolar Industri B40"
	FuelPertadex    = "Pertadex"
	FuelBioler      = "Bioler"
	FuelKerosene    = "Minyak Tanah"
)

var FuelTypes = []string{FuelBiosolarB40, FuelPertadex, FuelBioler, FuelKerosene}

// DeliveryOrder is one row of the DO table.
type DeliveryOrder struct {
	No           int64    `json:"no"`
	Month        string   `json:"month"`
	SPOLetter    string   `json:"spo_letter"`
	DONumber     string   `json:"do_number" validate:"required,do_number"`
	Date         Date     `json:"date"`
	Source       string   `json:"source"`
	Transporter  string   `json:"transporter"`
	Client       string   `json:"client"`
	SiteAddress1 string   `json:"site_address_1"`
	SiteAddress2 string   `json:"site_address_2"`
	POClient     string   `json:"po_client"`
	POClientDate Date     `json:"po_client_date"`
	POPertamina  string   `json:"po_pertamina"`
	PICDelivery  string   `json:"pic_delivery"`
	Qty          Quantity `json:"qty"`
	FuelType     string   `json:"fuel_type" validate:"max=64"`
	FleetNumber  string   `json:"fleet_number"`
	DriverName   string   `json:"driver_name"`
	Remarks      string   `json:"remarks"`
}

// UpsertResult reports what a save did to the table.
type UpsertResult struct {
	Order   DeliveryOrder `json:"order"`
	Created bool          `json:"created"`
}

// NormalizeIdentifier undoes a numeric round trip such as "1234.0" -> "1234".
func NormalizeIdentifier(s string) string {
	s = strings.TrimSpace(s)
	return strings.TrimSuffix(s, ".0")
}

// Cells returns the row in Columns order as cell text.
func (o DeliveryOrder) Cells() []string {
	no := ""
	if o.No > 0 {
		no = strconv.FormatInt(o.No, 10)
	}
	return []string{
		no, o.Month, o.SPOLetter, o.DONumber, o.Date.String(), o.Source, o.Transporter,
		o.Client, o.SiteAddress1, o.SiteAddress2, o.POClient, o.POClientDate.String(),
		o.POPertamina, o.PICDelivery, o.Qty.String(), o.FuelType, o.FleetNumber,
		o.DriverName, o.Remarks,
	}
}

// OrderFromRecord builds an order from header -> cell text. Unknown headers
// are ignored and missing ones stay empty.
func OrderFromRecord(rec map[string]string) DeliveryOrder {
	get := func(col string) string {
		v := strings.TrimSpace(rec[col])
		if identifierColumns[col] {
			v = NormalizeIdentifier(v)
		}
		return v
	}
	return DeliveryOrder{
		No:           parseRowNumber(get(ColNo)),
		Month:        get(ColMonth),
		SPOLetter:    get(ColSPOLetter),
		DONumber:     get(ColDONumber),
		Date:         ParseDate(get(ColDate)),
		Source:       get(ColSource),
		Transporter:  get(ColTransporter),
		Client:       get(ColClient),
		SiteAddress1: get(ColSiteAddress1),
		SiteAddress2: get(ColSiteAddress2),
		POClient:     get(ColPOClient),
		POClientDate: ParseDate(get(ColPOClientDate)),
		POPertamina:  get(ColPOPertamina),
		PICDelivery:  get(ColPICDelivery),
		Qty:          ParseQuantity(get(ColQty)),
		FuelType:     get(ColFuelType),
		FleetNumber:  get(ColFleetNumber),
		DriverName:   get(ColDriverName),
		Remarks:      get(ColRemarks),
	}
}

// OrderFromCells pairs a header row with a data row.
func OrderFromCells(header, cells []string) DeliveryOrder {
	rec := make(map[string]string, len(header))
	for i, h := range header {
		if i < len(cells) {
			rec[strings.TrimSpace(h)] = cells[i]
		}
	}
	return OrderFromRecord(rec)
}

func parseRowNumber(s string) int64 {
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 {
		return int64(f)
	}
	return 0
}

// NewOrder is the blank form for a fresh DO number.
func NewOrder(doNumber string, now time.Time, transporter, fuelType string) DeliveryOrder {
	return DeliveryOrder{
		DONumber:     doNumber,
		Date:         NewDate(now),
		Month:        now.Month().String(),
		POClientDate: NewDate(now),
		Qty:          NewQuantity(0),
		FuelType:     fuelType,
		Transporter:  transporter,
	}
}
