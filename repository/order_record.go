package repository

import (
	"time"

	"fueldelivery/models"
)

// orderRecord is the typed row shared by the database backends. Invalid
// dates and quantities are stored as NULL.
type orderRecord struct {
	No           int64      `gorm:"column:row_no;index" bson:"no"`
	DONumber     string     `gorm:"column:do_number;primaryKey" bson:"_id"`
	Month        string     `gorm:"column:month" bson:"month"`
	SPOLetter    string     `gorm:"column:spo_letter" bson:"spo_letter"`
	Date         *time.Time `gorm:"column:date" bson:"date,omitempty"`
	Source       string     `gorm:"column:source" bson:"source"`
	Transporter  string     `gorm:"column:transporter" bson:"transporter"`
	Client       string     `gorm:"column:client" bson:"client"`
	SiteAddress1 string     `gorm:"column:site_address_1" bson:"site_address_1"`
	SiteAddress2 string     `gorm:"column:site_address_2" bson:"site_address_2"`
	POClient     string     `gorm:"column:po_client" bson:"po_client"`
	POClientDate *time.Time `gorm:"column:po_client_date" bson:"po_client_date,omitempty"`
	POPertamina  string     `gorm:"column:po_pertamina" bson:"po_pertamina"`
	PICDelivery  string     `gorm:"column:pic_delivery" bson:"pic_delivery"`
	Qty          *float64   `gorm:"column:qty" bson:"qty,omitempty"`
	FuelType     string     `gorm:"column:fuel_type" bson:"fuel_type"`
	FleetNumber  string     `gorm:"column:fleet_number" bson:"fleet_number"`
	DriverName   string     `gorm:"column:driver_name" bson:"driver_name"`
	Remarks      string     `gorm:"column:remarks" bson:"remarks"`
	UpdatedAt    time.Time  `gorm:"column:updated_at" bson:"updated_at"`
}

func (orderRecord) TableName() string { return "delivery_orders" }

func newOrderRecord(o models.DeliveryOrder) orderRecord {
	return orderRecord{
		No:           o.No,
		DONumber:     o.DONumber,
		Month:        o.Month,
		SPOLetter:    o.SPOLetter,
		Date:         o.Date.Ptr(),
		Source:       o.Source,
		Transporter:  o.Transporter,
		Client:       o.Client,
		SiteAddress1: o.SiteAddress1,
		SiteAddress2: o.SiteAddress2,
		POClient:     o.POClient,
		POClientDate: o.POClientDate.Ptr(),
		POPertamina:  o.POPertamina,
		PICDelivery:  o.PICDelivery,
		Qty:          o.Qty.Ptr(),
		FuelType:     o.FuelType,
		FleetNumber:  o.FleetNumber,
		DriverName:   o.DriverName,
		Remarks:      o.Remarks,
		UpdatedAt:    time.Now().UTC(),
	}
}

func (r orderRecord) order() models.DeliveryOrder {
	return models.DeliveryOrder{
		No:           r.No,
		DONumber:     r.DONumber,
		Month:        r.Month,
		SPOLetter:    r.SPOLetter,
		Date:         models.DateFromPtr(r.Date),
		Source:       r.Source,
		Transporter:  r.Transporter,
		Client:       r.Client,
		SiteAddress1: r.SiteAddress1,
		SiteAddress2: r.SiteAddress2,
		POClient:     r.POClient,
		POClientDate: models.DateFromPtr(r.POClientDate),
		POPertamina:  r.POPertamina,
		PICDelivery:  r.PICDelivery,
		Qty:          models.QuantityFromPtr(r.Qty),
		FuelType:     r.FuelType,
		FleetNumber:  r.FleetNumber,
		DriverName:   r.DriverName,
		Remarks:      r.Remarks,
	}
}
