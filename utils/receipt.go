package utils

import (
	"bytes"
	"embed"
	"encoding/base64"
	"html/template"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"fueldelivery/models"
)

//go:embed templates/receipt.html
var templateFS embed.FS

var receiptTmpl = template.Must(template.ParseFS(templateFS, "templates/receipt.html"))

// Footer lines printed under the acknowledgment table.
var receiptDisclaimers = []string{
	"BBM Solar Yang Sudah Diterima Dengan Baik Tidak Dapat Dikembalikan.",
	"Tidak Menerima Keluhan Apabila BBM Solar Telah Diterima Dan Surat Jalan Telah Ditanda Tangani",
}

// BuildReceiptData flattens an order into the strings the receipt prints.
// Absent and invalid values print as empty text.
func BuildReceiptData(o models.DeliveryOrder, company models.CompanyProfile, header []byte) models.ReceiptData {
	qty := FormatLiters(o.Qty)
	return models.ReceiptData{
		Company:      company,
		HeaderImage:  headerDataURI(header),
		DONumber:     o.DONumber,
		Attn:         o.PICDelivery,
		Date:         printableDate(o.Date),
		ShipTo:       o.Client,
		SiteAddress1: o.SiteAddress1,
		SiteAddress2: o.SiteAddress2,
		POClient:     o.POClient,
		POClientDate: printableDate(o.POClientDate),
		Quantity:     qty,
		FuelType:     o.FuelType,
		Transporter:  o.Transporter,
		FleetNumber:  o.FleetNumber,
		DriverName:   o.DriverName,
		Inspection:   inspectionItems(qty),
		Disclaimers:  receiptDisclaimers,
	}
}

func inspectionItems(qty string) []models.InspectionItem {
	return []models.InspectionItem{
		{No: 1, Label: "Mutu Barang / Kualitas BBM Solar", OptionA: "a. Baik", OptionB: "b. Buruk"},
		{No: 2, Label: template.HTML("Volume dikirim : <b>" + template.HTMLEscapeString(qty) + "</b> Liter"),
			OptionA: "Volume diterima :", OptionB: "............... Liter"},
		{No: 3, Label: "Segel Atas No. ..........................", OptionA: "a. Baik", OptionB: "b. Rusak/ Terputus"},
		{No: 4, Label: "Segel Bawah No. .......................", OptionA: "a. Baik", OptionB: "b. Rusak/ Terputus"},
		{No: 5, Label: "Ketinggian T2 (After Loading)", Merged: "Tepat / Lebih / Kurang (____ cm ____ ml)"},
	}
}

func printableDate(d models.Date) string {
	if !d.Valid() {
		return ""
	}
	return d.String()
}

func headerDataURI(img []byte) template.URL {
	if len(img) == 0 {
		return ""
	}
	ct := mimetype.Detect(img).String()
	return template.URL("data:" + ct + ";base64," + base64.StdEncoding.EncodeToString(img))
}

// RenderReceiptHTML executes the receipt template.
func RenderReceiptHTML(data models.ReceiptData) ([]byte, error) {
	var buf bytes.Buffer
	if err := receiptTmpl.Execute(&buf, data); err != nil {
		log.Error().Err(err).Str("do_number", data.DONumber).Msg("receipt template failed")
		return nil, errors.Wrap(models.ErrRender, err.Error())
	}
	return buf.Bytes(), nil
}
