package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fueldelivery/models"
)

// 1x1 transparent PNG.
var tinyPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func receiptOrder() models.DeliveryOrder {
	o := models.NewOrder("010125-03", newYear, "PT. SHA Solo", models.FuelBiosolarB40)
	o.Client = "PT. Tambang Jaya"
	o.PICDelivery = "Budi"
	o.SiteAddress1 = "Jl. Raya 1"
	o.SiteAddress2 = "Kudus"
	o.FleetNumber = "AD 1234 XY"
	o.DriverName = "Slamet"
	o.Qty = models.NewQuantity(1234)
	return o
}

func TestBuildReceiptData(t *testing.T) {
	data := BuildReceiptData(receiptOrder(), models.DefaultCompanyProfile(), nil)

	assert.Equal(t, "010125-03", data.DONumber)
	assert.Equal(t, "1.234", data.Quantity)
	assert.Equal(t, "2025-01-01", data.Date)
	assert.Equal(t, "Budi", data.Attn)
	assert.Empty(t, data.HeaderImage)
	require.Len(t, data.Inspection, 5)
	assert.Contains(t, string(data.Inspection[1].Label), "<b>1.234</b> Liter")
	assert.NotEmpty(t, data.Inspection[4].Merged)
	assert.Len(t, data.Disclaimers, 2)
}

func TestBuildReceiptDataBlanksBadValues(t *testing.T) {
	o := receiptOrder()
	o.Date = models.ParseDate("kemarin")
	o.POClientDate = models.Date{}
	o.Qty = models.ParseQuantity("banyak")

	data := BuildReceiptData(o, models.DefaultCompanyProfile(), nil)
	assert.Equal(t, "", data.Date)
	assert.Equal(t, "", data.POClientDate)
	assert.Equal(t, "0", data.Quantity)
}

func TestBuildReceiptDataHeaderImage(t *testing.T) {
	data := BuildReceiptData(receiptOrder(), models.DefaultCompanyProfile(), tinyPNG)
	assert.True(t, strings.HasPrefix(string(data.HeaderImage), "data:image/png;base64,"))
}

func TestRenderReceiptHTML(t *testing.T) {
	company := models.DefaultCompanyProfile()
	html, err := RenderReceiptHTML(BuildReceiptData(receiptOrder(), company, nil))
	require.NoError(t, err)

	page := string(html)
	for _, want := range []string{
		"FUEL ORDER DELIVERY",
		"010125-03",
		"BERITA ACARA PENERIMAAN BBM / FUEL",
		"Coment/Catatan:",
		"TTD PENGANTAR",
		"TTD PENERIMA",
		"Fleet No. <b>AD 1234 XY</b>",
		"Tidak Dapat Dikembalikan.",
		company.Name,
	} {
		assert.Contains(t, page, want)
	}
	assert.NotContains(t, page, "<img")
}

func TestRenderReceiptHTMLEscapesValues(t *testing.T) {
	o := receiptOrder()
	o.Client = "<script>x</script>"
	html, err := RenderReceiptHTML(BuildReceiptData(o, models.DefaultCompanyProfile(), tinyPNG))
	require.NoError(t, err)
	assert.NotContains(t, string(html), "<script>x</script>")
	assert.Contains(t, string(html), `<img src="data:image/png;base64,`)
}
