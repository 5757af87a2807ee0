package utils

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"fueldelivery/models"
)

// Receipts are printed for Indonesian customers: "1.234" is one thousand
// two hundred thirty-four liters.
var receiptPrinter = message.NewPrinter(language.Indonesian)

// FormatLiters renders a quantity as a grouped whole number ("16.000").
// Absent or invalid quantities print as "0". Halves round to even.
func FormatLiters(q models.Quantity) string {
	return receiptPrinter.Sprintf("%d", int64(math.RoundToEven(q.OrZero())))
}
