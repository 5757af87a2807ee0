package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"fueldelivery/models"
)

var (
	validate   *validator.Validate
	doNumberRe = regexp.MustCompile(`^\d{6}-\d{2,}$`)
)

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("do_number", func(fl validator.FieldLevel) bool {
		return IsValidDONumber(fl.Field().String())
	})
	validate.RegisterStructValidation(orderStructLevel, models.DeliveryOrder{})
}

// IsValidDONumber accepts DDMMYY-NN with two or more sequence digits.
func IsValidDONumber(s string) bool {
	return doNumberRe.MatchString(s)
}

func orderStructLevel(sl validator.StructLevel) {
	o := sl.Current().Interface().(models.DeliveryOrder)
	if o.Date.State == models.Invalid {
		sl.ReportError(o.Date.Raw, "Date", "date", "date", "")
	}
	if o.POClientDate.State == models.Invalid {
		sl.ReportError(o.POClientDate.Raw, "POClientDate", "po_client_date", "date", "")
	}
	switch {
	case o.Qty.State == models.Invalid:
		sl.ReportError(o.Qty.Raw, "Qty", "qty", "number", "")
	case o.Qty.Value < 0:
		sl.ReportError(o.Qty.Value, "Qty", "qty", "gte", "0")
	}
}

// ValidateOrder checks a submitted order. The error wraps models.ErrValidation.
func ValidateOrder(o models.DeliveryOrder) error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return models.ValidationError(err.Error())
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Field(), fe.Tag()))
	}
	return models.ValidationError(strings.Join(msgs, "; "))
}
