package Forms

import (
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"

	"Tractor/Models"
)

const dateLayout = "2006-01-02"

var validate *validator.Validate

func init() {
	validate = validator.New()
	// Report errors under the wire field names, not Go field names.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Errors maps a field name to the message shown next to it. Submission is
// blocked while the map is non-empty.
type Errors map[string]string

// SaleDetails is the input state shared by both sale forms. Numeric fields
// stay strings until submission, exactly as typed; coercion happens in
// buildSale.
//
// The required-ness of FinanceCompany and LoanAmount is a function of
// HasLoan, declared once in the tags rather than branched per call site.
type SaleDetails struct {
	Location        string         `json:"location" validate:"required"`
	DeliveryDate    string         `json:"deliveryDate" validate:"required,datetime=2006-01-02"`
	Salesman        string         `json:"salesman" validate:"required"`
	CustomerName    string         `json:"customerName" validate:"required"`
	CustomerPhone   string         `json:"customerPhone" validate:"required"`
	CustomerAddress Models.Address `json:"customerAddress"`
	VehicleID       string         `json:"vehicle" validate:"required,numeric"`
	C2CPrice        string         `json:"c2cPrice" validate:"required,numeric"`
	Discount        string         `json:"discount" validate:"omitempty,numeric"`
	DownPayment     string         `json:"downPayment" validate:"required,numeric"`
	HasLoan         bool           `json:"hasLoan"`
	FinanceCompany  string         `json:"financeCompany" validate:"required_if=HasLoan true"`
	LoanAmount      string         `json:"loanAmount" validate:"required_if=HasLoan true,omitempty,numeric"`
	Mas             bool           `json:"mas"`
	DocCharge       string         `json:"docCharge" validate:"omitempty,numeric"`
}

// num reads a numeric input the way the form totals do: blank or unparseable
// counts as zero.
func num(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

// requiredMessages keeps the exact wording shown under each missing field.
var requiredMessages = map[string]string{
	"location":                         "Location is required",
	"deliveryDate":                     "Delivery date is required",
	"salesman":                         "Salesman name is required",
	"customerName":                     "Customer name is required",
	"customerPhone":                    "Phone number is required",
	"vehicle":                          "Vehicle selection is required",
	"c2cPrice":                         "C2C price is required",
	"downPayment":                      "Down payment is required",
	"financeCompany":                   "Finance company is required",
	"loanAmount":                       "Loan amount is required",
	"usedVehicleDetails.make":          "Vehicle make is required",
	"usedVehicleDetails.model":         "Vehicle model is required",
	"usedVehicleDetails.customerName":  "Previous owner name is required",
	"usedVehicleDetails.customerPhone": "Previous owner phone is required",
	"usedVehicleDetails.priceTaken":    "Price taken is required",
}

// collect turns validator output into the field error map.
func collect(err error) Errors {
	errs := Errors{}
	if err == nil {
		return errs
	}
	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = err.Error()
		return errs
	}
	for _, fe := range invalid {
		field := fe.Field()
		if strings.Contains(fe.StructNamespace(), ".UsedVehicle.") {
			field = "usedVehicleDetails." + field
		}
		if _, seen := errs[field]; seen {
			continue
		}
		errs[field] = messageFor(field, fe)
	}
	return errs
}

func messageFor(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		if msg, ok := requiredMessages[field]; ok {
			return msg
		}
		return "This field is required"
	case "numeric":
		return "Must be a number"
	case "datetime":
		return "Delivery date must be in YYYY-MM-DD format"
	}
	return "Invalid value"
}

// checkNonNegative enforces the min 0 rule on amounts after the numeric
// format check. Blank inputs are left to the required rules.
func (d *SaleDetails) checkNonNegative(errs Errors) {
	amounts := []struct {
		field, raw string
	}{
		{"c2cPrice", d.C2CPrice},
		{"discount", d.Discount},
		{"downPayment", d.DownPayment},
		{"loanAmount", d.LoanAmount},
		{"docCharge", d.DocCharge},
	}
	for _, a := range amounts {
		if strings.TrimSpace(a.raw) == "" {
			continue
		}
		if _, taken := errs[a.field]; taken {
			continue
		}
		if num(a.raw) < 0 {
			errs[a.field] = "Cannot be negative"
		}
	}
}

// buildSale coerces the validated inputs into the submit payload. Numeric
// strings become numbers, the delivery date becomes an ISO-8601 instant, and
// a sale without a loan contributes nothing from the loan fields whatever
// they hold.
func (d *SaleDetails) buildSale(saleType string, totalAmount float64) (Models.Sale, error) {
	delivery, err := time.Parse(dateLayout, strings.TrimSpace(d.DeliveryDate))
	if err != nil {
		return Models.Sale{}, err
	}

	vehicleID, err := strconv.ParseUint(strings.TrimSpace(d.VehicleID), 10, 32)
	if err != nil {
		return Models.Sale{}, err
	}

	loanAmount := 0.0
	financeCompany := ""
	if d.HasLoan {
		loanAmount = num(d.LoanAmount)
		financeCompany = strings.TrimSpace(d.FinanceCompany)
	}

	return Models.Sale{
		SaleType:     saleType,
		Location:     strings.TrimSpace(d.Location),
		DeliveryDate: delivery.UTC(),
		Salesman:     strings.TrimSpace(d.Salesman),
		Customer: datatypes.NewJSONType(Models.CustomerInfo{
			Name:    strings.TrimSpace(d.CustomerName),
			Phone:   strings.TrimSpace(d.CustomerPhone),
			Address: d.CustomerAddress,
		}),
		VehicleID:      uint(vehicleID),
		C2CPrice:       num(d.C2CPrice),
		Discount:       num(d.Discount),
		DownPayment:    num(d.DownPayment),
		HasLoan:        d.HasLoan,
		FinanceCompany: financeCompany,
		LoanAmount:     loanAmount,
		Mas:            d.Mas,
		DocCharge:      num(d.DocCharge),
		TotalAmount:    totalAmount,
	}, nil
}
