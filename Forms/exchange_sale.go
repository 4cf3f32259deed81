package Forms

import (
	"gorm.io/datatypes"

	"Tractor/Models"
)

// UsedVehicleFields is the trade-in block of an exchange sale. All of it is
// mandatory except the previous owner's address.
type UsedVehicleFields struct {
	Make            string         `json:"make" validate:"required"`
	Model           string         `json:"model" validate:"required"`
	CustomerName    string         `json:"customerName" validate:"required"`
	CustomerPhone   string         `json:"customerPhone" validate:"required"`
	CustomerAddress Models.Address `json:"customerAddress"`
	PriceTaken      string         `json:"priceTaken" validate:"required,numeric"`
}

// ExchangeSaleForm records a sale with a trade-in. The appraised trade-in
// value is deducted from the derived total, clamped at zero: a trade-in can
// wipe out the payable amount but never turn it into a credit.
type ExchangeSaleForm struct {
	SaleDetails
	UsedVehicle UsedVehicleFields `json:"usedVehicleDetails"`
	TotalAmount float64           `json:"totalAmount"`
}

func (f *ExchangeSaleForm) Recalculate() float64 {
	f.TotalAmount = Models.ExchangeSaleTotal(
		f.HasLoan,
		num(f.LoanAmount),
		num(f.DocCharge),
		num(f.DownPayment),
		num(f.UsedVehicle.PriceTaken),
	)
	return f.TotalAmount
}

func (f *ExchangeSaleForm) Validate() Errors {
	errs := collect(validate.Struct(f))
	f.checkNonNegative(errs)
	if _, taken := errs["usedVehicleDetails.priceTaken"]; !taken {
		if raw := f.UsedVehicle.PriceTaken; raw != "" && num(raw) < 0 {
			errs["usedVehicleDetails.priceTaken"] = "Cannot be negative"
		}
	}
	return errs
}

// Sale builds the submit payload including the trade-in block. Call only
// after Validate returns empty.
func (f *ExchangeSaleForm) Sale() (Models.Sale, error) {
	f.Recalculate()
	sale, err := f.buildSale(Models.SaleTypeExchange, f.TotalAmount)
	if err != nil {
		return Models.Sale{}, err
	}

	details := datatypes.NewJSONType(Models.UsedVehicleInfo{
		Make:            f.UsedVehicle.Make,
		Model:           f.UsedVehicle.Model,
		CustomerName:    f.UsedVehicle.CustomerName,
		CustomerPhone:   f.UsedVehicle.CustomerPhone,
		CustomerAddress: f.UsedVehicle.CustomerAddress,
		PriceTaken:      num(f.UsedVehicle.PriceTaken),
	})
	sale.UsedVehicleDetails = &details
	return sale, nil
}
