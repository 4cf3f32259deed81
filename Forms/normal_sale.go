package Forms

import "Tractor/Models"

// NormalSaleForm records a straight sale. TotalAmount is derived, never
// edited directly; callers call Recalculate after any input change.
type NormalSaleForm struct {
	SaleDetails
	TotalAmount float64 `json:"totalAmount"`
}

// Recalculate rederives the total from the current inputs:
// loan amount (when financed) + document charge + down payment.
func (f *NormalSaleForm) Recalculate() float64 {
	f.TotalAmount = Models.NormalSaleTotal(f.HasLoan, num(f.LoanAmount), num(f.DocCharge), num(f.DownPayment))
	return f.TotalAmount
}

// Validate evaluates the whole rule set and returns the field errors, empty
// when the form may be submitted.
func (f *NormalSaleForm) Validate() Errors {
	errs := collect(validate.Struct(f))
	f.checkNonNegative(errs)
	return errs
}

// Sale builds the submit payload. Call only after Validate returns empty.
func (f *NormalSaleForm) Sale() (Models.Sale, error) {
	f.Recalculate()
	return f.buildSale(Models.SaleTypeNormal, f.TotalAmount)
}
