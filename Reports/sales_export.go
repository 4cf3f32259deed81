package Reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"Tractor/Models"
)

const sheetName = "Sales Register"

var headers = []string{
	"ID", "Type", "Location", "Delivery Date", "Salesman",
	"Customer", "Phone", "Vehicle ID", "C2C Price", "Discount",
	"Down Payment", "Loan", "Finance Company", "Loan Amount",
	"Doc Charge", "Trade-In Value", "Total Amount",
}

// ExportSales writes the sales register as an .xlsx workbook, one row per
// sale with the derived total.
func ExportSales(sales []Models.Sale, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheetName, cell, header)
	}

	for i, sale := range sales {
		customer := sale.Customer.Data()
		loan := "No"
		if sale.HasLoan {
			loan = "Yes"
		}
		tradeIn := 0.0
		if sale.UsedVehicleDetails != nil {
			tradeIn = sale.UsedVehicleDetails.Data().PriceTaken
		}

		values := []interface{}{
			sale.ID,
			sale.SaleType,
			sale.Location,
			sale.DeliveryDate.Format("2006-01-02"),
			sale.Salesman,
			customer.Name,
			customer.Phone,
			sale.VehicleID,
			sale.C2CPrice,
			sale.Discount,
			sale.DownPayment,
			loan,
			sale.FinanceCompany,
			sale.LoanAmount,
			sale.DocCharge,
			tradeIn,
			sale.TotalAmount,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			f.SetCellValue(sheetName, cell, value)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
