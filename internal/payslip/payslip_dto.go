package payslip

import "time"

type PayslipResponse struct {
	PayslipID  int64     `json:"payslipId"`
	EmployeeID int64     `json:"employeeId"`
	PayPeriod  string    `json:"payPeriod"`
	CreatedAt  time.Time `json:"createdAt"`
	PDFFile    []byte    `json:"pdfFile"`
}

// MonthCount is one row of the payslips-per-month aggregate. The _id
// key is what the dashboard chart binds to.
type MonthCount struct {
	PayPeriod string `gorm:"column:pay_period" json:"_id"`
	Count     int64  `gorm:"column:count" json:"count"`
}
