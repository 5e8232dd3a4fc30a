package models

// SchemaVersion tags the current record shape
const SchemaVersion = "v1"

// Record is one synthetic purchase order row. Field order is the column order
// of every dataset file.
type Record struct {
	SchemaVersion      string  `parquet:"schema_version" json:"schema_version"`
	OrderID            string  `parquet:"order_id" json:"order_id"`
	OrderDateTimeUTC   string  `parquet:"order_datetime_utc" json:"order_datetime_utc"`
	Status             string  `parquet:"status" json:"status"`
	CustomerName       string  `parquet:"customer_name" json:"customer_name"`
	CustomerEmail      string  `parquet:"customer_email" json:"customer_email"`
	CustomerCity       string  `parquet:"customer_city" json:"customer_city"`
	CustomerState      string  `parquet:"customer_state" json:"customer_state"`
	ProductID          string  `parquet:"product_id" json:"product_id"`
	ProductName        string  `parquet:"product_name" json:"product_name"`
	ProductCategory    string  `parquet:"product_category" json:"product_category"`
	SupplierName       string  `parquet:"supplier_name" json:"supplier_name"`
	ManufacturerName   string  `parquet:"manufacturer_name" json:"manufacturer_name"`
	Quantity           int64   `parquet:"quantity" json:"quantity"`
	UnitPrice          float64 `parquet:"unit_price" json:"unit_price"`
	Discount           float64 `parquet:"discount" json:"discount"`
	GrossValue         float64 `parquet:"gross_value" json:"gross_value"`
	NetValue           float64 `parquet:"net_value" json:"net_value"`
	PaymentMethod      string  `parquet:"payment_method" json:"payment_method"`
	PaymentDateTimeUTC string  `parquet:"payment_datetime_utc" json:"payment_datetime_utc"`
	IsLate             bool    `parquet:"is_late" json:"is_late"`
}

// Columns lists the dataset columns in file order
var Columns = []string{
	"schema_version",
	"order_id",
	"order_datetime_utc",
	"status",
	"customer_name",
	"customer_email",
	"customer_city",
	"customer_state",
	"product_id",
	"product_name",
	"product_category",
	"supplier_name",
	"manufacturer_name",
	"quantity",
	"unit_price",
	"discount",
	"gross_value",
	"net_value",
	"payment_method",
	"payment_datetime_utc",
	"is_late",
}

// Values returns the record fields in Columns order with their native types
func (r *Record) Values() []any {
	return []any{
		r.SchemaVersion,
		r.OrderID,
		r.OrderDateTimeUTC,
		r.Status,
		r.CustomerName,
		r.CustomerEmail,
		r.CustomerCity,
		r.CustomerState,
		r.ProductID,
		r.ProductName,
		r.ProductCategory,
		r.SupplierName,
		r.ManufacturerName,
		r.Quantity,
		r.UnitPrice,
		r.Discount,
		r.GrossValue,
		r.NetValue,
		r.PaymentMethod,
		r.PaymentDateTimeUTC,
		r.IsLate,
	}
}

// Order statuses
const (
	OrderStatusPlaced    = "pedido"
	OrderStatusShipped   = "enviado"
	OrderStatusDelivered = "entregue"
	OrderStatusReturned  = "devolvido"
)

// Payment methods
const (
	PaymentMethodPix    = "PIX"
	PaymentMethodCard   = "Cartão de Crédito"
	PaymentMethodBoleto = "Boleto Bancário"
)
