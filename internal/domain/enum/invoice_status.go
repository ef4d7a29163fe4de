package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// InvoiceStatus represents the payment status of an invoice
type InvoiceStatus int

const (
	InvoiceStatusUnpaid    InvoiceStatus = 0
	InvoiceStatusPaid      InvoiceStatus = 1
	InvoiceStatusCancelled InvoiceStatus = 2
)

func (s InvoiceStatus) String() string {
	names := [...]string{"unpaid", "paid", "cancelled"}
	if int(s) < 0 || int(s) >= len(names) {
		return "unpaid"
	}
	return names[s]
}

// Valid reports whether the status is a known value.
func (s InvoiceStatus) Valid() bool {
	return s >= InvoiceStatusUnpaid && s <= InvoiceStatusCancelled
}

func (s InvoiceStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *InvoiceStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = InvoiceStatus(i)
		return nil
	}
	switch str {
	case "unpaid":
		*s = InvoiceStatusUnpaid
	case "paid":
		*s = InvoiceStatusPaid
	case "cancelled":
		*s = InvoiceStatusCancelled
	}
	return nil
}

func (s InvoiceStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *InvoiceStatus) Scan(value interface{}) error {
	if value == nil {
		*s = InvoiceStatusUnpaid
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = InvoiceStatus(v)
	case int:
		*s = InvoiceStatus(v)
	}
	return nil
}
