package common

import (
	"database/sql/driver"
	"fmt"
	"strconv"
)

// Decimal переводит NUMERIC колонки в float64 и обратно.
// Postgres отдаёт NUMERIC строкой, наружу уходит только число.
type Decimal float64

// Scan реализует sql.Scanner.
func (d *Decimal) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = 0
		return nil
	case float64:
		*d = Decimal(v)
		return nil
	case int64:
		*d = Decimal(v)
		return nil
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	default:
		return fmt.Errorf("decimal: unsupported source type %T", src)
	}
}

func (d *Decimal) parse(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("decimal: parse %q: %w", s, err)
	}
	*d = Decimal(f)
	return nil
}

// Value реализует driver.Valuer. Строка без экспоненты, чтобы NUMERIC принял значение без потерь.
func (d Decimal) Value() (driver.Value, error) {
	return strconv.FormatFloat(float64(d), 'f', -1, 64), nil
}

// Float64 возвращает значение как число.
func (d Decimal) Float64() float64 {
	return float64(d)
}
