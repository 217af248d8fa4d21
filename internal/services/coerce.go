package services

import (
	"log"
	"strings"

	"github.com/shopspring/decimal"
)

// CoerceAmount normalizes a heterogeneous stored value into a decimal, or nil
// when the value is missing or unusable. Legacy rows keep amounts in text
// columns with thousands separators ("1,234.50"), newer rows use numeric
// columns; both must land on the same representation. A string that fails to
// parse is logged on warnLog and treated as absent — coercion never fails the
// request. Absence is distinct from zero.
func CoerceAmount(raw any, warnLog *log.Logger) *decimal.Decimal {
	switch v := raw.(type) {
	case nil:
		return nil
	case decimal.Decimal:
		return &v
	case int:
		d := decimal.NewFromInt(int64(v))
		return &d
	case int64:
		d := decimal.NewFromInt(v)
		return &d
	case float64:
		d := decimal.NewFromFloat(v)
		return &d
	case []byte:
		return parseStoredNumber(string(v), warnLog)
	case string:
		return parseStoredNumber(v, warnLog)
	default:
		return nil
	}
}

func parseStoredNumber(s string, warnLog *log.Logger) *decimal.Decimal {
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		if warnLog != nil {
			warnLog.Printf("could not convert stored value %q to a number", s)
		}
		return nil
	}
	return &d
}

// DisplayQuantity renders a stored quantity for the document table. Only
// values the store typed as numeric are shown; missing values and legacy text
// come out as the empty string, which the templates print as a blank cell.
func DisplayQuantity(raw any) string {
	switch v := raw.(type) {
	case decimal.Decimal:
		return v.String()
	case int:
		return decimal.NewFromInt(int64(v)).String()
	case int64:
		return decimal.NewFromInt(v).String()
	case float64:
		return decimal.NewFromFloat(v).String()
	default:
		return ""
	}
}
