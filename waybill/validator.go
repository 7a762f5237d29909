// Package waybill validates master air waybill (MAWB) numbers and
// resolves their IATA carrier prefix to an airline name. It is
// independent of schema inference: it checks one candidate value at a
// time, so it can also sweep cell samples when no header maps cleanly.
package waybill

import (
	"regexp"
	"strings"

	"github.com/demoperez-ux/manifestpro/schema"
)

// mawbPattern is the structural rule of record: a 3-digit IATA carrier
// prefix, a dash, and an 8-digit serial.
var mawbPattern = regexp.MustCompile(`^(\d{3})-(\d{8})$`)

// UnknownCarrier is reported for a well-formed MAWB whose prefix is not
// in the table. Format validity and carrier identity are independent.
const UnknownCarrier = "Unknown Carrier"

// Record is the validation result for one candidate value.
type Record struct {
	Raw           string `json:"raw"`
	Valid         bool   `json:"valid"`
	Normalized    string `json:"normalized,omitempty"`
	CarrierPrefix string `json:"carrier_prefix,omitempty"`
	CarrierName   string `json:"carrier_name,omitempty"`
}

// Validate checks a candidate MAWB. It never fails: an unrecognized
// format simply yields Valid=false with the remaining fields empty.
func Validate(raw string) Record {
	record := Record{Raw: raw}

	candidate := strings.ToUpper(strings.TrimSpace(raw))
	m := mawbPattern.FindStringSubmatch(candidate)
	if m == nil {
		return record
	}

	record.Valid = true
	record.Normalized = candidate
	record.CarrierPrefix = m[1]
	record.CarrierName = CarrierFor(m[1])
	return record
}

// CarrierFor resolves a 3-digit IATA prefix to an airline name, or
// UnknownCarrier when the prefix is not in the table.
func CarrierFor(prefix string) string {
	if name, ok := carrierPrefixes[prefix]; ok {
		return name
	}
	return UnknownCarrier
}

// ScanColumns sweeps every sampled cell of every column and returns the
// first valid MAWB found, in column-then-row order. The fallback search
// for manifests whose waybill column has a useless header.
func ScanColumns(columns []schema.RawColumn) (Record, bool) {
	for _, col := range columns {
		for _, value := range col.Sample {
			if record := Validate(value); record.Valid {
				return record, true
			}
		}
	}
	return Record{}, false
}
