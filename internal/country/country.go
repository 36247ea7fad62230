// Package country maps ISO country codes to the currency and local
// document-ID metadata the provider expects on payments.
package country

// HomeCountry is the fallback for unknown codes.
const HomeCountry = "CO"

type Data struct {
	Currency       string
	DocumentType   string
	DocumentNumber string
}

var countryData = map[string]Data{
	"CO": {Currency: "COP", DocumentType: "CC", DocumentNumber: "1032765432"},
	"BR": {Currency: "BRL", DocumentType: "CPF", DocumentNumber: "35764ms310"},
	"MX": {Currency: "MXN", DocumentType: "CURP", DocumentNumber: "HEGG560427MVZRRL04"},
	"AR": {Currency: "ARS", DocumentType: "DNI", DocumentNumber: "11222333"},
	"CL": {Currency: "CLP", DocumentType: "CI", DocumentNumber: "123456789"},
	"PE": {Currency: "PEN", DocumentType: "DNI", DocumentNumber: "12345678"},
	"EC": {Currency: "USD", DocumentType: "CI", DocumentNumber: "1710034065"},
	"PA": {Currency: "USD", DocumentType: "CIP", DocumentNumber: "8-123-4567"},
	"UY": {Currency: "UYU", DocumentType: "CI", DocumentNumber: "12345672"},
	"US": {Currency: "USD", DocumentType: "SSN", DocumentNumber: "123456789"},
}

// Resolve is a total lookup: unknown codes fall back to the home country's
// values rather than failing.
func Resolve(code string) Data {
	if data, ok := countryData[code]; ok {
		return data
	}
	return countryData[HomeCountry]
}

// Known reports whether a code has an explicit table entry.
func Known(code string) bool {
	_, ok := countryData[code]
	return ok
}
