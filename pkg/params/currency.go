package params

import "strings"

// numericCurrencies maps ISO 4217 alphabetic codes to numeric codes for the
// currencies the gateway settles in.
var numericCurrencies = map[string]int{
	"ANG": 532,
	"AWG": 533,
	"BBD": 52,
	"BMD": 60,
	"BSD": 44,
	"BZD": 84,
	"CAD": 124,
	"DOP": 214,
	"EUR": 978,
	"GBP": 826,
	"GYD": 328,
	"HTG": 332,
	"JMD": 388,
	"KYD": 136,
	"SRD": 968,
	"TTD": 780,
	"USD": 840,
	"XCD": 951,
}

// NumericCurrency returns the ISO 4217 numeric code for an alphabetic code.
// The returned number carries no zero padding.
func NumericCurrency(alpha string) (int, bool) {
	n, ok := numericCurrencies[strings.ToUpper(strings.TrimSpace(alpha))]
	return n, ok
}
