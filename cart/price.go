package cart

import "strconv"

// ParsePrice converts a backend price string to a number. Prices arrive in
// currency notation ("150.00 ر.س", "1,299.00"); everything that is not an
// ASCII digit or a decimal point is stripped before parsing. A string with
// nothing parsable left contributes 0 rather than an error, so a single bad
// price can never poison a cart total.
func ParsePrice(price string) float64 {
	cleaned := make([]byte, 0, len(price))
	for i := 0; i < len(price); i++ {
		c := price[i]
		if (c >= '0' && c <= '9') || c == '.' {
			cleaned = append(cleaned, c)
		}
	}
	if len(cleaned) == 0 {
		return 0
	}
	val, err := strconv.ParseFloat(string(cleaned), 64)
	if err != nil {
		return 0
	}
	return val
}
