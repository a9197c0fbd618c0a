package personnummer

// checkDigit computes the Luhn check digit for a digit-only payload of
// year, month, day and serial number (9 digits). Digits at even offsets
// are doubled; doubled values above 9 have 9 subtracted.
func checkDigit(payload string) int {
	var sum int
	for i := 0; i < len(payload); i++ {
		digit := int(payload[i] - '0')
		if i%2 == 0 {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
	}
	return (10 - sum%10) % 10
}
