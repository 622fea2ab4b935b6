package npi

// ValidChecksum verifies the Luhn check digit of a 10-digit NPI. The
// checksum is computed over the number prefixed with the card issuer
// identifier 80840, per the NPPES specification.
func ValidChecksum(number string) bool {
	if len(number) != 10 {
		return false
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return false
		}
	}

	full := "80840" + number
	sum := 0
	double := false
	for i := len(full) - 1; i >= 0; i-- {
		digit := int(full[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum%10 == 0
}
