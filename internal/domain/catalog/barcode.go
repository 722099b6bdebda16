package catalog

import (
	"fmt"
	"math/rand"
)

// BarcodePrefix is the fixed issuer prefix for internally generated barcodes.
// The 200-299 range is reserved by GS1 for in-store use.
const BarcodePrefix = "200"

// BarcodeLength is the length of a full EAN-13 code
const BarcodeLength = 13

// GenerateBarcode produces a random EAN-13 code: the fixed prefix, nine
// random decimal digits and the checksum digit. It does not check the
// store for collisions; callers must verify uniqueness and regenerate.
func GenerateBarcode() string {
	body := fmt.Sprintf("%s%09d", BarcodePrefix, rand.Intn(1_000_000_000))
	return body + string(rune('0'+ean13Checksum(body)))
}

// ean13Checksum computes the EAN-13 check digit over the first 12 digits.
// Weights alternate 1 and 3 starting from position 0.
func ean13Checksum(digits string) int {
	sum := 0
	for i, r := range digits {
		d := int(r - '0')
		if i%2 == 1 {
			d *= 3
		}
		sum += d
	}
	return (10 - sum%10) % 10
}

// ValidateBarcode reports whether code is a checksum-valid EAN-13 code
func ValidateBarcode(code string) bool {
	if len(code) != BarcodeLength {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return ean13Checksum(code[:12]) == int(code[12]-'0')
}
