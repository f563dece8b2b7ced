package booking

import "strings"

// Categories is the fixed service taxonomy. Services and bookings only
// ever carry one of these values.
var Categories = []string{
	"Maintenance",
	"Repair",
	"Cleaning",
	"Inspection",
	"Tire",
	"Rental",
	"Sales & Parts",
	"Emergency",
	"Customization",
	"Miscellaneous",
}

func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}

// CanonicalCategory maps a case-insensitive match back to the canonical
// spelling, or returns the input unchanged when there is none.
func CanonicalCategory(category string) string {
	for _, c := range Categories {
		if strings.EqualFold(c, category) {
			return c
		}
	}
	return category
}
