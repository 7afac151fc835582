// Package pricing holds the fee and family-category rules for a
// registration. Everything here is a pure function over the adult and
// kid counts.
package pricing

// Per-participant fee in whole dollars. Adults and kids are charged the
// same rate.
const (
	AdultPrice = 20
	KidPrice   = 20
)

// DefaultShirtSize is assigned to every participant until they pick one.
const DefaultShirtSize = "M"

// ShirtSizes lists the selectable sizes in display order.
var ShirtSizes = []string{"XS", "S", "M", "L", "XL", "XXL"}

// Family category labels. The bucketing only looks at the kid count;
// adult count never changes the label as long as at least one adult is
// present. That asymmetry is the business rule, not an oversight.
const (
	CategoryNoKids       = "One Family, No Kids"
	CategoryOneKid       = "One Family, One Kid"
	CategoryTwoKids      = "One Family, Two Kids"
	CategoryMultipleKids = "One Family, Multiple Kids"
	CategoryCustom       = "Custom Case"
)

func Category(adultCount, kidsCount int) string {
	if adultCount < 1 {
		return CategoryCustom
	}
	switch {
	case kidsCount == 0:
		return CategoryNoKids
	case kidsCount == 2:
		return CategoryTwoKids
	case kidsCount > 2:
		return CategoryMultipleKids
	default:
		return CategoryOneKid
	}
}

func Total(adultCount, kidsCount int) int64 {
	return int64(adultCount)*AdultPrice + int64(kidsCount)*KidPrice
}

// ResizeShirtSizes returns a size list of length adultCount+kidsCount.
// Sizes already chosen at lower indices are kept; new slots get the
// default size.
func ResizeShirtSizes(sizes []string, adultCount, kidsCount int) []string {
	resized := make([]string, adultCount+kidsCount)
	for i := range resized {
		if i < len(sizes) && sizes[i] != "" {
			resized[i] = sizes[i]
		} else {
			resized[i] = DefaultShirtSize
		}
	}
	return resized
}

// ValidShirtSize reports whether size is one of the selectable sizes.
func ValidShirtSize(size string) bool {
	for _, s := range ShirtSizes {
		if s == size {
			return true
		}
	}
	return false
}
