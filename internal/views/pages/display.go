package pages

import (
	"fmt"
	"strings"
)

// DefaultDash returns an em dash when the provided value is empty or whitespace.
func DefaultDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "—"
	}
	return value
}

// ProductLabel converts a stored product code into a display name.
func ProductLabel(product string) string {
	switch strings.ToLower(strings.TrimSpace(product)) {
	case "diesel":
		return "Diesel"
	case "gasoline":
		return "Gasoline"
	case "jet-a":
		return "Jet A"
	case "lubricant":
		return "Lubricant"
	default:
		return DefaultDash(product)
	}
}

// DeliveryStatusLabel converts a stored delivery status into a display name.
func DeliveryStatusLabel(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "scheduled":
		return "Scheduled"
	case "in_transit":
		return "In transit"
	case "delivered":
		return "Delivered"
	case "cancelled":
		return "Cancelled"
	default:
		return DefaultDash(status)
	}
}

// FormatLiters renders a litre volume with thousands separators.
func FormatLiters(liters float64) string {
	whole := int64(liters)
	sign := ""
	if whole < 0 {
		sign = "-"
		whole = -whole
	}

	digits := fmt.Sprintf("%d", whole)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	return sign + strings.Join(groups, ",") + " L"
}

// FormatPercent renders a percentage with a single decimal place.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}
