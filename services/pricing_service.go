package services

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/yahiasanji/spaceodysseybooking/models"
)

var (
	durationRangeRe  = regexp.MustCompile(`(\d+)\s*-\s*(\d+)\s*(day|month|year)s?`)
	durationSingleRe = regexp.MustCompile(`(\d+)\s*(day|month|year)s?`)
)

// TravelDays parses a human-readable travel duration ("3 days", "5 months",
// "5-6 years") into a day count. Ranges use the larger bound. Months count
// as 30 days and years as 365; this is an intentional approximation, not
// calendar math. Unrecognized input yields 0 days.
func TravelDays(duration string) int {
	text := strings.ToLower(strings.TrimSpace(duration))

	if strings.Contains(text, "-") {
		m := durationRangeRe.FindStringSubmatch(text)
		if m == nil {
			return 0
		}
		value, _ := strconv.Atoi(m[2]) // larger bound of the range
		return convertToDays(value, m[3])
	}

	m := durationSingleRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	value, _ := strconv.Atoi(m[1])
	return convertToDays(value, m[2])
}

func convertToDays(value int, unit string) int {
	switch unit {
	case "month":
		return value * 30
	case "year":
		return value * 365
	default: // day
		return value
	}
}

// ComputeTotal calculates the booking total:
// destination price + travel days * 2 * accommodation price per day * passengers.
// It is a pure function of its inputs.
func ComputeTotal(dest *models.Destination, acc *models.Accommodation, passengerCount int) float64 {
	travelDays := TravelDays(dest.TravelDuration)
	return dest.Price + float64(travelDays)*2*acc.PricePerDay*float64(passengerCount)
}

// PriceSentinel is displayed whenever no price can be computed, i.e. no
// destination or no resolvable accommodation is selected. It is a literal,
// not a formatted zero.
const PriceSentinel = "$0"

// FormatPrice renders an amount as "$12,300 USD"
func FormatPrice(amount float64) string {
	return fmt.Sprintf("$%s USD", formatAmount(amount))
}

func formatAmount(amount float64) string {
	neg := amount < 0
	amount = math.Abs(amount)

	whole := int64(amount)
	frac := amount - float64(whole)

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	out := b.String()
	if frac > 1e-9 {
		out += strconv.FormatFloat(frac, 'f', 2, 64)[1:] // ".xx"
	}
	if neg {
		out = "-" + out
	}
	return out
}
