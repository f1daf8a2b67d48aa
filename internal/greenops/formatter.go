package greenops

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer groups thousands the way the English locale does.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators: 91250 -> "91,250".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat rounds f to precision decimals and groups thousands.
// Trailing zeros are kept: FormatFloat(1234.5, 2) -> "1,234.50".
func FormatFloat(f float64, precision int) string {
	if precision <= 0 {
		r := math.Round(f)
		if r == 0 {
			r = 0 // drop negative zero
		}
		return groupInt(strconv.FormatFloat(r, 'f', 0, 64))
	}
	formatted := strconv.FormatFloat(f, 'f', precision, 64)
	intPart, fracPart, _ := strings.Cut(formatted, ".")
	return groupInt(intPart) + "." + fracPart
}

// FormatDistance groups thousands and shows decimals only when present,
// so 91250 -> "91,250" and 1234.5 -> "1,234.5". Values beyond the int64
// range keep every digit: 1e19 -> "10,000,000,000,000,000,000".
func FormatDistance(km float64) string {
	if km == math.Trunc(km) {
		return groupInt(strconv.FormatFloat(km, 'f', -1, 64))
	}
	return FormatFloat(km, decimalsOf(km))
}

// groupInt adds thousand separators to a decimal integer string. Strings
// that are not plain integers (Inf, NaN) are returned unchanged.
func groupInt(s string) string {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		grouped := FormatNumber(n)
		if n == 0 && strings.HasPrefix(s, "-") {
			grouped = "-" + grouped
		}
		return grouped
	}

	sign, digits := "", s
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	if digits == "" || strings.Trim(digits, "0123456789") != "" {
		return s
	}

	const group = 3
	var sb strings.Builder
	sb.WriteString(sign)
	head := len(digits) % group
	if head == 0 {
		head = group
	}
	sb.WriteString(digits[:head])
	for i := head; i < len(digits); i += group {
		sb.WriteByte(',')
		sb.WriteString(digits[i : i+group])
	}
	return sb.String()
}

// FormatKg renders a CO2 figure as the service sent it, with no grouping
// and no padding: 5000 -> "5000", 4321.25 -> "4321.25".
func FormatKg(kg float64) string {
	return strconv.FormatFloat(kg, 'f', -1, 64)
}

// decimalsOf returns how many decimals the shortest representation of f has, capped at 2.
func decimalsOf(f float64) int {
	const maxDecimals = 2
	_, frac, found := strings.Cut(strconv.FormatFloat(f, 'f', -1, 64), ".")
	if !found {
		return 0
	}
	return min(len(frac), maxDecimals)
}

// FormatLarge abbreviates values of a million or more ("~1.5 billion") and
// groups smaller ones.
func FormatLarge(n float64) string {
	switch {
	case n >= BillionThreshold:
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	case n >= LargeNumberThreshold:
		return fmt.Sprintf("~%.1f million", n/LargeNumberThreshold)
	default:
		return FormatNumber(int64(math.Round(n)))
	}
}
