package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatUGX renders an integer shilling amount with thousand separators.
func FormatUGX(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%sUGX %s", sign, formatThousand(amount))
}

// FormatUSD keeps the two-decimal display convention for the secondary currency.
func FormatUSD(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
