package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/langowen/converter/internal/entities"
	"github.com/shopspring/decimal"
)

const (
	listHeader    = "Code\tCurrency Name\t\tRate per USD\n"
	listSeparator = "----\t-------------\t\t-----------\n"
	listRow       = "%-4s\t%-20s\t%-10.4f\n"
)

// exactDigits is enough fractional digits to print any float64 exactly.
const exactDigits = 1074

// FormatAmount renders v with comma-grouped thousands and exactly two
// decimals, rounding the exact binary value half to even.
func FormatAmount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("%.2f", v)
	}

	exact, err := decimal.NewFromString(strconv.FormatFloat(v, 'f', exactDigits, 64))
	if err != nil {
		return fmt.Sprintf("%.2f", v)
	}

	s := exact.RoundBank(2).StringFixed(2)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if s == "0.00" {
		sign = ""
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	return sign + groupThousands(intPart) + "." + fracPart
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}

// FormatRate renders a unit exchange rate with six decimals.
func FormatRate(v float64) string {
	return fmt.Sprintf("%.6f", v)
}

// FormatRateRow renders one fixed-width line of the currency listing.
func FormatRateRow(r entities.CurrencyRate) string {
	return fmt.Sprintf(listRow, r.Code, r.Name, r.Rate)
}
