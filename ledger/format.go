package ledger

import (
	"fmt"
	"math"
	"strconv"
)

// FormatNTD renders an amount as thousands-grouped New Taiwan dollar text,
// e.g. 1234.5 becomes "NT$ 1,234.50". Whole amounts omit the decimals.
func FormatNTD(amount float64) string {
	cents := int64(math.Round(amount * 100))
	neg := cents < 0
	if neg {
		cents = -cents
	}

	s := groupThousands(cents / 100)
	if rem := cents % 100; rem != 0 {
		s += fmt.Sprintf(".%02d", rem)
	}
	if neg {
		return "-NT$ " + s
	}
	return "NT$ " + s
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
