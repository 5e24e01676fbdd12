package snapshot

import (
	"fmt"
	"math/big"
	"strings"
)

// NormalizeCurrency turns a typed monetary value ("R$ 1.234,56", "1234.5",
// ".5") into a plain decimal string. Values with a fraction get exactly two
// fraction digits, integers stay integers and anything equal to zero becomes "0".
func NormalizeCurrency(in string) string {
	s := canonicalDecimal(keepCurrencyChars(in))
	if s == "" || s == "." {
		return "0"
	}
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}

	intPart, frac, _ := strings.Cut(s, ".")
	if intPart == "" {
		intPart = "0"
	}
	n, ok := new(big.Int).SetString(intPart, 10)
	if !ok {
		return "0"
	}

	if frac == "" {
		if n.Sign() == 0 {
			return "0"
		}
		return n.String()
	}

	padded := frac + "00"
	cents := new(big.Int).Mul(n, big.NewInt(100))
	cents.Add(cents, big.NewInt(int64((padded[0]-'0')*10+(padded[1]-'0'))))
	if len(frac) > 2 && frac[2] >= '5' {
		cents.Add(cents, big.NewInt(1))
	}
	if cents.Sign() == 0 {
		return "0"
	}

	whole, rest := new(big.Int).QuoRem(cents, big.NewInt(100), new(big.Int))
	return fmt.Sprintf("%s.%02d", whole.String(), rest.Int64())
}

// FormatCurrency renders a normalized decimal with "." as thousands separator
// and "," as decimal separator. Zero and empty values render as "".
func FormatCurrency(value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	normalized := NormalizeCurrency(value)
	if normalized == "0" {
		return ""
	}

	intPart, frac, _ := strings.Cut(normalized, ".")
	frac = (frac + "00")[:2]
	return groupThousands(intPart) + "," + frac
}

func keepCurrencyChars(in string) string {
	var b strings.Builder
	for _, r := range in {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// canonicalDecimal rewrites separators so that at most one "." remains and
// it marks the decimal position.
func canonicalDecimal(s string) string {
	commas := strings.Count(s, ",")
	dots := strings.Count(s, ".")

	switch {
	case commas > 0 && dots > 0:
		s = strings.ReplaceAll(s, ".", "")
		last := strings.LastIndex(s, ",")
		s = strings.ReplaceAll(s[:last], ",", "") + "." + s[last+1:]
	case commas == 1:
		s = strings.Replace(s, ",", ".", 1)
	case commas > 1:
		s = strings.ReplaceAll(s, ",", "")
	case dots > 1:
		s = strings.ReplaceAll(s, ".", "")
	}
	return s
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
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
