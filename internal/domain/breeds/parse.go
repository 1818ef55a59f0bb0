package breeds

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

// LifeSpanLowerBound toma el entero inicial de life_span ("12 - 15" => 12). Sin número => 0.
func LifeSpanLowerBound(b Breed) int {
	return leadingInt(b.LifeSpan)
}

// WeightLowerBound toma el límite inferior del peso métrico ("3 - 5" => 3). Sin número => 0.
func WeightLowerBound(b Breed) float64 {
	lower, _, _ := strings.Cut(b.Weight.Metric, "-")
	return LeadingFloat(lower)
}

// leadingInt parsea el prefijo entero de s, ignorando espacios iniciales.
func leadingInt(s string) int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// LeadingFloat parsea el prefijo decimal más largo de s ("4.5kg" => 4.5). Sin número => 0.
func LeadingFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
		digits++
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && s[end] >= '0' && s[end] <= '9' {
			end++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	// exponente solo si trae dígitos
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		expDigits := exp
		for exp < len(s) && s[exp] >= '0' && s[exp] <= '9' {
			exp++
		}
		if exp > expDigits {
			end = exp
		}
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	return f
}

// formatOneDecimal redondea a un decimal con empate hacia arriba sobre el valor
// binario exacto (13.25 => "13.3").
func formatOneDecimal(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "0.0"
	}
	neg := x < 0
	v := new(big.Float).SetPrec(256).SetFloat64(math.Abs(x))
	v.Mul(v, big.NewFloat(10))
	v.Add(v, big.NewFloat(0.5))

	n, _ := v.Int(nil) // trunca == floor para positivos
	digits := n.String()
	if len(digits) < 2 {
		digits = strings.Repeat("0", 2-len(digits)) + digits
	}
	out := digits[:len(digits)-1] + "." + digits[len(digits)-1:]
	if neg && n.Sign() != 0 {
		out = "-" + out
	}
	return out
}
