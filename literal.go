package skemats

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// identifierPattern matches keys that may be written without quotes.
var identifierPattern = regexp.MustCompile(`^[\p{L}_$][\p{L}\p{N}_$]*$`)

// quoteKey returns key unchanged when it is a valid identifier, otherwise a
// single-quoted string literal.
func quoteKey(key string) string {
	if identifierPattern.MatchString(key) {
		return key
	}
	return quoteString(key)
}

var singleQuoteEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// quoteString renders s as a single-quoted string literal.
func quoteString(s string) string {
	return "'" + singleQuoteEscaper.Replace(s) + "'"
}

var templateEscaper = strings.NewReplacer(`\`, `\\`, "`", "\\`", "${", "\\${")

// escapeTemplate escapes s for use between backticks.
func escapeTemplate(s string) string {
	return templateEscaper.Replace(s)
}

// literalType renders a literal value as a type. Strings are quoted; other
// scalars use their literal type spelling. NaN and the infinities have no
// literal type and widen to number.
func literalType(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return quoteString(t), true
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return "number", true
		}
	case float32:
		if f := float64(t); math.IsNaN(f) || math.IsInf(f, 0) {
			return "number", true
		}
	}
	return scalarString(v, "undefined", "n")
}

// scalarString stringifies a non-string scalar. undef is the spelling used
// for Undefined and bigSuffix is appended to *big.Int values ("n" for
// literal types, empty for interpolation).
func scalarString(v any, undef, bigSuffix string) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "null", true
	case undefinedValue:
		return undef, true
	case bool:
		return strconv.FormatBool(t), true
	case int:
		return strconv.FormatInt(int64(t), 10), true
	case int8:
		return strconv.FormatInt(int64(t), 10), true
	case int16:
		return strconv.FormatInt(int64(t), 10), true
	case int32:
		return strconv.FormatInt(int64(t), 10), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case uint:
		return strconv.FormatUint(uint64(t), 10), true
	case uint8:
		return strconv.FormatUint(uint64(t), 10), true
	case uint16:
		return strconv.FormatUint(uint64(t), 10), true
	case uint32:
		return strconv.FormatUint(uint64(t), 10), true
	case uint64:
		return strconv.FormatUint(t, 10), true
	case float32:
		return formatFloat(float64(t), 32), true
	case float64:
		return formatFloat(t, 64), true
	case *big.Int:
		if t == nil {
			return "null", true
		}
		return t.String() + bigSuffix, true
	}
	return "", false
}

// formatFloat spells f the way JavaScript's Number#toString does: plain
// digits for decimal exponents between -7 and 21 (exclusive), exponent form
// otherwise.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	sign := ""
	if f < 0 {
		sign, f = "-", -f
	}
	// d.ddde±XX
	e := strconv.FormatFloat(f, 'e', -1, bitSize)
	mant, exp, _ := strings.Cut(e, "e")
	digits := strings.Replace(mant, ".", "", 1)
	x, _ := strconv.Atoi(exp)
	n, k := x+1, len(digits)
	switch {
	case k <= n && n <= 21:
		return sign + digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return sign + digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return sign + "0." + strings.Repeat("0", -n) + digits
	}
	expSign := "+"
	if n-1 < 0 {
		expSign = "-"
	}
	out := digits[:1]
	if k > 1 {
		out += "." + digits[1:]
	}
	return sign + out + "e" + expSign + strconv.Itoa(abs(n-1))
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
