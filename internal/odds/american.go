// Package odds converts American-format odds into decimal multipliers.
package odds

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// americanPattern is the literal shape of valid input: an optional sign
// followed by digits. "1.5" and "+-150" are rejected before parsing.
var americanPattern = regexp.MustCompile(`^[+-]?\d+$`)

// AmericanToDecimal converts an American odds string to decimal odds.
// American +150 → Decimal 2.50
// American -200 → Decimal 1.50
// Zero and non-integer input are invalid. Valid results are always > 1.0.
func AmericanToDecimal(american string) (float64, error) {
	american = strings.TrimSpace(american)
	if !americanPattern.MatchString(american) {
		return 0, fmt.Errorf("invalid American odds %q: must be an optionally signed integer", american)
	}

	v, err := strconv.Atoi(american)
	if err != nil {
		return 0, fmt.Errorf("invalid American odds %q: %w", american, err)
	}
	if v == 0 {
		return 0, fmt.Errorf("invalid American odds: cannot be 0")
	}

	var decimal float64
	if v > 0 {
		decimal = (float64(v) / 100.0) + 1.0
	} else {
		// math.Abs instead of -v: negating MinInt64 overflows back to
		// itself.
		decimal = (100.0 / math.Abs(float64(v))) + 1.0
	}
	if decimal <= 1.0 {
		return 0, fmt.Errorf("invalid American odds %q: does not convert to decimal odds above 1.0", american)
	}
	return decimal, nil
}
