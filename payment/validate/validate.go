// Package validate holds the card parameter checks used when constructing
// payment parameters. All functions are pure and safe for concurrent use;
// they are exported so host applications can run them independently, e.g.
// for live form validation in a UI.
package validate

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	minNumberDigits = 10
	maxNumberDigits = 19
)

// IsHolderValid reports whether the card holder name is filled with
// sufficient data: more than 3 and fewer than 128 characters.
func IsHolderValid(holder string) bool {
	n := utf8.RuneCountInString(holder)
	return n > 3 && n < 128
}

// IsNumberValid reports whether the card number consists of 10-19 digits
// after stripping spaces and dashes, and, when luhnCheck is set, passes the
// Luhn test. The input itself is not modified; normalization is internal.
func IsNumberValid(number string, luhnCheck bool) bool {
	n := NormalizeNumber(number)
	if !IsDigits(n) {
		return false
	}
	if l := len(n); l < minNumberDigits || l > maxNumberDigits {
		return false
	}
	if luhnCheck && !luhnOK(n) {
		return false
	}
	return true
}

// IsExpiryMonthValid reports whether the expiry month is in the format MM,
// i.e. exactly two digits forming a value 01..12.
func IsExpiryMonthValid(expiryMonth string) bool {
	if len(expiryMonth) != 2 || !IsDigits(expiryMonth) {
		return false
	}
	mm := int(expiryMonth[0]-'0')*10 + int(expiryMonth[1]-'0')
	return mm >= 1 && mm <= 12
}

// IsExpiryYearValid reports whether the expiry year is in the format YYYY,
// i.e. exactly four digits.
func IsExpiryYearValid(expiryYear string) bool {
	return len(expiryYear) == 4 && IsDigits(expiryYear)
}

// IsCountryCodeValid reports whether the country code is non-empty and
// contains digits only.
func IsCountryCodeValid(countryCode string) bool {
	return countryCode != "" && IsDigits(countryCode)
}

// IsMobilePhoneValid reports whether the mobile phone number is non-empty
// and contains digits only.
func IsMobilePhoneValid(mobilePhone string) bool {
	return mobilePhone != "" && IsDigits(mobilePhone)
}

// IsCvvValid reports whether the CVV is a 3 or 4 digit number.
func IsCvvValid(cvv string) bool {
	if !IsDigits(cvv) {
		return false
	}
	l := len(cvv)
	return l == 3 || l == 4
}

// IsExpired reports whether the given expiry month and year lie strictly
// before the current calendar month. It returns false when either value is
// blank, since the expiry cannot be determined.
func IsExpired(expiryMonth, expiryYear string) bool {
	return isExpiredAt(expiryMonth, expiryYear, time.Now())
}

func isExpiredAt(expiryMonth, expiryYear string, now time.Time) bool {
	if strings.TrimSpace(expiryMonth) == "" || strings.TrimSpace(expiryYear) == "" {
		return false
	}
	month, err := strconv.Atoi(expiryMonth)
	if err != nil {
		return false
	}
	year, err := strconv.Atoi(expiryYear)
	if err != nil {
		return false
	}
	if year != now.Year() {
		return year < now.Year()
	}
	return month < int(now.Month())
}

// NormalizeNumber strips spaces and dashes from a card number and returns
// the remaining string. It does not verify that the result is numeric.
func NormalizeNumber(number string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-':
			return -1
		default:
			return r
		}
	}, number)
}

// IsDigits reports whether every byte of s is an ASCII digit. The empty
// string passes; callers pair it with a length or non-empty check.
func IsDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// luhnOK runs the Luhn checksum over a digits-only string: every second
// digit from the rightmost is doubled, digits above 9 have 9 subtracted,
// and the total must be divisible by 10.
func luhnOK(digits string) bool {
	sum, dbl := 0, false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if dbl {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		dbl = !dbl
	}
	return sum%10 == 0
}
