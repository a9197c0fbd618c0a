package personnummer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"pnrcheck/internal/constants"
)

// candidate holds the fields sliced out of one raw input. It never outlives
// the Valid call that produced it.
type candidate struct {
	century  string
	year     int
	month    int
	day      int
	serial   int
	check    int
	hasCheck bool
	payload  string
}

// Valid reports whether pnr is a correct Swedish personnummer: the input
// matches the fixed 10/12-digit shape, the Luhn check digit matches, and the
// date exists in the calendar. Coordination numbers (day offset by 60) are
// accepted. Every failure collapses to false.
func Valid(pnr string) bool {
	c, ok := parse(pnr)
	if !ok || !c.hasCheck {
		return false
	}
	if checkDigit(c.payload) != c.check {
		return false
	}
	return validDate(c.year, c.month, c.day)
}

// ValidInt renders pnr as decimal text and delegates to Valid. Leading zeros
// are not preserved, so numbers whose written form starts with a zero must
// use the string form.
func ValidInt(pnr int64) bool {
	return Valid(strconv.FormatInt(pnr, 10))
}

// parse slices pnr against the grammar
// [century(2)]? year(2) month(2) day(2) [sep '-'|'+']? serial(3) [check(1)]?
// and returns a well-formed candidate or false. Century digits are captured
// but not used by checksum or date math.
func parse(pnr string) (candidate, bool) {
	var c candidate

	date, block := "", ""
	if i := strings.IndexAny(pnr, "-+"); i >= 0 {
		date, block = pnr[:i], pnr[i+1:]
		if strings.ContainsAny(block, "-+") {
			return c, false
		}
	} else {
		switch len(pnr) {
		case 9, 10:
			date, block = pnr[:6], pnr[6:]
		case 11, 12:
			date, block = pnr[:8], pnr[8:]
		default:
			return c, false
		}
	}

	if len(date) != 6 && len(date) != 8 {
		return c, false
	}
	if len(block) != 3 && len(block) != 4 {
		return c, false
	}
	if !digitsOnly(date) || !digitsOnly(block) {
		return c, false
	}

	if len(date) == 8 {
		c.century = date[:2]
		date = date[2:]
	}

	serial := block[:3]
	if serial == constants.ExcludedSerial {
		return c, false
	}

	var err error
	if c.year, err = strconv.Atoi(date[0:2]); err != nil {
		return c, false
	}
	if c.month, err = strconv.Atoi(date[2:4]); err != nil {
		return c, false
	}
	if c.day, err = strconv.Atoi(date[4:6]); err != nil {
		return c, false
	}
	if c.serial, err = strconv.Atoi(serial); err != nil {
		return c, false
	}
	if len(block) == 4 {
		if c.check, err = strconv.Atoi(block[3:]); err != nil {
			return c, false
		}
		c.hasCheck = true
	}

	c.payload = date + serial
	return c, true
}

func validDate(year, month, day int) bool {
	if day > constants.CoordinationOffset {
		day -= constants.CoordinationOffset
	}
	_, err := time.Parse(constants.DateLayout, fmt.Sprintf("%02d%02d%02d", year, month, day))
	return err == nil
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
