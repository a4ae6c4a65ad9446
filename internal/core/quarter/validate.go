package quarter

import (
	"strconv"
	"time"

	perr "housepricing/internal/platform/errors"
	ptime "housepricing/internal/platform/time"
)

const (
	msgMinYear    = "Invalid year! choose a year starting from 2009"
	msgFuture     = "Your date is out of range, please select a valid date"
	msgEndAfter   = "Ending value should be greater than starting value."
	msgRangeOrder = "Invalid range"
)

// CurrentQuarter is the quarter the price table treats as current for now:
// ceil(month/4) over months 1..12, which only ever yields 1, 2 or 3
func CurrentQuarter(now time.Time) int {
	return (int(now.Month()) + 3) / 4
}

// ValidateQuarter checks a year/quarter pair against the published window:
// not before MinYear and not after the current quarter
func ValidateQuarter(year, quarter int, now time.Time) error {
	if year == 0 || year < MinYear {
		return bounded(perr.ErrorCodeOutOfRange, msgMinYear, strconv.Itoa(year), strconv.Itoa(MinYear))
	}
	cy := now.Year()
	if year > cy {
		return bounded(perr.ErrorCodeFutureDate, msgFuture, strconv.Itoa(year), strconv.Itoa(cy))
	}
	if cq := CurrentQuarter(now); year == cy && quarter > cq {
		return bounded(perr.ErrorCodeFutureDate, msgFuture, Format(year, quarter), Format(cy, cq))
	}
	return nil
}

// ValidateEndAfterStart returns a check for an end candidate. It applies
// ValidateQuarter and then requires the candidate to be strictly after start
func ValidateEndAfterStart(start string) func(year, quarter int, now time.Time) error {
	return func(year, quarter int, now time.Time) error {
		if err := ValidateQuarter(year, quarter, now); err != nil {
			return err
		}
		if v := Format(year, quarter); !IsGreater(v, start) {
			return bounded(perr.ErrorCodeRangeOrder, msgEndAfter, v, start)
		}
		return nil
	}
}

// Validator binds the date checks to a clock
type Validator struct {
	clock ptime.Clock
}

// NewValidator returns a Validator reading "now" from c, or the wall clock when c is nil
func NewValidator(c ptime.Clock) Validator {
	return Validator{clock: ptime.OrSystem(c)}
}

// Now is the validator's notion of the current time
func (v Validator) Now() time.Time { return ptime.OrSystem(v.clock).Now() }

// Start validates a start candidate
func (v Validator) Start(year, quarter int) error {
	return ValidateQuarter(year, quarter, v.Now())
}

// End returns the check for an end candidate given the chosen start
func (v Validator) End(start string) func(year, quarter int) error {
	check := ValidateEndAfterStart(start)
	return func(year, quarter int) error { return check(year, quarter, v.Now()) }
}

// Range validates a start/end pair the way a submission does: each endpoint
// must parse and sit inside the published window (errors carry the field),
// then a start after the end blocks the whole submission
func (v Validator) Range(start, end string) error {
	s, err := Parse(start)
	if err != nil {
		return perr.WithField(err, "start")
	}
	e, err := Parse(end)
	if err != nil {
		return perr.WithField(err, "end")
	}
	if err := v.Start(s.Year, s.Quarter); err != nil {
		return perr.WithField(err, "start")
	}
	if err := ValidateQuarter(e.Year, e.Quarter, v.Now()); err != nil {
		return perr.WithField(err, "end")
	}
	if IsGreater(start, end) || e.Index() < s.Index() {
		return bounded(perr.ErrorCodeRangeOrder, msgRangeOrder, end, start)
	}
	return nil
}

func bounded(code perr.ErrorCode, msg, value, bound string) error {
	err := perr.New(code, msg)
	err = perr.WithMeta(err, "value", value)
	return perr.WithMeta(err, "bound", bound)
}
