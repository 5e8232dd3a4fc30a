package generator

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"order-datagen/internal/models"
)

// Mode selects how order dates are spread over the window
type Mode string

const (
	ModeUniform Mode = "uniform"
	ModeRecent  Mode = "recent"
)

// recentBias is the exponent applied to the uniform draw in ModeRecent.
// Values below 1 push mass toward the end of the window.
const recentBias = 0.35

// PaymentGrace is how far past the window end a payment date may land
const PaymentGrace = 14 * 24 * time.Hour

var ErrUnknownMode = errors.New("unknown date distribution")

// ParseMode accepts the english names and the legacy portuguese ones.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "uniform", "uniforme":
		return ModeUniform, nil
	case "recent", "recente":
		return ModeRecent, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Window is an inclusive time range
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Validate() error {
	if w.End.Before(w.Start) {
		return &models.InvalidRangeError{Start: w.Start, End: w.End}
	}
	return nil
}

// Sample draws one instant in [start, end], rounded to the nearest
// microsecond. It consumes exactly one Float64 from src.
func Sample(src Source, start, end time.Time, mode Mode) (time.Time, error) {
	if end.Before(start) {
		return time.Time{}, &models.InvalidRangeError{Start: start, End: end}
	}
	if mode != ModeUniform && mode != ModeRecent {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	u := src.Float64()
	if mode == ModeRecent {
		u = math.Pow(u, recentBias)
	}

	// microseconds so windows longer than a time.Duration still map fully
	startUS, endUS := start.UnixMicro(), end.UnixMicro()
	span := endUS - startUS
	offset := int64(math.Round(float64(span) * u))
	offset = min(max(offset, 0), span)

	at := time.UnixMicro(startUS + offset).In(start.Location())
	if at.Before(start) {
		return start, nil
	}
	return at, nil
}

// PaymentDate offsets the order date by delayDays and clamps the result to
// [order, windowEnd+PaymentGrace].
func PaymentDate(order time.Time, delayDays int, windowEnd time.Time) time.Time {
	paid := order.Add(time.Duration(delayDays) * 24 * time.Hour)
	if limit := windowEnd.Add(PaymentGrace); paid.After(limit) {
		paid = limit
	}
	if paid.Before(order) {
		paid = order
	}
	return paid
}

// FormatTimestamp renders t in UTC as ISO-8601 with a +00:00 offset, adding
// microseconds only when they are non-zero.
func FormatTimestamp(t time.Time) string {
	t = t.UTC()
	if t.Nanosecond()/int(time.Microsecond) != 0 {
		return t.Format("2006-01-02T15:04:05.000000-07:00")
	}
	return t.Format("2006-01-02T15:04:05-07:00")
}
