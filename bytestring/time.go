package bytestring

import (
	"time"

	"github.com/cockroachdb/errors"
)

// TimeFormat selects the fields FormatTime renders.
type TimeFormat int

const (
	DateTime TimeFormat = iota // 2006-01-02 15:04:05
	Time                       // 15:04:05
	Date                       // 2006-01-02
)

// Breakdown splits seconds since the Unix epoch into calendar fields.
type Breakdown func(epoch int64) (year, month, day, hour, minute, second int)

// LocalBreakdown breaks epoch down in the local time zone.
func LocalBreakdown(epoch int64) (year, month, day, hour, minute, second int) {
	return breakdown(time.Unix(epoch, 0).Local())
}

// UTCBreakdown breaks epoch down in UTC.
func UTCBreakdown(epoch int64) (year, month, day, hour, minute, second int) {
	return breakdown(time.Unix(epoch, 0).UTC())
}

func breakdown(t time.Time) (year, month, day, hour, minute, second int) {
	return t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second()
}

// FormatTime renders epoch in local time.
func FormatTime(epoch int64, f TimeFormat) *String {
	return FormatTimeWith(LocalBreakdown, epoch, f)
}

// FormatTimeWith renders the fields b produces for epoch, zero-padded.
func FormatTimeWith(b Breakdown, epoch int64, f TimeFormat) *String {
	year, month, day, hour, minute, second := b(epoch)
	out := &String{}
	out.Reserve(len("2006-01-02 15:04:05"))

	field := func(v, width int) {
		out.Append(Number(v, 10).Padded(PadBeginning, width, '0', false).b)
	}
	date := func() {
		field(year, 4)
		out.AppendByte('-')
		field(month, 2)
		out.AppendByte('-')
		field(day, 2)
	}
	clock := func() {
		field(hour, 2)
		out.AppendByte(':')
		field(minute, 2)
		out.AppendByte(':')
		field(second, 2)
	}

	switch f {
	case DateTime:
		date()
		out.AppendByte(' ')
		clock()
	case Date:
		date()
	case Time:
		clock()
	default:
		panic(errors.AssertionFailedf("bytestring: unknown time format %d", f))
	}
	return out
}
