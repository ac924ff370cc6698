package ds1307

import (
	"errors"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func TestNow(t *testing.T) {
	c := qt.New(t)
	// register reads in call order: seconds, minutes, hours, day, month,
	// year, all BCD
	bus, rtc := setup(0x05, 0x04, 0x15, 0x26, 0x08, 0x26)
	now, err := rtc.Now()
	c.Assert(err, qt.IsNil)
	c.Assert(now, qt.Equals, time.Date(2026, time.August, 26, 15, 4, 5, 0, time.UTC))
	c.Assert(bus.tx, qt.DeepEquals, []busTx{
		readOf(regSeconds),
		readOf(regMinutes),
		readOf(regHours),
		readOf(regDayOfMonth),
		readOf(regMonth),
		readOf(regYear),
	})
}

func TestNowConverts12HourMode(t *testing.T) {
	c := qt.New(t)
	// hours register reports 3 PM
	_, rtc := setup(0x05, 0x04, 0b0110_0011, 0x26, 0x08, 0x26)
	now, err := rtc.Now()
	c.Assert(err, qt.IsNil)
	c.Assert(now.Hour(), qt.Equals, 15)
}

func TestSet(t *testing.T) {
	c := qt.New(t)
	// one scripted read for the halt-bit-preserving seconds write
	bus, rtc := setup(0)
	err := rtc.Set(time.Date(2026, time.August, 26, 15, 4, 5, 0, time.UTC))
	c.Assert(err, qt.IsNil)
	c.Assert(bus.tx, qt.DeepEquals, []busTx{
		writeOf(regYear, 0x26),
		writeOf(regMonth, 0x08),
		writeOf(regDayOfMonth, 0x26),
		writeOf(regDayOfWeek, 4), // 2026-08-26 is a Wednesday
		writeOf(regHours, 0x15),  // always written in 24-hour form
		writeOf(regMinutes, 0x04),
		readOf(regSeconds),
		writeOf(regSeconds, 0x05),
	})
}

func TestSetTruncatesToSecond(t *testing.T) {
	c := qt.New(t)
	bus, rtc := setup(0)
	err := rtc.Set(time.Date(2026, time.August, 26, 15, 4, 5, 999_999_999, time.UTC))
	c.Assert(err, qt.IsNil)
	c.Assert(bus.tx[len(bus.tx)-1], qt.DeepEquals, writeOf(regSeconds, 0x05))
}

func TestSetRejectsOutOfCenturyYears(t *testing.T) {
	c := qt.New(t)
	for _, year := range []int{1999, 2100} {
		bus, rtc := setup()
		err := rtc.Set(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
		c.Assert(err, qt.ErrorIs, ErrInvalidInput)
		c.Assert(bus.tx, qt.HasLen, 0)
	}
}

func TestNowPropagatesBusError(t *testing.T) {
	c := qt.New(t)
	boom := errors.New("bus gone")
	bus, rtc := setup()
	bus.fail = boom
	_, err := rtc.Now()
	c.Assert(errors.Is(err, boom), qt.IsTrue)
}
