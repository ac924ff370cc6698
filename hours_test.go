package ds1307

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestHoursIn24(t *testing.T) {
	c := qt.New(t)
	tests := []struct {
		in   Hours
		want uint8
	}{
		{H24(0), 0},
		{H24(12), 12},
		{H24(23), 23},
		{AM(12), 0}, // 12 AM is midnight
		{AM(1), 1},
		{AM(11), 11},
		{PM(12), 12}, // 12 PM is noon
		{PM(1), 13},
		{PM(11), 23},
	}
	for _, tt := range tests {
		c.Assert(tt.in.in24(), qt.Equals, tt.want)
	}
}

func TestDecodeHoursMasksModeBits(t *testing.T) {
	c := qt.New(t)
	// the AM/PM bit only means AM/PM when the 12-hour bit is set; in
	// 24-hour mode it is part of the BCD tens digit
	c.Assert(decodeHours(0b0010_0011), qt.Equals, H24(23))
	c.Assert(decodeHours(0b0100_1001), qt.Equals, AM(9))
	c.Assert(decodeHours(0b0110_1001), qt.Equals, PM(9))
}
