package ds1307

import "time"

// Now reads the current time, accurate to the nearest second, in UTC. Each
// field is read in its own bus transaction; the weekday register is skipped
// because time.Date derives it from the date.
func (d *Device) Now() (time.Time, error) {
	seconds, err := d.Seconds()
	if err != nil {
		return time.Time{}, err
	}
	minutes, err := d.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	hours, err := d.Hours()
	if err != nil {
		return time.Time{}, err
	}
	day, err := d.DayOfMonth()
	if err != nil {
		return time.Time{}, err
	}
	month, err := d.Month()
	if err != nil {
		return time.Time{}, err
	}
	year, err := d.Year()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(int(year), time.Month(month), int(day),
		int(hours.in24()), int(minutes), int(seconds), 0, time.UTC), nil
}

// Set writes t to the clock, truncated to the second, switching the chip to
// 24-hour mode. The chip stores no century, so t must fall in 2000-2099.
//
// One register is written per bus transaction, so a transport failure
// partway through leaves the registers written so far updated.
func (d *Device) Set(t time.Time) error {
	t = t.UTC()
	if t.Year() < 2000 || t.Year() > 2099 {
		return ErrInvalidInput
	}
	if err := d.SetYear(uint16(t.Year())); err != nil {
		return err
	}
	if err := d.SetMonth(uint8(t.Month())); err != nil {
		return err
	}
	if err := d.SetDayOfMonth(uint8(t.Day())); err != nil {
		return err
	}
	// time.Weekday counts from Sunday=0, the chip from 1
	if err := d.SetDayOfWeek(uint8(t.Weekday()) + 1); err != nil {
		return err
	}
	if err := d.SetHours(H24(uint8(t.Hour()))); err != nil {
		return err
	}
	if err := d.SetMinutes(uint8(t.Minute())); err != nil {
		return err
	}
	return d.SetSeconds(uint8(t.Second()))
}
