// Package ds1307 implements a driver for the DS1307 Real-Time Clock (RTC), providing per-field read-write of the
// time and date registers. The DS1307 itself also has a square-wave output and 56 bytes of battery-backed RAM, but
// those features remain unimplemented, as does control of the clock-halt bit (it is preserved, never changed).
//
// Datasheet: https://datasheets.maximintegrated.com/en/ds/DS1307.pdf
package ds1307

import (
	"errors"

	"tinygo.org/x/drivers"
)

// ErrInvalidInput is returned by setters when the value does not fit the
// range representable by the target register. No bus transaction is issued
// in that case.
var ErrInvalidInput = errors.New("ds1307: value out of range")

// ErrInternal is reserved for invariant violations the driver itself should
// never produce. No current code path returns it.
var ErrInternal = errors.New("ds1307: internal error")

// BusError wraps a failure reported by the underlying I2C bus. The bus's own
// error is available through Unwrap.
type BusError struct {
	Err error
}

func (e *BusError) Error() string { return "ds1307: i2c: " + e.Err.Error() }

func (e *BusError) Unwrap() error { return e.Err }

// Device wraps an I2C connection to a DS1307. It holds no state beyond the
// bus: nothing is cached, every call talks to the chip. The seconds setter
// (and Set) issue read-then-write sequences, so a Device shared between
// goroutines needs external synchronization.
type Device struct {
	bus drivers.I2C
}

// New creates a new driver on the specified preconfigured I2C bus. The chip only supports 100 kHz.
func New(bus drivers.I2C) Device {
	return Device{bus: bus}
}

// Seconds reads the seconds (0-59). The clock-halt bit sharing the register
// is masked off before decoding.
func (d *Device) Seconds() (uint8, error) {
	data, err := d.readRegister(regSeconds)
	if err != nil {
		return 0, err
	}
	return bcdToDec(data &^ flagCH), nil
}

// SetSeconds sets the seconds (0-59).
func (d *Device) SetSeconds(seconds uint8) error {
	if seconds > 59 {
		return ErrInvalidInput
	}
	// the clock-halt bit lives in the same register and must survive the
	// write, so read it back first
	data, err := d.readRegister(regSeconds)
	if err != nil {
		return err
	}
	return d.writeRegister(regSeconds, data&flagCH|decToBcd(seconds))
}

// Minutes reads the minutes (0-59).
func (d *Device) Minutes() (uint8, error) {
	return d.readRegisterDecimal(regMinutes)
}

// SetMinutes sets the minutes (0-59).
func (d *Device) SetMinutes(minutes uint8) error {
	if minutes > 59 {
		return ErrInvalidInput
	}
	return d.writeRegisterDecimal(regMinutes, minutes)
}

// Hours reads the hour tagged with the 12/24-hour mode the chip is running in.
func (d *Device) Hours() (Hours, error) {
	data, err := d.readRegister(regHours)
	if err != nil {
		return Hours{}, err
	}
	return decodeHours(data), nil
}

// SetHours sets the hour and switches the chip's operating mode to the one
// the value is tagged with, 12-hour or 24-hour.
func (d *Device) SetHours(hours Hours) error {
	switch hours.Mode {
	case Mode24:
		if hours.Hour > 23 {
			return ErrInvalidInput
		}
		return d.writeRegisterDecimal(regHours, hours.Hour)
	case ModeAM:
		if hours.Hour < 1 || hours.Hour > 12 {
			return ErrInvalidInput
		}
		return d.writeRegister(regHours, flag12H|decToBcd(hours.Hour))
	case ModePM:
		if hours.Hour < 1 || hours.Hour > 12 {
			return ErrInvalidInput
		}
		return d.writeRegister(regHours, flag12H|flagPM|decToBcd(hours.Hour))
	}
	return ErrInvalidInput
}

// DayOfWeek reads the day of the week (1-7). The chip only increments it at
// midnight; which day is 1 is whatever convention the clock was set with.
func (d *Device) DayOfWeek() (uint8, error) {
	return d.readRegisterDecimal(regDayOfWeek)
}

// SetDayOfWeek sets the day of the week (1-7).
func (d *Device) SetDayOfWeek(dayOfWeek uint8) error {
	if dayOfWeek < 1 || dayOfWeek > 7 {
		return ErrInvalidInput
	}
	return d.writeRegister(regDayOfWeek, dayOfWeek)
}

// DayOfMonth reads the day of the month (1-31).
func (d *Device) DayOfMonth() (uint8, error) {
	return d.readRegisterDecimal(regDayOfMonth)
}

// SetDayOfMonth sets the day of the month (1-31). Whether the day exists in
// the current month is not checked, same as the chip itself.
func (d *Device) SetDayOfMonth(dayOfMonth uint8) error {
	if dayOfMonth < 1 || dayOfMonth > 31 {
		return ErrInvalidInput
	}
	return d.writeRegisterDecimal(regDayOfMonth, dayOfMonth)
}

// Month reads the month (1-12).
func (d *Device) Month() (uint8, error) {
	return d.readRegisterDecimal(regMonth)
}

// SetMonth sets the month (1-12).
func (d *Device) SetMonth(month uint8) error {
	if month < 1 || month > 12 {
		return ErrInvalidInput
	}
	return d.writeRegisterDecimal(regMonth, month)
}

// Year reads the year (2000-2099). The chip stores only the two low digits;
// the century is fixed at 2000.
func (d *Device) Year() (uint16, error) {
	year, err := d.readRegisterDecimal(regYear)
	if err != nil {
		return 0, err
	}
	return 2000 + uint16(year), nil
}

// SetYear sets the year (2000-2099).
func (d *Device) SetYear(year uint16) error {
	if year < 2000 || year > 2099 {
		return ErrInvalidInput
	}
	return d.writeRegisterDecimal(regYear, uint8(year-2000))
}

func (d *Device) readRegisterDecimal(reg uint8) (uint8, error) {
	data, err := d.readRegister(reg)
	if err != nil {
		return 0, err
	}
	return bcdToDec(data), nil
}

func (d *Device) writeRegisterDecimal(reg, value uint8) error {
	return d.writeRegister(reg, decToBcd(value))
}

func (d *Device) readRegister(reg uint8) (uint8, error) {
	buf := [1]byte{}
	if err := d.bus.ReadRegister(Address, reg, buf[:]); err != nil {
		return 0, &BusError{Err: err}
	}
	return buf[0], nil
}

func (d *Device) writeRegister(reg, data uint8) error {
	buf := [1]byte{data}
	if err := d.bus.WriteRegister(Address, reg, buf[:]); err != nil {
		return &BusError{Err: err}
	}
	return nil
}

// decToBcd packs a decimal value into BCD, tens digit in the high nibble.
// Values above 99 overflow the high nibble without being flagged; the
// setters never pass one.
func decToBcd(dec uint8) uint8 {
	return (dec/10)<<4 | dec%10
}

// bcdToDec unpacks a BCD byte. There is deliberately no nibble range check,
// matching the chip: a nibble above 9 decodes to a wrong but plausible
// number rather than an error.
func bcdToDec(bcd uint8) uint8 {
	return (bcd>>4)*10 + bcd&0xF
}
