package ds1307

// Address is the I2C address of the DS1307. It is fixed by the chip and used
// for every transaction.
const Address uint8 = 0x68

const (
	regSeconds    uint8 = 0x00 // BCD seconds, bit 7 is the clock-halt bit
	regMinutes    uint8 = 0x01 // BCD minutes
	regHours      uint8 = 0x02 // BCD hours plus the 12/24 and AM/PM bits
	regDayOfWeek  uint8 = 0x03 // raw 1-7, a single digit needs no BCD
	regDayOfMonth uint8 = 0x04 // BCD 1-31
	regMonth      uint8 = 0x05 // BCD 1-12
	regYear       uint8 = 0x06 // BCD 0-99, offset from 2000
)

const (
	flagCH  uint8 = 1 << 7 // clock halt, owned by the chip
	flag12H uint8 = 1 << 6 // 0 = 24-hour mode, 1 = 12-hour mode
	flagPM  uint8 = 1 << 5 // AM (0) or PM (1), only meaningful in 12-hour mode
)
