package ds1307

// HourMode says which clock format an Hours value is expressed in. The chip
// stores the mode in the hours register itself, so the mode written last is
// the mode the chip keeps counting in.
type HourMode uint8

const (
	Mode24 HourMode = iota // 24-hour format, 0-23
	ModeAM                 // 12-hour format, 1-12, before noon
	ModePM                 // 12-hour format, 1-12, noon and after
)

// Hours is an hour-of-day tagged with its clock format.
type Hours struct {
	Mode HourMode
	Hour uint8
}

// H24 builds a 24-hour format hour (0-23).
func H24(hour uint8) Hours { return Hours{Mode: Mode24, Hour: hour} }

// AM builds a 12-hour format morning hour (1-12).
func AM(hour uint8) Hours { return Hours{Mode: ModeAM, Hour: hour} }

// PM builds a 12-hour format afternoon hour (1-12).
func PM(hour uint8) Hours { return Hours{Mode: ModePM, Hour: hour} }

// decodeHours interprets a raw hours register byte. The 12/24 bit gates
// whether the AM/PM bit means anything at all.
func decodeHours(data uint8) Hours {
	if data&flag12H == 0 {
		return H24(bcdToDec(data &^ flag12H))
	}
	if data&flagPM == 0 {
		return AM(bcdToDec(data &^ (flag12H | flagPM)))
	}
	return PM(bcdToDec(data &^ (flag12H | flagPM)))
}

// in24 converts to the 24-hour clock: 12 AM is 0, 12 PM is 12.
func (h Hours) in24() uint8 {
	switch h.Mode {
	case ModeAM:
		if h.Hour == 12 {
			return 0
		}
		return h.Hour
	case ModePM:
		if h.Hour == 12 {
			return 12
		}
		return h.Hour + 12
	}
	return h.Hour
}
