package system

import "encoding/binary"

// Linux input-event-codes.h
const (
	evKey  = 0x01
	keyEsc = 1
	keyQ   = 16
	keyF4  = 62
)

// ExitKeys are the key codes that end the display.
var ExitKeys = map[uint16]string{keyEsc: "Escape", keyQ: "Q", keyF4: "F4"}

// findExitKey scans buf as a sequence of input_event records of
// eventSize bytes, each starting with a timeval of tvSize bytes, and
// returns the first exit key pressed.
func findExitKey(buf []byte, tvSize, eventSize int) (string, bool) {
	for off := 0; off+eventSize <= len(buf); off += eventSize {
		rec := buf[off : off+eventSize]
		typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
		code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
		if typ != evKey || value != 1 {
			continue
		}
		if name, ok := ExitKeys[code]; ok {
			return name, true
		}
	}
	return "", false
}
