package system

import (
	"encoding/binary"
	"testing"
)

const (
	testTvSize    = 16
	testEventSize = testTvSize + 8
)

func event(typ, code uint16, value int32) []byte {
	rec := make([]byte, testEventSize)
	binary.LittleEndian.PutUint16(rec[testTvSize:], typ)
	binary.LittleEndian.PutUint16(rec[testTvSize+2:], code)
	binary.LittleEndian.PutUint32(rec[testTvSize+4:], uint32(value))
	return rec
}

func TestFindExitKey(t *testing.T) {
	var buf []byte
	buf = append(buf, event(evKey, 30, 1)...)    // 'a' pressed
	buf = append(buf, event(evKey, keyQ, 0)...)  // Q released
	buf = append(buf, event(0x00, 0, 0)...)      // SYN
	buf = append(buf, event(evKey, keyF4, 1)...) // F4 pressed

	name, ok := findExitKey(buf, testTvSize, testEventSize)
	if !ok || name != "F4" {
		t.Errorf("expected F4, got %q, %v", name, ok)
	}
}

func TestFindExitKeyNone(t *testing.T) {
	buf := append(event(evKey, 30, 1), event(evKey, keyEsc, 2)...)
	if name, ok := findExitKey(buf, testTvSize, testEventSize); ok {
		t.Errorf("unexpected exit key %q", name)
	}
	// truncated record is ignored
	if _, ok := findExitKey(event(evKey, keyEsc, 1)[:10], testTvSize, testEventSize); ok {
		t.Error("truncated record should be ignored")
	}
}
