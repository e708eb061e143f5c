package device

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestFrame_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := frame{op: opDCData, channel: 2, payload: []byte{1, 2, 3, 4}}
	if err := writeFrame(&buf, in); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := readFrame(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if out.op != in.op || out.channel != in.channel || !bytes.Equal(out.payload, in.payload) {
		t.Fatalf("round trip mismatch: %+v vs %+v", out, in)
	}
}

func TestFrame_ResyncsPastGarbage(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0x00, 0xFF, 0x13}) // line noise before SOF
	if err := writeFrame(&buf, frame{op: opAck}); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := readFrame(&buf)
	if err != nil {
		t.Fatalf("read after garbage: %v", err)
	}
	if out.op != opAck {
		t.Fatalf("op=%#02x want opAck", out.op)
	}
}

func TestFrame_CRCMismatchDropsFrame(t *testing.T) {
	var buf bytes.Buffer
	if err := writeFrame(&buf, frame{op: opStart, channel: 1, payload: []byte{9}}); err != nil {
		t.Fatalf("write: %v", err)
	}
	b := buf.Bytes()
	b[len(b)-3] ^= 0x40 // flip a payload bit
	if _, err := readFrame(bytes.NewReader(b)); !errors.Is(err, errCRC) {
		t.Fatalf("expected errCRC, got %v", err)
	}
}

func TestFrame_ShortRead(t *testing.T) {
	var buf bytes.Buffer
	if err := writeFrame(&buf, frame{op: opACData, payload: make([]byte, 32)}); err != nil {
		t.Fatalf("write: %v", err)
	}
	truncated := buf.Bytes()[:10]
	_, err := readFrame(bytes.NewReader(truncated))
	if err == nil || errors.Is(err, errCRC) {
		t.Fatalf("expected io error for short read, got %v", err)
	}
}

func TestDecodeACPoint_FullAndShort(t *testing.T) {
	var w payloadWriter
	for _, v := range []float64{1.5, 1000, 120.5, -12.4, 117.7, -25.9, 0.01} {
		w.f64(v)
	}
	w.u32(7) // cycles
	for _, v := range []float64{0.2, 0.001, 0.0008, 0.1} {
		w.f64(v)
	}
	w.u32(3) // element position

	pt, err := decodeACPoint(w.buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if pt.Frequency != 1000 || pt.NumberOfCycles != 7 || pt.ElementPosition != 3 {
		t.Fatalf("unexpected point: %+v", pt)
	}

	if _, err := decodeACPoint(w.buf[:11]); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected ErrUnexpectedEOF for short payload, got %v", err)
	}
}

func TestEncodeUpload_Decodable(t *testing.T) {
	payload := encodeUpload([]elementWire{
		{kind: "cyclic_voltammetry", repeats: 3, params: `{"scan_rate":0.1}`},
		{kind: "open_circuit", repeats: 1, params: `{}`},
	})
	r := payloadReader{buf: payload}
	if n := r.u32(); n != 2 {
		t.Fatalf("count=%d want 2", n)
	}
	if k := r.str(); k != "cyclic_voltammetry" {
		t.Fatalf("kind=%q", k)
	}
	if reps := r.u32(); reps != 3 {
		t.Fatalf("repeats=%d", reps)
	}
	if p := r.str(); p != `{"scan_rate":0.1}` {
		t.Fatalf("params=%q", p)
	}
	if r.err != nil {
		t.Fatalf("reader error: %v", r.err)
	}
}
