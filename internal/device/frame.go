package device

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Wire framing for the serial driver. Every frame is:
//
//	0xA5 | opcode (1) | channel (1) | length (2, LE) | payload | crc16 (2, LE)
//
// The CRC covers opcode, channel, length and payload (CCITT, init 0xFFFF).
const frameSOF = 0xA5

// maxPayload bounds a frame so a corrupt length byte cannot stall the reader.
const maxPayload = 4096

// Host -> instrument opcodes.
const (
	opHello  = 0x01
	opUpload = 0x02
	opStart  = 0x03
	opPause  = 0x04
	opResume = 0x05
	opStop   = 0x06
)

// Instrument -> host opcodes.
const (
	opIdentity   = 0x81
	opAck        = 0x82
	opNack       = 0x83
	opACData     = 0x90
	opDCData     = 0x91
	opNewElement = 0x92
	opStopped    = 0x93
)

var errCRC = errors.New("crc mismatch")

type frame struct {
	op      byte
	channel byte
	payload []byte
}

// crc16 is CRC-16/CCITT-FALSE.
func crc16(data ...[]byte) uint16 {
	crc := uint16(0xFFFF)
	for _, chunk := range data {
		for _, b := range chunk {
			crc ^= uint16(b) << 8
			for i := 0; i < 8; i++ {
				if crc&0x8000 != 0 {
					crc = crc<<1 ^ 0x1021
				} else {
					crc <<= 1
				}
			}
		}
	}
	return crc
}

// writeFrame encodes and writes one frame.
func writeFrame(w io.Writer, f frame) error {
	if len(f.payload) > maxPayload {
		return fmt.Errorf("payload too large: %d", len(f.payload))
	}
	head := []byte{f.op, f.channel, 0, 0}
	binary.LittleEndian.PutUint16(head[2:], uint16(len(f.payload)))
	crc := crc16(head, f.payload)
	buf := make([]byte, 0, 1+len(head)+len(f.payload)+2)
	buf = append(buf, frameSOF)
	buf = append(buf, head...)
	buf = append(buf, f.payload...)
	buf = binary.LittleEndian.AppendUint16(buf, crc)
	_, err := w.Write(buf)
	return err
}

// readFrame scans to the next SOF and decodes one frame. It returns errCRC
// for a frame that fails its checksum; callers drop the frame and resync.
func readFrame(r io.Reader) (frame, error) {
	var b [1]byte
	for {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return frame{}, err
		}
		if b[0] == frameSOF {
			break
		}
	}
	var head [4]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return frame{}, err
	}
	n := binary.LittleEndian.Uint16(head[2:])
	if int(n) > maxPayload {
		return frame{}, errCRC
	}
	payload := make([]byte, n)
	if _, err := io.ReadFull(r, payload); err != nil {
		return frame{}, err
	}
	var crcb [2]byte
	if _, err := io.ReadFull(r, crcb[:]); err != nil {
		return frame{}, err
	}
	if binary.LittleEndian.Uint16(crcb[:]) != crc16(head[:], payload) {
		return frame{}, errCRC
	}
	return frame{op: head[0], channel: head[1], payload: payload}, nil
}

// payloadWriter appends fixed-width fields to a payload buffer.
type payloadWriter struct{ buf []byte }

func (p *payloadWriter) f64(v float64) {
	p.buf = binary.LittleEndian.AppendUint64(p.buf, math.Float64bits(v))
}

func (p *payloadWriter) u32(v uint32) {
	p.buf = binary.LittleEndian.AppendUint32(p.buf, v)
}

func (p *payloadWriter) str(s string) {
	p.u32(uint32(len(s)))
	p.buf = append(p.buf, s...)
}

// payloadReader consumes fixed-width fields; short reads set err.
type payloadReader struct {
	buf []byte
	err error
}

func (p *payloadReader) f64() float64 {
	if p.err != nil || len(p.buf) < 8 {
		p.err = io.ErrUnexpectedEOF
		return 0
	}
	v := math.Float64frombits(binary.LittleEndian.Uint64(p.buf))
	p.buf = p.buf[8:]
	return v
}

func (p *payloadReader) u32() uint32 {
	if p.err != nil || len(p.buf) < 4 {
		p.err = io.ErrUnexpectedEOF
		return 0
	}
	v := binary.LittleEndian.Uint32(p.buf)
	p.buf = p.buf[4:]
	return v
}

func (p *payloadReader) str() string {
	n := p.u32()
	if p.err != nil || len(p.buf) < int(n) {
		p.err = io.ErrUnexpectedEOF
		return ""
	}
	s := string(p.buf[:n])
	p.buf = p.buf[n:]
	return s
}

// decodeACPoint parses an opACData payload.
func decodeACPoint(payload []byte) (*ACPoint, error) {
	r := payloadReader{buf: payload}
	pt := &ACPoint{
		Timestamp:         r.f64(),
		Frequency:         r.f64(),
		AbsoluteImpedance: r.f64(),
		PhaseAngle:        r.f64(),
		RealImpedance:     r.f64(),
		ImagImpedance:     r.f64(),
		THD:               r.f64(),
		NumberOfCycles:    int(r.u32()),
		WorkingDCVoltage:  r.f64(),
		DCCurrent:         r.f64(),
		CurrentAmplitude:  r.f64(),
		VoltageAmplitude:  r.f64(),
		ElementPosition:   int(r.u32()),
	}
	return pt, r.err
}

// decodeDCPoint parses an opDCData payload.
func decodeDCPoint(payload []byte) (*DCPoint, error) {
	r := payloadReader{buf: payload}
	pt := &DCPoint{
		Timestamp:       r.f64(),
		WorkingVoltage:  r.f64(),
		WorkingCurrent:  r.f64(),
		Temperature:     r.f64(),
		ElementPosition: int(r.u32()),
	}
	return pt, r.err
}

// decodeElementStart parses an opNewElement payload.
func decodeElementStart(payload []byte) (*ElementStart, error) {
	r := payloadReader{buf: payload}
	ev := &ElementStart{
		StepName:      r.str(),
		StepNumber:    int(r.u32()),
		SubstepNumber: int(r.u32()),
	}
	return ev, r.err
}

// decodeIdentity parses an opIdentity payload.
func decodeIdentity(payload []byte) (Identity, error) {
	r := payloadReader{buf: payload}
	id := Identity{
		Name:         r.str(),
		SerialNumber: r.str(),
		Firmware:     r.str(),
		Channels:     int(r.u32()),
	}
	return id, r.err
}

// encodeUpload serializes the element sequence for an opUpload frame:
// element count, then (kind, repeats, params JSON) per element.
func encodeUpload(elements []elementWire) []byte {
	var w payloadWriter
	w.u32(uint32(len(elements)))
	for _, el := range elements {
		w.str(el.kind)
		w.u32(uint32(el.repeats))
		w.str(el.params)
	}
	return w.buf
}

type elementWire struct {
	kind    string
	repeats int
	params  string
}
