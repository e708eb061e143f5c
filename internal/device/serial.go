package device

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"go.bug.st/serial"

	"squidstatControl/models"
)

// ackTimeout bounds how long a control command waits for the instrument.
const ackTimeout = 5 * time.Second

// SerialDriver speaks the framed wire protocol over serial ports, one
// instrument per port.
type SerialDriver struct {
	Baud int

	mu     sync.Mutex
	byName map[string]*serialHandler
	byPort map[string]*serialHandler
	closed bool
}

// NewSerial returns a driver opening ports at the given baud rate.
func NewSerial(baud int) *SerialDriver {
	return &SerialDriver{
		Baud:   baud,
		byName: make(map[string]*serialHandler),
		byPort: make(map[string]*serialHandler),
	}
}

func (d *SerialDriver) Connect(ctx context.Context, port string) (Identity, error) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return Identity{}, errors.New("driver closed")
	}
	if h, ok := d.byPort[port]; ok {
		d.mu.Unlock()
		return h.identity, nil
	}
	d.mu.Unlock()

	sp, err := serial.Open(port, &serial.Mode{BaudRate: d.Baud})
	if err != nil {
		return Identity{}, fmt.Errorf("open %s: %w", port, err)
	}

	h := newSerialHandler(port, sp)
	if err := h.hello(ctx); err != nil {
		_ = sp.Close()
		return Identity{}, fmt.Errorf("handshake on %s: %w", port, err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.byPort[port] = h
	d.byName[h.identity.Name] = h
	return h.identity, nil
}

func (d *SerialDriver) Handler(name string) (Handler, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	h, ok := d.byName[name]
	if !ok {
		return nil, ErrNotConnected
	}
	return h, nil
}

func (d *SerialDriver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	var first error
	for _, h := range d.byPort {
		if err := h.close(); err != nil && first == nil {
			first = err
		}
	}
	d.byPort = make(map[string]*serialHandler)
	d.byName = make(map[string]*serialHandler)
	return first
}

type pendingAck struct {
	ch chan error
}

type serialHandler struct {
	port     string
	identity Identity

	writeMu sync.Mutex
	rw      io.ReadWriteCloser

	mu       sync.Mutex
	events   map[int]chan Event
	acks     []*pendingAck
	idCh     chan Identity
	closed   bool
	crcDrops int
}

func newSerialHandler(port string, rw io.ReadWriteCloser) *serialHandler {
	h := &serialHandler{
		port:   port,
		rw:     rw,
		events: make(map[int]chan Event),
		idCh:   make(chan Identity, 1),
	}
	go h.readLoop()
	return h
}

// hello performs the identity handshake during Connect.
func (h *serialHandler) hello(ctx context.Context) error {
	if err := h.send(frame{op: opHello}); err != nil {
		return err
	}
	select {
	case id := <-h.idCh:
		h.identity = id
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(ackTimeout):
		return errors.New("no identity response")
	}
}

func (h *serialHandler) send(f frame) error {
	h.writeMu.Lock()
	defer h.writeMu.Unlock()
	return writeFrame(h.rw, f)
}

// command sends a control frame and waits for the matching ack/nack.
// Acks are answered in order; the instrument processes commands serially.
func (h *serialHandler) command(ctx context.Context, f frame) error {
	p := &pendingAck{ch: make(chan error, 1)}
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return errors.New("handler closed")
	}
	h.acks = append(h.acks, p)
	h.mu.Unlock()

	if err := h.send(f); err != nil {
		h.dropPending(p)
		return err
	}
	select {
	case err := <-p.ch:
		return err
	case <-ctx.Done():
		h.dropPending(p)
		return ctx.Err()
	case <-time.After(ackTimeout):
		h.dropPending(p)
		return fmt.Errorf("command %#02x timed out", f.op)
	}
}

// dropPending removes an abandoned ack slot so a late answer cannot be
// matched against the wrong command.
func (h *serialHandler) dropPending(p *pendingAck) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, q := range h.acks {
		if q == p {
			h.acks = append(h.acks[:i], h.acks[i+1:]...)
			return
		}
	}
}

func (h *serialHandler) Upload(ctx context.Context, channel int, elements []models.Element) error {
	if len(elements) == 0 {
		return errors.New("no elements to upload")
	}
	wire := make([]elementWire, 0, len(elements))
	for _, el := range elements {
		if _, err := models.DecodeParams(el.Kind, el.Params); err != nil {
			return fmt.Errorf("element %d: %w", el.Position, err)
		}
		wire = append(wire, elementWire{kind: string(el.Kind), repeats: el.Repeats, params: el.Params})
	}
	return h.command(ctx, frame{op: opUpload, channel: byte(channel), payload: encodeUpload(wire)})
}

func (h *serialHandler) Start(ctx context.Context, channel int) error {
	return h.command(ctx, frame{op: opStart, channel: byte(channel)})
}

func (h *serialHandler) Pause(ctx context.Context, channel int) error {
	return h.command(ctx, frame{op: opPause, channel: byte(channel)})
}

func (h *serialHandler) Resume(ctx context.Context, channel int) error {
	return h.command(ctx, frame{op: opResume, channel: byte(channel)})
}

func (h *serialHandler) Stop(ctx context.Context, channel int) error {
	return h.command(ctx, frame{op: opStop, channel: byte(channel)})
}

func (h *serialHandler) Events(channel int) <-chan Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.eventChanLocked(channel)
}

func (h *serialHandler) eventChanLocked(channel int) chan Event {
	ch, ok := h.events[channel]
	if !ok {
		ch = make(chan Event, 256)
		h.events[channel] = ch
	}
	return ch
}

func (h *serialHandler) close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()
	return h.rw.Close()
}

// readLoop decodes inbound frames until the port errors or closes. A port
// failure mid-run surfaces as a Stopped event with the error on every
// channel that has a listener.
func (h *serialHandler) readLoop() {
	for {
		f, err := readFrame(h.rw)
		if errors.Is(err, errCRC) {
			h.mu.Lock()
			h.crcDrops++
			n := h.crcDrops
			h.mu.Unlock()
			log.Printf("serial %s: dropped corrupt frame (%d total)", h.port, n)
			continue
		}
		if err != nil {
			h.fail(err)
			return
		}
		h.dispatch(f)
	}
}

func (h *serialHandler) fail(err error) {
	h.mu.Lock()
	if h.closed {
		err = nil // orderly shutdown, not a fault
	}
	channels := make([]int, 0, len(h.events))
	for ch := range h.events {
		channels = append(channels, ch)
	}
	acks := h.acks
	h.acks = nil
	h.mu.Unlock()

	for _, p := range acks {
		p.ch <- errors.New("port closed")
	}
	for _, ch := range channels {
		h.deliver(ch, Event{Channel: ch, Stopped: &StopInfo{Aborted: true, Err: err}})
	}
}

func (h *serialHandler) dispatch(f frame) {
	switch f.op {
	case opIdentity:
		id, err := decodeIdentity(f.payload)
		if err != nil {
			log.Printf("serial %s: bad identity frame: %v", h.port, err)
			return
		}
		select {
		case h.idCh <- id:
		default:
		}
	case opAck, opNack:
		var result error
		if f.op == opNack {
			r := payloadReader{buf: f.payload}
			msg := r.str()
			if msg == "" {
				msg = "rejected"
			}
			result = errors.New(msg)
		}
		h.mu.Lock()
		if len(h.acks) > 0 {
			p := h.acks[0]
			h.acks = h.acks[1:]
			p.ch <- result
		}
		h.mu.Unlock()
	case opACData:
		pt, err := decodeACPoint(f.payload)
		if err != nil {
			log.Printf("serial %s: bad AC frame: %v", h.port, err)
			return
		}
		h.deliver(int(f.channel), Event{Channel: int(f.channel), AC: pt})
	case opDCData:
		pt, err := decodeDCPoint(f.payload)
		if err != nil {
			log.Printf("serial %s: bad DC frame: %v", h.port, err)
			return
		}
		h.deliver(int(f.channel), Event{Channel: int(f.channel), DC: pt})
	case opNewElement:
		ev, err := decodeElementStart(f.payload)
		if err != nil {
			log.Printf("serial %s: bad element frame: %v", h.port, err)
			return
		}
		h.deliver(int(f.channel), Event{Channel: int(f.channel), NewElement: ev})
	case opStopped:
		r := payloadReader{buf: f.payload}
		aborted := r.u32() != 0
		msg := r.str()
		info := &StopInfo{Aborted: aborted}
		if msg != "" {
			info.Err = errors.New(msg)
		}
		h.deliver(int(f.channel), Event{Channel: int(f.channel), Stopped: info})
	default:
		// Unknown opcode: skip. Newer firmware may add frame types.
	}
}

// deliver queues an event for the channel's consumer. Data events are
// dropped when the buffer is full; a Stopped event delimits the run, so it
// sheds the oldest buffered point instead and always arrives.
func (h *serialHandler) deliver(channel int, ev Event) {
	h.mu.Lock()
	ch := h.eventChanLocked(channel)
	h.mu.Unlock()
	for {
		select {
		case ch <- ev:
			return
		default:
		}
		if ev.Stopped == nil {
			log.Printf("serial %s: channel %d event buffer full, dropping", h.port, channel)
			return
		}
		select {
		case <-ch:
		default:
		}
	}
}
