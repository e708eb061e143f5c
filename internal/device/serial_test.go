package device

import (
	"context"
	"io"
	"testing"
	"time"
)

// pipeRW joins one half of a duplex in-memory connection.
type pipeRW struct {
	r *io.PipeReader
	w *io.PipeWriter
}

func (p *pipeRW) Read(b []byte) (int, error)  { return p.r.Read(b) }
func (p *pipeRW) Write(b []byte) (int, error) { return p.w.Write(b) }
func (p *pipeRW) Close() error {
	_ = p.r.Close()
	return p.w.Close()
}

// newHandlerPipe wires a serialHandler to an in-memory peer standing in for
// the instrument. The returned pipe is the instrument's end.
func newHandlerPipe() (*serialHandler, *pipeRW) {
	hostR, devW := io.Pipe()
	devR, hostW := io.Pipe()
	h := newSerialHandler("test", &pipeRW{r: hostR, w: hostW})
	return h, &pipeRW{r: devR, w: devW}
}

func dcPayload() []byte {
	var w payloadWriter
	for _, v := range []float64{0.5, 0.1, 0.002, 25} {
		w.f64(v)
	}
	w.u32(0)
	return w.buf
}

func stoppedPayload(aborted bool, msg string) []byte {
	var w payloadWriter
	if aborted {
		w.u32(1)
	} else {
		w.u32(0)
	}
	w.str(msg)
	return w.buf
}

func TestSerialHandler_StoppedSurvivesFullBuffer(t *testing.T) {
	h, dev := newHandlerPipe()
	defer func() { _ = h.close() }()
	defer func() { _ = dev.Close() }()

	events := h.Events(0)

	// Flood the channel with more data frames than the buffer holds while
	// nothing consumes, then end the run.
	dc := dcPayload()
	for i := 0; i < 300; i++ {
		if err := writeFrame(dev, frame{op: opDCData, channel: 0, payload: dc}); err != nil {
			t.Fatalf("write dc frame %d: %v", i, err)
		}
	}
	if err := writeFrame(dev, frame{op: opStopped, channel: 0, payload: stoppedPayload(false, "")}); err != nil {
		t.Fatalf("write stopped frame: %v", err)
	}

	var dcN int
	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev := <-events:
			if ev.DC != nil {
				dcN++
				continue
			}
			if ev.Stopped == nil {
				t.Fatalf("unexpected event: %+v", ev)
			}
			if ev.Stopped.Aborted || ev.Stopped.Err != nil {
				t.Fatalf("unexpected stop info: %+v", ev.Stopped)
			}
			if dcN >= 300 {
				t.Fatalf("expected shed data points, got all %d", dcN)
			}
			return
		case <-deadline:
			t.Fatalf("no stopped event after %d dc points", dcN)
		}
	}
}

func TestSerialHandler_LateAckDoesNotMisrouteNextCommand(t *testing.T) {
	h, dev := newHandlerPipe()
	defer func() { _ = h.close() }()
	defer func() { _ = dev.Close() }()

	events := h.Events(0)

	// Instrument side: surface each command frame so the test can answer it.
	frames := make(chan frame, 4)
	go func() {
		for {
			f, err := readFrame(dev)
			if err != nil {
				return
			}
			frames <- f
		}
	}()

	// First command is abandoned before the instrument answers.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := h.Pause(ctx, 0); err == nil {
		t.Fatal("expected pause to give up")
	}
	if f := <-frames; f.op != opPause {
		t.Fatalf("op=%#02x want opPause", f.op)
	}

	// The late ack for the abandoned command must fall on the floor. The
	// data frame behind it proves the ack was dispatched before we go on.
	if err := writeFrame(dev, frame{op: opAck}); err != nil {
		t.Fatalf("write late ack: %v", err)
	}
	if err := writeFrame(dev, frame{op: opDCData, channel: 0, payload: dcPayload()}); err != nil {
		t.Fatalf("write fence frame: %v", err)
	}
	select {
	case <-events:
	case <-time.After(2 * time.Second):
		t.Fatal("fence event not delivered")
	}

	// A fresh command must receive its own answer.
	errc := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		errc <- h.Stop(ctx, 0)
	}()
	if f := <-frames; f.op != opStop {
		t.Fatalf("op=%#02x want opStop", f.op)
	}
	var w payloadWriter
	w.str("busy")
	if err := writeFrame(dev, frame{op: opNack, payload: w.buf}); err != nil {
		t.Fatalf("write nack: %v", err)
	}
	if err := <-errc; err == nil || err.Error() != "busy" {
		t.Fatalf("stop error = %v, want busy", err)
	}
}

func TestSerialHandler_UnknownOpcodeAndPortFailure(t *testing.T) {
	h, dev := newHandlerPipe()
	defer func() { _ = h.close() }()

	events := h.Events(0)

	// Unknown opcodes are skipped; the frame behind one still flows.
	if err := writeFrame(dev, frame{op: 0x7F, channel: 0, payload: []byte{1, 2}}); err != nil {
		t.Fatalf("write unknown frame: %v", err)
	}
	if err := writeFrame(dev, frame{op: opDCData, channel: 0, payload: dcPayload()}); err != nil {
		t.Fatalf("write dc frame: %v", err)
	}
	select {
	case ev := <-events:
		if ev.DC == nil {
			t.Fatalf("expected dc event, got %+v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("data event not delivered")
	}

	// Port failure mid-run ends the run with an error stop.
	_ = dev.Close()
	select {
	case ev := <-events:
		if ev.Stopped == nil || ev.Stopped.Err == nil || !ev.Stopped.Aborted {
			t.Fatalf("expected error stop, got %+v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no stop event after port failure")
	}
}
