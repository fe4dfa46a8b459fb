package terminal

import (
	"sync"

	"github.com/avivbeeri/irx/cpu"
)

const inputBufSize = 1024

// SerialDevice is a byte-oriented bus device: one bus slot's worth of
// input and output. It owns an input ring buffer fed by a Host (or by
// tests directly via EnqueueByte) and an output sink fed by DATA_OUT.
// All state lives behind one mutex, the way the reference implementation's
// MMIO device keeps its ring buffers and flags behind a single lock.
type SerialDevice struct {
	mu sync.Mutex

	input     [inputBufSize]byte
	inHead    int
	inTail    int
	inLen     int
	outputBuf []byte

	// onCharOutput, when set, receives DATA_OUT bytes immediately instead
	// of buffering them. Invoked outside mu to avoid re-entrancy issues if
	// the callback itself touches the device.
	onCharOutput func(byte)
}

// NewSerialDevice returns an empty serial device.
func NewSerialDevice() *SerialDevice {
	return &SerialDevice{outputBuf: make([]byte, 0, 256)}
}

// SetCharOutputCallback registers fn to receive every DATA_OUT byte as it
// arrives. When set, DrainOutput never accumulates anything.
func (d *SerialDevice) SetCharOutputCallback(fn func(byte)) {
	d.mu.Lock()
	d.onCharOutput = fn
	d.mu.Unlock()
}

// EnqueueByte appends one byte to the input ring buffer, dropping it if
// the buffer is full. Safe to call from any goroutine.
func (d *SerialDevice) EnqueueByte(b byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.inLen >= len(d.input) {
		return
	}
	d.input[d.inTail] = b
	d.inTail = (d.inTail + 1) % len(d.input)
	d.inLen++
}

func (d *SerialDevice) dequeueLocked() byte {
	b := d.input[d.inHead]
	d.inHead = (d.inHead + 1) % len(d.input)
	d.inLen--
	return b
}

// DrainOutput returns and clears everything written via DATA_OUT since
// the last drain. Only meaningful when no char-output callback is set.
func (d *SerialDevice) DrainOutput() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	s := string(d.outputBuf)
	d.outputBuf = d.outputBuf[:0]
	return s
}

// BusHandler returns the cpu.BusHandler for this device: Read dequeues
// the next input byte (0 if empty), Write delivers a byte to the output
// sink (callback if set, otherwise the internal buffer).
func (d *SerialDevice) BusHandler() cpu.BusHandler {
	return func(dir cpu.Direction, value byte) byte {
		if dir == cpu.Read {
			d.mu.Lock()
			defer d.mu.Unlock()
			if d.inLen == 0 {
				return 0
			}
			return d.dequeueLocked()
		}

		var fn func(byte)
		d.mu.Lock()
		if d.onCharOutput != nil {
			fn = d.onCharOutput
		} else {
			d.outputBuf = append(d.outputBuf, value)
		}
		d.mu.Unlock()

		if fn != nil {
			fn(value)
		}
		return 0
	}
}
