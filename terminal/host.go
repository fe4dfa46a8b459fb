package terminal

import (
	"fmt"
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/avivbeeri/irx/cpu"
)

// ctrlQ is the byte a raw terminal delivers for Ctrl-Q: a host-level kill
// switch independent of the CPU's own HALT, matching the reference
// terminal driver's CTRL_KEY('q') check.
const ctrlQ = 0x11

// Host reads raw stdin on a background goroutine, routes each byte into a
// SerialDevice, and raises an interrupt on the CPU for every byte
// delivered. Only ever instantiated by cmd/irxterm — never in tests,
// which drive SerialDevice directly.
type Host struct {
	dev *SerialDevice
	cpu *cpu.CPU

	stopCh  chan struct{}
	done    chan struct{}
	stopped sync.Once

	quitCh   chan struct{}
	quitOnce sync.Once

	fd           int
	nonblockSet  bool
	oldTermState *term.State
}

// NewHost creates a host adapter that feeds bytes from stdin to dev and
// raises interrupts on c.
func NewHost(dev *SerialDevice, c *cpu.CPU) *Host {
	return &Host{
		dev:    dev,
		cpu:    c,
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
		quitCh: make(chan struct{}),
	}
}

// Quit returns a channel closed when the user has pressed Ctrl-Q. The
// driver loop should select on it to know when to stop stepping the CPU.
func (h *Host) Quit() <-chan struct{} {
	return h.quitCh
}

// Start puts stdin into raw, non-blocking mode and begins reading in a
// goroutine. Call Stop to restore stdin.
func (h *Host) Start() {
	h.fd = int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(h.fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal: failed to set raw mode: %v\n", err)
		close(h.done)
		return
	}
	h.oldTermState = oldState

	if err := syscall.SetNonblock(h.fd, true); err != nil {
		fmt.Fprintf(os.Stderr, "terminal: failed to set nonblocking stdin: %v\n", err)
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
		close(h.done)
		return
	}
	h.nonblockSet = true

	go h.readLoop()
}

func (h *Host) readLoop() {
	defer close(h.done)
	buf := make([]byte, 1)

	for {
		select {
		case <-h.stopCh:
			return
		default:
		}

		n, err := syscall.Read(h.fd, buf)
		if n > 0 {
			b := buf[0]
			if b == '\r' {
				b = '\n'
			}
			if b == 0x7F {
				b = 0x08
			}
			if b == ctrlQ {
				h.quitOnce.Do(func() { close(h.quitCh) })
				return
			}
			h.dev.EnqueueByte(b)
			h.cpu.RaiseInterrupt()
		}
		if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
			time.Sleep(5 * time.Millisecond)
			continue
		}
		if err != nil {
			return
		}
		if n == 0 {
			time.Sleep(5 * time.Millisecond)
		}
	}
}

// Stop terminates the reading goroutine and restores stdin.
func (h *Host) Stop() {
	h.stopped.Do(func() { close(h.stopCh) })
	<-h.done
	if h.nonblockSet {
		_ = syscall.SetNonblock(h.fd, false)
		h.nonblockSet = false
	}
	if h.oldTermState != nil {
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
	}
}

// PrintOutput drains the device's output buffer and writes it to stdout.
// Unnecessary if the device was given a char-output callback that writes
// directly.
func (h *Host) PrintOutput() {
	out := h.dev.DrainOutput()
	if len(out) > 0 {
		fmt.Print(out)
	}
}
