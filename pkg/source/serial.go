// Package source feeds live readings into the bus. The serial source
// reads newline terminated ASCII numbers, as sent by GPS speed boxes and
// most wideband controllers.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"go.bug.st/serial"
)

const (
	DefaultBaudRate = 9600
	maxLineLength   = 32
)

var ErrLineTooLong = errors.New("line too long")

type Publisher interface {
	Publish(topic string, value float64) error
}

// LineParser collects bytes until a newline and parses the line as a
// float. Carriage returns are ignored. An overlong line is reported once
// and dropped up to its newline.
type LineParser struct {
	buf      []byte
	skipping bool
}

func (p *LineParser) Feed(b byte) (float64, bool, error) {
	switch b {
	case '\r':
		return 0, false, nil
	case '\n':
		if p.skipping {
			p.skipping = false
			return 0, false, nil
		}
		line := p.buf
		p.buf = p.buf[:0]
		if len(line) == 0 {
			return 0, false, nil
		}
		value, err := strconv.ParseFloat(string(line), 64)
		if err != nil {
			return 0, false, err
		}
		return value, true, nil
	}
	if p.skipping {
		return 0, false, nil
	}
	if len(p.buf) == maxLineLength {
		p.buf = p.buf[:0]
		p.skipping = true
		return 0, false, ErrLineTooLong
	}
	p.buf = append(p.buf, b)
	return 0, false, nil
}

type Serial struct {
	port     string
	baudRate int
	topic    string
	scale    float64

	pub Publisher
	log func(string)

	sp        serial.Port
	closeOnce sync.Once
	done      chan struct{}
}

type SerialOption func(*Serial)

func WithBaudRate(rate int) SerialOption {
	return func(s *Serial) { s.baudRate = rate }
}

// WithScale multiplies every reading, e.g. 3.6 for m/s to km/h.
func WithScale(f float64) SerialOption {
	return func(s *Serial) { s.scale = f }
}

func NewSerial(port, topic string, pub Publisher, logFunc func(string), opts ...SerialOption) *Serial {
	s := &Serial{
		port:     port,
		baudRate: DefaultBaudRate,
		topic:    topic,
		scale:    1,
		pub:      pub,
		log:      logFunc,
		done:     make(chan struct{}),
	}
	for _, o := range opts {
		o(s)
	}
	if s.log == nil {
		s.log = func(string) {}
	}
	return s
}

func (s *Serial) Start(ctx context.Context) error {
	mode := &serial.Mode{
		BaudRate: s.baudRate,
	}
	sp, err := serial.Open(s.port, mode)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.port, err)
	}
	s.sp = sp
	if err := s.sp.SetReadTimeout(50 * time.Millisecond); err != nil {
		sp.Close()
		return err
	}
	go func() {
		defer close(s.done)
		if err := s.ReadFrom(ctx, sp); err != nil {
			s.log("serial: " + err.Error())
		}
	}()
	return nil
}

// ReadFrom parses readings from r until ctx is done or r fails. Reads
// returning zero bytes are treated as timeouts. Unparsable lines are
// logged and skipped.
func (s *Serial) ReadFrom(ctx context.Context, r io.Reader) error {
	var parser LineParser
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		if ctx.Err() != nil {
			return nil
		}
		for _, b := range buf[:n] {
			value, ok, perr := parser.Feed(b)
			if perr != nil {
				s.log("serial: " + perr.Error())
				continue
			}
			if ok {
				if err := s.pub.Publish(s.topic, value*s.scale); err != nil {
					s.log("serial: publish: " + err.Error())
				}
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (s *Serial) Stop() {
	s.closeOnce.Do(func() {
		if s.sp != nil {
			s.log("Stopping serial source " + s.port)
			if err := s.sp.Close(); err != nil {
				s.log(err.Error())
			}
			<-s.done
		}
	})
}

// Ports lists the serial ports present on the system.
func Ports() ([]string, error) {
	return serial.GetPortsList()
}
