package hal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Default framebuffer size: three 480x400 panels side by side.
const (
	DefaultWidth  = 1440
	DefaultHeight = 400
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	Scale  int
	TPS    int
}

type hostHAL struct {
	logger  *hostLogger
	fb      *hostFramebuffer
	kbd     *hostKeyboard
	console *hostConsole
}

// New returns a host HAL with a width x height framebuffer, console output on
// stdout and console input on stdin.
func New(width, height int) HAL {
	return newHost(width, height, os.Stdin, os.Stdout)
}

func newHost(width, height int, in io.Reader, out io.Writer) *hostHAL {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &hostHAL{
		logger:  &hostLogger{w: out},
		fb:      newHostFramebuffer(width, height),
		kbd:     newHostKeyboard(),
		console: &hostConsole{r: bufio.NewReader(in)},
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd, console: h.console} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd     *hostKeyboard
	console *hostConsole
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Console() Console   { return in.console }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostConsole struct {
	mu sync.Mutex
	r  *bufio.Reader
}

func (c *hostConsole) ReadLine() (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.r == nil {
		return "", false, ErrNotImplemented
	}
	line, err := c.r.ReadString('\n')
	if err == io.EOF {
		if line == "" {
			return "", false, nil
		}
		return strings.TrimRight(line, "\r\n"), true, nil
	}
	if err != nil {
		return "", false, err
	}
	return strings.TrimRight(line, "\r\n"), true, nil
}
