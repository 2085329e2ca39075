package workers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/secure-vault/internal/logger"
)

// ErrClipboardUnsupported is returned when no clipboard utility is available.
var ErrClipboardUnsupported = errors.New("clipboard is not supported on this system")

// SystemClipboard is the OS clipboard through atotto/clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", ErrClipboardUnsupported
	}
	return clipboard.ReadAll()
}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}

// ClipboardClearer copies secrets to the clipboard and wipes them after a
// delay. A value is only wiped if it is still on the clipboard, so text the
// user copied elsewhere in the meantime survives. Pending values are wiped
// when ctx ends.
type ClipboardClearer struct {
	board    Clipboard
	delay    time.Duration
	requests chan string
	done     chan struct{}
	logger   *logger.Logger
}

func NewClipboardClearer(board Clipboard, delay time.Duration, logger *logger.Logger) *ClipboardClearer {
	return &ClipboardClearer{
		board:    board,
		delay:    delay,
		requests: make(chan string, 1),
		done:     make(chan struct{}),
		logger:   logger,
	}
}

// Delay is how long a copied value stays on the clipboard.
func (c *ClipboardClearer) Delay() time.Duration {
	return c.delay
}

// Copy writes value to the clipboard and schedules its removal. A newer copy
// replaces the pending one.
func (c *ClipboardClearer) Copy(value string) error {
	if err := c.board.WriteAll(value); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	if c.delay <= 0 {
		return nil
	}

	for {
		select {
		case c.requests <- value:
			return nil
		default:
			// drop the stale request; the clipboard no longer holds it
			select {
			case <-c.requests:
			default:
			}
		}
	}
}

func (c *ClipboardClearer) Run(ctx context.Context) {
	go func() {
		defer close(c.done)

		var (
			pending string
			timer   *time.Timer
			fire    <-chan time.Time
		)

		for {
			select {
			case v := <-c.requests:
				if timer != nil {
					timer.Stop()
				}
				pending = v
				timer = time.NewTimer(c.delay)
				fire = timer.C

			case <-fire:
				c.clear(pending)
				pending, fire = "", nil

			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				select {
				case v := <-c.requests:
					pending = v
				default:
				}
				if pending != "" {
					c.clear(pending)
				}
				return
			}
		}
	}()
}

// Wait blocks until the loop started by Run has wiped pending values and
// returned. It must only be called after Run.
func (c *ClipboardClearer) Wait() {
	<-c.done
}

func (c *ClipboardClearer) clear(value string) {
	current, err := c.board.ReadAll()
	if err != nil {
		c.logger.Warn().Err(err).Str("func", "ClipboardClearer.clear").Msg("failed to read clipboard")
		return
	}
	if current != value {
		return
	}

	if err = c.board.WriteAll(""); err != nil {
		c.logger.Warn().Err(err).Str("func", "ClipboardClearer.clear").Msg("failed to clear clipboard")
		return
	}
	c.logger.Debug().Str("func", "ClipboardClearer.clear").Msg("clipboard cleared")
}
