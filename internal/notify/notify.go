// Package notify abstracts the desktop notification capability so the
// reminder scheduler can be tested with a fake.
package notify

import (
	"fmt"
	"io"

	"github.com/gen2brain/beeep"
)

// Notifier delivers a notification to the user.
type Notifier interface {
	Notify(title, body string) error
}

// Desktop sends notifications through the platform notification service.
type Desktop struct{}

func NewDesktop() *Desktop {
	return &Desktop{}
}

func (d *Desktop) Notify(title, body string) error {
	if err := beeep.Notify(title, body, ""); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}

// Writer prints notifications to an io.Writer, used for dry runs.
type Writer struct {
	Out io.Writer
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{Out: out}
}

func (w *Writer) Notify(title, body string) error {
	_, err := fmt.Fprintf(w.Out, "%s: %s\n", title, body)
	return err
}
