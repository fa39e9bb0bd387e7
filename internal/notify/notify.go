package notify

import "github.com/gen2brain/beeep"

// Notifier delivers a desktop notification
type Notifier interface {
	Send(title, body string) error
}

// Desktop sends notifications through the OS notification facility
type Desktop struct{}

// NewDesktop returns the OS-backed notifier
func NewDesktop() Desktop { return Desktop{} }

// Send shows a desktop notification
func (Desktop) Send(title, body string) error {
	return beeep.Notify(title, body, "")
}
