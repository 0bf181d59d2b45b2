package exgain

import (
	nt "exgain/entity"
	"exgain/message"
)

// Bridge specifies the message channel to the plugin host.
type Bridge interface {
	// Send queues a message for the host without waiting for it to be handled
	Send(msg message.Outbound) error
	// OnReceive registers the handler for messages pushed by the host
	OnReceive(handler func(msg message.Inbound))
}

// Logger specifies a contextual, structured logger.
type Logger = nt.Logger

// Config sets the panel's initial size and the terminal cell geometry.
type Config struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// DefaultConfig returns a 400x400 panel on 8x16 pixel cells.
func DefaultConfig() Config {
	return Config{
		Width:      400,
		Height:     400,
		CellWidth:  8,
		CellHeight: 16,
	}
}

func (cfg Config) size() nt.Size {
	return nt.Size{Width: cfg.Width, Height: cfg.Height}
}

func (cfg Config) scale() nt.Point {
	return nt.Point{X: max(1, cfg.CellWidth), Y: max(1, cfg.CellHeight)}
}
