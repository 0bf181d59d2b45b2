package entity

import "time"

// Change is one parameter change applied by the host.
type Change struct {
	Session    string
	Param      string
	Plain      float64
	Normalized float64
	Text       string
	At         time.Time
}
