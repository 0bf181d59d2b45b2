package message

// ErrorMsg contains an error
type ErrorMsg struct {
	Err error
}
