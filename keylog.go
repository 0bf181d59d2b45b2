package exgain

import "fmt"

// KeyLog remembers the latest key event and counts them all.
type KeyLog struct {
	Event string
	Key   string
	Count int
}

// Log records a key event.
func (kl KeyLog) Log(event, key string) KeyLog {
	return KeyLog{
		Event: event,
		Key:   key,
		Count: kl.Count + 1,
	}
}

func (kl KeyLog) String() string {
	if kl.Count == 0 {
		return ""
	}
	return fmt.Sprintf("%s %q #%d", kl.Event, kl.Key, kl.Count)
}
