package exgain

import (
	tea "charm.land/bubbletea/v2"

	"exgain/message"
)

// send hands messages to the bridge in order.
// Failures are logged and the first one is reported back as an ErrorMsg.
func (m Model) send(out ...message.Outbound) tea.Cmd {

	var first error
	for _, msg := range out {
		err := m.bridge.Send(msg)
		if err != nil {
			m.logger.Error(m.ctx, "failed to send", err, "type", msg.Type())
			if first == nil {
				first = err
			}
		}
	}

	if first != nil {
		return message.ErrorCmd(first)
	}
	return nil
}
