package screen

import "github.com/borgmon/eventease/pkg/logging"

// Actions are the handlers behind the bottom bar buttons.
type Actions struct {
	BuyTickets    func()
	AddToCalendar func()
}

// NotImplementedActions returns handlers that only log. Ticketing and
// calendar integration don't exist yet.
func NotImplementedActions(logger *logging.Logger) Actions {
	notImplemented := func(action string) func() {
		return func() {
			logger.WithFields(map[string]any{"action": action}).Info("action not yet implemented")
		}
	}

	return Actions{
		BuyTickets:    notImplemented("buy_tickets"),
		AddToCalendar: notImplemented("add_to_calendar"),
	}
}
