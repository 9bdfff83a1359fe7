package booking

import "encoding/json"

// Navigator routes the terminal states of the booking flow.
type Navigator interface {
	// ShowConfirmation renders the confirmation view with the server-echoed
	// order payload.
	ShowConfirmation(order json.RawMessage)
	// ShowNoOrder renders the fallback state with a single way back home.
	ShowNoOrder()
}

// RouteResult sends an order payload to the confirmation view, or to the
// fallback when no payload is present (e.g. direct navigation without a
// completed booking). Purely a presentation branch; nothing here retries.
func RouteResult(nav Navigator, order json.RawMessage) {
	if len(order) == 0 || string(order) == "null" {
		nav.ShowNoOrder()
		return
	}
	nav.ShowConfirmation(order)
}
