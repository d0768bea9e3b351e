package services

import "encoding/json"

// Event is one inbound processor notification, already signature-verified by
// the transport layer. Data.Raw holds the type-specific object payload.
type Event struct {
	ID   string    `json:"id"`
	Type string    `json:"type"`
	Data EventData `json:"data"`
}

// EventData wraps the raw object carried by an event.
type EventData struct {
	Raw json.RawMessage `json:"object"`
}

// ProcessingResult is the uniform outcome returned to the transport layer.
// Success=false with Terminal=false asks the processor to redeliver;
// Terminal=true means acknowledge, do not retry, and alert a human.
type ProcessingResult struct {
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	Terminal  bool   `json:"terminal,omitempty"`
	Reason    string `json:"reason,omitempty"`
	EventID   string `json:"event_id,omitempty"`
	PaymentID string `json:"payment_id,omitempty"`
	PayoutID  string `json:"payout_id,omitempty"`
}

// metadataPaymentIDKey is the correlation key the checkout path embeds in
// processor metadata so events can be tied back to a local payment even when
// no processor identifier has been recorded yet.
const metadataPaymentIDKey = "payment_id"
