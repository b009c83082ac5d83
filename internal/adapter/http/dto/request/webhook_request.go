package request

import (
	"encoding/json"
	"net/url"
	"strings"
)

// Mercado Pago sends the payment id in several shapes depending on the
// notification type (webhooks vs. IPN) and API version.
type webhookBody struct {
	ID       json.RawMessage `json:"id"`
	Data     idHolder        `json:"data"`
	Resource json.RawMessage `json:"resource"`
	Payment  idHolder        `json:"payment"`
}

type idHolder struct {
	ID json.RawMessage `json:"id"`
}

// WebhookPaymentID extracts the payment id from a notification. Body fields
// are checked in order data.id, id, resource.id, payment.id; then the query
// parameters id, data_id and data.id. The first non-empty value wins.
func WebhookPaymentID(body []byte, query url.Values) string {
	if len(strings.TrimSpace(string(body))) > 0 {
		var wb webhookBody
		if err := json.Unmarshal(body, &wb); err == nil {
			candidates := []json.RawMessage{wb.Data.ID, wb.ID, resourceID(wb.Resource), wb.Payment.ID}
			for _, raw := range candidates {
				if id := scalarID(raw); id != "" {
					return id
				}
			}
		}
	}
	for _, key := range []string{"id", "data_id", "data.id"} {
		if id := strings.TrimSpace(query.Get(key)); id != "" {
			return id
		}
	}
	return ""
}

// resourceID reads resource.id when resource is an object. IPN notifications
// send resource as a URL string, which carries no usable id here.
func resourceID(raw json.RawMessage) json.RawMessage {
	var holder idHolder
	if len(raw) == 0 || json.Unmarshal(raw, &holder) != nil {
		return nil
	}
	return holder.ID
}

func scalarID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}
