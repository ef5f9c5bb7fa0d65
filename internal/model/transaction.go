package model

import "time"

// Transaction is a completed charge. It is never mutated after creation;
// shop name and UPI ID are copied from the merchant config at charge time.
type Transaction struct {
	ID        string `json:"id"`
	Amount    string `json:"amount"`
	Timestamp string `json:"timestamp"`
	ShopName  string `json:"shopName"`
	UPIID     string `json:"upiId"`
	Items     string `json:"items,omitempty"`
}

// localLayouts are accepted for hand-edited imports that carry no offset.
// They are read as local time.
var localLayouts = []string{
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Time parses the ISO-8601 timestamp. ok is false when it cannot be parsed.
func (t Transaction) Time() (time.Time, bool) {
	if ts, err := time.Parse(time.RFC3339, t.Timestamp); err == nil {
		return ts, true
	}
	for _, layout := range localLayouts {
		if ts, err := time.ParseInLocation(layout, t.Timestamp, time.Local); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
