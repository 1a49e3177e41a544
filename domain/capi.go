package domain

// Conversions API wire schema. Optional fields are pointers with omitempty
// so that anything unresolved is omitted from the payload rather than sent
// as null.

// ServerEvent is one event as the Conversions API expects it.
type ServerEvent struct {
	EventName      string      `json:"event_name"`
	EventTime      int64       `json:"event_time"`
	EventID        *string     `json:"event_id,omitempty"`
	EventSourceURL *string     `json:"event_source_url,omitempty"`
	ActionSource   *string     `json:"action_source,omitempty"`
	UserData       UserData    `json:"user_data"`
	CustomData     *CustomData `json:"custom_data,omitempty"`
}

// UserData is the identity bundle of a server event. All members are
// optional but the object itself is always serialized, matching the API's
// expectation that user_data is present on every event.
type UserData struct {
	Email           *string `json:"em,omitempty"`
	Phone           *string `json:"ph,omitempty"`
	FirstName       *string `json:"fn,omitempty"`
	LastName        *string `json:"ln,omitempty"`
	City            *string `json:"ct,omitempty"`
	Region          *string `json:"st,omitempty"`
	PostalCode      *string `json:"zp,omitempty"`
	Country         *string `json:"country,omitempty"`
	Gender          *string `json:"ge,omitempty"`
	DateOfBirth     *string `json:"db,omitempty"`
	ExternalID      *string `json:"external_id,omitempty"`
	SubscriptionID  *string `json:"subscription_id,omitempty"`
	BrowserID       *string `json:"fbp,omitempty"`
	ClickID         *string `json:"fbc,omitempty"`
	ClientIPAddress *string `json:"client_ip_address,omitempty"`
	ClientUserAgent *string `json:"client_user_agent,omitempty"`
}

// CustomData is the business-data bundle of a server event.
type CustomData struct {
	Currency         *string   `json:"currency,omitempty"`
	Value            *float64  `json:"value,omitempty"`
	SearchString     *string   `json:"search_string,omitempty"`
	OrderID          *string   `json:"order_id,omitempty"`
	ContentCategory  *string   `json:"content_category,omitempty"`
	ContentIDs       []string  `json:"content_ids,omitempty"`
	ContentName      *string   `json:"content_name,omitempty"`
	ContentType      *string   `json:"content_type,omitempty"`
	Contents         []Content `json:"contents,omitempty"`
	NumItems         *int64    `json:"num_items,omitempty"`
	PredictedLTV     *float64  `json:"predicted_ltv,omitempty"`
	Status           *string   `json:"status,omitempty"`
	DeliveryCategory *string   `json:"delivery_category,omitempty"`
}

// IsEmpty reports whether no custom-data member resolved; an empty bundle
// is dropped from the event entirely.
func (c *CustomData) IsEmpty() bool {
	return c.Currency == nil && c.Value == nil && c.SearchString == nil &&
		c.OrderID == nil && c.ContentCategory == nil && len(c.ContentIDs) == 0 &&
		c.ContentName == nil && c.ContentType == nil && len(c.Contents) == 0 &&
		c.NumItems == nil && c.PredictedLTV == nil && c.Status == nil &&
		c.DeliveryCategory == nil
}

// Content is one element of the contents list.
type Content struct {
	ID        *string  `json:"id,omitempty"`
	Title     *string  `json:"title,omitempty"`
	ItemPrice *float64 `json:"item_price,omitempty"`
	Brand     *string  `json:"brand,omitempty"`
	Quantity  *int64   `json:"quantity,omitempty"`
	Category  *string  `json:"category,omitempty"`
}

// EventEnvelope is the request body posted to the Conversions API. Data
// always carries exactly one event.
type EventEnvelope struct {
	Data          []ServerEvent `json:"data"`
	PartnerAgent  string        `json:"partner_agent"`
	TestEventCode *string       `json:"test_event_code,omitempty"`
}
