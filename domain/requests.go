package domain

// ForwardRequest is one normalized analytics event in the GTM server-side
// container schema. The x-fb-* override fields map 1:1 to destination
// fields and take precedence over anything derived from the rest of the
// event; hashed user-data overrides are expected to be pre-hashed by the
// caller.
type ForwardRequest struct {
	EventName     string          `json:"event_name" example:"purchase"`
	EventTime     *int64          `json:"event_time,omitempty" example:"1732233600" minimum:"0"`
	EventID       *string         `json:"event_id,omitempty" example:"evt-8821"`
	PageLocation  *string         `json:"page_location,omitempty" example:"https://shop.example.com/checkout"`
	ActionSource  *string         `json:"action_source,omitempty" example:"website"`
	TestEventCode *string         `json:"test_event_code,omitempty" example:"TEST1234"`
	IPOverride    *string         `json:"ip_override,omitempty" example:"203.0.113.5:54321"`
	UserAgent     *string         `json:"user_agent,omitempty" example:"Mozilla/5.0"`
	Currency      *string         `json:"currency,omitempty" example:"USD"`
	Value         *float64        `json:"value,omitempty" example:"25"`
	SearchTerm    *string         `json:"search_term,omitempty" example:"running shoes"`
	TransactionID *string         `json:"transaction_id,omitempty" example:"T-1001"`
	UserData      *SourceUserData `json:"user_data,omitempty"`
	Items         []Item          `json:"items,omitempty"`

	// User-data overrides.
	EmailOverride          *string `json:"x-fb-ud-em,omitempty"`
	PhoneOverride          *string `json:"x-fb-ud-ph,omitempty"`
	FirstNameOverride      *string `json:"x-fb-ud-fn,omitempty"`
	LastNameOverride       *string `json:"x-fb-ud-ln,omitempty"`
	CityOverride           *string `json:"x-fb-ud-ct,omitempty"`
	RegionOverride         *string `json:"x-fb-ud-st,omitempty"`
	PostalCodeOverride     *string `json:"x-fb-ud-zp,omitempty"`
	CountryOverride        *string `json:"x-fb-ud-country,omitempty"`
	GenderOverride         *string `json:"x-fb-ud-ge,omitempty"`
	DateOfBirthOverride    *string `json:"x-fb-ud-db,omitempty"`
	ExternalIDOverride     *string `json:"x-fb-ud-external_id,omitempty"`
	SubscriptionIDOverride *string `json:"x-fb-ud-subscription_id,omitempty"`

	// Cookie overrides.
	BrowserIDOverride *string `json:"x-fb-ck-fbp,omitempty"`
	ClickIDOverride   *string `json:"x-fb-ck-fbc,omitempty"`

	// Custom-data overrides.
	ContentCategoryOverride  *string   `json:"x-fb-cd-content_category,omitempty"`
	ContentIDsOverride       []string  `json:"x-fb-cd-content_ids,omitempty"`
	ContentNameOverride      *string   `json:"x-fb-cd-content_name,omitempty"`
	ContentTypeOverride      *string   `json:"x-fb-cd-content_type,omitempty"`
	ContentsOverride         []Content `json:"x-fb-cd-contents,omitempty"`
	NumItemsOverride         *int64    `json:"x-fb-cd-num_items,omitempty"`
	PredictedLTVOverride     *float64  `json:"x-fb-cd-predicted_ltv,omitempty"`
	StatusOverride           *string   `json:"x-fb-cd-status,omitempty"`
	DeliveryCategoryOverride *string   `json:"x-fb-cd-delivery_category,omitempty"`
}

// SourceUserData is the raw (unhashed) identity block of the input event.
type SourceUserData struct {
	EmailAddress *string        `json:"email_address,omitempty" example:"jane@example.com"`
	PhoneNumber  *string        `json:"phone_number,omitempty" example:"+15550100"`
	Address      *SourceAddress `json:"address,omitempty"`
}

// SourceAddress holds the address components of the input identity block.
type SourceAddress struct {
	FirstName  *string `json:"first_name,omitempty" example:"Jane"`
	LastName   *string `json:"last_name,omitempty" example:"Doe"`
	City       *string `json:"city,omitempty" example:"Menlo Park"`
	Region     *string `json:"region,omitempty" example:"CA"`
	PostalCode *string `json:"postal_code,omitempty" example:"94025"`
	Country    *string `json:"country,omitempty" example:"US"`
}

// Item is one cart/line item of the input event.
type Item struct {
	ItemID       *string  `json:"item_id,omitempty" example:"SKU-1"`
	ItemName     *string  `json:"item_name,omitempty" example:"Running Shoe"`
	Price        *float64 `json:"price,omitempty" example:"9.99"`
	ItemBrand    *string  `json:"item_brand,omitempty" example:"Acme"`
	Quantity     *int64   `json:"quantity,omitempty" example:"2"`
	ItemCategory *string  `json:"item_category,omitempty" example:"shoes"`
}
