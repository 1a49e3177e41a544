package services

// gtmEventMappings translates the GTM event taxonomy into Conversions API
// standard event names.
var gtmEventMappings = map[string]string{
	"add_payment_info": "AddPaymentInfo",
	"add_to_cart":      "AddToCart",
	"add_to_wishlist":  "AddToWishlist",
	"gtm.dom":          "PageView",
	"page_view":        "PageView",
	"purchase":         "Purchase",
	"search":           "Search",
	"begin_checkout":   "InitiateCheckout",
	"generate_lead":    "Lead",
	"view_item":        "ViewContent",
	"sign_up":          "CompleteRegistration",
}

// translateEventName maps a GTM event name to its Conversions API
// equivalent. Unmapped names pass through unchanged, which lets callers
// send destination-native event names directly.
func translateEventName(gtmEventName string) string {
	if name, ok := gtmEventMappings[gtmEventName]; ok {
		return name
	}
	return gtmEventName
}
