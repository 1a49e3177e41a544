package services

import (
	"strings"

	"capi/forwarder/domain"
)

// resolveHashed applies the override-first precedence for a hashed
// identity attribute: an override is used verbatim, a raw value goes
// through the hasher, otherwise the attribute stays absent.
func resolveHashed(override, raw *string) *string {
	if override != nil {
		return override
	}
	return hashField(raw)
}

// resolveCookie falls back from the override to the first value of the
// named request cookie.
func resolveCookie(override *string, cookies domain.CookieLookup, name string) *string {
	if override != nil {
		return override
	}
	if cookies == nil {
		return nil
	}
	if values := cookies(name); len(values) > 0 {
		return &values[0]
	}
	return nil
}

// clientIPFromOverride strips the port from the combined "ip:port" field.
// Splitting on the last colon keeps bracketed IPv6 addresses intact; a
// value with no colon is used whole.
func clientIPFromOverride(ipPort *string) *string {
	if ipPort == nil {
		return nil
	}
	if i := strings.LastIndex(*ipPort, ":"); i >= 0 {
		ip := (*ipPort)[:i]
		return &ip
	}
	return ipPort
}

// buildUserData resolves the identity bundle of the outbound event.
// Hashed attributes resolve override first, then the raw source through
// the hasher. Gender, date of birth, external id and subscription id have
// no derivation path and only resolve from overrides. Client IP and user
// agent are technical metadata and are never hashed.
func buildUserData(event *domain.ForwardRequest, cookies domain.CookieLookup) domain.UserData {
	var email, phone *string
	if event.UserData != nil {
		email = event.UserData.EmailAddress
		phone = event.UserData.PhoneNumber
	}

	// A missing address block resolves as an entirely absent address.
	var address domain.SourceAddress
	if event.UserData != nil && event.UserData.Address != nil {
		address = *event.UserData.Address
	}

	return domain.UserData{
		Email:           resolveHashed(event.EmailOverride, email),
		Phone:           resolveHashed(event.PhoneOverride, phone),
		FirstName:       resolveHashed(event.FirstNameOverride, address.FirstName),
		LastName:        resolveHashed(event.LastNameOverride, address.LastName),
		City:            resolveHashed(event.CityOverride, address.City),
		Region:          resolveHashed(event.RegionOverride, address.Region),
		PostalCode:      resolveHashed(event.PostalCodeOverride, address.PostalCode),
		Country:         resolveHashed(event.CountryOverride, address.Country),
		Gender:          event.GenderOverride,
		DateOfBirth:     event.DateOfBirthOverride,
		ExternalID:      event.ExternalIDOverride,
		SubscriptionID:  event.SubscriptionIDOverride,
		BrowserID:       resolveCookie(event.BrowserIDOverride, cookies, "_fbp"),
		ClickID:         resolveCookie(event.ClickIDOverride, cookies, "_fbc"),
		ClientIPAddress: clientIPFromOverride(event.IPOverride),
		ClientUserAgent: event.UserAgent,
	}
}
