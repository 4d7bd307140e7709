package request

import "strings"

type ClientType string

const (
	ClientWeb    ClientType = "WEB"
	ClientMobile ClientType = "MOBILE"
	ClientKiosk  ClientType = "KIOSK"
)

// ResolveClientType prefers the explicit X-Client-Type header and falls back
// to sniffing the user agent. Native apps default to MOBILE.
func ResolveClientType(header, userAgent string) ClientType {
	switch strings.ToUpper(strings.TrimSpace(header)) {
	case string(ClientWeb):
		return ClientWeb
	case string(ClientMobile):
		return ClientMobile
	case string(ClientKiosk):
		return ClientKiosk
	}

	ua := strings.ToLower(userAgent)
	if strings.Contains(ua, "mozilla") || strings.Contains(ua, "chrome") || strings.Contains(ua, "safari") {
		return ClientWeb
	}
	return ClientMobile
}

// IsWebClient reports whether tokens should travel as cookies.
func IsWebClient(t ClientType) bool {
	return t == ClientWeb || t == ClientKiosk
}
