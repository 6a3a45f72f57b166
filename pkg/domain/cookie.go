package domain

import "time"

// Cookie is a single cookie as observed by a collaborator.
type Cookie struct {
	Name     string `json:"name"`
	Secure   bool   `json:"secure"`
	HTTPOnly bool   `json:"httpOnly"`
}

// CookieSnapshot is the cookie telemetry collected for a page.
type CookieSnapshot struct {
	URL             string    `json:"url"`
	CookieCount     int       `json:"cookieCount"`
	HTTPOnlyCookies int       `json:"httpOnlyCookies"`
	SecureCookies   int       `json:"secureCookies"`
	TrackingCookies int       `json:"trackingCookies"`
	RecordedAt      time.Time `json:"recordedAt"`
}
