package browser

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Cookie is one entry of a browser cookie export (JSON array)
type Cookie struct {
	Name     string  `json:"name"`
	Value    string  `json:"value"`
	Domain   string  `json:"domain"`
	Path     string  `json:"path"`
	Expires  float64 `json:"expires"`
	HTTPOnly bool    `json:"httpOnly"`
	Secure   bool    `json:"secure"`
	SameSite string  `json:"sameSite"`
}

// LoadCookies reads a cookie export and drops cookies that already expired.
func LoadCookies(path string) ([]playwright.OptionalCookie, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cookies []Cookie
	if err := json.Unmarshal(data, &cookies); err != nil {
		return nil, err
	}

	now := float64(time.Now().Unix())
	pwCookies := make([]playwright.OptionalCookie, 0, len(cookies))
	for _, c := range cookies {
		if c.Expires > 0 && c.Expires < now {
			continue
		}
		pwCookies = append(pwCookies, c.ToPlaywright())
	}
	return pwCookies, nil
}

// HasSessionCookie reports whether the LinkedIn auth cookie is present.
func HasSessionCookie(cookies []playwright.OptionalCookie) bool {
	for _, c := range cookies {
		if c.Name == "li_at" && c.Value != "" {
			return true
		}
	}
	return false
}

func (c Cookie) ToPlaywright() playwright.OptionalCookie {
	path := c.Path
	if path == "" {
		path = "/"
	}
	pwCookie := playwright.OptionalCookie{
		Name:   c.Name,
		Value:  c.Value,
		Domain: playwright.String(c.Domain),
		Path:   playwright.String(path),
	}

	if c.Expires > 0 {
		pwCookie.Expires = playwright.Float(c.Expires)
	}

	if c.HTTPOnly {
		pwCookie.HttpOnly = playwright.Bool(true)
	}

	if c.Secure {
		pwCookie.Secure = playwright.Bool(true)
	}

	switch strings.ToLower(c.SameSite) {
	case "lax":
		pwCookie.SameSite = playwright.SameSiteAttributeLax
	case "strict":
		pwCookie.SameSite = playwright.SameSiteAttributeStrict
	case "none", "no_restriction":
		pwCookie.SameSite = playwright.SameSiteAttributeNone
	}

	return pwCookie
}
