package middleware

import (
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

// SecurityHeadersConfig configures the Content-Security-Policy,
// Referrer-Policy and Permissions-Policy headers.
type SecurityHeadersConfig struct {
	// ConnectSources are extra origins the client may fetch from, such as
	// the S3 host serving presigned export downloads. Values may be full
	// URLs; only scheme and host are kept.
	ConnectSources []string
	// DocsPrefix marks paths served with a policy that lets the swagger UI
	// run its inline bootstrap script. Empty disables the exception.
	DocsPrefix string
	// ContentSecurityPolicy replaces the built policy when set.
	ContentSecurityPolicy string
	ReferrerPolicy        string
	PermissionsPolicy     string
}

const (
	defaultReferrerPolicy = "strict-origin-when-cross-origin"
	// Voice notes are recorded in the browser; nothing else needs devices.
	defaultPermissionsPolicy = "camera=(), microphone=(self), geolocation=(), payment=()"
)

// BuildCSP assembles the policy for the API. Audio previews are played from
// blob: URLs. inlineScripts relaxes script-src for the swagger UI only.
func BuildCSP(connectSources []string, inlineScripts bool) string {
	connect := []string{"'self'"}
	seen := map[string]bool{"'self'": true}
	for _, src := range connectSources {
		origin := Origin(src)
		if origin == "" || seen[origin] {
			continue
		}
		seen[origin] = true
		connect = append(connect, origin)
	}

	script := "script-src 'self'"
	if inlineScripts {
		script += " 'unsafe-inline'"
	}

	return strings.Join([]string{
		"default-src 'self'",
		script,
		"style-src 'self' 'unsafe-inline'",
		"img-src 'self' data: https:",
		"media-src 'self' blob:",
		"font-src 'self'",
		"connect-src " + strings.Join(connect, " "),
		"frame-ancestors 'none'",
		"base-uri 'self'",
		"form-action 'self'",
	}, "; ")
}

// Origin reduces a URL to scheme://host. It returns "" for values that are
// not absolute http(s) URLs.
func Origin(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// S3Origin is the virtual-hosted origin presigned URLs for bucket point at
func S3Origin(bucket, region string) string {
	if bucket == "" {
		return ""
	}
	if region == "" || region == "us-east-1" {
		return "https://" + bucket + ".s3.amazonaws.com"
	}
	return "https://" + bucket + ".s3." + region + ".amazonaws.com"
}

// SecurityHeaders sets the security headers on every response
func SecurityHeaders(config SecurityHeadersConfig) echo.MiddlewareFunc {
	apiPolicy := config.ContentSecurityPolicy
	if apiPolicy == "" {
		apiPolicy = BuildCSP(config.ConnectSources, false)
	}
	docsPolicy := BuildCSP(config.ConnectSources, true)
	if config.ReferrerPolicy == "" {
		config.ReferrerPolicy = defaultReferrerPolicy
	}
	if config.PermissionsPolicy == "" {
		config.PermissionsPolicy = defaultPermissionsPolicy
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			policy := apiPolicy
			if config.DocsPrefix != "" && strings.HasPrefix(c.Request().URL.Path, config.DocsPrefix) {
				policy = docsPolicy
			}

			h := c.Response().Header()
			h.Set("Content-Security-Policy", policy)
			h.Set("Referrer-Policy", config.ReferrerPolicy)
			h.Set("Permissions-Policy", config.PermissionsPolicy)
			return next(c)
		}
	}
}
