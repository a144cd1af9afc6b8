package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders is the set of lowercase HTTP header names that carry
// credentials. The HTTP middleware's RedactHeaders reads the same set, so
// header redaction and log redaction stay in step.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// redactedFields are attribute names masked in every record: credentials,
// and the end-user addresses a group feed is queried by.
var redactedFields = []string{
	"password",
	"secret",
	"token",
	"owner_email",
	"member_email",
}

// redactedPrefixes catch variants such as "secret_key" or "api_key_v2".
var redactedPrefixes = []string{"secret_", "api_key"}

// redactedValues match credentials inside arbitrary string values.
var redactedValues = []*regexp.Regexp{
	// Bearer <token>
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	// header.payload.signature; ten characters per part keeps version
	// strings out.
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	// api_key=<value>, apikey: <value>
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
}

// newRedactAttr returns the masq ReplaceAttr used by New.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0,
		len(SensitiveHeaders)+len(redactedFields)+len(redactedPrefixes)+len(redactedValues))

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range redactedFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range redactedPrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range redactedValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
