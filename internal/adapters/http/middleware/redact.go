package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/gapps-query-service/internal/platform/logging"
)

const redactedValue = "[REDACTED]"

// RedactHeaders renders headers as log attributes sorted by name. Values of
// logging.SensitiveHeaders are masked; repeated values are comma-joined.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for _, name := range slices.Sorted(maps.Keys(headers)) {
		value := strings.Join(headers[name], ",")
		if logging.SensitiveHeaders[strings.ToLower(name)] {
			value = redactedValue
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}
