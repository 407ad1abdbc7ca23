package app

import (
	"net/url"
	"regexp"
	"strings"
)

const (
	preparedBinaryParam  = "disable_prepared_binary_result"
	maxTracedQueryLength = 512
)

var queryWhitespace = regexp.MustCompile(`\s+`)

// normalizeDBURL adds disable_prepared_binary_result=yes for poolers such as pgbouncer
// in transaction mode. An explicit value in the URL wins.
func normalizeDBURL(raw string, disablePreparedBinary bool) string {
	if !disablePreparedBinary {
		return raw
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	if query.Get(preparedBinaryParam) != "" {
		return raw
	}
	query.Set(preparedBinaryParam, "yes")
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// dbNameFromURL accepts both URL and key=value DSN forms.
func dbNameFromURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if parsed, err := url.Parse(raw); err == nil && parsed.Scheme != "" {
		if name := strings.Trim(parsed.Path, "/ "); name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(raw) {
		name, ok := strings.CutPrefix(token, "dbname=")
		if !ok {
			continue
		}
		if name = strings.Trim(name, `"'`); name != "" {
			return name
		}
	}
	return ""
}

func formatDBQueryForTrace(query string) string {
	query = queryWhitespace.ReplaceAllString(strings.TrimSpace(query), " ")
	if len(query) <= maxTracedQueryLength {
		return query
	}
	return query[:maxTracedQueryLength] + "..."
}
