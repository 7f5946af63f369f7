package database

import (
	"net/url"
	"strings"
)

// ConstructDatabaseURL combines a base connection URL with a database name.
// sslmode=disable is added when no sslmode is present; existing query
// parameters are preserved. An empty database name, or a base URL that does
// not parse, passes through unchanged.
func ConstructDatabaseURL(baseURL, databaseName string) string {
	if databaseName == "" {
		return baseURL
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return baseURL
	}

	u.Path = strings.TrimRight(u.Path, "/") + "/" + databaseName

	query := u.Query()
	if !query.Has("sslmode") {
		query.Set("sslmode", "disable")
	}
	u.RawQuery = query.Encode()

	return u.String()
}
