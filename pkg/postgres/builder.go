package postgres

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
)

func ConnectionBuilder(host string, port int, user, password, dbName, sslMode string) string {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		host,
		port,
		user,
		password,
		dbName,
		sslMode,
	)

	return dsn
}

// URLBuilder builds the postgres:// form, which the migration driver requires.
func URLBuilder(host string, port int, user, password, dbName, sslMode string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     net.JoinHostPort(host, strconv.Itoa(port)),
		Path:     "/" + dbName,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}

	return u.String()
}
