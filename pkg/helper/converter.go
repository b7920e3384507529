package helper

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// PgText converts a string to pgtype.Text, treating the empty string as NULL.
func PgText(s string) pgtype.Text {
	return pgtype.Text{
		String: s,
		Valid:  s != "",
	}
}

func TextFromPg(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}

	return t.String
}

// Int8FromPg returns nil for NULL so JSON renders null instead of 0.
func Int8FromPg(i pgtype.Int8) *int64 {
	if !i.Valid {
		return nil
	}

	v := i.Int64

	return &v
}

var (
	// AppTimezone holds the application's timezone
	AppTimezone *time.Location
)

// InitTimezone initializes the application timezone
func InitTimezone(timezone string) error {
	if timezone == "" {
		timezone = "UTC"
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		AppTimezone = time.UTC

		return err
	}

	AppTimezone = loc

	return nil
}

// NowInAppTimezone returns the current time in the application's timezone
func NowInAppTimezone() time.Time {
	if AppTimezone == nil {
		return time.Now().UTC()
	}

	return time.Now().In(AppTimezone)
}

// TodayInAppTimezone is midnight of the current local date.
func TodayInAppTimezone() time.Time {
	now := NowInAppTimezone()

	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
