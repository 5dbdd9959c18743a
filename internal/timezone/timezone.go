package timezone

import "time"

const DefaultTimezone = "America/New_York"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// IsValidDate checks the YYYY-MM-DD shape of booking dates. Below the
// handler layer the date stays an opaque string.
func IsValidDate(dateStr string, tz string) bool {
	_, err := time.ParseInLocation("2006-01-02", dateStr, Location(tz))
	return err == nil
}
