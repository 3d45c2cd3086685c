package element

import (
	"strings"
	"time"
)

const CheckDateFormat = "2006-01-02"

func CheckDateKey(key string) string {
	return "check_date:" + key
}

// legacyCheckDateKeys are keys that are used in the wild to record
// the survey date of key.
func legacyCheckDateKeys(key string) []string {
	return []string{
		key + ":check_date",
		"lastcheck:" + key,
		key + ":lastcheck",
		"last_checked:" + key,
		key + ":last_checked",
	}
}

// IsCheckDateKey returns whether key records the survey date of another
// key, either as check_date:<key> or in one of the legacy forms.
func IsCheckDateKey(key string) bool {
	for _, prefix := range []string{"check_date:", "lastcheck:", "last_checked:"} {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	for _, suffix := range []string{":check_date", ":lastcheck", ":last_checked"} {
		if strings.HasSuffix(key, suffix) {
			return true
		}
	}
	return false
}

// HasCheckDateForKey returns whether any check date for key is present.
func (t *Tags) HasCheckDateForKey(key string) bool {
	if t.Has(CheckDateKey(key)) {
		return true
	}
	for _, k := range legacyCheckDateKeys(key) {
		if t.Has(k) {
			return true
		}
	}
	return false
}

// UpdateCheckDateForKey sets check_date:<key> to the date of now and
// removes all legacy check date keys for key.
func (t *Tags) UpdateCheckDateForKey(key string, now time.Time) {
	t.Set(CheckDateKey(key), now.Format(CheckDateFormat))
	for _, k := range legacyCheckDateKeys(key) {
		t.Remove(k)
	}
}
