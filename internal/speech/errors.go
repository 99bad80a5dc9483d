package speech

import "strings"

// IsRateLimited reports whether err is a quota or rate-limit failure of
// the remote API. Classification is by message, so wrapped provider
// errors keep their meaning.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "resource_exhausted")
}
