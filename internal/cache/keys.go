package cache

// RateLimitKey returns the counter key for a client address.
func RateLimitKey(addr string) string {
	return "ratelimit:ip:" + addr
}
