package services

// MayAsk reports whether a user with the given completed-question count may
// start another chat exchange under the process-wide ceiling. The check is
// advisory: the repository re-enforces the ceiling atomically when the
// exchange is committed.
func MayAsk(currentCount, ceiling int) bool {
	return currentCount < ceiling
}
