package testutil

// MaxFuzzArgs bounds the number of arguments a fuzz input is split into.
const MaxFuzzArgs = 8

// ClampString truncates data to at most max bytes.
func ClampString(data string, max int) string {
	if len(data) > max {
		return data[:max]
	}
	return data
}
