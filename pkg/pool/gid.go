package pool

import "runtime"

// goroutineID extracts the numeric id of the calling goroutine from the
// runtime stack header ("goroutine 123 [running]:"). Only the opt-in
// wait-deadlock check uses it; nothing else in the pool depends on
// goroutine identity.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	s := buf[:n]

	const prefix = "goroutine "
	if len(s) <= len(prefix) {
		return 0
	}
	s = s[len(prefix):]

	var id uint64
	for _, c := range s {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}
