// Package osext exposes OS-native thread tuning: scheduling priority, CPU
// affinity, and thread naming. Platform-specific implementations live in
// separate files guarded by build tags; unsupported platforms return an
// error.
//
// These calls act on the calling OS thread. To use them from a pool worker,
// pin the goroutine first with runtime.LockOSThread, typically inside the
// pool's InitHook. The pool core itself never calls into this package.
package osext

// SetThreadAffinity pins the calling OS thread to the given set of logical
// CPUs.
func SetThreadAffinity(cpus []int) error {
	return setThreadAffinity(cpus)
}

// GetThreadAffinity returns the logical CPUs the calling OS thread may run
// on.
func GetThreadAffinity() ([]int, error) {
	return getThreadAffinity()
}

// SetThreadPriority sets the scheduling niceness of the calling OS thread.
// Lower values mean higher priority; raising priority usually requires
// elevated privileges.
func SetThreadPriority(nice int) error {
	return setThreadPriority(nice)
}

// GetThreadPriority returns the scheduling niceness of the calling OS
// thread.
func GetThreadPriority() (int, error) {
	return getThreadPriority()
}

// SetThreadName names the calling OS thread as shown by system tools.
func SetThreadName(name string) error {
	return setThreadName(name)
}
