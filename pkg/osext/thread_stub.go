//go:build !linux

package osext

import "errors"

var errUnsupported = errors.New("osext: not supported on this platform")

func setThreadAffinity([]int) error {
	return errUnsupported
}

func getThreadAffinity() ([]int, error) {
	return nil, errUnsupported
}

func setThreadPriority(int) error {
	return errUnsupported
}

func getThreadPriority() (int, error) {
	return 0, errUnsupported
}

func setThreadName(string) error {
	return errUnsupported
}
