//go:build linux

package osext

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

func setThreadAffinity(cpus []int) error {
	var set unix.CPUSet
	set.Zero()
	for _, cpu := range cpus {
		set.Set(cpu)
	}
	return unix.SchedSetaffinity(0, &set)
}

func getThreadAffinity() ([]int, error) {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return nil, err
	}
	var cpus []int
	for cpu := 0; cpu < len(set)*64; cpu++ {
		if set.IsSet(cpu) {
			cpus = append(cpus, cpu)
		}
	}
	return cpus, nil
}

func setThreadPriority(nice int) error {
	return unix.Setpriority(unix.PRIO_PROCESS, 0, nice)
}

func getThreadPriority() (int, error) {
	prio, err := unix.Getpriority(unix.PRIO_PROCESS, 0)
	if err != nil {
		return 0, err
	}
	// The syscall reports 20-nice to keep the return value non-negative.
	return 20 - prio, nil
}

func setThreadName(name string) error {
	// The kernel limits thread names to 15 bytes plus the terminator.
	b := []byte(name)
	if len(b) > 15 {
		b = b[:15]
	}
	b = append(b, 0)
	return unix.Prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(&b[0])), 0, 0, 0)
}
