package ioctl

import (
	"reflect"

	goerrors "github.com/go-errors/errors"
	"golang.org/x/sys/unix"
)

// Do executes the ioctl call with a pointer argument.
func Do(fd uintptr, command Command, ptr any) error {
	var p uintptr
	if ptr != nil {
		p = reflect.ValueOf(ptr).Pointer()
	}
	return Call(fd, uintptr(command), p)
}

// Call does a plain ioctl system call.
func Call(fd, command, arg uintptr) error {
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, command, arg); errno != 0 {
		return goerrors.Errorf("%s failed: %w", Command(command), errno)
	}
	return nil
}
