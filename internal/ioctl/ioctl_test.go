package ioctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		mode Mode
		size uint16
		cmd  uintptr
		want Command
		str  string
	}{
		{None, 0, 0x4600, 0x4600, "ioctl (0 bytes) 0x4600"},
		{Read, 160, 0x4600, 0x80a04600, "ioctl read (160 bytes) 0x4600"},
		{Write, 4, 0x4606, 0x40044606, "ioctl write (4 bytes) 0x4606"},
		{Read | Write, 8, 0x01, 0xc0080001, "ioctl write read (8 bytes) 0x0001"},
	}
	for _, test := range tests {
		t.Run(test.str, func(it *testing.T) {
			c := Encode(test.mode, test.size, test.cmd)
			assert.Equal(it, test.want, c)
			assert.Equal(it, test.str, c.String())
		})
	}
}
