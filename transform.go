// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fortio

import (
	"encoding/binary"

	"code.hybscloud.com/fortio/internal/bo"
)

// hostEndian is the machine's native byte order, detected once: a one-shot,
// immutable value, not mutable configuration.
var hostEndian = bo.Native()

// needsTransform reports whether payloads framed in streamEndian must be
// byte-swapped to be read/written in host order, for elements of elemSize
// bytes, given the call's transform flag.
func needsTransform(on bool, elemSize int, streamEndian binary.ByteOrder) bool {
	if !on || elemSize == 1 {
		return false
	}
	return sameOrder(streamEndian, hostEndian) == false
}

func sameOrder(a, b binary.ByteOrder) bool {
	// binary.ByteOrder has no equality method; the stdlib implementations
	// are comparable values (binary.bigEndian{}/binary.littleEndian{}), and
	// that is the only pair of concrete types ParseOptions ever produces.
	return a == b
}

// swapInPlace byte-swaps n elements of width elemSize within buf, in place.
// elemSize of 1 is a no-op. Widths other than 1/2/4/8 never reach here
// (elemSize always comes from a Kind); such a width would be left as is.
func swapInPlace(buf []byte, elemSize int) {
	switch elemSize {
	case 1:
		return
	case 2:
		for i := 0; i+2 <= len(buf); i += 2 {
			buf[i], buf[i+1] = buf[i+1], buf[i]
		}
	case 4:
		for i := 0; i+4 <= len(buf); i += 4 {
			buf[i], buf[i+3] = buf[i+3], buf[i]
			buf[i+1], buf[i+2] = buf[i+2], buf[i+1]
		}
	case 8:
		for i := 0; i+8 <= len(buf); i += 8 {
			buf[i], buf[i+7] = buf[i+7], buf[i]
			buf[i+1], buf[i+6] = buf[i+6], buf[i+1]
			buf[i+2], buf[i+5] = buf[i+5], buf[i+2]
			buf[i+3], buf[i+4] = buf[i+4], buf[i+3]
		}
	}
}
