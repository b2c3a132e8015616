// Copyright 2024, Chef.  All rights reserved.
// https://github.com/q191201771/dtsuhd
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package dtsuhd

import (
	"testing"

	"github.com/q191201771/naza/pkg/assert"
)

func chunkHeader(tag string, size uint64) []byte {
	b := make([]byte, 16)
	copy(b, tag)
	for i := 0; i < 8; i++ {
		b[15-i] = byte(size >> uint(8*i))
	}
	return b
}

func TestStrmdataPayloadFound(t *testing.T) {
	strmdataPayload := make([]byte, 10)
	var buf []byte
	buf = append(buf, chunkHeader("DTSHDHDR", 0)...)
	buf = append(buf, chunkHeader("STRMDATA", uint64(len(strmdataPayload)))...)
	buf = append(buf, strmdataPayload...)

	offset, size := StrmdataPayload(buf)
	assert.Equal(t, 32, offset, "fxxk.")
	assert.Equal(t, int64(10), size, "fxxk.")
}

func TestStrmdataPayloadSkipsOtherChunks(t *testing.T) {
	otherPayload := make([]byte, 4)
	strmdataPayload := make([]byte, 6)
	var buf []byte
	buf = append(buf, chunkHeader("DTSHDHDR", 0)...)
	buf = append(buf, chunkHeader("FOOOOOOO", uint64(len(otherPayload)))...)
	buf = append(buf, otherPayload...)
	buf = append(buf, chunkHeader("STRMDATA", uint64(len(strmdataPayload)))...)
	buf = append(buf, strmdataPayload...)

	offset, size := StrmdataPayload(buf)
	assert.Equal(t, 16+16+4+16, offset, "fxxk.")
	assert.Equal(t, int64(6), size, "fxxk.")
}

func TestStrmdataPayloadNotAContainer(t *testing.T) {
	buf := []byte{0x40, 0x41, 0x1b, 0xf2, 0x00, 0x00, 0x00, 0x00}
	offset, size := StrmdataPayload(buf)
	assert.Equal(t, 0, offset, "fxxk.")
	assert.Equal(t, int64(0), size, "fxxk.")
}
