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

func TestBitReaderReadPeek(t *testing.T) {
	data := []byte{0xab, 0xcd, 0xef, 0x01}
	br := NewBitReader(data)

	assert.Equal(t, uint64(0xa), br.Peek(4), "fxxk.")
	assert.Equal(t, uint64(0xa), br.Read(4), "fxxk.")
	assert.Equal(t, 4, br.Pos(), "fxxk.")
	assert.Equal(t, uint64(0xbcd), br.Read(12), "fxxk.")
	assert.Equal(t, uint64(0xef01), br.Read(16), "fxxk.")
	assert.Equal(t, 32, br.Pos(), "fxxk.")
}

func TestBitReaderOverrunReturnsZero(t *testing.T) {
	data := []byte{0xff}
	br := NewBitReader(data)
	br.Skip(4)
	assert.Equal(t, uint64(0xf0), br.Read(8), "fxxk.")
	assert.Equal(t, 12, br.Pos(), "fxxk.")
}

func TestBitReaderAlignTo(t *testing.T) {
	data := []byte{0x12, 0x34, 0x56}
	br := NewBitReader(data)
	br.Read(20)
	br.AlignTo(8)
	assert.Equal(t, uint64(0x34), br.Read(8), "fxxk.")
}
