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

func TestFindSyncWordAtStart(t *testing.T) {
	buf := []byte{0x40, 0x41, 0x1b, 0xf2, 0x00, 0x00}
	assert.Equal(t, 0, FindSyncWord(buf), "fxxk.")
}

func TestFindSyncWordOffset(t *testing.T) {
	buf := []byte{0xde, 0xad, 0x71, 0xc4, 0x42, 0xe8, 0x00}
	assert.Equal(t, 2, FindSyncWord(buf), "fxxk.")
}

func TestFindSyncWordNotFound(t *testing.T) {
	buf := []byte{0x00, 0x01, 0x02, 0x03}
	assert.Equal(t, len(buf), FindSyncWord(buf), "fxxk.")
}

func TestIsSyncWord(t *testing.T) {
	assert.Equal(t, true, IsSyncWord(SyncWord), "fxxk.")
	assert.Equal(t, true, IsSyncWord(NonSyncWord), "fxxk.")
	assert.Equal(t, false, IsSyncWord(0x12345678), "fxxk.")
}
