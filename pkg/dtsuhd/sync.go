// Copyright 2024, Chef.  All rights reserved.
// https://github.com/q191201771/dtsuhd
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package dtsuhd

import "github.com/q191201771/naza/pkg/bele"

// FindSyncWord 从buf的起始处向后逐字节扫描，返回第一个同步字或非同步字出现的
// 字节偏移；如果一直扫到buf末尾（不够4字节可比较）都没找到，返回len(buf)
func FindSyncWord(buf []byte) int {
	i := 0
	for i+4 <= len(buf) {
		word := bele.BeUint32(buf[i:])
		if IsSyncWord(word) {
			return i
		}
		i++
	}
	return len(buf)
}
