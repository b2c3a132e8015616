// Copyright 2024, Chef.  All rights reserved.
// https://github.com/q191201771/dtsuhd
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package dtsuhd

import "github.com/q191201771/naza/pkg/bele"

// beUint64 读取大端64位整数。naza/pkg/bele没有导出BeUint64，用两次BeUint32拼出来
func beUint64(b []byte) uint64 {
	hi := uint64(bele.BeUint32(b))
	lo := uint64(bele.BeUint32(b[4:]))
	return hi<<32 | lo
}

// StrmdataPayload 在buf起始处寻找原生的DTSHDHDR容器，跳过它和后续任意数量的
// 其他chunk，定位到STRMDATA chunk的负载区间。
//
// buf必须以"DTSHDHDR"这8个字节开头，否则返回(0, 0)表示不是一个原生容器。
// 找到STRMDATA后返回的offset是负载本身的起始偏移（chunk头之后），size是
// STRMDATA chunk头里记录的负载字节数；找不到时返回(0, 0)。
func StrmdataPayload(buf []byte) (offset int, size int64) {
	if len(buf) < containerChunkHeaderBytes || string(buf[:8]) != "DTSHDHDR" {
		return 0, 0
	}

	pos := 0
	for pos+containerChunkHeaderBytes <= len(buf) {
		tag := string(buf[pos : pos+8])
		chunkSize := beUint64(buf[pos+8:])

		if tag == "STRMDATA" {
			return pos + containerChunkHeaderBytes, int64(chunkSize)
		}
		pos += containerChunkHeaderBytes + int(chunkSize)
	}
	return 0, 0
}
