// Copyright 2024, Chef.  All rights reserved.
// https://github.com/q191201771/dtsuhd
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package dtsuhddemux

import (
	"github.com/q191201771/naza/pkg/bele"

	"github.com/q191201771/dtsuhd/pkg/dtsuhd"
)

// bitWriter 大端、MSB优先的比特写游标，只在extradata.go里用来拼装"udts" box，
// 对应original_source里write_extradata用PutBitContext做的事
type bitWriter struct {
	data   []byte
	bitPos int
}

func newBitWriter(size int) *bitWriter {
	return &bitWriter{data: make([]byte, size)}
}

func (w *bitWriter) putBit(v bool) {
	if w.bitPos >= len(w.data)*8 {
		return
	}
	if v {
		byteIdx := w.bitPos / 8
		bitIdx := 7 - (w.bitPos % 8)
		w.data[byteIdx] |= 1 << uint(bitIdx)
	}
	w.bitPos++
}

func (w *bitWriter) putUint(n int, v uint64) {
	for i := n - 1; i >= 0; i-- {
		w.putBit((v>>uint(i))&1 == 1)
	}
}

func (w *bitWriter) putBytes(b []byte) {
	for _, v := range b {
		w.putUint(8, uint64(v))
	}
}

// byteLen 已经写入的比特数向上取整到字节数
func (w *bitWriter) byteLen() int {
	return (w.bitPos + 7) / 8
}

// BuildExtradata 按§6定义的字段布局拼装固定的"udts" box，对应write_extradata；
// box_size字段最后才回填
func BuildExtradata(di *dtsuhd.DescriptorInfo) []byte {
	w := newBitWriter(extradataBytes)

	w.putUint(32, 0) // box_size，最后回填
	w.putBytes([]byte("udts"))
	w.putUint(6, uint64(di.DecoderProfileCode))
	w.putUint(2, uint64(di.FrameDurationCode))
	w.putUint(3, uint64(di.MaxPayloadCode))
	w.putUint(5, uint64(di.NumPresCode))
	w.putUint(32, uint64(di.ChannelMask))
	w.putUint(1, uint64(di.BaseSampleFreqCode))
	w.putUint(2, uint64(di.SampleRateMod))
	w.putUint(3, uint64(di.RepType))
	w.putUint(3, 0) // reserved
	w.putUint(1, 0) // reserved
	w.putUint(di.NumPresCode+1, 0) // 每个presentation的id-tag-presence标志位，全部置0

	size := w.byteLen()
	out := w.data[:size]
	bele.BePutUint32(out, uint32(size))
	return out
}
