// Copyright 2024, Chef.  All rights reserved.
// https://github.com/q191201771/dtsuhd
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package dtsuhddemux

import "github.com/q191201771/dtsuhd/pkg/dtsuhd"

// 下面这套bit写游标和五张VarField表是pkg/dtsuhd内部实现细节的只读副本，专门
// 用来在本包的测试里拼装一个已知合法的最小同步帧，不归属于任何导出的公共API

var (
	fixtureVarFieldBitsUsed = [8]int{1, 1, 1, 1, 2, 2, 3, 3}
	fixtureTablePayload     = [4]int{5, 8, 10, 12}
	fixtureTableChunkSizes  = [4]int{6, 9, 12, 15}
	fixtureTable2468        = [4]int{2, 4, 6, 8}
	fixtureTableAudioChunks = [4]int{9, 11, 13, 16}
	fixtureTableAudPres     = [4]int{0, 2, 4, 4}
)

type fixtureBitWriter struct {
	data []byte
	pos  int
}

func newFixtureBitWriter(size int) *fixtureBitWriter {
	return &fixtureBitWriter{data: make([]byte, size)}
}

func (w *fixtureBitWriter) writeBits(n int, v uint64) {
	for n > 0 {
		byteIndex := w.pos >> 3
		bitOffset := w.pos & 7
		avail := 8 - bitOffset
		take := avail
		if take > n {
			take = n
		}

		shift := n - take
		chunk := byte((v >> uint(shift)) & (1<<uint(take) - 1))
		w.data[byteIndex] |= chunk << uint(avail-take)

		v &= 1<<uint(shift) - 1
		w.pos += take
		n -= take
	}
}

func (w *fixtureBitWriter) writeVarField(table [4]int, index int, value int) {
	prefixes := map[int]int{0: 0, 1: 4, 2: 6, 3: 7}
	w.writeBits(fixtureVarFieldBitsUsed[prefixes[index]], uint64(prefixes[index]))
	if table[index] > 0 {
		w.writeBits(table[index], uint64(value))
	}
}

// buildMinimalSyncFrame 拼装一个full-channel-mix、mono的最小合法sync帧，
// 布局与pkg/dtsuhd自己的单元测试用的场景完全一致：ftoc_bytes=16,
// chunks[0].bytes=20，navi[0].bytes=10，整帧16+20+10=46字节
func buildMinimalSyncFrame() []byte {
	const ftocBytes = 16
	const chunkBytes = 20
	const audioBytes = 10
	const frameBytes = ftocBytes + chunkBytes + audioBytes

	w := newFixtureBitWriter(frameBytes)

	w.writeBits(32, uint64(dtsuhd.SyncWord))
	w.writeVarField(fixtureTablePayload, 0, ftocBytes-1)
	w.writeBits(1, 1) // full_channel_mix_flag
	w.writeBits(2, 0) // frame_duration sel -> 512
	w.writeBits(3, 0) // frame_duration_code -> *1
	w.writeBits(2, 2) // clock_rate sel -> 48000
	w.writeBits(1, 0) // bTimeStampPresent
	w.writeBits(2, 0) // sample_rate_mod
	w.writeVarField(fixtureTableChunkSizes, 0, chunkBytes)
	w.writeVarField(fixtureTable2468, 0, 0)
	w.writeVarField(fixtureTableAudioChunks, 0, audioBytes)

	crc := computeCrc16Fixture(w.data[:ftocBytes-2])
	w.data[ftocBytes-2] = byte(crc >> 8)
	w.data[ftocBytes-1] = byte(crc & 0xff)

	w.pos = ftocBytes * 8
	w.writeBits(8, 1) // chunk id == 1 (MD01)
	w.writeVarField(fixtureTableAudPres, 0, 0)
	w.writeBits(4, 0) // 4x scaling-data flag bits, all clear
	w.writeBits(1, 0) // multi-frame metadata flag
	w.writeBits(3, 0) // rep_type = CH_MASK_BASED
	w.writeBits(4, 0) // ch_index -> activity mask 0x1

	return w.data
}

var fixtureCrc16Table = [16]uint16{
	0x0000, 0x1021, 0x2042, 0x3063,
	0x4084, 0x50a5, 0x60c6, 0x70e7,
	0x8108, 0x9129, 0xa14a, 0xb16b,
	0xc18c, 0xd1ad, 0xe1ce, 0xf1ef,
}

func computeCrc16Fixture(payload []byte) uint16 {
	crc := uint16(0xffff)
	for _, b := range payload {
		crc = (crc << 4) ^ fixtureCrc16Table[(crc>>12)^uint16(b>>4)]
		crc = (crc << 4) ^ fixtureCrc16Table[(crc>>12)^uint16(b&0xf)]
	}
	return crc
}

// buildTwoFrameStream 把两个完全相同的最小sync帧拼接起来，用于验证流式读取器
// 在多帧连续输入时的行为
func buildTwoFrameStream() []byte {
	frame := buildMinimalSyncFrame()
	out := make([]byte, 0, len(frame)*2)
	out = append(out, frame...)
	out = append(out, frame...)
	return out
}
