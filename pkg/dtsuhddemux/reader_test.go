// Copyright 2024, Chef.  All rights reserved.
// https://github.com/q191201771/dtsuhd
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package dtsuhddemux

import (
	"testing"

	"github.com/q191201771/naza/pkg/assert"

	"github.com/q191201771/dtsuhd/pkg/dtsuhd"
)

func TestStreamReaderFeedAndNextSingleFrame(t *testing.T) {
	data := buildMinimalSyncFrame()

	r := NewStreamReader()
	n := r.Feed(data)
	assert.Equal(t, len(data), n, "fxxk.")

	pkt, status := r.Next()
	assert.Equal(t, dtsuhd.StatusOK, status, "fxxk.")
	assert.Equal(t, len(data), pkt.FrameBytes, "fxxk.")
	assert.Equal(t, 48000, pkt.SampleRate, "fxxk.")
	assert.Equal(t, true, pkt.Sync, "fxxk.")

	_, status = r.Next()
	assert.Equal(t, dtsuhd.StatusIncomplete, status, "fxxk.")
}

func TestStreamReaderTwoFramesOneFeed(t *testing.T) {
	data := buildTwoFrameStream()

	r := NewStreamReader()
	n := r.Feed(data)
	assert.Equal(t, len(data), n, "fxxk.")

	var packets []Packet
	for {
		pkt, status := r.Next()
		if status == dtsuhd.StatusIncomplete {
			break
		}
		assert.Equal(t, dtsuhd.StatusOK, status, "fxxk.")
		packets = append(packets, pkt)
	}

	assert.Equal(t, 2, len(packets), "fxxk.")
}

// TestStreamReaderChunkedDeliveryMatchesWholeBuffer 验证把同一段数据拆成任意
// 字节边界分批Feed，得到的帧序列与一次性Feed整段数据完全一致（分块投递不变性）
func TestStreamReaderChunkedDeliveryMatchesWholeBuffer(t *testing.T) {
	data := buildTwoFrameStream()

	whole := NewStreamReader()
	whole.Feed(data)
	var wholeFrames []int
	for {
		pkt, status := whole.Next()
		if status == dtsuhd.StatusIncomplete {
			break
		}
		wholeFrames = append(wholeFrames, pkt.FrameBytes)
	}

	chunked := NewStreamReader()
	var chunkedFrames []int
	const splitStep = 7
	for off := 0; off < len(data); {
		end := off + splitStep
		if end > len(data) {
			end = len(data)
		}
		n := chunked.Feed(data[off:end])
		off += n

		for {
			pkt, status := chunked.Next()
			if status == dtsuhd.StatusIncomplete {
				break
			}
			chunkedFrames = append(chunkedFrames, pkt.FrameBytes)
		}
	}

	assert.Equal(t, wholeFrames, chunkedFrames, "fxxk.")
}

func TestStreamReaderResyncsPastGarbagePrefix(t *testing.T) {
	garbage := []byte{0xde, 0xad, 0xbe, 0xef, 0x00}
	data := append(garbage, buildMinimalSyncFrame()...)

	r := NewStreamReader()
	r.Feed(data)

	pkt, status := r.Next()
	assert.Equal(t, dtsuhd.StatusOK, status, "fxxk.")
	assert.Equal(t, true, pkt.Sync, "fxxk.")
}

func TestStreamReaderCopyPayloadOptionIsolatesFromWindow(t *testing.T) {
	r := NewStreamReader(func(option *StreamReaderOption) {
		option.CopyPayload = true
	})
	r.Feed(buildMinimalSyncFrame())

	pkt, status := r.Next()
	assert.Equal(t, dtsuhd.StatusOK, status, "fxxk.")
	before := append([]byte(nil), pkt.Payload...)

	// 直接改写窗口底层存储，验证CopyPayload=true时Payload不会跟着变
	r.win.core[0] ^= 0xff

	assert.Equal(t, before, pkt.Payload, "fxxk.")
}

func TestStreamReaderWithoutCopyPayloadAliasesWindow(t *testing.T) {
	r := NewStreamReader()
	r.Feed(buildMinimalSyncFrame())

	pkt, status := r.Next()
	assert.Equal(t, dtsuhd.StatusOK, status, "fxxk.")
	original := pkt.Payload[0]

	r.win.core[0] ^= 0xff

	assert.Equal(t, original^0xff, pkt.Payload[0], "fxxk.")
}
