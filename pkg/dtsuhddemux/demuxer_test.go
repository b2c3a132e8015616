// Copyright 2024, Chef.  All rights reserved.
// https://github.com/q191201771/dtsuhd
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package dtsuhddemux

import (
	"bytes"
	"io"
	"testing"

	"github.com/q191201771/naza/pkg/assert"
)

func wrapInContainer(payload []byte) []byte {
	var buf []byte
	buf = append(buf, containerChunk("DTSHDHDR", nil)...)
	buf = append(buf, containerChunk("STRMDATA", payload)...)
	return buf
}

func containerChunk(tag string, payload []byte) []byte {
	header := make([]byte, 16)
	copy(header, tag)
	size := uint64(len(payload))
	for i := 0; i < 8; i++ {
		header[15-i] = byte(size >> uint(8*i))
	}
	return append(header, payload...)
}

func TestProbeFindsRawFrame(t *testing.T) {
	score := Probe(buildMinimalSyncFrame())
	assert.Equal(t, ProbeScoreMax-3, score, "fxxk.")
}

func TestProbeFindsFrameInsideContainer(t *testing.T) {
	score := Probe(wrapInContainer(buildMinimalSyncFrame()))
	assert.Equal(t, ProbeScoreMax-3, score, "fxxk.")
}

func TestProbeRejectsGarbage(t *testing.T) {
	score := Probe([]byte{0, 1, 2, 3, 4, 5, 6, 7})
	assert.Equal(t, 0, score, "fxxk.")
}

func TestOpenOnRawFrameStream(t *testing.T) {
	data := buildTwoFrameStream()
	r := bytes.NewReader(data)

	d, di, err := Open(r)
	assert.Equal(t, nil, err, "fxxk.")
	assert.Equal(t, true, di.Valid, "fxxk.")
	assert.Equal(t, 1, di.ChannelCount, "fxxk.")

	pkt, err := d.ReadPacket()
	assert.Equal(t, nil, err, "fxxk.")
	assert.Equal(t, len(data), pkt.FrameBytes, "fxxk.")

	_, err = d.ReadPacket()
	assert.Equal(t, io.EOF, err, "fxxk.")
}

func TestOpenOnContainerWrappedStreamMatchesRawDescriptor(t *testing.T) {
	frame := buildTwoFrameStream()

	rawReader := bytes.NewReader(frame)
	_, rawDi, err := Open(rawReader)
	assert.Equal(t, nil, err, "fxxk.")

	wrapped := wrapInContainer(frame)
	containerReader := bytes.NewReader(wrapped)
	d, containerDi, err := Open(containerReader)
	assert.Equal(t, nil, err, "fxxk.")

	assert.Equal(t, rawDi, containerDi, "fxxk.")

	pkt, err := d.ReadPacket()
	assert.Equal(t, nil, err, "fxxk.")
	assert.Equal(t, len(frame), pkt.FrameBytes, "fxxk.")
}

func TestOpenRejectsInvalidData(t *testing.T) {
	r := bytes.NewReader([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	_, _, err := Open(r)
	assert.Equal(t, true, err != nil, "fxxk.")
}

func TestExtensions(t *testing.T) {
	assert.Equal(t, []string{"dtsx"}, Extensions(), "fxxk.")
}
