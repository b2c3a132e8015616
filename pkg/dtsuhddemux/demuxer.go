// Copyright 2024, Chef.  All rights reserved.
// https://github.com/q191201771/dtsuhd
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package dtsuhddemux

import (
	"fmt"
	"io"

	"github.com/q191201771/naza/pkg/unique"

	"github.com/q191201771/dtsuhd/pkg/dtsuhd"
)

// UKPreDemuxer Demuxer的唯一标识前缀
const UKPreDemuxer = "DTSUHDDEMUXER"

var siUKDemuxer = unique.NewSingleGenerator(UKPreDemuxer)

// Demuxer 面向可随机访问的输入（文件、本地磁盘镶像）的解复用适配层，对应
// original_source/libavformat/dtsuhddec.c里的DTSUHDDemuxContext，
// probe/read_header/read_packet三段分别对应Probe/Open/ReadPacket
type Demuxer struct {
	UniqueKey string

	r         io.ReadSeeker
	dataStart int64
	dataEnd   int64
	pos       int64
}

// Probe 对应probe：定位容器payload区域、向前扫描同步字，尝试解析一帧，
// 成功返回ProbeScoreMax-3，失败返回0
func Probe(data []byte) int {
	offset, _ := dtsuhd.StrmdataPayload(data)

	h := dtsuhd.NewParserState()
	for offset+4 < len(data) {
		if dtsuhd.IsSyncWord(beUint32At(data, offset)) {
			if dtsuhd.ParseFrame(h, data[offset:], nil, nil) == dtsuhd.StatusOK {
				return ProbeScoreMax - 3
			}
		}
		offset++
	}
	return 0
}

func beUint32At(b []byte, offset int) uint32 {
	if offset+4 > len(b) {
		return 0
	}
	return uint32(b[offset])<<24 | uint32(b[offset+1])<<16 | uint32(b[offset+2])<<8 | uint32(b[offset+3])
}

// Open 对应read_header：读取一块起始数据，定位容器payload区域，把底层reader
// seek到第一个同步字处，解析一帧拿到DescriptorInfo；解析失败或描述符无效都是
// 不可恢复的错误，调用方应该放弃这个输入
func Open(r io.ReadSeeker, modOptions ...ModDemuxerOption) (*Demuxer, dtsuhd.DescriptorInfo, error) {
	option := defaultDemuxerOption
	for _, fn := range modOptions {
		fn(&option)
	}

	var di dtsuhd.DescriptorInfo

	buf := make([]byte, option.InitialReadBytes)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, di, err
	}
	buf = buf[:n]

	dataStart, strmdataSize := dtsuhd.StrmdataPayload(buf)

	var dataEnd int64
	if dataStart == 0 {
		// 不是DTSHDHDR容器文件，把整个输入都当作原始帧序列，一直解析到文件末尾
		size, serr := r.Seek(0, io.SeekEnd)
		if serr != nil {
			return nil, di, fmt.Errorf("%w: %v", ErrNotSeekable, serr)
		}
		dataEnd = size
	} else {
		dataEnd = int64(dataStart) + strmdataSize
	}

	dataStart += dtsuhd.FindSyncWord(buf[dataStart:])

	if _, err := r.Seek(int64(dataStart), io.SeekStart); err != nil {
		return nil, di, fmt.Errorf("%w: %v", ErrNotSeekable, err)
	}

	var fi dtsuhd.FrameInfo
	state := dtsuhd.NewParserState()
	status := dtsuhd.ParseFrame(state, buf[dataStart:], &fi, &di)
	if status != dtsuhd.StatusOK || !di.Valid {
		return nil, di, newErrInvalidFrame(status)
	}

	uk := siUKDemuxer.GenUniqueKey()
	Log.Infof("[%s] lifecycle new Demuxer. dataStart=%d, dataEnd=%d", uk, dataStart, dataEnd)

	return &Demuxer{
		UniqueKey: uk,
		r:         r,
		dataStart: int64(dataStart),
		dataEnd:   dataEnd,
		pos:       int64(dataStart),
	}, di, nil
}

// ReadPacket 对应read_packet：从当前位置起读取最多MaxFrameSize字节的原始数据，
// 直到payload区域耗尽为止返回io.EOF；不会重新解析内容，因为Open时已经为了拿到
// descriptor解析过一次了
func (d *Demuxer) ReadPacket() (Packet, error) {
	left := d.dataEnd - d.pos
	if left <= 0 {
		return Packet{}, io.EOF
	}

	size := int64(dtsuhd.MaxFrameSize)
	if left < size {
		size = left
	}

	buf := make([]byte, size)
	n, err := io.ReadFull(d.r, buf)
	if err != nil && err != io.ErrUnexpectedEOF {
		return Packet{}, err
	}
	buf = buf[:n]
	d.pos += int64(n)

	return Packet{
		FrameBytes: n,
		Payload:    buf,
	}, nil
}

// Dispose 释放Demuxer持有的资源，不关闭底层reader（由调用方持有其生命周期）
func (d *Demuxer) Dispose() {
	Log.Infof("[%s] lifecycle dispose Demuxer.", d.UniqueKey)
}
