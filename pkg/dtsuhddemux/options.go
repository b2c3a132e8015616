// Copyright 2024, Chef.  All rights reserved.
// https://github.com/q191201771/dtsuhd
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package dtsuhddemux

// StreamReaderOption NewStreamReader的可选配置项，用法与httpflv.PullSessionOption一致
type StreamReaderOption struct {
	// CopyPayload 为true时，Next返回的Packet.Payload是独立拷贝，
	// 调用方可以跨越下一次Feed/Next调用继续持有；默认false，省掉一次拷贝
	CopyPayload bool
}

var defaultStreamReaderOption = StreamReaderOption{
	CopyPayload: false,
}

type ModStreamReaderOption func(option *StreamReaderOption)

// DemuxerOption Open的可选配置项
type DemuxerOption struct {
	// InitialReadBytes Open为了定位payload区域和解析首帧一次性读取的字节数，
	// 对应read_header里avio_read的DTSUHD_BUFFER_SIZE；默认demuxerReadChunkBytes
	InitialReadBytes int
}

var defaultDemuxerOption = DemuxerOption{
	InitialReadBytes: demuxerReadChunkBytes,
}

type ModDemuxerOption func(option *DemuxerOption)
