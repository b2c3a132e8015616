// Copyright 2024, Chef.  All rights reserved.
// https://github.com/q191201771/dtsuhd
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package dtsuhddemux

import (
	"time"

	"github.com/q191201771/naza/pkg/unique"

	"github.com/q191201771/dtsuhd/pkg/dtsuhd"
)

// UKPreStreamReader StreamReader的唯一标识前缀
const UKPreStreamReader = "DTSUHDSTREAMREADER"

var siUKStreamReader = unique.NewSingleGenerator(UKPreStreamReader)

// StreamReader 把dtsuhd.ParseFrame包装成可以持续喂入任意大小数据块的流式读取器，
// 对应original_source/libavcodec/dtsuhd_parser.c里的DTSUHDParseContext
//
// 典型用法：
//   r := NewStreamReader()
//   for {
//     n := r.Feed(buf)
//     buf = buf[n:]
//     for {
//       pkt, status := r.Next()
//       if status == dtsuhd.StatusIncomplete {
//         break
//       }
//       if status == dtsuhd.StatusOK {
//         ... // 使用pkt
//       }
//     }
//     if len(buf) == 0 {
//       break
//     }
//   }
type StreamReader struct {
	UniqueKey string

	option StreamReaderOption

	state *dtsuhd.ParserState
	win   *window

	// pendingSkip 上一次Next成功返回一帧之后，还没有从窗口里跳过的字节数；
	// 延迟到下一次Feed/Next才真正Skip，这样调用方在两次Next之间还能读到原始帧数据
	pendingSkip int
}

// NewStreamReader 对应dtsuhd_parser.c的parser_init：分配窗口和一个全新的ParserState
func NewStreamReader(modOptions ...ModStreamReaderOption) *StreamReader {
	option := defaultStreamReaderOption
	for _, fn := range modOptions {
		fn(&option)
	}

	uk := siUKStreamReader.GenUniqueKey()
	Log.Infof("[%s] lifecycle new StreamReader.", uk)
	return &StreamReader{
		UniqueKey: uk,
		option:    option,
		state:     dtsuhd.NewParserState(),
		win:       newWindow(),
	}
}

// Feed 把data尽量多地吸纳进内部窗口，并把窗口头部重新对齐到下一个同步字，
// 对应append_buffer；返回值是data里被实际消费掉的字节数，调用方应该用
// data[n:]重试剩余部分
func (r *StreamReader) Feed(data []byte) int {
	if r.pendingSkip > 0 {
		r.win.Skip(r.pendingSkip)
		r.pendingSkip = 0
	}

	n := r.win.Write(data)
	r.realign()
	return n
}

// realign 确保窗口头部是一个同步字，跳过中间夹杂的垃圾字节
func (r *StreamReader) realign() {
	buf := r.win.Bytes()
	if len(buf) < 4 {
		return
	}

	skip := dtsuhd.FindSyncWord(buf)
	if skip == 0 {
		return
	}
	if skip >= len(buf)-3 {
		// 整段数据里都没找到同步字，只留下最后3个字节，防止同步字被下一次Feed拆成两半
		skip = len(buf) - 3
	}
	if skip > 0 {
		r.win.Skip(skip)
	}
}

// Next 对窗口里当前未消费的数据调用一次ParseFrame，对应parser_parse
//
// OK：把窗口前进到帧结束处（延迟到下一次Feed/Next才真正生效），返回这一帧的Packet
// INCOMPLETE：窗口不前进，调用方应该Feed更多数据后重试
// INVALID/NOSYNC：把窗口前进一个字节后重新对齐同步字，避免一帧坏数据卡住整条流
func (r *StreamReader) Next() (Packet, dtsuhd.Status) {
	if r.pendingSkip > 0 {
		r.win.Skip(r.pendingSkip)
		r.pendingSkip = 0
		r.realign()
	}

	buf := r.win.Bytes()
	if len(buf) < 4 {
		return Packet{}, dtsuhd.StatusIncomplete
	}

	var fi dtsuhd.FrameInfo
	status := dtsuhd.ParseFrame(r.state, buf, &fi, nil)

	switch status {
	case dtsuhd.StatusOK:
		payload := buf[:fi.FrameBytes]
		if r.option.CopyPayload {
			payload = append([]byte(nil), payload...)
		}
		r.pendingSkip = fi.FrameBytes
		return Packet{
			FrameBytes:  fi.FrameBytes,
			Payload:     payload,
			Sync:        fi.Sync,
			SampleRate:  fi.SampleRate,
			SampleCount: fi.SampleCount,
			Duration:    time.Duration(fi.Duration * float64(time.Second)),
		}, status
	case dtsuhd.StatusIncomplete:
		return Packet{}, status
	default:
		Log.Warnf("[%s] Next resync after bad frame. status=%s", r.UniqueKey, status)
		r.win.Skip(1)
		r.realign()
		return Packet{}, status
	}
}

// Dispose 释放StreamReader持有的资源
func (r *StreamReader) Dispose() {
	Log.Infof("[%s] lifecycle dispose StreamReader.", r.UniqueKey)
}
