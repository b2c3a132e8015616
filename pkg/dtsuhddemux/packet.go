// Copyright 2024, Chef.  All rights reserved.
// https://github.com/q191201771/dtsuhd
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package dtsuhddemux

import "time"

// Packet 流式/容器两种适配层共同的输出单元
//
// StreamReader.Next产出的Packet对应一帧解析结果，所有字段都有值；默认情况下
// Payload引用StreamReader内部窗口的底层数组，只在产生Packet之后、下一次Feed
// 调用之前有效，语义上与httpflv.Tag一致；调用方如果需要长期持有这块数据，应该
// 自行拷贝，或者用CopyPayload选项。
//
// Demuxer.ReadPacket产出的Packet是payload区域里最多MaxFrameSize字节的一段原始
// 数据，不按帧边界切分，只填FrameBytes（本段字节数）和Payload；Payload是每次
// 新分配的切片，不引用任何窗口
type Packet struct {
	FrameBytes  int
	Payload     []byte
	Sync        bool
	SampleRate  int
	SampleCount int
	Duration    time.Duration
}
