// Copyright 2024, Chef.  All rights reserved.
// https://github.com/q191201771/dtsuhd
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package dtsuhddemux

import (
	"github.com/q191201771/naza/pkg/nazalog"

	"github.com/q191201771/dtsuhd/pkg/dtsuhd"
)

// Log 包内日志输出使用的logger，默认为全局logger
var Log = nazalog.GetGlobalLogger()

const (
	// windowCapacity StreamReader内部窗口允许占用的最大字节数，
	// 对应dtsuhd_parser.c里DTSUHD_BUFFER_SIZE的"128个最大帧大小"含义
	windowCapacity = 128 * dtsuhd.MaxFrameSize

	// demuxerReadChunkBytes Demuxer.Open读取首块数据时申请的字节数
	demuxerReadChunkBytes = 1024 * 1024

	// ProbeScoreMax Probe最高可能返回的分数，与ffmpeg里AVPROBE_SCORE_MAX含义一致
	ProbeScoreMax = 100

	// extradataBytes BuildExtradata拼装"udts" box用的缓冲区字节数，也是输出长度的上限；
	// 实际输出长度是按比特拼装后向上取整的字节数
	extradataBytes = 32

	// FileExtension 本模块识别的文件扩展名
	FileExtension = "dtsx"
)

// Extensions Demuxer适配层能够识别的文件扩展名列表
func Extensions() []string {
	return []string{FileExtension}
}
