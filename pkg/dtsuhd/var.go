// Copyright 2024, Chef.  All rights reserved.
// https://github.com/q191201771/dtsuhd
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package dtsuhd

import "github.com/q191201771/naza/pkg/nazalog"

// Log 包内日志输出使用的logger，默认为全局logger，业务方可以通过naza/pkg/nazalog的
// 相关接口替换全局logger的实现
var Log = nazalog.GetGlobalLogger()

const (
	// SyncWord 同步帧起始的32位同步字
	SyncWord uint32 = 0x40411BF2

	// NonSyncWord 非同步帧起始的32位同步字
	NonSyncWord uint32 = 0x71C442E8

	// MaxFrameSize 一个DTS-UHD帧允许的最大字节数
	MaxFrameSize = 0x1000

	// containerChunkHeaderBytes DTSHDHDR/STRMDATA容器chunk头部的字节数：
	// 8字节ASCII tag + 8字节big-endian大小
	containerChunkHeaderBytes = 16

	// ftocAllocIncrement chunks切片每次增长时预留的富余容量（navi切片用append增长，不使用它）
	ftocAllocIncrement = 16
)

// IsSyncWord 判断一个32位值是否是DTS-UHD的同步字或非同步字
func IsSyncWord(word uint32) bool {
	return word == SyncWord || word == NonSyncWord
}
