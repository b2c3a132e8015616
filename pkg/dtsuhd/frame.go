// Copyright 2024, Chef.  All rights reserved.
// https://github.com/q191201771/dtsuhd
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package dtsuhd

// ParseFrame 解析data起始处的一个DTS-UHD帧，更新state里的跨帧状态，并在
// fi/di非nil时输出本帧和（仅sync帧）流描述信息。
//
// data必须从帧的第一个字节开始。fi、di都是可选的，传nil表示调用方不关心。
// 一条流必须先喂一个sync帧，才允许喂non-sync帧；否则返回StatusNoSync。
func ParseFrame(state *ParserState, data []byte, fi *FrameInfo, di *DescriptorInfo) Status {
	if state == nil || data == nil {
		return StatusNull
	}

	if len(data) < 4 {
		return StatusIncomplete
	}

	state.data = data
	br := NewBitReader(data)
	state.br = br

	syncword := uint32(br.Read(32))
	isSync := syncword == SyncWord
	state.isSync = isSync
	if isSync {
		state.SawSync = true
	}
	if !state.SawSync || (!isSync && syncword != NonSyncWord) {
		return StatusNoSync
	}

	state.FtocBytes = ReadVarField(br, tablePayload, true) + 1
	if state.FtocBytes < 5 || state.FtocBytes >= len(data) {
		return StatusIncomplete
	}

	if err := state.parseStreamParams(); err != nil {
		Log.Warnf("dtsuhd: parse stream params failed. err=%v", err)
		return StatusInvalid
	}

	if err := state.parseAudPresParams(); err != nil {
		Log.Warnf("dtsuhd: parse aud pres params failed. err=%v", err)
		return StatusInvalid
	}

	if err := state.parseChunkNavi(); err != nil {
		Log.Warnf("dtsuhd: parse chunk navi failed. err=%v", err)
		return StatusInvalid
	}

	state.FrameBytes = state.FtocBytes + state.ChunkBytes
	if state.FrameBytes > len(data) {
		return StatusIncomplete
	}

	if di != nil && isSync {
		br.AlignTo(state.FtocBytes * 8) // 跳过PBRSmoothParams，对齐到FTOC CRC之后的chunk区
		if err := state.parseChunks(); err != nil {
			Log.Warnf("dtsuhd: parse chunks failed. err=%v", err)
			return StatusInvalid
		}
		state.updateDescriptor(di)
	}

	fraction := 1
	for i := range state.Navi {
		if !state.Navi[i].Present {
			continue
		}
		switch state.Navi[i].ID {
		case 3:
			fraction = 2
		case 4:
			fraction = 4
		}
	}

	if fi != nil {
		fi.Sync = isSync
		fi.FrameBytes = state.FrameBytes
		fi.SampleRate = state.SampleRate
		fi.SampleCount = state.FrameDuration * fi.SampleRate / (state.ClockRate * fraction)
		fi.Duration = float64(fi.SampleCount) / float64(fi.SampleRate)
	}

	return StatusOK
}
