// Copyright 2024, Chef.  All rights reserved.
// https://github.com/q191201771/dtsuhd
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package dtsuhd

var (
	tablePayload     = [4]int{5, 8, 10, 12}
	tableBaseDuration = [4]int{512, 480, 384, 0}
	tableClockRate    = [4]int{32000, 44100, 48000, 0}
)

// decodeVersion 解码major_version：1比特选择宽度3或6，读取该宽度两次
// （第二次是为了跳过，和原始实现保持一致），major_version = 读到的值 + 2
func decodeVersion(br *BitReader) int {
	bits := 6
	if br.Read(1) == 1 {
		bits = 3
	}
	v := int(br.Read(bits))
	br.Skip(bits)
	return v + 2
}

// parseStreamParams 对应Table 6-12，解析FTOC固定头部之后的流参数，校验FTOC CRC
func (s *ParserState) parseStreamParams() error {
	br := s.br

	if s.isSync {
		s.FullChannelMixFlag = br.Read(1) == 1
	}

	hasFtocCrc := !s.FullChannelMixFlag || s.isSync
	if hasFtocCrc && !checkCrc(br, 0, s.FtocBytes) {
		return newErrCrc("ftoc", 0, s.FtocBytes)
	}

	if !s.isSync {
		return nil
	}

	if s.FullChannelMixFlag {
		s.MajorVersion = 2
	} else {
		s.MajorVersion = decodeVersion(br)
	}

	s.FrameDuration = tableBaseDuration[br.Read(2)]
	s.FrameDurationCode = int(br.Read(3))
	s.FrameDuration *= s.FrameDurationCode + 1
	s.ClockRate = tableClockRate[br.Read(2)]
	if s.FrameDuration == 0 || s.ClockRate == 0 {
		return newErrBitstream("zero frame_duration or clock_rate")
	}

	if br.Read(1) == 1 {
		br.Skip(36) // bTimeStampPresent
	}
	s.SampleRateMod = int(br.Read(2))
	s.SampleRate = s.ClockRate << uint(s.SampleRateMod)

	if s.FullChannelMixFlag {
		s.InteractiveObjLimitsPresent = false
	} else {
		br.Skip(1) // reserved
		s.InteractiveObjLimitsPresent = br.Read(1) == 1
	}

	return nil
}
