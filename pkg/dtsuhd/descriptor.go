// Copyright 2024, Chef.  All rights reserved.
// https://github.com/q191201771/dtsuhd
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package dtsuhd

import "math/bits"

// activityMapRow 对应ETSI TS 103 491 Table 7-28的一行：一个activity mask位
// 翻译成规范定义的channel_mask以及宿主多媒体框架侧的channel mask
type activityMapRow struct {
	activityMask    int
	channelMask     uint32
	hostChannelMask uint64
}

// activityMap 20行翻译表，顺序与规范给出的顺序一致
var activityMap = [20]activityMapRow{
	{0x000001, 0x00000001, 1 << 0},  // front_center
	{0x000002, 0x00000006, 1 << 1},  // front_l, front_r
	{0x000004, 0x00000018, 1 << 2},  // side_l, side_r
	{0x000008, 0x00000020, 1 << 3},  // lfe
	{0x000010, 0x00000040, 1 << 4},  // back_center
	{0x000020, 0x0000a000, 1 << 5},  // top_front_l, top_front_r
	{0x000040, 0x00000180, 1 << 6},  // back_l, back_r
	{0x000080, 0x00004000, 1 << 7},  // top_front_center
	{0x000100, 0x00080000, 1 << 8},  // top_center
	{0x000200, 0x00001800, 1 << 9},  // front_l_of_center, front_r_of_center
	{0x000400, 0x00060000, 1 << 10}, // wide_l, wide_r
	{0x000800, 0x00000600, 1 << 11}, // surround_direct_l, surround_direct_r
	{0x001000, 0x00010000, 1 << 12}, // lfe2
	{0x002000, 0x00300000, 1 << 13}, // top_side_l, top_side_r
	{0x004000, 0x00400000, 1 << 14}, // top_back_center
	{0x008000, 0x01800000, 1 << 15}, // top_back_l, top_back_r
	{0x010000, 0x02000000, 1 << 16}, // bottom_front_center
	{0x020000, 0x0c000000, 1 << 17}, // bottom_front_l, bottom_front_r
	{0x140000, 0x30000000, 1 << 18}, // top_front_l, top_front_r
	{0x080000, 0xc0000000, 1 << 19}, // top_back_l, top_back_r
}

// findDefaultAudio 跨所有MD01和object查找"default audio" object：
// 第一个MD01里，presentation可选中且started的object中pres_index最小的那个
func (s *ParserState) findDefaultAudio() *MDObject {
	for i := range s.MD01s {
		m := &s.MD01s[i]
		objIndex := -1
		for j := range m.Object {
			o := &m.Object[j]
			if o.Started && s.Audio[o.PresIndex].Selectable {
				if objIndex < 0 || o.PresIndex < m.Object[objIndex].PresIndex {
					objIndex = j
				}
			}
		}
		if objIndex >= 0 {
			return &m.Object[objIndex]
		}
	}
	return nil
}

// extractObjectInfo 把object的channel activity mask翻译成规范channel_mask和
// 宿主channel_mask，并从mask的popcount得出channel_count
func extractObjectInfo(object *MDObject, info *DescriptorInfo) {
	if object == nil {
		return
	}

	for _, row := range activityMap {
		if row.activityMask&object.ChActivityMask != 0 {
			info.ChannelMask |= row.channelMask
			info.HostChannelMask |= row.hostChannelMask
		}
	}
	info.ChannelCount = bits.OnesCount32(info.ChannelMask)
	info.RepType = object.RepType
}

// updateDescriptor 组装MP4 Sample Entry box所需的信息；sample_size固定为16，
// coding_name取决于major_version是否超过2，decoder_profile==2时max_payload_code为0
func (s *ParserState) updateDescriptor(info *DescriptorInfo) {
	*info = DescriptorInfo{}

	if s.MajorVersion > 2 {
		info.CodingName = "dtsy"
	} else {
		info.CodingName = "dtsx"
	}

	extractObjectInfo(s.findDefaultAudio(), info)

	if s.SampleRate == 48000 {
		info.BaseSampleFreqCode = 1
	}
	info.DecoderProfileCode = s.MajorVersion - 2
	info.FrameDurationCode = s.FrameDurationCode
	if s.MajorVersion > 2 {
		info.MaxPayloadCode = 1
	}
	info.NumPresCode = s.NumAudioPres - 1
	info.SampleRate = s.SampleRate
	info.SampleRateMod = s.SampleRateMod
	info.SampleSize = 16
	info.Valid = true
}
