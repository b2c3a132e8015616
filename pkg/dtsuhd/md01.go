// Copyright 2024, Chef.  All rights reserved.
// https://github.com/q191201771/dtsuhd
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package dtsuhd

var (
	tableObjectListCount = [4]int{3, 4, 6, 8}
	tableStaticPackets   = [4]int{0, 6, 9, 12}
	tableStaticPacketSize = [4]int{5, 7, 9, 11}
	tableRejectBits      = [4]int{8, 10, 12, 14}
	tableChMaskObj2       = [4]int{1, 4, 4, 8}
	tableChMaskObj3       = [4]int{3, 3, 4, 8}

	// chActivityMaskTable Table 7-27，ch_index 0..13的固定mask值
	chActivityMaskTable = [14]int{
		0x000001, 0x000002, 0x000006, 0x00000f, 0x00001f, 0x00084b, 0x00002f,
		0x00802f, 0x00486b, 0x00886b, 0x03fbfb, 0x000003, 0x000007, 0x000843,
	}
)

// bits 从md01自己的buf游标读取（如果静态元数据缓冲区已经建立且非空），否则退回到
// 主帧游标；对应原实现里的get_bits_md01
func (m *MD01) bits(mainBr *BitReader, n int) uint64 {
	if m.br != nil && len(m.Buf) > 0 {
		return m.br.Read(n)
	}
	return mainBr.Read(n)
}

// parseMDChunkList 对应Table 6-6，读取本帧引用到的object id列表
func (s *ParserState) parseMDChunkList(m *MD01) {
	br := s.br
	if s.FullChannelMixFlag {
		m.ObjectListCount = 1
		m.ObjectList[0] = objectDefaultID
		return
	}

	m.ObjectListCount = ReadVarField(br, tableObjectListCount, true)
	for i := 0; i < m.ObjectListCount; i++ {
		bits := 4
		if br.Read(1) == 1 {
			bits = 8
		}
		m.ObjectList[i] = int(br.Read(bits))
	}
}

// skipMpParamSet 对应Table 7-9，跳过一个loudness参数集
func (s *ParserState) skipMpParamSet(m *MD01, nominalFlag bool) {
	m.bits(s.br, 6) // rLoudness
	if !nominalFlag {
		m.bits(s.br, 5)
	}
	if nominalFlag {
		m.bits(s.br, 2)
	} else {
		m.bits(s.br, 4)
	}
}

// parseStaticMDParams 对应Table 7-8，从md01的buf里解析静态元数据；
// onlyFirst为真时只解析loudness部分，供首个分片到达时提前提取
func (s *ParserState) parseStaticMDParams(m *MD01, onlyFirst bool) error {
	loudnessSets := 1
	nominalFlag := true

	if !s.FullChannelMixFlag {
		nominalFlag = m.bits(s.br, 1) == 1
	}

	if nominalFlag {
		if !s.FullChannelMixFlag {
			if m.bits(s.br, 1) == 1 {
				loudnessSets = 3
			} else {
				loudnessSets = 1
			}
		}
	} else {
		loudnessSets = int(m.bits(s.br, 4)) + 1
	}

	for i := 0; i < loudnessSets; i++ {
		s.skipMpParamSet(m, nominalFlag)
	}

	if onlyFirst {
		return nil
	}

	if !nominalFlag {
		m.bits(s.br, 1)
	}

	for i := 0; i < 3; i++ { // Table 7-12建议有3种类型
		if m.bits(s.br, 1) == 1 {
			if m.bits(s.br, 4) == 15 { // Table 7-14
				m.bits(s.br, 15)
			}
		}
		if m.bits(s.br, 1) == 1 { // smooth md present
			m.bits(s.br, 6*6)
		}
	}

	if !s.FullChannelMixFlag && m.br != nil {
		want := m.StaticMDPackets * m.StaticMDPacketSize * 8
		m.br.AlignTo(want)
	}
	m.StaticMDExtracted = true

	return nil
}

// parseMultiFrameMD 对应Table 7-7，跨帧累积静态元数据分片，分片凑满后触发解析
func (s *ParserState) parseMultiFrameMD(m *MD01) error {
	br := s.br

	if s.isSync {
		m.PacketsAcquired = 0
		if s.FullChannelMixFlag {
			m.StaticMDPackets = 1
			m.StaticMDPacketSize = 0
		} else {
			m.StaticMDPackets = ReadVarField(br, tableStaticPackets, true) + 1
			m.StaticMDPacketSize = ReadVarField(br, tableStaticPacketSize, true) + 3
		}

		n := m.StaticMDPackets * m.StaticMDPacketSize
		if n > len(m.Buf) {
			m.Buf = make([]byte, n)
		}
		m.br = NewBitReader(m.Buf)

		if m.StaticMDPackets > 1 {
			m.StaticMDUpdateFlag = br.Read(1) == 1
		} else {
			m.StaticMDUpdateFlag = true
		}
	}

	if m.PacketsAcquired >= m.StaticMDPackets {
		return nil
	}

	n := m.PacketsAcquired * m.StaticMDPacketSize
	for i := 0; i < m.StaticMDPacketSize; i++ {
		m.Buf[n+i] = byte(br.Read(8))
	}
	m.PacketsAcquired++

	if m.PacketsAcquired == m.StaticMDPackets {
		if m.StaticMDUpdateFlag || !m.StaticMDExtracted {
			if err := s.parseStaticMDParams(m, false); err != nil {
				return err
			}
		}
	} else if m.PacketsAcquired == 1 {
		if m.StaticMDUpdateFlag || !m.StaticMDExtracted {
			if err := s.parseStaticMDParams(m, true); err != nil {
				return err
			}
		}
	}

	return nil
}

// isSuitableForRender 对应Table 7-18；object-group id（>=224）直接视为合适，
// 其余对象由比特流里的一个接受/拒绝标记决定，拒绝时跳过其携带的渲染数据
func (s *ParserState) isSuitableForRender(objectID int) bool {
	br := s.br
	if objectID >= 224 || br.Read(1) == 1 {
		return true
	}

	br.Skip(1) // 拒绝渲染标记
	br.Skip(ReadVarField(br, tableRejectBits, true))
	return false
}

// parseChMaskParams 对应Table 7-26/7-27，解析对象的channel activity mask
func (s *ParserState) parseChMaskParams(object *MDObject) {
	br := s.br

	chIndex := 1
	if object.RepType != RepTypeBinaural {
		chIndex = int(br.Read(4))
	}

	switch {
	case chIndex == 14:
		object.ChActivityMask = int(br.Read(16))
	case chIndex == 15:
		object.ChActivityMask = int(br.Read(32))
	default:
		object.ChActivityMask = chActivityMaskTable[chIndex]
	}
}

// parseObjectMetadata 对应Table 7-22，只在对象第一次出现（start_frame）时解析
// rep_type及其衍生字段；后续帧复用已解析出的ChActivityMask/RepType
func (s *ParserState) parseObjectMetadata(m *MD01, object *MDObject, startFrame bool, objectID int) error {
	br := s.br

	br.Skip(boolToInt(objectID != objectDefaultID))

	if !startFrame {
		return nil
	}

	object.RepType = RepType(br.Read(3))
	chMaskObjectFlag := false
	object3DMetadataFlag := false

	switch object.RepType {
	case RepTypeBinaural, RepTypeChMaskBased, RepTypeMtrx2DChMaskBased, RepTypeMtrx3DChMaskBased:
		chMaskObjectFlag = true
	case RepType3DObjectSingleSrcPerWf, RepType3DMonoObjectSingleSrcPerWf:
		object3DMetadataFlag = true
	}

	if chMaskObjectFlag {
		if objectID != objectDefaultID {
			br.Skip(3) // Object Importance Level
			if br.Read(1) == 1 {
				width := 5
				if br.Read(1) == 1 {
					width = 3
				}
				br.Skip(width)
			}

			ReadVarField(br, tableChMaskObj2, true)
			ReadVarField(br, tableChMaskObj3, true)

			if br.Read(1) == 1 { // 可选loudness块
				br.Skip(8)
			}

			if br.Read(1) == 1 && s.InteractiveObjLimitsPresent {
				if br.Read(1) == 1 {
					extra := 0
					if object3DMetadataFlag {
						extra = 6
					}
					br.Skip(5 + extra)
				}
			}
		}

		s.parseChMaskParams(object)
	}

	return nil
}

// parseMD01 对应Table 7-4，找到pres_index对应的presentation的第一个适合渲染的
// object，解析它的静态和逐帧元数据；找到一个之后立即break，和原实现保持一致
func (s *ParserState) parseMD01(m *MD01, presIndex int) error {
	br := s.br

	if s.Audio[presIndex].Selectable {
		for i := 0; i < 4; i++ { // Table 7-5，缩放数据
			if br.Read(1) == 1 {
				br.Skip(5)
			}
		}

		if br.Read(1) == 1 {
			if err := s.parseMultiFrameMD(m); err != nil {
				return err
			}
		}
	}

	m.Object = [257]MDObject{} // Table 7-16

	if !s.FullChannelMixFlag && br.Read(1) == 1 {
		br.Skip(11)
	}

	for i := 0; i < m.ObjectListCount; i++ {
		id := m.ObjectList[i]
		if !s.isSuitableForRender(id) {
			continue
		}

		object := &m.Object[id]
		object.PresIndex = presIndex

		startFrame := false
		if !object.Started {
			br.Skip(boolToInt(id != objectDefaultID))
			object.Started = true
			startFrame = true
		}

		if (id < 224 || id > 255) {
			if err := s.parseObjectMetadata(m, object, startFrame, id); err != nil {
				return err
			}
		}

		break
	}

	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
