// Copyright 2024, Chef.  All rights reserved.
// https://github.com/q191201771/dtsuhd
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package dtsuhd

var (
	tableNumAudioPres = [4]int{0, 2, 4, 5}
	tableObjectLists  = [4]int{4, 8, 16, 32}
)

// parseExplicitObjectLists 对应Table 6-17，逐位扫描presentation的依赖mask，
// 每个置位的依赖都会读一个VarField（sync帧一定读，非sync帧由一个前导比特决定读不读）
func (s *ParserState) parseExplicitObjectLists(mask, index int) {
	br := s.br
	for i := 0; i < index; i++ {
		if (mask>>uint(i))&0x01 == 0 {
			continue
		}
		if s.isSync || br.Read(1) == 1 {
			ReadVarField(br, tableObjectLists, true)
		}
	}
}

// parseAudPresParams 对应Table 6-15/6-16，解析audio presentation的数量、可选择性
// 和依赖mask；只有sync帧才会写num_audio_pres/selectable/mask，非sync帧沿用旧状态
func (s *ParserState) parseAudPresParams() error {
	br := s.br

	if s.isSync {
		if s.FullChannelMixFlag {
			s.NumAudioPres = 1
		} else {
			s.NumAudioPres = ReadVarField(br, tableNumAudioPres, true) + 1
		}
		for i := 0; i < s.NumAudioPres; i++ {
			s.Audio[i] = Presentation{}
		}
	}

	for audio := 0; audio < s.NumAudioPres; audio++ {
		if s.isSync {
			if s.FullChannelMixFlag {
				s.Audio[audio].Selectable = true
			} else {
				s.Audio[audio].Selectable = br.Read(1) == 1
			}
		}

		if !s.Audio[audio].Selectable {
			s.Audio[audio].Mask = 0
			continue
		}

		if s.isSync {
			readMask := 0
			if audio > 0 {
				readMask = int(br.Read(audio))
			}
			s.Audio[audio].Mask = 0
			for i := 0; readMask != 0; i, readMask = i+1, readMask>>1 {
				if readMask&0x01 != 0 {
					s.Audio[audio].Mask |= int(br.Read(1)) << uint(i)
				}
			}
		}

		s.parseExplicitObjectLists(s.Audio[audio].Mask, audio)
	}

	return nil
}
