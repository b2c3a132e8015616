// Copyright 2024, Chef.  All rights reserved.
// https://github.com/q191201771/dtsuhd
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package dtsuhd

var (
	table2468           = [4]int{2, 4, 6, 8}
	tableChunkSizes      = [4]int{6, 9, 12, 15}
	tableAudioChunkSizes = [4]int{9, 11, 13, 16}
)

// parseChunkNavi 对应Table 6-20，解析FTOC尾部的chunk数组和NAVI表，
// 顺带累计chunk_bytes（这个值和ftoc_bytes相加就是整帧的大小）
func (s *ParserState) parseChunkNavi() error {
	br := s.br

	s.ChunkBytes = 0
	var chunkCount int
	if s.FullChannelMixFlag {
		if s.isSync {
			chunkCount = 1
		}
	} else {
		chunkCount = ReadVarField(br, table2468, true)
	}

	if chunkCount > cap(s.Chunks) {
		grown := make([]Chunk, chunkCount, chunkCount+ftocAllocIncrement)
		copy(grown, s.Chunks)
		s.Chunks = grown
	} else {
		s.Chunks = s.Chunks[:chunkCount]
	}

	for i := 0; i < chunkCount; i++ {
		bytes := ReadVarField(br, tableChunkSizes, true)
		s.Chunks[i].Bytes = bytes
		s.ChunkBytes += bytes

		if s.FullChannelMixFlag {
			s.Chunks[i].CrcFlag = false
		} else {
			s.Chunks[i].CrcFlag = br.Read(1) == 1
		}
	}

	audioChunks := 1
	if !s.FullChannelMixFlag {
		audioChunks = ReadVarField(br, table2468, true)
	}

	if s.isSync {
		s.naviClear()
	} else {
		s.naviClearPresent()
	}

	for j := 0; j < audioChunks; j++ {
		index := 0
		if !s.FullChannelMixFlag {
			index = ReadVarField(br, table2468, true)
		}

		listIndex := s.naviFindIndex(index)

		var idPresent bool
		switch {
		case s.isSync:
			idPresent = true
		case s.FullChannelMixFlag:
			idPresent = false
		default:
			idPresent = br.Read(1) == 1
		}

		if idPresent {
			s.Navi[listIndex].ID = ReadVarField(br, table2468, true)
		}

		bytes := ReadVarField(br, tableAudioChunkSizes, true)
		s.ChunkBytes += bytes
		s.Navi[listIndex].Bytes = bytes
	}

	s.naviPurge()

	return nil
}
