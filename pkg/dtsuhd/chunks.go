// Copyright 2024, Chef.  All rights reserved.
// https://github.com/q191201771/dtsuhd
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package dtsuhd

var tableAudPres = [4]int{0, 2, 4, 4}

// parseChunks 对应Table 6-2，顺序遍历FTOC描述的每个chunk；目前只认识id==1
// 的MD01 chunk，其他id被跳过——但游标总是对齐到chunk边界，不管是否认识它
func (s *ParserState) parseChunks() error {
	br := s.br

	for i := 0; i < len(s.Chunks); i++ {
		bitNext := br.Pos() + s.Chunks[i].Bytes*8

		if s.Chunks[i].CrcFlag && !checkCrc(br, br.Pos(), s.Chunks[i].Bytes) {
			return newErrCrc("chunk", br.Pos(), s.Chunks[i].Bytes)
		}

		id := int(br.Read(8))
		if id == 1 {
			presIndex := ReadVarField(br, tableAudPres, true)
			if presIndex > 255 {
				return newErrBitstream("pres_index %d out of range", presIndex)
			}

			m := s.findMD01(id)
			if m == nil {
				m = s.appendMD01(id)
			}

			s.parseMDChunkList(m)
			if err := s.parseMD01(m, presIndex); err != nil {
				return err
			}
		}

		br.AlignTo(bitNext)
	}

	return nil
}
