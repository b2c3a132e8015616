// Copyright 2024, Chef.  All rights reserved.
// https://github.com/q191201771/dtsuhd
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package dtsuhd

// crc16Table 按半字节（nibble）驱动的CRC-16查表，多项式0x1021，初值0xFFFF
var crc16Table = [16]uint16{
	0x0000, 0x1021, 0x2042, 0x3063,
	0x4084, 0x50a5, 0x60c6, 0x70e7,
	0x8108, 0x9129, 0xa14a, 0xb16b,
	0xc18c, 0xd1ad, 0xe1ce, 0xf1ef,
}

// checkCrc 从br当前data里绝对比特偏移bitOffset开始，按4比特一组消费bytes*2个
// 半字节（也就是bytes个字节，CRC字段本身也在这段字节范围内），如果这段数据
// 末尾附带的CRC-16正确，消费完毕后的余数应当归零。
//
// 不会改变br调用前的游标位置。
func checkCrc(br *BitReader, bitOffset, bytes int) bool {
	saved := br.Pos()
	br.AlignTo(bitOffset)

	crc := uint16(0xffff)
	for i := 0; i < bytes*2; i++ {
		nibble := uint16(br.Read(4))
		crc = (crc << 4) ^ crc16Table[(crc>>12)^nibble]
	}

	br.AlignTo(saved)
	return crc == 0
}
