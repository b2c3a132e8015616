// Copyright 2024, Chef.  All rights reserved.
// https://github.com/q191201771/dtsuhd
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package dtsuhd

// varFieldBitsUsed、varFieldIndex 由3比特前缀码code(0..7)查表得到：
// 前缀消耗的比特数，以及该选哪一档宽度表
var (
	varFieldBitsUsed = [8]int{1, 1, 1, 1, 2, 2, 3, 3}
	varFieldIndex    = [8]int{0, 0, 0, 0, 1, 1, 2, 3}
)

// ReadVarField 读取ETSI TS 103 491定义的自定义变长整数（Table 5-2）。
//
// table是调用方给出的4档宽度表，index选中的那一档如果宽度>0，再读取该宽度
// 的比特作为v；当add为真（规范里的绝大多数调用点都是true），v还要加上
// table中下标小于index的各档能表示的取值个数之和（即各档的1<<table[i]，也就是
// 之前各档"跳过"的编码空间），构成一个前缀编码的非均匀整数。
func ReadVarField(br *BitReader, table [4]int, add bool) int {
	code := int(br.Peek(3))
	bitsUsed := varFieldBitsUsed[code]
	index := varFieldIndex[code]
	br.Skip(bitsUsed)

	value := 0
	if table[index] > 0 {
		if add {
			for i := 0; i < index; i++ {
				value += 1 << uint(table[i])
			}
		}
		value += int(br.Read(table[index]))
	}
	return value
}
