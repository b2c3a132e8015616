// Copyright 2024, Chef.  All rights reserved.
// https://github.com/q191201771/dtsuhd
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package dtsuhd

// BitReader 大端、MSB优先的比特游标，覆盖在一个只读的字节切片上。
//
// 读取越过切片末尾时返回0而不是报错，调用方通过Pos()和输入的总比特数
// （Len()*8）比较来判断是否发生了越界读取 —— 这是ETSI TS 103 491的
// 各张表格里"continue reading past the syntax you understand"式伪代码
// 的直接推论：遇到INCOMPLETE帧时，宁可继续喂0也不中断整条解析路径，
// 由调用方在stage 6用frame_bytes和buffer长度比较来统一处理。
type BitReader struct {
	data []byte
	pos  int // 当前比特偏移
}

// NewBitReader 创建一个指向data起始处的BitReader，不拷贝data
func NewBitReader(data []byte) *BitReader {
	return &BitReader{data: data}
}

// Len 返回底层字节切片的长度
func (r *BitReader) Len() int {
	return len(r.data)
}

// Pos 返回当前比特偏移
func (r *BitReader) Pos() int {
	return r.pos
}

// Skip 将游标向前移动n比特
func (r *BitReader) Skip(n int) {
	r.pos += n
}

// AlignTo 将游标移动到绝对比特偏移bitOffset（只应向前移动）
func (r *BitReader) AlignTo(bitOffset int) {
	r.pos = bitOffset
}

// Read 读取n比特（1<=n<=64）作为无符号整数并前移游标，大端、MSB优先
func (r *BitReader) Read(n int) uint64 {
	v := r.peekFrom(r.pos, n)
	r.pos += n
	return v
}

// Peek 与Read相同，但不会移动游标
func (r *BitReader) Peek(n int) uint64 {
	return r.peekFrom(r.pos, n)
}

// peekFrom 从绝对比特偏移bitPos处读取n比特，越过data末尾的部分按0处理
func (r *BitReader) peekFrom(bitPos, n int) uint64 {
	var v uint64
	for n > 0 {
		byteIndex := bitPos >> 3
		bitOffset := bitPos & 7
		avail := 8 - bitOffset
		take := avail
		if take > n {
			take = n
		}

		var b byte
		if byteIndex >= 0 && byteIndex < len(r.data) {
			b = r.data[byteIndex]
		}
		shift := avail - take
		mask := byte(1<<uint(take) - 1)
		chunk := (b >> uint(shift)) & mask

		v = v<<uint(take) | uint64(chunk)
		bitPos += take
		n -= take
	}
	return v
}
