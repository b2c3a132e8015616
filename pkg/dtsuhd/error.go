// Copyright 2024, Chef.  All rights reserved.
// https://github.com/q191201771/dtsuhd
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package dtsuhd

import (
	"errors"
	"fmt"
)

// ----- pkg/dtsuhd -----------------------------------------------------------------------------------------------

var (
	// ErrNull 调用者传入了缺失的参数（比如nil state或空buffer）
	ErrNull = errors.New("dtsuhd: required argument is nil or empty")

	// ErrCrc 某个chunk或FTOC的CRC-16校验未通过
	ErrCrc = errors.New("dtsuhd: crc check failed")

	// ErrBitstream 比特流中出现了内部矛盾（字段取值超出允许范围、保留字段不为0等）
	ErrBitstream = errors.New("dtsuhd: bitstream inconsistency")

	// ErrAlloc 动态数组增长失败（实践中几乎不会发生，保留以对齐原始实现的错误路径）
	ErrAlloc = errors.New("dtsuhd: allocation failed")
)

func newErrCrc(what string, bitOffset, bytes int) error {
	return fmt.Errorf("%w: %s at bit=%d bytes=%d", ErrCrc, what, bitOffset, bytes)
}

func newErrBitstream(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrBitstream, fmt.Sprintf(format, args...))
}
