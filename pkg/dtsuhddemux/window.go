// Copyright 2024, Chef.  All rights reserved.
// https://github.com/q191201771/dtsuhd
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package dtsuhddemux

// window 与pkg/base.Buffer一样用rpos/wpos游标管理先进先出的字节区，区别是
// 容量固定为windowCapacity，Write撞到容量上限时只会先做一次compact腾位置，
// 不会像Buffer.Grow那样整体重新分配更大的底层数组，对应append_buffer里
// "缓冲区几乎满了就把尾部数据搬到开头"的那段逻辑
type window struct {
	core []byte
	rpos int
	wpos int
}

func newWindow() *window {
	return &window{core: make([]byte, windowCapacity)}
}

// Bytes 窗口里所有未消费的数据，不拷贝
func (w *window) Bytes() []byte {
	if w.rpos == w.wpos {
		return nil
	}
	return w.core[w.rpos:w.wpos]
}

// Len 窗口里未消费数据的长度
func (w *window) Len() int {
	return w.wpos - w.rpos
}

// Cap 窗口固定的总容量
func (w *window) Cap() int {
	return len(w.core)
}

// Skip 把前n个未消费的字节标记为已消费
func (w *window) Skip(n int) {
	if n <= 0 {
		return
	}
	if n > w.wpos-w.rpos {
		Log.Warnf("dtsuhddemux: window.Skip too large. n=%d, len=%d", n, w.Len())
		w.Reset()
		return
	}
	w.rpos += n
	w.resetIfEmpty()
}

// Reset 清空窗口，不释放底层数组
func (w *window) Reset() {
	w.rpos = 0
	w.wpos = 0
}

func (w *window) resetIfEmpty() {
	if w.rpos == w.wpos {
		w.Reset()
	}
}

// compact 把未消费数据搬到窗口开头，腾出尾部空间；对应append_buffer里的memmove分支
func (w *window) compact() {
	if w.rpos == 0 {
		return
	}
	copy(w.core, w.core[w.rpos:w.wpos])
	w.wpos -= w.rpos
	w.rpos = 0
}

// Write 尽量多地把p追加进窗口，返回实际写入的字节数。空闲空间不够时先compact，
// compact之后仍然不够则只写入能装下的那部分——窗口永不重新分配，对应
// append_buffer里copy_bytes的截断逻辑
func (w *window) Write(p []byte) int {
	if len(p) == 0 {
		return 0
	}
	if len(w.core)-w.wpos < len(p) {
		w.compact()
	}

	n := len(w.core) - w.wpos
	if n > len(p) {
		n = len(p)
	}
	if n <= 0 {
		return 0
	}
	copy(w.core[w.wpos:], p)
	w.wpos += n
	return n
}
