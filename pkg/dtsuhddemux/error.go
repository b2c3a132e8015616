// Copyright 2024, Chef.  All rights reserved.
// https://github.com/q191201771/dtsuhd
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package dtsuhddemux

import (
	"errors"
	"fmt"
)

// ----- pkg/dtsuhddemux -------------------------------------------------------------------------------------------

var (
	// ErrInvalidFrame Open时对第一帧的解析没有得到OK状态，或者descriptor无效
	ErrInvalidFrame = errors.New("dtsuhddemux: invalid or unparsable frame")

	// ErrNotSeekable Open要求的io.ReadSeeker不满足seek的前提条件
	ErrNotSeekable = errors.New("dtsuhddemux: reader is not seekable")
)

func newErrInvalidFrame(status fmt.Stringer) error {
	return fmt.Errorf("%w: status=%s", ErrInvalidFrame, status)
}
