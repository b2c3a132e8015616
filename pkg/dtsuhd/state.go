// Copyright 2024, Chef.  All rights reserved.
// https://github.com/q191201771/dtsuhd
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package dtsuhd

import "github.com/q191201771/naza/pkg/unique"

// UKPreParserState ParserState的唯一标识前缀，用于日志里区分不同的流
const UKPreParserState = "DTSUHDPARSER"

var siUKParserState = unique.NewSingleGenerator(UKPreParserState)

// GenUKParserState 生成一个ParserState专用的唯一标识
func GenUKParserState() string {
	return siUKParserState.GenUniqueKey()
}

// Status ParseFrame的返回结果
type Status int

const (
	StatusOK Status = iota
	StatusIncomplete
	StatusInvalid
	StatusNoSync
	StatusNull
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusIncomplete:
		return "INCOMPLETE"
	case StatusInvalid:
		return "INVALID"
	case StatusNoSync:
		return "NOSYNC"
	case StatusNull:
		return "NULL"
	default:
		return "UNKNOWN"
	}
}

// RepType 对象的表示类型（Table 7-16）
type RepType int

const (
	RepTypeChMaskBased RepType = iota
	RepTypeMtrx2DChMaskBased
	RepTypeMtrx3DChMaskBased
	RepTypeBinaural
	RepTypeAmbisonic
	RepTypeAudioTracks
	RepType3DObjectSingleSrcPerWf
	RepType3DMonoObjectSingleSrcPerWf
)

// maxAudioPres 一帧里允许携带的最大presentation数量
const maxAudioPres = 256

// objectDefaultID 对象id的"默认"槨位，用于object_id不在[0,255]范围内的情况
const objectDefaultID = 256

// Presentation 对应FTOC里某个audio presentation的跨帧状态
type Presentation struct {
	Mask       int
	Selectable bool
}

// Chunk FTOC里记录的单个chunk描述项
type Chunk struct {
	CrcFlag bool
	Bytes   int
}

// NaviEntry NAVI表里的一条记录，按稳定的index跨帧保留
type NaviEntry struct {
	Bytes   int
	ID      int
	Index   int
	Present bool
}

// MDObject 单个object跨帧保留的状态
type MDObject struct {
	Started        bool
	PresIndex      int
	RepType        RepType
	ChActivityMask int
}

// MD01 id==1的metadata chunk所携带的状态，按chunk id在ParserState.MD01s里查找
type MD01 struct {
	ChunkID int

	ObjectList      [256]int
	ObjectListCount int
	Object          [257]MDObject

	PacketsAcquired     int
	StaticMDPackets     int
	StaticMDPacketSize  int
	StaticMDUpdateFlag  bool
	StaticMDExtracted   bool

	// Buf 跨多帧累积静态元数据的缓冲区，容量只在sync帧边界重新计算
	Buf []byte
	br  *BitReader // 指向Buf的游标；Buf为空时静态元数据的读取退回到主游标
}

// DescriptorInfo 仅在成功解析sync帧之后有效，描述流的采样entry配置
type DescriptorInfo struct {
	Valid bool

	CodingName          string // "dtsx" 或 "dtsy"
	DecoderProfileCode  int
	FrameDurationCode   int
	MaxPayloadCode      int
	NumPresCode         int
	BaseSampleFreqCode  int
	SampleRateMod       int
	RepType             RepType
	SampleRate          int
	SampleSize          int
	ChannelCount        int
	ChannelMask         uint32 // ETSI TS 103 491 Table 7-28规范定义
	HostChannelMask     uint64 // 宿主多媒体框架使用的平台侧布局
}

// FrameInfo ParseFrame每次调用都可能输出的单帧描述
type FrameInfo struct {
	Sync        bool
	FrameBytes  int
	SampleRate  int
	SampleCount int
	Duration    float64 // 秒
}

// ParserState 跨帧保留的解析状态，一个音频流对应一个ParserState，不得跨流共享
type ParserState struct {
	UniqueKey string

	SawSync                     bool
	MajorVersion                int
	FullChannelMixFlag          bool
	InteractiveObjLimitsPresent bool

	FrameDuration     int
	FrameDurationCode int
	ClockRate         int
	SampleRate        int
	SampleRateMod     int

	FtocBytes  int
	ChunkBytes int
	FrameBytes int

	NumAudioPres int
	Audio        [maxAudioPres]Presentation

	Chunks []Chunk
	Navi   []NaviEntry
	MD01s  []MD01

	// 当前帧解析过程中使用的游标和原始数据，每次ParseFrame调用都会重置
	br        *BitReader
	data      []byte
	isSync    bool
}

// NewParserState 分配一个新的解析状态，对应dtsuhd_create
func NewParserState() *ParserState {
	return &ParserState{
		UniqueKey: GenUKParserState(),
	}
}

// findMD01 按chunk id查找已存在的MD01，对应chunk_find_md01
func (s *ParserState) findMD01(id int) *MD01 {
	for i := range s.MD01s {
		if s.MD01s[i].ChunkID == id {
			return &s.MD01s[i]
		}
	}
	return nil
}

// appendMD01 追加一个新的MD01并以id初始化，对应chunk_append_md01
func (s *ParserState) appendMD01(id int) *MD01 {
	s.MD01s = append(s.MD01s, MD01{ChunkID: id})
	return &s.MD01s[len(s.MD01s)-1]
}

// naviClear 清空整个navi表，对应navi_clear，仅在sync帧调用
func (s *ParserState) naviClear() {
	s.Navi = s.Navi[:0]
}

// naviClearPresent 将所有已有条目标记为不present，对应navi_clear_present，仅在非sync帧调用
func (s *ParserState) naviClearPresent() {
	for i := range s.Navi {
		s.Navi[i].Present = false
	}
}

// naviFindIndex 按稳定的index在navi表里查找或分配一个槨位，对应navi_find_index
func (s *ParserState) naviFindIndex(desiredIndex int) int {
	availIndex := len(s.Navi)
	for i := range s.Navi {
		if s.Navi[i].Index == desiredIndex {
			s.Navi[i].Present = true
			return i
		}
		if !s.Navi[i].Present && s.Navi[i].Bytes == 0 && availIndex > i {
			availIndex = i
		}
	}

	if availIndex >= len(s.Navi) {
		s.Navi = append(s.Navi, NaviEntry{})
	}

	s.Navi[availIndex] = NaviEntry{
		Bytes:   0,
		ID:      objectDefaultID,
		Index:   desiredIndex,
		Present: true,
	}
	return availIndex
}

// naviPurge 把所有不present的槨位的bytes清零，但保留槨位本身，对应navi_purge
func (s *ParserState) naviPurge() {
	for i := range s.Navi {
		if !s.Navi[i].Present {
			s.Navi[i].Bytes = 0
		}
	}
}
