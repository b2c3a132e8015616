// Copyright 2024, Chef.  All rights reserved.
// https://github.com/q191201771/dtsuhd
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package main

import (
	"flag"
	"io"
	"os"

	"github.com/q191201771/naza/pkg/nazalog"

	"github.com/q191201771/dtsuhd/pkg/dtsuhd"
	"github.com/q191201771/dtsuhd/pkg/dtsuhddemux"
)

func main() {
	_ = nazalog.Init(func(option *nazalog.Option) {
		option.AssertBehavior = nazalog.AssertFatal
	})
	defer nazalog.Sync()

	inFileName := parseFlag()

	fp, err := os.Open(inFileName)
	nazalog.Assert(nil, err)
	defer fp.Close()
	nazalog.Infof("open input file succ. file=%s", inFileName)

	d, di, err := dtsuhddemux.Open(fp)
	nazalog.Assert(nil, err)
	nazalog.Infof("descriptor. codingName=%s, channelCount=%d, channelMask=0x%08x, sampleRate=%d, repType=%d",
		di.CodingName, di.ChannelCount, di.ChannelMask, di.SampleRate, di.RepType)

	extradata := dtsuhddemux.BuildExtradata(&di)
	nazalog.Infof("extradata. bytes=%d, hex=% x", len(extradata), extradata)

	r := dtsuhddemux.NewStreamReader()

	var frameCount int
	var totalSampleCount int
	for {
		pkt, err := d.ReadPacket()
		if err == io.EOF {
			break
		}
		nazalog.Assert(nil, err)

		remain := pkt.Payload
		for len(remain) > 0 {
			n := r.Feed(remain)
			remain = remain[n:]

			for {
				frame, status := r.Next()
				if status == dtsuhd.StatusIncomplete {
					break
				}
				if status != dtsuhd.StatusOK {
					nazalog.Warnf("skip bad frame. status=%s", status)
					continue
				}

				frameCount++
				totalSampleCount += frame.SampleCount
				nazalog.Debugf("frame#%d. bytes=%d, sync=%t, sampleRate=%d, sampleCount=%d, duration=%s",
					frameCount, frame.FrameBytes, frame.Sync, frame.SampleRate, frame.SampleCount, frame.Duration)
			}
		}
	}

	nazalog.Infof("done. frameCount=%d, totalSampleCount=%d", frameCount, totalSampleCount)
}

func parseFlag() string {
	i := flag.String("i", "", "specify dts-uhd input file (raw frame stream, or DTSHDHDR/STRMDATA container)")
	flag.Parse()
	if *i == "" {
		flag.Usage()
		os.Exit(1)
	}
	return *i
}
