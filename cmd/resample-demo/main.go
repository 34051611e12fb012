// Command resample-demo resamples raw interleaved signed 16-bit
// little-endian PCM read from stdin and writes the result to stdout.
//
// Usage:
//
//	resample-demo -i 48000 -o 44100 -c 2 < in.pcm > out.pcm
//	resample-demo -i 44100 -o 8000 -l 4000 -c 1 < in.pcm > out.pcm
package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	resample "github.com/Clownacy/clownresampler"
)

func main() {
	var (
		inputRate   = pflag.UintP("input-rate", "i", 44100, "input sample rate, in Hz")
		outputRate  = pflag.UintP("output-rate", "o", 44100, "output sample rate, in Hz")
		lowPassRate = pflag.UintP("low-pass-rate", "l", 0, "anti-aliasing cutoff, in Hz (0 = min(input, output))")
		channels    = pflag.IntP("channels", "c", 2, "number of interleaved channels")
		bufFrames   = pflag.Int("buffer-frames", 0, "input buffer capacity, in frames (0 = package default)")
		verbose     = pflag.BoolP("verbose", "v", false, "report frame counts to stderr on completion")
		help        = pflag.Bool("help", false, "display help text")
	)

	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, "resample-demo: resample raw signed 16-bit interleaved PCM from stdin to stdout")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *help {
		pflag.Usage()
		return
	}

	if err := run(runConfig{
		inputRate:   uint32(*inputRate),
		outputRate:  uint32(*outputRate),
		lowPassRate: uint32(*lowPassRate),
		channels:    *channels,
		bufFrames:   *bufFrames,
		verbose:     *verbose,
	}, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "resample-demo:", err)
		os.Exit(1)
	}
}

type runConfig struct {
	inputRate, outputRate, lowPassRate uint32
	channels                           int
	bufFrames                          int
	verbose                            bool
}

func run(cfg runConfig, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	r, err := resample.NewResampler(resample.DefaultTable(), resample.Config{
		Channels:    cfg.channels,
		InputRate:   cfg.inputRate,
		OutputRate:  cfg.outputRate,
		LowPassRate: cfg.lowPassRate,
		BufferFrames: cfg.bufFrames,
	})
	if err != nil {
		return fmt.Errorf("configure resampler: %w", err)
	}

	in := bufio.NewReader(stdin)
	out := bufio.NewWriter(stdout)
	defer out.Flush()

	readBuf := make([]int16, 4096*cfg.channels)
	rawBuf := make([]byte, len(readBuf)*2)

	var inputFrames, outputFrames int64

	input := func(buf []int16) int {
		want := len(buf)
		if want > len(readBuf) {
			want = len(readBuf)
		}
		// io.ReadFull returns io.ErrUnexpectedEOF for a short final read and
		// io.EOF for no data at all; either way the frame count derived
		// from n already reflects how much usable data arrived.
		n, _ := io.ReadFull(in, rawBuf[:want*2])
		frames := n / 2 / cfg.channels
		for i := 0; i < frames*cfg.channels; i++ {
			buf[i] = int16(binary.LittleEndian.Uint16(rawBuf[i*2 : i*2+2]))
		}
		inputFrames += int64(frames)
		return frames
	}

	writeBuf := make([]byte, 2*cfg.channels)
	output := func(frame []int32) bool {
		for c, v := range frame {
			writeBuf[c*2], writeBuf[c*2+1] = clampToPCM16(v)
		}
		if _, err := out.Write(writeBuf); err != nil {
			return false
		}
		outputFrames++
		return true
	}

	r.Resample(input, output)
	r.End(output)

	if cfg.verbose {
		fmt.Fprintf(stderr, "resample-demo: %d input frames -> %d output frames\n", inputFrames, outputFrames)
	}
	return nil
}

// clampToPCM16 saturates an unclamped accumulator sample (see OutputFunc's
// contract) to the int16 range and encodes it little-endian.
func clampToPCM16(v int32) (lo, hi byte) {
	const max = int32(1<<15 - 1)
	const min = -int32(1 << 15)
	if v > max {
		v = max
	} else if v < min {
		v = min
	}
	u := uint16(int16(v))
	return byte(u), byte(u >> 8)
}
