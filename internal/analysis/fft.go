package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// FFT transforms data zero padded to a power of two, so bin k of the
// result sits at k*sampleRate/len(result).
func FFT(data []float64) []complex128 {
	if len(data) == 0 {
		return nil
	}
	padded := make([]float64, NextPow2(len(data)))
	copy(padded, data)
	return fft.FFTReal(padded)
}

func NextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// PowerSpectrum returns the magnitude of the first half of the FFT bins.
func PowerSpectrum(data []float64) []float64 {
	fft := FFT(data)
	ps := make([]float64, len(fft)/2)

	for i := range ps {
		ps[i] = cmplx.Abs(fft[i])
	}

	return ps
}

// DominantFrequency returns the frequency in Hz of the strongest non-DC
// bin of data sampled at sampleRate. The mean is removed first.
func DominantFrequency(data []float64, sampleRate float64) float64 {
	if len(data) < 4 || sampleRate <= 0 {
		return 0
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	centered := make([]float64, len(data))
	for i, v := range data {
		centered[i] = v - mean
	}

	ps := PowerSpectrum(centered)
	best := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[best] {
			best = i
		}
	}
	return float64(best) * sampleRate / float64(NextPow2(len(data)))
}
