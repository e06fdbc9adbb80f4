package render

// fillRGBA converts float RGB channels in [0, 1] into opaque RGBA pixels in
// buf. Values outside the range are clamped.
func fillRGBA(buf []byte, px []float32) {
	n := len(px) / 3
	if len(buf) < 4*n {
		n = len(buf) / 4
	}
	for i := 0; i < n; i++ {
		src := i * 3
		base := i * 4
		buf[base+0] = channel(px[src+0])
		buf[base+1] = channel(px[src+1])
		buf[base+2] = channel(px[src+2])
		buf[base+3] = 0xff
	}
}

func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(v*255 + 0.5)
}
