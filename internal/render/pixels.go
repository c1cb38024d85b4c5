package render

// PreviewSize returns the dimensions of a w*h canvas reduced by factor.
// Factors below one are treated as one.
func PreviewSize(w, h, factor int) (int, int) {
	if factor < 1 {
		factor = 1
	}
	pw := w / factor
	ph := h / factor
	if pw < 1 {
		pw = 1
	}
	if ph < 1 {
		ph = 1
	}
	return pw, ph
}

// fillPreviewRGBA box-filters the premultiplied RGBA buffer src (srcW*srcH)
// into dst, averaging factor*factor source pixels per destination pixel.
// dst must hold PreviewSize(srcW, srcH, factor) pixels.
func fillPreviewRGBA(dst, src []byte, srcW, srcH, factor int) {
	if factor <= 1 {
		copy(dst, src)
		return
	}
	dstW, dstH := PreviewSize(srcW, srcH, factor)
	if len(dst) < dstW*dstH*4 || len(src) < srcW*srcH*4 {
		return
	}
	for dy := 0; dy < dstH; dy++ {
		y0 := dy * factor
		y1 := min(y0+factor, srcH)
		for dx := 0; dx < dstW; dx++ {
			x0 := dx * factor
			x1 := min(x0+factor, srcW)
			var r, g, b, a, n int
			for sy := y0; sy < y1; sy++ {
				row := sy * srcW * 4
				for sx := x0; sx < x1; sx++ {
					i := row + sx*4
					r += int(src[i+0])
					g += int(src[i+1])
					b += int(src[i+2])
					a += int(src[i+3])
					n++
				}
			}
			base := (dy*dstW + dx) * 4
			if n == 0 {
				dst[base+0], dst[base+1], dst[base+2], dst[base+3] = 0, 0, 0, 0
				continue
			}
			half := n / 2
			dst[base+0] = uint8((r + half) / n)
			dst[base+1] = uint8((g + half) / n)
			dst[base+2] = uint8((b + half) / n)
			dst[base+3] = uint8((a + half) / n)
		}
	}
}
