package frame

type formatInfo struct {
	space       ColorSpace
	planes      int
	bits        int // per sample, within one plane
	alpha       AlphaKind
	subsampling Subsampling
	order       ByteOrder
	straight    Format // non-premultiplied twin, for premultiplied formats
	rgb         Format // channel compatible RGB twin, for YUV formats
}

var formatInfos = map[Format]formatInfo{
	FormatRGBA: {space: ColorSpaceRGB, planes: 1, bits: 32, alpha: AlphaStraight},
	FormatBGRA: {space: ColorSpaceRGB, planes: 1, bits: 32, alpha: AlphaStraight},
	FormatARGB: {space: ColorSpaceRGB, planes: 1, bits: 32, alpha: AlphaStraight},
	FormatABGR: {space: ColorSpaceRGB, planes: 1, bits: 32, alpha: AlphaStraight},

	FormatRGBA_PA: {space: ColorSpaceRGB, planes: 1, bits: 32, alpha: AlphaPremultiplied, straight: FormatRGBA},
	FormatBGRA_PA: {space: ColorSpaceRGB, planes: 1, bits: 32, alpha: AlphaPremultiplied, straight: FormatBGRA},
	FormatARGB_PA: {space: ColorSpaceRGB, planes: 1, bits: 32, alpha: AlphaPremultiplied, straight: FormatARGB},
	FormatABGR_PA: {space: ColorSpaceRGB, planes: 1, bits: 32, alpha: AlphaPremultiplied, straight: FormatABGR},

	FormatRGB: {space: ColorSpaceRGB, planes: 1, bits: 24},
	FormatBGR: {space: ColorSpaceRGB, planes: 1, bits: 24},

	FormatRGB565BE: {space: ColorSpaceRGB, planes: 1, bits: 16, order: BigEndian},
	FormatRGB565LE: {space: ColorSpaceRGB, planes: 1, bits: 16, order: LittleEndian},
	FormatBGR565BE: {space: ColorSpaceRGB, planes: 1, bits: 16, order: BigEndian},
	FormatBGR565LE: {space: ColorSpaceRGB, planes: 1, bits: 16, order: LittleEndian},

	FormatGray8: {space: ColorSpaceGray, planes: 1, bits: 8},

	FormatRGBA_PLANAR:    {space: ColorSpaceRGB, planes: 4, bits: 8, alpha: AlphaStraight},
	FormatRGBA_PLANAR_PA: {space: ColorSpaceRGB, planes: 4, bits: 8, alpha: AlphaPremultiplied, straight: FormatRGBA_PLANAR},
	FormatRGB_PLANAR:     {space: ColorSpaceRGB, planes: 3, bits: 8},

	FormatYUVA:           {space: ColorSpaceYUV, planes: 1, bits: 32, alpha: AlphaStraight, rgb: FormatRGBA},
	FormatYUVA_PA:        {space: ColorSpaceYUV, planes: 1, bits: 32, alpha: AlphaPremultiplied, straight: FormatYUVA, rgb: FormatRGBA_PA},
	FormatYUV444:         {space: ColorSpaceYUV, planes: 1, bits: 24, rgb: FormatRGB},
	FormatYUVA_PLANAR:    {space: ColorSpaceYUV, planes: 4, bits: 8, alpha: AlphaStraight, rgb: FormatRGBA_PLANAR},
	FormatYUVA_PLANAR_PA: {space: ColorSpaceYUV, planes: 4, bits: 8, alpha: AlphaPremultiplied, straight: FormatYUVA_PLANAR, rgb: FormatRGBA_PLANAR_PA},
	FormatI444:           {space: ColorSpaceYUV, planes: 3, bits: 8, rgb: FormatRGB_PLANAR},

	FormatI420: {space: ColorSpaceYUV, planes: 3, bits: 8, subsampling: Subsampling420},
	FormatYV12: {space: ColorSpaceYUV, planes: 3, bits: 8, subsampling: Subsampling420},
	FormatNV12: {space: ColorSpaceYUV, planes: 2, bits: 8, subsampling: Subsampling420},
	FormatNV21: {space: ColorSpaceYUV, planes: 2, bits: 8, subsampling: Subsampling420},
}

var catalog = []Format{
	FormatRGBA, FormatBGRA, FormatARGB, FormatABGR,
	FormatRGBA_PA, FormatBGRA_PA, FormatARGB_PA, FormatABGR_PA,
	FormatRGB, FormatBGR,
	FormatRGB565BE, FormatRGB565LE, FormatBGR565BE, FormatBGR565LE,
	FormatGray8,
	FormatRGBA_PLANAR, FormatRGBA_PLANAR_PA, FormatRGB_PLANAR,
	FormatYUVA, FormatYUVA_PA, FormatYUV444,
	FormatYUVA_PLANAR, FormatYUVA_PLANAR_PA, FormatI444,
	FormatI420, FormatYV12, FormatNV12, FormatNV21,
}

// Formats returns every format of the catalog.
func Formats() []Format {
	return append([]Format(nil), catalog...)
}

func (f Format) info() formatInfo {
	return formatInfos[f]
}

// Valid reports whether f is part of the catalog.
func (f Format) Valid() bool {
	_, ok := formatInfos[f]
	return ok
}

func (f Format) String() string {
	if f == FormatNone {
		return "None"
	}
	return string(f)
}

func (f Format) ColorSpace() ColorSpace { return f.info().space }

// PlaneCount returns the number of planes, 0 for unknown formats.
func (f Format) PlaneCount() int { return f.info().planes }

// BitsPerSample returns the size of one sample within one plane.
func (f Format) BitsPerSample() int { return f.info().bits }

func (f Format) Alpha() AlphaKind { return f.info().alpha }

func (f Format) Subsampling() Subsampling { return f.info().subsampling }

// ByteOrder is only meaningful for 5-6-5 formats.
func (f Format) ByteOrder() ByteOrder { return f.info().order }

func (f Format) IsYUV() bool { return f.info().space == ColorSpaceYUV }

// IsYUV420 reports whether f carries chroma at half horizontal and vertical resolution.
func (f Format) IsYUV420() bool { return f.info().subsampling == Subsampling420 }

func (f Format) HasAlpha() bool { return f.info().alpha != AlphaNone }

func (f Format) IsPremultiplied() bool { return f.info().alpha == AlphaPremultiplied }

// StraightAlpha returns the non-premultiplied twin of f, or f itself.
func (f Format) StraightAlpha() Format {
	if s := f.info().straight; s != FormatNone {
		return s
	}
	return f
}

// RGBEquivalent returns the RGB format sharing the memory layout of the
// non-subsampled YUV format f, or f itself.
func (f Format) RGBEquivalent() Format {
	if r := f.info().rgb; r != FormatNone {
		return r
	}
	return f
}

// planeRows returns the number of rows of plane i for a buffer of the given height.
func (f Format) planeRows(i, height int) int {
	if i > 0 && f.IsYUV420() {
		return height / 2
	}
	return height
}

// planeRowBytes returns the number of meaningful bytes in one row of plane i.
func (f Format) planeRowBytes(i, width int) int {
	switch f {
	case FormatI420, FormatYV12:
		if i > 0 {
			return width / 2
		}
		return width
	case FormatNV12, FormatNV21:
		return width
	}
	return f.BitsPerSample() * width / 8
}
