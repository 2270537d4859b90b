package frame

type Format string

// FormatNone is the null format. Buffers carrying it are never read or written.
const FormatNone Format = ""

const (
	// Packed RGB Formats, 8 bits per channel. The name gives the byte order in memory.

	FormatRGBA Format = "RGBA"
	FormatBGRA Format = "BGRA"
	FormatARGB Format = "ARGB"
	FormatABGR Format = "ABGR"

	// FormatRGBA_PA is FormatRGBA with premultiplied alpha
	FormatRGBA_PA Format = "RGBA_PA"
	// FormatBGRA_PA is FormatBGRA with premultiplied alpha
	FormatBGRA_PA Format = "BGRA_PA"
	// FormatARGB_PA is FormatARGB with premultiplied alpha
	FormatARGB_PA Format = "ARGB_PA"
	// FormatABGR_PA is FormatABGR with premultiplied alpha
	FormatABGR_PA Format = "ABGR_PA"

	FormatRGB Format = "RGB"
	FormatBGR Format = "BGR"

	// 16 bit Formats. Red (or blue for BGR) lives in the 5 most significant bits.

	FormatRGB565BE Format = "RGB565BE"
	FormatRGB565LE Format = "RGB565LE"
	FormatBGR565BE Format = "BGR565BE"
	FormatBGR565LE Format = "BGR565LE"

	// FormatGray8 is 8 bit luminance
	FormatGray8 Format = "GRAY8"

	// Planar RGB Formats, one plane per channel

	FormatRGBA_PLANAR    Format = "RGBA_PLANAR"
	FormatRGBA_PLANAR_PA Format = "RGBA_PLANAR_PA"
	FormatRGB_PLANAR     Format = "RGB_PLANAR"

	// YUV Formats without sub-sampling

	FormatYUVA           Format = "YUVA"
	FormatYUVA_PA        Format = "YUVA_PA"
	FormatYUV444         Format = "YUV444"
	FormatYUVA_PLANAR    Format = "YUVA_PLANAR"
	FormatYUVA_PLANAR_PA Format = "YUVA_PLANAR_PA"
	// FormatI444 is planar YUV without sub-sampling
	FormatI444 Format = "I444"

	// YUV 4:2:0 Formats

	// FormatI420 https://www.fourcc.org/pixel-format/yuv-i420/
	FormatI420 Format = "I420"
	// FormatYV12 https://www.fourcc.org/pixel-format/yuv-yv12/
	FormatYV12 Format = "YV12"
	// FormatNV12 https://www.fourcc.org/pixel-format/yuv-nv12/
	FormatNV12 Format = "NV12"
	// FormatNV21 https://www.fourcc.org/pixel-format/yuv-nv21/
	FormatNV21 Format = "NV21"
)

// Aliases

// FormatYUV444_PLANAR is an alias of FormatI444
const FormatYUV444_PLANAR = FormatI444

// FormatRGB24 is an alias of FormatRGB
const FormatRGB24 = FormatRGB

// MaxPlanes is the largest number of planes a Format can have.
const MaxPlanes = 4

// ColorSpace tells how the channels of a Format are to be interpreted.
type ColorSpace int

const (
	ColorSpaceNone ColorSpace = iota
	ColorSpaceRGB
	ColorSpaceYUV
	ColorSpaceGray
)

// AlphaKind tells whether a Format carries alpha, and how.
type AlphaKind int

const (
	AlphaNone AlphaKind = iota
	AlphaStraight
	AlphaPremultiplied
)

// Subsampling is the chroma layout of a YUV Format.
type Subsampling int

const (
	SubsamplingNone Subsampling = iota
	Subsampling420
)

// ByteOrder of the 16 bit words in 5-6-5 Formats.
type ByteOrder int

const (
	ByteOrderNone ByteOrder = iota
	BigEndian
	LittleEndian
)
