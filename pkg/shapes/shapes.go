// Package shapes holds the immutable icon catalogs, color palettes, and
// rotation angles used by the doodle generator.
//
// All paths are authored in a 24x24 unit box. The generator treats them as
// opaque tokens: it never inspects their geometry, only which catalog they
// belong to. Nothing in this package is mutated after process start.
package shapes

// Video and media playback icons.
var Video = []string{
	"M8 5v14l11-7z",
	"M17 10.5V7a1 1 0 0 0-1-1H4a1 1 0 0 0-1 1v10a1 1 0 0 0 1 1h12a1 1 0 0 0 1-1v-3.5l4 4v-11z",
	"M4 6h16v12H4zm8 3v6l5-3z",
	"M21 3H3a2 2 0 0 0-2 2v12a2 2 0 0 0 2 2h5v2h8v-2h5a2 2 0 0 0 2-2V5a2 2 0 0 0-2-2z",
	"M12 2a10 10 0 1 0 0 20 10 10 0 0 0 0-20zm-2 14.5v-9l6 4.5z",
	"M15 8v8H5V8h10m1-2H4a1 1 0 0 0-1 1v10a1 1 0 0 0 1 1h12a1 1 0 0 0 1-1v-3.5l4 4v-11l-4 4V7a1 1 0 0 0-1-1z",
	"M18 4l2 4h-3l-2-4h-2l2 4h-3l-2-4H8l2 4H7L5 4H4a2 2 0 0 0-2 2v12a2 2 0 0 0 2 2h16a2 2 0 0 0 2-2V4z",
}

// Study and academic icons.
var Study = []string{
	"M12 3L1 9l11 6 9-4.91V17h2V9z",
	"M5 13.18v4L12 21l7-3.82v-4L12 17z",
	"M21 5c-1.11-.35-2.33-.5-3.5-.5-1.95 0-4.05.4-5.5 1.5-1.45-1.1-3.55-1.5-5.5-1.5S2.45 4.9 1 6v14.65c1.45-1.1 3.55-1.5 5.5-1.5s4.05.4 5.5 1.5c1.45-1.1 3.55-1.5 5.5-1.5 1.17 0 2.39.15 3.5.5z",
	"M4 2h16v20l-8-4-8 4z",
	"M14 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V8zm4 18H6V4h7v5h5z",
	"M9 4v16m6-16v16M4 8h16M4 16h16",
	"M12 6.5a5.5 5.5 0 1 0 0 11 5.5 5.5 0 0 0 0-11zm0-4.5l2 3h-4z",
}

// Tech and code icons.
var Tech = []string{
	"M9.4 16.6L4.8 12l4.6-4.6L8 6l-6 6 6 6zm5.2 0l4.6-4.6-4.6-4.6L16 6l6 6-6 6z",
	"M20 18c1.1 0 2-.9 2-2V6c0-1.1-.9-2-2-2H4c-1.1 0-2 .9-2 2v10c0 1.1.9 2 2 2H0v2h24v-2z",
	"M15 9H9v6h6zm-2 4h-2v-2h2zm8-2V9h-2V7c0-1.1-.9-2-2-2h-2V3h-2v2h-2V3H9v2H7c-1.1 0-2 .9-2 2v2H3v2h2v2H3v2h2v2c0 1.1.9 2 2 2h2v2h2v-2h2v2h2v-2h2c1.1 0 2-.9 2-2v-2h2v-2h-2v-2z",
	"M12 2l8 4v6c0 5-3.5 9.3-8 10-4.5-.7-8-5-8-10V6z",
	"M4 4h6v6H4zm10 0h6v6h-6zM4 14h6v6H4zm10 3a3 3 0 1 0 6 0 3 3 0 0 0-6 0z",
	"M3 3h18v4H3zm0 7h18v4H3zm0 7h18v4H3z",
	"M8 3a2 2 0 0 0-2 2v4a2 2 0 0 1-2 2 2 2 0 0 1 2 2v4a2 2 0 0 0 2 2m8-16a2 2 0 0 1 2 2v4a2 2 0 0 0 2 2 2 2 0 0 0-2 2v4a2 2 0 0 1-2 2",
}

// Analytics and data icons.
var Analytics = []string{
	"M5 9.2h3V19H5zM10.6 5h2.8v14h-2.8zm5.6 8H19v6h-2.8z",
	"M3.5 18.49l6-6.01 4 4L22 6.92l-1.41-1.41-7.09 7.97-4-4L2 16.99z",
	"M11 2v20c-5.07-.5-9-4.79-9-10s3.93-9.5 9-10zm2.03 0v8.99H22c-.47-4.74-4.24-8.52-8.97-8.99zm0 11.01V22c4.74-.47 8.5-4.25 8.97-8.99z",
	"M19 3H5a2 2 0 0 0-2 2v14a2 2 0 0 0 2 2h14a2 2 0 0 0 2-2V5a2 2 0 0 0-2-2zM9 17H7v-7h2zm4 0h-2V7h2zm4 0h-2v-4h2z",
	"M16 6l2.29 2.29-4.88 4.88-4-4L2 16.59 3.41 18l6-6 4 4 6.3-6.29L22 12V6z",
	"M12 2a10 10 0 1 0 10 10h-10z",
	"M7 14l5-5 5 5z",
}

// AI and machine intelligence icons.
var AI = []string{
	"M21 11.18V9.72c0-.47-.16-.92-.46-1.28L16.6 3.72c-.38-.46-.94-.72-1.54-.72H8.94c-.6 0-1.15.26-1.54.72L3.46 8.44c-.3.36-.46.81-.46 1.28v1.46c0 .47.16.92.46 1.28l3.94 4.72c.39.46.94.72 1.54.72h6.12c.6 0 1.16-.26 1.54-.72l3.94-4.72c.3-.36.46-.81.46-1.28z",
	"M12 2a2 2 0 0 1 2 2c0 .74-.4 1.39-1 1.73V7h1a7 7 0 0 1 7 7h1a1 1 0 0 1 1 1v3a1 1 0 0 1-1 1h-1v1a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2v-1H2a1 1 0 0 1-1-1v-3a1 1 0 0 1 1-1h1a7 7 0 0 1 7-7h1V5.73c-.6-.34-1-.99-1-1.73a2 2 0 0 1 2-2z",
	"M12 3a9 9 0 0 0-9 9 9 9 0 0 0 9 9 9 9 0 0 0 9-9h-2a7 7 0 0 1-7 7 7 7 0 0 1-7-7 7 7 0 0 1 7-7z",
	"M9 2v2H7a2 2 0 0 0-2 2v2H3v2h2v4H3v2h2v2a2 2 0 0 0 2 2h2v2h2v-2h2v2h2v-2h2a2 2 0 0 0 2-2v-2h2v-2h-2v-4h2V8h-2V6a2 2 0 0 0-2-2h-2V2h-2v2h-2V2z",
	"M12 2l2.4 7.2H22l-6 4.8 2.4 7.2-6.4-4.8L5.6 21.2 8 14 2 9.2h7.6z",
	"M6 12a6 6 0 1 1 12 0 6 6 0 0 1-12 0zm6-10v2m0 16v2M2 12h2m16 0h2",
}

// Creative and design icons.
var Creative = []string{
	"M12 22C6.49 22 2 17.51 2 12S6.49 2 12 2s10 4.04 10 9c0 3.31-2.69 6-6 6h-1.77c-.28 0-.5.22-.5.5 0 .12.05.23.13.33.41.47.64 1.06.64 1.67A2.5 2.5 0 0 1 12 22z",
	"M7 14c-1.66 0-3 1.34-3 3 0 1.31-1.16 2-2 2 .92 1.22 2.49 2 4 2 2.21 0 4-1.79 4-4 0-1.66-1.34-3-3-3zm13.71-9.37l-1.34-1.34a.996.996 0 0 0-1.41 0L9 12.25 11.75 15l8.96-8.96a.996.996 0 0 0 0-1.41z",
	"M12 2l3 7h7l-5.5 4.5L18 21l-6-4-6 4 1.5-7.5L2 9h7z",
	"M3 17.25V21h3.75L17.81 9.94l-3.75-3.75zM20.71 7.04a.996.996 0 0 0 0-1.41l-2.34-2.34a.996.996 0 0 0-1.41 0l-1.83 1.83 3.75 3.75z",
	"M11.99 18.54l-7.37-5.73L3 14.07l9 7 9-7-1.63-1.27zM12 16l7.36-5.73L21 9l-9-7-9 7 1.63 1.27z",
	"M9 3a6 6 0 0 0 0 12h6a6 6 0 0 0 0-12zm0 2a4 4 0 1 1 0 8 4 4 0 0 1 0-8z",
	"M4 20h16M6.5 17.5l11-11M9 4l11 11",
}

// Abstract geometric shapes.
var Abstract = []string{
	"M12 2l10 10-10 10L2 12z",
	"M12 4a8 8 0 1 0 0 16 8 8 0 0 0 0-16z",
	"M4 4h16v16H4z",
	"M12 2l9 16H3z",
	"M12 2c3 4 3 8 0 10s-3 6 0 10c-3-4-9-4-9-10s6-6 9-10z",
	"M2 12c3-5 7-5 10 0s7 5 10 0",
	"M12 3a9 9 0 0 1 0 18 4.5 4.5 0 0 1 0-9 4.5 4.5 0 0 0 0-9z",
}

// Decorative filler marks, drawn filled on the dense back layers.
var Decorative = []string{
	"M12 10a2 2 0 1 0 0 4 2 2 0 0 0 0-4z",
	"M12 4l2 6 6 2-6 2-2 6-2-6-2-2 6-2z",
	"M12 6l1.5 4.5L18 12l-4.5 1.5L12 18l-1.5-4.5L6 12l4.5-1.5z",
	"M8 12a4 4 0 1 1 8 0 4 4 0 0 1-8 0z",
	"M12 5v14M5 12h14",
	"M12 8a4 4 0 1 0 0 8 4 4 0 0 0 0-8zm0 2.5a1.5 1.5 0 1 1 0 3 1.5 1.5 0 0 1 0-3z",
}

// Library is the ordered union of every catalog. Pool construction and the
// statistical bias tests depend on this ordering staying stable.
var Library = concat(Video, Study, Tech, Analytics, AI, Creative, Abstract, Decorative)

// PaletteLight is the ordered palette for light color mode.
var PaletteLight = []string{
	"#94A3B8", // slate
	"#A5B4FC", // indigo
	"#C4B5FD", // violet
	"#93C5FD", // blue
	"#86EFAC", // green
	"#FDA4AF", // rose
	"#FCD34D", // amber
}

// PaletteDark is the ordered palette for dark color mode.
var PaletteDark = []string{
	"#64748B",
	"#818CF8",
	"#A78BFA",
	"#60A5FA",
	"#4ADE80",
	"#FB7185",
	"#FBBF24",
}

// Brand accent colors. A small fraction of accent and decorative elements
// override their palette color with one of these two, chosen by coin flip.
const (
	AccentPrimary   = "#6366F1"
	AccentSecondary = "#F59E0B"
)

// Angles is the discrete rotation set for layers that want "intentional"
// placement rather than fully scattered rotation.
var Angles = []float64{0, 12, -12, 25, -25, 40, -40, 55, -55, 70, -70, 90, 135, -135, 180}

// BoxSize is the native authoring box of every path in this package.
const BoxSize = 24.0

func concat(sets ...[]string) []string {
	var out []string
	for _, s := range sets {
		out = append(out, s...)
	}
	return out
}
