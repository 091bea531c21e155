package sanitize

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

var allowedElements = set(
	"svg", "g", "defs", "symbol", "use", "title", "desc", "style",
	"path", "rect", "circle", "ellipse", "line", "polyline", "polygon",
	"text", "tspan", "textPath",
	"linearGradient", "radialGradient", "stop",
	"clipPath", "mask", "pattern", "marker", "image",
	"filter", "feBlend", "feColorMatrix", "feComponentTransfer", "feComposite",
	"feConvolveMatrix", "feDiffuseLighting", "feDisplacementMap", "feDistantLight",
	"feDropShadow", "feFlood", "feFuncA", "feFuncB", "feFuncG", "feFuncR",
	"feGaussianBlur", "feMerge", "feMergeNode", "feMorphology", "feOffset",
	"fePointLight", "feSpecularLighting", "feSpotLight", "feTile", "feTurbulence",
)

// Elements whose tags are dropped while their children are kept.
var unwrappedElements = set("a", "switch")

var allowedAttributes = set(
	"id", "class", "style", "lang", "tabindex",
	"viewBox", "preserveAspectRatio", "width", "height", "x", "y",
	"x1", "y1", "x2", "y2", "cx", "cy", "r", "rx", "ry", "fx", "fy", "fr",
	"d", "points", "pathLength", "transform", "version", "baseProfile",
	"fill", "fill-opacity", "fill-rule", "clip-rule", "clip-path", "clipPathUnits",
	"stroke", "stroke-width", "stroke-linecap", "stroke-linejoin", "stroke-miterlimit",
	"stroke-dasharray", "stroke-dashoffset", "stroke-opacity",
	"opacity", "color", "display", "visibility", "overflow", "mask", "maskUnits",
	"maskContentUnits", "filter", "filterUnits", "primitiveUnits",
	"offset", "stop-color", "stop-opacity", "gradientUnits", "gradientTransform", "spreadMethod",
	"patternUnits", "patternContentUnits", "patternTransform",
	"markerWidth", "markerHeight", "markerUnits", "refX", "refY", "orient",
	"marker-start", "marker-mid", "marker-end",
	"font-family", "font-size", "font-style", "font-weight", "font-variant",
	"text-anchor", "dominant-baseline", "alignment-baseline", "baseline-shift",
	"letter-spacing", "word-spacing", "text-decoration", "dx", "dy", "rotate",
	"textLength", "lengthAdjust", "startOffset", "method", "spacing",
	"in", "in2", "result", "mode", "type", "values", "operator", "k1", "k2", "k3", "k4",
	"stdDeviation", "edgeMode", "scale", "xChannelSelector", "yChannelSelector",
	"flood-color", "flood-opacity", "lighting-color", "radius", "order", "kernelMatrix",
	"divisor", "bias", "targetX", "targetY", "preserveAlpha", "surfaceScale",
	"diffuseConstant", "specularConstant", "specularExponent", "azimuth", "elevation",
	"z", "pointsAtX", "pointsAtY", "pointsAtZ", "limitingConeAngle",
	"baseFrequency", "numOctaves", "seed", "stitchTiles",
	"tableValues", "slope", "intercept", "amplitude", "exponent",
	"shape-rendering", "text-rendering", "image-rendering", "color-interpolation",
	"color-interpolation-filters", "vector-effect", "paint-order", "mix-blend-mode",
	"isolation", "href", "media",
)

var allowedNamespaces = set(
	"http://www.w3.org/2000/svg",
	"http://www.w3.org/1999/xlink",
)

var allowedImageData = []string{
	"data:image/png;",
	"data:image/jpeg;",
	"data:image/gif;",
	"data:image/webp;",
}
