package entity

import (
	"regexp"
	"strconv"
	"strings"
)

// ImageVariant is a display slot with its own target widths.
type ImageVariant string

const (
	ImageVariantCard      ImageVariant = "card"
	ImageVariantThumbnail ImageVariant = "thumbnail"
	ImageVariantGallery   ImageVariant = "gallery"
	ImageVariantHero      ImageVariant = "hero"
)

type variantSpec struct {
	width  int
	srcset []int
	sizes  string
}

var variantSpecs = map[ImageVariant]variantSpec{
	ImageVariantCard: {
		width:  300,
		srcset: []int{200, 300, 400},
		sizes:  "(max-width: 640px) 200px, (max-width: 768px) 300px, 400px",
	},
	ImageVariantThumbnail: {
		width:  80,
		srcset: []int{60, 80, 100},
		sizes:  "80px",
	},
	ImageVariantGallery: {
		width:  800,
		srcset: []int{600, 800, 1200},
		sizes:  "(max-width: 640px) 600px, (max-width: 1024px) 800px, 1200px",
	},
	ImageVariantHero: {
		width:  1200,
		srcset: []int{800, 1200, 1600},
		sizes:  "(max-width: 640px) 800px, (max-width: 1024px) 1200px, 1600px",
	},
}

var widthParam = regexp.MustCompile(`w=\d+`)

func (v ImageVariant) spec() variantSpec {
	if s, ok := variantSpecs[v]; ok {
		return s
	}

	return variantSpecs[ImageVariantCard]
}

// isResizable reports whether the image host honours a w= query parameter.
func isResizable(url string) bool {
	return url != "" && strings.Contains(url, "unsplash.com")
}

// withWidth replaces the first w=<n> in url.
func withWidth(url string, width int) string {
	replaced := false

	return widthParam.ReplaceAllStringFunc(url, func(match string) string {
		if replaced {
			return match
		}
		replaced = true

		return "w=" + strconv.Itoa(width)
	})
}

// ResponsiveImage returns url resized for the variant. Other hosts pass through.
func ResponsiveImage(url string, variant ImageVariant) string {
	if !isResizable(url) {
		return url
	}

	return withWidth(url, variant.spec().width)
}

// SrcSet builds an HTML srcset for the variant, or returns url unchanged for
// hosts that cannot resize.
func SrcSet(url string, variant ImageVariant) string {
	if !isResizable(url) {
		return url
	}

	widths := variant.spec().srcset
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = withWidth(url, w) + " " + strconv.Itoa(w) + "w"
	}

	return strings.Join(parts, ", ")
}

// Sizes is the HTML sizes attribute matching SrcSet.
func Sizes(variant ImageVariant) string {
	return variant.spec().sizes
}

// ImageSet is one image prepared for a display slot.
type ImageSet struct {
	Src    string `json:"src"`
	SrcSet string `json:"srcset"`
	Sizes  string `json:"sizes"`
}

// NewImageSet prepares url for variant.
func NewImageSet(url string, variant ImageVariant) ImageSet {
	return ImageSet{
		Src:    ResponsiveImage(url, variant),
		SrcSet: SrcSet(url, variant),
		Sizes:  Sizes(variant),
	}
}
