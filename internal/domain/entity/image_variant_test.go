package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const unsplashURL = "https://images.unsplash.com/photo-1?w=400&h=400&fit=crop"

func TestResponsiveImage(t *testing.T) {
	assert.Equal(t, "https://images.unsplash.com/photo-1?w=300&h=400&fit=crop", ResponsiveImage(unsplashURL, ImageVariantCard))
	assert.Equal(t, "https://images.unsplash.com/photo-1?w=80&h=400&fit=crop", ResponsiveImage(unsplashURL, ImageVariantThumbnail))
	assert.Equal(t, "https://images.unsplash.com/photo-1?w=1200&h=400&fit=crop", ResponsiveImage(unsplashURL, ImageVariantHero))

	other := "https://cdn.example.com/a.jpg?w=400"
	assert.Equal(t, other, ResponsiveImage(other, ImageVariantGallery))
	assert.Equal(t, "", ResponsiveImage("", ImageVariantCard))
}

func TestSrcSet(t *testing.T) {
	got := SrcSet(unsplashURL, ImageVariantThumbnail)
	assert.Equal(t,
		"https://images.unsplash.com/photo-1?w=60&h=400&fit=crop 60w, "+
			"https://images.unsplash.com/photo-1?w=80&h=400&fit=crop 80w, "+
			"https://images.unsplash.com/photo-1?w=100&h=400&fit=crop 100w",
		got)

	other := "https://cdn.example.com/a.jpg"
	assert.Equal(t, other, SrcSet(other, ImageVariantCard))
}

func TestSizes(t *testing.T) {
	assert.Equal(t, "80px", Sizes(ImageVariantThumbnail))
	assert.Equal(t, Sizes(ImageVariantCard), Sizes(ImageVariant("unknown")))
}

func TestResponsiveImage_OnlyFirstWidthReplaced(t *testing.T) {
	url := "https://images.unsplash.com/photo-1?w=400&crop=w=10"
	assert.Equal(t, "https://images.unsplash.com/photo-1?w=800&crop=w=10", ResponsiveImage(url, ImageVariantGallery))
}
