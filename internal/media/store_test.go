package media

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, KindImage, Classify("image/jpeg"))
	assert.Equal(t, KindImage, Classify(" IMAGE/PNG "))
	assert.Equal(t, KindVideo, Classify("video/mp4"))
	assert.Equal(t, "", Classify("application/pdf"))
	assert.Equal(t, "", Classify(""))
}

func TestRandomName_KeepsExtension(t *testing.T) {
	a := RandomName("Shop Front.JPG")
	b := RandomName("Shop Front.JPG")
	assert.True(t, strings.HasSuffix(a, ".jpg"))
	assert.NotEqual(t, a, b)
	assert.NotContains(t, RandomName("noext"), ".")
}

func TestPaths(t *testing.T) {
	shopID := "64b7f0c2a1b2c3d4e5f60718"

	main := MainImagePath(shopID, "a.png")
	assert.True(t, strings.HasPrefix(main, "media/shop/"+shopID+"/main/"))
	assert.True(t, IsUnderRoot(main))

	gallery := GalleryImagePath(shopID, "b.webp")
	assert.True(t, strings.HasPrefix(gallery, "media/shop/"+shopID+"/images/"))

	assert.Equal(t, "media/shop/"+shopID+"/offers/videos/abc.mp4", OfferMediaPath(shopID, "abc", KindVideo, "clip.MP4"))
	assert.Equal(t, "media/shop/"+shopID+"/offers/images/abc.jpg", OfferMediaPath(shopID, "abc", KindImage, "x.jpg"))
}

func TestIsUnderRoot(t *testing.T) {
	assert.True(t, IsUnderRoot("media/shop/x/images/a.jpg"))
	assert.False(t, IsUnderRoot("media/shop/../../etc/passwd"))
	assert.False(t, IsUnderRoot("/media/shop/x"))
	assert.False(t, IsUnderRoot("static/x.jpg"))
	assert.False(t, IsUnderRoot(""))
}
