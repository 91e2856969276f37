package fetcher

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestFallbackImages(t *testing.T) {
	images := FallbackImages()
	assert.Len(t, images, 5)

	for _, img := range images {
		assert.True(t, strings.HasPrefix(img.URL, "https://images.unsplash.com/"), img.URL)
		assert.Equal(t, filepath.Clean(FallbackDir), filepath.Dir(img.LocalPath), img.LocalPath)
		assert.NotEmpty(t, img.Description)
	}

	paths := lo.Map(images, func(img Descriptor, _ int) string { return img.LocalPath })
	assert.Len(t, lo.Uniq(paths), len(images))
}
