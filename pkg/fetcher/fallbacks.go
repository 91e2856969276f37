package fetcher

import "path/filepath"

const (
	FallbackDir = "public/images/fallbacks"
)

type Descriptor struct {
	URL         string
	LocalPath   string
	Description string
}

// FallbackImages returns the set of external images the frontend relies on
// as fallbacks. Edit this list to change what gets mirrored.
func FallbackImages() []Descriptor {
	return []Descriptor{
		{
			URL:         "https://images.unsplash.com/photo-1489515217757-5fd1be406fef?auto=format&fit=crop&w=800&q=80",
			LocalPath:   filepath.Join(FallbackDir, "attraction-fallback.jpg"),
			Description: "Fallback attraction image",
		},
		{
			URL:         "https://images.unsplash.com/photo-1467269204594-9661b134dd2b?auto=format&fit=crop&w=1600&q=80",
			LocalPath:   filepath.Join(FallbackDir, "city-fallback.jpg"),
			Description: "Fallback city image",
		},
		{
			URL:         "https://images.unsplash.com/photo-1489515217757-5fd1be406fef?auto=format&fit=crop&w=1200&q=80",
			LocalPath:   filepath.Join(FallbackDir, "hero-fallback.jpg"),
			Description: "Fallback hero image",
		},
		{
			URL:         "https://images.unsplash.com/photo-1488646953014-85cb44e25828?auto=format&fit=crop&w=1200&q=80",
			LocalPath:   filepath.Join(FallbackDir, "seo-default.jpg"),
			Description: "SEO default meta image",
		},
		{
			URL:         "https://images.unsplash.com/photo-1469854523086-cc02fe5d8800?auto=format&fit=crop&w=1200&q=80",
			LocalPath:   filepath.Join(FallbackDir, "about-page.jpg"),
			Description: "About page image",
		},
	}
}
