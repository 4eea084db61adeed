package ui

// FontHandle and ImageHandle are opaque references handed out by an
// AssetServer. Zero means no asset.
type (
	FontHandle  uint32
	ImageHandle uint32
)

// AssetServer hands out handles for asset paths. Loading happens later in
// the host, so load failures never reach the UI builder.
type AssetServer interface {
	LoadFont(path string) FontHandle
	LoadImage(path string) ImageHandle
}

// Registry is an AssetServer that only records paths. Hosts resolve the
// handles to loaded resources when they first draw them.
type Registry struct {
	fonts  []string
	images []string
	index  map[string]uint32
}

func NewRegistry() *Registry {
	return &Registry{index: make(map[string]uint32)}
}

func (r *Registry) LoadFont(path string) FontHandle {
	key := "font:" + path
	if h, ok := r.index[key]; ok {
		return FontHandle(h)
	}
	r.fonts = append(r.fonts, path)
	r.index[key] = uint32(len(r.fonts))
	return FontHandle(len(r.fonts))
}

func (r *Registry) LoadImage(path string) ImageHandle {
	key := "image:" + path
	if h, ok := r.index[key]; ok {
		return ImageHandle(h)
	}
	r.images = append(r.images, path)
	r.index[key] = uint32(len(r.images))
	return ImageHandle(len(r.images))
}

// FontPath returns the path a font handle was issued for.
func (r *Registry) FontPath(h FontHandle) (string, bool) {
	if h == 0 || int(h) > len(r.fonts) {
		return "", false
	}
	return r.fonts[h-1], true
}

// ImagePath returns the path an image handle was issued for.
func (r *Registry) ImagePath(h ImageHandle) (string, bool) {
	if h == 0 || int(h) > len(r.images) {
		return "", false
	}
	return r.images[h-1], true
}
