package scene

// BlendMode is the material transparency mode used by real-time targets.
type BlendMode string

const (
	BlendOpaque BlendMode = "OPAQUE"
	BlendClip   BlendMode = "CLIP"
	BlendHashed BlendMode = "HASHED"
)

// ColorSpace tags how an image's pixel data is interpreted.
type ColorSpace string

const (
	ColorSpaceSRGB     ColorSpace = "sRGB"
	ColorSpaceNonColor ColorSpace = "Non-Color"
)

// Material is a scene material with an optional node graph.
type Material struct {
	Name            string
	Graph           *NodeGraph
	BackfaceCulling bool
	Blend           BlendMode
	AlphaThreshold  float64
}

// NewMaterial creates an opaque material with no graph.
func NewMaterial(name string) *Material {
	return &Material{Name: name, Blend: BlendOpaque}
}

// UsesNodes reports whether the material has a node graph.
func (m *Material) UsesNodes() bool {
	return m.Graph != nil && len(m.Graph.Nodes) > 0
}

// Image is a texture. FilePath points at the on-disk source; Packed holds the
// raw encoded bytes when the image exists only in memory.
type Image struct {
	Name       string
	FilePath   string
	Packed     []byte
	HasAlpha   bool
	ColorSpace ColorSpace
}

// OnDisk reports whether the image has an on-disk source path.
func (img *Image) OnDisk() bool {
	return img.FilePath != ""
}

// IsPacked reports whether the image data is held only in memory.
func (img *Image) IsPacked() bool {
	return len(img.Packed) > 0 && img.FilePath == ""
}
