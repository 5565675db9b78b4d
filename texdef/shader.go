package texdef

// DefaultShaderName is used for faces created without a shader
const DefaultShaderName = "textures/common/caulk"

// DefaultTextureSize is assumed for shaders whose image size is unknown
const DefaultTextureSize = 64

// Shader flags
const (
	FlagDetail uint32 = 1 << iota
	FlagNoDraw
	FlagTranslucent
)

// Shader is the material reference of a face. The image size is filled in
// by whoever resolves the name; until then DefaultTextureSize applies.
type Shader struct {
	Name   string
	Width  int
	Height int
	Flags  uint32
}

// NewShader returns a shader reference of unknown size
func NewShader(name string) Shader {
	if name == "" {
		name = DefaultShaderName
	}
	return Shader{Name: name}
}

// Size returns the image size used for texture coordinates
func (s Shader) Size() (width, height float64) {
	width, height = DefaultTextureSize, DefaultTextureSize
	if s.Width > 0 {
		width = float64(s.Width)
	}
	if s.Height > 0 {
		height = float64(s.Height)
	}
	return width, height
}

// IsDefault reports whether the shader is the placeholder material
func (s Shader) IsDefault() bool {
	return s.Name == "" || s.Name == DefaultShaderName
}

// Has reports whether all bits of flag are set
func (s Shader) Has(flag uint32) bool {
	return s.Flags&flag == flag
}
