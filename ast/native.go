package ast

// NativeClassNames lists the compiler-intrinsic classes, in registry order.
var NativeClassNames = []string{
	"BindGroup",
	"Buffer",
	"ColorAttachment",
	"CommandBuffer",
	"CommandEncoder",
	"ComputeBuiltins",
	"ComputePass",
	"ComputePipeline",
	"DepthStencilAttachment",
	"DepthStencilState",
	"Device",
	"Event",
	"FragmentBuiltins",
	"ImageDecoder",
	"Math",
	"Queue",
	"RenderPass",
	"RenderPipeline",
	"SampleableTexture1D",
	"SampleableTexture2D",
	"SampleableTexture2DArray",
	"SampleableTexture3D",
	"SampleableTextureCube",
	"Sampler",
	"SwapChain",
	"System",
	"Texture1D",
	"Texture2D",
	"Texture2DArray",
	"Texture3D",
	"TextureCube",
	"VertexBuiltins",
	"Window",

	"PixelFormat",

	"R8unorm", "R8snorm", "R8uint", "R8sint",
	"RG8unorm", "RG8snorm", "RG8uint", "RG8sint",
	"RGBA8unorm", "RGBA8unormSRGB", "RGBA8snorm", "RGBA8uint", "RGBA8sint",
	"BGRA8unorm", "BGRA8unormSRGB",
	"R16uint", "R16sint",
	"RG16uint", "RG16sint",
	"RGBA16uint", "RGBA16sint",
	"R32uint", "R32sint", "R32float",
	"RG32uint", "RG32sint", "RG32float",
	"RGBA32uint", "RGBA32sint", "RGBA32float",
	"RGB10A2unorm", "RG11B10ufloat",
	"Depth24Plus",
	"PreferredSwapChainFormat",
}

var nativeClassNameSet = func() map[string]bool {
	m := make(map[string]bool, len(NativeClassNames))
	for _, name := range NativeClassNames {
		m[name] = true
	}
	return m
}()

func IsNativeClassName(name string) bool {
	return nativeClassNameSet[name]
}

// NativeRegistry maps the compiler-known class names to their definitions
// in one TypeTable. Code generators and runtime bridges consult it by name.
type NativeRegistry struct {
	classes map[string]*ClassType
}

func (r *NativeRegistry) define(c *ClassType) {
	if !IsNativeClassName(c.Name) {
		return
	}
	c.Native = true
	r.classes[c.Name] = c
}

// Lookup returns the class defined for a native name, or nil.
func (r *NativeRegistry) Lookup(name string) *ClassType {
	return r.classes[name]
}

// Defined returns the registered classes in registry order.
func (r *NativeRegistry) Defined() []*ClassType {
	var out []*ClassType
	for _, name := range NativeClassNames {
		if c, ok := r.classes[name]; ok {
			out = append(out, c)
		}
	}
	return out
}
