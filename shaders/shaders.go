package shaders

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/bloeys/nshader/driver"
	"github.com/bloeys/nshader/logging"
)

const combinedShaderMarker = "//shader:"

// CreateFromSource compiles, attaches and links a vertex and fragment source.
// The returned program is never nil; check IsValid/ErrorString for failures.
// The intermediate sources are always released.
func CreateFromSource(ctx Context, vertSrc, fragSrc string) *ShaderProgram {

	drv := ctx.Driver()
	shdrProg := NewShaderProgram(ctx)

	vertShdr := NewVertexSource(drv)
	defer vertShdr.Delete()

	fragShdr := NewFragmentSource(drv)
	defer fragShdr.Delete()

	vertShdr.Compile(vertSrc)
	fragShdr.Compile(fragSrc)

	shdrProg.Attach(vertShdr)
	shdrProg.Attach(fragShdr)
	shdrProg.Link()

	return shdrProg
}

// CreateFromFile loads a program from disk. With one path, '.vert' and '.frag' are appended to it
// to get the two files. With two paths they are used as given (vertex first).
//
// Paths that don't exist as given are looked up through the context's asset dirs.
// Only file problems are returned as errors; compile/link failures are recorded on the program.
func CreateFromFile(ctx Context, paths ...string) (*ShaderProgram, error) {

	var vertPath, fragPath string
	switch len(paths) {
	case 1:
		vertPath = paths[0] + driver.ShaderType_Vertex.Ext()
		fragPath = paths[0] + driver.ShaderType_Fragment.Ext()
	case 2:
		vertPath = paths[0]
		fragPath = paths[1]

	default:
		return nil, fmt.Errorf("CreateFromFile expects one or two paths but got %d", len(paths))
	}

	vertSrc, err := readShaderFile(ctx, vertPath)
	if err != nil {
		return nil, err
	}

	fragSrc, err := readShaderFile(ctx, fragPath)
	if err != nil {
		return nil, err
	}

	return CreateFromSource(ctx, string(vertSrc), string(fragSrc)), nil
}

func resolveShaderPath(ctx Context, shaderPath string) (string, error) {

	if info, err := os.Stat(shaderPath); err == nil && !info.IsDir() {
		return shaderPath, nil
	}

	assetPath, ok := ctx.GetAssetFile(shaderPath)
	if !ok {
		return "", fmt.Errorf("shader file '%s' was not found: %w", shaderPath, os.ErrNotExist)
	}

	return assetPath, nil
}

func readShaderFile(ctx Context, shaderPath string) ([]byte, error) {

	resolvedPath, err := resolveShaderPath(ctx, shaderPath)
	if err != nil {
		logging.ErrLog.Println("Failed to find shader. Err: ", err)
		return nil, err
	}

	src, err := os.ReadFile(resolvedPath)
	if err != nil {
		logging.ErrLog.Println("Failed to read shader. Err: ", err)
		return nil, err
	}

	return src, nil
}

// CreateFromCombinedFile is CreateFromCombinedSource on the contents of a file
func CreateFromCombinedFile(ctx Context, shaderPath string) (*ShaderProgram, error) {

	combinedSrc, err := readShaderFile(ctx, shaderPath)
	if err != nil {
		return nil, err
	}

	return CreateFromCombinedSource(ctx, combinedSrc)
}

// CreateFromCombinedSource builds a program from one text holding both stages,
// each introduced by a '//shader:vertex' or '//shader:fragment' line.
// An error is returned only when the text can't be split into exactly those two stages.
func CreateFromCombinedSource(ctx Context, combinedSrc []byte) (*ShaderProgram, error) {

	vertSrc, fragSrc, err := splitCombinedSource(combinedSrc)
	if err != nil {
		return nil, err
	}

	return CreateFromSource(ctx, vertSrc, fragSrc), nil
}

func splitCombinedSource(combinedSrc []byte) (vertSrc, fragSrc string, err error) {

	shaderSources := bytes.Split(combinedSrc, []byte(combinedShaderMarker))
	if len(shaderSources) < 2 {
		return "", "", errors.New("failed to read combined shader. The minimum shader types to have are '//shader:vertex' and '//shader:fragment'")
	}

	hasVert, hasFrag := false, false
	for i := 0; i < len(shaderSources); i++ {

		src := shaderSources[i]

		//This can happen when the shader type is at the start of the file
		if len(bytes.TrimSpace(src)) == 0 {
			continue
		}

		switch {
		case bytes.HasPrefix(src, []byte("vertex")):
			if hasVert {
				return "", "", errors.New("combined shader has more than one '//shader:vertex' section")
			}
			hasVert = true
			vertSrc = string(src[len("vertex"):])

		case bytes.HasPrefix(src, []byte("fragment")):
			if hasFrag {
				return "", "", errors.New("combined shader has more than one '//shader:fragment' section")
			}
			hasFrag = true
			fragSrc = string(src[len("fragment"):])

		default:
			// Text before the first marker (e.g. a license comment) is allowed, but not an unknown stage
			if i == 0 {
				continue
			}
			return "", "", errors.New("unknown shader type. Must be '//shader:vertex' or '//shader:fragment'")
		}
	}

	if !hasVert {
		return "", "", errors.New("no valid vertex shader found. Please put '//shader:vertex' before your vertex shader")
	}

	if !hasFrag {
		return "", "", errors.New("no valid fragment shader found. Please put '//shader:fragment' before your fragment shader")
	}

	return vertSrc, fragSrc, nil
}
