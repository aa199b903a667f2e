package shaders_test

import (
	"io"
	"os"
	"testing"

	"github.com/bloeys/nshader/driver/drvmock"
	"github.com/bloeys/nshader/logging"
	"github.com/bloeys/nshader/renderctx"
)

func TestMain(m *testing.M) {
	logging.SetOutput(io.Discard)
	os.Exit(m.Run())
}

const (
	basicVertSrc = `#version 120
attribute vec3 position;
attribute float size;
uniform mat4 modelViewMat;
uniform mat4 projMat;

void main() {
	gl_PointSize = size;
	gl_Position = projMat * modelViewMat * vec4(position, 1.0);
}
`

	basicFragSrc = `#version 120
void main() {
	gl_FragColor = vec4(1.0);
}
`
)

func newTestCtx() (*renderctx.Context, *drvmock.Driver) {
	drv := drvmock.New()
	return renderctx.NewContext(drv), drv
}

func newMockDriver() *drvmock.Driver {
	return drvmock.New()
}
