package renderctx

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/nshader/assert"
)

// MatrixStack is a stack of transforms that always holds at least one matrix.
// The top starts as identity.
type MatrixStack struct {
	mats []gglm.Mat4
}

func (ms *MatrixStack) ensureInit() {
	if len(ms.mats) == 0 {
		ms.mats = append(ms.mats, gglm.NewMat4Diag(1))
	}
}

func (ms *MatrixStack) Top() *gglm.Mat4 {
	ms.ensureInit()
	return &ms.mats[len(ms.mats)-1]
}

// Push duplicates the current top
func (ms *MatrixStack) Push() {
	ms.ensureInit()
	ms.mats = append(ms.mats, ms.mats[len(ms.mats)-1])
}

func (ms *MatrixStack) Pop() {

	ms.ensureInit()
	assert.T(len(ms.mats) > 1, "MatrixStack.Pop called more times than MatrixStack.Push")
	if len(ms.mats) == 1 {
		return
	}

	ms.mats = ms.mats[:len(ms.mats)-1]
}

func (ms *MatrixStack) Load(m *gglm.Mat4) {
	*ms.Top() = *m
}

func (ms *MatrixStack) LoadIdentity() {
	*ms.Top() = gglm.NewMat4Diag(1)
}

// Mul post-multiplies the top by m (top = top * m)
func (ms *MatrixStack) Mul(m *gglm.Mat4) {
	ms.Top().Mul(m)
}

func (ms *MatrixStack) Depth() int {
	ms.ensureInit()
	return len(ms.mats)
}
