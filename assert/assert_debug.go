//go:build nmage_debug

package assert

const isDebugBuild = true
