//go:build !cgo

package hal

func (in *hostInput) poll() {
	// No pointer support without the window backend.
}
