package edge

import (
	"errors"
	"sync"
)

// Accelerator is an optional Sobel provider that replaces the software kernel.
//
// An accelerator is consulted only when it is registered and both images
// report Accelerated(). Sobel must write the same interior bytes as the
// software path. Returning ErrFallbackToSoftware hands the call back to the
// software kernel; other errors are returned to the caller unchanged.
type Accelerator interface {
	// Name returns a short identifier used in logs (e.g. "parallel").
	Name() string

	// Init acquires resources. Called once by RegisterAccelerator.
	Init() error

	// Close releases resources. Called when the accelerator is replaced or
	// unregistered.
	Close()

	// Sobel computes the Sobel response of src into dst. Both images have
	// already passed Validate.
	Sobel(src, dst Buffer) error
}

var (
	accelMu sync.RWMutex
	accel   Accelerator
)

// RegisterAccelerator installs a as the process-wide accelerator.
//
// a.Init is called first; if it fails nothing changes and the error is
// returned. A previously registered accelerator is closed after the swap.
func RegisterAccelerator(a Accelerator) error {
	if a == nil {
		return errors.New("edge: accelerator must not be nil")
	}
	if err := a.Init(); err != nil {
		return err
	}
	accelMu.Lock()
	old := accel
	accel = a
	accelMu.Unlock()
	if old != nil {
		old.Close()
	}
	Logger().Info("edge: accelerator registered", "accelerator", a.Name())
	return nil
}

// UnregisterAccelerator removes and closes the registered accelerator, if any.
func UnregisterAccelerator() {
	accelMu.Lock()
	old := accel
	accel = nil
	accelMu.Unlock()
	if old != nil {
		old.Close()
	}
}

// CurrentAccelerator returns the registered accelerator, or nil.
func CurrentAccelerator() Accelerator {
	accelMu.RLock()
	a := accel
	accelMu.RUnlock()
	return a
}
