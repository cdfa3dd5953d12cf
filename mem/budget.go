package mem

// Budget accounts for backing-store bytes.
//
// AcquireMemory must not block: it either reserves bytes and returns nil or
// refuses with an error. resource.Controller is the stock implementation.
type Budget interface {
	AcquireMemory(bytes int64) error
	ReleaseMemory(bytes int64)
}
