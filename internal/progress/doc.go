package progress

// Package progress provides the FIFO text-line conduit between background
// work (batch downloads, manual commands) and the UI that polls it.
