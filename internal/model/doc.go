package model

// Package model defines domain data structures used across the app: search
// results, queue entries, batch runs, and the media identification passed to
// the download toolkit. Structures are plain values so the UI can copy them
// freely between goroutines.
