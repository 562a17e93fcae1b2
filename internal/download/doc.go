package download

// Package download implements the batch worker: a single-flight background
// run that walks a snapshot of the queue in order, calls the toolkit's
// download operation per item, and reports progress as text lines.
