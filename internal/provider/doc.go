package provider

// Package provider defines the boundary between the GUI and the external
// download toolkit: module search, the global download operation, and a
// Registry that routes each module name to the backend that owns it.
// Concrete backends live in the youtube and orpheus subpackages.
