// Package platform contains OS integration glue: filesystem helpers,
// interpreter discovery and opening folders in the system file manager.
package platform
