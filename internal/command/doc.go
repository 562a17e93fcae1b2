// Package command runs ad-hoc external commands and streams their combined
// output into a progress channel.
package command
