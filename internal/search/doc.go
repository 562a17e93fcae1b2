// Package search runs module searches and formats results for display.
package search
