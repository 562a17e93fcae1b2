// Package orpheus bridges to an OrpheusDL checkout through its interpreter.
// Each queued item becomes one "orpheus.py download <module> <type> <id>"
// invocation whose output is streamed back line by line. Searches run a
// short inline script that loads the toolkit and prints results as JSON.
package orpheus
