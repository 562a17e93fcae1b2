package queue

// Package queue holds the de-duplicated, ordered list of pending downloads
// the user built from search results. It never talks to the toolkit; the
// batch worker receives a snapshot via Items.
