// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the search, queue, batch and command services
// and renders search results, the queue, logs and settings. All UI strings
// are localized via Localization.
package ui
