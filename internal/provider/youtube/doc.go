package youtube

// Package youtube is the built-in "youtube" module. Search and track downloads
// go through yt-dlp (github.com/lrstanley/go-ytdlp); playlist entries are
// listed with github.com/ytget/ytdlp/v2 and downloaded one video at a time.
