package sitecms

import "embed"

// EmbeddedAssets holds the stylesheet shared by public and admin pages.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
