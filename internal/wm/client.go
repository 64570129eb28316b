// Package wm holds the pure window-management state: client metadata,
// workspaces, and the workspace ring. It performs no X calls; the
// event loop feeds it window ids and reads back ordering and focus
// decisions.
package wm

import "github.com/BurntSushi/xgb/xproto"

// Client is the metadata kept for a managed window: state flags and
// the information used when deciding which windows to show and how
// they are tiled.
type Client struct {
	ID          xproto.Window
	Class       string
	BorderWidth int
	Floating    bool
	Fullscreen  bool
}

// NewClient creates a Client for a newly managed window.
func NewClient(id xproto.Window, class string, borderWidth int, floating bool) *Client {
	return &Client{
		ID:          id,
		Class:       class,
		BorderWidth: borderWidth,
		Floating:    floating,
	}
}
