package controller

import (
	"context"
	"log"
)

// EnableAutoRefresh turns reloading on folder changes on or off
func (c *Controller) EnableAutoRefresh(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.autoWatch = enabled
	c.restartWatchLocked()
}

// AutoRefresh reports whether folder changes trigger a reload
func (c *Controller) AutoRefresh() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.autoWatch
}

// restartWatchLocked replaces the watcher with one for the current folder
func (c *Controller) restartWatchLocked() {
	c.stopWatchLocked()
	if !c.autoWatch || c.deps.Watcher == nil || c.folder == "" {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	folder := c.folder

	go func() {
		err := c.deps.Watcher.Watch(ctx, folder, c.deps.WatchDebounce, func() {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[controller] changes detected in %s", folder)
			c.Reload()
		})
		if err != nil {
			log.Printf("[controller] auto-refresh disabled for %s: %v", folder, err)
		}
	}()
}

func (c *Controller) stopWatchLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}
