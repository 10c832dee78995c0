package content

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Source hands out the current catalog and lets a watcher swap it.
type Source struct {
	mu      sync.RWMutex
	catalog *Catalog
	dir     string
}

// NewSource loads the catalog from dir (the built-in one when dir is empty).
func NewSource(dir string) (*Source, error) {
	c, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}
	return &Source{catalog: c, dir: dir}, nil
}

// Static wraps an already built catalog.
func Static(c *Catalog) *Source {
	return &Source{catalog: c}
}

// Catalog returns the current catalog. Callers must not mutate it.
func (s *Source) Catalog() *Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// Reload rebuilds the catalog from disk. On failure the previous catalog stays.
func (s *Source) Reload() error {
	c, err := LoadDir(s.dir)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.catalog = c
	s.mu.Unlock()
	return nil
}

const reloadDebounce = 500 * time.Millisecond

// Watch reloads the catalog whenever files under the content directory
// change, until ctx is cancelled. It returns immediately when the source has
// no directory.
func (s *Source) Watch(ctx context.Context) error {
	if s.dir == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating content watcher: %w", err)
	}

	err = filepath.WalkDir(s.dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			log.Printf("content: walking %s: %v", path, err)
			return nil
		}
		if d.IsDir() {
			if err := watcher.Add(path); err != nil {
				log.Printf("content: watching %s: %v", path, err)
			}
		}
		return nil
	})
	if err != nil {
		watcher.Close()
		return fmt.Errorf("walking content dir: %w", err)
	}

	go s.watchLoop(ctx, watcher)
	return nil
}

func (s *Source) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := watcher.Add(event.Name); err != nil {
					log.Printf("content: watching %s: %v", event.Name, err)
				}
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(reloadDebounce, func() {
				if err := s.Reload(); err != nil {
					log.Printf("content: reload failed, keeping previous catalog: %v", err)
					return
				}
				log.Printf("content: catalog reloaded from %s", s.dir)
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("content: watcher error: %v", err)
		}
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
