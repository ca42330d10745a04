package rod

import (
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the number of pages a browser renders before it is
// replaced by a fresh process.
const DefaultMaxPages = 75

// browser owns a headless Chrome process and replaces it after maxPages
// pages, since Chrome's memory use grows with every page it renders.
type browser struct {
	mu       sync.Mutex
	rod      *rod.Browser
	launcher *launcher.Launcher
	pages    int
	maxPages int
}

func launchBrowser(maxPages int) (*browser, error) {
	b := &browser{maxPages: maxPages}
	if err := b.launch(); err != nil {
		return nil, err
	}
	return b, nil
}

// acquire returns the browser to render the next page on, recycling first
// if the current one has reached its page budget.
func (b *browser) acquire() (*rod.Browser, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.rod == nil {
		return nil, fmt.Errorf("browser closed")
	}

	if b.maxPages > 0 && b.pages >= b.maxPages {
		b.recycle()
	}
	b.pages++

	return b.rod, nil
}

func (b *browser) launch() error {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	r := rod.New().ControlURL(u)
	if err := r.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	b.rod = r
	b.launcher = l
	return nil
}

// recycle swaps in a new browser process. The old one is kept if the new
// launch fails. Must be called with mu held.
func (b *browser) recycle() {
	oldRod, oldLauncher := b.rod, b.launcher
	if err := b.launch(); err != nil {
		b.rod, b.launcher = oldRod, oldLauncher
		return
	}

	_ = oldRod.Close()
	oldLauncher.Kill()
	b.pages = 0
}

// close shuts down the browser process. Safe to call more than once.
func (b *browser) close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var err error
	if b.rod != nil {
		err = b.rod.Close()
		b.rod = nil
	}
	if b.launcher != nil {
		b.launcher.Kill()
		b.launcher = nil
	}
	return err
}
