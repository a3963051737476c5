// Package rodfetch provides a browser.Backend that renders pages in headless
// Chromium over the DevTools protocol.
package rodfetch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"

	"wcagrep/pkg/browser"
	"wcagrep/pkg/logger"
	"wcagrep/pkg/serrors"
)

// Name is the backend name reported to the pool.
const Name = "headless"

// Options configures a Fetcher.
type Options struct {
	// ControlURL of an already running browser. When empty a local browser is
	// launched on first use.
	ControlURL string
	// Bin overrides the browser binary used by the launcher.
	Bin       string
	UserAgent string
	// Timeout bounds navigation and load of a single page.
	Timeout time.Duration
}

// Fetcher renders every page in its own incognito context so cookies and
// storage never leak between prospects. It connects lazily and is safe for
// concurrent use.
type Fetcher struct {
	opts Options

	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
}

var _ browser.Backend = (*Fetcher)(nil)

func New(opts Options) *Fetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = 45 * time.Second
	}

	return &Fetcher{opts: opts}
}

func (f *Fetcher) Name() string { return Name }

func (f *Fetcher) connect(ctx context.Context) (*rod.Browser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.browser != nil {
		return f.browser, nil
	}

	controlURL := f.opts.ControlURL
	if controlURL == "" {
		l := launcher.New().Headless(true)
		if f.opts.Bin != "" {
			l = l.Bin(f.opts.Bin)
		}
		u, err := l.Launch()
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not launch browser")
		}
		f.launcher = l
		controlURL = u
		logger.Info(ctx, "launched headless browser", zap.String("controlURL", controlURL))
	}

	// The browser outlives the request that happened to connect it.
	b := rod.New().ControlURL(controlURL).Context(context.WithoutCancel(ctx))
	if err := b.Connect(); err != nil {
		f.killLauncher()

		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not connect to browser")
	}
	f.browser = b

	return b, nil
}

// Fetch renders url and returns the resulting DOM serialized as HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*browser.Page, error) {
	b, err := f.connect(ctx)
	if err != nil {
		return nil, err
	}

	incognito, err := b.Incognito()
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not create incognito context")
	}
	defer func() {
		if err := incognito.Close(); err != nil {
			logger.Warn(ctx, "could not dispose incognito context", zap.Error(err))
		}
	}()

	start := time.Now()
	page, err := incognito.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not create page")
	}
	page = page.Context(ctx).Timeout(f.opts.Timeout)

	if f.opts.UserAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.opts.UserAgent}); err != nil {
			return nil, f.mapError(ctx, err, "could not set user agent")
		}
	}
	if err := page.Navigate(url); err != nil {
		return nil, f.mapError(ctx, err, "could not navigate")
	}
	if err := page.WaitLoad(); err != nil {
		return nil, f.mapError(ctx, err, "page did not load")
	}

	src, err := page.HTML()
	if err != nil {
		return nil, f.mapError(ctx, err, "could not read page source")
	}
	out := &browser.Page{
		RequestedURL: url,
		FinalURL:     url,
		HTML:         src,
		LoadTime:     time.Since(start),
	}
	if info, err := page.Info(); err == nil {
		out.FinalURL = info.URL
		out.Title = info.Title
	}

	return out, nil
}

func (f *Fetcher) mapError(ctx context.Context, err error, msg string) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return serrors.Wrap(serrors.ErrTimeout, err, "%s", msg)
	}

	return serrors.Wrap(serrors.ErrUnavailable, err, "%s", msg)
}

// Close disconnects from the browser and stops it when it was launched by us.
func (f *Fetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var err error
	if f.browser != nil {
		if cerr := f.browser.Close(); cerr != nil {
			err = fmt.Errorf("could not close browser: %w", cerr)
		}
		f.browser = nil
	}
	f.killLauncher()

	return err
}

func (f *Fetcher) killLauncher() {
	if f.launcher != nil {
		f.launcher.Kill()
		f.launcher.Cleanup()
		f.launcher = nil
	}
}
