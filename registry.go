package localedata

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// EnvDataPath is the environment variable consulted for a blob path when no
// explicit path was configured.
const EnvDataPath = "LOCALEDATA_PATH"

// Registry owns one lazily built, cached provider shared across a process.
// The zero value is ready to use. Configuration precedence is explicit path
// over environment over none; configuring never triggers a build, and
// configuration changes never implicitly invalidate an already cached
// provider — Reset does that explicitly.
type Registry struct {
	mu         sync.Mutex
	group      singleflight.Group
	dataPath   string
	priority   Priority
	noFallback bool
	cached     Provider
	builds     atomic.Int64
}

// RegistryOption mutates Registry configuration.
type RegistryOption func(*Registry) error

// WithDataPath sets the explicit blob path, the highest precedence
// configuration source.
func WithDataPath(path string) RegistryOption {
	return func(r *Registry) error {
		if path == "" {
			return fmt.Errorf("localedata: data path cannot be empty")
		}
		r.dataPath = path
		return nil
	}
}

// WithFallbackPriority selects the fallback priority used when wrapping the
// built provider.
func WithFallbackPriority(priority Priority) RegistryOption {
	return func(r *Registry) error {
		r.priority = priority
		return nil
	}
}

// WithFallbackDisabled makes the registry hand out the bare exact-match
// provider instead of a fallback wrapped one.
func WithFallbackDisabled() RegistryOption {
	return func(r *Registry) error {
		r.noFallback = true
		return nil
	}
}

// NewRegistry builds an independent registry. Most callers use the process
// wide Default registry and inject it where needed.
func NewRegistry(opts ...RegistryOption) (*Registry, error) {
	r := &Registry{}
	if err := r.Configure(opts...); err != nil {
		return nil, err
	}
	return r, nil
}

// Configure applies options. It never builds a provider and never touches
// an already cached one.
func (r *Registry) Configure(opts ...RegistryOption) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(r); err != nil {
			return err
		}
	}
	return nil
}

// ResolvePath returns the blob path the next build would use: the explicit
// path if set, else the EnvDataPath environment variable, else none.
func (r *Registry) ResolvePath() (string, bool) {
	r.mu.Lock()
	explicit := r.dataPath
	r.mu.Unlock()

	if explicit != "" {
		return explicit, true
	}
	if env := os.Getenv(EnvDataPath); env != "" {
		return env, true
	}
	return "", false
}

// Get returns the cached provider, building it first if necessary. With no
// resolvable path it returns (nil, nil): absence of configuration is not an
// error at this layer — callers that require a provider use Require.
//
// Concurrent first access is collapsed into a single build: the blob is
// read from disk exactly once and every caller observes the identical
// cached instance.
func (r *Registry) Get() (Provider, error) {
	if p := r.cachedProvider(); p != nil {
		return p, nil
	}

	path, ok := r.ResolvePath()
	if !ok {
		return nil, nil
	}

	v, err, _ := r.group.Do(path, func() (any, error) {
		if p := r.cachedProvider(); p != nil {
			return p, nil
		}

		provider, err := r.build(path)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.cached = provider
		r.mu.Unlock()
		return provider, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Provider), nil
}

// Require is Get for callers that cannot proceed without a provider: no
// resolvable configuration fails with ErrNotConfigured.
func (r *Registry) Require() (Provider, error) {
	p, err := r.Get()
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotConfigured
	}
	return p, nil
}

// Reset discards the cached provider, returning the registry to its
// uncached state. Configuration is untouched; the next Get rebuilds.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.cached = nil
	r.mu.Unlock()
}

func (r *Registry) cachedProvider() Provider {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cached
}

func (r *Registry) build(path string) (Provider, error) {
	r.mu.Lock()
	priority := r.priority
	noFallback := r.noFallback
	r.mu.Unlock()

	provider, err := NewProviderFromBlob(path)
	if err != nil {
		return nil, err
	}
	r.builds.Add(1)

	if noFallback {
		Logger.Debug().Str("path", path).Msg("built exact-match provider")
		return provider, nil
	}

	wrapped, err := Wrap(provider, priority)
	if err != nil {
		return nil, err
	}
	Logger.Debug().
		Str("path", path).
		Stringer("priority", priority).
		Msg("built fallback provider")
	return wrapped, nil
}

var defaultRegistry Registry

// Default returns the process wide registry used for ergonomic defaulting.
// Prefer passing a *Registry explicitly; keep the singleton at the process
// boundary.
func Default() *Registry {
	return &defaultRegistry
}
