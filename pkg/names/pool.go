package names

import (
	"context"
	"runtime"
	"sync"

	"github.com/gnames/gnparser"
	"golang.org/x/sync/errgroup"
)

// Pool is a Parser backed by several gnparser instances. It is safe for
// concurrent use and remembers results of ParseAll.
type Pool struct {
	ch   chan gnparser.GNparser
	size int

	mu    sync.RWMutex
	cache map[string]Name
}

// NewPool creates a pool of jobsNum parsers. If jobsNum is 0, it
// defaults to runtime.NumCPU().
func NewPool(jobsNum int) *Pool {
	if jobsNum <= 0 {
		jobsNum = runtime.NumCPU()
	}
	return &Pool{
		ch:    gnparser.NewPool(parserConfig(), jobsNum),
		size:  jobsNum,
		cache: make(map[string]Name),
	}
}

// Parse implements Parser. Names seen by ParseAll come from cache,
// others are parsed by the first free parser.
func (p *Pool) Parse(name string) Name {
	p.mu.RLock()
	res, ok := p.cache[name]
	p.mu.RUnlock()
	if ok {
		return res
	}

	plain := Plain(name)
	res = Name{Verbatim: plain}
	// closed pool keeps answering from cache only
	if plain == "" || p.ch == nil {
		return res
	}

	gnp := <-p.ch
	prs := gnp.ParseName(plain)
	p.ch <- gnp

	return convert(res, prs)
}

// ParseAll parses names concurrently and caches the results.
func (p *Pool) ParseAll(ctx context.Context, names []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.size)

	for _, name := range names {
		p.mu.RLock()
		_, ok := p.cache[name]
		p.mu.RUnlock()
		if ok {
			continue
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := p.Parse(name)
			p.mu.Lock()
			p.cache[name] = res
			p.mu.Unlock()
			return nil
		})
	}
	return g.Wait()
}

// Close releases parsers. After Close, Parse returns cached results and
// unparsed names for everything else.
func (p *Pool) Close() {
	if p.ch == nil {
		return
	}
	close(p.ch)
	for range p.ch {
	}
	p.ch = nil
}
