package cli

import (
	"crypto/sha256"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
	"github.com/custodia-labs/doc-doctor/internal/core/ports/driving"
)

// defaultCacheSize bounds the number of analyses kept by scan and watch.
const defaultCacheSize = 512

// analysisCache memoises analyses by content hash. Editors often emit
// several writes with identical content; those are answered from the cache.
type analysisCache struct {
	sb    driving.Switchboard
	cache *lru.Cache[[sha256.Size]byte, *domain.Analysis]
}

func newAnalysisCache(sb driving.Switchboard, size int) (*analysisCache, error) {
	cache, err := lru.New[[sha256.Size]byte, *domain.Analysis](size)
	if err != nil {
		return nil, fmt.Errorf("creating analysis cache: %w", err)
	}
	return &analysisCache{sb: sb, cache: cache}, nil
}

// analyze returns the analysis of text and whether it came from the cache.
// Failed analyses are not cached.
func (c *analysisCache) analyze(text string) (*domain.Analysis, bool, error) {
	key := contentKey([]byte(text))
	if a, ok := c.cache.Get(key); ok {
		return a, true, nil
	}
	a, err := c.sb.AnalyzeDocument(text)
	if err != nil {
		return nil, false, err
	}
	c.cache.Add(key, a)
	return a, false, nil
}

func contentKey(data []byte) [sha256.Size]byte {
	return sha256.Sum256(data)
}
