package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	megabyte       = 1024 * 1024
	globalCacheKey = "catalog::global"

	// freecache does not go below this size
	minCacheSize = 512 * 1024
	// freecache splits its memory into 256 segments and takes at most
	// a quarter of one segment per entry, minus the entry header
	entryHeaderSize = 24
)

// GlobalCache keeps the read-mostly global catalog in memory.
// The catalog is stored in chunks, each under the freecache entry limit,
// and the index key holds the number of chunks.
type GlobalCache struct {
	cache         *freecache.Cache
	maxEntrySize  int
	expireSeconds int
}

func NewGlobalCache(sizeMB, expireSeconds int) *GlobalCache {
	size := max(sizeMB*megabyte, minCacheSize)
	return &GlobalCache{
		cache:         freecache.NewCache(size),
		maxEntrySize:  size/1024 - entryHeaderSize,
		expireSeconds: expireSeconds,
	}
}

func chunkKey(i int) []byte {
	return []byte(globalCacheKey + "::" + strconv.Itoa(i))
}

func (c *GlobalCache) Get() ([]Exercise, bool) {
	countBytes, err := c.cache.Get([]byte(globalCacheKey))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Errorf("get global catalog from cache: %s", err)
		}
		return nil, false
	}

	count, err := strconv.Atoi(string(countBytes))
	if err != nil {
		log.Errorf("global catalog cache, invalid chunk count [%s]: %s", countBytes, err)
		return nil, false
	}

	exercises := make([]Exercise, 0)
	for i := 0; i < count; i++ {
		chunkBytes, err := c.cache.Get(chunkKey(i))
		if err != nil {
			// evicted, the whole catalog is read again
			log.Debugf("global catalog cache, chunk %d/%d: %s", i, count, err)
			return nil, false
		}

		var chunk []Exercise
		if err := json.Unmarshal(chunkBytes, &chunk); err != nil {
			log.Errorf("unmarshal global catalog chunk from cache: %s", err)
			return nil, false
		}
		exercises = append(exercises, chunk...)
	}

	return exercises, true
}

func (c *GlobalCache) Set(exercises []Exercise) error {
	chunks, err := c.chunks(exercises)
	if err != nil {
		return err
	}

	for i, chunk := range chunks {
		if err := c.cache.Set(chunkKey(i), chunk, c.expireSeconds); err != nil {
			return fmt.Errorf("set global catalog chunk %d: %w", i, err)
		}
	}

	// index goes last, so a reader never sees it before its chunks
	if err := c.cache.Set([]byte(globalCacheKey), []byte(strconv.Itoa(len(chunks))), c.expireSeconds); err != nil {
		return fmt.Errorf("set global catalog cache: %w", err)
	}
	return nil
}

// chunks packs the exercises into JSON arrays that fit a single cache entry.
func (c *GlobalCache) chunks(exercises []Exercise) ([][]byte, error) {
	limit := c.maxEntrySize - len(chunkKey(len(exercises)))

	var chunks [][]byte
	chunk := []byte{'['}
	for _, e := range exercises {
		exerciseBytes, err := json.Marshal(e)
		if err != nil {
			return nil, fmt.Errorf("marshal exercise %s: %w", e.ID, err)
		}
		if len(exerciseBytes)+2 > limit {
			return nil, fmt.Errorf("exercise %s: %w", e.ID, freecache.ErrLargeEntry)
		}

		// separator and closing bracket
		if len(chunk)+len(exerciseBytes)+2 > limit {
			chunks = append(chunks, append(chunk, ']'))
			chunk = []byte{'['}
		}
		if len(chunk) > 1 {
			chunk = append(chunk, ',')
		}
		chunk = append(chunk, exerciseBytes...)
	}

	return append(chunks, append(chunk, ']')), nil
}

func (c *GlobalCache) Invalidate() {
	c.cache.Del([]byte(globalCacheKey))
}
