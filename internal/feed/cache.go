package feed

import "sync"

// Entry is the stored page set for one identity. Cursor is the pagination
// token of the last stored post; empty means no further page is known.
type Entry struct {
	Identity Identity
	Posts    []Post
	Cursor   string
}

// HasMore reports whether a next page can be requested.
func (e Entry) HasMore() bool {
	return e.Cursor != ""
}

// Cache maps identities to entries. Entries only grow by Append or are
// swapped whole by Replace.
type Cache struct {
	mu      sync.RWMutex
	entries map[Identity]*Entry
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[Identity]*Entry)}
}

// Get returns a copy of the entry for id.
func (c *Cache) Get(id Identity) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[id]
	if !ok {
		return Entry{}, false
	}
	return entry.clone(), true
}

// Replace discards any stored posts and cursor for id.
func (c *Cache) Replace(id Identity, posts []Post) Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry := &Entry{
		Identity: id,
		Posts:    clonePosts(posts),
		Cursor:   tailCursor(posts),
	}
	if entry.Posts == nil {
		entry.Posts = []Post{}
	}
	c.entries[id] = entry
	return entry.clone()
}

// Append concatenates posts onto the entry for id and takes the cursor from
// the tail of posts. An empty page clears the cursor.
func (c *Cache) Append(id Identity, posts []Post) Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[id]
	if !ok {
		entry = &Entry{Identity: id, Posts: []Post{}}
		c.entries[id] = entry
	}
	entry.Posts = append(entry.Posts, posts...)
	entry.Cursor = tailCursor(posts)
	return entry.clone()
}

// Len reports how many identities are stored.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (e *Entry) clone() Entry {
	return Entry{Identity: e.Identity, Posts: clonePosts(e.Posts), Cursor: e.Cursor}
}

func tailCursor(posts []Post) string {
	if len(posts) == 0 {
		return ""
	}
	return posts[len(posts)-1].PaginationToken
}
