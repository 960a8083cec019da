package fetch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/abelbrown/tagsift/internal/store"
	"github.com/mmcdole/gofeed"
)

// RSS reads items from an RSS or Atom feed. Entry titles become item names
// and entry categories, joined with the tag separator, become descriptions.
// Entries without categories fall back to the plain text of their
// description.
type RSS struct {
	fetcher *Fetcher
	name    string
	url     string
}

// NewRSS creates an RSS source named name reading from url (or a local file).
func NewRSS(f *Fetcher, name, url string) *RSS {
	return &RSS{fetcher: f, name: name, url: url}
}

// Name returns the source name stored on every item.
func (r *RSS) Name() string { return r.name }

// Items fetches and parses the feed.
func (r *RSS) Items(ctx context.Context) ([]store.Item, error) {
	body, err := r.fetcher.Open(ctx, r.url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	feed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	now := time.Now()
	items := make([]store.Item, 0, len(feed.Items))
	for i, entry := range feed.Items {
		items = append(items, r.convert(entry, i, now))
	}
	return items, nil
}

func (r *RSS) convert(entry *gofeed.Item, pos int, fetched time.Time) store.Item {
	key := entry.GUID
	if key == "" {
		key = entry.Link
	}
	if key == "" {
		key = entry.Title
	}

	desc := strings.Join(entry.Categories, ", ")
	if desc == "" {
		desc = plainText(entry.Description)
	}

	return store.Item{
		ID:          itemID(r.name, key),
		SourceName:  r.name,
		Name:        strings.TrimSpace(entry.Title),
		Description: desc,
		URL:         entry.Link,
		Position:    pos,
		Fetched:     fetched,
	}
}

// plainText strips markup from a feed description.
func plainText(s string) string {
	if !strings.Contains(s, "<") {
		return strings.TrimSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
