package controllers

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>"H-1B sponsor hiring" - Google News</title>
    <item>
      <title>Tech firms expand H-1B sponsorship</title>
      <link>https://news.example.com/article-1</link>
      <pubDate>Mon, 02 Jun 2025 14:00:00 GMT</pubDate>
      <description>Several firms announced new sponsorship programs.</description>
      <source url="https://example.com">Example News</source>
    </item>
    <item>
      <title>Visa policy update</title>
      <link>https://news.example.com/article-2</link>
      <pubDate>Tue, 03 Jun 2025 09:00:00 GMT</pubDate>
      <description>Policy changes announced.</description>
    </item>
  </channel>
</rss>`

func TestParseNewsFeed(t *testing.T) {
	items, err := parseNewsFeed([]byte(sampleFeed))
	assert.NoError(t, err)
	assert.Len(t, items, 2)

	assert.Equal(t, "Tech firms expand H-1B sponsorship", items[0].Title)
	assert.Equal(t, "https://news.example.com/article-1", items[0].Link)
	assert.Equal(t, "Example News", items[0].Source)
	assert.Equal(t, "Mon, 02 Jun 2025 14:00:00 GMT", items[0].Published)
	assert.Equal(t, "Several firms announced new sponsorship programs.", items[0].Snippet)

	// 缺失source时回退为Unknown
	assert.Equal(t, "Unknown", items[1].Source)
}

func TestParseNewsFeedLimit(t *testing.T) {
	feed := `<?xml version="1.0" encoding="UTF-8"?><rss version="2.0"><channel>`
	for i := 0; i < 30; i++ {
		feed += fmt.Sprintf(`<item><title>item %d</title><link>https://example.com/%d</link></item>`, i, i)
	}
	feed += `</channel></rss>`

	items, err := parseNewsFeed([]byte(feed))
	assert.NoError(t, err)
	assert.Len(t, items, maxRadarItems)
}

func TestParseNewsFeedInvalid(t *testing.T) {
	_, err := parseNewsFeed([]byte("not xml at all {"))
	assert.Error(t, err)
}
