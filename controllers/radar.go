package controllers

import (
	"encoding/xml"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/krishna-dhulipalla/OutreachOps/models"
	"github.com/krishna-dhulipalla/OutreachOps/utils"

	"github.com/gin-gonic/gin"
)

const (
	defaultRadarQuery = "H-1B sponsor hiring"
	maxRadarItems     = 20
)

var radarHTTPClient = &http.Client{Timeout: 10 * time.Second}

// rssFeed Google News RSS响应结构
type rssFeed struct {
	XMLName xml.Name `xml:"rss"`
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	PubDate     string `xml:"pubDate"`
	Description string `xml:"description"`
	Source      struct {
		URL  string `xml:"url,attr"`
		Name string `xml:",chardata"`
	} `xml:"source"`
}

// GetRadarNews 行业动态：代理Google News RSS搜索
func GetRadarNews(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		query = defaultRadarQuery
	}

	feedURL := "https://news.google.com/rss/search?q=" + url.QueryEscape(query) +
		"&hl=en-US&gl=US&ceid=US:en"

	resp, err := radarHTTPClient.Get(feedURL)
	if err != nil {
		utils.Logger.Error().Err(err).Str("query", query).Msg("获取新闻源失败")
		utils.ErrorResponse(c, "获取新闻源失败", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		utils.Logger.Error().Int("status", resp.StatusCode).Str("query", query).Msg("新闻源返回异常状态")
		utils.ErrorResponse(c, "获取新闻源失败", http.StatusBadGateway)
		return
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	items, err := parseNewsFeed(body)
	if err != nil {
		utils.Logger.Error().Err(err).Str("query", query).Msg("解析新闻源失败")
		utils.ErrorResponse(c, "解析新闻源失败", http.StatusBadGateway)
		return
	}

	utils.LogInfo(map[string]interface{}{
		"query": query,
		"count": len(items),
	}, "获取行业动态成功")

	c.JSON(http.StatusOK, gin.H{
		"query": query,
		"items": items,
	})
}

// parseNewsFeed 解析RSS并截取前20条
func parseNewsFeed(data []byte) ([]models.NewsItem, error) {
	var feed rssFeed
	if err := xml.Unmarshal(data, &feed); err != nil {
		return nil, err
	}

	items := make([]models.NewsItem, 0, maxRadarItems)
	for _, item := range feed.Channel.Items {
		if len(items) >= maxRadarItems {
			break
		}

		source := item.Source.Name
		if source == "" {
			source = "Unknown"
		}

		items = append(items, models.NewsItem{
			Title:     item.Title,
			Link:      item.Link,
			Source:    source,
			Published: item.PubDate,
			Snippet:   item.Description,
		})
	}

	return items, nil
}
