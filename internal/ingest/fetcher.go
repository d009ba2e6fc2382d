package ingest

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// urlContent 是从外部URL抓取到的结构化正文。
type urlContent struct {
	Title   string
	Content string
	Author  string
}

var httpClient = &http.Client{Timeout: 30 * time.Second}

var whitespaceRe = regexp.MustCompile(`\s+`)

// fetchArticleContent 抓取一篇文章并抽取正文。
// 正文优先取<article>，其次<main>，最后退回<body>全文。
func fetchArticleContent(ctx context.Context, url string) (*urlContent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("无法构造请求: %w", err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("无法抓取文章: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("抓取文章失败: 上游返回 %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("无法解析文章HTML: %w", err)
	}

	// 去掉不属于正文的结构性元素
	doc.Find("script, style, nav, header, footer").Remove()

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	if title == "" {
		title = "Untitled"
	}

	var content string
	if article := doc.Find("article"); article.Length() > 0 {
		content = article.Text()
	} else if main := doc.Find("main"); main.Length() > 0 {
		content = main.Text()
	} else {
		content = doc.Find("body").Text()
	}
	content = strings.TrimSpace(whitespaceRe.ReplaceAllString(content, " "))

	author, _ := doc.Find(`meta[name="author"]`).Attr("content")
	if author == "" {
		author = strings.TrimSpace(doc.Find(".author").First().Text())
	}

	return &urlContent{Title: title, Content: content, Author: author}, nil
}

// fetchURLContent 根据URL类型选择抓取方式。
func fetchURLContent(ctx context.Context, url string) (*urlContent, error) {
	if strings.Contains(url, "youtube.com") || strings.Contains(url, "youtu.be") {
		return fetchYouTubeContent(ctx, url)
	}
	return fetchArticleContent(ctx, url)
}
