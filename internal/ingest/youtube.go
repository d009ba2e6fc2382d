package ingest

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

// 支持的YouTube URL形态: watch?v=、youtu.be/、embed/、/v/
var youtubeIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([^&?/]+)`),
	regexp.MustCompile(`youtube\.com/embed/([^&?/]+)`),
	regexp.MustCompile(`youtube\.com/v/([^&?/]+)`),
}

// extractYouTubeVideoID 从各种YouTube URL形态中提取视频ID。
func extractYouTubeVideoID(rawURL string) string {
	for _, pattern := range youtubeIDPatterns {
		if m := pattern.FindStringSubmatch(rawURL); m != nil {
			return m[1]
		}
	}
	return ""
}

// oembedResponse 是YouTube oEmbed接口的响应子集。
type oembedResponse struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
}

// timedTextDoc 是timedtext字幕接口返回的XML结构。
type timedTextDoc struct {
	XMLName xml.Name `xml:"transcript"`
	Texts   []struct {
		Value string `xml:",chardata"`
	} `xml:"text"`
}

// fetchVideoMeta 通过oEmbed接口获取视频标题和作者。
// 失败时退回占位标题，标题缺失不应导致整次摄取失败。
func fetchVideoMeta(ctx context.Context, videoURL, videoID string) (title, author string) {
	title = fmt.Sprintf("YouTube Video %s", videoID)

	oembedURL := "https://www.youtube.com/oembed?format=json&url=" + url.QueryEscape(videoURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, oembedURL, nil)
	if err != nil {
		return title, ""
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return title, ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return title, ""
	}

	var meta oembedResponse
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return title, ""
	}
	if meta.Title != "" {
		title = meta.Title
	}
	return title, meta.AuthorName
}

// fetchTranscript 拉取视频的英文字幕并拼接为纯文本。
func fetchTranscript(ctx context.Context, videoID string) (string, error) {
	transcriptURL := "https://video.google.com/timedtext?lang=en&v=" + url.QueryEscape(videoID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, transcriptURL, nil)
	if err != nil {
		return "", fmt.Errorf("无法构造字幕请求: %w", err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("无法拉取字幕: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("拉取字幕失败: 上游返回 %s", resp.Status)
	}

	var doc timedTextDoc
	if err := xml.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return "", errors.New("No transcript available for this video")
	}

	parts := make([]string, 0, len(doc.Texts))
	for _, t := range doc.Texts {
		text := strings.TrimSpace(html.UnescapeString(t.Value))
		if text != "" {
			parts = append(parts, text)
		}
	}
	if len(parts) == 0 {
		return "", errors.New("No transcript available for this video")
	}
	return strings.Join(parts, " "), nil
}

// fetchYouTubeContent 抓取一个YouTube视频的字幕作为知识库正文。
func fetchYouTubeContent(ctx context.Context, videoURL string) (*urlContent, error) {
	videoID := extractYouTubeVideoID(videoURL)
	if videoID == "" {
		return nil, errors.New("Invalid YouTube URL")
	}

	content, err := fetchTranscript(ctx, videoID)
	if err != nil {
		return nil, err
	}
	title, author := fetchVideoMeta(ctx, videoURL, videoID)

	return &urlContent{Title: title, Content: content, Author: author}, nil
}
