package ingest

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 来源类型
const (
	SourceTypeYouTube = "youtube"
	SourceTypeArticle = "article"
	SourceTypeSeed    = "seed_markdown"
)

// 摄取状态机: processing -> completed / failed
const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Source 定义了知识库来源的数据库模型。
// 一个来源对应一篇文章、一个视频或一份内置教程文档。
type Source struct {
	ID        string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Type   string `gorm:"not null;index" json:"type"`
	URL    string `gorm:"index" json:"url"`
	Title  string `gorm:"not null" json:"title"`
	Author string `json:"author"`

	// Tags 以JSON数组字符串存储，例如 ["deck-building","beginner"]
	Tags string `json:"tags"`

	Status string `gorm:"not null;default:processing" json:"status"`
	// Error 记录摄取失败的原因，成功时为空
	Error string `json:"error,omitempty"`

	Chunks []SourceChunk `gorm:"foreignKey:SourceID;constraint:OnDelete:CASCADE" json:"-"`
}

// SourceChunk 是来源正文切分后的一个分块，连同其嵌入向量一起存储。
// Embedding 以JSON数组字符串存储，检索时反序列化为[]float32。
type SourceChunk struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	CreatedAt time.Time

	SourceID   string `gorm:"not null;index"`
	ChunkIndex int    `gorm:"not null"`
	Content    string `gorm:"not null"`
	Embedding  string `gorm:"not null"`
}

// Tutorial 是内置教程文档，由种子Markdown摄取时一并写入。
type Tutorial struct {
	ID        string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Title    string `gorm:"not null" json:"title"`
	Category string `gorm:"index" json:"category"`
	Content  string `gorm:"not null" json:"content"`
	SourceID string `gorm:"index" json:"sourceId"`
}

// BeforeCreate 在插入前分配UUID主键。
func (s *Source) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (c *SourceChunk) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (t *Tutorial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
