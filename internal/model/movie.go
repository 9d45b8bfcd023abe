package model

import (
	"time"

	"gorm.io/gorm"
)

// Movie 影片模型
// TMDBID/OriginalTitle 由TMDB同步写入，手工录入的影片可以为空

type Movie struct {
	ID            uint           `gorm:"primaryKey"`
	Title         string         `gorm:"type:varchar(255);not null;index;comment:片名"`
	Genre         string         `gorm:"type:varchar(64);not null;comment:类型"`
	Rating        string         `gorm:"type:varchar(16);comment:分级(PG-13/R等)"`
	Description   string         `gorm:"type:text;comment:简介"`
	PosterURL     string         `gorm:"type:varchar(255);comment:海报URL"`
	ReleaseYear   *int           `gorm:"comment:上映年份"`
	IMDBRating    string         `gorm:"type:varchar(16);comment:IMDB评分(如8.5/10)"`
	TMDBID        *int64         `gorm:"uniqueIndex;comment:TMDB影片ID"`
	OriginalTitle string         `gorm:"type:varchar(255);comment:原始片名"`
	CreatedAt     time.Time      `gorm:"comment:创建时间"`
	UpdatedAt     time.Time      `gorm:"comment:更新时间"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Movie) TableName() string { return "movie" }

// StreamingService 流媒体平台（Netflix、Hulu等）

type StreamingService struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"type:varchar(64);not null;uniqueIndex;comment:平台名称"`
	LogoURL string `gorm:"type:varchar(255);comment:LOGO URL"`
}

func (StreamingService) TableName() string { return "streaming_service" }

// MovieStreamingService 影片与流媒体平台的关联

type MovieStreamingService struct {
	ID                 uint `gorm:"primaryKey"`
	MovieID            uint `gorm:"not null;uniqueIndex:idx_movie_service,priority:1;comment:影片ID"`
	StreamingServiceID uint `gorm:"not null;uniqueIndex:idx_movie_service,priority:2;comment:平台ID"`
}

func (MovieStreamingService) TableName() string { return "movie_streaming_service" }
