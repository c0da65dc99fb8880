package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"newshub-backend/models"
	"newshub-backend/services"

	"github.com/gin-gonic/gin"
)

// ArticleStore is the storage surface the news handlers need.
type ArticleStore interface {
	List(ctx context.Context) ([]models.Article, error)
	Insert(ctx context.Context, article models.Article) error
	Ping(ctx context.Context) error
}

// SyncRunner triggers one run of the sync routine.
type SyncRunner interface {
	Sync(ctx context.Context) (int, error)
}

type NewsController struct {
	store  ArticleStore
	syncer SyncRunner
	logger *slog.Logger
}

func NewNewsController(store ArticleStore, syncer SyncRunner, logger *slog.Logger) *NewsController {
	return &NewsController{store: store, syncer: syncer, logger: logger}
}

// GET /api/news
func (n *NewsController) GetNews(c *gin.Context) {
	articles, err := n.store.List(c.Request.Context())
	if err != nil {
		n.logger.Error("list articles failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load news"})
		return
	}

	// newest first
	sort.Slice(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})

	c.JSON(http.StatusOK, articles)
}

// GET /api/fetch-news
func (n *NewsController) FetchNews(c *gin.Context) {
	count, err := n.syncer.Sync(c.Request.Context())
	if errors.Is(err, services.ErrNoNews) {
		c.JSON(http.StatusNotFound, gin.H{"message": "no news found"})
		return
	}
	if err != nil {
		n.logger.Error("manual sync failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch news"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "news fetched and saved", "count": count})
}

type createArticleRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	ImageURL    string `json:"imageUrl"`
}

// POST /api/news (bearer token required)
func (n *NewsController) CreateArticle(c *gin.Context) {
	var req createArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article := models.Article{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		ImageURL:    req.ImageURL,
		PublishedAt: time.Now(),
	}

	if err := n.store.Insert(c.Request.Context(), article); err != nil {
		n.logger.Error("insert article failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save article"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "article created"})
}
