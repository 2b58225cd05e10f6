package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"teranga_match/internal/models"
	"teranga_match/internal/services"
	"teranga_match/internal/storage"
)

type ArticleController struct {
	articles *services.ArticleService
	images   storage.ImageStore
}

// articleForm is the multipart body of article create and update.
type articleForm struct {
	Title    string `form:"title" binding:"required"`
	Excerpt  string `form:"excerpt"`
	Content  string `form:"content"`
	Author   string `form:"author"`
	Category string `form:"category"`
	ReadTime string `form:"readTime"`
	Featured bool   `form:"featured"`
}

func (f articleForm) toModel() models.Article {
	return models.Article{
		Title:    f.Title,
		Excerpt:  f.Excerpt,
		Content:  f.Content,
		Author:   f.Author,
		Category: f.Category,
		ReadTime: f.ReadTime,
		Featured: f.Featured,
	}
}

// List supports ?search= (title or excerpt) and ?category=.
func (ac *ArticleController) List(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		articles []models.Article
		err      error
	)
	switch {
	case c.Query("search") != "":
		articles, err = ac.articles.Search(ctx, c.Query("search"))
	case c.Query("category") != "":
		articles, err = ac.articles.GetByCategory(ctx, c.Query("category"))
	default:
		articles, err = ac.articles.GetAll(ctx)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

func (ac *ArticleController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	a, err := ac.articles.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (ac *ArticleController) Create(c *gin.Context) {
	in, ok := ac.bindForm(c)
	if !ok {
		return
	}
	a, err := ac.articles.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// Update resolves the article before storing any new image, so a missing id
// leaves nothing behind in the image store.
func (ac *ArticleController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if _, err := ac.articles.GetByID(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	in, ok := ac.bindForm(c)
	if !ok {
		return
	}
	a, err := ac.articles.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (ac *ArticleController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ac.articles.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// bindForm reads the multipart fields and stores the optional image.
func (ac *ArticleController) bindForm(c *gin.Context) (models.Article, bool) {
	var form articleForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, err)
		return models.Article{}, false
	}
	in := form.toModel()

	file, err := c.FormFile("image")
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		badRequest(c, err)
		return models.Article{}, false
	default:
		url, err := ac.images.Save(c.Request.Context(), file)
		if err != nil {
			logrus.WithError(err).WithField("filename", file.Filename).Error("failed to store article image")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store image"})
			return models.Article{}, false
		}
		in.Image = &url
	}
	return in, true
}
