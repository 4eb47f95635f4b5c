package httpHandler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"blog-server/entities"
	"blog-server/media"
	"blog-server/usecases"
	"blog-server/ws"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	useCase *usecases.BlogUseCase
	media   *media.Store
	feed    *ws.Manager
}

func NewBlogHandler(useCase *usecases.BlogUseCase, mediaStore *media.Store, feed *ws.Manager) *BlogHandler {
	return &BlogHandler{
		useCase: useCase,
		media:   mediaStore,
		feed:    feed,
	}
}

// saveImage stores the uploaded file and returns its stored path.
func (h *BlogHandler) saveImage(c *gin.Context) (string, error) {
	header, err := c.FormFile("image")
	if err != nil {
		// an absent file or a non-multipart body both mean "no image"
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", err
	}

	f, err := header.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	return h.media.Save(header.Filename, f)
}

// CreateBlog handles POST /blogs/ (multipart form: title, content?, tags?, image?)
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "title is required"})
		return
	}

	imagePath, err := h.saveImage(c)
	if err != nil {
		log.Printf("image upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Image upload failed"})
		return
	}

	blog := entities.Blog{
		Title:   title,
		Content: c.PostForm("content"),
		Tags:    c.PostForm("tags"),
		Image:   imagePath,
		OwnerID: CurrentUser(c).ID,
	}

	if err := h.useCase.CreateBlog(&blog); err != nil {
		log.Printf("blog create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
		return
	}

	h.feed.Broadcast(ws.Event{Action: "created", Blog: blog})
	c.JSON(http.StatusOK, blog)
}

// GetAllBlogs handles GET /blogs/ and GET /blogs/all
func (h *BlogHandler) GetAllBlogs(c *gin.Context) {
	blogs, err := h.useCase.GetAllBlogs()
	if err != nil {
		log.Printf("blog list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
		return
	}
	if blogs == nil {
		blogs = []entities.Blog{}
	}
	c.JSON(http.StatusOK, blogs)
}

// GetBlog handles GET /blogs/:id
func (h *BlogHandler) GetBlog(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	blog, err := h.useCase.GetBlog(id)
	if err != nil {
		if errors.Is(err, usecases.ErrBlogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Blog not found"})
			return
		}
		log.Printf("blog get failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, blog)
}

// UpdateBlog handles PUT /blogs/:id. Only fields present in the form are
// changed; a missing row and a foreign owner both answer 404.
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var update usecases.BlogUpdate
	if v, ok := c.GetPostForm("title"); ok {
		update.Title = &v
	}
	if v, ok := c.GetPostForm("content"); ok {
		update.Content = &v
	}
	if v, ok := c.GetPostForm("tags"); ok {
		update.Tags = &v
	}

	imagePath, err := h.saveImage(c)
	if err != nil {
		log.Printf("image upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Image upload failed"})
		return
	}
	if imagePath != "" {
		update.Image = &imagePath
	}

	blog, err := h.useCase.UpdateBlog(id, CurrentUser(c).ID, update)
	if err != nil {
		if errors.Is(err, usecases.ErrBlogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Blog not found or unauthorized"})
			return
		}
		log.Printf("blog update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
		return
	}

	h.feed.Broadcast(ws.Event{Action: "updated", Blog: *blog})
	c.JSON(http.StatusOK, blog)
}

// DeleteBlog handles DELETE /blogs/:id
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ownerID := CurrentUser(c).ID
	if err := h.useCase.DeleteBlog(id, ownerID); err != nil {
		if errors.Is(err, usecases.ErrBlogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Blog not found or unauthorized"})
			return
		}
		log.Printf("blog delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
		return
	}

	h.feed.Broadcast(ws.Event{Action: "deleted", Blog: entities.Blog{ID: id, OwnerID: ownerID}})
	c.JSON(http.StatusOK, gin.H{"message": "Blog deleted"})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Blog not found"})
		return 0, false
	}
	return uint(id), true
}
